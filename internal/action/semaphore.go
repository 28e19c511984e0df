package action

// semaphore bounds how many actions may hold the runner at once.
type semaphore struct {
	ch chan struct{}
}

// newSemaphore returns a semaphore with capacity free slots.
func newSemaphore(capacity int) *semaphore {
	return &semaphore{
		ch: make(chan struct{}, capacity),
	}
}

// tryAcquire takes a slot without waiting and reports whether it got one.
func (s *semaphore) tryAcquire() bool {
	select {
	case s.ch <- struct{}{}:
		return true
	default:
		return false
	}
}

// release frees a slot taken by tryAcquire.
func (s *semaphore) release() {
	<-s.ch
}

// full reports whether no slot is free.
func (s *semaphore) full() bool {
	return len(s.ch) == cap(s.ch)
}
