package action

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/nguyentantai21042004/vidprompt/internal/transcript"
)

func (r *implRunner) Run(ctx context.Context, req Request) Outcome {
	if !r.sem.tryAcquire() {
		return Outcome{Kind: req.Kind, State: Failed, Err: ErrBusy}
	}
	defer r.sem.release()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	r.setCancel(cancel)
	defer r.setCancel(nil)

	return r.execute(ctx, req)
}

func (r *implRunner) Submit(req Request, done func(Outcome)) error {
	if !r.sem.tryAcquire() {
		return ErrBusy
	}

	ctx, cancel := context.WithCancel(context.Background())
	r.setCancel(cancel)

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()

		out := r.execute(ctx, req)

		r.setCancel(nil)
		cancel()
		r.sem.release()

		if done != nil {
			done(out)
		}
	}()
	return nil
}

func (r *implRunner) Cancel() {
	r.mu.Lock()
	cancel := r.cancel
	r.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

func (r *implRunner) Busy() bool {
	return r.sem.full()
}

func (r *implRunner) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

func (r *implRunner) Wait() {
	r.wg.Wait()
}

func (r *implRunner) setCancel(cancel context.CancelFunc) {
	r.mu.Lock()
	r.cancel = cancel
	r.mu.Unlock()
}

func (r *implRunner) transition(id string, state State) {
	r.mu.Lock()
	r.state = state
	r.mu.Unlock()

	if r.onState != nil {
		r.onState(id, state)
	}
}

// execute walks the action through its states. Every exit path ends in Done
// or Failed and then returns the runner to Idle.
func (r *implRunner) execute(ctx context.Context, req Request) Outcome {
	id := uuid.NewString()
	startTime := time.Now()
	out := Outcome{ID: id, Kind: req.Kind}

	finish := func(err error) Outcome {
		out.Err = err
		out.Duration = time.Since(startTime)
		if err != nil {
			out.State = Failed
			r.logger.Error(ctx, "[%s] %s failed after %s: %v", id[:8], req.Kind, out.Duration.Round(time.Millisecond), err)
		} else {
			out.State = Done
			r.logger.Info(ctx, "[%s] %s done in %s", id[:8], req.Kind, out.Duration.Round(time.Millisecond))
		}
		r.transition(id, out.State)
		r.transition(id, Idle)
		return out
	}

	r.logger.Info(ctx, "[%s] %s started: %s", id[:8], req.Kind, req.VideoRef)

	r.transition(id, Validating)
	if err := r.validate(req); err != nil {
		return finish(err)
	}

	r.transition(id, TranscriptResolving)
	rec, ok, err := r.cache.Lookup(ctx, req.VideoRef)
	if err != nil {
		return finish(err)
	}
	if !ok {
		r.transition(id, Transcribing)
		rec, err = r.cache.GetOrCreate(ctx, req.VideoRef)
		if err != nil {
			return finish(err)
		}
	}
	out.Record = rec
	r.transition(id, TranscriptReady)

	if req.Kind != ProcessPrompt {
		return finish(nil)
	}

	if err := ctx.Err(); err != nil {
		return finish(err)
	}

	r.transition(id, Generating)
	text, err := r.responder.Respond(ctx, rec.Text, req.Prompt)
	if err != nil {
		return finish(err)
	}
	out.Response = text

	return finish(nil)
}

func (r *implRunner) validate(req Request) error {
	if req.Kind == ProcessPrompt {
		return r.responder.Validate(req.VideoRef, req.Prompt)
	}
	return transcript.ValidateRef(req.VideoRef)
}
