package action

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nguyentantai21042004/vidprompt/internal/transcript"
)

// ErrBusy is returned when an action is requested while another one runs.
var ErrBusy = errors.New("another action is already running")

// Kind selects the flow of an action.
type Kind int

const (
	// TranscribeOnly resolves the transcript and stops.
	TranscribeOnly Kind = iota
	// ProcessPrompt resolves the transcript and asks the language model.
	ProcessPrompt
)

func (k Kind) String() string {
	switch k {
	case TranscribeOnly:
		return "transcribe"
	case ProcessPrompt:
		return "process-prompt"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// State is the position of the current action in its lifecycle.
type State int

const (
	Idle State = iota
	Validating
	TranscriptResolving
	Transcribing
	TranscriptReady
	Generating
	Done
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Validating:
		return "Validating"
	case TranscriptResolving:
		return "Resolving transcript"
	case Transcribing:
		return "Transcribing"
	case TranscriptReady:
		return "Transcript ready"
	case Generating:
		return "Generating response"
	case Done:
		return "Done"
	case Failed:
		return "Failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Request is one user-initiated action.
type Request struct {
	Kind     Kind
	VideoRef string
	Prompt   string
}

// Outcome is what an action produced. State is Done or Failed.
type Outcome struct {
	ID       string
	Kind     Kind
	State    State
	Record   transcript.Record
	Response string
	Err      error
	Duration time.Duration
}

// Message is the completion notice shown to the user.
func (o Outcome) Message() string {
	if o.Err != nil {
		return o.Err.Error()
	}
	if o.Record.Cached {
		return "Transcription already exists: " + o.Record.Path
	}
	return "Transcription saved to: " + o.Record.Path
}

// StateFunc observes state transitions of the action with the given id.
type StateFunc func(id string, state State)

// Runner executes actions one at a time.
type Runner interface {
	// Run executes req on the calling goroutine.
	Run(ctx context.Context, req Request) Outcome
	// Submit executes req on a worker goroutine and calls done with the result.
	Submit(req Request, done func(Outcome)) error
	// Cancel aborts the running action, if any.
	Cancel()
	Busy() bool
	State() State
	// Wait blocks until submitted actions have finished.
	Wait()
}
