package transcriber

import "context"

// Result is the outcome of one transcription.
type Result struct {
	Text string
}

// Transcriber turns the audio track of a media file into text. The speech
// model behind it is loaded lazily on the first Transcribe, or eagerly with
// Load, and released with Unload.
type Transcriber interface {
	Load(ctx context.Context) error
	Unload() error
	Transcribe(ctx context.Context, videoPath string) (Result, error)
}
