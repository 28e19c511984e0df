//go:build whispercpp

package transcriber

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	whisper "github.com/ggerganov/whisper.cpp/bindings/go/pkg/whisper"
	"github.com/go-audio/wav"

	"github.com/nguyentantai21042004/vidprompt/internal/config"
	"github.com/nguyentantai21042004/vidprompt/internal/logger"
	"github.com/nguyentantai21042004/vidprompt/pkg/executor"
	"github.com/nguyentantai21042004/vidprompt/pkg/handle"
)

// implBindings runs whisper.cpp in-process through its Go bindings.
type implBindings struct {
	cfg    config.WhisperConfig
	ffmpeg string
	exec   executor.Executor
	logger logger.Logger
	audio  *audioExtractor
	model  *handle.Handle[whisper.Model]
}

func newBindings(cfg *config.Config, exec executor.Executor, log logger.Logger) (Transcriber, error) {
	t := &implBindings{
		cfg:    cfg.Whisper,
		ffmpeg: cfg.FFmpeg.BinaryPath,
		exec:   exec,
		logger: log,
		audio:  &audioExtractor{exec: exec, logger: log, tempDir: cfg.Paths.Temp},
	}
	t.model = handle.New(t.loadModel, func(m whisper.Model) error {
		return m.Close()
	})
	return t, nil
}

func (t *implBindings) loadModel(ctx context.Context) (whisper.Model, error) {
	t.logger.Info(ctx, "Loading whisper model: %s", t.cfg.ModelPath)
	model, err := whisper.New(t.cfg.ModelPath)
	if err != nil {
		return nil, fmt.Errorf("load model %q: %w", t.cfg.ModelPath, err)
	}
	return model, nil
}

func (t *implBindings) Load(ctx context.Context) error {
	return t.model.Load(ctx)
}

func (t *implBindings) Unload() error {
	return t.model.Unload()
}

func (t *implBindings) Transcribe(ctx context.Context, videoPath string) (Result, error) {
	model, err := t.model.Get(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("load whisper: %w", err)
	}

	startTime := time.Now()

	workDir, err := t.audio.workDir()
	if err != nil {
		return Result{}, err
	}
	defer t.audio.cleanup(ctx, workDir)

	audioPath, err := t.audio.extract(ctx, t.ffmpeg, videoPath, workDir)
	if err != nil {
		return Result{}, err
	}

	samples, err := readSamples(audioPath)
	if err != nil {
		return Result{}, err
	}

	wctx, err := model.NewContext()
	if err != nil {
		return Result{}, fmt.Errorf("create whisper context: %w", err)
	}
	if err := wctx.SetLanguage(t.cfg.Language); err != nil {
		return Result{}, fmt.Errorf("set language %q: %w", t.cfg.Language, err)
	}
	if t.cfg.Threads > 0 {
		wctx.SetThreads(uint(t.cfg.Threads))
	}

	t.logger.Info(ctx, "Transcribing %d samples in-process: %s", len(samples), videoPath)

	// returning false from the encoder callback aborts processing
	keepGoing := func() bool { return ctx.Err() == nil }
	if err := wctx.Process(samples, keepGoing, nil, nil); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Result{}, fmt.Errorf("whisper process: %w", ctxErr)
		}
		return Result{}, fmt.Errorf("whisper process: %w", err)
	}

	var sb strings.Builder
	for {
		seg, err := wctx.NextSegment()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Result{}, fmt.Errorf("whisper next segment: %w", err)
		}
		sb.WriteString(seg.Text)
	}

	t.logger.Info(ctx, "Transcription completed in %s", time.Since(startTime).Round(time.Millisecond))
	return Result{Text: strings.TrimSpace(sb.String())}, nil
}

// readSamples decodes a 16kHz mono WAV file into normalized float32 samples.
func readSamples(path string) ([]float32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open audio: %w", err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("invalid wav file: %s", path)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("decode wav: %w", err)
	}
	if dec.SampleRate != whisper.SampleRate {
		return nil, fmt.Errorf("unexpected sample rate %d, want %d", dec.SampleRate, whisper.SampleRate)
	}
	if dec.NumChans != 1 {
		return nil, fmt.Errorf("unexpected channel count %d, want mono", dec.NumChans)
	}

	return buf.AsFloat32Buffer().Data, nil
}
