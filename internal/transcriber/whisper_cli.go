package transcriber

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/nguyentantai21042004/vidprompt/internal/config"
	"github.com/nguyentantai21042004/vidprompt/internal/logger"
	"github.com/nguyentantai21042004/vidprompt/pkg/executor"
	"github.com/nguyentantai21042004/vidprompt/pkg/handle"
)

// cliTools holds the resolved binaries once the backend is loaded.
type cliTools struct {
	ffmpeg  string
	whisper string
	model   string
}

type implCLI struct {
	cfg    config.WhisperConfig
	exec   executor.Executor
	logger logger.Logger
	audio  *audioExtractor
	tools  *handle.Handle[cliTools]
}

func newCLI(cfg *config.Config, exec executor.Executor, log logger.Logger) *implCLI {
	t := &implCLI{
		cfg:    cfg.Whisper,
		exec:   exec,
		logger: log,
		audio:  &audioExtractor{exec: exec, logger: log, tempDir: cfg.Paths.Temp},
	}
	ffmpeg := cfg.FFmpeg.BinaryPath
	t.tools = handle.New(func(ctx context.Context) (cliTools, error) {
		return t.resolve(ctx, ffmpeg)
	}, nil)
	return t
}

// resolve checks that ffmpeg, whisper-cli and the model file are present.
func (t *implCLI) resolve(ctx context.Context, ffmpeg string) (cliTools, error) {
	ffmpegPath, err := t.exec.LookPath(ffmpeg)
	if err != nil {
		return cliTools{}, fmt.Errorf("ffmpeg not available: %w", err)
	}
	whisperPath, err := t.exec.LookPath(t.cfg.BinaryPath)
	if err != nil {
		return cliTools{}, fmt.Errorf("whisper-cli not available (install whisper.cpp): %w", err)
	}
	if _, err := os.Stat(t.cfg.ModelPath); err != nil {
		return cliTools{}, fmt.Errorf("whisper model not found at %s: %w", t.cfg.ModelPath, err)
	}

	// whisper-cli runs inside the work dir, so relative paths must be pinned now
	model, err := filepath.Abs(t.cfg.ModelPath)
	if err != nil {
		return cliTools{}, fmt.Errorf("resolve model path: %w", err)
	}
	if strings.ContainsRune(whisperPath, filepath.Separator) {
		if whisperPath, err = filepath.Abs(whisperPath); err != nil {
			return cliTools{}, fmt.Errorf("resolve whisper-cli path: %w", err)
		}
	}

	t.logger.Info(ctx, "Whisper ready: binary=%s model=%s", whisperPath, filepath.Base(model))
	return cliTools{ffmpeg: ffmpegPath, whisper: whisperPath, model: model}, nil
}

func (t *implCLI) Load(ctx context.Context) error {
	return t.tools.Load(ctx)
}

func (t *implCLI) Unload() error {
	return t.tools.Unload()
}

// Transcribe extracts the audio track and runs whisper-cli on it, reading back
// the plain-text output.
func (t *implCLI) Transcribe(ctx context.Context, videoPath string) (Result, error) {
	tools, err := t.tools.Get(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("load whisper: %w", err)
	}

	startTime := time.Now()

	workDir, err := t.audio.workDir()
	if err != nil {
		return Result{}, err
	}
	defer t.audio.cleanup(ctx, workDir)

	audioPath, err := t.audio.extract(ctx, tools.ffmpeg, videoPath, workDir)
	if err != nil {
		return Result{}, err
	}

	// whisper-cli appends .txt to the -of prefix
	outputPrefix := filepath.Join(workDir, "transcript")

	// -otxt: plain text output, -np: no progress prints, -l auto: detect language
	args := []string{
		"-m", tools.model,
		"-f", audioPath,
		"-l", t.cfg.Language,
		"-t", strconv.Itoa(t.cfg.Threads),
		"-otxt",
		"-of", outputPrefix,
		"-np",
	}

	t.logger.Info(ctx, "Transcribing with %d threads: %s", t.cfg.Threads, videoPath)

	if _, err := t.exec.ExecuteInDir(ctx, workDir, tools.whisper, args...); err != nil {
		return Result{}, fmt.Errorf("whisper transcribe: %w", err)
	}

	data, err := os.ReadFile(outputPrefix + ".txt")
	if err != nil {
		return Result{}, fmt.Errorf("read whisper output: %w", err)
	}

	t.logger.Info(ctx, "Transcription completed in %s", time.Since(startTime).Round(time.Millisecond))
	return Result{Text: joinSegments(string(data))}, nil
}
