package transcriber

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/vidprompt/internal/logger"
	"github.com/nguyentantai21042004/vidprompt/pkg/executor"
)

// audioExtractor pulls the audio track out of a video as 16kHz mono PCM WAV,
// the input format whisper expects.
type audioExtractor struct {
	exec    executor.Executor
	logger  logger.Logger
	tempDir string
}

// workDir creates an isolated scratch directory for one transcription.
func (a *audioExtractor) workDir() (string, error) {
	if a.tempDir != "" {
		if err := os.MkdirAll(a.tempDir, 0755); err != nil {
			return "", fmt.Errorf("create temp dir: %w", err)
		}
	}
	dir, err := os.MkdirTemp(a.tempDir, "vidprompt-*")
	if err != nil {
		return "", fmt.Errorf("create work dir: %w", err)
	}
	return filepath.Abs(dir)
}

func (a *audioExtractor) extract(ctx context.Context, ffmpeg, videoPath, workDir string) (string, error) {
	audioPath := filepath.Join(workDir, "audio.wav")

	a.logger.Debug(ctx, "Extracting audio: %s -> %s", videoPath, audioPath)

	// -vn: drop video, -ar 16000 -ac 1: 16kHz mono, pcm_s16le: uncompressed
	args := []string{
		"-nostdin",
		"-i", videoPath,
		"-vn",
		"-ar", "16000",
		"-ac", "1",
		"-c:a", "pcm_s16le",
		"-threads", "0",
		"-y",
		audioPath,
	}

	if _, err := a.exec.Execute(ctx, ffmpeg, args...); err != nil {
		return "", fmt.Errorf("ffmpeg extract audio: %w", err)
	}

	return audioPath, nil
}

// cleanup removes a scratch directory, logs warning if fails
func (a *audioExtractor) cleanup(ctx context.Context, dir string) {
	if err := os.RemoveAll(dir); err != nil {
		a.logger.Warn(ctx, "Failed to cleanup work dir %s: %v", dir, err)
	}
}

// joinSegments flattens whisper's one-segment-per-line text into a single
// paragraph.
func joinSegments(raw string) string {
	var parts []string
	for _, line := range strings.Split(raw, "\n") {
		if s := strings.TrimSpace(line); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}
