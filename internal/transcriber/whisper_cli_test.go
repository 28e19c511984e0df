package transcriber

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/vidprompt/internal/config"
	"github.com/nguyentantai21042004/vidprompt/internal/logger"
)

// fakeExecutor mimics ffmpeg and whisper-cli by writing their output files.
type fakeExecutor struct {
	dirs       []string
	missing    map[string]bool
	whisperOut string
	failOn     string
	calls      [][]string
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	f.calls = append(f.calls, append([]string{name}, args...))
	if name == f.failOn {
		return "", errors.New("exit status 1")
	}

	switch name {
	case "ffmpeg":
		if err := os.WriteFile(args[len(args)-1], []byte("RIFF"), 0644); err != nil {
			return "", err
		}
	case "whisper-cli":
		prefix := argValue(args, "-of")
		if err := os.WriteFile(prefix+".txt", []byte(f.whisperOut), 0644); err != nil {
			return "", err
		}
	}
	return "", nil
}

func (f *fakeExecutor) ExecuteInDir(ctx context.Context, dir string, name string, args ...string) (string, error) {
	f.dirs = append(f.dirs, dir)
	return f.Execute(ctx, name, args...)
}

func (f *fakeExecutor) LookPath(name string) (string, error) {
	if f.missing[name] {
		return "", errors.New("not found")
	}
	return name, nil
}

func argValue(args []string, flag string) string {
	for i := 0; i < len(args)-1; i++ {
		if args[i] == flag {
			return args[i+1]
		}
	}
	return ""
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	model := filepath.Join(dir, "ggml-base.bin")
	if err := os.WriteFile(model, []byte("weights"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := &config.Config{
		Whisper: config.WhisperConfig{ModelPath: model, Language: "en", Threads: 2},
		Paths:   config.PathsConfig{Temp: filepath.Join(dir, "tmp"), Transcriptions: filepath.Join(dir, "transcriptions")},
	}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	return cfg
}

func TestCLITranscribe(t *testing.T) {
	cfg := testConfig(t)
	exec := &fakeExecutor{whisperOut: " hello\n world \n\n"}
	tr, err := New(cfg, exec, logger.Nop())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	res, err := tr.Transcribe(context.Background(), "/videos/talk.mp4")
	if err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}
	if res.Text != "hello world" {
		t.Errorf("Text = %q, want %q", res.Text, "hello world")
	}

	if len(exec.calls) != 2 {
		t.Fatalf("calls = %d, want 2 (ffmpeg, whisper-cli)", len(exec.calls))
	}

	ffmpeg := exec.calls[0]
	if ffmpeg[0] != "ffmpeg" || argValue(ffmpeg[1:], "-i") != "/videos/talk.mp4" {
		t.Errorf("ffmpeg call = %v", ffmpeg)
	}
	if argValue(ffmpeg[1:], "-ar") != "16000" || argValue(ffmpeg[1:], "-ac") != "1" {
		t.Errorf("ffmpeg should resample to 16kHz mono: %v", ffmpeg)
	}

	whisper := exec.calls[1][1:]
	if got := argValue(whisper, "-m"); got != cfg.Whisper.ModelPath {
		t.Errorf("-m = %q, want %q", got, cfg.Whisper.ModelPath)
	}
	if got := argValue(whisper, "-l"); got != "en" {
		t.Errorf("-l = %q, want en", got)
	}
	if got := argValue(whisper, "-t"); got != "2" {
		t.Errorf("-t = %q, want 2", got)
	}
	if got := argValue(whisper, "-f"); !strings.HasSuffix(got, "audio.wav") {
		t.Errorf("-f = %q, want extracted audio", got)
	}
	if len(exec.dirs) != 1 || filepath.Dir(argValue(whisper, "-f")) != exec.dirs[0] {
		t.Errorf("whisper-cli should run in the work dir, dirs = %v", exec.dirs)
	}

	entries, err := os.ReadDir(cfg.Paths.Temp)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("work dir not cleaned up: %d entries left", len(entries))
	}
}

func TestCLILoadChecksTools(t *testing.T) {
	tests := []struct {
		name    string
		missing map[string]bool
		model   string
		wantErr bool
	}{
		{"all present", nil, "", false},
		{"ffmpeg missing", map[string]bool{"ffmpeg": true}, "", true},
		{"whisper missing", map[string]bool{"whisper-cli": true}, "", true},
		{"model missing", nil, "/nowhere/ggml-base.bin", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t)
			if tt.model != "" {
				cfg.Whisper.ModelPath = tt.model
			}
			tr, err := New(cfg, &fakeExecutor{missing: tt.missing}, logger.Nop())
			if err != nil {
				t.Fatal(err)
			}

			err = tr.Load(context.Background())
			if (err != nil) != tt.wantErr {
				t.Errorf("Load() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err := tr.Unload(); err != nil {
				t.Errorf("Unload() error = %v", err)
			}
		})
	}
}

func TestCLITranscribeFailures(t *testing.T) {
	tests := []struct {
		name   string
		failOn string
		want   string
	}{
		{"ffmpeg fails", "ffmpeg", "ffmpeg extract audio"},
		{"whisper fails", "whisper-cli", "whisper transcribe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t)
			tr, _ := New(cfg, &fakeExecutor{failOn: tt.failOn}, logger.Nop())

			_, err := tr.Transcribe(context.Background(), "broken.mkv")
			if err == nil {
				t.Fatal("Transcribe() should fail")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestJoinSegments(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{" one\n", "one"},
		{" one\n two\n\n three ", "one two three"},
	}

	for _, tt := range tests {
		if got := joinSegments(tt.in); got != tt.want {
			t.Errorf("joinSegments(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
