package ui

import (
	"path/filepath"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"

	"github.com/nguyentantai21042004/vidprompt/internal/action"
	"github.com/nguyentantai21042004/vidprompt/internal/app"
	"github.com/nguyentantai21042004/vidprompt/internal/config"
	"github.com/nguyentantai21042004/vidprompt/internal/logger"
	"github.com/nguyentantai21042004/vidprompt/internal/report"
)

func newTestUI(t *testing.T) *MainUI {
	t.Helper()
	test.NewTempApp(t)

	cfg := config.Default()
	cfg.Paths.Transcriptions = filepath.Join(t.TempDir(), "transcriptions")
	a, err := app.New(cfg, logger.Nop(), false)
	if err != nil {
		t.Fatalf("app.New() error = %v", err)
	}
	t.Cleanup(func() { a.Close() })

	w := test.NewTempWindow(t, nil)
	ui := NewMainUI(w, a)
	w.SetContent(ui.Build())
	return ui
}

func TestInitialControls(t *testing.T) {
	ui := newTestUI(t)

	if !ui.pathEntry.Disabled() {
		t.Error("video path should be read-only")
	}
	if !ui.cancelBtn.Disabled() || !ui.exportBtn.Disabled() {
		t.Error("Cancel and Export should start disabled")
	}
	if ui.transcribeBtn.Disabled() || ui.processBtn.Disabled() {
		t.Error("action buttons should start enabled")
	}
	if ui.status.Text != action.Idle.String() {
		t.Errorf("status = %q", ui.status.Text)
	}
}

func TestValidationBeforeSubmit(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		prompt string
		tap    func(ui *MainUI)
		want   string
	}{
		{
			name: "transcribe without video",
			tap:  func(ui *MainUI) { test.Tap(ui.transcribeBtn) },
			want: "Please select a video file.",
		},
		{
			name:   "prompt without video",
			prompt: "Summarize",
			tap:    func(ui *MainUI) { test.Tap(ui.processBtn) },
			want:   "Please select a video file.",
		},
		{
			name:   "blank prompt",
			path:   "/videos/a.mp4",
			prompt: "   ",
			tap:    func(ui *MainUI) { test.Tap(ui.processBtn) },
			want:   "Please enter a prompt.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui := newTestUI(t)
			ui.pathEntry.SetText(tt.path)
			ui.promptEntry.SetText(tt.prompt)

			tt.tap(ui)

			if ui.status.Text != tt.want {
				t.Errorf("status = %q, want %q", ui.status.Text, tt.want)
			}
			if ui.app.Runner.Busy() {
				t.Error("runner should not start on invalid input")
			}
		})
	}
}

func TestFinishShowsResponse(t *testing.T) {
	ui := newTestUI(t)

	req := action.Request{Kind: action.ProcessPrompt, VideoRef: "/videos/talk.mkv", Prompt: "P"}
	ui.finish(req, action.Outcome{Kind: req.Kind, State: action.Done, Response: "the answer", Duration: 2 * time.Second})

	if ui.output.Text != "the answer" {
		t.Errorf("output = %q", ui.output.Text)
	}
	if ui.answer == nil || ui.answer.Prompt != "P" {
		t.Fatalf("answer = %+v", ui.answer)
	}
	if ui.exportBtn.Disabled() {
		t.Error("Export should be enabled once a response exists")
	}
}

func TestExportName(t *testing.T) {
	tests := []struct {
		ref  string
		want string
	}{
		{"/videos/talk.mkv", "talk.md"},
		{"", "answer.md"},
	}

	for _, tt := range tests {
		if got := exportName(report.Answer{VideoRef: tt.ref}); got != tt.want {
			t.Errorf("exportName(%q) = %q, want %q", tt.ref, got, tt.want)
		}
	}
}
