package ui

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"

	"github.com/nguyentantai21042004/vidprompt/internal/action"
	"github.com/nguyentantai21042004/vidprompt/internal/apperr"
	"github.com/nguyentantai21042004/vidprompt/internal/report"
	"github.com/nguyentantai21042004/vidprompt/internal/transcript"
)

func (ui *MainUI) showVideoDialog() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, ui.window)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()

		ui.pathEntry.SetText(reader.URI().Path())
	}, ui.window)

	fd.SetFilter(storage.NewExtensionFileFilter(videoExtensions))
	fd.Show()
}

func (ui *MainUI) onTranscribeOnly() {
	ui.submit(action.Request{
		Kind:     action.TranscribeOnly,
		VideoRef: ui.pathEntry.Text,
	})
}

func (ui *MainUI) onProcessPrompt() {
	ui.submit(action.Request{
		Kind:     action.ProcessPrompt,
		VideoRef: ui.pathEntry.Text,
		Prompt:   ui.promptEntry.Text,
	})
}

func (ui *MainUI) onCancel() {
	ui.app.Runner.Cancel()
	ui.status.SetText("Canceling…")
}

// submit validates on the UI thread so input errors never reach a model,
// then hands the request to the runner.
func (ui *MainUI) submit(req action.Request) {
	if err := ui.validate(req); err != nil {
		ui.status.SetText(apperr.Message(err))
		dialog.ShowInformation("Input required", apperr.Message(err), ui.window)
		return
	}

	if req.Kind == action.ProcessPrompt {
		ui.output.SetText("")
	}

	err := ui.app.Runner.Submit(req, func(out action.Outcome) {
		fyne.Do(func() { ui.finish(req, out) })
	})
	if err != nil {
		dialog.ShowInformation("Busy", "Please wait for the current action to finish.", ui.window)
		return
	}
	ui.setBusy(true)
}

func (ui *MainUI) validate(req action.Request) error {
	if req.Kind == action.ProcessPrompt {
		return ui.app.Responder.Validate(req.VideoRef, req.Prompt)
	}
	return transcript.ValidateRef(req.VideoRef)
}

// finish runs on the UI thread once the runner reports an outcome.
func (ui *MainUI) finish(req action.Request, out action.Outcome) {
	defer ui.setBusy(false)

	switch {
	case out.Err == nil:
	case errors.Is(out.Err, context.Canceled):
		ui.status.SetText("Canceled")
		return
	case errors.Is(out.Err, apperr.ErrValidation):
		ui.status.SetText(apperr.Message(out.Err))
		dialog.ShowInformation("Input required", apperr.Message(out.Err), ui.window)
		return
	default:
		ui.status.SetText(out.State.String())
		dialog.ShowError(errors.New(apperr.Message(out.Err)), ui.window)
		return
	}

	if req.Kind == action.TranscribeOnly {
		ui.status.SetText(out.Message())
		dialog.ShowInformation("Transcription", out.Message(), ui.window)
		return
	}

	ui.output.SetText(out.Response)
	ui.answer = &report.Answer{
		VideoRef:  req.VideoRef,
		Prompt:    req.Prompt,
		Response:  out.Response,
		CreatedAt: time.Now(),
	}
	ui.status.SetText("Response ready (" + out.Duration.Round(time.Second).String() + ")")
}

func (ui *MainUI) showExportDialog() {
	if ui.answer == nil {
		return
	}
	answer := *ui.answer

	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, ui.window)
			return
		}
		if writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()

		if err := report.Write(path, answer); err != nil {
			dialog.ShowError(err, ui.window)
			return
		}
		ui.status.SetText("Exported to " + filepath.Base(path))
	}, ui.window)

	fd.SetFileName(exportName(answer))
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".md", ".docx"}))
	fd.Show()
}

func exportName(a report.Answer) string {
	name := strings.TrimSpace(a.Title())
	if name == "" || name == "." {
		name = "answer"
	}
	return name + ".md"
}
