package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/nguyentantai21042004/vidprompt/internal/action"
	"github.com/nguyentantai21042004/vidprompt/internal/app"
	"github.com/nguyentantai21042004/vidprompt/internal/report"
)

// Title is the main window title.
const Title = "Video Transcription & Prompt Processor"

var videoExtensions = []string{".mp4", ".avi", ".mov", ".mkv", ".flv"}

// MainUI is the single window of the desktop front end.
type MainUI struct {
	window fyne.Window
	app    *app.App

	pathEntry   *widget.Entry
	promptEntry *widget.Entry
	output      *widget.Entry
	status      *widget.Label

	selectBtn     *widget.Button
	transcribeBtn *widget.Button
	processBtn    *widget.Button
	cancelBtn     *widget.Button
	exportBtn     *widget.Button

	// last answer, kept for export
	answer *report.Answer
}

// NewMainUI binds the window to a and subscribes to runner state changes.
func NewMainUI(w fyne.Window, a *app.App) *MainUI {
	ui := &MainUI{
		window: w,
		app:    a,
	}

	a.SetStateObserver(func(id string, state action.State) {
		fyne.Do(func() {
			ui.status.SetText(state.String())
		})
	})

	return ui
}

// Build creates the window content.
func (ui *MainUI) Build() fyne.CanvasObject {
	ui.pathEntry = widget.NewEntry()
	ui.pathEntry.SetPlaceHolder("No video selected")
	ui.pathEntry.Disable()

	ui.selectBtn = widget.NewButtonWithIcon("Select Video", theme.FolderOpenIcon(), ui.showVideoDialog)

	ui.promptEntry = widget.NewEntry()
	ui.promptEntry.SetPlaceHolder("Ask something about the video")
	ui.promptEntry.OnSubmitted = func(string) { ui.onProcessPrompt() }

	ui.output = widget.NewMultiLineEntry()
	ui.output.Wrapping = fyne.TextWrapWord
	ui.output.SetPlaceHolder("The response appears here")

	ui.transcribeBtn = widget.NewButton("Transcribe Only", ui.onTranscribeOnly)
	ui.processBtn = widget.NewButton("Process Prompt", ui.onProcessPrompt)
	ui.processBtn.Importance = widget.HighImportance
	ui.cancelBtn = widget.NewButtonWithIcon("Cancel", theme.CancelIcon(), ui.onCancel)
	ui.exportBtn = widget.NewButtonWithIcon("Export…", theme.DocumentSaveIcon(), ui.showExportDialog)

	ui.status = widget.NewLabel(action.Idle.String())

	videoRow := container.NewBorder(nil, nil, nil, ui.selectBtn, ui.pathEntry)
	promptRow := container.NewBorder(nil, nil, widget.NewLabel("Prompt:"), nil, ui.promptEntry)
	buttons := container.NewHBox(ui.transcribeBtn, ui.processBtn, ui.cancelBtn, ui.exportBtn)

	top := container.NewVBox(
		widget.NewLabel("Video:"),
		videoRow,
		promptRow,
		buttons,
		widget.NewSeparator(),
	)
	bottom := container.NewVBox(widget.NewSeparator(), ui.status)

	ui.setBusy(false)
	return container.NewBorder(top, bottom, nil, nil, ui.output)
}

// setBusy toggles the controls that must not be used while an action runs.
func (ui *MainUI) setBusy(busy bool) {
	for _, btn := range []*widget.Button{ui.selectBtn, ui.transcribeBtn, ui.processBtn} {
		if busy {
			btn.Disable()
		} else {
			btn.Enable()
		}
	}

	if busy {
		ui.cancelBtn.Enable()
		ui.exportBtn.Disable()
		return
	}
	ui.cancelBtn.Disable()
	if ui.answer != nil {
		ui.exportBtn.Enable()
	} else {
		ui.exportBtn.Disable()
	}
}
