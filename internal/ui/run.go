package ui

import (
	"context"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"

	"github.com/nguyentantai21042004/vidprompt/internal/app"
)

const appID = "io.github.nguyentantai21042004.vidprompt"

// Run opens the main window and blocks until it is closed.
func Run(ctx context.Context, a *app.App) {
	fa := fyneapp.NewWithID(appID)

	w := fa.NewWindow(Title)
	w.Resize(fyne.NewSize(900, 700))

	mainUI := NewMainUI(w, a)
	w.SetContent(mainUI.Build())
	w.SetOnClosed(a.Runner.Cancel)

	go func() {
		if err := a.Preload(ctx); err != nil {
			a.Logger.Warn(ctx, "Models not preloaded, they load on first use: %v", err)
		}
	}()

	w.ShowAndRun()
}
