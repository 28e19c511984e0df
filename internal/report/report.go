package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const timeLayout = "2006-01-02 15:04"

// Answer is a model response worth keeping.
type Answer struct {
	VideoRef  string
	Prompt    string
	Response  string
	CreatedAt time.Time
}

// Title is the video file name without its extension.
func (a Answer) Title() string {
	name := filepath.Base(a.VideoRef)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// Markdown renders the answer as a markdown document.
func Markdown(a Answer) string {
	return fmt.Sprintf("# %s\n\n_%s_\n\n## Prompt\n\n%s\n\n## Response\n\n%s\n",
		a.Title(),
		a.CreatedAt.Format(timeLayout),
		strings.TrimSpace(a.Prompt),
		strings.TrimSpace(a.Response),
	)
}

func WriteMarkdown(path string, a Answer) error {
	if err := os.WriteFile(path, []byte(Markdown(a)), 0644); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}
	return nil
}

// Write picks the format from the file extension: .docx gets a Word
// document, anything else markdown.
func Write(path string, a Answer) error {
	if strings.EqualFold(filepath.Ext(path), ".docx") {
		return WriteDocx(path, a)
	}
	return WriteMarkdown(path, a)
}
