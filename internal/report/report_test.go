package report

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func testAnswer() Answer {
	return Answer{
		VideoRef:  "/videos/lecture one.mp4",
		Prompt:    "  Summarize the talk  ",
		Response:  "## Key points\n\n- **First** point\n- Second point\n",
		CreatedAt: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
	}
}

func TestTitle(t *testing.T) {
	tests := []struct {
		ref  string
		want string
	}{
		{"/videos/lecture one.mp4", "lecture one"},
		{"clip.tar.mkv", "clip.tar"},
		{"noext", "noext"},
	}

	for _, tt := range tests {
		if got := (Answer{VideoRef: tt.ref}).Title(); got != tt.want {
			t.Errorf("Title(%q) = %q, want %q", tt.ref, got, tt.want)
		}
	}
}

func TestMarkdown(t *testing.T) {
	want := "# lecture one\n\n" +
		"_2026-03-14 09:30_\n\n" +
		"## Prompt\n\nSummarize the talk\n\n" +
		"## Response\n\n## Key points\n\n- **First** point\n- Second point\n"

	if got := Markdown(testAnswer()); got != want {
		t.Errorf("Markdown() =\n%s\nwant\n%s", got, want)
	}
}

func TestWriteMarkdown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "answer.md")
	if err := Write(path, testAnswer()); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != Markdown(testAnswer()) {
		t.Errorf("file content = %q", data)
	}
}

func TestWriteMarkdownBadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "answer.md")
	if err := WriteMarkdown(path, testAnswer()); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestWriteDocx(t *testing.T) {
	path := filepath.Join(t.TempDir(), "answer.DOCX")
	if err := Write(path, testAnswer()); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	body := documentXML(t, path)
	for _, want := range []string{"lecture one", "Summarize the talk", "Key points", "First", "Second point"} {
		if !strings.Contains(body, want) {
			t.Errorf("document.xml missing %q", want)
		}
	}
	if strings.Contains(body, "**") {
		t.Error("markdown bold markers leaked into the document")
	}
}

func TestStripInline(t *testing.T) {
	if got := stripInline("**bold** `code` __u__"); got != "bold code u" {
		t.Errorf("stripInline() = %q", got)
	}
}

func TestWriteDocxNumberedItems(t *testing.T) {
	a := testAnswer()
	a.Response = "1. Step **one** done\n2. Step two\n#### Deep heading"

	path := filepath.Join(t.TempDir(), "answer.docx")
	if err := WriteDocx(path, a); err != nil {
		t.Fatalf("WriteDocx() error = %v", err)
	}

	body := documentXML(t, path)
	for _, want := range []string{"1. Step ", "one", " done", "2. Step two", "Deep heading"} {
		if !strings.Contains(body, want) {
			t.Errorf("document.xml missing %q", want)
		}
	}
	if strings.Contains(body, "####") {
		t.Error("heading markers leaked into the document")
	}
}

func TestHeadingSize(t *testing.T) {
	tests := []struct {
		level int
		want  uint64
	}{
		{1, 16}, {2, 15}, {3, 14}, {4, fontSize}, {6, fontSize},
	}
	for _, tt := range tests {
		if got := headingSize(tt.level); got != tt.want {
			t.Errorf("headingSize(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

// documentXML returns word/document.xml from a saved docx.
func documentXML(t *testing.T, path string) string {
	t.Helper()
	r, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("output is not a docx archive: %v", err)
	}
	defer r.Close()

	for _, f := range r.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatal(err)
		}
		defer rc.Close()
		data, err := io.ReadAll(rc)
		if err != nil {
			t.Fatal(err)
		}
		return string(data)
	}
	t.Fatal("word/document.xml missing")
	return ""
}
