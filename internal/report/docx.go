package report

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	fontName  = "Times New Roman"
	fontSize  = 13
	fontColor = "000000"
)

var (
	reHeading = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	reBold    = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reBullet  = regexp.MustCompile(`^[\-\*]\s+(.+)$`)
)

// WriteDocx saves the answer as a Word document. The response is treated as
// markdown: headings, bullets and bold spans keep their styling.
func WriteDocx(path string, a Answer) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("create document: %w", err)
	}

	addRun(doc.AddParagraph(""), a.Title(), true, 16)
	addRun(doc.AddParagraph(""), a.CreatedAt.Format(timeLayout), false, fontSize)

	addRun(doc.AddParagraph(""), "Prompt", true, headingSize(2))
	for _, line := range strings.Split(strings.TrimSpace(a.Prompt), "\n") {
		if strings.TrimSpace(line) != "" {
			addRun(doc.AddParagraph(""), strings.TrimSpace(line), false, fontSize)
		}
	}

	addRun(doc.AddParagraph(""), "Response", true, headingSize(2))
	renderMarkdown(doc, a.Response)

	if err := doc.SaveTo(path); err != nil {
		return fmt.Errorf("save docx: %w", err)
	}
	return nil
}

func renderMarkdown(doc *docx.RootDoc, markdown string) {
	for _, line := range strings.Split(markdown, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || trimmed == "---" {
			continue
		}

		p := doc.AddParagraph("")
		switch {
		case reHeading.MatchString(trimmed):
			m := reHeading.FindStringSubmatch(trimmed)
			addRun(p, m[2], true, headingSize(len(m[1])))
		case reBullet.MatchString(trimmed):
			m := reBullet.FindStringSubmatch(trimmed)
			addSpans(p, "• "+m[1])
		default:
			// plain paragraphs, and numbered items whose "1." stays as text
			addSpans(p, trimmed)
		}
	}
}

// Deeper headings fall back to the body size.
var headingSizes = map[int]uint64{1: 16, 2: 15, 3: 14}

func headingSize(level int) uint64 {
	if size, ok := headingSizes[level]; ok {
		return size
	}
	return fontSize
}

// addRun appends one formatted run with markdown markers removed.
func addRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(stripInline(text)).Font(fontName).Size(size).Color(fontColor)
	if bold {
		run.Bold(true)
	}
}

// addSpans writes text as alternating plain and bold runs.
func addSpans(p *docx.Paragraph, text string) {
	last := 0
	for _, loc := range reBold.FindAllStringSubmatchIndex(text, -1) {
		if loc[0] > last {
			addRun(p, text[last:loc[0]], false, fontSize)
		}
		addRun(p, text[loc[2]:loc[3]], true, fontSize)
		last = loc[1]
	}
	if last < len(text) {
		addRun(p, text[last:], false, fontSize)
	}
}

var inlineMarkers = strings.NewReplacer("**", "", "__", "", "`", "")

func stripInline(s string) string {
	return inlineMarkers.Replace(s)
}
