package parser

import (
	"fmt"
	"io"
	"os"
	"strings"

	"docnum/internal/compile"
	"docnum/internal/content"
	"docnum/internal/element"
	"github.com/fumiama/go-docx"
)

// DOCXParser handles .docx files. Heading-styled paragraphs become heading
// elements; Caption-styled paragraphs become figures (body stays empty, the
// library does not expose embedded images); the rest becomes paragraphs.
type DOCXParser struct{}

func (p *DOCXParser) Parse(r io.Reader, filename string) (*compile.Document, error) {
	// go-docx needs a ReadSeeker+size, so write to temp file.
	tmp, err := os.CreateTemp("", "docnum-docx-*.docx")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	size, err := io.Copy(tmp, r)
	if err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("seek temp file: %w", err)
	}

	doc, err := docx.Parse(tmp, int64(size))
	tmp.Close()
	if err != nil {
		return nil, fmt.Errorf("parse docx: %w", err)
	}

	out := &compile.Document{
		Title: titleFromFilename(filename, ".docx"),
	}

	var currentText strings.Builder

	flushText := func() {
		t := strings.TrimSpace(currentText.String())
		if t != "" {
			out.Elements = append(out.Elements, &element.Paragraph{
				Body: content.Text(t),
			})
		}
		currentText.Reset()
	}

	for _, item := range doc.Document.Body.Items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}

		level := docxHeadingLevel(para)
		text := docxParagraphText(para)

		switch {
		case level > 0 && text != "":
			flushText()
			out.Elements = append(out.Elements, &element.Heading{
				Level: level,
				Title: text,
			})
		case docxIsCaption(para) && text != "":
			flushText()
			out.Elements = append(out.Elements, &element.Figure{
				Body:    content.Empty(),
				Caption: content.Text(text),
			})
		case text != "":
			if currentText.Len() > 0 {
				currentText.WriteString("\n\n")
			}
			currentText.WriteString(text)
		}
	}
	flushText()

	return out, nil
}

func docxHeadingLevel(para *docx.Paragraph) int {
	if para.Properties == nil || para.Properties.Style == nil {
		return 0
	}
	style := para.Properties.Style.Val
	switch {
	case strings.EqualFold(style, "Heading1") || strings.EqualFold(style, "heading 1"):
		return 1
	case strings.EqualFold(style, "Heading2") || strings.EqualFold(style, "heading 2"):
		return 2
	case strings.EqualFold(style, "Heading3") || strings.EqualFold(style, "heading 3"):
		return 3
	case strings.EqualFold(style, "Heading4") || strings.EqualFold(style, "heading 4"):
		return 4
	case strings.EqualFold(style, "Heading5") || strings.EqualFold(style, "heading 5"):
		return 5
	case strings.EqualFold(style, "Heading6") || strings.EqualFold(style, "heading 6"):
		return 6
	}
	return 0
}

func docxIsCaption(para *docx.Paragraph) bool {
	if para.Properties == nil || para.Properties.Style == nil {
		return false
	}
	return strings.EqualFold(para.Properties.Style.Val, "Caption")
}

func docxParagraphText(para *docx.Paragraph) string {
	var buf strings.Builder
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			if t, ok := rc.(*docx.Text); ok {
				buf.WriteString(t.Text)
			}
		}
	}
	return strings.TrimSpace(buf.String())
}
