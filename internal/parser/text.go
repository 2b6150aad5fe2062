package parser

import (
	"bufio"
	"io"
	"strings"

	"docnum/internal/compile"
	"docnum/internal/content"
	"docnum/internal/element"
)

// TextParser handles plain text files.
type TextParser struct{}

func (p *TextParser) Parse(r io.Reader, filename string) (*compile.Document, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var paragraphs []string
	var current strings.Builder

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			if current.Len() > 0 {
				paragraphs = append(paragraphs, current.String())
				current.Reset()
			}
		} else {
			if current.Len() > 0 {
				current.WriteString("\n")
			}
			current.WriteString(line)
		}
	}
	if current.Len() > 0 {
		paragraphs = append(paragraphs, current.String())
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	out := &compile.Document{
		Title: titleFromFilename(filename, ".txt"),
	}

	// Each paragraph becomes one element.
	for _, para := range paragraphs {
		out.Elements = append(out.Elements, &element.Paragraph{
			Body: content.Text(para),
		})
	}

	return out, nil
}
