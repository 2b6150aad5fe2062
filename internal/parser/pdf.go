package parser

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"docnum/internal/compile"
	"docnum/internal/content"
	"docnum/internal/element"
	pdflib "github.com/ledongthuc/pdf"
)

// PDFParser handles PDF files. It tries the Go library first,
// then falls back to pdftotext if available.
type PDFParser struct {
	FallbackPdftotext bool
}

func (p *PDFParser) Parse(r io.Reader, filename string) (*compile.Document, error) {
	// ledongthuc/pdf requires a ReadSeeker+size, so we write to a temp file.
	tmp, err := os.CreateTemp("", "docnum-pdf-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	tmp.Close()

	text, err := extractPDFText(tmpPath)
	if err != nil && p.FallbackPdftotext {
		text, err = extractPdftotext(tmpPath)
	}
	if err != nil {
		return nil, fmt.Errorf("extract pdf text: %w", err)
	}

	out := &compile.Document{
		Title: titleFromFilename(filename, ".pdf"),
	}

	// Each non-empty page becomes a heading plus its text.
	for i, page := range splitPages(text) {
		page = strings.TrimSpace(page)
		if page == "" {
			continue
		}
		out.Elements = append(out.Elements,
			&element.Heading{Level: 1, Title: fmt.Sprintf("Page %d", i+1)},
			&element.Paragraph{Body: content.Text(page)},
		)
	}

	if len(out.Elements) == 0 && strings.TrimSpace(text) != "" {
		out.Elements = append(out.Elements, &element.Paragraph{
			Body: content.Text(strings.TrimSpace(text)),
		})
	}

	return out, nil
}

func extractPDFText(path string) (string, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var buf strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if i > 1 {
			buf.WriteString("\f") // Form feed as page separator.
		}
		buf.WriteString(text)
	}
	return buf.String(), nil
}

func extractPdftotext(path string) (string, error) {
	cmd := exec.Command("pdftotext", "-layout", path, "-")
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("pdftotext: %w", err)
	}
	return string(out), nil
}

func splitPages(text string) []string {
	return strings.Split(text, "\f")
}
