package parser

import (
	"strings"
	"testing"

	"docnum/internal/content"
	"docnum/internal/element"
)

func TestMarkdownParser_HeadingsAndParagraphs(t *testing.T) {
	input := `# Title

Intro text.

## Section A

Section A content.

### Subsection A1

Subsection A1 content.
`
	p := &MarkdownParser{}
	doc, err := p.Parse(strings.NewReader(input), "doc.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if doc.Title != "doc" {
		t.Errorf("expected title %q, got %q", "doc", doc.Title)
	}

	if len(doc.Elements) != 6 {
		t.Fatalf("expected 6 elements, got %d", len(doc.Elements))
	}

	wantHeadings := []struct {
		index int
		level int
		title string
	}{
		{0, 1, "Title"},
		{2, 2, "Section A"},
		{4, 3, "Subsection A1"},
	}
	for _, want := range wantHeadings {
		h, ok := doc.Elements[want.index].(*element.Heading)
		if !ok {
			t.Fatalf("element %d: expected heading, got %T", want.index, doc.Elements[want.index])
		}
		if h.Level != want.level || h.Title != want.title {
			t.Errorf("element %d: expected level %d title %q, got level %d title %q",
				want.index, want.level, want.title, h.Level, h.Title)
		}
	}

	para, ok := doc.Elements[1].(*element.Paragraph)
	if !ok {
		t.Fatalf("element 1: expected paragraph, got %T", doc.Elements[1])
	}
	if !strings.Contains(para.Body.Plain(), "Intro text.") {
		t.Errorf("expected intro paragraph, got %q", para.Body.Plain())
	}
}

func TestMarkdownParser_ImageParagraphBecomesFigure(t *testing.T) {
	input := `# Results

![Quarterly revenue](revenue.png)

Some analysis.
`
	p := &MarkdownParser{}
	doc, err := p.Parse(strings.NewReader(input), "results.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(doc.Elements) != 3 {
		t.Fatalf("expected 3 elements, got %d", len(doc.Elements))
	}

	fig, ok := doc.Elements[1].(*element.Figure)
	if !ok {
		t.Fatalf("expected figure, got %T", doc.Elements[1])
	}
	img, ok := fig.Body.(content.Image)
	if !ok {
		t.Fatalf("expected image body, got %T", fig.Body)
	}
	if img.Src != "revenue.png" {
		t.Errorf("expected src revenue.png, got %q", img.Src)
	}
	if fig.Caption == nil || fig.Caption.Plain() != "Quarterly revenue" {
		t.Errorf("expected alt text caption, got %v", fig.Caption)
	}
}

func TestMarkdownParser_ImageTitleWinsAsCaption(t *testing.T) {
	input := "![alt text](chart.png \"The real caption\")\n"

	p := &MarkdownParser{}
	doc, err := p.Parse(strings.NewReader(input), "chart.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(doc.Elements) != 1 {
		t.Fatalf("expected 1 element, got %d", len(doc.Elements))
	}
	fig, ok := doc.Elements[0].(*element.Figure)
	if !ok {
		t.Fatalf("expected figure, got %T", doc.Elements[0])
	}
	if fig.Caption.Plain() != "The real caption" {
		t.Errorf("expected title caption, got %q", fig.Caption.Plain())
	}
}

func TestMarkdownParser_InlineImageStaysText(t *testing.T) {
	input := "See ![icon](icon.png) inline.\n"

	p := &MarkdownParser{}
	doc, err := p.Parse(strings.NewReader(input), "inline.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, el := range doc.Elements {
		if _, ok := el.(*element.Figure); ok {
			t.Fatal("inline image must not become a figure")
		}
	}
}

func TestMarkdownParser_NoHeadings(t *testing.T) {
	input := `Just some plain text.

Another paragraph here.`

	p := &MarkdownParser{}
	doc, err := p.Parse(strings.NewReader(input), "plain.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Consecutive text blocks merge into a single paragraph element.
	if len(doc.Elements) != 1 {
		t.Fatalf("expected 1 element for headingless markdown, got %d", len(doc.Elements))
	}
	text := doc.Elements[0].(*element.Paragraph).Body.Plain()
	if !strings.Contains(text, "Just some plain text.") {
		t.Errorf("expected text to contain first paragraph, got %q", text)
	}
	if !strings.Contains(text, "Another paragraph here.") {
		t.Errorf("expected text to contain second paragraph, got %q", text)
	}
}

func TestMarkdownParser_EmptyInput(t *testing.T) {
	p := &MarkdownParser{}
	doc, err := p.Parse(strings.NewReader(""), "empty.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Elements) != 0 {
		t.Errorf("expected 0 elements for empty input, got %d", len(doc.Elements))
	}
}

func TestMarkdownParser_TitleStripping(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"readme.md", "readme"},
		{"notes.markdown", "notes"},
		{"plain.md", "plain"},
	}
	p := &MarkdownParser{}
	for _, tt := range tests {
		doc, err := p.Parse(strings.NewReader("text"), tt.filename)
		if err != nil {
			t.Fatalf("unexpected error for %s: %v", tt.filename, err)
		}
		if doc.Title != tt.want {
			t.Errorf("filename=%q: expected title %q, got %q", tt.filename, tt.want, doc.Title)
		}
	}
}
