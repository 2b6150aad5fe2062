package parser

import (
	"bytes"
	"io"
	"strings"

	"docnum/internal/compile"
	"docnum/internal/content"
	"docnum/internal/element"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownParser handles Markdown files using goldmark. Headings become
// heading elements, image-only paragraphs become figures, everything else
// becomes paragraph elements.
type MarkdownParser struct{}

func (p *MarkdownParser) Parse(r io.Reader, filename string) (*compile.Document, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New()
	reader := text.NewReader(src)
	doc := md.Parser().Parse(reader)

	out := &compile.Document{
		Title: titleFromFilename(filename, ".md", ".markdown"),
	}

	var currentText bytes.Buffer

	flushText := func() {
		t := strings.TrimSpace(currentText.String())
		if t != "" {
			out.Elements = append(out.Elements, &element.Paragraph{
				Body: content.Text(t),
			})
		}
		currentText.Reset()
	}

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			flushText()
			out.Elements = append(out.Elements, &element.Heading{
				Level: node.Level,
				Title: string(node.Text(src)),
			})

		case *ast.Paragraph:
			if img := soleImage(node); img != nil {
				flushText()
				out.Elements = append(out.Elements, figureFromImage(img, src))
				continue
			}
			appendBlockText(&currentText, n, src)

		default:
			appendBlockText(&currentText, n, src)
		}
	}
	flushText()

	return out, nil
}

// soleImage returns the paragraph's image when the paragraph holds exactly
// one image and nothing else; such paragraphs are treated as figures.
func soleImage(para *ast.Paragraph) *ast.Image {
	if para.ChildCount() != 1 {
		return nil
	}
	img, ok := para.FirstChild().(*ast.Image)
	if !ok {
		return nil
	}
	return img
}

// figureFromImage builds a figure element. The image's title text (the
// quoted part of the markup) captions the figure, falling back to alt text.
func figureFromImage(img *ast.Image, src []byte) *element.Figure {
	alt := string(img.Text(src))
	fig := &element.Figure{
		Body: content.Image{Src: string(img.Destination), Alt: alt},
	}
	caption := strings.TrimSpace(string(img.Title))
	if caption == "" {
		caption = strings.TrimSpace(alt)
	}
	if caption != "" {
		fig.Caption = content.Text(caption)
	}
	return fig
}

func appendBlockText(buf *bytes.Buffer, n ast.Node, src []byte) {
	t := extractText(n, src)
	if t == "" {
		return
	}
	if buf.Len() > 0 {
		buf.WriteString("\n\n")
	}
	buf.WriteString(t)
}

// extractText gets the text content of a goldmark AST node. Inline children
// cover the same source segments as the block's raw lines, so the lines are
// only used for childless blocks (code blocks, thematic content).
func extractText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	if n.ChildCount() == 0 && n.Type() == ast.TypeBlock {
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			buf.Write(seg.Value(src))
		}
		return strings.TrimSpace(buf.String())
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Value(src))
			if t.HardLineBreak() || t.SoftLineBreak() {
				buf.WriteByte('\n')
			}
		} else {
			buf.WriteString(extractText(c, src))
		}
	}
	return strings.TrimSpace(buf.String())
}
