package element

import (
	"docnum/internal/content"
	"docnum/internal/style"
)

// KindParagraph is the paragraph element kind.
const KindParagraph = "paragraph"

// Paragraph is a plain block of body content.
type Paragraph struct {
	Position

	Body content.Content
}

func (p *Paragraph) Kind() string { return KindParagraph }

// Show renders the body unchanged inside a breakable block.
func (p *Paragraph) Show(_ *Pass, _ *style.Scope) (content.Content, error) {
	return content.Block{Body: p.Body, Breakable: true}, nil
}
