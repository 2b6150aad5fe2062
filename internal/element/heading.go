package element

import (
	"docnum/internal/content"
	"docnum/internal/lang"
	"docnum/internal/numbering"
	"docnum/internal/style"

	"golang.org/x/text/language"
)

// KindHeading is the heading element kind and its counter key.
const KindHeading = "heading"

// Heading is a section title. Headings always step the heading counter at
// their own nesting level; the number is only rendered when the scope (or
// the heading itself) configures a numbering.
type Heading struct {
	Position

	Level int // 1-based nesting depth
	Title string

	// Numbering overrides the scope's heading numbering for this heading.
	Numbering *numbering.Numbering

	prepared  bool
	numbering *numbering.Numbering
}

func (h *Heading) Kind() string { return KindHeading }

// Synthesize caches the effective numbering from the resolved style.
func (h *Heading) Synthesize(sc *style.Scope) error {
	h.numbering = h.resolveNumbering(sc)
	h.prepared = true
	return nil
}

func (h *Heading) resolveNumbering(sc *style.Scope) *numbering.Numbering {
	if h.Numbering != nil {
		return h.Numbering
	}
	return sc.HeadingNumbering()
}

func (h *Heading) effectiveNumbering(sc *style.Scope) *numbering.Numbering {
	if h.prepared {
		return h.numbering
	}
	return h.resolveNumbering(sc)
}

// LocalName returns the localized name of the heading kind.
func (h *Heading) LocalName(tag language.Tag) string {
	return lang.Name(KindHeading, tag)
}

// Show steps the heading counter and renders the title, prefixed with the
// counter value when a numbering is configured.
func (h *Heading) Show(p *Pass, sc *style.Scope) (content.Content, error) {
	level := h.Level
	if level < 1 {
		level = 1
	}

	ctr := p.Counters.For(KindHeading)
	ctr.Step(h.Location(), level)

	body := content.Join(content.Text(h.Title))
	if n := h.effectiveNumbering(sc); n != nil {
		body = content.Join(
			ctr.Display(h.Location(), n, false),
			content.Text(content.NBSP),
			content.Text(h.Title),
		)
	}

	return content.Block{Body: body, Breakable: false}, nil
}
