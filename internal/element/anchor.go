package element

import (
	"docnum/internal/content"
	"docnum/internal/counter"
	"docnum/internal/numbering"
)

// Anchor is the transient label of a numbered element: supplement, then a
// non-breaking space, then the stepped counter value. Anchors are built
// during show and converted to content immediately; they are never stored in
// the document.
type Anchor struct {
	Counter    counter.Counter
	Level      int             // 1-based, defaults to 1
	Supplement content.Content // already resolved
	Numbering  *numbering.Numbering
}

// Show renders the anchor at the given document location. When a numbering
// is present the counter is stepped at loc as a side effect, binding the
// number to the anchor's render position; without one the supplement alone
// (possibly empty) is the output.
func (a *Anchor) Show(loc counter.Location) content.Content {
	var out content.Content = content.Empty()

	if a.Supplement != nil && !a.Supplement.Empty() {
		out = content.Join(out, a.Supplement, content.Text(content.NBSP))
	}

	if a.Numbering != nil {
		level := a.Level
		if level < 1 {
			level = 1
		}
		a.Counter.Step(loc, level)
		out = content.Join(out, a.Counter.Display(loc, a.Numbering, false))
	}

	return out
}
