// Package element defines the document element kinds and the capability
// interfaces the compiler dispatches on. Each capability is a separate
// interface; an element type declares the subset it implements.
package element

import (
	"docnum/internal/content"
	"docnum/internal/counter"
	"docnum/internal/style"

	"golang.org/x/text/language"
)

// Element is any document element. Kind names the element type and doubles
// as the default counter key for elements that number themselves.
type Element interface {
	Kind() string
}

// Locatable elements occupy a position in document order. The compiler
// assigns locations during the synthesis pass.
type Locatable interface {
	Location() counter.Location
	SetLocation(counter.Location)
}

// Synthesizer elements materialize style-derived defaults before rendering.
// Synthesize must not produce content.
type Synthesizer interface {
	Synthesize(sc *style.Scope) error
}

// Shower elements render themselves to content.
type Shower interface {
	Show(p *Pass, sc *style.Scope) (content.Content, error)
}

// LocalNamer elements have a localized display name.
type LocalNamer interface {
	LocalName(tag language.Tag) string
}

// RefAnchorer elements can produce a numbered cross-reference anchor.
type RefAnchorer interface {
	Anchor(p *Pass, sc *style.Scope) (*Anchor, error)
}

// Pass carries the shared compilation state elements touch while rendering.
type Pass struct {
	Counters *counter.Log
}

// Position implements Locatable for embedding.
type Position struct {
	loc counter.Location
}

func (p *Position) Location() counter.Location       { return p.loc }
func (p *Position) SetLocation(loc counter.Location) { p.loc = loc }
