// Package style exposes resolved configuration values to elements during
// synthesis and show. A Scope is a read-only chain: child scopes override
// their parent, and the root carries the documented defaults. How values get
// resolved into a scope (cascade, user markup) is outside this package.
package style

import (
	"docnum/internal/content"
	"docnum/internal/numbering"

	"golang.org/x/text/language"
)

// Key identifies one resolved option.
type Key int

const (
	KeyLang Key = iota
	KeyFigureNumbering
	KeyFigureSupplement
	KeyFigureSep
	KeyFigureGap
	KeyHeadingNumbering
)

// Default option values. Figures number with a plain arabic "1" pattern,
// separate caption from number with ": ", and leave 0.65em between body and
// caption. Headings are unnumbered unless a scope enables them.
var (
	DefaultFigureNumbering = numbering.FromPattern(numbering.MustPattern("1"))
	DefaultFigureSep       = content.Text(": ")
	DefaultFigureGap       = content.Em(0.65)
)

// Scope is one link in the style chain.
type Scope struct {
	parent *Scope
	key    Key
	value  any
}

// Root returns the default scope.
func Root() *Scope { return nil }

// With derives a child scope in which key resolves to value. A nil receiver
// is the root scope.
func (s *Scope) With(key Key, value any) *Scope {
	return &Scope{parent: s, key: key, value: value}
}

// Get resolves key against the chain. The second result is false when no
// scope sets the key.
func (s *Scope) Get(key Key) (any, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if cur.key == key {
			return cur.value, true
		}
	}
	return nil, false
}

// Lang returns the active language, defaulting to English.
func (s *Scope) Lang() language.Tag {
	if v, ok := s.Get(KeyLang); ok {
		return v.(language.Tag)
	}
	return language.English
}

// FigureNumbering returns the numbering for figures. A scope may set the key
// to a nil *numbering.Numbering to disable numbering outright.
func (s *Scope) FigureNumbering() *numbering.Numbering {
	if v, ok := s.Get(KeyFigureNumbering); ok {
		n, _ := v.(*numbering.Numbering)
		return n
	}
	return DefaultFigureNumbering
}

// HeadingNumbering returns the numbering for headings, nil when headings are
// unnumbered (the default).
func (s *Scope) HeadingNumbering() *numbering.Numbering {
	if v, ok := s.Get(KeyHeadingNumbering); ok {
		n, _ := v.(*numbering.Numbering)
		return n
	}
	return nil
}

// FigureSep returns the separator inserted between a figure's number and its
// caption.
func (s *Scope) FigureSep() content.Content {
	if v, ok := s.Get(KeyFigureSep); ok {
		c, _ := v.(content.Content)
		return c
	}
	return DefaultFigureSep
}

// FigureGap returns the vertical gap between a figure's body and caption.
func (s *Scope) FigureGap() content.Em {
	if v, ok := s.Get(KeyFigureGap); ok {
		return v.(content.Em)
	}
	return DefaultFigureGap
}
