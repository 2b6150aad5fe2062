package element

import (
	"docnum/internal/content"
	"docnum/internal/lang"
	"docnum/internal/numbering"
	"docnum/internal/style"

	"golang.org/x/text/language"
)

// KindFigure is the figure element kind and its default counter key.
const KindFigure = "figure"

// Figure is a document element with a body and an optional numbered caption.
// All figures sharing a counter key number through the same counter.
type Figure struct {
	Position

	Body    content.Content
	Caption content.Content // nil: no caption

	// Supplement configures the label prefix; the zero value resolves to
	// the localized element name.
	Supplement Supplement

	// CounterKey overrides the counter identity; empty means KindFigure.
	CounterKey string

	// Numbering overrides the scope's figure numbering. NoNumbering
	// disables numbering regardless of scope.
	Numbering   *numbering.Numbering
	NoNumbering bool

	// Sep overrides the scope's number/caption separator; Gap the vertical
	// gap between body and caption.
	Sep content.Content
	Gap *content.Em

	prepared  bool
	numbering *numbering.Numbering
}

func (f *Figure) Kind() string { return KindFigure }

// Synthesize caches the effective numbering for this instance from the
// resolved style. It produces no content.
func (f *Figure) Synthesize(sc *style.Scope) error {
	f.numbering = f.resolveNumbering(sc)
	f.prepared = true
	return nil
}

func (f *Figure) resolveNumbering(sc *style.Scope) *numbering.Numbering {
	if f.NoNumbering {
		return nil
	}
	if f.Numbering != nil {
		return f.Numbering
	}
	return sc.FigureNumbering()
}

func (f *Figure) effectiveNumbering(sc *style.Scope) *numbering.Numbering {
	if f.prepared {
		return f.numbering
	}
	return f.resolveNumbering(sc)
}

func (f *Figure) counterKey() string {
	if f.CounterKey != "" {
		return f.CounterKey
	}
	return KindFigure
}

// LocalName returns the localized name of the figure kind, falling back to
// English.
func (f *Figure) LocalName(tag language.Tag) string {
	return lang.Name(KindFigure, tag)
}

// Anchor builds the figure's cross-reference anchor: its counter, the
// resolved supplement and the effective numbering.
func (f *Figure) Anchor(p *Pass, sc *style.Scope) (*Anchor, error) {
	supplement, err := f.Supplement.Resolve(f, sc)
	if err != nil {
		return nil, err
	}
	return &Anchor{
		Counter:    p.Counters.For(f.counterKey()),
		Level:      1,
		Supplement: supplement,
		Numbering:  f.effectiveNumbering(sc),
	}, nil
}

// Show composes the final figure block: body, then (when anything labels the
// figure) a weak vertical gap followed by anchor, separator and caption. The
// result is an unbreakable, horizontally centered block. With neither
// numbering nor caption the body passes through unchanged inside the block.
func (f *Figure) Show(p *Pass, sc *style.Scope) (content.Content, error) {
	realized := f.Body

	var cap content.Content = content.Empty()

	if f.effectiveNumbering(sc) != nil {
		anchor, err := f.Anchor(p, sc)
		if err != nil {
			return nil, err
		}
		cap = content.Join(cap, anchor.Show(f.Location()))
	}

	if f.Caption != nil {
		if !cap.Empty() {
			cap = content.Join(cap, f.sep(sc))
		}
		cap = content.Join(cap, f.Caption)
	}

	if !cap.Empty() {
		realized = content.Join(
			realized,
			content.VSpace{Amount: f.gap(sc), Weak: true},
			cap,
		)
	}

	return content.Block{Body: realized, Breakable: false, Centered: true}, nil
}

func (f *Figure) sep(sc *style.Scope) content.Content {
	if f.Sep != nil {
		return f.Sep
	}
	return sc.FigureSep()
}

func (f *Figure) gap(sc *style.Scope) content.Em {
	if f.Gap != nil {
		return *f.Gap
	}
	return sc.FigureGap()
}
