package element

import (
	"fmt"

	"docnum/internal/content"
	"docnum/internal/source"
	"docnum/internal/style"
)

// SupplementMode selects how a supplement resolves.
type SupplementMode int

const (
	// SupplementAuto derives the supplement from the owning element's
	// localized name at show time.
	SupplementAuto SupplementMode = iota
	// SupplementNone suppresses the supplement entirely.
	SupplementNone
	// SupplementExplicit uses user-provided content.
	SupplementExplicit
)

// Supplement is the label content prefixed before a number. The zero value
// is the automatic mode.
type Supplement struct {
	Mode    SupplementMode
	Content content.Content // explicit literal

	// Expr is an explicit supplement that still needs evaluation. When set
	// it takes precedence over Content and its failure is reported as a
	// *SupplementError carrying Span.
	Expr func() (content.Content, error)
	Span source.Span
}

// SupplementError reports a failed explicit-supplement evaluation.
type SupplementError struct {
	Span source.Span
	Err  error
}

func (e *SupplementError) Error() string {
	return fmt.Sprintf("%s: evaluate supplement: %s", e.Span, e.Err)
}

func (e *SupplementError) Unwrap() error { return e.Err }

// Resolve produces the supplement content. Automatic resolution consults the
// owner's localized name under the scope's language; none resolves to empty
// content. Only explicit expressions can fail.
func (s Supplement) Resolve(owner LocalNamer, sc *style.Scope) (content.Content, error) {
	switch s.Mode {
	case SupplementNone:
		return content.Empty(), nil
	case SupplementExplicit:
		if s.Expr != nil {
			c, err := s.Expr()
			if err != nil {
				return nil, &SupplementError{Span: s.Span, Err: err}
			}
			return c, nil
		}
		if s.Content == nil {
			return content.Empty(), nil
		}
		return s.Content, nil
	default:
		if owner == nil {
			return content.Empty(), nil
		}
		return content.Text(owner.LocalName(sc.Lang())), nil
	}
}
