package numbering

import (
	"docnum/internal/content"
	"docnum/internal/source"
)

// Func is an opaque numbering callback. It receives the exact current value
// vector and its output is used verbatim.
type Func func(nums []int) content.Content

// Numbering maps a counter value vector to display content, either through a
// parsed pattern or through a user function.
type Numbering struct {
	pattern *Pattern
	fn      Func
}

// FromPattern wraps a parsed pattern.
func FromPattern(p *Pattern) *Numbering {
	return &Numbering{pattern: p}
}

// Parse parses pattern text into a Numbering. Invalid text fails with
// *InvalidPatternError.
func Parse(text string, span source.Span) (*Numbering, error) {
	p, err := ParsePattern(text, span)
	if err != nil {
		return nil, err
	}
	return &Numbering{pattern: p}, nil
}

// FromFunc wraps a numbering function.
func FromFunc(fn Func) *Numbering {
	return &Numbering{fn: fn}
}

// Apply formats the value vector.
func (n *Numbering) Apply(nums []int) content.Content {
	if n.fn != nil {
		exact := make([]int, len(nums))
		copy(exact, nums)
		return n.fn(exact)
	}
	return content.Text(n.pattern.Apply(nums))
}
