package numbering

import (
	"fmt"
	"strconv"
	"strings"

	"docnum/internal/source"
)

// InvalidPatternError reports numbering pattern text that could not be
// decomposed into counting specifiers. It is a construction-time error and is
// never converted into a silent default.
type InvalidPatternError struct {
	Pattern string
	Span    source.Span
}

func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("%s: invalid numbering pattern %q", e.Span, e.Pattern)
}

// SpecifierKind is one per-level counting scheme.
type SpecifierKind int

const (
	Arabic     SpecifierKind = iota // 1, 2, 3, ...
	LowerAlpha                      // a, b, ..., z, aa, ...
	UpperAlpha                      // A, B, ...
	LowerRoman                      // i, ii, iii, ...
	UpperRoman                      // I, II, III, ...
)

// piece is one specifier together with the literal text preceding it.
type piece struct {
	prefix string
	kind   SpecifierKind
}

// Pattern is a parsed numbering pattern: an ordered sequence of per-level
// specifiers with literal separators, plus a trailing suffix. Specifier
// characters are 1, a, A, i and I; everything else is literal.
type Pattern struct {
	pieces []piece
	suffix string
}

// ParsePattern parses pattern text. Text with no recognized specifier
// (including the empty string) fails with *InvalidPatternError.
func ParsePattern(text string, span source.Span) (*Pattern, error) {
	var p Pattern
	var literal strings.Builder
	for _, r := range text {
		kind, ok := specifierFor(r)
		if !ok {
			literal.WriteRune(r)
			continue
		}
		p.pieces = append(p.pieces, piece{prefix: literal.String(), kind: kind})
		literal.Reset()
	}
	p.suffix = literal.String()
	if len(p.pieces) == 0 {
		return nil, &InvalidPatternError{Pattern: text, Span: span}
	}
	return &p, nil
}

// MustPattern parses a pattern known to be valid. It is reserved for
// compiled-in defaults.
func MustPattern(text string) *Pattern {
	p, err := ParsePattern(text, source.Span{})
	if err != nil {
		panic(err)
	}
	return p
}

func specifierFor(r rune) (SpecifierKind, bool) {
	switch r {
	case '1':
		return Arabic, true
	case 'a':
		return LowerAlpha, true
	case 'A':
		return UpperAlpha, true
	case 'i':
		return LowerRoman, true
	case 'I':
		return UpperRoman, true
	}
	return 0, false
}

// Apply formats a value vector through the pattern. Positions pair
// left-to-right; when the vector is longer than the pattern, trailing levels
// reuse the last specifier's scheme and its prefix; when shorter, only the
// first len(nums) specifiers are used.
func (p *Pattern) Apply(nums []int) string {
	var b strings.Builder
	last := p.pieces[len(p.pieces)-1]
	for i, n := range nums {
		pc := last
		if i < len(p.pieces) {
			pc = p.pieces[i]
		}
		b.WriteString(pc.prefix)
		b.WriteString(formatLevel(pc.kind, n))
	}
	b.WriteString(p.suffix)
	return b.String()
}

func formatLevel(kind SpecifierKind, n int) string {
	switch kind {
	case LowerAlpha:
		return alphabetic(n)
	case UpperAlpha:
		return strings.ToUpper(alphabetic(n))
	case LowerRoman:
		return strings.ToLower(roman(n))
	case UpperRoman:
		return roman(n)
	default:
		return strconv.Itoa(n)
	}
}

// alphabetic renders n in bijective base-26 (1 -> a, 26 -> z, 27 -> aa).
// Zero has no alphabetic form and renders as "-".
func alphabetic(n int) string {
	if n <= 0 {
		return "-"
	}
	var b []byte
	for n > 0 {
		n--
		b = append([]byte{byte('a' + n%26)}, b...)
		n /= 26
	}
	return string(b)
}

var romanPairs = []struct {
	value int
	text  string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

// roman renders n in uppercase Roman numerals, with the medieval N for zero.
func roman(n int) string {
	if n <= 0 {
		return "N"
	}
	var b strings.Builder
	for _, pair := range romanPairs {
		for n >= pair.value {
			b.WriteString(pair.text)
			n -= pair.value
		}
	}
	return b.String()
}
