// Package source identifies locations in source documents for error
// reporting.
package source

import "fmt"

// Span points at a range in a source file. The zero Span marks values that
// did not originate in a source file (compiled-in defaults, API options).
type Span struct {
	File  string
	Line  int
	Start int
	End   int
}

func (s Span) String() string {
	if s.File == "" && s.Line == 0 {
		return "<builtin>"
	}
	return fmt.Sprintf("%s:%d:%d", s.File, s.Line, s.Start)
}
