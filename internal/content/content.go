package content

import "strings"

// Content is a value in the compiled output tree. Parsers and elements build
// Content; the render package turns it into text or HTML.
type Content interface {
	// Plain flattens the content to display text, dropping structure.
	Plain() string
	// Empty reports whether the content contributes nothing.
	Empty() bool
}

// NBSP is the non-breaking space inserted between a supplement and a number.
const NBSP = " "

// Text is a run of literal text.
type Text string

func (t Text) Plain() string { return string(t) }
func (t Text) Empty() bool   { return t == "" }

// Seq is an ordered concatenation of content values.
type Seq []Content

func (s Seq) Plain() string {
	var b strings.Builder
	for _, c := range s {
		b.WriteString(c.Plain())
	}
	return b.String()
}

func (s Seq) Empty() bool {
	for _, c := range s {
		if !c.Empty() {
			return false
		}
	}
	return true
}

// Em is a font-relative length.
type Em float64

// VSpace is vertical space between content. A weak space collapses when it
// has nothing on one side.
type VSpace struct {
	Amount Em
	Weak   bool
}

func (v VSpace) Plain() string { return "\n" }
func (v VSpace) Empty() bool   { return false }

// Block groups content into a layout block.
type Block struct {
	Body      Content
	Breakable bool
	Centered  bool
}

func (b Block) Plain() string {
	if b.Body == nil {
		return ""
	}
	return b.Body.Plain()
}

func (b Block) Empty() bool { return b.Body == nil || b.Body.Empty() }

// Image is a graphic reference carried through from the source document.
type Image struct {
	Src string
	Alt string
}

func (i Image) Plain() string {
	if i.Alt != "" {
		return "[" + i.Alt + "]"
	}
	return "[" + i.Src + "]"
}

func (i Image) Empty() bool { return i.Src == "" && i.Alt == "" }

// Table is tabular content, first row optionally a header.
type Table struct {
	Header []string
	Rows   [][]string
}

func (t Table) Plain() string {
	var b strings.Builder
	if len(t.Header) > 0 {
		b.WriteString(strings.Join(t.Header, " | "))
		b.WriteString("\n")
	}
	for _, row := range t.Rows {
		b.WriteString(strings.Join(row, " | "))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (t Table) Empty() bool { return len(t.Header) == 0 && len(t.Rows) == 0 }

// Empty returns content that contributes nothing.
func Empty() Content { return Seq(nil) }

// Join appends parts to a sequence, skipping nils.
func Join(parts ...Content) Content {
	var seq Seq
	for _, p := range parts {
		if p == nil {
			continue
		}
		seq = append(seq, p)
	}
	return seq
}
