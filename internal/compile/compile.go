// Package compile drives the two-phase element pipeline: a synthesis pass
// that assigns document locations and materializes style-derived defaults,
// then a show pass that renders every element to content in the same order.
package compile

import (
	"fmt"

	"docnum/internal/content"
	"docnum/internal/counter"
	"docnum/internal/element"
	"docnum/internal/style"
)

// Document is an ordered sequence of elements to compile.
type Document struct {
	Title    string
	Elements []element.Element
}

// ElementError is a show failure pinned to its element.
type ElementError struct {
	Location counter.Location
	Kind     string
	Err      error
}

func (e ElementError) Error() string {
	return fmt.Sprintf("element %d (%s): %s", e.Location, e.Kind, e.Err)
}

func (e ElementError) Unwrap() error { return e.Err }

// Result is the outcome of compiling a document. Content holds the rendered
// blocks of every element that showed successfully; Errors the failures that
// did not abort the document.
type Result struct {
	Content  content.Content
	Counters *counter.Log
	Errors   []ElementError
}

// Compile runs both passes over the document under the given style scope.
// Elements are visited strictly in document order; counter updates recorded
// during show therefore match traversal order. A failing element is reported
// in Result.Errors and skipped, not fatal to the document.
func Compile(doc *Document, sc *style.Scope) *Result {
	counters := counter.NewLog()
	pass := &element.Pass{Counters: counters}
	res := &Result{Counters: counters}

	// Synthesis: locations first, then style-default materialization.
	for i, el := range doc.Elements {
		if loc, ok := el.(element.Locatable); ok {
			loc.SetLocation(counter.Location(i))
		}
		if syn, ok := el.(element.Synthesizer); ok {
			if err := syn.Synthesize(sc); err != nil {
				res.Errors = append(res.Errors, ElementError{
					Location: counter.Location(i),
					Kind:     el.Kind(),
					Err:      err,
				})
			}
		}
	}

	// Show: same order, one element at a time.
	var blocks content.Seq
	for i, el := range doc.Elements {
		shower, ok := el.(element.Shower)
		if !ok {
			continue
		}
		c, err := shower.Show(pass, sc)
		if err != nil {
			res.Errors = append(res.Errors, ElementError{
				Location: counter.Location(i),
				Kind:     el.Kind(),
				Err:      err,
			})
			continue
		}
		blocks = append(blocks, c)
	}

	res.Content = blocks
	return res
}

// FigureCount reports how many figure elements the document contains.
func (d *Document) FigureCount() int {
	n := 0
	for _, el := range d.Elements {
		if el.Kind() == element.KindFigure {
			n++
		}
	}
	return n
}
