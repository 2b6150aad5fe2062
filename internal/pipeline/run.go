package pipeline

import (
	"bytes"
	"fmt"
	"strings"

	"docnum/internal/compile"
	"docnum/internal/config"
	"docnum/internal/content"
	"docnum/internal/element"
	"docnum/internal/lang"
	"docnum/internal/numbering"
	"docnum/internal/parser"
	"docnum/internal/render"
	"docnum/internal/source"
	"docnum/internal/style"
)

// CompileOptions are per-request overrides of the configured defaults.
type CompileOptions struct {
	Title string `json:"title,omitempty"`

	// Lang is a BCP 47 code ("en", "de-AT").
	Lang string `json:"lang,omitempty"`

	// Numbering is a figure numbering pattern, or "none" to disable
	// figure numbering.
	Numbering string `json:"numbering,omitempty"`

	// Supplement is "" (automatic), "none", or explicit label text.
	Supplement string `json:"supplement,omitempty"`

	// HeadingNumbering is a heading numbering pattern; headings stay
	// unnumbered when empty.
	HeadingNumbering string `json:"heading_numbering,omitempty"`
}

// Outcome is the rendered result of one compilation.
type Outcome struct {
	Title   string   `json:"title"`
	Text    string   `json:"text"`
	HTML    string   `json:"html"`
	Figures int      `json:"figures"`
	Errors  []string `json:"errors"`
}

// ScopeFor builds the style scope for one compilation from the configured
// defaults and the request overrides. Invalid numbering patterns fail here,
// before any element is touched.
func ScopeFor(cfg config.Config, opts CompileOptions) (*style.Scope, error) {
	sc := style.Root()

	code := opts.Lang
	if code == "" {
		code = cfg.DefaultLang
	}
	sc = sc.With(style.KeyLang, lang.Parse(code))

	pattern := opts.Numbering
	if pattern == "" {
		pattern = cfg.DefaultFigureNumbering
	}
	switch pattern {
	case "none":
		sc = sc.With(style.KeyFigureNumbering, (*numbering.Numbering)(nil))
	default:
		n, err := numbering.Parse(pattern, source.Span{File: "numbering", Line: 1, End: len(pattern)})
		if err != nil {
			return nil, err
		}
		sc = sc.With(style.KeyFigureNumbering, n)
	}

	switch opts.Supplement {
	case "":
	case "none":
		sc = sc.With(style.KeyFigureSupplement, element.Supplement{Mode: element.SupplementNone})
	default:
		sc = sc.With(style.KeyFigureSupplement, element.Supplement{
			Mode:    element.SupplementExplicit,
			Content: content.Text(opts.Supplement),
		})
	}

	if opts.HeadingNumbering != "" {
		n, err := numbering.Parse(opts.HeadingNumbering, source.Span{File: "heading_numbering", Line: 1, End: len(opts.HeadingNumbering)})
		if err != nil {
			return nil, err
		}
		sc = sc.With(style.KeyHeadingNumbering, n)
	}

	sc = sc.With(style.KeyFigureGap, content.Em(cfg.DefaultFigureGapEm))

	return sc, nil
}

// CompileFile parses, compiles and renders one uploaded document. Element
// show errors do not fail the compilation; they are reported in the outcome.
func CompileFile(cfg config.Config, data []byte, filename string, opts CompileOptions) (*Outcome, error) {
	p, err := parser.ForFile(filename)
	if err != nil {
		return nil, err
	}
	if pdfp, ok := p.(*parser.PDFParser); ok {
		pdfp.FallbackPdftotext = cfg.PDFFallbackPdftotext
	}

	doc, err := p.Parse(bytes.NewReader(data), filename)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if opts.Title != "" {
		doc.Title = opts.Title
	}

	sc, err := ScopeFor(cfg, opts)
	if err != nil {
		return nil, err
	}

	applyScopeSupplement(doc, sc)

	res := compile.Compile(doc, sc)

	out := &Outcome{
		Title:   doc.Title,
		Text:    render.Plain(res.Content),
		HTML:    render.HTML(res.Content),
		Figures: doc.FigureCount(),
		Errors:  []string{},
	}
	for _, e := range res.Errors {
		out.Errors = append(out.Errors, e.Error())
	}
	return out, nil
}

// applyScopeSupplement pushes a scope-level supplement override onto figures
// that did not configure their own.
func applyScopeSupplement(doc *compile.Document, sc *style.Scope) {
	v, ok := sc.Get(style.KeyFigureSupplement)
	if !ok {
		return
	}
	sup, ok := v.(element.Supplement)
	if !ok {
		return
	}
	for _, el := range doc.Elements {
		fig, ok := el.(*element.Figure)
		if !ok {
			continue
		}
		if fig.Supplement.Mode == element.SupplementAuto && fig.Supplement.Expr == nil && fig.Supplement.Content == nil {
			fig.Supplement = sup
		}
	}
}

// JobID derives a stable job identifier from the upload.
func JobID(filename string, data []byte, nonce string) string {
	var b strings.Builder
	b.WriteString(filename)
	b.WriteString("-")
	b.WriteString(nonce)
	b.Write(data)
	return ContentHashHex([]byte(b.String()))[:20]
}
