package compile

import (
	"errors"
	"strings"
	"testing"

	"docnum/internal/content"
	"docnum/internal/element"
	"docnum/internal/numbering"
	"docnum/internal/render"
	"docnum/internal/source"
	"docnum/internal/style"
)

func TestCompile_FiguresNumberInDocumentOrder(t *testing.T) {
	doc := &Document{
		Title: "report",
		Elements: []element.Element{
			&element.Figure{Body: content.Text("a"), Caption: content.Text("first")},
			&element.Paragraph{Body: content.Text("between")},
			&element.Figure{Body: content.Text("b"), Caption: content.Text("second")},
			&element.Figure{Body: content.Text("c"), Caption: content.Text("third")},
		},
	}

	res := Compile(doc, style.Root())
	if len(res.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}

	text := render.Plain(res.Content)
	for i, caption := range []string{"first", "second", "third"} {
		want := "Figure" + content.NBSP + string(rune('1'+i)) + ": " + caption
		if !strings.Contains(text, want) {
			t.Errorf("expected %q in output:\n%s", want, text)
		}
	}
}

func TestCompile_HeadingCounterTracksNesting(t *testing.T) {
	n, err := numbering.Parse("1.1", source.Span{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sc := style.Root().With(style.KeyHeadingNumbering, n)

	doc := &Document{
		Elements: []element.Element{
			&element.Heading{Level: 1, Title: "Intro"},
			&element.Heading{Level: 2, Title: "Background"},
			&element.Heading{Level: 2, Title: "Scope"},
			&element.Heading{Level: 1, Title: "Methods"},
		},
	}

	res := Compile(doc, sc)
	text := render.Plain(res.Content)

	wants := []string{
		"1" + content.NBSP + "Intro",
		"1.1" + content.NBSP + "Background",
		"1.2" + content.NBSP + "Scope",
		"2" + content.NBSP + "Methods",
	}
	for _, want := range wants {
		if !strings.Contains(text, want) {
			t.Errorf("expected %q in output:\n%s", want, text)
		}
	}
}

func TestCompile_ElementErrorDoesNotAbortDocument(t *testing.T) {
	evalErr := errors.New("boom")
	doc := &Document{
		Elements: []element.Element{
			&element.Figure{Body: content.Text("ok1"), Caption: content.Text("fine")},
			&element.Figure{
				Body: content.Text("bad"),
				Supplement: element.Supplement{
					Mode: element.SupplementExplicit,
					Expr: func() (content.Content, error) { return nil, evalErr },
				},
			},
			&element.Figure{Body: content.Text("ok2"), Caption: content.Text("also fine")},
		},
	}

	res := Compile(doc, style.Root())

	if len(res.Errors) != 1 {
		t.Fatalf("expected 1 element error, got %d", len(res.Errors))
	}
	if res.Errors[0].Location != 1 {
		t.Errorf("expected error at location 1, got %d", res.Errors[0].Location)
	}
	if res.Errors[0].Kind != element.KindFigure {
		t.Errorf("expected figure kind, got %q", res.Errors[0].Kind)
	}
	if !errors.Is(res.Errors[0], evalErr) {
		t.Error("expected the evaluation error to pass through unmodified")
	}

	text := render.Plain(res.Content)
	if !strings.Contains(text, "fine") || !strings.Contains(text, "also fine") {
		t.Errorf("expected surviving elements in output:\n%s", text)
	}
}

func TestCompile_FailedAnchorStillStepsNothing(t *testing.T) {
	// The failing figure errors out during supplement resolution, before
	// its anchor steps the counter, so the next figure takes its number.
	doc := &Document{
		Elements: []element.Element{
			&element.Figure{
				Body: content.Text("bad"),
				Supplement: element.Supplement{
					Mode: element.SupplementExplicit,
					Expr: func() (content.Content, error) { return nil, errors.New("boom") },
				},
			},
			&element.Figure{Body: content.Text("ok"), Caption: content.Text("survivor")},
		},
	}

	res := Compile(doc, style.Root())
	text := render.Plain(res.Content)

	want := "Figure" + content.NBSP + "1: survivor"
	if !strings.Contains(text, want) {
		t.Errorf("expected %q in output:\n%s", want, text)
	}
}

func TestCompile_ShowOnlyElementsPassThrough(t *testing.T) {
	doc := &Document{
		Elements: []element.Element{
			&element.Paragraph{Body: content.Text("plain")},
		},
	}

	res := Compile(doc, style.Root())
	if got := render.Plain(res.Content); got != "plain" {
		t.Errorf("expected %q, got %q", "plain", got)
	}
}

func TestDocument_FigureCount(t *testing.T) {
	doc := &Document{
		Elements: []element.Element{
			&element.Figure{Body: content.Text("a")},
			&element.Paragraph{Body: content.Text("p")},
			&element.Figure{Body: content.Text("b")},
		},
	}
	if got := doc.FigureCount(); got != 2 {
		t.Errorf("expected 2 figures, got %d", got)
	}
}
