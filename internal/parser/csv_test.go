package parser

import (
	"strings"
	"testing"

	"docnum/internal/content"
	"docnum/internal/element"
)

func TestCSVParser_FileBecomesTableFigure(t *testing.T) {
	input := "name,value\na,1\nb,2\n"

	p := &CSVParser{}
	doc, err := p.Parse(strings.NewReader(input), "metrics.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if doc.Title != "metrics" {
		t.Errorf("expected title %q, got %q", "metrics", doc.Title)
	}
	if len(doc.Elements) != 1 {
		t.Fatalf("expected 1 element, got %d", len(doc.Elements))
	}

	fig, ok := doc.Elements[0].(*element.Figure)
	if !ok {
		t.Fatalf("expected figure, got %T", doc.Elements[0])
	}
	table, ok := fig.Body.(content.Table)
	if !ok {
		t.Fatalf("expected table body, got %T", fig.Body)
	}
	if len(table.Header) != 2 || table.Header[0] != "name" {
		t.Errorf("expected header [name value], got %v", table.Header)
	}
	if len(table.Rows) != 2 || table.Rows[1][1] != "2" {
		t.Errorf("expected 2 data rows, got %v", table.Rows)
	}
	if fig.Caption == nil || fig.Caption.Plain() != "metrics" {
		t.Errorf("expected filename caption, got %v", fig.Caption)
	}
}

func TestCSVParser_EmptyFile(t *testing.T) {
	p := &CSVParser{}
	doc, err := p.Parse(strings.NewReader(""), "empty.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Elements) != 0 {
		t.Errorf("expected 0 elements, got %d", len(doc.Elements))
	}
}
