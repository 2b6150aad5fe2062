package parser

import (
	"encoding/csv"
	"fmt"
	"io"

	"docnum/internal/compile"
	"docnum/internal/content"
	"docnum/internal/element"
)

// CSVParser handles CSV files. The whole file becomes a single table figure
// captioned with the filename, so compiled documents number it alongside
// image figures.
type CSVParser struct{}

func (p *CSVParser) Parse(r io.Reader, filename string) (*compile.Document, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	title := titleFromFilename(filename, ".csv")
	out := &compile.Document{Title: title}

	if len(records) == 0 {
		return out, nil
	}

	// First row is headers.
	table := content.Table{Header: records[0]}
	if len(records) > 1 {
		table.Rows = records[1:]
	}

	out.Elements = append(out.Elements, &element.Figure{
		Body:    table,
		Caption: content.Text(title),
	})

	return out, nil
}
