package pipeline

import (
	"errors"
	"strings"
	"testing"

	"docnum/internal/config"
	"docnum/internal/numbering"
)

func testConfig() config.Config {
	return config.Config{
		DefaultLang:            "en",
		DefaultFigureNumbering: "1",
		DefaultFigureGapEm:     0.65,
	}
}

const twoFigureMarkdown = `# Report

![First chart](a.png)

![Second chart](b.png)
`

func TestCompileFile_MarkdownWithFigures(t *testing.T) {
	out, err := CompileFile(testConfig(), []byte(twoFigureMarkdown), "report.md", CompileOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Title != "report" {
		t.Errorf("expected title %q, got %q", "report", out.Title)
	}
	if out.Figures != 2 {
		t.Errorf("expected 2 figures, got %d", out.Figures)
	}
	if len(out.Errors) != 0 {
		t.Errorf("expected no errors, got %v", out.Errors)
	}

	if !strings.Contains(out.Text, "Figure\u00a01: First chart") {
		t.Errorf("expected first figure label, got %q", out.Text)
	}
	if !strings.Contains(out.Text, "Figure\u00a02: Second chart") {
		t.Errorf("expected second figure label, got %q", out.Text)
	}
	if !strings.Contains(out.HTML, "Second chart") {
		t.Errorf("expected caption in HTML, got %q", out.HTML)
	}
}

func TestCompileFile_TitleOverride(t *testing.T) {
	out, err := CompileFile(testConfig(), []byte(twoFigureMarkdown), "report.md", CompileOptions{Title: "Q3 Report"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Title != "Q3 Report" {
		t.Errorf("expected overridden title, got %q", out.Title)
	}
}

func TestCompileFile_GermanLang(t *testing.T) {
	out, err := CompileFile(testConfig(), []byte(twoFigureMarkdown), "report.md", CompileOptions{Lang: "de"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(out.Text, "Abbildung\u00a01: First chart") {
		t.Errorf("expected German supplement, got %q", out.Text)
	}
	if strings.Contains(out.Text, "Figure\u00a0") {
		t.Errorf("expected no English supplement, got %q", out.Text)
	}
}

func TestCompileFile_NumberingNone(t *testing.T) {
	out, err := CompileFile(testConfig(), []byte(twoFigureMarkdown), "report.md", CompileOptions{Numbering: "none"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Contains(out.Text, "Figure\u00a0") {
		t.Errorf("expected unnumbered figures, got %q", out.Text)
	}
	if !strings.Contains(out.Text, "First chart") {
		t.Errorf("expected caption still present, got %q", out.Text)
	}
}

func TestCompileFile_SupplementNone(t *testing.T) {
	out, err := CompileFile(testConfig(), []byte(twoFigureMarkdown), "report.md", CompileOptions{Supplement: "none"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Contains(out.Text, "Figure\u00a0") {
		t.Errorf("expected supplement suppressed, got %q", out.Text)
	}
	if !strings.Contains(out.Text, "1: First chart") {
		t.Errorf("expected bare number and caption, got %q", out.Text)
	}
}

func TestCompileFile_ExplicitSupplement(t *testing.T) {
	out, err := CompileFile(testConfig(), []byte(twoFigureMarkdown), "report.md", CompileOptions{Supplement: "Chart"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(out.Text, "Chart\u00a01: First chart") {
		t.Errorf("expected explicit supplement, got %q", out.Text)
	}
}

func TestCompileFile_HeadingNumbering(t *testing.T) {
	input := "# Intro\n\ntext\n\n# Methods\n\n## Setup\n"
	out, err := CompileFile(testConfig(), []byte(input), "paper.md", CompileOptions{HeadingNumbering: "1.1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(out.Text, "1\u00a0Intro") {
		t.Errorf("expected numbered first heading, got %q", out.Text)
	}
	if !strings.Contains(out.Text, "2\u00a0Methods") {
		t.Errorf("expected numbered second heading, got %q", out.Text)
	}
	if !strings.Contains(out.Text, "2.1\u00a0Setup") {
		t.Errorf("expected nested heading number, got %q", out.Text)
	}
}

func TestCompileFile_UnsupportedExtension(t *testing.T) {
	_, err := CompileFile(testConfig(), []byte("data"), "archive.zip", CompileOptions{})
	if err == nil {
		t.Fatal("expected error for unsupported extension")
	}
}

func TestScopeFor_InvalidPattern(t *testing.T) {
	_, err := ScopeFor(testConfig(), CompileOptions{Numbering: "!!"})
	if err == nil {
		t.Fatal("expected error for invalid pattern")
	}
	var patternErr *numbering.InvalidPatternError
	if !errors.As(err, &patternErr) {
		t.Fatalf("expected *numbering.InvalidPatternError, got %T", err)
	}
	if patternErr.Pattern != "!!" {
		t.Errorf("expected offending pattern recorded, got %q", patternErr.Pattern)
	}
}

func TestScopeFor_InvalidHeadingPattern(t *testing.T) {
	_, err := ScopeFor(testConfig(), CompileOptions{HeadingNumbering: "--"})
	if err == nil {
		t.Fatal("expected error for invalid heading pattern")
	}
	var patternErr *numbering.InvalidPatternError
	if !errors.As(err, &patternErr) {
		t.Fatalf("expected *numbering.InvalidPatternError, got %T", err)
	}
}
