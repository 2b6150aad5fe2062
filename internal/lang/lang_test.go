package lang

import (
	"testing"

	"golang.org/x/text/language"
)

func TestName_MappedLanguage(t *testing.T) {
	if got := Name("figure", language.German); got != "Abbildung" {
		t.Errorf("expected %q, got %q", "Abbildung", got)
	}
	if got := Name("figure", language.English); got != "Figure" {
		t.Errorf("expected %q, got %q", "Figure", got)
	}
}

func TestName_RegionalVariantMatchesBase(t *testing.T) {
	if got := Name("figure", language.Make("de-AT")); got != "Abbildung" {
		t.Errorf("expected %q for de-AT, got %q", "Abbildung", got)
	}
}

func TestName_UnsupportedLanguageFallsBackToEnglish(t *testing.T) {
	if got := Name("figure", language.Japanese); got != "Figure" {
		t.Errorf("expected English fallback %q, got %q", "Figure", got)
	}
}

func TestName_UnknownKind(t *testing.T) {
	if got := Name("sidebar", language.English); got != "" {
		t.Errorf("expected empty name for unknown kind, got %q", got)
	}
}

func TestParse_BadCodeDefaultsToEnglish(t *testing.T) {
	if got := Parse("!!"); got != language.English {
		t.Errorf("expected English for unparseable code, got %v", got)
	}
	if got := Parse("de"); got != language.German {
		t.Errorf("expected German, got %v", got)
	}
}
