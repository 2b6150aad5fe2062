// Package lang resolves the localized display names of element kinds.
package lang

import "golang.org/x/text/language"

// names holds per-kind display names keyed by language. English is the
// mandatory fallback for every kind.
var names = map[string]map[language.Tag]string{
	"figure": {
		language.English:    "Figure",
		language.German:     "Abbildung",
		language.French:     "Figure",
		language.Italian:    "Figura",
		language.Spanish:    "Figura",
		language.Portuguese: "Figura",
	},
	"heading": {
		language.English: "Section",
		language.German:  "Abschnitt",
	},
}

var matchers = map[string]*matcherSet{}

type matcherSet struct {
	matcher language.Matcher
	tags    []language.Tag
}

func init() {
	for kind, table := range names {
		// English first so it wins when nothing matches.
		tags := []language.Tag{language.English}
		for tag := range table {
			if tag != language.English {
				tags = append(tags, tag)
			}
		}
		matchers[kind] = &matcherSet{matcher: language.NewMatcher(tags), tags: tags}
	}
}

// Name returns the display name of an element kind for the given language,
// falling back to English when the language has no mapping. Unknown kinds
// yield the empty string.
func Name(kind string, tag language.Tag) string {
	table, ok := names[kind]
	if !ok {
		return ""
	}
	ms := matchers[kind]
	_, index, _ := ms.matcher.Match(tag)
	return table[ms.tags[index]]
}

// Parse converts a BCP 47 language code, defaulting to English when the code
// cannot be parsed.
func Parse(code string) language.Tag {
	tag, err := language.Parse(code)
	if err != nil {
		return language.English
	}
	return tag
}
