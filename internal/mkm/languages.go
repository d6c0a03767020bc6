package mkm

import (
	"fmt"
	"slices"
)

// languageCodes maps the marketplace's language names to its idLanguage
// values.
var languageCodes = map[string]int{
	"English":             1,
	"French":              2,
	"German":              3,
	"Spanish":             4,
	"Italian":             5,
	"Simplified Chinese":  6,
	"Japanese":            7,
	"Portuguese":          8,
	"Russian":             9,
	"Korean":              10,
	"Traditional Chinese": 11,
}

// LanguageCode returns the idLanguage for a canonical language name such as
// "English". Names are matched exactly; anything else is an error wrapping
// ErrUnsupportedLanguage.
func LanguageCode(name string) (int, error) {
	code, ok := languageCodes[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, name)
	}
	return code, nil
}

// LanguageName returns the canonical name for code.
func LanguageName(code int) (string, bool) {
	for name, c := range languageCodes {
		if c == code {
			return name, true
		}
	}
	return "", false
}

// LanguageEntry pairs a language name with its code.
type LanguageEntry struct {
	Code int
	Name string
}

// Languages returns the supported languages ordered by code.
func Languages() []LanguageEntry {
	out := make([]LanguageEntry, 0, len(languageCodes))
	for name, code := range languageCodes {
		out = append(out, LanguageEntry{Code: code, Name: name})
	}
	slices.SortFunc(out, func(a, b LanguageEntry) int {
		return a.Code - b.Code
	})
	return out
}
