package locale

import "strings"

// Locale is one of the languages the site is published in.
type Locale string

const (
	Korean    Locale = "kr"
	English   Locale = "en"
	Mongolian Locale = "mn"

	Default = Korean
)

// All lists the supported locales in display order.
var All = []Locale{Korean, English, Mongolian}

// Resolve maps a raw locale value to a supported Locale.
// Unknown or empty values resolve to Default instead of being rejected.
func Resolve(raw string) Locale {
	switch Locale(strings.ToLower(strings.TrimSpace(raw))) {
	case Korean:
		return Korean
	case English:
		return English
	case Mongolian:
		return Mongolian
	default:
		return Default
	}
}

// IsSupported reports whether raw names a supported locale exactly.
func IsSupported(raw string) bool {
	for _, l := range All {
		if string(l) == raw {
			return true
		}
	}
	return false
}

// LanguageName returns the English name of the language, used in LLM prompts.
func (l Locale) LanguageName() string {
	switch l {
	case English:
		return "English"
	case Mongolian:
		return "Mongolian"
	case Korean:
		return "Korean"
	default:
		return "Korean"
	}
}

func (l Locale) String() string {
	return string(l)
}
