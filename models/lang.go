package models

// Lang selects which language variant of bilingual content is returned.
type Lang string

const (
	LangNO Lang = "no" // Norwegian (default)
	LangEN Lang = "en"
)

// ParseLang normalizes a language tag; anything unknown falls back to Norwegian.
func ParseLang(s string) Lang {
	if s == string(LangEN) {
		return LangEN
	}
	return LangNO
}

// Pick returns the variant for lang, falling back to the Norwegian text
// when the English variant is empty.
func Pick(lang Lang, no, en string) string {
	if lang == LangEN && en != "" {
		return en
	}
	return no
}
