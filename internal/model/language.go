package model

// Language is the closed set of sign languages the platform teaches.
type Language string

const (
	LanguageASL Language = "ASL"
	LanguageMSL Language = "MSL"
)

func (l Language) Valid() bool {
	return l == LanguageASL || l == LanguageMSL
}

// Languages lists all supported languages in a stable order.
func Languages() []Language {
	return []Language{LanguageASL, LanguageMSL}
}
