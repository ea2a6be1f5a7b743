package cardtokenizer

// Language selects the locale of the hosted-fields widget's built-in texts.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageGerman  Language = "de"
)

// scriptValue returns the client-API language object reference used in the
// page-population script. Unknown values fall back to English.
func (l Language) scriptValue() string {
	switch l {
	case LanguageGerman:
		return "Payone.ClientApi.Language.de"
	default:
		return "Payone.ClientApi.Language.en"
	}
}
