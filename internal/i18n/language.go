// Package i18n holds the language tags and localized system prompts for the
// advisory assistant. Prompts are swapped wholesale per request; there is no
// partial translation.
package i18n

// Language identifies one of the supported interface languages.
type Language string

const (
	English Language = "en" // English
	Shona   Language = "sn" // chiShona
	Ndebele Language = "nd" // isiNdebele
)

// Parse normalises a language tag. Unknown or empty tags fall back to English
// so a request always resolves to a usable prompt.
func Parse(tag string) Language {
	switch Language(tag) {
	case Shona:
		return Shona
	case Ndebele:
		return Ndebele
	default:
		return English
	}
}
