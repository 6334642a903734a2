package locale

import (
	"strings"

	"golang.org/x/text/language"
)

// Language is a supported UI language code.
type Language string

const (
	English Language = "en"
	Korean  Language = "ko"
	Spanish Language = "es"

	DefaultLanguage = English
)

var supportedLanguages = []Language{English, Korean, Spanish}

var languageMatcher = language.NewMatcher([]language.Tag{
	language.English,
	language.Korean,
	language.Spanish,
})

func Languages() []Language {
	return append([]Language(nil), supportedLanguages...)
}

// ParseLanguage accepts a supported code or any BCP 47 tag whose base
// language is supported (ko-KR, es-419, en-GB...).
func ParseLanguage(raw string) (Language, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	for _, lang := range supportedLanguages {
		if strings.EqualFold(raw, string(lang)) {
			return lang, true
		}
	}

	tag, err := language.Parse(raw)
	if err != nil {
		return "", false
	}
	_, idx, conf := languageMatcher.Match(tag)
	if conf < language.High {
		return "", false
	}
	return supportedLanguages[idx], true
}

// FromAcceptLanguage picks the best supported language from an
// Accept-Language header, falling back to DefaultLanguage.
func FromAcceptLanguage(header string) Language {
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return DefaultLanguage
	}
	_, idx, conf := languageMatcher.Match(tags...)
	if conf == language.No {
		return DefaultLanguage
	}
	return supportedLanguages[idx]
}

// Tag returns the regional tag used for formatting: en-GB, ko-KR, es-ES.
func (l Language) Tag() language.Tag {
	switch l {
	case Korean:
		return language.MustParse("ko-KR")
	case Spanish:
		return language.MustParse("es-ES")
	default:
		return language.BritishEnglish
	}
}

func (l Language) Valid() bool {
	for _, lang := range supportedLanguages {
		if l == lang {
			return true
		}
	}
	return false
}
