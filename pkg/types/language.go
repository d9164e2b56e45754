package types

import (
	"fmt"
	"slices"
	"strings"
)

type Language string

const (
	LanguageEnglish Language = "en"
	LanguageHebrew  Language = "he"
)

const DefaultLanguage = LanguageEnglish

var SupportedLanguages = []Language{LanguageEnglish, LanguageHebrew}

func (l Language) Valid() bool {
	return slices.Contains(SupportedLanguages, l)
}

func (l Language) String() string {
	return string(l)
}

// ParseLanguage accepts only the supported language codes, case-insensitively.
func ParseLanguage(s string) (Language, error) {
	l := Language(strings.ToLower(strings.TrimSpace(s)))
	if !l.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidLanguage, s)
	}

	return l, nil
}
