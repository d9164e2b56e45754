// Package locale maps a user's language to text direction and
// locale-aware formatting.
package locale

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

type Direction string

const (
	DirectionLTR Direction = "ltr"
	DirectionRTL Direction = "rtl"
)

const (
	TagHebrew  = "he-IL"
	TagEnglish = "en-US"
)

var (
	hebrewTag  = language.MustParse(TagHebrew)
	englishTag = language.MustParse(TagEnglish)
)

// dateLayouts follow the short numeric date each locale renders by default.
var dateLayouts = map[string]string{
	TagHebrew:  "2.1.2006",
	TagEnglish: "1/2/2006",
}

// IsRTLLanguage reports whether lang is written right to left. Only "he" is;
// anything unrecognized is left to right.
func IsRTLLanguage(lang string) bool {
	return lang == "he"
}

func TextDirection(lang string) Direction {
	if IsRTLLanguage(lang) {
		return DirectionRTL
	}
	return DirectionLTR
}

// LocaleTag picks the formatting locale for lang.
func LocaleTag(lang string) string {
	if lang == "he" {
		return TagHebrew
	}
	return TagEnglish
}

func tagFor(lang string) language.Tag {
	if LocaleTag(lang) == TagHebrew {
		return hebrewTag
	}
	return englishTag
}

func FormatDate(t time.Time, lang string) string {
	return t.Format(dateLayouts[LocaleTag(lang)])
}

func FormatNumber(n float64, lang string) string {
	return message.NewPrinter(tagFor(lang)).Sprint(number.Decimal(n))
}

// DisplayName returns the language's own name for itself, e.g. "עברית".
func DisplayName(lang string) string {
	tag := tagFor(lang)
	base, _ := tag.Base()
	return display.Self.Name(language.Make(base.String()))
}
