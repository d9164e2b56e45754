package locale

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsRTLLanguage(t *testing.T) {
	tests := map[string]bool{
		"he":    true,
		"en":    false,
		"fr":    false,
		"":      false,
		"HE":    false,
		"he-IL": false,
		"ar":    false,
	}

	for in, want := range tests {
		assert.Equal(t, want, IsRTLLanguage(in), "IsRTLLanguage(%q)", in)
	}
}

func TestTextDirection(t *testing.T) {
	assert.Equal(t, DirectionRTL, TextDirection("he"))
	assert.Equal(t, DirectionLTR, TextDirection("en"))
	assert.Equal(t, DirectionLTR, TextDirection(""))
	assert.Equal(t, DirectionLTR, TextDirection("fr"))
}

func TestTextDirectionMatchesRTL(t *testing.T) {
	for _, s := range []string{"he", "en", "", "xx", "he ", "עברית", "rtl"} {
		assert.Equal(t, s == "he", TextDirection(s) == DirectionRTL, "TextDirection(%q)", s)
	}
}

func TestLocaleTag(t *testing.T) {
	assert.Equal(t, TagHebrew, LocaleTag("he"))
	assert.Equal(t, TagEnglish, LocaleTag("en"))
	assert.Equal(t, TagEnglish, LocaleTag("fr"))
	assert.Equal(t, TagEnglish, LocaleTag(""))
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2026, time.October, 9, 14, 30, 0, 0, time.UTC)

	assert.Equal(t, "10/9/2026", FormatDate(d, "en"))
	assert.Equal(t, "9.10.2026", FormatDate(d, "he"))
	assert.Equal(t, FormatDate(d, "en"), FormatDate(d, "de"))
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "1,234,567", FormatNumber(1234567, "en"))
	assert.Equal(t, FormatNumber(42, "en"), FormatNumber(42, "unknown"))
	assert.Equal(t, "1,234,567.891", FormatNumber(1234567.891, "he"))
	assert.Equal(t, "1,234,567.891", FormatNumber(1234567.891, "en"))
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "English", DisplayName("en"))
	assert.Equal(t, "עברית", DisplayName("he"))
	assert.Equal(t, "English", DisplayName("fr"))
}
