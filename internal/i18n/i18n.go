// Package i18n holds the supported site languages and the few locale-aware
// formatting helpers the renderers need.
package i18n

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// Language is a supported two-letter site language code.
type Language string

const (
	English Language = "en"
	Spanish Language = "es"
)

// Default is used whenever a language is missing or unsupported.
const Default = English

var supported = []Language{English, Spanish}

// Supported returns the site languages in display order.
func Supported() []Language {
	out := make([]Language, len(supported))
	copy(out, supported)
	return out
}

// IsSupported reports whether l is one of the site languages.
func IsSupported(l Language) bool {
	for _, s := range supported {
		if s == l {
			return true
		}
	}
	return false
}

// Parse normalises a language tag such as "es-MX" or "EN" to a supported
// language. ok is false when the tag is malformed or not supported.
func Parse(raw string) (Language, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	tag, err := language.Parse(raw)
	if err != nil {
		return "", false
	}
	base, _ := tag.Base()
	l := Language(base.String())
	if !IsSupported(l) {
		return "", false
	}
	return l, true
}

// Normalize is Parse with the Default fallback.
func Normalize(raw string) Language {
	if l, ok := Parse(raw); ok {
		return l
	}
	return Default
}

// Other returns the language a toggle switches to.
func (l Language) Other() Language {
	if l == Spanish {
		return English
	}
	return Spanish
}

func (l Language) String() string { return string(l) }

var monthNames = map[Language][12]string{
	English: {"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"},
	Spanish: {"enero", "febrero", "marzo", "abril", "mayo", "junio", "julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"},
}

// FormatDate renders t as a long date: "January 15, 2024" in English and
// "15 de enero de 2024" in Spanish.
func FormatDate(l Language, t time.Time) string {
	if t.IsZero() {
		return ""
	}
	if !IsSupported(l) {
		l = Default
	}
	month := monthNames[l][t.Month()-1]
	if l == Spanish {
		return fmt.Sprintf("%d de %s de %d", t.Day(), month, t.Year())
	}
	return fmt.Sprintf("%s %d, %d", month, t.Day(), t.Year())
}
