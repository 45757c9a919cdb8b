// Package prefs keeps the two visitor preferences, language and theme, as an
// immutable snapshot backed by client-local storage.
package prefs

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pavanpadamata/portfolio/internal/i18n"
)

// Key names a persisted preference.
type Key string

const (
	KeyLanguage Key = "language"
	KeyTheme    Key = "theme"
)

// Keys lists every preference key.
var Keys = []Key{KeyLanguage, KeyTheme}

// ErrUnknownKey is returned for keys other than KeyLanguage and KeyTheme.
var ErrUnknownKey = errors.New("prefs: unknown key")

// ParseKey validates a key coming from a URL or the command line.
func ParseKey(raw string) (Key, error) {
	switch k := Key(strings.ToLower(strings.TrimSpace(raw))); k {
	case KeyLanguage, KeyTheme:
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKey, raw)
}

// Theme is the colour scheme of the site.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// Themes lists every theme in toggle order.
var Themes = []Theme{Light, Dark}

// DefaultTheme is used when nothing valid is stored or configured.
const DefaultTheme = Light

// ParseTheme reports whether raw names a known theme.
func ParseTheme(raw string) (Theme, bool) {
	switch t := Theme(strings.ToLower(strings.TrimSpace(raw))); t {
	case Light, Dark:
		return t, true
	}
	return "", false
}

// Other returns the theme a toggle switches to.
func (t Theme) Other() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

func (t Theme) String() string { return string(t) }

// Snapshot is the immutable view of the current preferences handed to
// renderers. Change it only through Store.Toggle.
type Snapshot struct {
	Language i18n.Language
	Theme    Theme
}

// Defaults returns the snapshot used on a first visit.
func Defaults() Snapshot {
	return Snapshot{Language: i18n.Default, Theme: DefaultTheme}
}

// Get returns the string value stored under key.
func (s Snapshot) Get(key Key) string {
	switch key {
	case KeyLanguage:
		return string(s.Language)
	case KeyTheme:
		return string(s.Theme)
	}
	return ""
}

// Toggled returns a copy of s with key flipped to its other value.
func (s Snapshot) Toggled(key Key) (Snapshot, error) {
	switch key {
	case KeyLanguage:
		s.Language = s.Language.Other()
	case KeyTheme:
		s.Theme = s.Theme.Other()
	default:
		return s, fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	return s, nil
}

// With returns a copy of s with the raw value applied to key. Unknown values
// fall back to the safe default for that key.
func (s Snapshot) With(key Key, raw string) Snapshot {
	switch key {
	case KeyLanguage:
		s.Language = i18n.Normalize(raw)
	case KeyTheme:
		if t, ok := ParseTheme(raw); ok {
			s.Theme = t
		} else {
			s.Theme = DefaultTheme
		}
	}
	return s
}
