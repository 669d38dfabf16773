// Package slug genera identificadores legibles para URLs públicas.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	maxLen   = 48
	fallback = "card"
)

// Make convierte un texto libre en un slug ASCII: minúsculas, sin tildes,
// separadores colapsados en '-'. Si no queda nada utilizable devuelve "card".
func Make(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plain, _, err := transform.String(t, s)
	if err != nil {
		plain = s
	}

	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(plain) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case b.Len() > 0 && !dash:
			b.WriteByte('-')
			dash = true
		}
	}

	out := strings.Trim(b.String(), "-")
	if len(out) > maxLen {
		out = strings.Trim(out[:maxLen], "-")
	}
	if out == "" {
		return fallback
	}
	return out
}

// WithSuffix une el slug de s con un sufijo corto (ej. parte de un UUID) para garantizar unicidad.
func WithSuffix(s, suffix string) string {
	base := Make(s)
	suffix = Make(suffix)
	if suffix == fallback {
		return base
	}
	return base + "-" + suffix
}

// Valid informa si s ya es un slug canónico.
func Valid(s string) bool {
	return s != "" && Make(s) == s
}
