package utils

import (
	"html"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// combining diacritical marks block (U+0300..U+036F)
var diacriticos = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x0300, Hi: 0x036f, Stride: 1}},
}

var stripPolicy = bluemonday.StrictPolicy()

// QuitarDiacriticos decomposes s and removes the combining diacritical marks.
func QuitarDiacriticos(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(diacriticos)))
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// NormalizarTexto removes diacritics and lower-cases s.
func NormalizarTexto(s string) string {
	return strings.ToLower(QuitarDiacriticos(s))
}

// ContieneNormalizado reports whether valor contains termino ignoring case and
// diacritics. An empty termino matches everything.
func ContieneNormalizado(valor, termino string) bool {
	return strings.Contains(NormalizarTexto(valor), NormalizarTexto(termino))
}

// ContieneAlguno reports whether any of valores contains termino.
func ContieneAlguno(termino string, valores ...string) bool {
	t := NormalizarTexto(termino)
	for _, v := range valores {
		if strings.Contains(NormalizarTexto(v), t) {
			return true
		}
	}
	return false
}

// ClaveNombre is the canonical form used to compare person names across
// result sets.
func ClaveNombre(nombre string) string {
	return strings.ToLower(strings.TrimSpace(nombre))
}

// FormatName capitalizes the first letter of each space separated word.
func FormatName(name string) string {
	if name == "" {
		return ""
	}
	words := strings.Split(strings.ToLower(name), " ")
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		if size == 0 {
			continue
		}
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

// StripHTML removes every tag from s and unescapes the remaining entities.
func StripHTML(s string) string {
	if s == "" {
		return ""
	}
	return html.UnescapeString(stripPolicy.Sanitize(s))
}

// SplitTrim splits s by sep, trims every part and drops empty ones.
func SplitTrim(s, sep string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{}
	}
	parts := strings.Split(s, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
