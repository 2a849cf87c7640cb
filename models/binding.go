package models

import (
	"math"
	"strconv"
	"strings"
)

// Value is a single RDF term as returned in application/sparql-results+json.
type Value struct {
	Type     string `json:"type"`
	Value    string `json:"value"`
	Lang     string `json:"xml:lang,omitempty"`
	Datatype string `json:"datatype,omitempty"`
}

// Binding is one flat row of a SELECT result. Optional variables that did not
// bind are simply absent from the map.
type Binding map[string]Value

// ResultSet mirrors the SPARQL JSON results document.
type ResultSet struct {
	Head struct {
		Vars []string `json:"vars"`
	} `json:"head"`
	Results struct {
		Bindings []Binding `json:"bindings"`
	} `json:"results"`
	Boolean *bool `json:"boolean,omitempty"` // ASK queries
}

// Rows returns the bindings of the result set, or nil for a nil result.
func (rs *ResultSet) Rows() []Binding {
	if rs == nil {
		return nil
	}
	return rs.Results.Bindings
}

// Get returns the value bound to field and whether it was present and non-empty.
func (b Binding) Get(field string) (string, bool) {
	v, ok := b[field]
	if !ok || v.Value == "" {
		return "", false
	}
	return v.Value, true
}

// Str returns the value bound to field or def when absent.
func (b Binding) Str(field, def string) string {
	if v, ok := b.Get(field); ok {
		return v
	}
	return def
}

// Float parses the field as a number, falling back to 0.
func (b Binding) Float(field string) float64 {
	v, ok := b.Get(field)
	if !ok {
		return 0
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// Int parses the field as an integer. ok is false when the field is absent or
// not numeric, so callers can leave it out of min/max computations.
func (b Binding) Int(field string) (n int, ok bool) {
	v, present := b.Get(field)
	if !present {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, false
	}
	return n, true
}

// Bool reads a boolean literal: "1" or "true" (any case) are true.
func (b Binding) Bool(field string) bool {
	v, _ := b.Get(field)
	return ParseBoolLiteral(v)
}

// ParseBoolLiteral reports whether lit is "1" or a case-insensitive "true".
func ParseBoolLiteral(lit string) bool {
	lit = strings.TrimSpace(lit)
	return lit == "1" || strings.EqualFold(lit, "true")
}
