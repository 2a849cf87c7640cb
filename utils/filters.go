package utils

import (
	"strconv"
	"strings"
	"time"
)

// Todos is the selector value that disables a categorical filter.
const Todos = "Todos"

// CoincideCategoria reports whether valor passes the categorical filter
// seleccion. An empty selection behaves as Todos.
func CoincideCategoria(seleccion, valor string) bool {
	return seleccion == "" || seleccion == Todos || valor == seleccion
}

// Number is the set of types a Rango can bound.
type Number interface {
	~int | ~int64 | ~float64
}

// Rango is an inclusive numeric range where any bound may be absent.
// Setting one bound past the other snaps the other bound to the new value.
type Rango[T Number] struct {
	Min *T `json:"min"`
	Max *T `json:"max"`
}

// SetMin sets the lower bound; if it exceeds the current max the max is moved
// to the same value.
func (r *Rango[T]) SetMin(v *T) {
	r.Min = clonar(v)
	if r.Min != nil && r.Max != nil && *r.Min > *r.Max {
		r.Max = clonar(r.Min)
	}
}

// SetMax sets the upper bound; if it is below the current min the min is moved
// to the same value.
func (r *Rango[T]) SetMax(v *T) {
	r.Max = clonar(v)
	if r.Max != nil && r.Min != nil && *r.Max < *r.Min {
		r.Min = clonar(r.Max)
	}
}

// Activo reports whether at least one bound is set.
func (r Rango[T]) Activo() bool {
	return r.Min != nil || r.Max != nil
}

// Contiene reports whether v lies inside the range.
func (r Rango[T]) Contiene(v T) bool {
	if r.Min != nil && v < *r.Min {
		return false
	}
	if r.Max != nil && v > *r.Max {
		return false
	}
	return true
}

func clonar[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

// ParseIntParam parses an optional integer query value.
func ParseIntParam(s string) *int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	return &n
}

// ParseFloatParam parses an optional numeric query value.
func ParseFloatParam(s string) *float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return nil
	}
	return &f
}

// RangoFechas is an inclusive date range; a nil bound is a no-op.
type RangoFechas struct {
	Desde *time.Time
	Hasta *time.Time
}

// NewRangoFechas parses the bounds of a date filter. A bound that fails to
// parse is left absent.
func NewRangoFechas(desde, hasta string) RangoFechas {
	var r RangoFechas
	if t, ok := ParseFecha(desde); ok {
		r.Desde = &t
	}
	if t, ok := ParseFecha(hasta); ok {
		r.Hasta = &t
	}
	return r
}

// Activo reports whether any bound is set.
func (r RangoFechas) Activo() bool {
	return r.Desde != nil || r.Hasta != nil
}

// Contiene checks a start/end pair against the range. The lower bound applies
// to the start date and the upper bound to the end date; a missing date on the
// entity side does not exclude it.
func (r RangoFechas) Contiene(inicio, fin string) bool {
	if !r.Activo() {
		return true
	}
	if r.Desde != nil {
		if t, ok := ParseFecha(inicio); ok && t.Before(*r.Desde) {
			return false
		}
	}
	if r.Hasta != nil {
		if t, ok := ParseFecha(fin); ok && t.After(*r.Hasta) {
			return false
		}
	}
	return true
}
