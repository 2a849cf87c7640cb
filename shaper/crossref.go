package shaper

import (
	"github.com/kelydev/explorador/models"
	"github.com/kelydev/explorador/utils"
)

// ReferenceSet holds the canonical names of the institution members.
type ReferenceSet map[string]struct{}

// NewReferenceSet builds the set from the given name field of rows.
func NewReferenceSet(rows []models.Binding, field string) ReferenceSet {
	set := make(ReferenceSet, len(rows))
	for _, b := range rows {
		if k := utils.ClaveNombre(b.Str(field, "")); k != "" {
			set[k] = struct{}{}
		}
	}
	return set
}

// Has reports whether name belongs to the institution.
func (s ReferenceSet) Has(name string) bool {
	_, ok := s[utils.ClaveNombre(name)]
	return ok
}

// TagPersonas returns a copy of persons with IsPolitecnica resolved.
func (s ReferenceSet) TagPersonas(persons []models.PersonaAsignada) []models.PersonaAsignada {
	out := make([]models.PersonaAsignada, len(persons))
	for i, p := range persons {
		p.IsPolitecnica = s.Has(p.PersonalName)
		out[i] = p
	}
	return out
}

// TagAutores flags every author name.
func (s ReferenceSet) TagAutores(names []string) []models.Autor {
	out := make([]models.Autor, 0, len(names))
	for _, n := range names {
		out = append(out, models.Autor{Name: n, IsPolitecnica: s.Has(n)})
	}
	return out
}
