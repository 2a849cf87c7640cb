// Package shaper folds flat SPARQL bindings into the consolidated, grouped and
// cross-linked records served by the page endpoints.
package shaper

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/kelydev/explorador/models"
	"github.com/kelydev/explorador/utils"
)

// NoDisponible is the placeholder shown for absent descriptive fields.
const NoDisponible = "No disponible"

// NormalizarInvestigador reads a person row. Absent fields become empty strings.
func NormalizarInvestigador(b models.Binding) models.Investigador {
	inv := models.Investigador{
		Nombre:             b.Str("nombre", ""),
		LastName:           b.Str("lastName", ""),
		ScopusID:           b.Str("scopusId", ""),
		OrcidID:            b.Str("orcidId", ""),
		DialnetID:          b.Str("dialnetId", ""),
		IndiceH:            b.Str("indiceHscopus", ""),
		CategoriaPDI:       b.Str("categoriaPDI", ""),
		NombreCentro:       b.Str("nombreCentro", ""),
		CampusCentro:       b.Str("campusCentro", ""),
		NombreDepartamento: b.Str("nombreDepartamento", ""),
		PersonalActual:     b.Bool("personalActual"),
		Areas:              b.Str("areas", ""),
		NombreGrupo:        strings.TrimSpace(b.Str("nombreGrupo", "")),
	}
	inv.AreasLista = utils.SplitTrim(inv.Areas, ",")
	inv.GruposInvestigacion = inv.NombreGrupo
	inv.Grupos = utils.SplitTrim(inv.GruposInvestigacion, ";")
	return inv
}

// NormalizarIndiceH reads a row of the h-index ranking.
func NormalizarIndiceH(b models.Binding) models.InvestigadorIndiceH {
	row := models.InvestigadorIndiceH{
		Nombre:  b.Str("nombre", ""),
		IndiceH: b.Str("indiceH", ""),
	}
	row.Valor, row.Valido = b.Int("indiceH")
	return row
}

// NormalizarProyecto reads the scalar fields of a project row.
func NormalizarProyecto(b models.Binding) models.Proyecto {
	return models.Proyecto{
		Nombre:              b.Str("nombre", NoDisponible),
		Identifier:          b.Str("identifier", NoDisponible),
		ProjectIdentifier:   b.Str("projectIdentifier", NoDisponible),
		Ambito:              b.Str("ambito", NoDisponible),
		ProjectType:         b.Str("projectType", NoDisponible),
		EntidadFinanciadora: b.Str("entidadFinanciadora", NoDisponible),
		GrantNumber:         b.Float("grantNumber"),
		StartDate:           b.Str("startDate", ""),
		EndDate:             b.Str("endDate", ""),
	}
}

// NormalizarPersonaAsignada reads the participant part of a project row. ok is
// false when the row carries no participant name or role.
func NormalizarPersonaAsignada(b models.Binding) (p models.PersonaAsignada, ok bool) {
	name, hasName := b.Get("personalName")
	role, hasRole := b.Get("role")
	if !hasName || !hasRole {
		return p, false
	}
	return models.PersonaAsignada{
		PersonalName:   name,
		Role:           role,
		ScopusID:       b.Str("scopusId", ""),
		PersonalCentro: b.Str("personalCentro", ""),
		PersonalActual: b.Bool("personalActual"),
	}, true
}

// NormalizarProyectoInvestigador reads a row of the per-investigator projects query.
func NormalizarProyectoInvestigador(b models.Binding) models.ProyectoInvestigador {
	return models.ProyectoInvestigador{
		ProjectIdentifier: b.Str("projectIdentifier", ""),
		NombreProyecto:    b.Str("nombreProyecto", ""),
		Role:              b.Str("role", ""),
		GrantNumber:       b.Float("grantNumber"),
	}
}

// NormalizarPublicacionAutor reads a row of the publications-by-author query.
func NormalizarPublicacionAutor(b models.Binding) models.PublicacionAutor {
	return models.PublicacionAutor{
		Titulo:     b.Str("titulo", ""),
		Year:       b.Str("year", ""),
		URLDialnet: b.Str("urlDialnet", ""),
		URLScopus:  b.Str("urlScopus", ""),
	}
}

// NormalizarPublicacion reads a row of the institution publications query.
func NormalizarPublicacion(b models.Binding) models.Publicacion {
	return models.Publicacion{
		Titulo:    b.Str("titulo", ""),
		EID:       b.Str("eid", ""),
		Year:      strings.TrimSpace(b.Str("year", "")),
		Tipo:      b.Str("tipo", ""),
		ISBN:      b.Str("isbn", ""),
		EISSN:     b.Str("eissn", ""),
		Editorial: b.Str("editorial", ""),
	}
}

// NormalizarDetallePublicacion reads the first row of the publication detail
// query and flags every author against ref.
func NormalizarDetallePublicacion(b models.Binding, ref ReferenceSet) models.PublicacionDetalle {
	d := models.PublicacionDetalle{
		Title:              b.Str("title", ""),
		URLDialnet:         b.Str("urlDialnet", ""),
		URLScopus:          b.Str("urlScopus", ""),
		ISBN:               b.Str("isbn", ""),
		EISSN:              b.Str("eissn", ""),
		TipoPublicacion:    b.Str("tipoPublicacion", ""),
		Editorial:          b.Str("editorial", ""),
		PublicadaEnRevista: b.Str("publicadaEnRevista", ""),
		Bibtex:             b.Str("bibtex", ""),
		HasPublicationYear: b.Str("hasPublicationYear", ""),
		Publisher:          b.Str("publisher", ""),
		Autores:            b.Str("autores", ""),
		AutoresLista:       []string{},
	}
	for _, a := range utils.SplitTrim(d.Autores, ", ") {
		d.AutoresLista = append(d.AutoresLista, utils.FormatName(a))
	}
	d.AutoresExtended = ref.TagAutores(d.AutoresLista)
	return d
}

// leadingInt parses the leading digits of s, the way year literals such as
// "2021" or "2021-05" are read.
func leadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	end := strings.IndexFunc(s, func(r rune) bool { return !unicode.IsDigit(r) })
	if end == -1 {
		end = len(s)
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
