package shaper

import (
	"sort"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/kelydev/explorador/models"
	"github.com/kelydev/explorador/utils"
)

// ResumenPorRol counts the projects led by a principal investigator of the
// institution against the rest, summing their grants.
func ResumenPorRol(proyectos []models.Proyecto) models.ResumenProyectos {
	var r models.ResumenProyectos
	for _, p := range proyectos {
		dst := &r.Colaborador
		for _, persona := range p.AssignedPersons {
			if EsInvestigadorPrincipal(persona.Role) {
				dst = &r.Principal
				break
			}
		}
		dst.Count++
		dst.Total += p.GrantNumber
	}
	return r
}

// SepararPorRol builds the per-investigator projects page from its rows.
func SepararPorRol(nombre string, rows []models.Binding) models.ProyectosInvestigador {
	out := models.ProyectosInvestigador{
		Nombre:                nombre,
		ProyectosPrincipales:  []models.ProyectoInvestigador{},
		ProyectosColaboracion: []models.ProyectoInvestigador{},
	}
	for _, b := range rows {
		p := NormalizarProyectoInvestigador(b)
		if EsInvestigadorPrincipal(p.Role) {
			out.ProyectosPrincipales = append(out.ProyectosPrincipales, p)
			out.TotalSubvencionPrincipal += p.GrantNumber
		} else {
			out.ProyectosColaboracion = append(out.ProyectosColaboracion, p)
			out.TotalSubvencionColaboracion += p.GrantNumber
		}
	}
	out.TotalPrincipalFormateado = FormatearEuros(out.TotalSubvencionPrincipal)
	out.TotalColaboracionFormateado = FormatearEuros(out.TotalSubvencionColaboracion)
	return out
}

// FormatearEuros renders an amount with Spanish digit grouping.
func FormatearEuros(v float64) string {
	return message.NewPrinter(language.Spanish).Sprintf("%v €", v)
}

// RangoSubvencion returns the smallest and largest positive grant, or zeros
// when no project carries one.
func RangoSubvencion(proyectos []models.Proyecto) (minimo, maximo float64) {
	first := true
	for _, p := range proyectos {
		if p.GrantNumber <= 0 {
			continue
		}
		if first || p.GrantNumber < minimo {
			minimo = p.GrantNumber
		}
		if first || p.GrantNumber > maximo {
			maximo = p.GrantNumber
		}
		first = false
	}
	return minimo, maximo
}

// MaxIndiceH returns the highest numeric h-index. Non-numeric values are
// ignored; ok is false when none is numeric.
func MaxIndiceH(rows []models.InvestigadorIndiceH) (maximo int, ok bool) {
	for _, r := range rows {
		if !r.Valido {
			continue
		}
		if !ok || r.Valor > maximo {
			maximo = r.Valor
			ok = true
		}
	}
	return maximo, ok
}

// RangoAnios returns the year range covered by pubs. Without numeric years
// the range is 1900 to the current year.
func RangoAnios(pubs []models.Publicacion, now time.Time) (minimo, maximo int) {
	ok := false
	for _, p := range pubs {
		y, valid := leadingInt(p.Year)
		if !valid {
			continue
		}
		if !ok || y < minimo {
			minimo = y
		}
		if !ok || y > maximo {
			maximo = y
		}
		ok = true
	}
	if !ok {
		return 1900, now.Year()
	}
	return minimo, maximo
}

// Valores returns the distinct values of field preceded by utils.Todos, the
// option list of a categorical filter.
func Valores[T any](lista []T, field func(T) string) []string {
	set := newConjunto()
	for _, item := range lista {
		set.add(field(item))
	}
	return append([]string{utils.Todos}, set.items...)
}

// OrdenarPorFechaInicio sorts projects by start date, newest first. Projects
// without a parseable start date go last.
func OrdenarPorFechaInicio(proyectos []models.Proyecto) {
	sort.SliceStable(proyectos, func(i, j int) bool {
		return utils.SortKeyFecha(proyectos[i].StartDate) > utils.SortKeyFecha(proyectos[j].StartDate)
	})
}

// OrdenarPorApellido sorts investigators by last name using Spanish collation
// over the diacritic-free form.
func OrdenarPorApellido(invs []models.Investigador) {
	col := collate.New(language.Spanish)
	sort.SliceStable(invs, func(i, j int) bool {
		return col.CompareString(
			utils.QuitarDiacriticos(invs[i].LastName),
			utils.QuitarDiacriticos(invs[j].LastName),
		) < 0
	})
}
