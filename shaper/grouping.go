package shaper

import (
	"sort"
	"strings"

	"github.com/kelydev/explorador/models"
	"github.com/kelydev/explorador/utils"
)

const (
	// SinAnio is the bucket for publications without a year.
	SinAnio = "Sin año"
	// ProyectoSinNombre is the grouping key of project rows without a name.
	ProyectoSinNombre = "Proyecto sin nombre"

	rolPrincipal = "investigador principal"
)

// ordered accumulates values by key preserving the first-insertion order.
type ordered[V any] struct {
	keys []string
	vals map[string]*V
}

func newOrdered[V any]() *ordered[V] {
	return &ordered[V]{vals: make(map[string]*V)}
}

// at returns the entry for key, creating it with init when missing.
func (o *ordered[V]) at(key string, init func() V) *V {
	if v, ok := o.vals[key]; ok {
		return v
	}
	v := init()
	o.keys = append(o.keys, key)
	o.vals[key] = &v
	return &v
}

func (o *ordered[V]) values() []V {
	out := make([]V, 0, len(o.keys))
	for _, k := range o.keys {
		out = append(out, *o.vals[k])
	}
	return out
}

// GroupByYear buckets publications by year. Buckets are sorted by year
// descending as integers; the SinAnio bucket is always last.
func GroupByYear(pubs []models.PublicacionAutor) []models.GrupoAnual {
	acc := newOrdered[models.GrupoAnual]()
	for _, p := range pubs {
		year := strings.TrimSpace(p.Year)
		if year == "" {
			year = SinAnio
		}
		g := acc.at(year, func() models.GrupoAnual {
			return models.GrupoAnual{Year: year, Publicaciones: []models.PublicacionAutor{}}
		})
		g.Publicaciones = append(g.Publicaciones, p)
	}

	grupos := acc.values()
	sort.SliceStable(grupos, func(i, j int) bool {
		return anioAntes(grupos[i].Year, grupos[j].Year)
	})
	return grupos
}

// anioAntes orders numeric years descending, then non-numeric keys, then SinAnio.
func anioAntes(a, b string) bool {
	if a == SinAnio || b == SinAnio {
		return b == SinAnio && a != SinAnio
	}
	na, okA := leadingInt(a)
	nb, okB := leadingInt(b)
	switch {
	case okA && okB:
		return na > nb
	case okA:
		return true
	default:
		return false
	}
}

// EsInvestigadorPrincipal reports whether role is the principal investigator role.
func EsInvestigadorPrincipal(role string) bool {
	return strings.ToLower(strings.TrimSpace(role)) == rolPrincipal
}

// AgruparProyectos folds project rows into one project per name. Scalar
// fields take the value of the last row that carries them and every row with
// a participant name and role contributes one assigned person.
func AgruparProyectos(rows []models.Binding) []models.Proyecto {
	acc := newOrdered[models.Proyecto]()
	for _, b := range rows {
		key := b.Str("nombre", ProyectoSinNombre)
		p := acc.at(key, func() models.Proyecto {
			p := NormalizarProyecto(b)
			p.Nombre = key
			p.AssignedPersons = []models.PersonaAsignada{}
			return p
		})
		mergeProyecto(p, b)
		if persona, ok := NormalizarPersonaAsignada(b); ok {
			p.AssignedPersons = append(p.AssignedPersons, persona)
		}
	}
	return acc.values()
}

func mergeProyecto(p *models.Proyecto, b models.Binding) {
	set := func(dst *string, field string) {
		if v, ok := b.Get(field); ok {
			*dst = v
		}
	}
	set(&p.Identifier, "identifier")
	set(&p.ProjectIdentifier, "projectIdentifier")
	set(&p.Ambito, "ambito")
	set(&p.ProjectType, "projectType")
	set(&p.EntidadFinanciadora, "entidadFinanciadora")
	set(&p.StartDate, "startDate")
	set(&p.EndDate, "endDate")
	if _, ok := b.Get("grantNumber"); ok {
		p.GrantNumber = b.Float("grantNumber")
	}
}

// PrincipalPrimero returns persons with the principal investigators first,
// keeping the relative order inside each partition.
func PrincipalPrimero(persons []models.PersonaAsignada) []models.PersonaAsignada {
	out := make([]models.PersonaAsignada, 0, len(persons))
	for _, p := range persons {
		if EsInvestigadorPrincipal(p.Role) {
			out = append(out, p)
		}
	}
	for _, p := range persons {
		if !EsInvestigadorPrincipal(p.Role) {
			out = append(out, p)
		}
	}
	return out
}

// AgruparGrupos merges the institution and external member rows by group
// name. Groups without institution members are dropped.
func AgruparGrupos(escuela, otros []models.Binding) []models.GrupoInvestigacion {
	acc := newOrdered[models.GrupoInvestigacion]()
	add := func(rows []models.Binding, externo bool) {
		for _, b := range rows {
			nombre, ok := b.Get("nombreGrupo")
			if !ok {
				continue
			}
			g := acc.at(nombre, func() models.GrupoInvestigacion {
				return models.GrupoInvestigacion{
					Grupo:           nombre,
					PersonasEscuela: []string{},
					OtrosMiembros:   []string{},
				}
			})
			persona := b.Str("nombre", "")
			if persona == "" {
				continue
			}
			if externo {
				g.OtrosMiembros = append(g.OtrosMiembros, persona)
			} else {
				g.PersonasEscuela = append(g.PersonasEscuela, persona)
			}
		}
	}
	add(escuela, false)
	add(otros, true)

	var out []models.GrupoInvestigacion
	for _, g := range acc.values() {
		if len(g.PersonasEscuela) > 0 {
			out = append(out, g)
		}
	}
	if out == nil {
		out = []models.GrupoInvestigacion{}
	}
	return out
}

// ConsolidarInvestigadores folds the rows of each person into a single record.
// The first row is the base; groups and areas of later rows are unioned in.
func ConsolidarInvestigadores(rows []models.Binding) []models.Investigador {
	type acumulado struct {
		inv    models.Investigador
		grupos *conjunto
		areas  *conjunto
	}
	acc := newOrdered[acumulado]()
	for _, b := range rows {
		row := NormalizarInvestigador(b)
		a := acc.at(row.Nombre, func() acumulado {
			return acumulado{inv: row, grupos: newConjunto(), areas: newConjunto()}
		})
		a.grupos.add(row.Grupos...)
		a.areas.add(row.AreasLista...)
	}

	out := make([]models.Investigador, 0, len(acc.keys))
	for _, a := range acc.values() {
		inv := a.inv
		inv.Grupos = a.grupos.items
		inv.GruposInvestigacion = strings.Join(inv.Grupos, ";")
		inv.NombreGrupo = inv.GruposInvestigacion
		inv.AreasLista = a.areas.items
		inv.Areas = strings.Join(inv.AreasLista, ", ")
		out = append(out, inv)
	}
	return out
}

// ConsolidarGrupoDetalle folds the rows of a group detail query, one per
// research line, into one record. It returns nil when rows is empty.
func ConsolidarGrupoDetalle(rows []models.Binding, ref ReferenceSet) *models.GrupoDetalle {
	if len(rows) == 0 {
		return nil
	}
	base := rows[0]
	d := &models.GrupoDetalle{
		Nombre:             base.Str("name", ""),
		Coordinador:        base.Str("coordinador", ""),
		CoordinadorNombre:  utils.FormatName(base.Str("coordinadorNombre", "")),
		DepartamentoNombre: utils.FormatName(base.Str("departamentoNombre", "")),
		CentroNombre:       utils.FormatName(base.Str("centroNombre", "")),
		CampusCentro:       base.Str("campusCentro", ""),
		Lineas:             []models.LineaInvestigacion{},
		PersonasEscuela:    []string{},
		OtrosMiembros:      []string{},
	}
	d.CoordinadorIsPolitecnica = d.CoordinadorNombre != "" && ref.Has(d.CoordinadorNombre)

	vistas := make(map[string]struct{})
	for _, b := range rows {
		linea := models.LineaInvestigacion{
			URI:         b.Str("lineaInvestigacion", ""),
			Title:       b.Str("title", ""),
			Description: strings.TrimSpace(utils.StripHTML(b.Str("description", ""))),
		}
		key := linea.URI
		if key == "" {
			key = linea.Title
		}
		if key == "" {
			continue
		}
		if _, ok := vistas[key]; ok {
			continue
		}
		vistas[key] = struct{}{}
		d.Lineas = append(d.Lineas, linea)
	}
	return d
}

// conjunto is an insertion-ordered set of trimmed strings.
type conjunto struct {
	seen  map[string]struct{}
	items []string
}

func newConjunto() *conjunto {
	return &conjunto{seen: make(map[string]struct{}), items: []string{}}
}

func (c *conjunto) add(vals ...string) {
	for _, v := range vals {
		if v = strings.TrimSpace(v); v == "" {
			continue
		}
		if _, ok := c.seen[v]; ok {
			continue
		}
		c.seen[v] = struct{}{}
		c.items = append(c.items, v)
	}
}
