package shaper

import (
	"strings"

	"github.com/google/uuid"

	"github.com/kelydev/explorador/models"
	"github.com/kelydev/explorador/utils"
)

// Universo is the in-memory snapshot the general search runs over. It is
// built once per search page and only read afterwards.
type Universo struct {
	Investigadores []models.InvestigadorBuscador
	Grupos         []models.GrupoBuscador
	Proyectos      []models.ProyectoBuscador
	Publicaciones  []models.PublicacionBuscador
}

// NewUniverso formats the four collections and links every investigator to
// the first group that lists them.
func NewUniverso(investigadores, grupos, proyectos, publicaciones []models.Binding) *Universo {
	u := &Universo{
		Investigadores: FormatearInvestigadores(investigadores),
		Grupos:         FormatearGrupos(grupos),
		Proyectos:      FormatearProyectos(proyectos),
		Publicaciones:  FormatearPublicaciones(publicaciones),
	}
	primerGrupo := make(map[string]string)
	for _, g := range u.Grupos {
		for _, nombre := range g.Investigadores {
			if _, ok := primerGrupo[nombre]; !ok {
				primerGrupo[nombre] = g.Nombre
			}
		}
	}
	for i := range u.Investigadores {
		u.Investigadores[i].Grupo = primerGrupo[u.Investigadores[i].Nombre]
	}
	return u
}

// FormatearInvestigadores projects person rows for the general search.
func FormatearInvestigadores(rows []models.Binding) []models.InvestigadorBuscador {
	out := make([]models.InvestigadorBuscador, 0, len(rows))
	for _, b := range rows {
		out = append(out, models.InvestigadorBuscador{
			Nombre:    b.Str("nombre", ""),
			Areas:     b.Str("areas", ""),
			ScopusID:  b.Str("scopusId", ""),
			OrcidID:   b.Str("orcidId", ""),
			DialnetID: b.Str("dialnetId", ""),
		})
	}
	return out
}

// FormatearGrupos folds member rows by group name. Unlike AgruparGrupos the
// member list is deduplicated and no group is dropped.
func FormatearGrupos(rows []models.Binding) []models.GrupoBuscador {
	type grupo struct {
		models.GrupoBuscador
		miembros *conjunto
	}
	acc := newOrdered[grupo]()
	for _, b := range rows {
		nombre, ok := b.Get("nombreGrupo")
		if !ok {
			continue
		}
		g := acc.at(nombre, func() grupo {
			return grupo{GrupoBuscador: models.GrupoBuscador{Nombre: nombre}, miembros: newConjunto()}
		})
		g.miembros.add(b.Str("nombre", ""))
	}

	out := make([]models.GrupoBuscador, 0, len(acc.keys))
	for _, g := range acc.values() {
		g.Investigadores = g.miembros.items
		out = append(out, g.GrupoBuscador)
	}
	return out
}

// FormatearProyectos projects project rows for the general search.
func FormatearProyectos(rows []models.Binding) []models.ProyectoBuscador {
	out := make([]models.ProyectoBuscador, 0, len(rows))
	for _, b := range rows {
		out = append(out, models.ProyectoBuscador{
			Nombre:     b.Str("nombre", ""),
			Ambito:     b.Str("ambito", ""),
			Tipo:       b.Str("projectType", ""),
			ID:         b.Str("projectIdentifier", ""),
			Subvencion: b.Str("grantNumber", ""),
		})
	}
	return out
}

// FormatearPublicaciones projects publication rows for the general search.
func FormatearPublicaciones(rows []models.Binding) []models.PublicacionBuscador {
	out := make([]models.PublicacionBuscador, 0, len(rows))
	for _, b := range rows {
		out = append(out, models.PublicacionBuscador{
			Titulo:    b.Str("titulo", ""),
			Tipo:      b.Str("tipo", ""),
			Year:      b.Str("year", ""),
			EID:       b.Str("eid", ""),
			ISBN:      b.Str("isbn", ""),
			EISSN:     b.Str("eissn", ""),
			Editorial: b.Str("editorial", ""),
		})
	}
	return out
}

// Vacio returns a result with the four categories empty.
func Vacio() models.ResultadosBusqueda {
	return models.ResultadosBusqueda{
		Investigadores: []models.InvestigadorBuscador{},
		Grupos:         []models.GrupoBuscador{},
		Proyectos:      []models.ProyectoBuscador{},
		Publicaciones:  []models.PublicacionBuscador{},
	}
}

// Buscar matches termino against every collection of u, ignoring case and
// diacritics. Persons reached through a matching group are merged with the
// direct matches, groups are rebuilt to the merged persons and projects are
// deduplicated by identifier.
func Buscar(u *Universo, termino string) models.ResultadosBusqueda {
	term := strings.ToLower(strings.TrimSpace(termino))
	if u == nil || term == "" {
		return Vacio()
	}

	directos := filtrar(u.Investigadores, term, func(i models.InvestigadorBuscador) []string {
		return []string{i.Nombre, i.Areas, i.ScopusID, i.OrcidID, i.DialnetID}
	})
	gruposDirectos := filtrar(u.Grupos, term, func(g models.GrupoBuscador) []string {
		return []string{g.Nombre}
	})
	investigadores := FusionarInvestigadores(directos, u.indirectos(gruposDirectos))

	res := Vacio()
	res.Investigadores = investigadores
	res.Grupos = u.gruposCon(investigadores)
	res.Proyectos = unicosPorID(filtrar(u.Proyectos, term, func(p models.ProyectoBuscador) []string {
		return []string{p.Nombre, p.Ambito, p.Tipo, p.ID, p.Subvencion}
	}))
	res.Publicaciones = filtrar(u.Publicaciones, term, func(p models.PublicacionBuscador) []string {
		return []string{p.Titulo, p.Tipo, p.Year, p.EID, p.ISBN, p.EISSN, p.Editorial}
	})
	return res
}

// indirectos returns the universe persons listed as members of grupos.
func (u *Universo) indirectos(grupos []models.GrupoBuscador) []models.InvestigadorBuscador {
	nombres := make(map[string]struct{})
	for _, g := range grupos {
		for _, n := range g.Investigadores {
			nombres[n] = struct{}{}
		}
	}
	out := []models.InvestigadorBuscador{}
	for _, inv := range u.Investigadores {
		if _, ok := nombres[inv.Nombre]; ok {
			out = append(out, inv)
		}
	}
	return out
}

// gruposCon rebuilds every universe group down to the members present in
// investigadores and keeps the groups left with at least one member.
func (u *Universo) gruposCon(investigadores []models.InvestigadorBuscador) []models.GrupoBuscador {
	presentes := make(map[string]struct{}, len(investigadores))
	for _, inv := range investigadores {
		presentes[inv.Nombre] = struct{}{}
	}
	out := []models.GrupoBuscador{}
	for _, g := range u.Grupos {
		var miembros []string
		for _, n := range g.Investigadores {
			if _, ok := presentes[n]; ok {
				miembros = append(miembros, n)
			}
		}
		if len(miembros) > 0 {
			out = append(out, models.GrupoBuscador{Nombre: g.Nombre, Investigadores: miembros})
		}
	}
	return out
}

// FusionarInvestigadores merges direct and indirect matches by name. A later
// record with the same name is dropped when it shares the ORCID or the Scopus
// id of the first one; otherwise it is kept under a disambiguating key.
func FusionarInvestigadores(directos, indirectos []models.InvestigadorBuscador) []models.InvestigadorBuscador {
	var keys []string
	mapa := make(map[string]models.InvestigadorBuscador)
	set := func(k string, inv models.InvestigadorBuscador) {
		if _, ok := mapa[k]; !ok {
			keys = append(keys, k)
		}
		mapa[k] = inv
	}

	for _, inv := range append(append([]models.InvestigadorBuscador{}, directos...), indirectos...) {
		existente, ok := mapa[inv.Nombre]
		if !ok {
			set(inv.Nombre, inv)
			continue
		}
		if existente.OrcidID == inv.OrcidID || existente.ScopusID == inv.ScopusID {
			continue
		}
		sufijo := inv.OrcidID
		if sufijo == "" {
			sufijo = inv.ScopusID
		}
		if sufijo == "" {
			sufijo = uuid.NewString()
		}
		set(inv.Nombre+"__"+sufijo, inv)
	}

	out := make([]models.InvestigadorBuscador, 0, len(keys))
	for _, k := range keys {
		out = append(out, mapa[k])
	}
	return out
}

// unicosPorID keeps one project per identifier. A later project replaces the
// earlier one in the position the identifier was first seen.
func unicosPorID(proyectos []models.ProyectoBuscador) []models.ProyectoBuscador {
	var keys []string
	mapa := make(map[string]models.ProyectoBuscador)
	for _, p := range proyectos {
		if _, ok := mapa[p.ID]; !ok {
			keys = append(keys, p.ID)
		}
		mapa[p.ID] = p
	}
	out := make([]models.ProyectoBuscador, 0, len(keys))
	for _, k := range keys {
		out = append(out, mapa[k])
	}
	return out
}

func filtrar[T any](lista []T, termino string, campos func(T) []string) []T {
	out := []T{}
	for _, item := range lista {
		if utils.ContieneAlguno(termino, campos(item)...) {
			out = append(out, item)
		}
	}
	return out
}
