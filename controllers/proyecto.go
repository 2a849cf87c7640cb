package controllers

import (
	"net/http"

	"github.com/kelydev/explorador/models"
	"github.com/kelydev/explorador/repository"
	"github.com/kelydev/explorador/shaper"
	"github.com/kelydev/explorador/utils"
)

const proyectosPorPagina = 9

type extraProyectos struct {
	Ambitos       []string                `json:"ambitos"`
	Tipos         []string                `json:"tipos"`
	SubvencionMin float64                 `json:"subvencionMin"`
	SubvencionMax float64                 `json:"subvencionMax"`
	Resumen       models.ResumenProyectos `json:"resumen"`
}

func filtroProyectos(r *http.Request) shaper.FiltroProyectos {
	q := r.URL.Query()
	f := shaper.FiltroProyectos{
		Texto:  q.Get("filtro"),
		Ambito: q.Get("ambito"),
		Tipo:   q.Get("tipo"),
		Fechas: utils.NewRangoFechas(q.Get("fechaInicio"), q.Get("fechaFin")),
	}
	f.Subvencion.SetMin(utils.ParseFloatParam(q.Get("minGrant")))
	f.Subvencion.SetMax(utils.ParseFloatParam(q.Get("maxGrant")))
	return f
}

// GetProyectosHandler lists the projects of the centre, newest first, with the
// filter choices and the role summary of the filtered set.
func GetProyectosHandler(d *Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filtro := filtroProyectos(r)
		offset, limit := utils.GetPaginationParams(r, proyectosPorPagina)

		proyectos, err := repository.LoadProyectos(r.Context(), d.DB, d.Centro)
		if err != nil {
			d.failPage(w, r, "proyectos", err)
			return
		}

		filtrados := filtro.Aplicar(proyectos)
		minimo, maximo := shaper.RangoSubvencion(proyectos)
		resp := utils.Paginate(filtrados, offset, limit)
		resp.Extra = extraProyectos{
			Ambitos:       shaper.Valores(proyectos, func(p models.Proyecto) string { return p.Ambito }),
			Tipos:         shaper.Valores(proyectos, func(p models.Proyecto) string { return p.ProjectType }),
			SubvencionMin: minimo,
			SubvencionMax: maximo,
			Resumen:       shaper.ResumenPorRol(filtrados),
		}
		d.writeJSON(w, http.StatusOK, resp)
	}
}

// GetProyectoHandler returns one project with its participants, principal
// investigators first.
func GetProyectoHandler(d *Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathVar(r, "id")
		if !ok {
			d.badParam(w)
			return
		}

		p, err := repository.LoadProyectoDetalle(r.Context(), d.DB, d.Centro, id)
		if err != nil {
			d.failDetail(w, r, "proyecto", err)
			return
		}
		if p == nil {
			d.notFound(w)
			return
		}
		d.writeJSON(w, http.StatusOK, models.DetailResponse{Data: p})
	}
}
