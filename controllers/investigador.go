package controllers

import (
	"net/http"
	"strconv"

	"github.com/kelydev/explorador/models"
	"github.com/kelydev/explorador/repository"
	"github.com/kelydev/explorador/shaper"
	"github.com/kelydev/explorador/utils"
)

const (
	investigadoresPorPagina = 9
	indicesHPorPagina       = 8
)

// GetInvestigadoresHandler lists the centre investigators sorted by last name,
// optionally filtered by name or area.
func GetInvestigadoresHandler(d *Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filtro := r.URL.Query().Get("filtro")
		offset, limit := utils.GetPaginationParams(r, investigadoresPorPagina)

		rows, err := repository.GetInvestigadores(r.Context(), d.DB, d.Centro)
		if err != nil {
			d.failPage(w, r, "investigadores", err)
			return
		}
		invs := shaper.ConsolidarInvestigadores(rows)
		shaper.OrdenarPorApellido(invs)

		d.writeJSON(w, http.StatusOK, utils.Paginate(shaper.FiltrarInvestigadores(invs, filtro), offset, limit))
	}
}

// GetInvestigadorHandler returns one investigator with every group and area merged.
func GetInvestigadorHandler(d *Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		nombre, ok := pathVar(r, "nombre")
		if !ok {
			d.badParam(w)
			return
		}

		rows, err := repository.GetDetallesInvestigador(r.Context(), d.DB, d.Centro, nombre)
		if err != nil {
			d.failDetail(w, r, "investigador", err)
			return
		}
		invs := shaper.ConsolidarInvestigadores(rows)
		if len(invs) == 0 {
			d.notFound(w)
			return
		}
		d.writeJSON(w, http.StatusOK, models.DetailResponse{Data: invs[0]})
	}
}

type publicacionesAutor struct {
	Nombre string              `json:"nombre"`
	Anios  int                 `json:"anios"`
	Total  int                 `json:"total"`
	Grupos []models.GrupoAnual `json:"grupos"`
}

func aniosParam(r *http.Request) int {
	n, err := strconv.Atoi(r.URL.Query().Get("anios"))
	if err != nil {
		return 0
	}
	return n
}

// GetPublicacionesInvestigadorHandler lists an author's publications grouped
// by year, restricted by the anios window.
func GetPublicacionesInvestigadorHandler(d *Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		nombre, ok := pathVar(r, "nombre")
		if !ok {
			d.badParam(w)
			return
		}
		anios := aniosParam(r)

		grupos, err := repository.LoadPublicacionesAutor(r.Context(), d.DB, d.Centro, nombre)
		if err != nil {
			d.failDetail(w, r, "publicaciones investigador", err)
			return
		}
		grupos = shaper.FiltrarPorAnios(grupos, anios, d.now())
		total := 0
		for _, g := range grupos {
			total += len(g.Publicaciones)
		}
		d.writeJSON(w, http.StatusOK, models.DetailResponse{Data: publicacionesAutor{
			Nombre: nombre,
			Anios:  anios,
			Total:  total,
			Grupos: grupos,
		}})
	}
}

// GetPublicacionesInvestigadorCSVHandler exports the same listing as CSV.
func GetPublicacionesInvestigadorCSVHandler(d *Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		nombre, ok := pathVar(r, "nombre")
		if !ok {
			d.badParam(w)
			return
		}
		anios := aniosParam(r)

		grupos, err := repository.LoadPublicacionesAutor(r.Context(), d.DB, d.Centro, nombre)
		if err != nil {
			d.failDetail(w, r, "publicaciones investigador csv", err)
			return
		}
		grupos = shaper.FiltrarPorAnios(grupos, anios, d.now())
		writeCSV(w, shaper.NombreArchivoPublicaciones(nombre, anios), shaper.CSVPublicaciones(grupos))
	}
}

// GetProyectosInvestigadorHandler splits an investigator's projects by role.
func GetProyectosInvestigadorHandler(d *Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		nombre, ok := pathVar(r, "nombre")
		if !ok {
			d.badParam(w)
			return
		}

		rows, err := repository.GetProyectosPorInvestigador(r.Context(), d.DB, d.Centro, nombre)
		if err != nil {
			d.failDetail(w, r, "proyectos investigador", err)
			return
		}
		d.writeJSON(w, http.StatusOK, models.DetailResponse{Data: shaper.SepararPorRol(nombre, rows)})
	}
}

type extraIndiceH struct {
	MaxIndiceH *int `json:"maxIndiceH"`
	MinH       *int `json:"minH"`
	MaxH       *int `json:"maxH"`
}

func filtroIndiceH(r *http.Request) shaper.FiltroIndiceH {
	q := r.URL.Query()
	return shaper.NewFiltroIndiceH(q.Get("nombre"), utils.ParseIntParam(q.Get("minH")), utils.ParseIntParam(q.Get("maxH")))
}

// GetIndicesHHandler returns the h-index ranking filtered by name and range.
func GetIndicesHHandler(d *Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filtro := filtroIndiceH(r)
		offset, limit := utils.GetPaginationParams(r, indicesHPorPagina)

		rows, err := repository.LoadIndicesH(r.Context(), d.DB, d.Centro)
		if err != nil {
			d.failPage(w, r, "indiceH", err)
			return
		}

		resp := utils.Paginate(filtro.Aplicar(rows), offset, limit)
		extra := extraIndiceH{MinH: filtro.Rango.Min, MaxH: filtro.Rango.Max}
		if maximo, ok := shaper.MaxIndiceH(rows); ok {
			extra.MaxIndiceH = &maximo
		}
		resp.Extra = extra
		d.writeJSON(w, http.StatusOK, resp)
	}
}

// GetIndicesHCSVHandler exports the filtered ranking as CSV.
func GetIndicesHCSVHandler(d *Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filtro := filtroIndiceH(r)

		rows, err := repository.LoadIndicesH(r.Context(), d.DB, d.Centro)
		if err != nil {
			d.failDetail(w, r, "indiceH csv", err)
			return
		}
		writeCSV(w, filtro.NombreArchivo(), shaper.CSVIndiceH(filtro.Aplicar(rows)))
	}
}
