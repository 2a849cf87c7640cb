package controllers

import (
	"net/http"
	"strings"

	"github.com/kelydev/explorador/models"
	"github.com/kelydev/explorador/repository"
	"github.com/kelydev/explorador/utils"
)

const gruposPorPagina = 3

// GetGruposHandler lists the research groups with members of the centre,
// optionally filtered by group name and by member name.
func GetGruposHandler(d *Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		groupName := strings.TrimSpace(r.URL.Query().Get("grupo"))
		investigatorName := strings.TrimSpace(r.URL.Query().Get("investigador"))
		offset, limit := utils.GetPaginationParams(r, gruposPorPagina)

		grupos, err := repository.LoadGrupos(r.Context(), d.DB, d.Centro)
		if err != nil {
			d.failPage(w, r, "grupos", err)
			return
		}

		filtrados := []models.GrupoInvestigacion{}
		for _, g := range grupos {
			if !utils.ContieneNormalizado(g.Grupo, groupName) {
				continue
			}
			miembros := append(append([]string{}, g.PersonasEscuela...), g.OtrosMiembros...)
			if investigatorName != "" && !utils.ContieneAlguno(investigatorName, miembros...) {
				continue
			}
			filtrados = append(filtrados, g)
		}
		d.writeJSON(w, http.StatusOK, utils.Paginate(filtrados, offset, limit))
	}
}

// GetGrupoHandler returns one research group with its lines and members.
func GetGrupoHandler(d *Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		nombre, ok := pathVar(r, "nombre")
		if !ok {
			d.badParam(w)
			return
		}

		detalle, err := repository.LoadGrupoDetalle(r.Context(), d.DB, d.Centro, nombre)
		if err != nil {
			d.failDetail(w, r, "grupo", err)
			return
		}
		if detalle == nil {
			d.notFound(w)
			return
		}
		d.writeJSON(w, http.StatusOK, models.DetailResponse{Data: detalle})
	}
}
