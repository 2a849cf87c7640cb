package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/kelydev/explorador/models"
	"github.com/kelydev/explorador/repository"
	"github.com/kelydev/explorador/scopus"
	"github.com/kelydev/explorador/shaper"
	"github.com/kelydev/explorador/utils"
)

const publicacionesPorPagina = 5

// GetPublicacionHandler returns one publication looked up by its title.
func GetPublicacionHandler(d *Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		titulo, ok := pathVar(r, "titulo")
		if !ok {
			d.badParam(w)
			return
		}

		p, err := repository.LoadPublicacionDetalle(r.Context(), d.DB, d.Centro, titulo)
		if err != nil {
			d.failDetail(w, r, "publicacion", err)
			return
		}
		if p == nil {
			d.notFound(w)
			return
		}
		d.writeJSON(w, http.StatusOK, models.DetailResponse{Data: p})
	}
}

type extraScopus struct {
	AnioMin         int      `json:"anioMin"`
	AnioMax         int      `json:"anioMax"`
	Tipos           []string `json:"tipos"`
	MensajeAnio     string   `json:"mensajeAnio,omitempty"`
	MensajeKeywords string   `json:"mensajeKeywords,omitempty"`
}

// GetScopusPublicacionesHandler lists the centre publications filtered by
// text, year, type and, through Scopus, by keywords.
func GetScopusPublicacionesHandler(d *Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		filtro := shaper.FiltroScopus{
			Texto:    q.Get("texto"),
			Anio:     utils.ParseIntParam(q.Get("anio")),
			Tipo:     q.Get("tipo"),
			Keywords: shaper.ParseKeywords(q["keywords"]...),
		}
		offset, limit := utils.GetPaginationParams(r, publicacionesPorPagina)

		rows, err := repository.GetPublicacionesCentro(r.Context(), d.DB, d.Centro)
		if err != nil {
			d.failPage(w, r, "scopus-publicaciones", err)
			return
		}
		pubs := make([]models.Publicacion, 0, len(rows))
		for _, b := range rows {
			pubs = append(pubs, shaper.NormalizarPublicacion(b))
		}

		extra := extraScopus{Tipos: shaper.Valores(pubs, shaper.TipoPublicacion)}
		extra.AnioMin, extra.AnioMax = shaper.RangoAnios(pubs, d.now())
		extra.MensajeAnio = filtro.ValidarAnio(extra.AnioMin, extra.AnioMax)
		extra.MensajeKeywords = d.permitirKeywords(r, &filtro)

		resp := utils.Paginate(filtro.Aplicar(pubs), offset, limit)
		resp.Extra = extra
		d.writeJSON(w, http.StatusOK, resp)
	}
}

// permitirKeywords resolves the keyword allow-list through Scopus. When Scopus
// cannot be used the keyword filter is dropped and a message is returned.
func (d *Deps) permitirKeywords(r *http.Request, f *shaper.FiltroScopus) string {
	if len(f.Keywords) == 0 {
		return ""
	}
	if d.Scopus == nil {
		f.Keywords = nil
		return msgScopusSinClave
	}

	res, err := d.Scopus.SearchByKeywords(r.Context(), f.Keywords, 0, scopus.DefaultCount)
	switch {
	case errors.Is(err, scopus.ErrNoResults):
		f.Permitir(nil)
		return ""
	case errors.Is(err, scopus.ErrMissingAPIKey):
		f.Keywords = nil
		return msgScopusSinClave
	case err != nil:
		d.logger().Warn("scopus keyword search failed", zap.Strings("keywords", f.Keywords), zap.Error(err))
		f.Keywords = nil
		return msgScopusNoRespond
	}
	f.Permitir(res.SearchResults.Entry)
	return ""
}

// GetScopusAfiliacionHandler pages through the publications Scopus lists for
// the institution affiliations.
func GetScopusAfiliacionHandler(d *Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		offset, limit := utils.GetPaginationParams(r, publicacionesPorPagina)
		if d.Scopus == nil {
			d.writeJSON(w, http.StatusOK, models.PaginatedResponse{
				Data:         []models.ScopusEntry{},
				Empty:        true,
				ErrorMessage: msgScopusSinClave,
			})
			return
		}

		res, err := d.Scopus.Publications(r.Context(), offset, limit)
		switch {
		case errors.Is(err, scopus.ErrNoResults):
			d.writeJSON(w, http.StatusOK, utils.Paginate([]models.ScopusEntry{}, offset, limit))
			return
		case errors.Is(err, scopus.ErrMissingAPIKey):
			d.writeJSON(w, http.StatusOK, models.PaginatedResponse{
				Data:         []models.ScopusEntry{},
				Empty:        true,
				ErrorMessage: msgScopusSinClave,
			})
			return
		case err != nil:
			d.failPage(w, r, "scopus afiliacion", err)
			return
		}

		entries := res.SearchResults.Entry
		if entries == nil {
			entries = []models.ScopusEntry{}
		}
		total, err := strconv.Atoi(res.SearchResults.TotalResults)
		if err != nil {
			total = offset + len(entries)
		}
		d.writeJSON(w, http.StatusOK, models.PaginatedResponse{
			Data:       entries,
			Pagination: utils.NewPaginationMetadata(total, offset, limit),
			Empty:      total == 0,
		})
	}
}
