// Package controllers holds the HTTP handlers of every page. Handlers are
// built from a Deps value the same way for every route.
package controllers

import (
	"context"
	"encoding/json"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/kelydev/explorador/metrics"
	"github.com/kelydev/explorador/middleware"
	"github.com/kelydev/explorador/models"
	"github.com/kelydev/explorador/navigation"
	"github.com/kelydev/explorador/repository"
)

// User facing messages.
const (
	msgErrorCarga      = "No se pudieron cargar los datos. Inténtalo de nuevo más tarde."
	msgParametro       = "Falta un parámetro obligatorio o no es válido."
	msgNoEncontrado    = "No se encontró el elemento solicitado."
	msgScopusSinClave  = "El filtro por palabras clave de Scopus no está disponible."
	msgScopusNoRespond = "Scopus no respondió; se ignoran las palabras clave."
)

// ScopusSearcher queries the Scopus search API.
type ScopusSearcher interface {
	SearchByKeywords(ctx context.Context, keywords []string, start, count int) (*models.ScopusResponse, error)
	Publications(ctx context.Context, start, count int) (*models.ScopusResponse, error)
}

// Deps carries what the handlers need.
type Deps struct {
	DB             repository.Querier
	Scopus         ScopusSearcher
	Centro         string
	Logger         *zap.Logger
	Metrics        *metrics.Metrics
	Nav            *navigation.Store
	SearchDebounce time.Duration
	AllowedOrigins []string
	Now            func() time.Time
}

func (d *Deps) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}

func (d *Deps) logger() *zap.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return zap.NewNop()
}

// encodeJSON writes v with status. A value that cannot be encoded is logged
// and answered with a 500 instead of an empty body.
func encodeJSON(w http.ResponseWriter, logger *zap.Logger, status int, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		logger.Error("error encoding response", zap.Error(err))
		http.Error(w, msgErrorCarga, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(append(body, '\n'))
}

func (d *Deps) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	encodeJSON(w, d.logger(), status, v)
}

// pathVar returns the decoded route variable name. The router keeps paths
// encoded so names containing '/' still match a single segment.
func pathVar(r *http.Request, name string) (string, bool) {
	raw, ok := mux.Vars(r)[name]
	if !ok {
		return "", false
	}
	v, err := url.PathUnescape(raw)
	if err != nil || strings.TrimSpace(v) == "" {
		return "", false
	}
	return v, true
}

// failPage answers a listing whose data could not be loaded.
func (d *Deps) failPage(w http.ResponseWriter, r *http.Request, what string, err error) {
	d.logger().Error("error loading page data",
		zap.String("request_id", middleware.RequestID(r.Context())),
		zap.String("page", what),
		zap.String("path", r.URL.EscapedPath()),
		zap.Error(err),
	)
	d.writeJSON(w, http.StatusBadGateway, models.PaginatedResponse{
		Data:         []struct{}{},
		Pagination:   models.PaginationMetadata{},
		Empty:        true,
		ErrorMessage: msgErrorCarga,
	})
}

// failDetail answers a detail page whose data could not be loaded.
func (d *Deps) failDetail(w http.ResponseWriter, r *http.Request, what string, err error) {
	d.logger().Error("error loading detail data",
		zap.String("request_id", middleware.RequestID(r.Context())),
		zap.String("page", what),
		zap.String("path", r.URL.EscapedPath()),
		zap.Error(err),
	)
	d.writeJSON(w, http.StatusBadGateway, models.DetailResponse{ErrorMessage: msgErrorCarga})
}

func (d *Deps) badParam(w http.ResponseWriter) {
	d.writeJSON(w, http.StatusBadRequest, models.DetailResponse{ErrorMessage: msgParametro})
}

func (d *Deps) notFound(w http.ResponseWriter) {
	d.writeJSON(w, http.StatusNotFound, models.DetailResponse{ErrorMessage: msgNoEncontrado})
}

// writeCSV sends data as a download named filename. An empty export has no
// file, so it answers 204.
func writeCSV(w http.ResponseWriter, filename string, data []byte) {
	if data == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
	w.Write(data)
}
