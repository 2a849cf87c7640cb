package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kelydev/explorador/controllers"
	"github.com/kelydev/explorador/middleware"
)

// SetupRoutes configures the application routes.
func SetupRoutes(d *controllers.Deps, health controllers.Pinger, gatherer prometheus.Gatherer) *mux.Router {
	r := mux.NewRouter().UseEncodedPath()
	r.Use(middleware.RequestLogger(d.Logger, d.Metrics))

	// --- Ops ---
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})).Methods("GET")
	r.HandleFunc("/healthz", controllers.HealthHandler(health, d.Logger)).Methods("GET")

	// --- Navigation history (not recorded themselves) ---
	r.HandleFunc("/navegacion/atras", controllers.AtrasHandler(d)).Methods("GET")
	r.HandleFunc("/navegacion/inicio", controllers.InicioHandler(d)).Methods("POST")

	// --- Live search ---
	r.HandleFunc("/ws/buscador", controllers.BuscadorWSHandler(d)).Methods("GET")

	// --- Pages (recorded in the visitor history) ---
	pages := r.PathPrefix("").Subrouter()
	pages.Use(middleware.TrackNavigation(d.Nav))

	pages.HandleFunc("/investigadores", controllers.GetInvestigadoresHandler(d)).Methods("GET")
	pages.HandleFunc("/investigadores/{nombre}", controllers.GetInvestigadorHandler(d)).Methods("GET")
	pages.HandleFunc("/investigadores/{nombre}/publicaciones", controllers.GetPublicacionesInvestigadorHandler(d)).Methods("GET")
	pages.HandleFunc("/investigadores/{nombre}/proyectos", controllers.GetProyectosInvestigadorHandler(d)).Methods("GET")
	pages.HandleFunc("/indiceH", controllers.GetIndicesHHandler(d)).Methods("GET")
	pages.HandleFunc("/grupos", controllers.GetGruposHandler(d)).Methods("GET")
	pages.HandleFunc("/grupos/{nombre}", controllers.GetGrupoHandler(d)).Methods("GET")
	pages.HandleFunc("/proyectos", controllers.GetProyectosHandler(d)).Methods("GET")
	pages.HandleFunc("/proyectos/{id}", controllers.GetProyectoHandler(d)).Methods("GET")
	pages.HandleFunc("/publicaciones/{titulo}", controllers.GetPublicacionHandler(d)).Methods("GET")
	pages.HandleFunc("/scopus-publicaciones", controllers.GetScopusPublicacionesHandler(d)).Methods("GET")
	pages.HandleFunc("/scopus/afiliacion", controllers.GetScopusAfiliacionHandler(d)).Methods("GET")
	pages.HandleFunc("/buscador", controllers.GetBuscadorHandler(d)).Methods("GET")

	// --- CSV downloads ---
	r.HandleFunc("/investigadores/{nombre}/publicaciones/csv", controllers.GetPublicacionesInvestigadorCSVHandler(d)).Methods("GET")
	r.HandleFunc("/indiceH/csv", controllers.GetIndicesHCSVHandler(d)).Methods("GET")

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Not found", http.StatusNotFound)
	})
	return r
}
