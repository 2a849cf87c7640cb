package controllers

import (
	"net/http"

	"github.com/kelydev/explorador/navigation"
)

type destino struct {
	Destino string `json:"destino"`
}

// AtrasHandler returns the page the visitor should go back to.
func AtrasHandler(d *Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := navigation.VisitorID(w, r)
		d.writeJSON(w, http.StatusOK, destino{Destino: d.Nav.History(id).Back()})
	}
}

// InicioHandler clears the visitor history and sends them home.
func InicioHandler(d *Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := navigation.VisitorID(w, r)
		d.Nav.History(id).Clear()
		d.writeJSON(w, http.StatusOK, destino{Destino: navigation.Home})
	}
}
