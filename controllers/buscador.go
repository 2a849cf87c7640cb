package controllers

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/kelydev/explorador/models"
	"github.com/kelydev/explorador/repository"
	"github.com/kelydev/explorador/search"
	"github.com/kelydev/explorador/shaper"
)

type resultadoBuscador struct {
	Termino       string                    `json:"termino"`
	SinResultados bool                      `json:"sinResultados"`
	Resultados    models.ResultadosBusqueda `json:"resultados"`
	ErrorMessage  string                    `json:"errorMessage,omitempty"`
}

// GetBuscadorHandler runs one general search over investigators, groups,
// projects and publications.
func GetBuscadorHandler(d *Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		termino := r.URL.Query().Get("q")
		if strings.TrimSpace(termino) == "" {
			d.writeJSON(w, http.StatusOK, resultadoBuscador{Termino: termino, Resultados: shaper.Vacio()})
			return
		}

		u, err := repository.LoadUniverso(r.Context(), d.DB, d.Centro)
		if err != nil {
			d.logger().Error("error loading search universe", zap.Error(err))
			d.writeJSON(w, http.StatusBadGateway, resultadoBuscador{
				Termino:      termino,
				Resultados:   shaper.Vacio(),
				ErrorMessage: msgErrorCarga,
			})
			return
		}

		res := shaper.Buscar(u, termino)
		d.writeJSON(w, http.StatusOK, resultadoBuscador{Termino: termino, Resultados: res, SinResultados: res.TodosVacios()})
	}
}

type mensajeBuscador struct {
	Termino string `json:"termino"`
}

const wsWriteWait = 10 * time.Second

// BuscadorWSHandler serves the live search. The client sends
// {"termino": "..."} on every keystroke and receives search.Estado values.
func BuscadorWSHandler(d *Deps) http.HandlerFunc {
	upgrader := websocket.Upgrader{CheckOrigin: d.originAllowed}
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			d.logger().Warn("websocket upgrade failed", zap.Error(err))
			return
		}
		defer conn.Close()

		u, err := repository.LoadUniverso(r.Context(), d.DB, d.Centro)
		if err != nil {
			d.logger().Error("error loading search universe", zap.Error(err))
			conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			conn.WriteJSON(resultadoBuscador{Resultados: shaper.Vacio(), ErrorMessage: msgErrorCarga})
			return
		}

		sess := search.NewSession(u, d.SearchDebounce, func(e search.Estado) {
			conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteJSON(e); err != nil {
				d.logger().Debug("websocket write failed", zap.Error(err))
			}
		}, d.logger(), d.Metrics)
		defer sess.Close()

		for {
			var msg mensajeBuscador
			if err := conn.ReadJSON(&msg); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					d.logger().Debug("websocket closed", zap.Error(err))
				}
				return
			}
			sess.Input(msg.Termino)
		}
	}
}

func (d *Deps) originAllowed(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	if strings.EqualFold(u.Host, r.Host) {
		return true
	}
	for _, o := range d.AllowedOrigins {
		if o == "*" || strings.EqualFold(o, origin) {
			return true
		}
	}
	return false
}
