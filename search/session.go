package search

import (
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/kelydev/explorador/metrics"
	"github.com/kelydev/explorador/models"
	"github.com/kelydev/explorador/shaper"
)

// Estado is the state a search session publishes after every change.
type Estado struct {
	Termino       string                    `json:"termino"`
	Buscando      bool                      `json:"buscando"`
	SinResultados bool                      `json:"sinResultados"`
	Resultados    models.ResultadosBusqueda `json:"resultados"`
}

// Session is one live search over a loaded universe. Emissions are
// serialized, so emit may write to a connection that allows one writer.
type Session struct {
	universo  *shaper.Universo
	debouncer *Debouncer
	emit      func(Estado)
	logger    *zap.Logger
	metrics   *metrics.Metrics

	mu     sync.Mutex
	closed bool
}

// NewSession creates a session that waits delay after the last input before
// searching u.
func NewSession(u *shaper.Universo, delay time.Duration, emit func(Estado), logger *zap.Logger, m *metrics.Metrics) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		universo:  u,
		debouncer: NewDebouncer(delay),
		emit:      emit,
		logger:    logger,
		metrics:   m,
	}
}

// Input handles a new search term. An empty term resets the results at once;
// anything else publishes a searching state and runs the search once input
// settles.
func (s *Session) Input(termino string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	if strings.TrimSpace(termino) == "" {
		s.debouncer.Cancel()
		s.emit(Estado{Termino: termino, Resultados: shaper.Vacio()})
		return
	}

	s.debouncer.Call(func(seq uint64) { s.run(seq, termino) })
	s.emit(Estado{Termino: termino, Buscando: true, Resultados: shaper.Vacio()})
}

func (s *Session) run(seq uint64, termino string) {
	res := shaper.Buscar(s.universo, termino)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || !s.debouncer.IsCurrent(seq) {
		s.logger.Debug("discarding stale search", zap.String("termino", termino), zap.Uint64("seq", seq))
		s.metrics.IncSearch("stale")
		return
	}
	s.metrics.IncSearch("applied")
	s.emit(Estado{Termino: termino, Resultados: res, SinResultados: res.TodosVacios()})
}

// Close stops pending work and waits for a running search to finish. Nothing
// is emitted after Close returns.
func (s *Session) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	s.debouncer.Cancel()
	s.debouncer.Wait()
}
