package search

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kelydev/explorador/metrics"
	"github.com/kelydev/explorador/models"
	"github.com/kelydev/explorador/shaper"
)

type recorder struct {
	mu     sync.Mutex
	states []Estado
	got    chan Estado
}

func newRecorder() *recorder {
	return &recorder{got: make(chan Estado, 32)}
}

func (r *recorder) emit(e Estado) {
	r.mu.Lock()
	r.states = append(r.states, e)
	r.mu.Unlock()
	r.got <- e
}

func (r *recorder) all() []Estado {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Estado(nil), r.states...)
}

func (r *recorder) next(t *testing.T) Estado {
	t.Helper()
	select {
	case e := <-r.got:
		return e
	case <-time.After(2 * time.Second):
		t.Fatal("no state emitted")
		return Estado{}
	}
}

func universo() *shaper.Universo {
	b := func(kv ...string) models.Binding {
		out := models.Binding{}
		for i := 0; i+1 < len(kv); i += 2 {
			out[kv[i]] = models.Value{Type: "literal", Value: kv[i+1]}
		}
		return out
	}
	return shaper.NewUniverso(
		[]models.Binding{b("nombre", "Roberto", "areas", "Robótica"), b("nombre", "Ana", "areas", "Química")},
		nil, nil, nil,
	)
}

func newSession(rec *recorder, delay time.Duration) *Session {
	return NewSession(universo(), delay, rec.emit, zap.NewNop(), metrics.NewNop())
}

func TestSessionEmitsSearchingThenResults(t *testing.T) {
	rec := newRecorder()
	s := newSession(rec, 10*time.Millisecond)
	defer s.Close()

	s.Input("robo")
	first := rec.next(t)
	assert.True(t, first.Buscando)
	assert.Equal(t, "robo", first.Termino)

	final := rec.next(t)
	assert.False(t, final.Buscando)
	require.Len(t, final.Resultados.Investigadores, 1)
	assert.Equal(t, "Roberto", final.Resultados.Investigadores[0].Nombre)
	assert.False(t, final.SinResultados)
}

func TestSessionOnlyLatestInputProducesResults(t *testing.T) {
	rec := newRecorder()
	s := newSession(rec, 40*time.Millisecond)

	s.Input("r")
	s.Input("ro")
	s.Input("quim")
	time.Sleep(150 * time.Millisecond)
	s.Close()

	var finals []Estado
	for _, e := range rec.all() {
		if !e.Buscando {
			finals = append(finals, e)
		}
	}
	require.Len(t, finals, 1)
	assert.Equal(t, "quim", finals[0].Termino)
	require.Len(t, finals[0].Resultados.Investigadores, 1)
	assert.Equal(t, "Ana", finals[0].Resultados.Investigadores[0].Nombre)
}

func TestSessionEmptyInputResetsImmediately(t *testing.T) {
	rec := newRecorder()
	s := newSession(rec, time.Hour)
	defer s.Close()

	s.Input("robo")
	assert.True(t, rec.next(t).Buscando)

	s.Input("  ")
	reset := rec.next(t)
	assert.False(t, reset.Buscando)
	assert.True(t, reset.Resultados.TodosVacios())
	assert.NotNil(t, reset.Resultados.Investigadores)
}

func TestSessionNoResults(t *testing.T) {
	rec := newRecorder()
	s := newSession(rec, time.Millisecond)
	defer s.Close()

	s.Input("zzz")
	rec.next(t)
	assert.True(t, rec.next(t).SinResultados)
}

func TestSessionCloseStopsPendingSearch(t *testing.T) {
	rec := newRecorder()
	s := newSession(rec, 30*time.Millisecond)

	s.Input("robo")
	s.Close()
	s.Input("ana")
	time.Sleep(60 * time.Millisecond)

	states := rec.all()
	require.Len(t, states, 1)
	assert.True(t, states[0].Buscando)
}
