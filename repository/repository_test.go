package repository

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kelydev/explorador/models"
)

const centro = "Escuela Politécnica"

// fakeQuerier answers queries by exact text and records what it was asked.
type fakeQuerier struct {
	mu      sync.Mutex
	answers map[string][]models.Binding
	fail    map[string]error
	seen    []string
}

func newFake() *fakeQuerier {
	return &fakeQuerier{answers: map[string][]models.Binding{}, fail: map[string]error{}}
}

func (f *fakeQuerier) on(query string, rows ...models.Binding) *fakeQuerier {
	f.answers[query] = rows
	return f
}

func (f *fakeQuerier) Select(_ context.Context, query string) (*models.ResultSet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seen = append(f.seen, query)
	if err, ok := f.fail[query]; ok {
		return nil, err
	}
	rs := &models.ResultSet{}
	rs.Results.Bindings = f.answers[query]
	return rs, nil
}

func row(kv ...string) models.Binding {
	b := models.Binding{}
	for i := 0; i+1 < len(kv); i += 2 {
		b[kv[i]] = models.Value{Type: "literal", Value: kv[i+1]}
	}
	return b
}

func TestBuildEscapesCentre(t *testing.T) {
	q := build(investigadoresQuery, `Centro "raro"`, "")
	assert.Contains(t, q, `foaf:name "Centro \"raro\""`)
	assert.NotContains(t, q, "%!")
}

func TestGetDetallesInvestigadorAnchorsRegex(t *testing.T) {
	f := newFake()
	_, err := GetDetallesInvestigador(context.Background(), f, centro, "Ana (Pérez)")
	require.NoError(t, err)
	require.Len(t, f.seen, 1)
	assert.Contains(t, f.seen[0], `regex(?nombre, "^Ana \\(Pérez\\)$", "i")`)
}

func TestSelectRowsNeverNil(t *testing.T) {
	rows, err := GetInvestigadores(context.Background(), newFake(), centro)
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestSelectRowsWrapsErrors(t *testing.T) {
	boom := errors.New("boom")
	f := newFake()
	f.fail[build(indicesHQuery, centro, "")] = boom

	_, err := LoadIndicesH(context.Background(), f, centro)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "h-index ranking")
}

func TestLoadGrupos(t *testing.T) {
	f := newFake().
		on(build(miembrosEscuelaQuery, centro, ""),
			row("nombre", "Ana", "nombreGrupo", "G1"),
			row("nombre", "Luis", "nombreGrupo", "G1")).
		on(build(miembrosExternosQuery, centro, ""),
			row("nombre", "Eva", "nombreGrupo", "G1"),
			row("nombre", "Otro", "nombreGrupo", "Solo externos"))

	grupos, err := LoadGrupos(context.Background(), f, centro)
	require.NoError(t, err)
	require.Len(t, grupos, 1)
	assert.Equal(t, "G1", grupos[0].Grupo)
	assert.Equal(t, []string{"Ana", "Luis"}, grupos[0].PersonasEscuela)
	assert.Equal(t, []string{"Eva"}, grupos[0].OtrosMiembros)
}

func TestLoadGruposFailsAsAWhole(t *testing.T) {
	f := newFake().on(build(miembrosEscuelaQuery, centro, ""), row("nombre", "Ana", "nombreGrupo", "G1"))
	f.fail[build(miembrosExternosQuery, centro, "")] = errors.New("timeout")

	grupos, err := LoadGrupos(context.Background(), f, centro)
	assert.Error(t, err)
	assert.Nil(t, grupos)
}

func TestLoadGrupoDetalle(t *testing.T) {
	f := newFake().
		on(build(detallesGrupoQuery, centro, "G1"),
			row("name", "G1", "coordinadorNombre", "ANA RUIZ", "lineaInvestigacion", "urn:l1", "title", "IA"),
			row("name", "G1", "coordinadorNombre", "ANA RUIZ", "lineaInvestigacion", "urn:l1", "title", "IA")).
		on(build(investigadoresQuery, centro, ""), row("nombre", "Ana Ruiz")).
		on(build(miembrosEscuelaQuery, centro, ""), row("nombre", "Ana Ruiz", "nombreGrupo", "G1"))

	d, err := LoadGrupoDetalle(context.Background(), f, centro, "G1")
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.True(t, d.CoordinadorIsPolitecnica)
	assert.Len(t, d.Lineas, 1)
	assert.Equal(t, []string{"Ana Ruiz"}, d.PersonasEscuela)

	d, err = LoadGrupoDetalle(context.Background(), f, centro, "No existe")
	require.NoError(t, err)
	assert.Nil(t, d)
}

func TestLoadProyectoDetalleTagsAndOrders(t *testing.T) {
	f := newFake().
		on(build(detallesProyectoQuery, centro, "P-1"),
			row("nombre", "Drones", "projectIdentifier", "P-1", "personalName", "Luis Gil", "role", "Investigador"),
			row("nombre", "Drones", "projectIdentifier", "P-1", "personalName", "Ana Ruiz", "role", "Investigador principal")).
		on(build(investigadoresQuery, centro, ""), row("nombre", "Ana Ruiz"))

	p, err := LoadProyectoDetalle(context.Background(), f, centro, "P-1")
	require.NoError(t, err)
	require.NotNil(t, p)
	require.Len(t, p.AssignedPersons, 2)
	assert.Equal(t, "Ana Ruiz", p.AssignedPersons[0].PersonalName)
	assert.True(t, p.AssignedPersons[0].IsPolitecnica)
	assert.False(t, p.AssignedPersons[1].IsPolitecnica)

	p, err = LoadProyectoDetalle(context.Background(), f, centro, "P-404")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestLoadProyectosSortedByStart(t *testing.T) {
	f := newFake().on(build(proyectosQuery, centro, ""),
		row("nombre", "Viejo", "startDate", "01/01/2010", "personalName", "Ana", "role", "Investigador"),
		row("nombre", "Nuevo", "startDate", "01/01/2020", "personalName", "Ana", "role", "Investigador"),
		row("nombre", "Viejo", "personalName", "Luis", "role", "Investigador principal"))

	ps, err := LoadProyectos(context.Background(), f, centro)
	require.NoError(t, err)
	require.Len(t, ps, 2)
	assert.Equal(t, "Nuevo", ps[0].Nombre)
	assert.Len(t, ps[1].AssignedPersons, 2)
}

func TestLoadPublicacionDetalle(t *testing.T) {
	f := newFake().
		on(build(detallesPublicacionQuery, centro, "Título"), row("title", "Título", "autores", "ANA RUIZ, otro autor")).
		on(build(investigadoresQuery, centro, ""), row("nombre", "Ana Ruiz"))

	d, err := LoadPublicacionDetalle(context.Background(), f, centro, "Título")
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, []models.Autor{{Name: "Ana Ruiz", IsPolitecnica: true}, {Name: "Otro Autor"}}, d.AutoresExtended)
}

func TestLoadPublicacionesAutor(t *testing.T) {
	f := newFake().on(build(publicacionesPorAutorQuery, centro, "Ana"),
		row("titulo", "A", "year", "2020"),
		row("titulo", "B"),
		row("titulo", "C", "year", "2022"))

	grupos, err := LoadPublicacionesAutor(context.Background(), f, centro, "Ana")
	require.NoError(t, err)
	years := []string{}
	for _, g := range grupos {
		years = append(years, g.Year)
	}
	assert.Equal(t, []string{"2022", "2020", "Sin año"}, years)
}

func TestLoadUniverso(t *testing.T) {
	f := newFake().
		on(build(investigadoresQuery, centro, ""), row("nombre", "Ana")).
		on(build(miembrosEscuelaQuery, centro, ""), row("nombre", "Ana", "nombreGrupo", "G1")).
		on(build(proyectosQuery, centro, ""), row("nombre", "P", "projectIdentifier", "1")).
		on(build(publicacionesCentroQuery, centro, ""), row("titulo", "T"))

	u, err := LoadUniverso(context.Background(), f, centro)
	require.NoError(t, err)
	assert.Len(t, u.Investigadores, 1)
	assert.Len(t, u.Grupos, 1)
	assert.Len(t, u.Proyectos, 1)
	assert.Len(t, u.Publicaciones, 1)
	assert.Len(t, f.seen, 4)
	for _, q := range f.seen {
		assert.True(t, strings.HasPrefix(q, "PREFIX foaf:"))
	}
}
