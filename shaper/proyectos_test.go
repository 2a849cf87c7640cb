package shaper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kelydev/explorador/models"
)

func TestResumenPorRol(t *testing.T) {
	proyectos := []models.Proyecto{
		{GrantNumber: 100, AssignedPersons: []models.PersonaAsignada{{Role: "Investigador"}, {Role: "INVESTIGADOR PRINCIPAL"}}},
		{GrantNumber: 50, AssignedPersons: []models.PersonaAsignada{{Role: "Investigador"}}},
		{GrantNumber: 25},
	}

	got := ResumenPorRol(proyectos)
	assert.Equal(t, models.ResumenRol{Count: 1, Total: 100}, got.Principal)
	assert.Equal(t, models.ResumenRol{Count: 2, Total: 75}, got.Colaborador)
}

func TestSepararPorRol(t *testing.T) {
	rows := []models.Binding{
		row("nombreProyecto", "A", "role", "Investigador principal", "grantNumber", "1000.5"),
		row("nombreProyecto", "B", "role", "Investigador", "grantNumber", "x"),
		row("nombreProyecto", "C", "role", "Investigador", "grantNumber", "20"),
	}

	got := SepararPorRol("Ana", rows)
	require.Len(t, got.ProyectosPrincipales, 1)
	require.Len(t, got.ProyectosColaboracion, 2)
	assert.Equal(t, 1000.5, got.TotalSubvencionPrincipal)
	assert.Equal(t, 20.0, got.TotalSubvencionColaboracion)
	assert.Contains(t, got.TotalPrincipalFormateado, "€")
}

func TestRangoSubvencion(t *testing.T) {
	lo, hi := RangoSubvencion([]models.Proyecto{{GrantNumber: 0}, {GrantNumber: 300}, {GrantNumber: 20}})
	assert.Equal(t, 20.0, lo)
	assert.Equal(t, 300.0, hi)

	lo, hi = RangoSubvencion(nil)
	assert.Zero(t, lo)
	assert.Zero(t, hi)
}

func TestMaxIndiceH(t *testing.T) {
	_, ok := MaxIndiceH([]models.InvestigadorIndiceH{{IndiceH: "abc"}})
	assert.False(t, ok)

	maximo, ok := MaxIndiceH([]models.InvestigadorIndiceH{{Valor: 3, Valido: true}, {IndiceH: "n/d"}, {Valor: 14, Valido: true}})
	assert.True(t, ok)
	assert.Equal(t, 14, maximo)
}

func TestRangoAnios(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	lo, hi := RangoAnios([]models.Publicacion{{Year: "2010"}, {Year: ""}, {Year: "2021"}}, now)
	assert.Equal(t, 2010, lo)
	assert.Equal(t, 2021, hi)

	lo, hi = RangoAnios(nil, now)
	assert.Equal(t, 1900, lo)
	assert.Equal(t, 2025, hi)
}

func TestOrdenarPorFechaInicio(t *testing.T) {
	ps := []models.Proyecto{
		{Nombre: "sin fecha"},
		{Nombre: "2019", StartDate: "03/04/2019"},
		{Nombre: "2021", StartDate: "01/01/2021"},
		{Nombre: "dic 2019", StartDate: "31/12/2019"},
	}
	OrdenarPorFechaInicio(ps)
	assert.Equal(t, []string{"2021", "dic 2019", "2019", "sin fecha"},
		[]string{ps[0].Nombre, ps[1].Nombre, ps[2].Nombre, ps[3].Nombre})
}

func TestOrdenarPorApellido(t *testing.T) {
	invs := []models.Investigador{{LastName: "Zamora"}, {LastName: "Álvarez"}, {LastName: "Muñoz"}, {LastName: "Martín"}}
	OrdenarPorApellido(invs)
	assert.Equal(t, []string{"Álvarez", "Martín", "Muñoz", "Zamora"},
		[]string{invs[0].LastName, invs[1].LastName, invs[2].LastName, invs[3].LastName})
}

func TestValores(t *testing.T) {
	ps := []models.Proyecto{{Ambito: "Nacional"}, {Ambito: "Europeo"}, {Ambito: "Nacional"}}
	assert.Equal(t, []string{"Todos", "Nacional", "Europeo"}, Valores(ps, func(p models.Proyecto) string { return p.Ambito }))
}
