package shaper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kelydev/explorador/models"
)

func TestBuscarPersonOnly(t *testing.T) {
	u := NewUniverso(
		[]models.Binding{row("nombre", "Roberto", "areas", "Robótica")},
		nil, nil, nil,
	)

	res := Buscar(u, "robo")
	require.Len(t, res.Investigadores, 1)
	assert.Equal(t, "Roberto", res.Investigadores[0].Nombre)
	assert.Empty(t, res.Grupos)
	assert.Empty(t, res.Proyectos)
	assert.Empty(t, res.Publicaciones)
	assert.False(t, res.TodosVacios())
}

func TestBuscarEmptyTerm(t *testing.T) {
	u := NewUniverso([]models.Binding{row("nombre", "Roberto")}, nil, nil, nil)

	res := Buscar(u, "   ")
	assert.True(t, res.TodosVacios())
	assert.NotNil(t, res.Investigadores)
}

func TestBuscarReachesMembersThroughGroups(t *testing.T) {
	u := NewUniverso(
		[]models.Binding{
			row("nombre", "Ana", "orcidId", "o-1"),
			row("nombre", "Luis"),
			row("nombre", "Marta"),
		},
		[]models.Binding{
			row("nombre", "Ana", "nombreGrupo", "Sistemas Inteligentes"),
			row("nombre", "Ana", "nombreGrupo", "Sistemas Inteligentes"),
			row("nombre", "Luis", "nombreGrupo", "Sistemas Inteligentes"),
			row("nombre", "Marta", "nombreGrupo", "Química"),
		},
		nil, nil,
	)
	assert.Equal(t, []string{"Ana", "Luis"}, u.Grupos[0].Investigadores)
	assert.Equal(t, "Sistemas Inteligentes", u.Investigadores[0].Grupo)

	res := Buscar(u, "inteligentes")
	names := []string{}
	for _, inv := range res.Investigadores {
		names = append(names, inv.Nombre)
	}
	assert.Equal(t, []string{"Ana", "Luis"}, names)
	require.Len(t, res.Grupos, 1)
	assert.Equal(t, "Sistemas Inteligentes", res.Grupos[0].Nombre)
}

func TestBuscarDiacriticInsensitive(t *testing.T) {
	u := NewUniverso(nil, nil, nil, []models.Binding{
		row("titulo", "Visión artificial", "year", "2020"),
		row("titulo", "Otra cosa"),
	})

	res := Buscar(u, "VISION")
	require.Len(t, res.Publicaciones, 1)
	assert.Equal(t, "Visión artificial", res.Publicaciones[0].Titulo)
}

func TestBuscarDeduplicatesProjectsByID(t *testing.T) {
	u := NewUniverso(nil, nil, []models.Binding{
		row("nombre", "Drones A", "projectIdentifier", "ID-1", "grantNumber", "10"),
		row("nombre", "Drones B", "projectIdentifier", "ID-2"),
		row("nombre", "Drones A bis", "projectIdentifier", "ID-1"),
	}, nil)

	res := Buscar(u, "drones")
	require.Len(t, res.Proyectos, 2)
	assert.Equal(t, "Drones A bis", res.Proyectos[0].Nombre)
	assert.Equal(t, "ID-2", res.Proyectos[1].ID)
}

func TestFusionarInvestigadores(t *testing.T) {
	tests := []struct {
		name       string
		directos   []models.InvestigadorBuscador
		indirectos []models.InvestigadorBuscador
		wantLen    int
	}{
		{
			name:       "same orcid merges",
			directos:   []models.InvestigadorBuscador{{Nombre: "Ana", OrcidID: "o1", ScopusID: "s1"}},
			indirectos: []models.InvestigadorBuscador{{Nombre: "Ana", OrcidID: "o1", ScopusID: "s2"}},
			wantLen:    1,
		},
		{
			name:       "same scopus merges",
			directos:   []models.InvestigadorBuscador{{Nombre: "Ana", OrcidID: "o1", ScopusID: "s1"}},
			indirectos: []models.InvestigadorBuscador{{Nombre: "Ana", OrcidID: "o2", ScopusID: "s1"}},
			wantLen:    1,
		},
		{
			name:       "different ids are kept apart",
			directos:   []models.InvestigadorBuscador{{Nombre: "Ana", OrcidID: "o1", ScopusID: "s1"}},
			indirectos: []models.InvestigadorBuscador{{Nombre: "Ana", OrcidID: "o2", ScopusID: "s2"}},
			wantLen:    2,
		},
		{
			name:     "different names",
			directos: []models.InvestigadorBuscador{{Nombre: "Ana"}, {Nombre: "Luis"}},
			wantLen:  2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FusionarInvestigadores(tt.directos, tt.indirectos)
			assert.Len(t, got, tt.wantLen)
			assert.Equal(t, tt.directos[0], got[0])
		})
	}
}

func TestFusionarInvestigadoresSynthesizedKeys(t *testing.T) {
	got := FusionarInvestigadores(
		[]models.InvestigadorBuscador{{Nombre: "Ana", OrcidID: "o1"}},
		[]models.InvestigadorBuscador{
			{Nombre: "Ana", ScopusID: "s9"},
			{Nombre: "Ana", OrcidID: "o3", ScopusID: "s3"},
			{Nombre: "Ana", DialnetID: "d1"},
		},
	)
	require.Len(t, got, 3)
	assert.Equal(t, "s9", got[1].ScopusID)
	assert.Equal(t, "o3", got[2].OrcidID)
	for _, inv := range got {
		assert.NotEqual(t, "d1", inv.DialnetID, "empty scopus ids compare equal and merge")
	}
}
