package shaper

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kelydev/explorador/models"
	"github.com/kelydev/explorador/utils"
)

func intPtr(n int) *int { return &n }

func TestFiltroIndiceH(t *testing.T) {
	rows := []models.InvestigadorIndiceH{
		{Nombre: "José Pérez", IndiceH: "12", Valor: 12, Valido: true},
		{Nombre: "Ana López", IndiceH: "5", Valor: 5, Valido: true},
		{Nombre: "Sin dato", IndiceH: "n/d"},
	}

	tests := []struct {
		name   string
		filtro FiltroIndiceH
		want   []string
	}{
		{"no filter", NewFiltroIndiceH("", nil, nil), []string{"José Pérez", "Ana López", "Sin dato"}},
		{"by name without accents", NewFiltroIndiceH("jose", nil, nil), []string{"José Pérez"}},
		{"min bound", NewFiltroIndiceH("", intPtr(6), nil), []string{"José Pérez"}},
		{"negative min is zero", NewFiltroIndiceH("", intPtr(-3), intPtr(5)), []string{"Ana López"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, r := range tt.filtro.Aplicar(rows) {
				got = append(got, r.Nombre)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFiltroIndiceHClamp(t *testing.T) {
	f := NewFiltroIndiceH("", intPtr(10), intPtr(4))
	require.NotNil(t, f.Rango.Min)
	assert.Equal(t, 4, *f.Rango.Min)
	assert.Equal(t, 4, *f.Rango.Max)
}

func TestNombreArchivoIndiceH(t *testing.T) {
	assert.Equal(t, "investigadores_indiceH.csv", NewFiltroIndiceH("", nil, nil).NombreArchivo())
	assert.Equal(t, "investigadores_indiceH_nombre-Ana_López_minH-2_maxH-9.csv",
		NewFiltroIndiceH(" Ana  López ", intPtr(2), intPtr(9)).NombreArchivo())
}

func TestCSVIndiceH(t *testing.T) {
	assert.Nil(t, CSVIndiceH(nil))

	out := string(CSVIndiceH([]models.InvestigadorIndiceH{{IndiceH: "3"}, {Nombre: "Eva"}}))
	assert.True(t, strings.HasPrefix(out, "\ufeffNombre,Índice H\n"))
	assert.Contains(t, out, `"Sin nombre","3"`)
	assert.Contains(t, out, `"Eva","N/A"`)
}

func TestFiltrarPorAnios(t *testing.T) {
	now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	grupos := []models.GrupoAnual{{Year: "2024"}, {Year: "2023"}, {Year: "2022"}, {Year: "2020"}, {Year: SinAnio}}

	years := func(gs []models.GrupoAnual) []string {
		out := []string{}
		for _, g := range gs {
			out = append(out, g.Year)
		}
		return out
	}
	assert.Len(t, FiltrarPorAnios(grupos, 0, now), 5)
	assert.Equal(t, []string{"2024"}, years(FiltrarPorAnios(grupos, 1, now)))
	assert.Equal(t, []string{"2023"}, years(FiltrarPorAnios(grupos, -1, now)))
	assert.Equal(t, []string{"2023", "2022"}, years(FiltrarPorAnios(grupos, 2, now)))
}

func TestNombreArchivoPublicaciones(t *testing.T) {
	assert.Equal(t, "publicaciones_todas_AnaLópez.csv", NombreArchivoPublicaciones("Ana López", 0))
	assert.Equal(t, "publicaciones_anio_actual_Ana.csv", NombreArchivoPublicaciones("Ana", 1))
	assert.Equal(t, "publicaciones_ultimo_anio_Ana.csv", NombreArchivoPublicaciones("Ana", -1))
	assert.Equal(t, "publicaciones_ultimos_5_anios_Ana.csv", NombreArchivoPublicaciones("Ana", 5))
}

func TestFiltroProyectos(t *testing.T) {
	proyectos := []models.Proyecto{
		{Nombre: "Robótica móvil", ProjectIdentifier: "RM-1", Ambito: "Nacional", ProjectType: "I+D",
			GrantNumber: 5000, StartDate: "01/02/2020", EndDate: "01/02/2022"},
		{Nombre: "Drones", ProjectIdentifier: "DR-2", Ambito: "Europeo", ProjectType: "I+D",
			GrantNumber: 90000, StartDate: "15/06/2018", EndDate: "15/06/2021"},
		{Nombre: "Sin fechas", ProjectIdentifier: "SF-3", Ambito: "Nacional", ProjectType: "Contrato"},
	}
	nombres := func(ps []models.Proyecto) []string {
		out := []string{}
		for _, p := range ps {
			out = append(out, p.Nombre)
		}
		return out
	}

	assert.Len(t, FiltroProyectos{}.Aplicar(proyectos), 3)
	assert.Equal(t, []string{"Robótica móvil"}, nombres(FiltroProyectos{Texto: "robotica"}.Aplicar(proyectos)))
	assert.Equal(t, []string{"Drones"}, nombres(FiltroProyectos{Texto: "dr-2"}.Aplicar(proyectos)))
	assert.Equal(t, []string{"Robótica móvil", "Sin fechas"},
		nombres(FiltroProyectos{Ambito: "Nacional", Tipo: utils.Todos}.Aplicar(proyectos)))
	assert.Equal(t, []string{"Robótica móvil", "Sin fechas"},
		nombres(FiltroProyectos{Fechas: utils.NewRangoFechas("2019-01-01", "")}.Aplicar(proyectos)))

	var f FiltroProyectos
	hi := 10000.0
	f.Subvencion.SetMax(&hi)
	assert.Equal(t, []string{"Robótica móvil", "Sin fechas"}, nombres(f.Aplicar(proyectos)))
}

func TestFiltroScopus(t *testing.T) {
	pubs := []models.Publicacion{
		{Titulo: "Deep Learning", EID: "2-s2.0-1", Year: "2021", Tipo: "Article"},
		{Titulo: "Nodos sensores", Year: "2019"},
		{Titulo: "Robots", EID: "2-s2.0-3", Year: "2021", Tipo: "Conference"},
	}
	titulos := func(ps []models.Publicacion) []string {
		out := []string{}
		for _, p := range ps {
			out = append(out, p.Titulo)
		}
		return out
	}

	assert.Len(t, FiltroScopus{}.Aplicar(pubs), 3)
	assert.Equal(t, []string{"Nodos sensores"}, titulos(FiltroScopus{Texto: "no disp"}.Aplicar(pubs)))
	assert.Equal(t, []string{"Deep Learning", "Robots"}, titulos(FiltroScopus{Anio: intPtr(2021)}.Aplicar(pubs)))
	assert.Equal(t, []string{"Nodos sensores"}, titulos(FiltroScopus{Tipo: SinTipo}.Aplicar(pubs)))

	f := FiltroScopus{Keywords: ParseKeywords("robots; ;ia")}
	assert.Equal(t, []string{"robots", "ia"}, f.Keywords)
	assert.Equal(t, []string{"robots", "ia", "drones"}, ParseKeywords("robots, ia", "drones"))
	assert.Equal(t, []string{}, ParseKeywords())
	assert.Empty(t, f.Aplicar(pubs), "an empty allow-list matches nothing")
	f.Permitir([]models.ScopusEntry{{EID: "2-s2.0-3"}, {Title: "  deep learning "}})
	assert.Equal(t, []string{"Deep Learning", "Robots"}, titulos(f.Aplicar(pubs)))
}

func TestFiltroScopusValidarAnio(t *testing.T) {
	f := FiltroScopus{Anio: intPtr(1800)}
	assert.Equal(t, "Introduce un año entre 1990 y 2024", f.ValidarAnio(1990, 2024))
	assert.Nil(t, f.Anio)

	f.Anio = intPtr(2000)
	assert.Empty(t, f.ValidarAnio(1990, 2024))
	assert.NotNil(t, f.Anio)
}

func TestFiltrarInvestigadores(t *testing.T) {
	invs := []models.Investigador{{Nombre: "Ana", Areas: "Ingeniería Telemática"}, {Nombre: "Luis", Areas: "Química"}}
	got := FiltrarInvestigadores(invs, "telematica")
	require.Len(t, got, 1)
	assert.Equal(t, "Ana", got[0].Nombre)
	assert.Len(t, FiltrarInvestigadores(invs, ""), 2)
}
