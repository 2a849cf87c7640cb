package shaper

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/kelydev/explorador/models"
	"github.com/kelydev/explorador/utils"
)

// SinTipo is the category of publications without a type.
const SinTipo = "Sin tipo"

// FiltrarInvestigadores keeps the investigators whose name or areas contain texto.
func FiltrarInvestigadores(invs []models.Investigador, texto string) []models.Investigador {
	out := []models.Investigador{}
	for _, inv := range invs {
		if utils.ContieneAlguno(strings.TrimSpace(texto), inv.Nombre, inv.Areas) {
			out = append(out, inv)
		}
	}
	return out
}

// FiltroIndiceH filters the h-index ranking by name and value range.
type FiltroIndiceH struct {
	Nombre string
	Rango  utils.Rango[int]
}

// NewFiltroIndiceH builds the filter. Negative bounds count as zero and the
// max is applied after the min, so a max below the min snaps the min down.
func NewFiltroIndiceH(nombre string, minH, maxH *int) FiltroIndiceH {
	f := FiltroIndiceH{Nombre: strings.TrimSpace(nombre)}
	f.Rango.SetMin(noNegativo(minH))
	f.Rango.SetMax(noNegativo(maxH))
	return f
}

func noNegativo(v *int) *int {
	if v == nil || *v >= 0 {
		return v
	}
	cero := 0
	return &cero
}

// Aplicar returns the rows that pass the filter. Rows with a non-numeric
// index only pass while no bound is set.
func (f FiltroIndiceH) Aplicar(rows []models.InvestigadorIndiceH) []models.InvestigadorIndiceH {
	out := []models.InvestigadorIndiceH{}
	for _, r := range rows {
		if !utils.ContieneNormalizado(r.Nombre, f.Nombre) {
			continue
		}
		if f.Rango.Activo() && (!r.Valido || !f.Rango.Contiene(r.Valor)) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// NombreArchivo is the CSV filename encoding the active bounds.
func (f FiltroIndiceH) NombreArchivo() string {
	partes := []string{"investigadores_indiceH"}
	if f.Nombre != "" {
		partes = append(partes, "nombre-"+utils.SanitizarNombreArchivo(f.Nombre, "_"))
	}
	if f.Rango.Min != nil {
		partes = append(partes, fmt.Sprintf("minH-%d", *f.Rango.Min))
	}
	if f.Rango.Max != nil {
		partes = append(partes, fmt.Sprintf("maxH-%d", *f.Rango.Max))
	}
	return strings.Join(partes, "_") + ".csv"
}

// CSVIndiceH renders the ranking export. It returns nil for no rows.
func CSVIndiceH(rows []models.InvestigadorIndiceH) []byte {
	data := make([][]string, 0, len(rows))
	for _, r := range rows {
		nombre, indice := r.Nombre, r.IndiceH
		if nombre == "" {
			nombre = "Sin nombre"
		}
		if indice == "" {
			indice = "N/A"
		}
		data = append(data, []string{nombre, indice})
	}
	return utils.CSV([]string{"Nombre", "Índice H"}, data)
}

// FiltrarPorAnios keeps the year buckets inside the window selected by
// filtro: 0 keeps everything, 1 the current year, -1 the previous year and
// n > 1 the n years before the current one. The SinAnio bucket only survives
// with filtro 0.
func FiltrarPorAnios(grupos []models.GrupoAnual, filtro int, now time.Time) []models.GrupoAnual {
	if filtro == 0 {
		return grupos
	}
	actual := now.Year()
	dentro := func(y int) bool {
		switch {
		case filtro == 1:
			return y == actual
		case filtro == -1:
			return y == actual-1
		case filtro > 1:
			return y <= actual-1 && y >= actual-filtro
		default:
			return false
		}
	}
	out := []models.GrupoAnual{}
	for _, g := range grupos {
		if y, ok := leadingInt(g.Year); ok && g.Year != SinAnio && dentro(y) {
			out = append(out, g)
		}
	}
	return out
}

// NombreArchivoPublicaciones is the CSV filename of an author's publications.
func NombreArchivoPublicaciones(autor string, filtro int) string {
	var rango string
	switch {
	case filtro == 0:
		rango = "todas"
	case filtro == 1:
		rango = "anio_actual"
	case filtro == -1:
		rango = "ultimo_anio"
	default:
		rango = "ultimos_" + strconv.Itoa(filtro) + "_anios"
	}
	return fmt.Sprintf("publicaciones_%s_%s.csv", rango, utils.SanitizarNombreArchivo(autor, ""))
}

// CSVPublicaciones renders an author's publications export. It returns nil
// for no rows.
func CSVPublicaciones(grupos []models.GrupoAnual) []byte {
	var data [][]string
	for _, g := range grupos {
		for _, p := range g.Publicaciones {
			data = append(data, []string{g.Year, p.Titulo, p.URLDialnet, p.URLScopus})
		}
	}
	return utils.CSV([]string{"Año", "Publicación", "URL Dialnet", "URL Scopus"}, data)
}

// FiltroProyectos holds the project listing filters.
type FiltroProyectos struct {
	Texto      string
	Ambito     string
	Tipo       string
	Fechas     utils.RangoFechas
	Subvencion utils.Rango[float64]
}

// Aplicar returns the projects that pass every filter.
func (f FiltroProyectos) Aplicar(proyectos []models.Proyecto) []models.Proyecto {
	texto := strings.TrimSpace(f.Texto)
	out := []models.Proyecto{}
	for _, p := range proyectos {
		switch {
		case !utils.ContieneAlguno(texto, p.Nombre, p.ProjectIdentifier):
		case !utils.CoincideCategoria(f.Ambito, p.Ambito):
		case !utils.CoincideCategoria(f.Tipo, p.ProjectType):
		case !f.Fechas.Contiene(p.StartDate, p.EndDate):
		case f.Subvencion.Activo() && !f.Subvencion.Contiene(p.GrantNumber):
		default:
			out = append(out, p)
		}
	}
	return out
}

// FiltroScopus holds the institution publications page filters. Keywords
// restricts the listing to the publications matched by Scopus.
type FiltroScopus struct {
	Texto    string
	Anio     *int
	Tipo     string
	Keywords []string
	eids     map[string]struct{}
	titulos  map[string]struct{}
}

// ParseKeywords splits every value on commas or semicolons.
func ParseKeywords(values ...string) []string {
	out := []string{}
	for _, v := range values {
		out = append(out, utils.SplitTrim(strings.ReplaceAll(v, ";", ","), ",")...)
	}
	return out
}

// Permitir records the Scopus entries allowed by the keyword filter.
func (f *FiltroScopus) Permitir(entries []models.ScopusEntry) {
	f.eids = make(map[string]struct{}, len(entries))
	f.titulos = make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if e.EID != "" {
			f.eids[e.EID] = struct{}{}
		}
		f.titulos[strings.ToLower(strings.TrimSpace(e.Title))] = struct{}{}
	}
}

// ValidarAnio drops a year outside [minimo, maximo] and returns the message
// shown in its place.
func (f *FiltroScopus) ValidarAnio(minimo, maximo int) string {
	if f.Anio == nil || (*f.Anio >= minimo && *f.Anio <= maximo) {
		return ""
	}
	f.Anio = nil
	return fmt.Sprintf("Introduce un año entre %d y %d", minimo, maximo)
}

// Aplicar returns the publications that pass every filter.
func (f FiltroScopus) Aplicar(pubs []models.Publicacion) []models.Publicacion {
	texto := strings.ToLower(strings.TrimSpace(f.Texto))
	out := []models.Publicacion{}
	for _, p := range pubs {
		if f.coincideTexto(p, texto) && f.coincideAnio(p) &&
			utils.CoincideCategoria(f.Tipo, TipoPublicacion(p)) && f.coincideKeyword(p) {
			out = append(out, p)
		}
	}
	return out
}

// TipoPublicacion is the category of p for the type filter.
func TipoPublicacion(p models.Publicacion) string {
	if t := strings.TrimSpace(p.Tipo); t != "" {
		return t
	}
	return SinTipo
}

// coincideTexto matches title or eid. A term starting with "no" also matches
// publications without an eid.
func (f FiltroScopus) coincideTexto(p models.Publicacion, texto string) bool {
	if strings.Contains(strings.ToLower(p.Titulo), texto) || strings.Contains(strings.ToLower(p.EID), texto) {
		return true
	}
	return strings.HasPrefix(texto, "no") && strings.TrimSpace(p.EID) == ""
}

func (f FiltroScopus) coincideAnio(p models.Publicacion) bool {
	return f.Anio == nil || p.Year == strconv.Itoa(*f.Anio)
}

func (f FiltroScopus) coincideKeyword(p models.Publicacion) bool {
	if len(f.Keywords) == 0 {
		return true
	}
	if _, ok := f.eids[p.EID]; ok && p.EID != "" {
		return true
	}
	if p.Titulo == "" {
		return false
	}
	_, ok := f.titulos[strings.ToLower(strings.TrimSpace(p.Titulo))]
	return ok
}
