package models

// InvestigadorBuscador is the general search projection of a person.
type InvestigadorBuscador struct {
	Nombre    string `json:"nombre"`
	Areas     string `json:"areas"`
	ScopusID  string `json:"scopusId"`
	OrcidID   string `json:"orcidId"`
	DialnetID string `json:"dialnetId"`
	Grupo     string `json:"grupo,omitempty"`
}

// GrupoBuscador is the general search projection of a group.
type GrupoBuscador struct {
	Nombre         string   `json:"nombre"`
	Investigadores []string `json:"investigadores"`
}

// ProyectoBuscador is the general search projection of a project.
type ProyectoBuscador struct {
	Nombre     string `json:"nombre"`
	Ambito     string `json:"ambito"`
	Tipo       string `json:"tipo"`
	ID         string `json:"id"`
	Subvencion string `json:"subvencion"`
}

// PublicacionBuscador is the general search projection of a publication.
type PublicacionBuscador struct {
	Titulo    string `json:"titulo"`
	Tipo      string `json:"tipo"`
	Year      string `json:"year"`
	EID       string `json:"eid"`
	ISBN      string `json:"isbn"`
	EISSN     string `json:"eissn"`
	Editorial string `json:"editorial"`
}

// ResultadosBusqueda holds the four result categories of a general search.
type ResultadosBusqueda struct {
	Investigadores []InvestigadorBuscador `json:"investigadores"`
	Grupos         []GrupoBuscador        `json:"grupos"`
	Proyectos      []ProyectoBuscador     `json:"proyectos"`
	Publicaciones  []PublicacionBuscador  `json:"publicaciones"`
}

// TodosVacios reports whether every category is empty.
func (r ResultadosBusqueda) TodosVacios() bool {
	return len(r.Investigadores) == 0 &&
		len(r.Grupos) == 0 &&
		len(r.Proyectos) == 0 &&
		len(r.Publicaciones) == 0
}
