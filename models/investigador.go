package models

// Investigador represents a person of the linked-data graph, consolidated into a
// single record even when the endpoint returns one row per group or area.
type Investigador struct {
	Nombre             string   `json:"nombre"`
	LastName           string   `json:"lastName"`
	ScopusID           string   `json:"scopusId"`
	OrcidID            string   `json:"orcidId"`
	DialnetID          string   `json:"dialnetId"`
	IndiceH            string   `json:"indiceHscopus"`
	CategoriaPDI       string   `json:"categoriaPDI"`
	NombreCentro       string   `json:"nombreCentro"`
	CampusCentro       string   `json:"campusCentro"`
	NombreDepartamento string   `json:"nombreDepartamento"`
	PersonalActual     bool     `json:"personalActual"`
	Areas              string   `json:"areas"` // comma joined, as returned by GROUP_CONCAT
	AreasLista         []string `json:"areasLista"`
	NombreGrupo        string   `json:"nombreGrupo,omitempty"`
	// GruposInvestigacion is the semicolon joined union of every group the
	// person belongs to.
	GruposInvestigacion string   `json:"gruposInvestigacion"`
	Grupos              []string `json:"grupos"`
}

// InvestigadorIndiceH is a row of the h-index ranking.
type InvestigadorIndiceH struct {
	Nombre  string `json:"nombre"`
	IndiceH string `json:"indiceH"`
	// Valor is the parsed index; Valido is false when the literal is not numeric.
	Valor  int  `json:"valor"`
	Valido bool `json:"valido"`
}
