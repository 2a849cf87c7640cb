package models

// GrupoInvestigacion represents a research group with its members split between
// people of the institution and external members.
type GrupoInvestigacion struct {
	Grupo           string   `json:"grupo"`
	PersonasEscuela []string `json:"personasEscuela"`
	OtrosMiembros   []string `json:"otrosMiembros"`
}

// LineaInvestigacion is one research line of a group.
type LineaInvestigacion struct {
	URI         string `json:"uri"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// GrupoDetalle is the consolidated detail of a research group.
type GrupoDetalle struct {
	Nombre                   string               `json:"name"`
	Coordinador              string               `json:"coordinador"`
	CoordinadorNombre        string               `json:"coordinadorNombre"`
	CoordinadorIsPolitecnica bool                 `json:"coordinadorIsPolitecnica"`
	DepartamentoNombre       string               `json:"departamentoNombre"`
	CentroNombre             string               `json:"centroNombre"`
	CampusCentro             string               `json:"campusCentro"`
	Lineas                   []LineaInvestigacion `json:"lineasInvestigacion"`
	PersonasEscuela          []string             `json:"personasEscuela"`
	OtrosMiembros            []string             `json:"otrosMiembros"`
}
