package models

// PersonaAsignada is a participant of a project.
type PersonaAsignada struct {
	PersonalName   string `json:"personalName"`
	Role           string `json:"role"`
	ScopusID       string `json:"scopusId,omitempty"`
	PersonalCentro string `json:"personalCentro,omitempty"`
	PersonalActual bool   `json:"personalActual"`
	// IsPolitecnica is resolved against the institution reference set.
	IsPolitecnica bool `json:"isPolitecnica"`
}

// Proyecto represents a research project with its assigned persons.
type Proyecto struct {
	Nombre              string            `json:"nombre"`
	Identifier          string            `json:"identifier"`
	ProjectIdentifier   string            `json:"projectIdentifier"`
	Ambito              string            `json:"ambito"`
	ProjectType         string            `json:"projectType"`
	EntidadFinanciadora string            `json:"entidadFinanciadora"`
	GrantNumber         float64           `json:"grantNumber"`
	StartDate           string            `json:"startDate"`
	EndDate             string            `json:"endDate"`
	AssignedPersons     []PersonaAsignada `json:"assignedPersons"`
}

// ProyectoInvestigador is a project row of the per-investigator projects page.
type ProyectoInvestigador struct {
	ProjectIdentifier string  `json:"projectIdentifier"`
	NombreProyecto    string  `json:"nombreProyecto"`
	Role              string  `json:"role"`
	GrantNumber       float64 `json:"grantNumber"`
}

// ResumenRol aggregates projects by the role of the institution participants.
type ResumenRol struct {
	Count int     `json:"count"`
	Total float64 `json:"total"`
}

// ResumenProyectos splits projects led by an institution principal
// investigator from the rest.
type ResumenProyectos struct {
	Principal   ResumenRol `json:"principal"`
	Colaborador ResumenRol `json:"colaborador"`
}

// ProyectosInvestigador is the per-investigator projects page.
type ProyectosInvestigador struct {
	Nombre                      string                 `json:"nombre"`
	ProyectosPrincipales        []ProyectoInvestigador `json:"proyectosPrincipales"`
	ProyectosColaboracion       []ProyectoInvestigador `json:"proyectosColaboracion"`
	TotalSubvencionPrincipal    float64                `json:"totalSubvencionPrincipal"`
	TotalSubvencionColaboracion float64                `json:"totalSubvencionColaboracion"`
	TotalPrincipalFormateado    string                 `json:"totalPrincipalFormateado"`
	TotalColaboracionFormateado string                 `json:"totalColaboracionFormateado"`
}
