package models

// PublicacionAutor is one publication of an author listing.
type PublicacionAutor struct {
	Titulo     string `json:"titulo"`
	Year       string `json:"year,omitempty"`
	URLDialnet string `json:"urlDialnet,omitempty"`
	URLScopus  string `json:"urlScopus,omitempty"`
}

// GrupoAnual holds the publications of one year, in encounter order.
type GrupoAnual struct {
	Year          string             `json:"year"`
	Publicaciones []PublicacionAutor `json:"publicaciones"`
}

// Publicacion is a publication of the institution listing.
type Publicacion struct {
	Titulo    string `json:"titulo"`
	EID       string `json:"eid"`
	Year      string `json:"year"`
	Tipo      string `json:"tipo"`
	ISBN      string `json:"isbn,omitempty"`
	EISSN     string `json:"eissn,omitempty"`
	Editorial string `json:"editorial,omitempty"`
}

// Autor is an author of a publication flagged against the reference set.
type Autor struct {
	Name          string `json:"name"`
	IsPolitecnica bool   `json:"isPolitecnica"`
}

// PublicacionDetalle is the detail of a publication looked up by title.
type PublicacionDetalle struct {
	Title              string   `json:"title"`
	URLDialnet         string   `json:"urlDialnet"`
	URLScopus          string   `json:"urlScopus"`
	ISBN               string   `json:"isbn"`
	EISSN              string   `json:"eissn"`
	TipoPublicacion    string   `json:"tipoPublicacion"`
	Editorial          string   `json:"editorial"`
	PublicadaEnRevista string   `json:"publicadaEnRevista"`
	Bibtex             string   `json:"bibtex"`
	HasPublicationYear string   `json:"hasPublicationYear"`
	Publisher          string   `json:"publisher"`
	Autores            string   `json:"autores"`
	AutoresLista       []string `json:"autoresLista"`
	AutoresExtended    []Autor  `json:"autoresExtended"`
}

// ScopusEntry is one entry of a Scopus search response.
type ScopusEntry struct {
	EID   string `json:"eid"`
	Title string `json:"dc:title"`
}

// ScopusResponse is the subset of the Scopus search response that is consumed.
type ScopusResponse struct {
	SearchResults struct {
		TotalResults string        `json:"opensearch:totalResults"`
		Entry        []ScopusEntry `json:"entry"`
	} `json:"search-results"`
}
