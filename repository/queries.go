package repository

import (
	"fmt"

	"github.com/kelydev/explorador/database"
)

const prefixes = `PREFIX foaf: <http://xmlns.com/foaf/0.1/>
PREFIX ou: <http://opendata.unex.es/def/ontouniversidad#>
PREFIX vivo: <http://vivoweb.org/ontology/core#>
PREFIX dcterms: <http://purl.org/dc/terms/>
PREFIX fabio: <http://purl.org/spar/fabio/>
PREFIX bibo: <http://purl.org/ontology/bibo/>
PREFIX frapo: <http://purl.org/cerif/frapo/>
PREFIX swrcfe: <http://www.morelab.deusto.es/ontologies/swrcfe#>
PREFIX xsd: <http://www.w3.org/2001/XMLSchema#>
`

// Every template takes the escaped centre name as its first argument.

const investigadoresQuery = prefixes + `
SELECT ?nombre ?lastName ?scopusId ?orcidId ?dialnetId
       (GROUP_CONCAT(DISTINCT ?nombreArea; separator=", ") AS ?areas)
WHERE {
  ?centro a ou:Centro ;
          foaf:name "%[1]s" .
  ?persona ou:adscritoACentro ?centro ;
           foaf:name ?nombre ;
           foaf:lastName ?lastName ;
           ou:imparteDocenciaEnArea ?area .
  ?area foaf:name ?nombreArea .
  OPTIONAL { ?persona vivo:scopusId ?scopusId . }
  OPTIONAL { ?persona vivo:orcidId ?orcidId . }
  OPTIONAL { ?persona ou:dialnetId ?dialnetId . }
}
GROUP BY ?nombre ?lastName ?scopusId ?orcidId ?dialnetId
ORDER BY ASC(?lastName)`

const detallesInvestigadorQuery = prefixes + `
SELECT ?nombre ?lastName ?scopusId ?orcidId ?dialnetId ?indiceHscopus ?categoriaPDI
       ?nombreCentro ?campusCentro ?nombreDepartamento ?personalActual
       (GROUP_CONCAT(DISTINCT ?nombreArea; separator=", ") AS ?areas)
       ?nombreGrupo
WHERE {
  ?persona foaf:name ?nombre ;
           foaf:lastName ?lastName .
  FILTER (regex(?nombre, "^%[2]s$", "i"))
  OPTIONAL {
    ?persona ou:adscritoACentro ?centro .
    ?centro foaf:name ?nombreCentro .
    OPTIONAL { ?centro ou:campusUniversitario ?campusCentro . }
  }
  OPTIONAL { ?persona ou:adscritoADepartamento ?departamento .
             ?departamento foaf:name ?nombreDepartamento . }
  OPTIONAL { ?persona vivo:scopusId ?scopusId . }
  OPTIONAL { ?persona vivo:orcidId ?orcidId . }
  OPTIONAL { ?persona ou:dialnetId ?dialnetId . }
  OPTIONAL { ?persona ou:indiceHscopus ?indiceHscopus . }
  OPTIONAL { ?persona ou:categoriaPDI ?categoriaPDI . }
  OPTIONAL { ?persona ou:imparteDocenciaEnArea ?area .
             ?area foaf:name ?nombreArea . }
  OPTIONAL { ?persona ou:perteneceAGrupoInvestigacion ?grupo .
             ?grupo foaf:name ?nombreGrupo . }
  OPTIONAL { ?persona ou:personalActual ?personalActual . }
}
GROUP BY ?nombre ?lastName ?scopusId ?orcidId ?dialnetId ?indiceHscopus ?categoriaPDI
         ?nombreCentro ?campusCentro ?nombreDepartamento ?personalActual ?nombreGrupo
ORDER BY ASC(?lastName)`

const indicesHQuery = prefixes + `
SELECT ?nombre ?indiceH
WHERE {
  ?centro a ou:Centro ;
          foaf:name "%[1]s" .
  ?persona ou:adscritoACentro ?centro ;
           foaf:name ?nombre ;
           ou:indiceHscopus ?indiceHString .
  BIND(xsd:integer(?indiceHString) AS ?indiceH)
}
ORDER BY DESC(?indiceH)`

const publicacionesPorAutorQuery = prefixes + `
SELECT ?year ?titulo ?urlDialnet ?urlScopus
WHERE {
  ?persona foaf:name "%[2]s" ;
           ou:tienePublicacion ?publicacion .
  ?publicacion dcterms:title ?titulo .
  OPTIONAL { ?publicacion fabio:hasPublicationYear ?year . }
  OPTIONAL { ?publicacion ou:urlDialnet ?urlDialnet . }
  OPTIONAL { ?publicacion ou:urlScopus ?urlScopus . }
}
ORDER BY ?year`

const detallesPublicacionQuery = prefixes + `
SELECT ?title ?urlDialnet ?urlScopus ?isbn ?eissn ?tipoPublicacion
       ?editorial ?publicadaEnRevista ?bibtex ?hasPublicationYear
       ?publisher (GROUP_CONCAT(DISTINCT ?autorNombre; separator=", ") AS ?autores)
WHERE {
  ?publicacion dcterms:title "%[2]s" .
  ?publicacion dcterms:title ?title .
  ?persona ou:tienePublicacion ?publicacion ;
           foaf:name ?autorNombre .
  OPTIONAL { ?publicacion ou:urlDialnet ?urlDialnet . }
  OPTIONAL { ?publicacion ou:urlScopus ?urlScopus . }
  OPTIONAL { ?publicacion bibo:isbn ?isbn . }
  OPTIONAL { ?publicacion bibo:eissn ?eissn . }
  OPTIONAL { ?publicacion ou:tipoPublicacion ?tipoPublicacion . }
  OPTIONAL { ?publicacion ou:editorial ?editorial . }
  OPTIONAL { ?publicacion ou:publicadaEnRevista ?publicadaEnRevista . }
  OPTIONAL { ?publicacion ou:tieneBIBTEX ?bibtex . }
  OPTIONAL { ?publicacion fabio:hasPublicationYear ?hasPublicationYear . }
  OPTIONAL { ?publicacion dcterms:publisher ?publisher . }
}
GROUP BY ?title ?urlDialnet ?urlScopus ?isbn ?eissn ?tipoPublicacion
         ?editorial ?publicadaEnRevista ?bibtex ?hasPublicationYear ?publisher`

const miembrosEscuelaQuery = prefixes + `
SELECT ?nombre ?lastName ?nombreGrupo
WHERE {
  ?centro a ou:Centro ;
          foaf:name "%[1]s" .
  ?persona ou:adscritoACentro ?centro ;
           foaf:name ?nombre ;
           foaf:lastName ?lastName ;
           ou:personalActual true ;
           ou:perteneceAGrupoInvestigacion ?grupo .
  ?grupo foaf:name ?nombreGrupo .
}
ORDER BY ?nombreGrupo ?lastName`

const miembrosExternosQuery = prefixes + `
SELECT ?nombre ?lastName ?nombreGrupo
WHERE {
  ?persona foaf:name ?nombre ;
           foaf:lastName ?lastName ;
           ou:perteneceAGrupoInvestigacion ?grupo ;
           ou:personalActual ?activo .
  ?grupo foaf:name ?nombreGrupo .
  FILTER(?activo = true)
  FILTER NOT EXISTS {
    ?persona ou:adscritoACentro ?centro .
    ?centro foaf:name "%[1]s" .
  }
}
ORDER BY ?nombreGrupo ?lastName`

const detallesGrupoQuery = prefixes + `
SELECT ?name ?coordinador ?coordinadorNombre ?lineaInvestigacion
       ?title ?description ?departamentoNombre ?centroNombre ?campusCentro
WHERE {
  ?grupo a ou:GrupoInvestigacion ;
         foaf:name ?name .
  FILTER (STR(?name) = "%[2]s")
  OPTIONAL { ?grupo ou:coordinador ?coordinador . }
  OPTIONAL { ?grupo ou:tieneLineaInvestigacion ?lineaInvestigacion . }
  OPTIONAL { ?lineaInvestigacion dcterms:title ?title . }
  OPTIONAL { ?lineaInvestigacion dcterms:description ?description . }
  OPTIONAL { ?coordinador foaf:name ?coordinadorNombre . }
  OPTIONAL { ?coordinador ou:adscritoADepartamento ?departamento .
             ?departamento foaf:name ?departamentoNombre . }
  OPTIONAL { ?coordinador ou:adscritoACentro ?centroC .
             ?centroC foaf:name ?centroNombre .
             OPTIONAL { ?centroC ou:campusUniversitario ?campusCentro . } }
}`

const proyectosQuery = prefixes + `
SELECT DISTINCT ?projectIdentifier ?ambito ?nombre ?grantNumber ?projectType
       ?startDate ?endDate ?personalName ?role
WHERE {
  ?proyecto a vivo:ResearchProject ;
            foaf:name ?nombre .
  OPTIONAL { ?proyecto ou:ambitoProyecto ?ambito . }
  OPTIONAL { ?proyecto frapo:hasProjectIdentifier ?projectIdentifier . }
  OPTIONAL { ?proyecto swrcfe:projectType ?projectType . }
  OPTIONAL { ?proyecto frapo:hasStartDate ?startDate . }
  OPTIONAL { ?proyecto frapo:hasEndDate ?endDate . }
  OPTIONAL { ?grant a frapo:Grant ;
                    frapo:hasGrantNumber ?grantNumber ;
                    frapo:funds ?proyecto . }
  ?assignedPerson a swrcfe:AssignedPerson ;
                  swrcfe:project ?proyecto ;
                  swrcfe:role ?role .
  ?personal swrcfe:assignedTo ?assignedPerson ;
            foaf:name ?personalName ;
            ou:adscritoACentro ?centro .
  ?centro a ou:Centro ;
          foaf:name "%[1]s" .
  FILTER(LCASE(?role) = "investigador principal" || LCASE(?role) = "investigador")
}`

const detallesProyectoQuery = prefixes + `
SELECT DISTINCT ?nombre ?ambito ?entidadFinanciadora ?identifier ?startDate ?endDate
       ?projectIdentifier ?projectType ?grantNumber ?assignedPerson ?role ?scopusId
       ?personalName ?personalCentro ?personalActual
WHERE {
  ?proyecto a vivo:ResearchProject ;
            foaf:name ?nombre ;
            frapo:hasProjectIdentifier ?projectIdentifier .
  FILTER (STR(?projectIdentifier) = "%[2]s")
  OPTIONAL { ?proyecto ou:ambitoProyecto ?ambito . }
  OPTIONAL { ?proyecto ou:entidadFinanciadora ?entidadFinanciadora . }
  OPTIONAL { ?proyecto dcterms:identifier ?identifier . }
  OPTIONAL { ?proyecto frapo:hasStartDate ?startDate . }
  OPTIONAL { ?proyecto frapo:hasEndDate ?endDate . }
  OPTIONAL { ?proyecto swrcfe:projectType ?projectType . }
  OPTIONAL { ?grant a frapo:Grant ;
                    frapo:hasGrantNumber ?grantNumber ;
                    frapo:funds ?proyecto . }
  OPTIONAL {
    ?assignedPerson a swrcfe:AssignedPerson ;
                    swrcfe:project ?proyecto ;
                    swrcfe:role ?role .
    ?personal swrcfe:assignedTo ?assignedPerson ;
              foaf:name ?personalName .
    OPTIONAL { ?personal vivo:scopusId ?scopusId . }
    OPTIONAL { ?personal ou:adscritoACentro ?centroP .
               ?centroP foaf:name ?personalCentro . }
    OPTIONAL { ?personal ou:personalActual ?personalActual . }
  }
}
ORDER BY ?nombre`

const publicacionesCentroQuery = prefixes + `
SELECT DISTINCT ?eid ?titulo ?year ?tipo ?isbn ?eissn ?editorial
WHERE {
  ?centro a ou:Centro ;
          foaf:name "%[1]s" .
  ?persona ou:adscritoACentro ?centro ;
           ou:tienePublicacion ?pub .
  ?pub dcterms:title ?titulo .
  OPTIONAL { ?pub fabio:hasPublicationYear ?year . }
  OPTIONAL { ?pub ou:eid ?eid . }
  OPTIONAL { ?pub ou:tipoPublicacion ?tipo . }
  OPTIONAL { ?pub bibo:isbn ?isbn . }
  OPTIONAL { ?pub bibo:eissn ?eissn . }
  OPTIONAL { ?pub ou:editorial ?editorial . }
}
ORDER BY DESC(?year)`

const proyectosPorInvestigadorQuery = prefixes + `
SELECT ?projectIdentifier ?nombreProyecto ?role ?grantNumber
WHERE {
  ?persona foaf:name "%[2]s" ;
           swrcfe:assignedTo ?assigned .
  ?assigned a swrcfe:AssignedPerson ;
            swrcfe:project ?proyecto ;
            swrcfe:role ?role .
  ?proyecto frapo:hasProjectIdentifier ?projectIdentifier ;
            foaf:name ?nombreProyecto .
  OPTIONAL { ?grant a frapo:Grant ;
                    frapo:funds ?proyecto ;
                    frapo:hasGrantNumber ?grantNumber . }
}
ORDER BY ?nombreProyecto`

// build fills a template with the escaped centre name and an optional key
// already escaped for its position.
func build(tmpl, centro, key string) string {
	return fmt.Sprintf(tmpl, database.EscapeLiteral(centro), key)
}
