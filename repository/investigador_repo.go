package repository

import (
	"context"

	"github.com/kelydev/explorador/database"
	"github.com/kelydev/explorador/models"
	"github.com/kelydev/explorador/shaper"
)

// GetInvestigadores lists the investigators of the centre with their areas.
func GetInvestigadores(ctx context.Context, db Querier, centro string) ([]models.Binding, error) {
	return selectRows(ctx, db, build(investigadoresQuery, centro, ""), "investigators")
}

// GetDetallesInvestigador returns one row per group membership of the
// investigator named nombre. The match ignores case.
func GetDetallesInvestigador(ctx context.Context, db Querier, centro, nombre string) ([]models.Binding, error) {
	return selectRows(ctx, db, build(detallesInvestigadorQuery, centro, database.EscapeRegex(nombre)), "investigator details")
}

// GetIndicesHOrdenados lists the centre investigators by h-index, highest first.
func GetIndicesHOrdenados(ctx context.Context, db Querier, centro string) ([]models.Binding, error) {
	return selectRows(ctx, db, build(indicesHQuery, centro, ""), "h-index ranking")
}

// GetPublicacionesPorAutor lists the publications of the author named nombre.
func GetPublicacionesPorAutor(ctx context.Context, db Querier, centro, nombre string) ([]models.Binding, error) {
	return selectRows(ctx, db, build(publicacionesPorAutorQuery, centro, database.EscapeLiteral(nombre)), "author publications")
}

// GetProyectosPorInvestigador lists the projects and roles of the investigator named nombre.
func GetProyectosPorInvestigador(ctx context.Context, db Querier, centro, nombre string) ([]models.Binding, error) {
	return selectRows(ctx, db, build(proyectosPorInvestigadorQuery, centro, database.EscapeLiteral(nombre)), "investigator projects")
}

// GetReferenceSet builds the set of institution members from the investigators listing.
func GetReferenceSet(ctx context.Context, db Querier, centro string) (shaper.ReferenceSet, error) {
	rows, err := GetInvestigadores(ctx, db, centro)
	if err != nil {
		return nil, err
	}
	return shaper.NewReferenceSet(rows, "nombre"), nil
}
