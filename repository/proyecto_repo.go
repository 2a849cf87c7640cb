package repository

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/kelydev/explorador/database"
	"github.com/kelydev/explorador/models"
	"github.com/kelydev/explorador/shaper"
)

// GetProyectosInvestigacion lists the projects with at least one centre
// participant, one row per participant.
func GetProyectosInvestigacion(ctx context.Context, db Querier, centro string) ([]models.Binding, error) {
	return selectRows(ctx, db, build(proyectosQuery, centro, ""), "projects")
}

// GetDetallesProyecto returns one row per participant of the project id.
func GetDetallesProyecto(ctx context.Context, db Querier, centro, id string) ([]models.Binding, error) {
	return selectRows(ctx, db, build(detallesProyectoQuery, centro, database.EscapeLiteral(id)), "project details")
}

// LoadProyectos returns the project listing: grouped by name and sorted by
// start date, newest first.
func LoadProyectos(ctx context.Context, db Querier, centro string) ([]models.Proyecto, error) {
	rows, err := GetProyectosInvestigacion(ctx, db, centro)
	if err != nil {
		return nil, err
	}
	proyectos := shaper.AgruparProyectos(rows)
	shaper.OrdenarPorFechaInicio(proyectos)
	return proyectos, nil
}

// LoadProyectoDetalle fetches the project and the reference set concurrently,
// then tags and orders its participants. It returns nil when no project has
// identifier id.
func LoadProyectoDetalle(ctx context.Context, db Querier, centro, id string) (*models.Proyecto, error) {
	var (
		rows []models.Binding
		ref  shaper.ReferenceSet
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		rows, err = GetDetallesProyecto(ctx, db, centro, id)
		return err
	})
	g.Go(func() (err error) {
		ref, err = GetReferenceSet(ctx, db, centro)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("error loading project %q: %w", id, err)
	}

	proyectos := shaper.AgruparProyectos(rows)
	if len(proyectos) == 0 {
		return nil, nil
	}
	p := proyectos[0]
	p.AssignedPersons = shaper.PrincipalPrimero(ref.TagPersonas(p.AssignedPersons))
	return &p, nil
}
