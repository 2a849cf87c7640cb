package repository

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/kelydev/explorador/database"
	"github.com/kelydev/explorador/models"
	"github.com/kelydev/explorador/shaper"
)

// GetMiembrosEscuela lists the current centre members of every research group.
func GetMiembrosEscuela(ctx context.Context, db Querier, centro string) ([]models.Binding, error) {
	return selectRows(ctx, db, build(miembrosEscuelaQuery, centro, ""), "group members")
}

// GetMiembrosExternos lists the current group members outside the centre.
func GetMiembrosExternos(ctx context.Context, db Querier, centro string) ([]models.Binding, error) {
	return selectRows(ctx, db, build(miembrosExternosQuery, centro, ""), "external group members")
}

// GetDetallesGrupoInvestigacion returns one row per research line of the group.
func GetDetallesGrupoInvestigacion(ctx context.Context, db Querier, centro, nombre string) ([]models.Binding, error) {
	return selectRows(ctx, db, build(detallesGrupoQuery, centro, database.EscapeLiteral(nombre)), "group details")
}

// LoadGrupos runs both member queries concurrently and merges them. Either
// failure fails the whole load so no partial listing is returned.
func LoadGrupos(ctx context.Context, db Querier, centro string) ([]models.GrupoInvestigacion, error) {
	var escuela, otros []models.Binding
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		escuela, err = GetMiembrosEscuela(ctx, db, centro)
		return err
	})
	g.Go(func() (err error) {
		otros, err = GetMiembrosExternos(ctx, db, centro)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("error loading research groups: %w", err)
	}
	return shaper.AgruparGrupos(escuela, otros), nil
}

// LoadGrupoDetalle fetches the group detail, the reference set and the member
// lists concurrently, then consolidates the detail. It returns nil when the
// group does not exist.
func LoadGrupoDetalle(ctx context.Context, db Querier, centro, nombre string) (*models.GrupoDetalle, error) {
	var (
		rows   []models.Binding
		ref    shaper.ReferenceSet
		grupos []models.GrupoInvestigacion
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		rows, err = GetDetallesGrupoInvestigacion(ctx, db, centro, nombre)
		return err
	})
	g.Go(func() (err error) {
		ref, err = GetReferenceSet(ctx, db, centro)
		return err
	})
	g.Go(func() (err error) {
		grupos, err = LoadGrupos(ctx, db, centro)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("error loading group %q: %w", nombre, err)
	}

	detalle := shaper.ConsolidarGrupoDetalle(rows, ref)
	if detalle == nil {
		return nil, nil
	}
	for _, gr := range grupos {
		if gr.Grupo == detalle.Nombre {
			detalle.PersonasEscuela = gr.PersonasEscuela
			detalle.OtrosMiembros = gr.OtrosMiembros
			break
		}
	}
	return detalle, nil
}
