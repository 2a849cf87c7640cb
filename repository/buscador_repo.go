package repository

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/kelydev/explorador/models"
	"github.com/kelydev/explorador/shaper"
)

// LoadUniverso loads the four collections of the general search concurrently.
func LoadUniverso(ctx context.Context, db Querier, centro string) (*shaper.Universo, error) {
	var invs, grupos, proyectos, pubs []models.Binding
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		invs, err = GetInvestigadores(ctx, db, centro)
		return err
	})
	g.Go(func() (err error) {
		grupos, err = GetMiembrosEscuela(ctx, db, centro)
		return err
	})
	g.Go(func() (err error) {
		proyectos, err = GetProyectosInvestigacion(ctx, db, centro)
		return err
	})
	g.Go(func() (err error) {
		pubs, err = GetPublicacionesCentro(ctx, db, centro)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("error loading search universe: %w", err)
	}
	return shaper.NewUniverso(invs, grupos, proyectos, pubs), nil
}
