package repository

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/kelydev/explorador/database"
	"github.com/kelydev/explorador/models"
	"github.com/kelydev/explorador/shaper"
)

// GetDetallesPublicacionPorTitulo returns the publication with exactly this title.
func GetDetallesPublicacionPorTitulo(ctx context.Context, db Querier, centro, titulo string) ([]models.Binding, error) {
	return selectRows(ctx, db, build(detallesPublicacionQuery, centro, database.EscapeLiteral(titulo)), "publication details")
}

// GetPublicacionesCentro lists the publications of the centre members.
func GetPublicacionesCentro(ctx context.Context, db Querier, centro string) ([]models.Binding, error) {
	return selectRows(ctx, db, build(publicacionesCentroQuery, centro, ""), "centre publications")
}

// LoadPublicacionDetalle fetches the publication and the reference set
// concurrently. It returns nil when no publication has that title.
func LoadPublicacionDetalle(ctx context.Context, db Querier, centro, titulo string) (*models.PublicacionDetalle, error) {
	var (
		rows []models.Binding
		ref  shaper.ReferenceSet
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		rows, err = GetDetallesPublicacionPorTitulo(ctx, db, centro, titulo)
		return err
	})
	g.Go(func() (err error) {
		ref, err = GetReferenceSet(ctx, db, centro)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("error loading publication %q: %w", titulo, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	d := shaper.NormalizarDetallePublicacion(rows[0], ref)
	return &d, nil
}

// LoadPublicacionesAutor returns the author's publications grouped by year.
func LoadPublicacionesAutor(ctx context.Context, db Querier, centro, nombre string) ([]models.GrupoAnual, error) {
	rows, err := GetPublicacionesPorAutor(ctx, db, centro, nombre)
	if err != nil {
		return nil, err
	}
	pubs := make([]models.PublicacionAutor, 0, len(rows))
	for _, b := range rows {
		pubs = append(pubs, shaper.NormalizarPublicacionAutor(b))
	}
	return shaper.GroupByYear(pubs), nil
}

// LoadIndicesH returns the h-index ranking.
func LoadIndicesH(ctx context.Context, db Querier, centro string) ([]models.InvestigadorIndiceH, error) {
	rows, err := GetIndicesHOrdenados(ctx, db, centro)
	if err != nil {
		return nil, err
	}
	out := make([]models.InvestigadorIndiceH, 0, len(rows))
	for _, b := range rows {
		out = append(out, shaper.NormalizarIndiceH(b))
	}
	return out, nil
}
