// Package repository issues the SPARQL queries of every page and returns
// their raw bindings or, for composite loads, the shaped records.
package repository

import (
	"context"
	"fmt"

	"github.com/kelydev/explorador/models"
)

// Querier runs a SELECT query. *database.Client satisfies it.
type Querier interface {
	Select(ctx context.Context, query string) (*models.ResultSet, error)
}

func selectRows(ctx context.Context, db Querier, query, what string) ([]models.Binding, error) {
	rs, err := db.Select(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying %s: %w", what, err)
	}
	rows := rs.Rows()
	if rows == nil {
		rows = []models.Binding{}
	}
	return rows, nil
}
