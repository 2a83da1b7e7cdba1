package domain

import "context"

// RecipeSource provides recipes. Implementations can be in-memory,
// file-based or backed by a hosted database.
type RecipeSource interface {
	List(ctx context.Context) ([]RecipeSummary, error)
	Get(ctx context.Context, id string) (*Recipe, error)
	Search(ctx context.Context, query string) ([]RecipeSummary, error)
}

// OrderStore persists catering orders. The calculator only reads them.
type OrderStore interface {
	Save(ctx context.Context, order *Order) error
	Load(ctx context.Context, id string) (*Order, error)
	List(ctx context.Context) ([]*Order, error)
}
