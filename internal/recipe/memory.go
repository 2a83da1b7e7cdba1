// Package recipe provides recipe catalog implementations.
package recipe

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/hammamikhairi/cateringcalc/internal/domain"
	"github.com/hammamikhairi/cateringcalc/internal/logger"
	"github.com/hammamikhairi/cateringcalc/internal/validation"
)

// Compile-time interface check.
var _ domain.RecipeSource = (*MemorySource)(nil)

// MemorySource holds recipes in memory. Safe for concurrent reads.
type MemorySource struct {
	mu      sync.RWMutex
	recipes map[string]*domain.Recipe
	log     *logger.Logger
}

// NewMemorySource creates a recipe source preloaded with built-in recipes.
func NewMemorySource(log *logger.Logger) *MemorySource {
	src := &MemorySource{
		recipes: make(map[string]*domain.Recipe),
		log:     log,
	}
	src.seed()
	return src
}

// List returns summaries of all available recipes.
func (s *MemorySource) List(ctx context.Context) ([]domain.RecipeSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	s.log.Debug("listing all recipes, count=%d", len(s.recipes))

	out := make([]domain.RecipeSummary, 0, len(s.recipes))
	for _, r := range s.recipes {
		out = append(out, summarize(r))
	}
	sortSummaries(out)
	return out, nil
}

// Get returns a recipe by ID.
func (s *MemorySource) Get(ctx context.Context, id string) (*domain.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.recipes[id]
	if !ok {
		s.log.Debug("recipe not found: %s", id)
		return nil, domain.ErrNotFound
	}
	return r, nil
}

// Add validates and stores a new recipe. A recipe without an ID gets a
// generated one.
func (s *MemorySource) Add(ctx context.Context, recipe *domain.Recipe) error {
	if err := validation.Struct(recipe, domain.ErrInvalidRecipe); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if recipe.ID == "" {
		recipe.ID = uuid.NewString()
	}
	if _, ok := s.recipes[recipe.ID]; ok {
		return domain.ErrAlreadyExists
	}
	s.recipes[recipe.ID] = recipe
	s.log.Info("recipe added: %s (%s, %d servings)", recipe.Name, recipe.ID, recipe.BaseServings)
	return nil
}

// Search returns recipes whose name, description or ingredients contain the
// query string.
func (s *MemorySource) Search(ctx context.Context, query string) ([]domain.RecipeSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(strings.TrimSpace(query))
	s.log.Debug("searching recipes for: %s", q)

	var out []domain.RecipeSummary
	for _, r := range s.recipes {
		if matches(r, q) {
			out = append(out, summarize(r))
		}
	}
	sortSummaries(out)
	return out, nil
}

func matches(r *domain.Recipe, query string) bool {
	if strings.Contains(strings.ToLower(r.Name), query) {
		return true
	}
	if strings.Contains(strings.ToLower(r.Description), query) {
		return true
	}
	for _, ing := range r.Ingredients {
		if strings.Contains(strings.ToLower(ing.Name), query) {
			return true
		}
	}
	return false
}

func summarize(r *domain.Recipe) domain.RecipeSummary {
	return domain.RecipeSummary{
		ID:           r.ID,
		Name:         r.Name,
		Description:  r.Description,
		BaseServings: r.BaseServings,
	}
}

func sortSummaries(out []domain.RecipeSummary) {
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
}

// seed populates the source with built-in recipes.
func (s *MemorySource) seed() {
	recipes := []*domain.Recipe{
		allioli(),
		sangria(),
		cremaCatalana(),
	}
	for _, r := range recipes {
		s.recipes[r.ID] = r
	}
	s.log.Debug("seeded %d recipes", len(recipes))
}

func allioli() *domain.Recipe {
	return &domain.Recipe{
		ID:           "allioli",
		Name:         "Allioli",
		Description:  "Garlic and olive oil emulsion served alongside every paella.",
		BaseServings: 8,
		Ingredients: []domain.RecipeIngredient{
			{Name: "garlic cloves", Unit: domain.UnitCount, Quantity: 4},
			{Name: "olive oil", Unit: domain.UnitMilliliter, Quantity: 250},
			{Name: "egg yolks", Unit: domain.UnitCount, Quantity: 1},
			{Name: "lemon juice", Unit: domain.UnitMilliliter, Quantity: 10},
			{Name: "salt", Unit: domain.UnitGram, Quantity: 3},
		},
	}
}

func sangria() *domain.Recipe {
	return &domain.Recipe{
		ID:                 "sangria",
		Name:               "Sangria",
		Description:        "Red wine punch with citrus and cinnamon, made the night before.",
		CookingTimeMinutes: 20,
		BaseServings:       10,
		Ingredients: []domain.RecipeIngredient{
			{Name: "red wine", Unit: domain.UnitMilliliter, Quantity: 1500},
			{Name: "orange juice", Unit: domain.UnitMilliliter, Quantity: 250},
			{Name: "oranges", Unit: domain.UnitCount, Quantity: 2},
			{Name: "lemons", Unit: domain.UnitCount, Quantity: 1},
			{Name: "sugar", Unit: domain.UnitGram, Quantity: 80},
			{Name: "cinnamon sticks", Unit: domain.UnitCount, Quantity: 2},
		},
	}
}

func cremaCatalana() *domain.Recipe {
	return &domain.Recipe{
		ID:                 "crema-catalana",
		Name:               "Crema Catalana",
		Description:        "Lemon and cinnamon custard with a burnt sugar crust.",
		CookingTimeMinutes: 45,
		BaseServings:       6,
		Ingredients: []domain.RecipeIngredient{
			{Name: "whole milk", Unit: domain.UnitLiter, Quantity: 1},
			{Name: "egg yolks", Unit: domain.UnitCount, Quantity: 8},
			{Name: "sugar", Unit: domain.UnitGram, Quantity: 200},
			{Name: "cornstarch", Unit: domain.UnitGram, Quantity: 40},
			{Name: "lemon zest", Unit: domain.UnitGram, Quantity: 5},
			{Name: "cinnamon sticks", Unit: domain.UnitCount, Quantity: 1},
		},
	}
}
