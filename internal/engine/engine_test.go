package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/hammamikhairi/cateringcalc/internal/calculator"
	"github.com/hammamikhairi/cateringcalc/internal/domain"
	"github.com/hammamikhairi/cateringcalc/internal/logger"
	"github.com/hammamikhairi/cateringcalc/internal/proportion"
	"github.com/hammamikhairi/cateringcalc/internal/recipe"
	"github.com/hammamikhairi/cateringcalc/internal/storage"
)

func setupEngine(t *testing.T, opts ...calculator.Option) (*Engine, *storage.MemoryStore, context.Context) {
	t.Helper()
	log := logger.New(logger.LevelOff, nil)
	calc := calculator.New(proportion.Default(), log, opts...)
	recipes := recipe.NewMemorySource(log)
	store := storage.NewMemoryStore(log)
	return New(calc, recipes, store, log), store, context.Background()
}

func TestDishSheet(t *testing.T) {
	eng, _, _ := setupEngine(t)

	tests := []struct {
		servings float64
		rice     string
		water    string
	}{
		{6, "500g", "1.25L"},
		{12, "1kg", "2.5L"},
		{3, "250g", "630ml"},
	}

	for _, tt := range tests {
		sheet, err := eng.DishSheet(proportion.Valenciana, tt.servings)
		if err != nil {
			t.Fatalf("dish sheet: %v", err)
		}
		rice, ok := sheet.Find("rice")
		if !ok || rice.Display != tt.rice {
			t.Fatalf("x%v: rice = %q, want %q", tt.servings, rice.Display, tt.rice)
		}
		water, _ := sheet.Find("water")
		if water.Display != tt.water {
			t.Fatalf("x%v: water = %q, want %q", tt.servings, water.Display, tt.water)
		}
	}
}

func TestDishSheetSorted(t *testing.T) {
	eng, _, _ := setupEngine(t)

	sheet, err := eng.DishSheet(proportion.Seafood, 6)
	if err != nil {
		t.Fatalf("dish sheet: %v", err)
	}
	if sheet.Title != "Seafood x6" {
		t.Fatalf("unexpected title %q", sheet.Title)
	}
	for i := 1; i < len(sheet.Lines); i++ {
		if sheet.Lines[i-1].Ingredient > sheet.Lines[i].Ingredient {
			t.Fatalf("lines not sorted: %s before %s", sheet.Lines[i-1].Ingredient, sheet.Lines[i].Ingredient)
		}
	}
}

func TestItemsSheet(t *testing.T) {
	eng, _, _ := setupEngine(t)

	sheet, err := eng.ItemsSheet([]domain.LineItem{
		{DishType: proportion.Valenciana, Servings: 6},
		{DishType: proportion.Seafood, Servings: 6},
	})
	if err != nil {
		t.Fatalf("items sheet: %v", err)
	}
	if len(sheet.Items) != 2 {
		t.Fatalf("expected 2 item sheets, got %d", len(sheet.Items))
	}
	if sheet.Total.Servings != 12 {
		t.Fatalf("expected 12 total servings, got %v", sheet.Total.Servings)
	}

	for ingredient, want := range map[string]string{"rice": "1kg", "water": "2.5L", "prawns": "500g", "saffron": "0.3g"} {
		got, ok := sheet.Total.Find(ingredient)
		if !ok || got.Display != want {
			t.Fatalf("%s: got %q, want %q", ingredient, got.Display, want)
		}
	}
}

func TestOrderSheet(t *testing.T) {
	eng, store, ctx := setupEngine(t, calculator.WithStrictDishTypes(true))

	if err := store.Save(ctx, &domain.Order{
		ID:           "o-1",
		CustomerName: "Jordi",
		Items: []domain.LineItem{
			{DishType: proportion.Mixed, Servings: 12},
			{DishType: proportion.Vegetarian, Servings: 6},
		},
	}); err != nil {
		t.Fatalf("save: %v", err)
	}

	sheet, err := eng.OrderSheet(ctx, "o-1")
	if err != nil {
		t.Fatalf("order sheet: %v", err)
	}
	rice, _ := sheet.Total.Find("rice")
	if rice.Display != "1.5kg" {
		t.Fatalf("rice = %q, want 1.5kg", rice.Display)
	}

	if _, err := eng.OrderSheet(ctx, "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := store.Save(ctx, &domain.Order{
		ID:           "o-2",
		CustomerName: "Jordi",
		Items:        []domain.LineItem{{DishType: "Negra", Servings: 6}},
	}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := eng.OrderSheet(ctx, "o-2"); !errors.Is(err, domain.ErrUnknownDishType) {
		t.Fatalf("expected ErrUnknownDishType, got %v", err)
	}
}

func TestRecipeSheet(t *testing.T) {
	eng, _, ctx := setupEngine(t)

	base, err := eng.BaseRecipeSheet(ctx, "sangria")
	if err != nil {
		t.Fatalf("recipe sheet: %v", err)
	}
	if base.Servings != 10 || base.ScalingFactor != 1 {
		t.Fatalf("expected base servings, got %v (factor %v)", base.Servings, base.ScalingFactor)
	}
	if base.Lines[0].Ingredient != "red wine" || base.Lines[0].ScaledDisplay != "1.50L" {
		t.Fatalf("unexpected first line %+v", base.Lines[0])
	}

	scaled, err := eng.RecipeSheet(ctx, "sangria", 25)
	if err != nil {
		t.Fatalf("recipe sheet: %v", err)
	}
	want := map[string]string{"red wine": "3.75L", "oranges": "5units", "sugar": "200g", "lemons": "2.5units"}
	for _, l := range scaled.Lines {
		if w, ok := want[l.Ingredient]; ok && l.ScaledDisplay != w {
			t.Fatalf("%s: got %q, want %q", l.Ingredient, l.ScaledDisplay, w)
		}
	}

	for _, servings := range []float64{0, -1} {
		if _, err := eng.RecipeSheet(ctx, "sangria", servings); !errors.Is(err, domain.ErrInvalidRecipe) {
			t.Fatalf("servings %v: expected ErrInvalidRecipe, got %v", servings, err)
		}
	}
	if _, err := eng.RecipeSheet(ctx, "missing", 4); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := eng.BaseRecipeSheet(ctx, "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestReferenceSheets(t *testing.T) {
	eng, _, _ := setupEngine(t)

	sheets := eng.ReferenceSheets()
	if len(sheets) != len(eng.DishTypes()) {
		t.Fatalf("expected one sheet per dish type, got %d", len(sheets))
	}

	var valenciana *Sheet
	for _, s := range sheets {
		if s.Title == proportion.Valenciana {
			valenciana = s
		}
	}
	if valenciana == nil {
		t.Fatal("no Valenciana sheet")
	}

	want := map[string]string{"rice": "500g for 6", "water": "1.25L for 6"}
	for name, display := range want {
		line, ok := valenciana.Find(name)
		if !ok {
			t.Fatalf("missing %s", name)
		}
		if line.Display != display {
			t.Errorf("%s: got %q, want %q", name, line.Display, display)
		}
	}
}
