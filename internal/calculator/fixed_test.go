package calculator

import (
	"errors"
	"math"
	"testing"

	"github.com/hammamikhairi/cateringcalc/internal/domain"
	"github.com/hammamikhairi/cateringcalc/internal/logger"
	"github.com/hammamikhairi/cateringcalc/internal/proportion"
)

func newCalculator(t *testing.T, opts ...Option) *Calculator {
	t.Helper()
	return New(proportion.Default(), logger.New(logger.LevelOff, nil), opts...)
}

func TestAmount(t *testing.T) {
	calc := newCalculator(t)

	tests := []struct {
		name       string
		dish       string
		ingredient string
		servings   float64
		want       domain.Quantity
		wantOK     bool
	}{
		{"rice at reference servings", proportion.Valenciana, "rice", 6, domain.Quantity{Amount: 0.5, Unit: domain.UnitKilogram}, true},
		{"rice doubled", proportion.Valenciana, "rice", 12, domain.Quantity{Amount: 1, Unit: domain.UnitKilogram}, true},
		{"water", proportion.Valenciana, "water", 6, domain.Quantity{Amount: 1.25, Unit: domain.UnitLiter}, true},
		{"olive oil keeps three decimals", proportion.Valenciana, "olive oil", 1, domain.Quantity{Amount: 0.017, Unit: domain.UnitLiter}, true},
		{"saffron in grams", proportion.Valenciana, "saffron", 6, domain.Quantity{Amount: 0.3, Unit: domain.UnitGram}, true},
		{"fractional servings", proportion.Vegetarian, "mushrooms", 1.5, domain.Quantity{Amount: 0.25, Unit: domain.UnitKilogram}, true},
		{"half the reference servings", proportion.Seafood, "mussels", 3, domain.Quantity{Amount: 0.5, Unit: domain.UnitKilogram}, true},
		{"unknown ingredient", proportion.Valenciana, "saffron-extract", 6, domain.Quantity{}, false},
		{"ingredient of another dish", proportion.Seafood, "rabbit", 6, domain.Quantity{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := calc.Amount(tt.dish, tt.ingredient, tt.servings)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Fatalf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestAmountRoundsHalfAwayFromZero(t *testing.T) {
	tbl := proportion.MustTable(map[string]proportion.Rules{
		"Test": {"rice": proportion.Per(1, 4, domain.UnitKilogram)},
	})
	calc := New(tbl, logger.New(logger.LevelOff, nil))

	got, ok, err := calc.Amount("Test", "rice", 0.5)
	if err != nil || !ok {
		t.Fatalf("amount: %v %v", ok, err)
	}
	if got.Amount != 0.13 {
		t.Fatalf("0.125 should round to 0.13, got %v", got.Amount)
	}
}

func TestRound(t *testing.T) {
	tests := []struct {
		v      float64
		places int
		want   float64
	}{
		{0.49998, 2, 0.5},
		{0.125, 2, 0.13},
		{-0.125, 2, -0.13},
		{2.5, 0, 3},
		{0.0166666, 3, 0.017},
		{1.005, 2, 1.01},
	}
	for _, tt := range tests {
		if got := Round(tt.v, tt.places); got != tt.want {
			t.Fatalf("Round(%v, %d) = %v, want %v", tt.v, tt.places, got, tt.want)
		}
	}
	if !math.IsNaN(Round(math.NaN(), 2)) {
		t.Fatal("NaN should pass through")
	}
}

func TestAmountInvalidServings(t *testing.T) {
	calc := newCalculator(t)
	for _, s := range []float64{0, -6, math.NaN(), math.Inf(1)} {
		if _, _, err := calc.Amount(proportion.Valenciana, "rice", s); !errors.Is(err, domain.ErrInvalidServings) {
			t.Fatalf("servings %v: expected ErrInvalidServings, got %v", s, err)
		}
		if _, err := calc.All(proportion.Valenciana, s); !errors.Is(err, domain.ErrInvalidServings) {
			t.Fatalf("servings %v: expected ErrInvalidServings from All, got %v", s, err)
		}
	}
}

func TestUnknownDishType(t *testing.T) {
	t.Run("lenient", func(t *testing.T) {
		calc := newCalculator(t)

		all, err := calc.All("Paella Negra", 6)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if all == nil || len(all) != 0 {
			t.Fatalf("expected empty map, got %v", all)
		}

		_, ok, err := calc.Amount("Paella Negra", "rice", 6)
		if err != nil || ok {
			t.Fatalf("expected not applicable, got ok=%v err=%v", ok, err)
		}
	})

	t.Run("strict", func(t *testing.T) {
		calc := newCalculator(t, WithStrictDishTypes(true))

		if _, err := calc.All("Paella Negra", 6); !errors.Is(err, domain.ErrUnknownDishType) {
			t.Fatalf("expected ErrUnknownDishType, got %v", err)
		}
		if _, _, err := calc.Amount("Paella Negra", "rice", 6); !errors.Is(err, domain.ErrUnknownDishType) {
			t.Fatalf("expected ErrUnknownDishType, got %v", err)
		}
		// A known dish without the ingredient is still just not applicable.
		if _, ok, err := calc.Amount(proportion.Valenciana, "saffron-extract", 6); err != nil || ok {
			t.Fatalf("expected not applicable, got ok=%v err=%v", ok, err)
		}
	})
}

func TestAll(t *testing.T) {
	calc := newCalculator(t)

	all, err := calc.All(proportion.Valenciana, 6)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != len(proportion.Default().Ingredients(proportion.Valenciana)) {
		t.Fatalf("expected every Valenciana ingredient, got %d", len(all))
	}
	for name, q := range all {
		single, ok, err := calc.Amount(proportion.Valenciana, name, 6)
		if err != nil || !ok {
			t.Fatalf("%s: %v %v", name, ok, err)
		}
		if single != q {
			t.Fatalf("%s: All=%+v Amount=%+v", name, q, single)
		}
	}
}

func TestRoundingBound(t *testing.T) {
	calc := newCalculator(t)
	tbl := proportion.Default()

	for _, dish := range tbl.DishTypes() {
		for _, name := range tbl.Ingredients(dish) {
			rule, _ := tbl.Rule(dish, name)
			tolerance := 0.5*math.Pow10(-rule.Precision) + 1e-9
			for s := 0.5; s <= 60; s += 0.5 {
				q, _, err := calc.Amount(dish, name, s)
				if err != nil {
					t.Fatalf("%s/%s x%g: %v", dish, name, s, err)
				}
				if diff := math.Abs(q.Amount - rule.Ratio*s); diff > tolerance {
					t.Fatalf("%s/%s x%g: |%v - %v| = %v > %v", dish, name, s, q.Amount, rule.Ratio*s, diff, tolerance)
				}
			}
		}
	}
}

func TestLinearity(t *testing.T) {
	calc := newCalculator(t)
	tbl := proportion.Default()

	pairs := [][2]float64{{1, 1}, {6, 6}, {2.5, 3.5}, {10, 17}, {0.5, 40}}
	for _, dish := range tbl.DishTypes() {
		for _, name := range tbl.Ingredients(dish) {
			rule, _ := tbl.Rule(dish, name)
			tolerance := 1.5*math.Pow10(-rule.Precision) + 1e-9
			for _, p := range pairs {
				a, _, _ := calc.Amount(dish, name, p[0])
				b, _, _ := calc.Amount(dish, name, p[1])
				sum, _, _ := calc.Amount(dish, name, p[0]+p[1])
				if diff := math.Abs(sum.Amount - (a.Amount + b.Amount)); diff > tolerance {
					t.Fatalf("%s/%s %v: off by %v", dish, name, p, diff)
				}
			}
		}
	}
}
