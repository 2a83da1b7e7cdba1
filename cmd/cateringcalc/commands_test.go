package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/hammamikhairi/cateringcalc/internal/calculator"
	"github.com/hammamikhairi/cateringcalc/internal/domain"
	"github.com/hammamikhairi/cateringcalc/internal/engine"
	"github.com/hammamikhairi/cateringcalc/internal/logger"
	"github.com/hammamikhairi/cateringcalc/internal/order"
	"github.com/hammamikhairi/cateringcalc/internal/proportion"
	"github.com/hammamikhairi/cateringcalc/internal/recipe"
	"github.com/hammamikhairi/cateringcalc/internal/storage"
)

func setupApp(t *testing.T) (*app, *bytes.Buffer, *storage.MemoryStore) {
	t.Helper()
	log := logger.New(logger.LevelOff, nil)
	table := proportion.Default()
	store := storage.NewMemoryStore(log)
	out := &bytes.Buffer{}
	a := &app{
		eng:    engine.New(calculator.New(table, log), recipe.NewMemorySource(log), store, log),
		table:  table,
		parser: order.NewParser(table, log),
		out:    out,
		log:    log,
	}
	return a, out, store
}

func TestCommands(t *testing.T) {
	tests := []struct {
		name string
		cmd  string
		args []string
		want []string
	}{
		{"dishes", "dishes", nil, []string{"Valenciana", "Seafood", "rice", "500g for 6"}},
		{"dish by exact name", "dish", []string{"Valenciana", "6"}, []string{"Valenciana x6", "500g", "1.25L"}},
		{"dish case insensitive", "dish", []string{"valenciana", "12"}, []string{"1kg", "2.5L"}},
		{"order from items", "order", []string{"valenciana x6", "seafood x6"}, []string{"Valenciana x6", "Seafood x6", "Total", "1kg", "2.5L"}},
		{"recipes", "recipes", nil, []string{"sangria", "allioli"}},
		{"recipe search", "recipes", []string{"wine"}, []string{"sangria"}},
		{"recipe at base", "recipe", []string{"sangria"}, []string{"Sangria x10", "1.50L"}},
		{"recipe scaled", "recipe", []string{"sangria", "25"}, []string{"Sangria x25", "3.75L"}},
		{"no orders", "orders", nil, []string{"no orders"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, out, _ := setupApp(t)
			if err := a.run(context.Background(), tt.cmd, tt.args); err != nil {
				t.Fatalf("run: %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(out.String(), want) {
					t.Errorf("output missing %q:\n%s", want, out.String())
				}
			}
		})
	}
}

func TestStoredOrder(t *testing.T) {
	a, out, store := setupApp(t)
	ctx := context.Background()

	if err := store.Save(ctx, &domain.Order{
		ID:           "o-7",
		CustomerName: "Marta",
		Date:         "2024-07-20",
		Items:        []domain.LineItem{{DishType: proportion.Valenciana, Servings: 12}},
	}); err != nil {
		t.Fatalf("save: %v", err)
	}

	if err := a.run(ctx, "order", []string{"-id", "o-7"}); err != nil {
		t.Fatalf("order -id: %v", err)
	}
	for _, want := range []string{"Marta", "2024-07-20", "Total", "1kg"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("order output missing %q:\n%s", want, out.String())
		}
	}

	out.Reset()
	if err := a.run(ctx, "orders", nil); err != nil {
		t.Fatalf("orders: %v", err)
	}
	if !strings.Contains(out.String(), "o-7") || !strings.Contains(out.String(), "Valenciana x12") {
		t.Errorf("orders output:\n%s", out.String())
	}
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		cmd  string
		args []string
		want error
	}{
		{"unknown command", "bake", nil, errUsage},
		{"dish missing servings", "dish", []string{"Mixed"}, errUsage},
		{"dish bad servings", "dish", []string{"Mixed", "lots"}, domain.ErrInvalidServings},
		{"dish zero servings", "dish", []string{"Mixed", "0"}, domain.ErrInvalidServings},
		{"order without items", "order", nil, errUsage},
		{"order bad flag", "order", []string{"-nope"}, errUsage},
		{"order unknown id", "order", []string{"-id", "missing"}, domain.ErrNotFound},
		{"order bad item", "order", []string{"paella"}, domain.ErrInvalidOrder},
		{"recipe missing id", "recipe", nil, errUsage},
		{"recipe unknown id", "recipe", []string{"gazpacho"}, domain.ErrNotFound},
		{"recipe bad servings", "recipe", []string{"sangria", "-3"}, domain.ErrInvalidRecipe},
		{"recipe zero servings", "recipe", []string{"sangria", "0"}, domain.ErrInvalidRecipe},
		{"recipe extra args", "recipe", []string{"sangria", "4", "6"}, errUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, _, _ := setupApp(t)
			err := a.run(context.Background(), tt.cmd, tt.args)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParseServings(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"6", 6},
		{" 12 ", 12},
		{"2,5", 2.5},
		{"7.5", 7.5},
	}
	for _, tt := range tests {
		got, err := parseServings(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("parseServings(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
}
