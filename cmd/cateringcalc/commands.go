package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hammamikhairi/cateringcalc/internal/display"
	"github.com/hammamikhairi/cateringcalc/internal/domain"
	"github.com/hammamikhairi/cateringcalc/internal/engine"
	"github.com/hammamikhairi/cateringcalc/internal/logger"
	"github.com/hammamikhairi/cateringcalc/internal/order"
	"github.com/hammamikhairi/cateringcalc/internal/proportion"
)

var errUsage = errors.New("usage")

// app holds the wired dependencies the subcommands share.
type app struct {
	eng    *engine.Engine
	table  *proportion.Table
	parser *order.Parser
	out    io.Writer
	log    *logger.Logger
}

func (a *app) run(ctx context.Context, cmd string, args []string) error {
	a.log.Debug("command %s %q", cmd, args)

	switch cmd {
	case "dishes":
		fmt.Fprint(a.out, display.RenderDishTypes(a.eng.ReferenceSheets()))
		return nil
	case "dish":
		return a.dish(args)
	case "order":
		return a.order(ctx, args)
	case "orders":
		orders, err := a.eng.ListOrders(ctx)
		if err != nil {
			return err
		}
		fmt.Fprint(a.out, display.RenderOrderList(orders))
		return nil
	case "recipes":
		return a.recipes(ctx, args)
	case "recipe":
		return a.recipe(ctx, args)
	case "tui":
		return a.tui(ctx)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}

func (a *app) dish(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: dish <type> <servings>", errUsage)
	}
	dish := args[0]
	if resolved, ok := a.table.Resolve(dish); ok {
		dish = resolved
	}
	servings, err := parseServings(args[1])
	if err != nil {
		return err
	}

	sheet, err := a.eng.DishSheet(dish, servings)
	if err != nil {
		return err
	}
	fmt.Fprint(a.out, display.RenderSheet(sheet))
	return nil
}

func (a *app) order(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("order", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	id := fs.String("id", "", "stored order ID")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	var (
		sheet *engine.OrderSheet
		err   error
	)
	switch {
	case *id != "":
		sheet, err = a.eng.OrderSheet(ctx, *id)
	case fs.NArg() > 0:
		var items []domain.LineItem
		if items, err = a.parser.ParseAll(fs.Args()); err != nil {
			return err
		}
		sheet, err = a.eng.ItemsSheet(items)
	default:
		return fmt.Errorf("%w: order <item>... or order -id <order-id>", errUsage)
	}
	if err != nil {
		return err
	}
	fmt.Fprint(a.out, display.RenderOrder(sheet))
	return nil
}

func (a *app) recipes(ctx context.Context, args []string) error {
	var (
		list []domain.RecipeSummary
		err  error
	)
	if query := strings.Join(args, " "); query != "" {
		list, err = a.eng.SearchRecipes(ctx, query)
	} else {
		list, err = a.eng.ListRecipes(ctx)
	}
	if err != nil {
		return err
	}
	fmt.Fprint(a.out, display.RenderRecipeList(list))
	return nil
}

func (a *app) recipe(ctx context.Context, args []string) error {
	var (
		sheet *engine.RecipeSheet
		err   error
	)
	switch len(args) {
	case 1:
		sheet, err = a.eng.BaseRecipeSheet(ctx, args[0])
	case 2:
		var servings float64
		if servings, err = parseServings(args[1]); err != nil {
			return err
		}
		sheet, err = a.eng.RecipeSheet(ctx, args[0], servings)
	default:
		return fmt.Errorf("%w: recipe <id> [servings]", errUsage)
	}
	if err != nil {
		return err
	}
	fmt.Fprint(a.out, display.RenderRecipe(sheet))
	return nil
}

func (a *app) tui(ctx context.Context) error {
	summaries, err := a.eng.ListRecipes(ctx)
	if err != nil {
		return err
	}
	recipes := make([]*domain.Recipe, 0, len(summaries))
	for _, s := range summaries {
		r, err := a.eng.GetRecipe(ctx, s.ID)
		if err != nil {
			return err
		}
		recipes = append(recipes, r)
	}
	return display.RunCalculator(recipes, a.eng.ScaleRecipe)
}

func parseServings(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", "."), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", domain.ErrInvalidServings, s)
	}
	return v, nil
}
