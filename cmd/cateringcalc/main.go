// Command cateringcalc computes ingredient quantities for catering orders and recipes.
//
// Usage:
//
//	cateringcalc [flags] dishes
//	cateringcalc [flags] dish <type> <servings>
//	cateringcalc [flags] order <item>...     e.g. "valenciana x6" "6 seafood"
//	cateringcalc [flags] order -id <order-id>
//	cateringcalc [flags] orders
//	cateringcalc [flags] recipes [query]
//	cateringcalc [flags] recipe <id> [servings]
//	cateringcalc [flags] tui
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hammamikhairi/cateringcalc/internal/calculator"
	"github.com/hammamikhairi/cateringcalc/internal/config"
	"github.com/hammamikhairi/cateringcalc/internal/display"
	"github.com/hammamikhairi/cateringcalc/internal/engine"
	"github.com/hammamikhairi/cateringcalc/internal/logger"
	"github.com/hammamikhairi/cateringcalc/internal/order"
	"github.com/hammamikhairi/cateringcalc/internal/proportion"
	"github.com/hammamikhairi/cateringcalc/internal/recipe"
	"github.com/hammamikhairi/cateringcalc/internal/storage"
)

func main() {
	config.LoadDotenv()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}

	verbose := flag.Bool("verbose", false, "enable verbose/debug logging")
	quiet := flag.Bool("quiet", false, "disable all logging")
	logFile := flag.String("log-file", cfg.LogFile, "file to write logs to (use \"stderr\" to log to console)")
	strict := flag.Bool("strict", cfg.StrictDishTypes, "fail on unknown dish types instead of returning no ingredients")
	proportions := flag.String("proportions", cfg.ProportionsFile, "YAML proportion table (default: built-in table)")
	recipesFile := flag.String("recipes", cfg.RecipesFile, "YAML recipe catalog merged into the built-in recipes")
	ordersFile := flag.String("orders", cfg.OrdersFile, "YAML orders file")
	noBanner := flag.Bool("no-banner", false, "do not print the banner")
	flag.Usage = usage
	flag.Parse()

	// Configure logger.
	logLevel := cfg.LogLevel
	if *verbose {
		logLevel = logger.LevelVerbose
	}
	if *quiet {
		logLevel = logger.LevelOff
	}

	// Direct logs to a file by default so the sheets stay clean.
	logOut, closeLog := openLogOutput(*logFile, os.Stderr)
	defer closeLog()

	log := logger.New(logLevel, logOut)
	defer log.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Wire dependencies.
	table := proportion.Default()
	if *proportions != "" {
		table, err = proportion.Load(*proportions)
		if err != nil {
			fail(err)
		}
		log.Info("proportion table loaded from %s (%d dish types)", *proportions, len(table.DishTypes()))
	}
	log.Debug("proportion table:\n%s", table)

	recipes := recipe.NewMemorySource(log)
	if *recipesFile != "" {
		if _, err := recipes.LoadFile(ctx, *recipesFile); err != nil {
			fail(err)
		}
	}

	store := storage.NewMemoryStore(log)
	if *ordersFile != "" {
		if _, err := store.LoadFile(ctx, *ordersFile); err != nil {
			fail(err)
		}
	}

	calc := calculator.New(table, log, calculator.WithStrictDishTypes(*strict))
	a := &app{
		eng:    engine.New(calc, recipes, store, log),
		table:  table,
		parser: order.NewParser(table, log),
		out:    os.Stdout,
		log:    log,
	}

	args := flag.Args()
	if len(args) == 0 {
		if !*noBanner {
			fmt.Print(display.RenderBanner())
		}
		usage()
		os.Exit(2)
	}

	if err := a.run(ctx, args[0], args[1:]); err != nil {
		fail(err)
	}
}

// openLogOutput opens the log destination. Any failure falls back to
// stderr with one warning written to warn.
func openLogOutput(path string, warn io.Writer) (io.Writer, func()) {
	if path == "" || path == "stderr" {
		return os.Stderr, func() {}
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fmt.Fprintf(warn, "warning: could not create log directory %s: %v (falling back to stderr)\n", dir, err)
			return os.Stderr, func() {}
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(warn, "warning: could not open log file %s: %v (falling back to stderr)\n", path, err)
		return os.Stderr, func() {}
	}
	return f, func() { f.Close() }
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, display.RenderError(err))
	os.Exit(1)
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), `usage: cateringcalc [flags] <command> [args]

commands:
  dishes                      list dish types and their ingredients
  dish <type> <servings>      ingredients for one dish type
  order <item>...             combined ingredients for line items ("valenciana x6")
  order -id <order-id>        combined ingredients for a stored order
  orders                      list stored orders
  recipes [query]             list or search recipes
  recipe <id> [servings]      scale a recipe
  tui                         interactive recipe calculator

flags:
`)
	flag.PrintDefaults()
}
