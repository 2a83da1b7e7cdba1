package proportion

import (
	"sync"

	"github.com/hammamikhairi/cateringcalc/internal/domain"
)

// Built-in dish types.
const (
	Valenciana = "Valenciana"
	Seafood    = "Seafood"
	Vegetarian = "Vegetarian"
	Mixed      = "Mixed"
)

const referenceServings = 6

const (
	kg = domain.UnitKilogram
	g  = domain.UnitGram
	l  = domain.UnitLiter
)

// defaultRules is the house paella sheet. Every amount is for six servings.
var defaultRules = map[string]Rules{
	Valenciana: {
		"rice":           Per(0.5, referenceServings, kg),
		"water":          Per(1.25, referenceServings, l),
		"green beans":    Per(1, referenceServings, kg),
		"garrofón beans": Per(0.3, referenceServings, kg),
		"chicken":        Per(1, referenceServings, kg),
		"rabbit":         Per(1, referenceServings, kg),
		"olive oil":      WithPrecision(Per(0.1, referenceServings, l), 3),
		"saffron":        Per(0.3, referenceServings, g),
	},
	Seafood: {
		"rice":    Per(0.5, referenceServings, kg),
		"water":   Per(1.25, referenceServings, l),
		"prawns":  Per(0.5, referenceServings, kg),
		"mussels": Per(1, referenceServings, kg),
		"squid":   Per(0.5, referenceServings, kg),
	},
	Vegetarian: {
		"rice":        Per(0.5, referenceServings, kg),
		"water":       Per(1.25, referenceServings, l),
		"green beans": Per(1, referenceServings, kg),
		"artichokes":  Per(1, referenceServings, kg),
		"mushrooms":   Per(1, referenceServings, kg),
	},
	Mixed: {
		"rice":    Per(0.5, referenceServings, kg),
		"water":   Per(1.25, referenceServings, l),
		"chicken": Per(0.5, referenceServings, kg),
		"prawns":  Per(0.25, referenceServings, kg),
		"mussels": Per(0.5, referenceServings, kg),
	},
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the process-wide built-in table.
func Default() *Table {
	defaultOnce.Do(func() {
		defaultTable = MustTable(defaultRules)
	})
	return defaultTable
}
