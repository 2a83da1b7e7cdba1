package proportion

import (
	"fmt"

	"github.com/hammamikhairi/cateringcalc/internal/domain"
)

// Per builds a rule from an authored "amount of unit for servings" fact.
// The per-serving ratio is derived here, once, at table construction.
func Per(amount float64, servings int, unit domain.Unit) domain.ProportionRule {
	r := domain.ProportionRule{
		ReferenceServings: servings,
		Unit:              unit,
		Precision:         domain.DefaultPrecision,
	}
	if servings > 0 {
		r.Ratio = amount / float64(servings)
	}
	return r
}

// WithPrecision returns a copy of r rounding to digits decimals.
func WithPrecision(r domain.ProportionRule, digits int) domain.ProportionRule {
	r.Precision = digits
	return r
}

// ReferenceAmount is the amount the rule was authored for, i.e. the ratio
// scaled back up to its reference servings.
func ReferenceAmount(r domain.ProportionRule) float64 {
	return r.Ratio * float64(r.ReferenceServings)
}

func describe(dish, ingredient string, r domain.ProportionRule) string {
	return fmt.Sprintf("%s/%s (%.5g %s per serving)", dish, ingredient, r.Ratio, r.Unit)
}
