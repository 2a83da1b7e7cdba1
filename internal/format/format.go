// Package format renders quantities for display.
//
// Two policies live here and must stay separate. Amount takes quantities
// whose rules are authored in large units (kg, l) and demotes small values
// to g or ml. Quantity takes recipe quantities authored in small units (g,
// ml) and promotes large values to kg or L. Merging them would change the
// text already shown for existing orders and recipes.
package format

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/hammamikhairi/cateringcalc/internal/domain"
)

// Amount formats a fixed-menu quantity. Below one kg or one l the amount is
// shown in g or ml with no decimals; otherwise the amount is printed as
// computed, since the proportion rule already rounded it.
func Amount(q domain.Quantity) string {
	if !finite(q.Amount) {
		return plain(q.Amount) + q.Unit.Suffix()
	}
	if q.Unit.IsLarge() && q.Amount < 1 {
		small := decimal.NewFromFloat(q.Amount).Shift(3)
		return small.StringFixed(0) + q.Unit.Small().Suffix()
	}
	return plain(q.Amount) + q.Unit.Suffix()
}

// Quantity formats a recipe quantity. Grams and milliliters from 1000 up
// are shown in kg or L with two decimals. Otherwise amounts below one get
// two decimals, whole amounts none, and everything else one.
func Quantity(amount float64, unit string) string {
	if !finite(amount) {
		return plain(amount) + unit
	}
	switch {
	case unit == string(domain.UnitGram) && amount >= domain.PromotionFactor:
		return promoted(amount) + domain.UnitKilogram.Suffix()
	case unit == string(domain.UnitMilliliter) && amount >= domain.PromotionFactor:
		return promoted(amount) + domain.UnitLiter.Suffix()
	case amount < 1:
		return fixed(amount, 2) + unit
	case amount == math.Trunc(amount):
		return plain(amount) + unit
	default:
		return fixed(amount, 1) + unit
	}
}

func promoted(amount float64) string {
	return decimal.NewFromFloat(amount).Shift(-3).StringFixed(2)
}

func fixed(v float64, places int32) string {
	return decimal.NewFromFloat(v).StringFixed(places)
}

// plain prints the shortest decimal that reads back as v.
func plain(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
