package domain

// ProportionRule says how much of one ingredient a single serving of a dish
// type needs. Ratio is pre-normalized from an authored "X for N servings"
// fact; the rule is never mutated after construction.
type ProportionRule struct {
	ReferenceServings int     `validate:"gt=0"`
	Ratio             float64 `validate:"gt=0"`
	Unit              Unit    `validate:"unit"`
	Precision         int     `validate:"gte=0,lte=6"`
}

// DefaultPrecision is the number of decimals a rule rounds to when the
// author does not say otherwise.
const DefaultPrecision = 2

// Quantity is a computed amount tagged with its unit.
type Quantity struct {
	Amount float64
	Unit   Unit
}
