package domain

import "strings"

// Unit is a measurement unit. The set is closed; see Units.
type Unit string

const (
	UnitKilogram   Unit = "kg"
	UnitGram       Unit = "g"
	UnitLiter      Unit = "l"
	UnitMilliliter Unit = "ml"
	UnitCount      Unit = "units"
)

// PromotionFactor is the number of small units in one large unit of the
// same family (g per kg, ml per l).
const PromotionFactor = 1000

// Units lists every valid unit.
var Units = []Unit{UnitKilogram, UnitGram, UnitLiter, UnitMilliliter, UnitCount}

// Family groups units that measure the same dimension. Quantities are never
// converted across families.
type Family int

const (
	FamilyUnknown Family = iota
	FamilyMass
	FamilyVolume
	FamilyCount
)

// String returns a human-readable family name.
func (f Family) String() string {
	switch f {
	case FamilyMass:
		return "mass"
	case FamilyVolume:
		return "volume"
	case FamilyCount:
		return "count"
	default:
		return "unknown"
	}
}

// Valid reports whether u is one of the known units.
func (u Unit) Valid() bool {
	return u.Family() != FamilyUnknown
}

// Family returns the dimension u measures.
func (u Unit) Family() Family {
	switch u {
	case UnitKilogram, UnitGram:
		return FamilyMass
	case UnitLiter, UnitMilliliter:
		return FamilyVolume
	case UnitCount:
		return FamilyCount
	default:
		return FamilyUnknown
	}
}

// IsLarge reports whether u is the large unit of a mass or volume family.
func (u Unit) IsLarge() bool {
	return u == UnitKilogram || u == UnitLiter
}

// Small returns the small counterpart of a large unit (kg → g, l → ml).
// Any other unit is returned unchanged.
func (u Unit) Small() Unit {
	switch u {
	case UnitKilogram:
		return UnitGram
	case UnitLiter:
		return UnitMilliliter
	default:
		return u
	}
}

// Large returns the large counterpart of a small unit (g → kg, ml → l).
// Any other unit is returned unchanged.
func (u Unit) Large() Unit {
	switch u {
	case UnitGram:
		return UnitKilogram
	case UnitMilliliter:
		return UnitLiter
	default:
		return u
	}
}

// Suffix is the label printed after an amount. Liters print as "L" so they
// are not mistaken for the digit one.
func (u Unit) Suffix() string {
	if u == UnitLiter {
		return "L"
	}
	return string(u)
}

// ParseUnit maps user-authored unit labels onto the closed unit set.
func ParseUnit(s string) (Unit, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "kg", "kilo", "kilos", "kilogram", "kilograms":
		return UnitKilogram, true
	case "g", "gram", "grams":
		return UnitGram, true
	case "l", "liter", "liters", "litre", "litres":
		return UnitLiter, true
	case "ml", "milliliter", "milliliters", "millilitre", "millilitres":
		return UnitMilliliter, true
	case "units", "unit", "pcs", "pieces":
		return UnitCount, true
	default:
		return "", false
	}
}

// UnmarshalText accepts any label ParseUnit understands, so YAML files may
// say "L" or "grams".
func (u *Unit) UnmarshalText(text []byte) error {
	parsed, ok := ParseUnit(string(text))
	if !ok {
		// Keep the raw value; validation reports it with the field name.
		*u = Unit(text)
		return nil
	}
	*u = parsed
	return nil
}
