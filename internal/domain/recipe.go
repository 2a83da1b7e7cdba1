// Package domain defines the core types and interfaces for the catering
// calculator. All other packages depend on domain; domain depends on nothing.
package domain

// Recipe is a user-defined recipe authored for BaseServings servings.
type Recipe struct {
	ID                 string             `yaml:"id"`
	Name               string             `yaml:"name" validate:"required"`
	Description        string             `yaml:"description,omitempty"`
	CookingTimeMinutes int                `yaml:"cooking_time_minutes,omitempty" validate:"gte=0"`
	BaseServings       int                `yaml:"base_servings" validate:"gt=0"`
	Ingredients        []RecipeIngredient `yaml:"ingredients" validate:"unique=Name,dive"`
}

// RecipeSummary is a lightweight view of a recipe for listing.
type RecipeSummary struct {
	ID           string
	Name         string
	Description  string
	BaseServings int
}

// RecipeIngredient is one ingredient of a recipe and the quantity needed at
// the recipe's base servings.
type RecipeIngredient struct {
	Name     string  `yaml:"name" validate:"required"`
	Unit     Unit    `yaml:"unit" validate:"unit"`
	Quantity float64 `yaml:"quantity" validate:"gt=0"`
}
