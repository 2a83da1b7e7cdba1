// Package order turns command-line item specs such as "Valenciana x6" or
// "6 seafood" into order line items.
package order

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/hammamikhairi/cateringcalc/internal/domain"
	"github.com/hammamikhairi/cateringcalc/internal/logger"
)

// DishResolver maps user-typed dish names onto canonical dish types.
type DishResolver interface {
	Resolve(name string) (string, bool)
}

// Parser matches item specs against a fixed list of patterns.
type Parser struct {
	log      *logger.Logger
	dishes   DishResolver
	patterns []patternRule
}

type patternRule struct {
	regex    *regexp.Regexp
	dish     int
	servings int
}

const number = `(\d+(?:[.,]\d+)?)`

// NewParser creates a line item parser. Dish names are canonicalized with
// dishes; names it does not know are passed through unchanged so the
// calculator decides how to treat them.
func NewParser(dishes DishResolver, log *logger.Logger) *Parser {
	p := &Parser{log: log, dishes: dishes}
	p.patterns = []patternRule{
		// "Valenciana x6", "mixed:12", "seafood=4", "Vegetarian * 8"
		{regexp.MustCompile(`(?i)^(.+?)\s*(?:x|×|\*|:|=)\s*` + number + `$`), 1, 2},
		// "seafood for 6", "mixed for 10 guests"
		{regexp.MustCompile(`(?i)^(.+?)\s+for\s+` + number + `(?:\s+(?:servings?|people|guests|pax))?$`), 1, 2},
		// "6 seafood", "6x Valenciana", "12 × mixed"
		{regexp.MustCompile(`(?i)^` + number + `\s*(?:x|×|\*)?\s+(.+)$`), 2, 1},
	}
	return p
}

// Parse converts one item such as "Valenciana x6" into a line item.
func (p *Parser) Parse(input string) (domain.LineItem, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return domain.LineItem{}, fmt.Errorf("%w: empty item", domain.ErrInvalidOrder)
	}

	p.log.Debug("parsing item: %q", trimmed)
	for _, rule := range p.patterns {
		m := rule.regex.FindStringSubmatch(trimmed)
		if m == nil {
			continue
		}
		servings, err := strconv.ParseFloat(strings.Replace(m[rule.servings], ",", ".", 1), 64)
		if err != nil || servings <= 0 {
			return domain.LineItem{}, fmt.Errorf("%w: %q in %q", domain.ErrInvalidServings, m[rule.servings], trimmed)
		}
		return domain.LineItem{DishType: p.resolve(m[rule.dish]), Servings: servings}, nil
	}

	return domain.LineItem{}, fmt.Errorf("%w: cannot read %q, expected e.g. \"Valenciana x6\"", domain.ErrInvalidOrder, trimmed)
}

// ParseAll parses every item, stopping at the first bad one.
func (p *Parser) ParseAll(inputs []string) ([]domain.LineItem, error) {
	items := make([]domain.LineItem, 0, len(inputs))
	for _, in := range inputs {
		it, err := p.Parse(in)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}

func (p *Parser) resolve(name string) string {
	name = strings.TrimSpace(name)
	if p.dishes == nil {
		return name
	}
	if dish, ok := p.dishes.Resolve(name); ok {
		return dish
	}
	p.log.Warn("unknown dish type %q", name)
	return name
}
