// Package display renders ingredient sheets for the terminal with lipgloss
// and hosts the interactive recipe calculator built on Bubble Tea.
package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hammamikhairi/cateringcalc/internal/domain"
	"github.com/hammamikhairi/cateringcalc/internal/engine"
)

// ── Styles ───────────────────────────────────────────────────────

var (
	// BannerStyle: muted slate for the startup banner.
	BannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8"))

	// Headers: soft mint, like step headers in a recipe card.
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bbf7d0")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a1a1aa"))

	// Amounts: soft sky blue.
	amountStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bae6fd"))

	primaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d4d4d8"))

	// Secondary text: dimmed zinc for hints and metadata.
	secondaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a"))

	// Urgent: soft coral for errors.
	urgentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fca5a5"))

	sepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#52525b"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fde68a"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8"))
)

// ── Sheets ───────────────────────────────────────────────────────

// RenderSheet renders one ingredient sheet as an aligned two-column list.
func RenderSheet(s *engine.Sheet) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("  " + s.Title))
	b.WriteByte('\n')

	if len(s.Lines) == 0 {
		b.WriteString(secondaryStyle.Render("    no ingredients"))
		b.WriteByte('\n')
		return b.String()
	}

	names := make([]string, len(s.Lines))
	for i, l := range s.Lines {
		names[i] = l.Ingredient
	}
	col := labelStyle.Width(columnWidth(names) + 2)
	for _, l := range s.Lines {
		b.WriteString("    ")
		b.WriteString(col.Render(l.Ingredient))
		b.WriteString(amountStyle.Render(l.Display))
		b.WriteByte('\n')
	}
	return b.String()
}

// RenderOrder renders an order's item sheets followed by the total.
func RenderOrder(o *engine.OrderSheet) string {
	var b strings.Builder
	if o.Order != nil && o.Order.CustomerName != "" {
		b.WriteString(primaryStyle.Render(fmt.Sprintf("  %s", o.Order.CustomerName)))
		if o.Order.Date != "" {
			b.WriteString(secondaryStyle.Render("  " + o.Order.Date))
		}
		if o.Order.Status != "" {
			b.WriteString(secondaryStyle.Render("  [" + string(o.Order.Status) + "]"))
		}
		b.WriteString("\n\n")
	}
	if len(o.Items) > 1 {
		for _, it := range o.Items {
			b.WriteString(RenderSheet(it))
			b.WriteByte('\n')
		}
		b.WriteString(sepStyle.Render("  " + strings.Repeat("─", 32)))
		b.WriteByte('\n')
	}
	b.WriteString(RenderSheet(o.Total))
	return b.String()
}

// RenderRecipe renders a scaled recipe: ingredient, scaled amount and the
// amount at the recipe's base servings.
func RenderRecipe(s *engine.RecipeSheet) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("  %s x%g", s.Recipe.Name, s.Servings)))
	b.WriteString(secondaryStyle.Render(fmt.Sprintf("  (base %d, factor %.4g)", s.Recipe.BaseServings, s.ScalingFactor)))
	b.WriteByte('\n')

	names := make([]string, len(s.Lines))
	scaled := make([]string, len(s.Lines))
	for i, l := range s.Lines {
		names[i] = l.Ingredient
		scaled[i] = l.ScaledDisplay
	}
	nameCol := labelStyle.Width(columnWidth(names) + 2)
	amountCol := amountStyle.Width(columnWidth(scaled) + 2)
	for _, l := range s.Lines {
		b.WriteString("    ")
		b.WriteString(nameCol.Render(l.Ingredient))
		b.WriteString(amountCol.Render(l.ScaledDisplay))
		b.WriteString(secondaryStyle.Render("originally " + l.OriginalDisplay))
		b.WriteByte('\n')
	}
	return b.String()
}

// ── Listings ─────────────────────────────────────────────────────

// RenderDishTypes renders the reference sheet of every dish type.
func RenderDishTypes(sheets []*engine.Sheet) string {
	var b strings.Builder
	for i, s := range sheets {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(RenderSheet(s))
	}
	return b.String()
}

// RenderRecipeList lists recipe summaries.
func RenderRecipeList(recipes []domain.RecipeSummary) string {
	if len(recipes) == 0 {
		return secondaryStyle.Render("  no recipes") + "\n"
	}
	ids := make([]string, len(recipes))
	for i, r := range recipes {
		ids[i] = r.ID
	}
	col := labelStyle.Width(columnWidth(ids) + 2)

	var b strings.Builder
	for _, r := range recipes {
		b.WriteString("  ")
		b.WriteString(col.Render(r.ID))
		b.WriteString(primaryStyle.Render(fmt.Sprintf("%s (%d servings)", r.Name, r.BaseServings)))
		b.WriteByte('\n')
		if r.Description != "" {
			b.WriteString(secondaryStyle.Render("    " + r.Description))
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// RenderOrderList lists stored orders.
func RenderOrderList(orders []*domain.Order) string {
	if len(orders) == 0 {
		return secondaryStyle.Render("  no orders") + "\n"
	}
	var b strings.Builder
	for _, o := range orders {
		items := make([]string, len(o.Items))
		for i, it := range o.Items {
			items[i] = fmt.Sprintf("%s x%g", it.DishType, it.Servings)
		}
		b.WriteString("  ")
		b.WriteString(labelStyle.Render(o.ID))
		b.WriteString("  ")
		b.WriteString(primaryStyle.Render(o.CustomerName))
		b.WriteString(secondaryStyle.Render(fmt.Sprintf("  %s  [%s]", o.Date, o.Status)))
		b.WriteByte('\n')
		b.WriteString(secondaryStyle.Render("    " + strings.Join(items, ", ")))
		b.WriteByte('\n')
	}
	return b.String()
}

// RenderError renders an error line.
func RenderError(err error) string {
	return urgentStyle.Render("  error: " + err.Error())
}

// ── Helpers ──────────────────────────────────────────────────────

func columnWidth(cells []string) int {
	w := 0
	for _, c := range cells {
		if cw := lipgloss.Width(c); cw > w {
			w = cw
		}
	}
	return w
}
