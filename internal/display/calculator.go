package display

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hammamikhairi/cateringcalc/internal/domain"
	"github.com/hammamikhairi/cateringcalc/internal/engine"
)

// RecipeScaler scales a recipe to a number of servings.
type RecipeScaler func(r *domain.Recipe, servings float64) (*engine.RecipeSheet, error)

var errNotANumber = errors.New("servings must be a number")

// ── Bubble Tea model ─────────────────────────────────────────────

// calcModel is the interactive recipe calculator: pick a recipe with the
// arrow keys, type a serving count, the scaled sheet updates on every key.
type calcModel struct {
	recipes  []*domain.Recipe
	selected int
	input    textinput.Model
	scale    RecipeScaler
	sheet    *engine.RecipeSheet
	err      error
	width    int
}

func newCalcModel(recipes []*domain.Recipe, scale RecipeScaler) calcModel {
	ti := textinput.New()
	ti.Placeholder = "servings"
	ti.Prompt = "  servings › "
	ti.PromptStyle = promptStyle
	ti.CharLimit = 8
	ti.Width = 12
	ti.Focus()

	m := calcModel{recipes: recipes, input: ti, scale: scale, width: 80}
	m.resetServings()
	m.recompute()
	return m
}

func (m calcModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m calcModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyUp, tea.KeyShiftTab:
			m.move(-1)
			return m, nil
		case tea.KeyDown, tea.KeyTab:
			m.move(1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.recompute()
	return m, cmd
}

func (m calcModel) View() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("  recipe calculator"))
	b.WriteString("\n\n")

	if len(m.recipes) == 0 {
		b.WriteString(secondaryStyle.Render("  no recipes loaded"))
		b.WriteString("\n")
		return b.String()
	}

	for i, r := range m.recipes {
		line := fmt.Sprintf("%s (%d servings)", r.Name, r.BaseServings)
		if i == m.selected {
			b.WriteString(selectedStyle.Render("  › " + line))
		} else {
			b.WriteString(secondaryStyle.Render("    " + line))
		}
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(RenderError(m.err))
		b.WriteByte('\n')
	case m.sheet != nil:
		b.WriteString(RenderRecipe(m.sheet))
	}

	b.WriteByte('\n')
	b.WriteString(sepStyle.Render("  " + strings.Repeat("─", max(0, min(m.width-4, 48)))))
	b.WriteByte('\n')
	b.WriteString(secondaryStyle.Render("  ↑/↓ recipe · type servings · esc quit"))
	b.WriteByte('\n')
	return b.String()
}

func (m *calcModel) move(delta int) {
	if len(m.recipes) == 0 {
		return
	}
	m.selected = (m.selected + delta + len(m.recipes)) % len(m.recipes)
	m.resetServings()
	m.recompute()
}

func (m *calcModel) resetServings() {
	if r := m.current(); r != nil {
		m.input.SetValue(strconv.Itoa(r.BaseServings))
	}
}

func (m *calcModel) current() *domain.Recipe {
	if m.selected < 0 || m.selected >= len(m.recipes) {
		return nil
	}
	return m.recipes[m.selected]
}

// recompute rescales the selected recipe. An empty input means the
// recipe's base servings.
func (m *calcModel) recompute() {
	r := m.current()
	if r == nil {
		m.sheet, m.err = nil, nil
		return
	}

	servings := float64(r.BaseServings)
	if raw := strings.TrimSpace(m.input.Value()); raw != "" {
		v, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
		if err != nil {
			m.sheet, m.err = nil, errNotANumber
			return
		}
		servings = v
	}
	m.sheet, m.err = m.scale(r, servings)
}

// RunCalculator starts the interactive recipe calculator and blocks until
// the user quits.
func RunCalculator(recipes []*domain.Recipe, scale RecipeScaler) error {
	p := tea.NewProgram(newCalcModel(recipes, scale), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
