package tui

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"mudaeroll/internal/domain"
	"mudaeroll/internal/services/launch"
)

// refreshInterval drives the dashboard's polling of shared state.
const refreshInterval = 200 * time.Millisecond

type field int

const (
	fieldRolls field = iota
	fieldBoosts
	fieldSlash
	fieldCount
)

func (f field) label() string {
	switch f {
	case fieldRolls:
		return "Roll count"
	case fieldBoosts:
		return "Boost uses"
	case fieldSlash:
		return "Use slash commands"
	default:
		return ""
	}
}

func (f field) numeric() bool { return f == fieldRolls || f == fieldBoosts }

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Model is the bubbletea model for the dashboard.
type Model struct {
	launcher *launch.Launcher
	plan     domain.RollPlan

	focus   field
	editing bool
	input   textinput.Model
	spin    spinner.Model

	width  int
	height int
}

// New builds the dashboard around launcher, seeded with plan.
func New(launcher *launch.Launcher, plan domain.RollPlan) Model {
	input := textinput.New()
	input.CharLimit = 6
	input.Prompt = ""
	input.Validate = func(s string) error {
		if _, err := strconv.Atoi(s); err != nil && s != "" {
			return fmt.Errorf("digits only")
		}
		return nil
	}

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	launcher.Logs().Append(domain.LogInfo, "Ready to roll! Press 'r' to start a session.")

	return Model{
		launcher: launcher,
		plan:     plan,
		focus:    fieldBoosts,
		input:    input,
		spin:     spin,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, tick())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		return m, tick()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.editing {
			return m.updateEditing(msg)
		}
		return m.updateBrowsing(msg)
	}
	return m, nil
}

func (m Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editing = false
		m.input.Blur()
		return m, nil
	case "enter":
		return m.commitEdit(0), nil
	case "tab", "down":
		m = m.commitEdit(1)
		return m, nil
	case "shift+tab", "up":
		m = m.commitEdit(-1)
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "r":
		m.launcher.Launch(m.plan)
		return m, nil
	case "tab", "down":
		m.focus = (m.focus + 1) % fieldCount
		return m, nil
	case "shift+tab", "up":
		m.focus = (m.focus + fieldCount - 1) % fieldCount
		return m, nil
	}

	if m.focus.numeric() {
		switch {
		case msg.String() == "enter":
			return m.startEdit(""), nil
		case len(msg.String()) == 1 && msg.String() >= "0" && msg.String() <= "9":
			return m.startEdit(msg.String()), nil
		case msg.String() == "+":
			return m.applyAdjust(1), nil
		case msg.String() == "-":
			return m.applyAdjust(-1), nil
		}
		return m, nil
	}

	switch msg.String() {
	case "enter", " ", "t":
		var note string
		m.plan, note = toggleSlash(m.plan)
		m.launcher.Logs().Append(domain.LogInfo, note)
	}
	return m, nil
}

func (m Model) startEdit(initial string) Model {
	current := planValue(m.plan, m.focus)
	if initial == "" {
		initial = strconv.Itoa(current)
	}
	m.input.SetValue(initial)
	m.input.CursorEnd()
	m.input.Focus()
	m.editing = true
	return m
}

// commitEdit applies the edit buffer to the focused field and optionally
// moves focus by delta.
func (m Model) commitEdit(delta int) Model {
	raw := m.input.Value()
	m.editing = false
	m.input.Blur()
	if raw != "" {
		if value, err := strconv.Atoi(raw); err == nil {
			var note string
			m.plan, note = applyValue(m.plan, m.focus, value)
			if note != "" {
				m.launcher.Logs().Append(domain.LogInfo, note)
			}
		}
	}
	if delta != 0 {
		m.focus = (m.focus + field(delta) + fieldCount) % fieldCount
	}
	return m
}

func (m Model) applyAdjust(delta int) Model {
	var note string
	m.plan, note = adjust(m.plan, m.focus, delta)
	m.launcher.Logs().Append(domain.LogInfo, note)
	return m
}

// planValue reads the numeric field f from plan.
func planValue(plan domain.RollPlan, f field) int {
	if f == fieldRolls {
		return plan.RollCount
	}
	return plan.BoostCount
}

// applyValue sets field f to value, clamped at zero. The note is empty when
// nothing changed.
func applyValue(plan domain.RollPlan, f field, value int) (domain.RollPlan, string) {
	if value < 0 {
		value = 0
	}
	switch f {
	case fieldRolls:
		if value == plan.RollCount {
			return plan, ""
		}
		plan.RollCount = value
		return plan, fmt.Sprintf("Roll count set to %d", value)
	case fieldBoosts:
		if value == plan.BoostCount {
			return plan, ""
		}
		plan.BoostCount = value
		return plan, fmt.Sprintf("Boost uses set to %d", value)
	}
	return plan, ""
}

// adjust shifts field f by delta, clamping at zero.
func adjust(plan domain.RollPlan, f field, delta int) (domain.RollPlan, string) {
	value := planValue(plan, f) + delta
	if value < 0 {
		value = 0
	}
	if f == fieldRolls {
		plan.RollCount = value
		return plan, fmt.Sprintf("Roll count set to %d", value)
	}
	plan.BoostCount = value
	return plan, fmt.Sprintf("Boost uses set to %d", value)
}

// toggleSlash flips the invocation mode.
func toggleSlash(plan domain.RollPlan) (domain.RollPlan, string) {
	plan.UseSlashCommands = !plan.UseSlashCommands
	if plan.UseSlashCommands {
		return plan, "Rolling via slash commands."
	}
	return plan, "Rolling via text commands."
}

// Run starts the dashboard and blocks until the user quits.
func Run(launcher *launch.Launcher, plan domain.RollPlan) error {
	p := tea.NewProgram(New(launcher, plan), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
