package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"mudaeroll/internal/domain"
)

// logTail is how many event-log lines the dashboard shows.
const logTail = 6

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true)
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	idleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	busyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	fieldStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	focusStyle   = fieldStyle.Reverse(true)
	editStyle    = focusStyle.Bold(true)
	summaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)

	logStyles = map[domain.LogLevel]lipgloss.Style{
		domain.LogInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
		domain.LogSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		domain.LogWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		domain.LogError:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(" Mudae Roll Orchestrator "))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("tab/↑/↓ move • enter edits numbers • space toggles slash mode • r run • q quit"))
	b.WriteString("\n\n")

	if m.launcher.Busy() {
		b.WriteString(busyStyle.Render(m.spin.View() + " STATUS: RUNNING"))
	} else {
		b.WriteString(idleStyle.Render("STATUS: IDLE"))
	}
	b.WriteString("\n\n")

	for f := field(0); f < fieldCount; f++ {
		b.WriteString("  ")
		b.WriteString(m.renderField(f))
		b.WriteString("\n")
	}

	if summary, ok := m.launcher.LastSummary(); ok {
		b.WriteString("\n")
		b.WriteString(summaryStyle.Render("Last Session Summary:"))
		b.WriteString("\n")
		title := summary.LastCardTitle
		if title == "" {
			title = "—"
		}
		fmt.Fprintf(&b, "  Messages sent: %d\n", summary.MessagesSent)
		fmt.Fprintf(&b, "  Cards detected: %d\n", summary.CardsDetected)
		fmt.Fprintf(&b, "  Last card: %s\n", title)
		fmt.Fprintf(&b, "  Duration: %.1fs\n", summary.Duration.Seconds())
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("Event log:"))
	b.WriteString("\n")
	for _, entry := range m.launcher.Logs().Tail(logTail) {
		style := logStyles[entry.Level]
		line := fmt.Sprintf("[%s] %s", entry.CreatedAt.Format("15:04:05"), entry.Message)
		b.WriteString("  " + style.Render(line) + "\n")
	}

	return b.String()
}

func (m Model) renderField(f field) string {
	var value string
	switch {
	case m.editing && m.focus == f:
		value = m.input.View()
	case f == fieldSlash:
		if m.plan.UseSlashCommands {
			value = "ON"
		} else {
			value = "OFF"
		}
	default:
		value = fmt.Sprintf("%d", planValue(m.plan, f))
	}

	line := fmt.Sprintf("%s: %s", f.label(), value)
	switch {
	case m.editing && m.focus == f:
		return editStyle.Render(line)
	case m.focus == f:
		return focusStyle.Render(line)
	default:
		return fieldStyle.Render(line)
	}
}
