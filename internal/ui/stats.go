package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"bearpet/internal/pet"
	"bearpet/internal/trace"
)

// StatsModel is a simple Bubble Tea model for looking back at a recorded run
type StatsModel struct {
	Summary trace.Summary
}

// Init implements tea.Model
func (m StatsModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m StatsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, tea.Quit
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress {
			return m, tea.Quit
		}
	}
	return m, nil
}

func makeBar(value float64) string {
	filled := int(value / 10)
	return strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)
}

// View implements tea.Model
func (m StatsModel) View() string {
	sum := m.Summary
	st := sum.Final

	outcome := "Still here"
	if !st.Alive {
		outcome = "Left: " + st.Reason.String()
	}
	sick := "No"
	if st.Sick {
		sick = "Yes"
	}
	run := sum.Run
	if len(run) > 8 {
		run = run[:8]
	}

	var s strings.Builder
	s.WriteString("╔══════════════════════════════════════╗\n")
	s.WriteString(fmt.Sprintf("║  🐻 Run %-29s║\n", run))
	s.WriteString("╠══════════════════════════════════════╣\n")
	s.WriteString(fmt.Sprintf("║  Lived:     %-25s║\n", sum.Lifetime().Round(time.Second)))
	s.WriteString(fmt.Sprintf("║  Ticks:     %-25d║\n", sum.Ticks))
	s.WriteString(fmt.Sprintf("║  Nights:    %-25d║\n", sum.Nights))
	s.WriteString(fmt.Sprintf("║  Outcome:   %-25s║\n", outcome))
	s.WriteString(fmt.Sprintf("║  Status:    %-25s║\n", pet.GetStatusWithLabel(st)))
	s.WriteString("║                                      ║\n")
	s.WriteString(fmt.Sprintf("║  Hunger:    [%s] %3.0f%%        ║\n", makeBar(st.Hunger), st.Hunger))
	s.WriteString(fmt.Sprintf("║  Happiness: [%s] %3.0f%%        ║\n", makeBar(st.Happiness), st.Happiness))
	s.WriteString(fmt.Sprintf("║  Energy:    [%s] %3.0f%%        ║\n", makeBar(st.Energy), st.Energy))
	s.WriteString(fmt.Sprintf("║  Health:    [%s] %3.0f%%        ║\n", makeBar(st.Health), st.Health))
	s.WriteString(fmt.Sprintf("║  Clean:     [%s] %3.0f%%        ║\n", makeBar(st.Cleanliness), st.Cleanliness))
	s.WriteString("║                                      ║\n")
	s.WriteString(fmt.Sprintf("║  Most poops: %-24d║\n", sum.MaxPoops))
	s.WriteString(fmt.Sprintf("║  Sick:       %-24s║\n", sick))
	s.WriteString(fmt.Sprintf("║  Sick ticks: %-24d║\n", sum.SickFor))
	s.WriteString("╚══════════════════════════════════════╝\n")
	s.WriteString("\nPress ESC, click, or any key to close...")

	return s.String()
}

// DisplayStats shows the summary of a recorded run
func DisplayStats(sum trace.Summary) error {
	program := tea.NewProgram(StatsModel{Summary: sum}, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("stats display: %w", err)
	}
	return nil
}
