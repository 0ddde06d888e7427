package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"bearpet/internal/pet"
	"bearpet/internal/stage"
)

const (
	defaultFieldCols = 44
	defaultFieldRows = 8
	maxFieldRows     = 12
	reservedRows     = 24
)

var gameStyles = struct {
	title   lipgloss.Style
	status  lipgloss.Style
	message lipgloss.Style
	menu    lipgloss.Style
	menuBox lipgloss.Style
	stats   lipgloss.Style
	day     lipgloss.Style
	night   lipgloss.Style
}{
	title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#C68642")).
		Padding(0, 1),

	status: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#C68642")).
		Width(40),

	message: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color("#8B5A2B")).
		Padding(0, 1),

	stats: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#C68642")).
		Width(40),

	menu: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#C68642")),

	menuBox: lipgloss.NewStyle().
		Padding(0, 2),

	day: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#7CB342")),

	night: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#3949AB")).
		Foreground(lipgloss.Color("#9FA8DA")),
}

// GameOverText is what the game-over screen says for each way the bear can leave.
var GameOverText = map[pet.Reason]string{
	pet.ReasonSad:     "Your bear was feeling too sad and went to find happiness somewhere else...",
	pet.ReasonHungry:  "Your bear was too hungry and went looking for food in the forest...",
	pet.ReasonSick:    "Your bear wasn't feeling well and went to rest in a cozy cave...",
	pet.ReasonDirty:   "Your bear decided to go find a cleaner place to play...",
	pet.ReasonDefault: "Your bear decided to take a long adventure break...",
}

func gameOverText(r pet.Reason) string {
	if text, ok := GameOverText[r]; ok {
		return text
	}
	return GameOverText[pet.ReasonDefault]
}

// View implements tea.Model
func (m Model) View() string {
	if m.Quitting {
		return "Thanks for playing!\n"
	}
	if m.scr.gameOver {
		return m.gameOverView()
	}
	if m.InDebugMenu {
		return m.renderDebugMenu()
	}

	st := m.sim.State()
	phase := "☀️"
	if m.scr.night {
		phase = "🌙"
	}
	title := gameStyles.title.Render("🐻 Bear " + phase)

	sections := []string{
		title,
		m.renderField(),
		m.renderStats(st),
		"",
		m.renderStatus(st),
	}

	if st.ShowingMessage && m.scr.message != "" {
		sections = append(sections, "", gameStyles.message.Render(m.scr.message))
	}

	help := "arrows to move • enter to select • u scoop • d debug • q quit"
	if m.scr.sfxShowing() {
		help = "♪ " + help
	}

	sections = append(sections,
		"",
		m.renderMenu(),
		"",
		gameStyles.status.Render(help),
	)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) fieldSize() (cols, rows int) {
	cols, rows = defaultFieldCols, defaultFieldRows
	if m.Width > 0 {
		cols = min(max(m.Width-4, 20), 72)
	}
	if m.Height > 0 {
		rows = min(stage.VisibleRows(m.Height, reservedRows), maxFieldRows)
	}
	return cols, rows
}

func (m Model) renderField() string {
	cols, rows := m.fieldSize()
	field := m.scr.stage.Render(m.scr.anim.Glyph(), cols, rows)
	if m.scr.night {
		return gameStyles.night.Render(field)
	}
	return gameStyles.day.Render(field)
}

func (m Model) renderStats(st pet.State) string {
	stats := []struct {
		name  string
		value float64
	}{
		{"Hunger", m.scr.stats.Hunger},
		{"Happiness", m.scr.stats.Happiness},
		{"Energy", m.scr.stats.Energy},
		{"Health", m.scr.stats.Health},
		{"Clean", st.Cleanliness},
	}

	var lines []string
	for _, stat := range stats {
		lines = append(lines, fmt.Sprintf("%-10s [%s] %3.0f%%", stat.name+":", makeBar(stat.value), stat.value))
	}
	return gameStyles.stats.Render(strings.Join(lines, "\n"))
}

func (m Model) renderStatus(st pet.State) string {
	return gameStyles.status.Render(fmt.Sprintf("Status: %s", pet.GetStatusWithLabel(st)))
}

func (m Model) renderMenu() string {
	var menuItems []string
	for i, choice := range menuChoices {
		cursor := " "
		if m.Choice == i {
			cursor = ">"
		}
		menuItems = append(menuItems, fmt.Sprintf("%s %s", cursor, choice))
	}
	return gameStyles.menuBox.Render(strings.Join(menuItems, "\n"))
}

func (m Model) renderDebugMenu() string {
	var menuItems []string
	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FF0000")).
		Render("⚠️  DEBUG MENU ⚠️")

	for i, choice := range debugMenuOptions {
		cursor := " "
		if m.DebugChoice == i {
			cursor = ">"
		}
		menuItems = append(menuItems, fmt.Sprintf("%s %s", cursor, choice))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		gameStyles.menuBox.Render(strings.Join(menuItems, "\n")),
		"",
		gameStyles.status.Render("Press 'd' or Esc to exit"),
	)
}

func (m Model) gameOverView() string {
	return lipgloss.JoinVertical(
		lipgloss.Center,
		gameStyles.title.Render("🐻 Game Over 🐻"),
		"",
		gameStyles.status.Render(gameOverText(m.scr.reason)),
		"",
		gameStyles.menuBox.Render("Would you like to adopt a new bear?"),
		"",
		gameStyles.status.Render("Press 'y' for yes, 'n' for no"),
	)
}
