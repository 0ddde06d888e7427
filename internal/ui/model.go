package ui

import (
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"bearpet/internal/pet"
)

const frameInterval = 100 * time.Millisecond

var menuChoices = []string{"Feed", "Play", "Clean", "Sleep", "Medicine", "Quit"}

var menuActions = []pet.Action{pet.ActionFeed, pet.ActionPlay, pet.ActionClean, pet.ActionSleep, pet.ActionMedicate}

var debugMenuOptions = []string{
	"Spawn Poop",
	"Drain Energy",
	"Make Sick",
	"Empty Hunger",
	"Kill Pet",
	"Back",
}

// Model is the game screen. Copies share the simulation and what it draws on.
type Model struct {
	sim *pet.Simulation
	scr *screen
	log *log.Logger

	Choice      int
	Quitting    bool
	InDebugMenu bool
	DebugChoice int
	Width       int
	Height      int
}

type frameMsg time.Time

// NewModel hatches a pet at now. cfg.Hooks is replaced by the screen.
func NewModel(cfg pet.Config, now time.Time) Model {
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	scr := newScreen(now)
	cfg.Hooks = scr.hooks()
	return Model{
		sim: pet.New(cfg, now),
		scr: scr,
		log: cfg.Logger,
	}
}

// Sim returns the simulation behind the screen.
func (m Model) Sim() *pet.Simulation { return m.sim }

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return frame()
}

func frame() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case frameMsg:
		m.step(time.Time(msg))
		return m, frame()

	case tea.KeyMsg:
		return m.handleKey(msg.String())
	}
	return m, nil
}

// step moves the game to now: the simulation runs its due timers, then the
// animation catches up and may report a finished one-shot.
func (m *Model) step(now time.Time) {
	m.scr.setTime(now)
	m.sim.Advance(now)
	m.scr.animate()
}

func (m Model) handleKey(key string) (tea.Model, tea.Cmd) {
	if key == "ctrl+c" {
		m.Quitting = true
		return m, tea.Quit
	}

	if m.scr.gameOver {
		switch key {
		case "y":
			m.scr.reset()
			m.sim.Restart()
			m.Choice = 0
			m.InDebugMenu = false
		case "n", "q":
			m.Quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	if m.InDebugMenu {
		switch key {
		case "q":
			m.Quitting = true
			return m, tea.Quit
		case "d", "esc":
			m.InDebugMenu = false
		case "up", "k":
			if m.DebugChoice > 0 {
				m.DebugChoice--
			}
		case "down", "j":
			if m.DebugChoice < len(debugMenuOptions)-1 {
				m.DebugChoice++
			}
		case "enter", " ":
			m.runDebug()
		}
		return m, nil
	}

	switch key {
	case "q":
		m.Quitting = true
		return m, tea.Quit
	case "d":
		m.InDebugMenu = true
		m.DebugChoice = 0
	case "up", "k":
		if m.Choice > 0 {
			m.Choice--
		}
	case "down", "j":
		if m.Choice < len(menuChoices)-1 {
			m.Choice++
		}
	case "enter", " ":
		if m.Choice >= len(menuActions) {
			m.Quitting = true
			return m, tea.Quit
		}
		m.sim.Do(menuActions[m.Choice])
	case "f":
		m.sim.Feed()
	case "p":
		m.sim.Play()
	case "c":
		m.sim.Clean()
	case "s":
		m.sim.Sleep()
	case "m":
		m.sim.Medicate()
	case "u":
		if id, ok := m.sim.OldestPoop(); ok {
			m.sim.Scoop(id)
		}
	}
	return m, nil
}

func (m *Model) runDebug() {
	switch m.DebugChoice {
	case 0:
		if !m.sim.SpawnPoop() {
			m.log.Printf("Debug: poop spawn refused")
		}
	case 1:
		m.sim.DebugDrainEnergy()
	case 2:
		m.sim.DebugSicken()
	case 3:
		m.sim.DebugStarve()
	case 4:
		m.sim.DebugKill()
	}
	m.InDebugMenu = false
}
