package tuning

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed tuning.schema.json
var schemaJSON []byte

const schemaURL = "tuning.schema.json"

// Tuning holds every timing and threshold knob of the simulation.
type Tuning struct {
	TickPeriod     time.Duration `yaml:"tick_period"`
	DayNightPeriod time.Duration `yaml:"day_night_period"`

	Decay      Decay      `yaml:"decay"`
	Poop       Poop       `yaml:"poop"`
	Sickness   Sickness   `yaml:"sickness"`
	Exhaustion Exhaustion `yaml:"exhaustion"`
	Death      Death      `yaml:"death"`
	Sleep      Sleep      `yaml:"sleep"`
	Behavior   Behavior   `yaml:"behavior"`
	Dialogue   Dialogue   `yaml:"dialogue"`
}

// Decay is the passive stat drain.
type Decay struct {
	HungerEvery       time.Duration `yaml:"hunger_every"`
	HungerAmount      float64       `yaml:"hunger_amount"`
	HappinessEvery    time.Duration `yaml:"happiness_every"`
	HappinessAmount   float64       `yaml:"happiness_amount"`
	EnergyEvery       time.Duration `yaml:"energy_every"`
	EnergyDayAmount   float64       `yaml:"energy_day_amount"`
	EnergyNightAmount float64       `yaml:"energy_night_amount"`
	SleepSlowdown     float64       `yaml:"sleep_slowdown"` // interval multiplier while asleep
}

// Poop covers spawning and digestion.
type Poop struct {
	IntervalMin       time.Duration `yaml:"interval_min"`
	IntervalMax       time.Duration `yaml:"interval_max"`
	DigestEvery       time.Duration `yaml:"digest_every"`
	DigestAmount      float64       `yaml:"digest_amount"`
	SpawnRelief       float64       `yaml:"spawn_relief"`
	OvereatWindow     time.Duration `yaml:"overeat_window"`
	OvereatBonus      float64       `yaml:"overeat_bonus"`
	PressureThreshold float64       `yaml:"pressure_threshold"`
}

// Sickness covers dirtiness driven illness.
type Sickness struct {
	OnsetPoops       int           `yaml:"onset_poops"`
	OnsetDelay       time.Duration `yaml:"onset_delay"`
	DirtPenaltyEvery time.Duration `yaml:"dirt_penalty_every"`
}

// Exhaustion covers the collapse at zero energy.
type Exhaustion struct {
	Delay      time.Duration `yaml:"delay"`
	Window     time.Duration `yaml:"window"`
	SickAfter  int           `yaml:"sick_after"`
	SickChance float64       `yaml:"sick_chance"`
}

// Death covers the critical-state countdown.
type Death struct {
	DirtyTimeout time.Duration `yaml:"dirty_timeout"`
	NeedTimeout  time.Duration `yaml:"need_timeout"`
}

// Sleep covers voluntary and forced sleep.
type Sleep struct {
	DayDuration      time.Duration `yaml:"day_duration"`
	NightDuration    time.Duration `yaml:"night_duration"`
	RestorePerSecond float64       `yaml:"restore_per_second"`
	CollapseDuration time.Duration `yaml:"collapse_duration"`
	CollapseRestore  float64       `yaml:"collapse_restore_per_second"`
	MaxEnergyToSleep float64       `yaml:"max_energy_to_sleep"`
}

// Behavior covers spontaneous behavior rolls.
type Behavior struct {
	WalkChance  float64 `yaml:"walk_chance"`
	SleepChance float64 `yaml:"sleep_chance"`
	HappyChance float64 `yaml:"happy_chance"`
	SillyChance float64 `yaml:"silly_chance"`
}

// Dialogue covers messages the pet volunteers.
type Dialogue struct {
	MessageDuration time.Duration `yaml:"message_duration"`
	ComplaintEvery  time.Duration `yaml:"complaint_every"`
	FlavorChance    float64       `yaml:"flavor_chance"`
	FlavorGap       time.Duration `yaml:"flavor_gap"`
}

// Default returns the stock tuning.
func Default() Tuning {
	return Tuning{
		TickPeriod:     time.Second,
		DayNightPeriod: 120 * time.Second,
		Decay: Decay{
			HungerEvery:       15 * time.Second,
			HungerAmount:      5,
			HappinessEvery:    20 * time.Second,
			HappinessAmount:   5,
			EnergyEvery:       40 * time.Second,
			EnergyDayAmount:   3,
			EnergyNightAmount: 6,
			SleepSlowdown:     2,
		},
		Poop: Poop{
			IntervalMin:       60 * time.Second,
			IntervalMax:       90 * time.Second,
			DigestEvery:       15 * time.Second,
			DigestAmount:      0.3,
			SpawnRelief:       0.2,
			OvereatWindow:     20 * time.Second,
			OvereatBonus:      0.5,
			PressureThreshold: 2.5,
		},
		Sickness: Sickness{
			OnsetPoops:       3,
			OnsetDelay:       60 * time.Second,
			DirtPenaltyEvery: 10 * time.Second,
		},
		Exhaustion: Exhaustion{
			Delay:      30 * time.Second,
			Window:     300 * time.Second,
			SickAfter:  3,
			SickChance: 0.7,
		},
		Death: Death{
			DirtyTimeout: 45 * time.Second,
			NeedTimeout:  90 * time.Second,
		},
		Sleep: Sleep{
			DayDuration:      10 * time.Second,
			NightDuration:    12 * time.Second,
			RestorePerSecond: 10,
			CollapseDuration: 15 * time.Second,
			CollapseRestore:  8,
			MaxEnergyToSleep: 70,
		},
		Behavior: Behavior{
			WalkChance:  0.02,
			SleepChance: 0.005,
			HappyChance: 0.01,
			SillyChance: 0.3,
		},
		Dialogue: Dialogue{
			MessageDuration: 2 * time.Second,
			ComplaintEvery:  15 * time.Second,
			FlavorChance:    0.01,
			FlavorGap:       30 * time.Second,
		},
	}
}

// DefaultPath returns ~/.config/bearpet/tuning.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("tuning: home dir: %w", err)
	}
	return filepath.Join(home, ".config", "bearpet", "tuning.yaml"), nil
}

// Load overlays the YAML file at path on Default and validates the result.
func Load(path string) (Tuning, error) {
	t := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return t, err
	}
	if err := ValidateDocument(raw); err != nil {
		return t, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return t, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	if err := t.Validate(); err != nil {
		return t, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return t, nil
}

// LoadOptional is Load, except a missing file yields Default.
func LoadOptional(path string) (Tuning, error) {
	t, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return t, err
}

// ValidateDocument checks a raw YAML document against the embedded schema.
func ValidateDocument(raw []byte) error {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return err
	}
	if doc == nil {
		return nil
	}
	// Round-trip through JSON so the validator sees canonical JSON types.
	b, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("tuning document: %w", err)
	}
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	schema, err := compileSchema()
	if err != nil {
		return err
	}
	return schema.Validate(v)
}

func compileSchema() (*jsonschema.Schema, error) {
	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, bytes.NewReader(schemaJSON)); err != nil {
		return nil, fmt.Errorf("tuning schema: %w", err)
	}
	return c.Compile(schemaURL)
}

// Validate checks cross-field constraints the schema cannot express.
func (t Tuning) Validate() error {
	positive := []struct {
		name string
		d    time.Duration
	}{
		{"tick_period", t.TickPeriod},
		{"day_night_period", t.DayNightPeriod},
		{"decay.hunger_every", t.Decay.HungerEvery},
		{"decay.happiness_every", t.Decay.HappinessEvery},
		{"decay.energy_every", t.Decay.EnergyEvery},
		{"poop.interval_min", t.Poop.IntervalMin},
		{"poop.digest_every", t.Poop.DigestEvery},
		{"sickness.dirt_penalty_every", t.Sickness.DirtPenaltyEvery},
		{"exhaustion.window", t.Exhaustion.Window},
		{"sleep.day_duration", t.Sleep.DayDuration},
		{"sleep.night_duration", t.Sleep.NightDuration},
		{"sleep.collapse_duration", t.Sleep.CollapseDuration},
		{"dialogue.message_duration", t.Dialogue.MessageDuration},
	}
	for _, p := range positive {
		if p.d <= 0 {
			return fmt.Errorf("%s must be positive, got %s", p.name, p.d)
		}
	}
	if t.Poop.IntervalMax < t.Poop.IntervalMin {
		return fmt.Errorf("poop.interval_max (%s) is below poop.interval_min (%s)", t.Poop.IntervalMax, t.Poop.IntervalMin)
	}
	if t.Decay.SleepSlowdown < 1 {
		return fmt.Errorf("decay.sleep_slowdown must be >= 1, got %g", t.Decay.SleepSlowdown)
	}
	return nil
}
