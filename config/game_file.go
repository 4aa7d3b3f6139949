package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/demon-diapers/engine"
)

//go:embed default_game.yaml
var defaultGameYAML []byte

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid game file")

// GameFile is the YAML description of a match: rules, hazard spots, chores and haunting
type GameFile struct {
	Rules    RulesSection    `yaml:"rules"`
	Hazard   HazardSection   `yaml:"hazard"`
	Chores   []ChoreEntry    `yaml:"chores"`
	Haunting []HauntingEntry `yaml:"haunting"`
}

type RulesSection struct {
	HazardTimeout time.Duration `yaml:"hazard_timeout"`
	ChoreTimeout  time.Duration `yaml:"chore_timeout"`
	GracePeriod   time.Duration `yaml:"grace_period"`
	WinTime       time.Duration `yaml:"win_time"`
	SpawnDelayMin time.Duration `yaml:"spawn_delay_min"`
	SpawnDelayMax time.Duration `yaml:"spawn_delay_max"`
	AmbientFade   time.Duration `yaml:"ambient_fade"`
	ChoreClicks   int           `yaml:"chore_clicks"`
}

type HazardSection struct {
	Radius float64                `yaml:"radius"`
	Spots  map[string][][]float64 `yaml:"spots"`
}

type ChoreEntry struct {
	Name   string    `yaml:"name"`
	Room   string    `yaml:"room"`
	Radius float64   `yaml:"radius"`
	Anchor []float64 `yaml:"anchor"`
}

type HauntingEntry struct {
	At     time.Duration `yaml:"at"`
	Room   string        `yaml:"room"`
	Volume float64       `yaml:"volume"`
}

// Default returns the built-in game file
func Default() *GameFile {
	gf, err := Parse(defaultGameYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded default_game.yaml: %v", err))
	}
	return gf
}

// Load reads and validates a game file; an empty path returns the built-in default
func Load(path string) (*GameFile, error) {
	if path == "" {
		return Default(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading game file: %w", err)
	}
	gf, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return gf, nil
}

// Parse decodes and validates YAML game file content
func Parse(raw []byte) (*GameFile, error) {
	var gf GameFile
	if err := yaml.Unmarshal(raw, &gf); err != nil {
		return nil, fmt.Errorf("decoding yaml: %w", err)
	}
	if err := gf.Validate(); err != nil {
		return nil, err
	}
	return &gf, nil
}

// Validate checks ranges and room names. Missing sections are not errors: the engine falls
// back to random placement for rooms without spots and a generic chore for an empty catalog.
func (gf *GameFile) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...)))
	}

	r := gf.Rules
	for name, d := range map[string]time.Duration{
		"hazard_timeout":  r.HazardTimeout,
		"chore_timeout":   r.ChoreTimeout,
		"grace_period":    r.GracePeriod,
		"win_time":        r.WinTime,
		"spawn_delay_min": r.SpawnDelayMin,
		"spawn_delay_max": r.SpawnDelayMax,
		"ambient_fade":    r.AmbientFade,
	} {
		if d < 0 {
			bad("rules.%s is negative", name)
		}
	}
	if r.SpawnDelayMax > 0 && r.SpawnDelayMin > r.SpawnDelayMax {
		bad("rules.spawn_delay_min %s exceeds spawn_delay_max %s", r.SpawnDelayMin, r.SpawnDelayMax)
	}
	if r.ChoreClicks < 0 {
		bad("rules.chore_clicks is negative")
	}

	if gf.Hazard.Radius < 0 {
		bad("hazard.radius is negative")
	}
	for key, spots := range gf.Hazard.Spots {
		if _, ok := engine.ParseRoom(key); !ok {
			bad("hazard.spots: unknown room %q", key)
		}
		for i, s := range spots {
			if !validFraction(s) {
				bad("hazard.spots.%s[%d]: want [x, y] within [0, 1]", key, i)
			}
		}
	}

	for i, c := range gf.Chores {
		if c.Name == "" {
			bad("chores[%d]: missing name", i)
		}
		if _, ok := engine.ParseRoom(c.Room); !ok {
			bad("chores[%d]: unknown room %q", i, c.Room)
		}
		if c.Radius < 0 {
			bad("chores[%d]: negative radius", i)
		}
		if c.Anchor != nil && !validFraction(c.Anchor) {
			bad("chores[%d]: anchor must be [x, y] within [0, 1]", i)
		}
	}

	for i, h := range gf.Haunting {
		if _, ok := engine.ParseRoom(h.Room); !ok {
			bad("haunting[%d]: unknown room %q", i, h.Room)
		}
		if h.Volume < 0 || h.Volume > 1 {
			bad("haunting[%d]: volume %v outside [0, 1]", i, h.Volume)
		}
		if i > 0 && h.At < gf.Haunting[i-1].At {
			bad("haunting[%d]: stages must be in time order", i)
		}
	}

	return errors.Join(errs...)
}

func validFraction(v []float64) bool {
	return len(v) == 2 && v[0] >= 0 && v[0] <= 1 && v[1] >= 0 && v[1] <= 1
}

// EngineRules maps the rules section; zero fields take the engine defaults
func (gf *GameFile) EngineRules() engine.Rules {
	r := gf.Rules
	return engine.Rules{
		HazardTimeout: r.HazardTimeout,
		ChoreTimeout:  r.ChoreTimeout,
		GracePeriod:   r.GracePeriod,
		WinTime:       r.WinTime,
		SpawnDelayMin: r.SpawnDelayMin,
		SpawnDelayMax: r.SpawnDelayMax,
		AmbientFade:   r.AmbientFade,
		ChoreClicks:   r.ChoreClicks,
	}
}

// Catalog maps the chore list
func (gf *GameFile) Catalog() []engine.ChoreSpec {
	catalog := make([]engine.ChoreSpec, 0, len(gf.Chores))
	for _, c := range gf.Chores {
		room, _ := engine.ParseRoom(c.Room)
		spec := engine.ChoreSpec{Name: c.Name, Room: room, Radius: c.Radius}
		if len(c.Anchor) == 2 {
			spec.Anchor = &engine.Fraction{X: c.Anchor[0], Y: c.Anchor[1]}
		}
		catalog = append(catalog, spec)
	}
	return catalog
}

// Stages maps the haunting schedule
func (gf *GameFile) Stages() []engine.HauntStage {
	stages := make([]engine.HauntStage, 0, len(gf.Haunting))
	for _, h := range gf.Haunting {
		room, _ := engine.ParseRoom(h.Room)
		stages = append(stages, engine.HauntStage{At: h.At, Room: room, Volume: h.Volume})
	}
	return stages
}

// Spots maps the hazard spots into the per-room table
func (gf *GameFile) Spots() [engine.RoomCount][]engine.Fraction {
	var spots [engine.RoomCount][]engine.Fraction
	for key, list := range gf.Hazard.Spots {
		room, ok := engine.ParseRoom(key)
		if !ok {
			continue
		}
		for _, s := range list {
			if len(s) == 2 {
				spots[room] = append(spots[room], engine.Fraction{X: s[0], Y: s[1]})
			}
		}
	}
	return spots
}

// Layout resolves the hazard spots for a field of width x height cells
func (gf *GameFile) Layout(width, height int) *engine.Layout {
	return engine.NewLayout(width, height, gf.Spots(), gf.Hazard.Radius)
}
