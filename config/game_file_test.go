package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lixenwraith/demon-diapers/engine"
)

// TestDefaultGameMatchesEngineDefaults verifies the embedded file mirrors the built-in tables
func TestDefaultGameMatchesEngineDefaults(t *testing.T) {
	gf := Default()

	if got, want := gf.EngineRules(), engine.DefaultRules(); got != want {
		t.Errorf("Expected rules %+v, got %+v", want, got)
	}

	catalog := gf.Catalog()
	defaults := engine.DefaultChoreCatalog()
	if len(catalog) != len(defaults) {
		t.Fatalf("Expected %d chores, got %d", len(defaults), len(catalog))
	}
	for i := range catalog {
		if catalog[i].Name != defaults[i].Name || catalog[i].Room != defaults[i].Room || catalog[i].Radius != defaults[i].Radius {
			t.Errorf("Chore %d: expected %+v, got %+v", i, defaults[i], catalog[i])
		}
		if catalog[i].Anchor == nil {
			t.Errorf("Chore %d: expected an anchor", i)
		}
	}

	stages := gf.Stages()
	wantStages := engine.DefaultHauntStages()
	if len(stages) != len(wantStages) {
		t.Fatalf("Expected %d stages, got %d", len(wantStages), len(stages))
	}
	for i := range stages {
		if stages[i] != wantStages[i] {
			t.Errorf("Stage %d: expected %+v, got %+v", i, wantStages[i], stages[i])
		}
	}

	spots := gf.Spots()
	wantSpots := engine.DefaultHazardSpots()
	for room := range spots {
		if len(spots[room]) != len(wantSpots[room]) {
			t.Errorf("Room %d: expected %d spots, got %d", room, len(wantSpots[room]), len(spots[room]))
			continue
		}
		for i := range spots[room] {
			if spots[room][i] != wantSpots[room][i] {
				t.Errorf("Room %d spot %d: expected %+v, got %+v", room, i, wantSpots[room][i], spots[room][i])
			}
		}
	}
}

func TestLoadEmptyPathUsesDefault(t *testing.T) {
	gf, err := Load("")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(gf.Chores) != 4 {
		t.Errorf("Expected 4 default chores, got %d", len(gf.Chores))
	}
}

func TestLoadCustomFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	content := `
rules:
  hazard_timeout: 3s
  chore_clicks: 4
hazard:
  radius: 1
  spots:
    kitchen: [[0.5, 0.5]]
chores:
  - name: Feed Cat
    room: kitchen
haunting:
  - at: 10s
    room: bathroom
    volume: 0.5
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	gf, err := Load(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	rules := gf.EngineRules()
	if rules.HazardTimeout != 3*time.Second {
		t.Errorf("Expected hazard timeout 3s, got %v", rules.HazardTimeout)
	}
	if rules.ChoreClicks != 4 {
		t.Errorf("Expected 4 clicks, got %d", rules.ChoreClicks)
	}

	catalog := gf.Catalog()
	if len(catalog) != 1 || catalog[0].Name != "Feed Cat" || catalog[0].Room != engine.Kitchen {
		t.Errorf("Unexpected catalog %+v", catalog)
	}
	if catalog[0].Anchor != nil {
		t.Error("Expected no anchor for entry without one")
	}

	layout := gf.Layout(80, 24)
	if len(layout.HazardSpots[engine.Kitchen]) != 1 {
		t.Fatalf("Expected 1 kitchen spot, got %d", len(layout.HazardSpots[engine.Kitchen]))
	}
	if got := layout.HazardSpots[engine.Kitchen][0]; got != engine.Pt(40, 12) {
		t.Errorf("Expected kitchen spot (40,12), got %+v", got)
	}
	if len(layout.HazardSpots[engine.Bathroom]) != 0 {
		t.Error("Expected bathroom without spots")
	}
	if layout.HazardRadius != 1 {
		t.Errorf("Expected radius 1, got %v", layout.HazardRadius)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected not-exist error, got %v", err)
	}
}

func TestParseRejectsBadYAML(t *testing.T) {
	if _, err := Parse([]byte("rules: [unterminated")); err == nil {
		t.Error("Expected decode error")
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	gf := &GameFile{
		Rules: RulesSection{
			HazardTimeout: -time.Second,
			SpawnDelayMin: 6 * time.Second,
			SpawnDelayMax: 2 * time.Second,
			ChoreClicks:   -1,
		},
		Hazard: HazardSection{
			Spots: map[string][][]float64{
				"attic":   {{0.5, 0.5}},
				"kitchen": {{1.5, 0.5}},
			},
		},
		Chores: []ChoreEntry{
			{Name: "", Room: "garage", Anchor: []float64{0.1}},
		},
		Haunting: []HauntingEntry{
			{At: 20 * time.Second, Room: "bedroom", Volume: 1.2},
			{At: 10 * time.Second, Room: "bedroom", Volume: 0.1},
		},
	}

	err := gf.Validate()
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("Expected ErrInvalid, got %v", err)
	}

	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		t.Fatalf("Expected joined errors, got %T", err)
	}
	// negative timeout, spawn range, clicks, unknown spot room, spot range,
	// missing name, unknown chore room, anchor, volume, stage order
	if got := len(joined.Unwrap()); got != 10 {
		t.Errorf("Expected 10 problems, got %d: %v", got, err)
	}
}

func TestValidateAcceptsEmptyFile(t *testing.T) {
	gf, err := Parse([]byte("{}"))
	if err != nil {
		t.Fatalf("Expected empty file to be valid, got %v", err)
	}
	if len(gf.Catalog()) != 0 {
		t.Error("Expected empty catalog")
	}
	if gf.EngineRules() != (engine.Rules{}) {
		t.Error("Expected zero rules, engine fills defaults")
	}
}
