package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// EnvPrefix prefixes every environment variable read by LoadSettings
const EnvPrefix = "DEMON_DIAPERS_"

// Settings are the runtime options taken from the environment
type Settings struct {
	Debug        bool    `env:"DEBUG" envDefault:"false"`
	AudioEnabled bool    `env:"AUDIO_ENABLED" envDefault:"true"`
	MasterVolume float64 `env:"MASTER_VOLUME" envDefault:"0.8"`
	SampleRate   int     `env:"SAMPLE_RATE" envDefault:"44100"`
	GameFile     string  `env:"GAME_FILE"`
	ArtDir       string  `env:"ART_DIR" envDefault:"art"`
	DBPath       string  `env:"DB_PATH" envDefault:"data/runs.db"`
	Seed         int64   `env:"SEED" envDefault:"0"`
}

// LoadSettings loads .env from the working directory when present, then parses the
// environment. Out-of-range audio values are clamped.
func LoadSettings() (*Settings, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	s, err := env.ParseAsWithOptions[Settings](env.Options{Prefix: EnvPrefix})
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	if s.MasterVolume < 0 {
		s.MasterVolume = 0
	}
	if s.MasterVolume > 1 {
		s.MasterVolume = 1
	}
	if s.SampleRate <= 0 {
		s.SampleRate = 44100
	}
	return &s, nil
}
