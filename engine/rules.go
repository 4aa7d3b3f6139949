package engine

import (
	"time"

	"github.com/lixenwraith/demon-diapers/constants"
)

// Rules holds the timing and click constants of a match
type Rules struct {
	HazardTimeout time.Duration
	ChoreTimeout  time.Duration
	GracePeriod   time.Duration
	WinTime       time.Duration
	SpawnDelayMin time.Duration
	SpawnDelayMax time.Duration
	AmbientFade   time.Duration
	ChoreClicks   int
}

// DefaultRules returns the standard match rules
func DefaultRules() Rules {
	return Rules{
		HazardTimeout: constants.HazardTimeout,
		ChoreTimeout:  constants.ChoreTimeout,
		GracePeriod:   constants.ChoreGracePeriod,
		WinTime:       constants.WinTime,
		SpawnDelayMin: constants.SpawnDelayMin,
		SpawnDelayMax: constants.SpawnDelayMax,
		AmbientFade:   constants.AmbientFadeDuration,
		ChoreClicks:   constants.ChoreClicksRequired,
	}
}

// withDefaults fills zero fields from DefaultRules
func (r Rules) withDefaults() Rules {
	d := DefaultRules()
	if r.HazardTimeout <= 0 {
		r.HazardTimeout = d.HazardTimeout
	}
	if r.ChoreTimeout <= 0 {
		r.ChoreTimeout = d.ChoreTimeout
	}
	if r.GracePeriod <= 0 {
		r.GracePeriod = d.GracePeriod
	}
	if r.WinTime <= 0 {
		r.WinTime = d.WinTime
	}
	if r.SpawnDelayMin <= 0 && r.SpawnDelayMax <= 0 {
		r.SpawnDelayMin, r.SpawnDelayMax = d.SpawnDelayMin, d.SpawnDelayMax
	}
	if r.AmbientFade <= 0 {
		r.AmbientFade = d.AmbientFade
	}
	if r.ChoreClicks <= 0 {
		r.ChoreClicks = d.ChoreClicks
	}
	return r
}
