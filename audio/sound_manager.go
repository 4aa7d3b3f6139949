package audio

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/demon-diapers/constants"
	"github.com/lixenwraith/demon-diapers/engine"
)

// ErrNotInitialized is returned when playing before Initialize succeeded
var ErrNotInitialized = errors.New("audio not initialized")

// Config holds the audio options taken from settings
type Config struct {
	Enabled      bool
	SampleRate   int
	MasterVolume float64
}

// DefaultConfig returns enabled audio at the default rate and 0.8 master volume
func DefaultConfig() Config {
	return Config{Enabled: true, SampleRate: constants.AudioSampleRate, MasterVolume: 0.8}
}

// SoundManager plays game cues and the ambient drone. It satisfies engine.Effects;
// without an audio device every call is a silent no-op.
type SoundManager struct {
	mu          sync.Mutex
	cfg         Config
	rate        beep.SampleRate
	mixer       *beep.Mixer
	ambient     *fader
	initialized bool
	warned      bool
}

var _ engine.Effects = (*SoundManager)(nil)

// NewSoundManager creates a new sound manager
func NewSoundManager(cfg Config) *SoundManager {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = constants.AudioSampleRate
	}
	rate := beep.SampleRate(cfg.SampleRate)
	return &SoundManager{
		cfg:     cfg,
		rate:    rate,
		mixer:   &beep.Mixer{},
		ambient: newFader(newDroneGenerator(rate), 0),
	}
}

// Initialize opens the speaker and starts the mixer; disabled audio stays uninitialized
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	if err := speaker.Init(sm.rate, sm.rate.N(constants.AudioBufferDuration)); err != nil {
		return err
	}

	sm.mixer.Add(sm.ambient)
	speaker.Play(newVolume(sm.mixer, sm.cfg.MasterVolume))
	sm.initialized = true
	log.Printf("[audio] speaker ready at %d Hz", sm.cfg.SampleRate)
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Clear()

	// beep keeps the speaker open for the process lifetime; clearing avoids stray audio
	sm.initialized = false
}

// Play adds a streamer to the mixer
func (sm *SoundManager) Play(s beep.Streamer) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return ErrNotInitialized
	}
	if s == nil {
		return nil
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	return nil
}

// PlayCue synthesizes and plays the sound for a core cue
func (sm *SoundManager) PlayCue(c engine.Cue) {
	if err := sm.Play(CueStreamer(c, sm.rate)); err != nil {
		sm.warnOnce(err)
	}
}

// RampAmbient eases the drone toward target over the given duration
func (sm *SoundManager) RampAmbient(target float64, over time.Duration) {
	if target < 0 {
		target = 0
	}
	if target > 1 {
		target = 1
	}
	span := sm.rate.N(over)

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		// Keep the fader in step so levels are right once audio comes up
		sm.ambient.rampTo(target, 0)
		return
	}
	speaker.Lock()
	sm.ambient.rampTo(target, span)
	speaker.Unlock()
}

// AmbientTarget returns the level the drone is heading to
func (sm *SoundManager) AmbientTarget() float64 {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if sm.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	return sm.ambient.to
}

func (sm *SoundManager) warnOnce(err error) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if sm.warned {
		return
	}
	sm.warned = true
	log.Printf("[audio] cues muted: %v", err)
}
