package game

import (
	"context"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/demon-diapers/config"
	"github.com/lixenwraith/demon-diapers/constants"
	"github.com/lixenwraith/demon-diapers/engine"
	"github.com/lixenwraith/demon-diapers/input"
	"github.com/lixenwraith/demon-diapers/records"
	"github.com/lixenwraith/demon-diapers/render"
)

const recordTimeout = 2 * time.Second

// Recorder persists finished runs
type Recorder interface {
	Record(ctx context.Context, run records.Run) error
}

// Options wires a Runner; only Screen is required
type Options struct {
	Screen   tcell.Screen
	Clock    engine.TimeProvider
	Game     *config.GameFile
	Art      *render.ArtSet
	Effects  engine.Effects
	Random   engine.RandomSource
	Recorder Recorder
	NewRunID func() string

	// CrashHandler is called with the recovered value if the input poller panics
	CrashHandler func(r any)
}

// Runner is the host: it polls input, samples the clock once per frame, drives the
// session and draws the result
type Runner struct {
	screen   tcell.Screen
	clock    engine.TimeProvider
	game     *config.GameFile
	renderer *render.TerminalRenderer
	machine  *input.Machine
	recorder Recorder
	crash    func(r any)

	layout  *engine.Layout
	cfg     engine.SessionConfig
	session *engine.Session

	recorded bool
}

// NewRunner creates a runner showing the start screen
func NewRunner(opts Options) *Runner {
	if opts.Clock == nil {
		opts.Clock = engine.NewMonotonicTimeProvider()
	}
	if opts.Game == nil {
		opts.Game = config.Default()
	}
	if opts.Effects == nil {
		opts.Effects = engine.NopEffects{}
	}

	w, h := opts.Screen.Size()
	layout := opts.Game.Layout(w, h)

	return &Runner{
		screen:   opts.Screen,
		clock:    opts.Clock,
		game:     opts.Game,
		renderer: render.NewTerminalRenderer(opts.Screen, opts.Art),
		machine:  input.NewMachine(),
		recorder: opts.Recorder,
		crash:    opts.CrashHandler,
		layout:   layout,
		cfg: engine.SessionConfig{
			Layout:   layout,
			Rules:    opts.Game.EngineRules(),
			Catalog:  opts.Game.Catalog(),
			Stages:   opts.Game.Stages(),
			Random:   opts.Random,
			Effects:  opts.Effects,
			NewRunID: opts.NewRunID,
		},
	}
}

// Session returns the running match, nil before the start screen is dismissed
func (r *Runner) Session() *engine.Session { return r.session }

// Layout returns the current screen geometry
func (r *Runner) Layout() *engine.Layout { return r.layout }

// Run owns the frame loop until the player quits or ctx ends
func (r *Runner) Run(ctx context.Context) error {
	r.screen.EnableMouse()
	defer r.screen.DisableMouse()

	done := make(chan struct{})
	defer close(done)

	eventChan := make(chan tcell.Event, 256)
	go r.poll(eventChan, done)

	ticker := time.NewTicker(constants.FrameUpdateInterval)
	defer ticker.Stop()

	r.Frame(r.clock.Now())
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-eventChan:
			if r.HandleEvent(ev, r.clock.Now()) {
				return nil
			}
		case <-ticker.C:
			r.Frame(r.clock.Now())
		}
	}
}

// poll forwards terminal events; it exits when the screen is finalized
func (r *Runner) poll(out chan<- tcell.Event, done <-chan struct{}) {
	defer func() {
		if rec := recover(); rec != nil {
			if r.crash != nil {
				r.crash(rec)
				return
			}
			panic(rec)
		}
	}()

	for {
		ev := r.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-done:
			return
		}
	}
}

// HandleEvent applies one terminal event; it returns true when the player quit.
// Run passes a fresh clock sample, so a click can land up to one frame after a deadline
// that the next Frame would have reported; hit tests use the click time.
func (r *Runner) HandleEvent(ev tcell.Event, now time.Time) bool {
	intent := r.machine.Process(ev)
	if intent == nil {
		return false
	}

	switch intent.Type {
	case input.IntentQuit:
		return true

	case input.IntentResize:
		r.resize(intent.W, intent.H)

	case input.IntentStart:
		if r.session == nil {
			r.start(now)
		}

	case input.IntentRetry:
		r.retry(now)

	case input.IntentNavLeft, input.IntentNavRight:
		if r.session != nil && r.session.Terminal() == engine.Playing {
			delta := 1
			if intent.Type == input.IntentNavLeft {
				delta = -1
			}
			r.session.Navigate(delta)
		}

	case input.IntentClick:
		r.click(engine.Pt(intent.X, intent.Y), now)
	}
	return false
}

func (r *Runner) click(p engine.Point, now time.Time) {
	switch {
	case r.session == nil:
		if r.layout.Start.Contains(p) {
			r.start(now)
		}
	case r.session.Terminal().IsOver():
		if r.layout.Retry.Contains(p) {
			r.retry(now)
		}
	default:
		r.session.HandlePoint(p, now)
	}
}

func (r *Runner) start(now time.Time) {
	r.session = engine.NewSession(now, r.cfg)
	r.recorded = false
}

func (r *Runner) retry(now time.Time) {
	if r.session == nil || !r.session.Terminal().IsOver() {
		return
	}
	r.session.Reset(now)
	r.recorded = false
}

// resize rebuilds geometry in place and moves live events onto the new field
func (r *Runner) resize(w, h int) {
	*r.layout = *r.game.Layout(w, h)
	if r.session != nil {
		r.session.Relayout()
	}
	r.machine.Reset()
	r.screen.Sync()
}

// Frame advances the match to now, records a finished run once and draws
func (r *Runner) Frame(now time.Time) {
	if r.session == nil {
		r.renderer.RenderStartScreen(r.layout)
		return
	}

	r.session.Tick(now)
	if r.session.Terminal().IsOver() && !r.recorded {
		r.recorded = true
		r.record(r.session.Summary())
	}
	r.renderer.RenderFrame(r.session.Snapshot(now), r.layout)
}

func (r *Runner) record(sum engine.RunSummary) {
	if r.recorder == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
	defer cancel()

	run := records.Run{
		ID:              sum.RunID,
		StartedAt:       sum.StartedAt,
		Duration:        sum.Duration(),
		Outcome:         sum.Terminal.Cause(),
		HazardsCleared:  sum.HazardsCleared,
		ChoresCompleted: sum.ChoresCompleted,
	}
	if err := r.recorder.Record(ctx, run); err != nil {
		log.Printf("[game] record run %s: %v", run.ID, err)
	}
}
