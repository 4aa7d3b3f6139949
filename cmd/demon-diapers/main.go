package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/demon-diapers/audio"
	"github.com/lixenwraith/demon-diapers/config"
	"github.com/lixenwraith/demon-diapers/engine"
	"github.com/lixenwraith/demon-diapers/game"
	"github.com/lixenwraith/demon-diapers/records"
	"github.com/lixenwraith/demon-diapers/render"
)

var (
	debugFlag   = flag.Bool("debug", false, "Write debug logs to logs/demon-diapers.log")
	gameFlag    = flag.String("game", "", "Game file (YAML); built-in rules when empty")
	artFlag     = flag.String("art", "", "Directory with <room>.txt and <room>_haunted.txt backgrounds")
	historyFlag = flag.Int("history", 0, "Print the N most recent runs and exit")
	seedFlag    = flag.Int64("seed", 0, "Random seed; 0 seeds from the clock")
)

func main() {
	os.Exit(run())
}

func run() int {
	flag.Parse()

	settings, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid settings: %v\n", err)
		return 1
	}
	applyFlags(settings)

	if logFile := setupLogging(settings.Debug); logFile != nil {
		defer logFile.Close()
	}

	if *historyFlag > 0 {
		if err := printHistory(os.Stdout, settings.DBPath, *historyFlag, time.Now()); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to read history: %v\n", err)
			return 1
		}
		return 0
	}

	gameFile, err := config.Load(settings.GameFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load game file: %v\n", err)
		return 1
	}

	// History is optional; the game runs without it
	var recorder game.Recorder
	if store, err := records.Open(settings.DBPath); err != nil {
		log.Printf("[main] run history disabled: %v", err)
	} else {
		defer store.Close()
		recorder = store
	}

	sound := audio.NewSoundManager(audio.Config{
		Enabled:      settings.AudioEnabled,
		SampleRate:   settings.SampleRate,
		MasterVolume: settings.MasterVolume,
	})
	if err := sound.Initialize(); err != nil {
		// Non-fatal, game can run without sound
		log.Printf("[main] audio initialization failed: %v", err)
	}
	defer sound.Cleanup()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}

	crash := func(r any) {
		// Restore terminal to sane state before printing
		screen.Fini()
		fmt.Fprintf(os.Stderr, "\n\x1b[31mDEMON DIAPERS CRASHED: %v\x1b[0m\n", r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
		os.Exit(1)
	}
	defer func() {
		if r := recover(); r != nil {
			crash(r)
		}
	}()
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := game.NewRunner(game.Options{
		Screen:       screen,
		Game:         gameFile,
		Art:          render.LoadArt(settings.ArtDir, gameFile.Catalog()...),
		Effects:      sound,
		Random:       engine.NewRandomSource(settings.Seed),
		Recorder:     recorder,
		CrashHandler: crash,
	})

	if err := runner.Run(ctx); err != nil && ctx.Err() == nil {
		log.Printf("[main] runner stopped: %v", err)
	}
	return 0
}

// applyFlags lets explicit flags override environment settings
func applyFlags(s *config.Settings) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "debug":
			s.Debug = *debugFlag
		case "game":
			s.GameFile = *gameFlag
		case "art":
			s.ArtDir = *artFlag
		case "seed":
			s.Seed = *seedFlag
		}
	})
}

// printHistory writes the n most recent runs, newest first
func printHistory(w io.Writer, dbPath string, n int, now time.Time) error {
	store, err := records.Open(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	runs, err := store.Recent(ctx, n)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded yet")
		return nil
	}
	for _, r := range runs {
		fmt.Fprintln(w, records.FormatRun(r, now))
	}
	return nil
}
