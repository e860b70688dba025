// Command arcade plays the games in a terminal
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/arcade/audio"
	"github.com/lixenwraith/arcade/config"
	"github.com/lixenwraith/arcade/core"
	"github.com/lixenwraith/arcade/engine"
	"github.com/lixenwraith/arcade/scoreboard"
	"github.com/lixenwraith/arcade/session"
	"github.com/lixenwraith/arcade/status"
)

var (
	gameFlag   = flag.String("game", "defense", "Game to play: defense, shooter, catcher")
	debugFlag  = flag.Bool("debug", false, "Write a debug log under the log directory")
	envFlag    = flag.String("env", "", "Dotenv file with ARCADE_* overrides (default .env if present)")
	muteFlag   = flag.Bool("mute", false, "Disable sound")
	recordFlag = flag.Bool("record", false, "Store finished rounds in the scoreboard database")
)

// logDir is where setupLogging writes; overridden by ARCADE_LOG_DIR
var logDir = "logs"

func setupLogging(debug bool) *os.File {
	return core.SetupLogging(logDir, debug)
}

func main() {
	defer core.Recover()
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "arcade: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*envFlag)
	if err != nil {
		return err
	}
	kind, err := session.ParseKind(*gameFlag)
	if err != nil {
		return err
	}

	logDir = cfg.LogDir
	if f := setupLogging(*debugFlag); f != nil {
		defer f.Close()
	}

	sess, err := session.New(kind, session.Options{
		Tuning:   cfg.Defense,
		Seed:     cfg.Seed,
		Registry: status.NewRegistry(),
		Logger:   log.Default(),
	})
	if err != nil {
		return err
	}

	var store resultRecorder
	if *recordFlag {
		s, err := scoreboard.Open(cfg.DBDriver, cfg.DBDSN)
		if err != nil {
			return err
		}
		defer s.Close()
		store = s
	}

	sound := audio.NewSoundManager()
	if !*muteFlag {
		if err := sound.Initialize(); err != nil {
			// Non-fatal, the game runs silently
			log.Printf("audio initialization failed: %v", err)
		}
	}
	defer sound.Cleanup()
	core.RegisterCleanup(sound.Cleanup)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	core.RegisterCleanup(screen.Fini)
	screen.EnableMouse()
	screen.HideCursor()

	game := newTerminalGame(screen, sess, sound, store)
	return runLoop(context.Background(), screen, game)
}

// runLoop polls the screen on its own goroutine and drives the game at the fixed tick rate
func runLoop(ctx context.Context, screen tcell.Screen, game *terminalGame) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, 256)
	core.Go(func() {
		defer close(events)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	})

	loop := engine.NewLoop(engine.TickInterval, events, game.handleEvent, game.tick)
	game.draw()
	err := loop.Run(ctx)
	log.Printf("loop stopped after %d ticks", loop.Ticks())
	if err == context.Canceled {
		return nil
	}
	return err
}
