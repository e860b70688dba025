// Command arcade-desktop plays the games in an ebiten window
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/lixenwraith/arcade/audio"
	"github.com/lixenwraith/arcade/config"
	"github.com/lixenwraith/arcade/core"
	"github.com/lixenwraith/arcade/desktop"
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

func main() {
	defer core.Recover()
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "arcade-desktop: %v\n", err)
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
	if f := core.SetupLogging(cfg.LogDir, *debugFlag); f != nil {
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

	opts := desktop.Options{}
	if *recordFlag {
		store, err := scoreboard.Open(cfg.DBDriver, cfg.DBDSN)
		if err != nil {
			return err
		}
		defer store.Close()
		opts.OnOver = func(r scoreboard.Result) {
			if _, err := store.Record(context.Background(), r); err != nil {
				log.Printf("record %s result: %v", r.Game, err)
			}
		}
	}

	if !*muteFlag {
		sound := audio.NewSoundManager()
		if err := sound.Initialize(); err != nil {
			log.Printf("audio initialization failed: %v", err)
		}
		defer sound.Cleanup()
		core.RegisterCleanup(sound.Cleanup)
		opts.Sound = sound
	}

	return desktop.Run(desktop.NewGame(sess, opts))
}
