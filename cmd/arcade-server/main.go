// Command arcade-server runs an autopiloted defense and serves it to spectators
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/lixenwraith/arcade/config"
	"github.com/lixenwraith/arcade/core"
	"github.com/lixenwraith/arcade/engine"
	"github.com/lixenwraith/arcade/scoreboard"
	"github.com/lixenwraith/arcade/session"
	"github.com/lixenwraith/arcade/spectate"
	"github.com/lixenwraith/arcade/status"
)

var (
	envFlag      = flag.String("env", "", "Dotenv file with ARCADE_* overrides (default .env if present)")
	listenFlag   = flag.String("listen", "", "Listen address (overrides ARCADE_LISTEN)")
	publishEvery = flag.Int("publish-every", 2, "Publish a frame every N ticks")
	placeEvery   = flag.Int("place-every", 30, "Autopilot decision interval in ticks")
	crowdFlag    = flag.Int("crowd", 12, "Virus count at which the autopilot uses medicine (0 disables)")
	noScores     = flag.Bool("no-scores", false, "Run without the scoreboard database")
	quietFlag    = flag.Bool("quiet", false, "Disable the HTTP access log")
)

func main() {
	defer core.Recover()
	flag.Parse()
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds)

	if err := run(); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "arcade-server: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*envFlag)
	if err != nil {
		return err
	}
	addr := cfg.Listen
	if *listenFlag != "" {
		addr = *listenFlag
	}

	registry := status.NewRegistry()
	sess, err := session.New(session.KindDefense, session.Options{
		Tuning:   cfg.Defense,
		Seed:     cfg.Seed,
		Registry: registry,
		Logger:   log.Default(),
	})
	if err != nil {
		return err
	}

	srvCfg := spectate.Config{Registry: registry}
	if !*quietFlag {
		srvCfg.AccessLog = os.Stderr
	}
	h := &host{
		sess:         sess,
		pilot:        newAutopilot(*placeEvery, *crowdFlag),
		publishEvery: *publishEvery,
		restartAfter: 3 * engine.TickRate,
	}
	if !*noScores {
		store, err := scoreboard.Open(cfg.DBDriver, cfg.DBDSN)
		if err != nil {
			return err
		}
		defer store.Close()
		srvCfg.Scores = store
		h.store = store
	}

	srv := spectate.NewServer(srvCfg)
	h.pub = srv

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	listenErr := make(chan error, 1)
	core.Go(func() {
		log.Printf("spectator server listening on %s", addr)
		listenErr <- srv.Listen(addr)
	})

	loopErr := make(chan error, 1)
	core.Go(func() {
		loopErr <- engine.NewLoop[struct{}](engine.TickInterval, nil, nil, h.tick).Run(ctx)
	})

	select {
	case err = <-listenErr:
		stop()
		<-loopErr
	case err = <-loopErr:
	}

	if shutdownErr := srv.Shutdown(); shutdownErr != nil {
		log.Printf("shutdown: %v", shutdownErr)
	}
	log.Printf("stopped after %d ticks", h.ticks)
	return err
}
