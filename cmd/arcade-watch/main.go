// Command arcade-watch follows a running arcade-server from the terminal
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/lixenwraith/arcade/spectate"
)

var (
	urlFlag   = flag.String("url", "ws://localhost:8080/ws/spectate", "Spectator websocket URL")
	countFlag = flag.Int("n", 0, "Stop after N frames (0 follows until interrupted)")
)

func main() {
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := watch(ctx, *urlFlag, *countFlag, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "arcade-watch: %v\n", err)
		os.Exit(1)
	}
}

func watch(ctx context.Context, url string, limit int, out io.Writer) error {
	seen := 0
	err := spectate.Watch(ctx, url, func(f spectate.Frame) error {
		fmt.Fprintln(out, statusLine(f))
		seen++
		if limit > 0 && seen >= limit {
			return spectate.ErrStopWatching
		}
		return nil
	})
	if ctx.Err() != nil {
		return nil
	}
	return err
}

// statusLine summarizes one frame
func statusLine(f spectate.Frame) string {
	s := f.Snapshot
	state := "running"
	switch {
	case s.Over && s.Won:
		state = "won"
	case s.Over:
		state = "lost"
	case s.Paused:
		state = "paused"
	}
	return fmt.Sprintf("#%d %s wave=%d time=%.1f score=%d heart=%d energy=%d viruses=%d cells=%d %s",
		f.Seq, f.Game, s.Wave, s.TimeLeft, s.Score, s.HeartHealth, s.Energy, len(s.Viruses), len(s.Cells), state)
}
