package spectate

import (
	"context"
	"io"
	"log"
	"net"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/websocket/v2"

	"github.com/lixenwraith/arcade/defense"
	"github.com/lixenwraith/arcade/scoreboard"
	"github.com/lixenwraith/arcade/status"
)

// ScoreSource is the read side of the scoreboard
type ScoreSource interface {
	Top(ctx context.Context, game string, limit int) ([]scoreboard.Result, error)
}

// Config wires optional collaborators into the server
type Config struct {
	Registry *status.Registry
	Scores   ScoreSource
	// AccessLog receives one line per request; nil disables request logging
	AccessLog io.Writer
	// AllowOrigins is the CORS origin list, "*" when empty
	AllowOrigins string
	// SubscriberBuffer bounds how far a spectator may lag
	SubscriberBuffer int
}

// Server publishes the running game over HTTP and websocket
type Server struct {
	app      *fiber.App
	hub      *Hub
	registry *status.Registry
	scores   ScoreSource

	mu        sync.RWMutex
	seq       uint64
	latest    *defense.Snapshot
	lastFrame []byte
}

// NewServer builds the fiber app and routes
func NewServer(cfg Config) *Server {
	s := &Server{
		hub:      NewHub(cfg.SubscriberBuffer),
		registry: cfg.Registry,
		scores:   cfg.Scores,
	}
	if s.registry == nil {
		s.registry = status.NewRegistry()
	}

	app := fiber.New(fiber.Config{
		AppName:               "arcade",
		DisableStartupMessage: true,
	})

	if cfg.AccessLog != nil {
		app.Use(logger.New(logger.Config{Output: cfg.AccessLog}))
	}
	origins := cfg.AllowOrigins
	if origins == "" {
		origins = "*"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, OPTIONS",
	}))

	api := app.Group("/api")
	api.Get("/health", s.handleHealth)
	api.Get("/status", s.handleStatus)
	api.Get("/state", s.handleState)
	api.Get("/scores", s.handleScores)

	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/spectate", websocket.New(s.handleSpectator))

	s.app = app
	return s
}

// App exposes the fiber app for tests and embedding
func (s *Server) App() *fiber.App { return s.app }

// Hub returns the spectator hub
func (s *Server) Hub() *Hub { return s.hub }

// Listen serves on addr until Shutdown
func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}

// Serve serves on an existing listener until Shutdown
func (s *Server) Serve(ln net.Listener) error {
	return s.app.Listener(ln)
}

// Shutdown disconnects spectators and stops the HTTP server
func (s *Server) Shutdown() error {
	s.hub.Close()
	return s.app.Shutdown()
}

// Publish records snap as the latest state and broadcasts it to spectators
// Called from the game loop once per published tick
func (s *Server) Publish(game, runID string, snap defense.Snapshot) error {
	s.mu.Lock()
	s.seq++
	f := Frame{Seq: s.seq, Game: game, RunID: runID, Snapshot: snap}
	data, err := Encode(&f)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.latest = &f.Snapshot
	s.lastFrame = data
	s.mu.Unlock()

	s.hub.Broadcast(data)
	rec := s.registry.Recorder("spectate")
	rec.Int("frames", int64(f.Seq))
	rec.Int("spectators", int64(s.hub.Count()))
	rec.Int("dropped", int64(s.hub.Dropped()))
	return nil
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":     "OK",
		"spectators": s.hub.Count(),
		"time":       time.Now().Format(time.RFC3339),
	})
}

func (s *Server) handleStatus(c *fiber.Ctx) error {
	return c.JSON(s.registry.Export())
}

func (s *Server) handleState(c *fiber.Ctx) error {
	s.mu.RLock()
	snap := s.latest
	s.mu.RUnlock()
	if snap == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "no game running")
	}
	return c.JSON(snap)
}

func (s *Server) handleScores(c *fiber.Ctx) error {
	if s.scores == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "scoreboard disabled")
	}
	game := c.Query("game", "defense")
	limit := c.QueryInt("limit", scoreboard.DefaultLimit)

	results, err := s.scores.Top(c.UserContext(), game, limit)
	if err != nil {
		log.Printf("scores query failed: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "scores unavailable")
	}
	if results == nil {
		results = []scoreboard.Result{}
	}
	return c.JSON(results)
}

// handleSpectator pumps hub frames to one websocket until either side closes
func (s *Server) handleSpectator(conn *websocket.Conn) {
	sub := s.hub.Subscribe()
	defer s.hub.Unsubscribe(sub)
	log.Printf("spectator %s connected from %s", sub.ID, conn.RemoteAddr())
	defer log.Printf("spectator %s disconnected", sub.ID)

	s.mu.RLock()
	first := s.lastFrame
	s.mu.RUnlock()
	if first != nil {
		if err := conn.WriteMessage(websocket.BinaryMessage, first); err != nil {
			return
		}
	}

	// Spectators never send; reading only detects the close
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-done:
			return
		case data, ok := <-sub.C():
			if !ok {
				return
			}
			if err := conn.WriteMessage(websocket.BinaryMessage, data); err != nil {
				return
			}
		}
	}
}
