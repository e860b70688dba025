package spectate

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lixenwraith/arcade/defense"
	"github.com/lixenwraith/arcade/scoreboard"
)

func sampleSnapshot() defense.Snapshot {
	return defense.Snapshot{
		Elapsed:     42.5,
		Wave:        2,
		Score:       30,
		HeartHealth: 9,
		Energy:      55,
		Viruses: []defense.VirusView{
			{Point: defense.Point{X: 120, Y: -40}, Corner: 1, Seeking: true},
		},
		Cells: []defense.CellView{
			{Point: defense.Point{X: 10, Y: 20}, Kills: 2, Cap: 5, Active: true},
		},
		Marker: &defense.Point{X: 3, Y: 4},
	}
}

func TestFrameEncodeDecode(t *testing.T) {
	in := Frame{Seq: 7, Game: "defense", RunID: "run-1", Snapshot: sampleSnapshot()}
	data, err := Encode(&in)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	out, err := Decode(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Seq != 7 || out.Game != "defense" || out.RunID != "run-1" {
		t.Errorf("header mismatch: %+v", out)
	}
	if len(out.Snapshot.Viruses) != 1 || out.Snapshot.Viruses[0].X != 120 || !out.Snapshot.Viruses[0].Seeking {
		t.Errorf("virus view not preserved: %+v", out.Snapshot.Viruses)
	}
	if out.Snapshot.Marker == nil || out.Snapshot.Marker.Y != 4 {
		t.Errorf("marker not preserved: %+v", out.Snapshot.Marker)
	}

	if _, err := Decode([]byte{0xc1}); err == nil {
		t.Error("expected error for invalid payload")
	}
}

func TestHubDropsSlowSubscriber(t *testing.T) {
	h := NewHub(1)
	fast := h.Subscribe()
	slow := h.Subscribe()

	if n := h.Broadcast([]byte("a")); n != 2 {
		t.Fatalf("expected 2 deliveries, got %d", n)
	}
	<-fast.C()

	if n := h.Broadcast([]byte("b")); n != 1 {
		t.Fatalf("expected 1 delivery, got %d", n)
	}
	if h.Count() != 1 || h.Dropped() != 1 {
		t.Errorf("expected slow subscriber dropped, count=%d dropped=%d", h.Count(), h.Dropped())
	}

	// Dropped subscriber drains its buffered frame then sees the close
	if got := <-slow.C(); string(got) != "a" {
		t.Errorf("expected buffered frame, got %q", got)
	}
	if _, ok := <-slow.C(); ok {
		t.Error("expected closed channel")
	}
	h.Unsubscribe(slow)

	h.Close()
	<-fast.C()
	if _, ok := <-fast.C(); ok {
		t.Error("expected Close to close subscribers")
	}
}

type fakeScores struct {
	game  string
	limit int
	err   error
}

func (f *fakeScores) Top(_ context.Context, game string, limit int) ([]scoreboard.Result, error) {
	f.game, f.limit = game, limit
	if f.err != nil {
		return nil, f.err
	}
	return []scoreboard.Result{{ID: "x", Game: game, Score: 99}}, nil
}

func get(t *testing.T, s *Server, path string) (int, string) {
	t.Helper()
	resp, err := s.App().Test(httptest.NewRequest(http.MethodGet, path, nil))
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body)
}

func TestServerEndpoints(t *testing.T) {
	scores := &fakeScores{}
	s := NewServer(Config{Scores: scores})

	code, body := get(t, s, "/api/health")
	if code != http.StatusOK || !strings.Contains(body, `"status":"OK"`) {
		t.Errorf("health: %d %s", code, body)
	}

	if code, _ := get(t, s, "/api/state"); code != http.StatusServiceUnavailable {
		t.Errorf("state before publish: expected 503, got %d", code)
	}

	if err := s.Publish("defense", "run-1", sampleSnapshot()); err != nil {
		t.Fatalf("publish: %v", err)
	}
	code, body = get(t, s, "/api/state")
	if code != http.StatusOK {
		t.Fatalf("state: %d", code)
	}
	var snap defense.Snapshot
	if err := json.Unmarshal([]byte(body), &snap); err != nil {
		t.Fatalf("state json: %v", err)
	}
	if snap.Wave != 2 || snap.Score != 30 {
		t.Errorf("unexpected state %+v", snap)
	}

	code, body = get(t, s, "/api/status")
	if code != http.StatusOK || !strings.Contains(body, `"spectate.frames":1`) {
		t.Errorf("status: %d %s", code, body)
	}

	code, body = get(t, s, "/api/scores?game=catcher&limit=3")
	if code != http.StatusOK || !strings.Contains(body, `"score":99`) {
		t.Errorf("scores: %d %s", code, body)
	}
	if scores.game != "catcher" || scores.limit != 3 {
		t.Errorf("query not forwarded: %s %d", scores.game, scores.limit)
	}

	scores.err = errors.New("db down")
	if code, _ := get(t, s, "/api/scores"); code != http.StatusInternalServerError {
		t.Errorf("failing scores: expected 500, got %d", code)
	}

	if code, _ := get(t, s, "/ws/spectate"); code != http.StatusUpgradeRequired {
		t.Errorf("plain GET on websocket route: expected 426, got %d", code)
	}
}

func TestScoresDisabled(t *testing.T) {
	s := NewServer(Config{})
	if code, _ := get(t, s, "/api/scores"); code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", code)
	}
}

func TestWatchDecodesFrames(t *testing.T) {
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		for seq := uint64(1); seq <= 2; seq++ {
			data, _ := Encode(&Frame{Seq: seq, Game: "defense", Snapshot: sampleSnapshot()})
			_ = conn.WriteMessage(websocket.TextMessage, []byte("ignored"))
			_ = conn.WriteMessage(websocket.BinaryMessage, data)
		}
		_ = conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, "done"))
		_, _, _ = conn.ReadMessage()
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var seqs []uint64
	err := Watch(ctx, "ws"+strings.TrimPrefix(srv.URL, "http"), func(f Frame) error {
		seqs = append(seqs, f.Seq)
		return nil
	})
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	if len(seqs) != 2 || seqs[0] != 1 || seqs[1] != 2 {
		t.Errorf("unexpected frames %v", seqs)
	}
}

func TestWatchDialError(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := Watch(ctx, "ws://127.0.0.1:1/ws/spectate", func(Frame) error { return nil }); err == nil {
		t.Error("expected dial error")
	}
}

func TestServerStreamsToWatcher(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	s := NewServer(Config{})
	go func() { _ = s.Serve(ln) }()
	defer func() { _ = s.Shutdown() }()

	if err := s.Publish("defense", "run-7", sampleSnapshot()); err != nil {
		t.Fatalf("publish: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var got Frame
	err = Watch(ctx, "ws://"+ln.Addr().String()+"/ws/spectate", func(f Frame) error {
		got = f
		return ErrStopWatching
	})
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	if got.Seq != 1 || got.RunID != "run-7" || got.Snapshot.Energy != 55 {
		t.Errorf("unexpected frame %+v", got)
	}
}
