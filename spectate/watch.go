package spectate

import (
	"context"
	"errors"
	"fmt"

	"github.com/gorilla/websocket"
)

// Watch connects to a spectator feed and calls fn for each frame
// It returns nil when ctx is cancelled, or the first dial, read, decode or fn error
func Watch(ctx context.Context, url string, fn func(Frame) error) error {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return fmt.Errorf("dial %s: %w", url, err)
	}
	defer conn.Close()

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			_ = conn.Close()
		case <-stop:
		}
	}()

	for {
		msgType, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil || websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			return fmt.Errorf("read frame: %w", err)
		}
		if msgType != websocket.BinaryMessage {
			continue
		}

		frame, err := Decode(data)
		if err != nil {
			return err
		}
		if err := fn(frame); err != nil {
			if errors.Is(err, ErrStopWatching) {
				return nil
			}
			return err
		}
	}
}

// ErrStopWatching may be returned by a Watch callback to end the session cleanly
var ErrStopWatching = errors.New("stop watching")
