// Package spectate streams live defense snapshots to remote watchers
//
// The server side is a fiber app with a websocket feed; the client side is a
// plain gorilla websocket reader. Frames travel as msgpack.
package spectate

import (
	"bytes"
	"fmt"

	"github.com/lixenwraith/arcade/defense"
	"github.com/vmihailenco/msgpack/v5"
)

// Frame is one published snapshot
type Frame struct {
	Seq      uint64           `json:"seq"`
	Game     string           `json:"game"`
	RunID    string           `json:"run_id"`
	Snapshot defense.Snapshot `json:"snapshot"`
}

// Encode serializes f reusing the json field names as msgpack keys
func Encode(f *Frame) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetCustomStructTag("json")
	if err := enc.Encode(f); err != nil {
		return nil, fmt.Errorf("encode frame %d: %w", f.Seq, err)
	}
	return buf.Bytes(), nil
}

// Decode parses a frame produced by Encode
func Decode(data []byte) (Frame, error) {
	var f Frame
	dec := msgpack.NewDecoder(bytes.NewReader(data))
	dec.SetCustomStructTag("json")
	if err := dec.Decode(&f); err != nil {
		return Frame{}, fmt.Errorf("decode frame: %w", err)
	}
	return f, nil
}
