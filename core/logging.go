package core

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

const (
	// LogFileName is the active log inside the log directory
	LogFileName = "arcade.log"

	// MaxLogSize triggers rotation of the active log at startup
	MaxLogSize = 10 * 1024 * 1024
)

// SetupLogging points the standard logger at dir/LogFileName when debug is set
// Without debug, or when the file cannot be opened, output is discarded and nil returned
// The terminal UI owns stdout and stderr, so logs never go there
func SetupLogging(dir string, debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	path := filepath.Join(dir, LogFileName)
	if info, err := os.Stat(path); err == nil && info.Size() > MaxLogSize {
		rotated := filepath.Join(dir, fmt.Sprintf("arcade-%s.log", time.Now().Format("20060102-150405")))
		_ = os.Rename(path, rotated)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds)
	log.Printf("logging started, pid %d", os.Getpid())
	return f
}
