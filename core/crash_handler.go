// Package core holds process-wide crash handling and log setup for the commands
package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"
)

var (
	crashMu       sync.Mutex
	crashCleanups []func()
	crashHandler  func(r any, stack []byte)

	// Overridden in tests
	crashOutput io.Writer = os.Stderr
	exitFunc              = os.Exit
)

// RegisterCleanup adds fn to run before a crash report, newest first
// Commands register tcell Fini, speaker cleanup and window teardown here
func RegisterCleanup(fn func()) {
	crashMu.Lock()
	defer crashMu.Unlock()
	crashCleanups = append(crashCleanups, fn)
}

// SetCrashHandler replaces the default stderr report; nil restores the default
func SetCrashHandler(h func(r any, stack []byte)) {
	crashMu.Lock()
	defer crashMu.Unlock()
	crashHandler = h
}

// HandleCrash restores the terminal, reports the panic and exits
func HandleCrash(r any) {
	if r == nil {
		return
	}
	stack := debug.Stack()

	crashMu.Lock()
	cleanups := crashCleanups
	crashCleanups = nil
	handler := crashHandler
	crashMu.Unlock()

	for i := len(cleanups) - 1; i >= 0; i-- {
		runCleanup(cleanups[i])
	}

	if handler != nil {
		handler(r, stack)
	} else {
		fmt.Fprintf(crashOutput, "\n\x1b[31mCRASH DETECTED: %v\x1b[0m\n", r)
		fmt.Fprintf(crashOutput, "Stack Trace:\n%s\n", stack)
	}
	exitFunc(1)
}

// runCleanup isolates a failing cleanup so the report still prints
func runCleanup(fn func()) {
	defer func() { _ = recover() }()
	fn()
}

// Recover is deferred at the top of main and of long-lived goroutines
func Recover() {
	if r := recover(); r != nil {
		HandleCrash(r)
	}
}

// Go runs a function in a new goroutine with panic recovery
// Use this instead of the 'go' keyword so the terminal is restored on crash
func Go(fn func()) {
	go func() {
		defer Recover()
		fn()
	}()
}
