package core

import (
	"bytes"
	"strings"
	"sync"
	"testing"
)

func captureCrash(t *testing.T) (*bytes.Buffer, *int) {
	t.Helper()
	var out bytes.Buffer
	code := -1
	prevOut, prevExit := crashOutput, exitFunc
	crashOutput = &out
	exitFunc = func(c int) { code = c }
	t.Cleanup(func() {
		crashOutput, exitFunc = prevOut, prevExit
		SetCrashHandler(nil)
		crashMu.Lock()
		crashCleanups = nil
		crashMu.Unlock()
	})
	return &out, &code
}

func TestHandleCrashRunsCleanupsInReverse(t *testing.T) {
	out, code := captureCrash(t)

	var order []string
	RegisterCleanup(func() { order = append(order, "screen") })
	RegisterCleanup(func() { panic("broken cleanup") })
	RegisterCleanup(func() { order = append(order, "audio") })

	HandleCrash("boom")

	if strings.Join(order, ",") != "audio,screen" {
		t.Errorf("unexpected cleanup order %v", order)
	}
	if *code != 1 {
		t.Errorf("expected exit code 1, got %d", *code)
	}
	if !strings.Contains(out.String(), "CRASH DETECTED: boom") {
		t.Errorf("report missing from output: %q", out.String())
	}
}

func TestHandleCrashNilIsNoop(t *testing.T) {
	out, code := captureCrash(t)
	HandleCrash(nil)
	if *code != -1 || out.Len() != 0 {
		t.Error("nil panic value should be ignored")
	}
}

func TestGoRecoversIntoHandler(t *testing.T) {
	_, code := captureCrash(t)

	var wg sync.WaitGroup
	wg.Add(1)
	var got any
	SetCrashHandler(func(r any, stack []byte) {
		got = r
		if len(stack) == 0 {
			t.Error("expected a stack trace")
		}
		wg.Done()
	})

	Go(func() { panic("worker failed") })
	wg.Wait()

	if got != "worker failed" {
		t.Errorf("handler got %v", got)
	}
	if *code != 1 {
		t.Errorf("expected exit code 1, got %d", *code)
	}
}
