package container_test

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"github.com/km-arc/go-ioc/framework/container"
)

// TestLogging_ObservedEntries asserts on the actual log content emitted
// during registration and a failed resolve, using zap's observer core —
// the idiomatic way to make assertions about what a zap logger wrote.
func TestLogging_ObservedEntries(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	c := container.New(container.WithLogger(zap.New(core)))

	c.Bind("svc", func() any { return "value" })

	if _, err := c.Get("missing"); err == nil {
		t.Fatal("expected an unregistered-service error")
	}

	var sawRegister, sawWarnFailure bool
	for _, e := range logs.All() {
		switch {
		case e.Level == zap.DebugLevel && e.Message == "container: registered":
			sawRegister = true
		case e.Level == zap.WarnLevel && e.Message == "container: resolve failed":
			sawWarnFailure = true
		}
	}

	if !sawRegister {
		t.Error("expected a debug log entry for registration")
	}
	if !sawWarnFailure {
		t.Error("expected a warn log entry for the failed resolve")
	}
}

// TestLogging_ZaptestLoggerDoesNotPanic exercises container.WithLogger with
// a real zaptest logger the way a host test would wire it, without
// asserting on captured output.
func TestLogging_ZaptestLoggerDoesNotPanic(t *testing.T) {
	c := container.New(container.WithLogger(zaptest.NewLogger(t)))
	c.Singleton("config", func() any { return "cfg" })

	if _, err := c.Get("config"); err != nil {
		t.Fatalf("Get(config): %v", err)
	}
	if err := c.Dispose(); err != nil {
		t.Fatalf("Dispose: %v", err)
	}
}
