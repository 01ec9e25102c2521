package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"lifebox/internal/config"
	"lifebox/internal/sandbox"
)

// isolate points the config search path at empty directories so a user or
// project config on the machine cannot leak into the test.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
}

func TestResolveSpeedPrecedence(t *testing.T) {
	logger := log.New(io.Discard)
	cfg := config.Default()
	cfg.Speed = 250

	got, err := resolveSpeed(&Flags{Speed: 40}, cfg, logger, os.Stdin)
	if err != nil || got != 40 {
		t.Fatalf("flag speed = %d, %v; expected 40", got, err)
	}
	got, err = resolveSpeed(&Flags{}, cfg, logger, os.Stdin)
	if err != nil || got != 250 {
		t.Fatalf("config speed = %d, %v; expected 250", got, err)
	}
	if _, err := resolveSpeed(&Flags{Speed: -1}, cfg, logger, os.Stdin); err == nil {
		t.Fatal("negative flag speed accepted")
	}
}

func TestResolveSpeedFromPipedInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stdin")
	if err := os.WriteFile(path, []byte("abc\n-2\n75\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	in, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer in.Close()

	got, err := resolveSpeed(&Flags{}, config.Default(), log.New(io.Discard), in)
	if err != nil || got != 75 {
		t.Fatalf("piped speed = %d, %v; expected 75", got, err)
	}
}

func TestResolveSpeedEmptyInput(t *testing.T) {
	in, err := os.Open(os.DevNull)
	if err != nil {
		t.Fatal(err)
	}
	defer in.Close()
	if _, err := resolveSpeed(&Flags{}, config.Default(), log.New(io.Discard), in); err == nil || !strings.Contains(err.Error(), "--speed") {
		t.Fatalf("expected a hint about --speed, got %v", err)
	}
}

func TestNewSessionStampsPattern(t *testing.T) {
	isolate(t)
	s, err := newSession(&Flags{Speed: 50, Pattern: "glider", Seed: 7, LogLevel: "error"}, windowScale)
	if err != nil {
		t.Fatalf("newSession: %v", err)
	}
	defer s.Close()
	if s.sb.Population() != 5 {
		t.Fatalf("population = %d, expected a glider", s.sb.Population())
	}
	if s.sb.Speed().Milliseconds() != 50 {
		t.Fatalf("speed = %v", s.sb.Speed())
	}
}

func TestNewSessionScales(t *testing.T) {
	isolate(t)
	tests := []struct {
		name     string
		scale    scaleFunc
		wantZoom float64
		wantMin  float64
	}{
		{"window", windowScale, 10, 1.5},
		{"terminal", terminalScale, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := newSession(&Flags{Speed: 50, LogLevel: "error"}, tt.scale)
			if err != nil {
				t.Fatalf("newSession: %v", err)
			}
			defer s.Close()
			if s.sb.Zoom() != tt.wantZoom {
				t.Fatalf("zoom = %g, expected %g", s.sb.Zoom(), tt.wantZoom)
			}
			for range 40 {
				s.sb.KeyPressed(sandbox.KeyZoomOut, false, time.Time{})
			}
			if s.sb.Zoom() != tt.wantMin {
				t.Fatalf("zoom floor = %g, expected %g", s.sb.Zoom(), tt.wantMin)
			}
		})
	}
}

func TestNewSessionErrors(t *testing.T) {
	isolate(t)
	if _, err := newSession(&Flags{Speed: 50, Pattern: "nope", LogLevel: "info"}, windowScale); err == nil || !strings.Contains(err.Error(), "unknown pattern") {
		t.Fatalf("expected unknown pattern error, got %v", err)
	}
	if _, err := newSession(&Flags{Speed: 50, LogLevel: "loud"}, windowScale); err == nil {
		t.Fatal("invalid log level accepted")
	}
}
