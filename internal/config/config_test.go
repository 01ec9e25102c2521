package config

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("embedded default invalid: %v", err)
	}
	if cfg.View.ZoomStep != 0.5 || cfg.View.MinZoom != 1.5 || cfg.View.TUIMinZoom != 1 {
		t.Fatalf("unexpected zoom defaults %+v", cfg.View)
	}
	if cfg.Input.MarkerRepeatMS != 100 {
		t.Fatalf("marker repeat = %d, expected 100", cfg.Input.MarkerRepeatMS)
	}
	if len(cfg.Keys.Copy) == 0 || cfg.Keys.Copy[0] != "ctrl+c" {
		t.Fatalf("copy binding = %v", cfg.Keys.Copy)
	}
}

func TestLoadOverlaysCustomFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "speed: 250\nview:\n  zoom: 4\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Speed != 250 || cfg.View.Zoom != 4 {
		t.Fatalf("overrides not applied: speed=%d zoom=%g", cfg.Speed, cfg.View.Zoom)
	}
	if cfg.View.ZoomStep != 0.5 {
		t.Fatalf("untouched field lost its default: %g", cfg.View.ZoomStep)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatal("missing custom file must fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("view: [not, a, map]"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil || !strings.Contains(err.Error(), "failed to parse") {
		t.Fatalf("expected parse error, got %v", err)
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("view:\n  zoom: 0.5\ncolors:\n  live: nope\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := Load(invalid)
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"view.zoom", "colors.live"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{in: "#ff0080", want: color.RGBA{R: 0xff, G: 0x00, B: 0x80, A: 0xff}},
		{in: "10203040", want: color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40}},
		{in: "#fff", wantErr: true},
		{in: "#gggggg", wantErr: true},
	}
	for _, tc := range tests {
		got, err := ParseHex(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseHex(%q) error = %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseHex(%q) = %v, expected %v", tc.in, got, tc.want)
		}
	}
}
