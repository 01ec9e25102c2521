package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"lifebox/internal/config"
	"lifebox/internal/sandbox"
)

// KeyMap binds terminal keys to sandbox key roles.
type KeyMap struct {
	PanLeft      key.Binding
	PanRight     key.Binding
	PanUp        key.Binding
	PanDown      key.Binding
	ToggleRun    key.Binding
	ToggleMarker key.Binding
	MarkerAction key.Binding
	ZoomIn       key.Binding
	ZoomOut      key.Binding
	Copy         key.Binding
	Paste        key.Binding
	Step         key.Binding
	Scatter      key.Binding
	Clear        key.Binding
	NextPattern  key.Binding
	Help         key.Binding
	Quit         key.Binding
}

// NewKeyMap builds the bindings from the configured key names.
func NewKeyMap(k config.KeyConfig) KeyMap {
	return KeyMap{
		PanLeft:      binding(k.PanLeft, "pan left"),
		PanRight:     binding(k.PanRight, "pan right"),
		PanUp:        binding(k.PanUp, "pan up"),
		PanDown:      binding(k.PanDown, "pan down"),
		ToggleRun:    binding(k.ToggleRun, "run/pause"),
		ToggleMarker: binding(k.ToggleMarker, "marker mode"),
		MarkerAction: binding(k.MarkerAction, "toggle marker cell"),
		ZoomIn:       binding(k.ZoomIn, "zoom in"),
		ZoomOut:      binding(k.ZoomOut, "zoom out"),
		Copy:         binding(k.Copy, "copy selection"),
		Paste:        binding(k.Paste, "paste"),
		Step:         binding(k.Step, "step"),
		Scatter:      binding(k.Scatter, "scatter"),
		Clear:        binding(k.Clear, "clear"),
		NextPattern:  binding(k.NextPattern, "next pattern"),
		Help:         binding([]string{"?"}, "help"),
		Quit:         binding(k.Quit, "quit"),
	}
}

func binding(keys []string, desc string) key.Binding {
	names := make([]string, len(keys))
	for i, k := range keys {
		if k == " " {
			k = "space"
		}
		names[i] = k
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(names, "/"), desc),
	)
}

// Role returns the sandbox role bound to msg and whether the key carries the
// copy/paste modifier.
func (k KeyMap) Role(msg tea.KeyMsg) (role sandbox.Key, mod bool) {
	mod = msg.Alt || strings.HasPrefix(msg.String(), "ctrl+")
	for _, r := range []struct {
		role sandbox.Key
		b    key.Binding
	}{
		{sandbox.KeyPanLeft, k.PanLeft},
		{sandbox.KeyPanRight, k.PanRight},
		{sandbox.KeyPanUp, k.PanUp},
		{sandbox.KeyPanDown, k.PanDown},
		{sandbox.KeyToggleRun, k.ToggleRun},
		{sandbox.KeyToggleMarker, k.ToggleMarker},
		{sandbox.KeyMarkerAction, k.MarkerAction},
		{sandbox.KeyZoomIn, k.ZoomIn},
		{sandbox.KeyZoomOut, k.ZoomOut},
		{sandbox.KeyCopy, k.Copy},
		{sandbox.KeyPaste, k.Paste},
		{sandbox.KeyStep, k.Step},
		{sandbox.KeyScatter, k.Scatter},
		{sandbox.KeyClear, k.Clear},
		{sandbox.KeyNextPattern, k.NextPattern},
	} {
		if key.Matches(msg, r.b) {
			return r.role, mod
		}
	}
	return sandbox.KeyNone, mod
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ToggleRun, k.Step, k.ToggleMarker, k.Copy, k.Paste, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PanLeft, k.PanRight, k.PanUp, k.PanDown, k.ZoomIn, k.ZoomOut},
		{k.ToggleRun, k.Step, k.ToggleMarker, k.MarkerAction},
		{k.Copy, k.Paste, k.NextPattern, k.Scatter, k.Clear},
		{k.Help, k.Quit},
	}
}
