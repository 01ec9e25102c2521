//go:build ebiten

package app

import (
	"lifebox/internal/sandbox"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var bindings = map[sandbox.Key][]ebiten.Key{
	sandbox.KeyPanLeft:      {ebiten.KeyArrowLeft},
	sandbox.KeyPanRight:     {ebiten.KeyArrowRight},
	sandbox.KeyPanUp:        {ebiten.KeyArrowUp},
	sandbox.KeyPanDown:      {ebiten.KeyArrowDown},
	sandbox.KeyToggleRun:    {ebiten.KeyEnter, ebiten.KeyNumpadEnter},
	sandbox.KeyToggleMarker: {ebiten.KeyTab},
	sandbox.KeyMarkerAction: {ebiten.KeySpace},
	sandbox.KeyZoomIn:       {ebiten.KeyI, ebiten.KeyEqual, ebiten.KeyNumpadAdd},
	sandbox.KeyZoomOut:      {ebiten.KeyO, ebiten.KeyMinus, ebiten.KeyNumpadSubtract},
	sandbox.KeyCopy:         {ebiten.KeyC},
	sandbox.KeyPaste:        {ebiten.KeyV},
	sandbox.KeyStep:         {ebiten.KeyN},
	sandbox.KeyScatter:      {ebiten.KeyR},
	sandbox.KeyClear:        {ebiten.KeyDelete, ebiten.KeyBackspace},
	sandbox.KeyNextPattern:  {ebiten.KeyP},
}

// keyboard reads ebiten's input state as a sandbox.Input. Cursor positions
// are reported relative to the window centre.
type keyboard struct {
	width, height int
}

func (k *keyboard) Held(key sandbox.Key) bool {
	for _, ek := range bindings[key] {
		if ebiten.IsKeyPressed(ek) {
			return true
		}
	}
	return false
}

func (k *keyboard) Pressed(key sandbox.Key) bool {
	for _, ek := range bindings[key] {
		if inpututil.IsKeyJustPressed(ek) {
			return true
		}
	}
	return false
}

func (k *keyboard) Modifier() bool {
	return ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
}

func (k *keyboard) Cursor() (float64, float64) {
	x, y := ebiten.CursorPosition()
	return float64(x) - float64(k.width)/2, float64(y) - float64(k.height)/2
}

func (k *keyboard) ButtonHeld(b sandbox.Button) bool {
	switch b {
	case sandbox.ButtonPrimary:
		return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	case sandbox.ButtonSecondary:
		return ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	}
	return false
}
