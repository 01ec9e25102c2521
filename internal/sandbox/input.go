package sandbox

// Key is a logical key role; front-ends map physical keys onto these.
type Key int

const (
	KeyNone Key = iota
	KeyPanLeft
	KeyPanRight
	KeyPanUp
	KeyPanDown
	KeyToggleRun
	KeyToggleMarker
	KeyMarkerAction
	KeyZoomIn
	KeyZoomOut
	KeyCopy  // with modifier
	KeyPaste // with modifier
	KeyStep
	KeyScatter
	KeyClear
	KeyNextPattern
)

// Keys lists every role in the order Update polls them.
var Keys = []Key{
	KeyPanLeft, KeyPanRight, KeyPanUp, KeyPanDown,
	KeyToggleRun, KeyToggleMarker, KeyMarkerAction,
	KeyZoomIn, KeyZoomOut,
	KeyCopy, KeyPaste,
	KeyStep, KeyScatter, KeyClear, KeyNextPattern,
}

// String returns a human-readable name for the key role.
func (k Key) String() string {
	switch k {
	case KeyPanLeft:
		return "PanLeft"
	case KeyPanRight:
		return "PanRight"
	case KeyPanUp:
		return "PanUp"
	case KeyPanDown:
		return "PanDown"
	case KeyToggleRun:
		return "ToggleRun"
	case KeyToggleMarker:
		return "ToggleMarker"
	case KeyMarkerAction:
		return "MarkerAction"
	case KeyZoomIn:
		return "ZoomIn"
	case KeyZoomOut:
		return "ZoomOut"
	case KeyCopy:
		return "Copy"
	case KeyPaste:
		return "Paste"
	case KeyStep:
		return "Step"
	case KeyScatter:
		return "Scatter"
	case KeyClear:
		return "Clear"
	case KeyNextPattern:
		return "NextPattern"
	default:
		return "None"
	}
}

// repeats reports whether holding the key keeps acting after the first press.
func (k Key) repeats() bool {
	switch k {
	case KeyPanLeft, KeyPanRight, KeyPanUp, KeyPanDown, KeyZoomIn, KeyZoomOut:
		return true
	}
	return false
}

// Button identifies a pointer button.
type Button int

const (
	ButtonPrimary   Button = iota // paint / erase
	ButtonSecondary               // select
	buttonCount
)

// Input is one tick's worth of sampled input. Held is level-triggered and
// stays true while the key is down; Pressed is edge-triggered and is true
// only on the tick the key went down.
type Input interface {
	Held(k Key) bool
	Pressed(k Key) bool
	// Modifier reports whether the copy/paste modifier is down.
	Modifier() bool
	// Cursor returns the pointer position in pixels relative to the view
	// centre, y pointing down.
	Cursor() (x, y float64)
	ButtonHeld(b Button) bool
}
