package core

// Key identifies a physical key in a host-neutral way. Values follow the DOM
// KeyboardEvent.key names so every frontend maps onto the same vocabulary.
type Key string

// Recognized keys. Anything else is ignored by the simulation.
const (
	KeyArrowRight Key = "ArrowRight"
	KeyRight      Key = "Right"
	KeyArrowLeft  Key = "ArrowLeft"
	KeyLeft       Key = "Left"
	KeyArrowUp    Key = "ArrowUp"
	KeySpace      Key = " "
)

// IsRight reports whether k moves the player right.
func (k Key) IsRight() bool {
	return k == KeyArrowRight || k == KeyRight
}

// IsLeft reports whether k moves the player left.
func (k Key) IsLeft() bool {
	return k == KeyArrowLeft || k == KeyLeft
}

// IsHorizontal reports whether k is one of the lateral movement keys.
func (k Key) IsHorizontal() bool {
	return k.IsRight() || k.IsLeft()
}

// IsJump reports whether k triggers a jump attempt.
func (k Key) IsJump() bool {
	return k == KeySpace || k == KeyArrowUp
}

// Recognized reports whether k drives the player at all.
func (k Key) Recognized() bool {
	return k.IsHorizontal() || k.IsJump()
}

// KeyEventKind distinguishes key presses from releases.
type KeyEventKind int

const (
	KeyDown KeyEventKind = iota
	KeyUp
)

// String returns the script spelling of the event kind.
func (k KeyEventKind) String() string {
	switch k {
	case KeyDown:
		return "down"
	case KeyUp:
		return "up"
	default:
		return "unknown"
	}
}

// KeyEvent is a single key transition delivered by an input source.
type KeyEvent struct {
	Kind KeyEventKind
	Key  Key
}
