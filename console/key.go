package console

// Key is a logical key read from a surface
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyUnknown
)

var keyNames = map[Key]string{
	KeyNone:      "None",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyEnter:     "Enter",
	KeyEscape:    "Escape",
	KeyBackspace: "Backspace",
	KeyUnknown:   "Unknown",
}

// String returns the key name
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "Unknown"
}

// IsDirection reports whether k is one of the four arrow keys
func (k Key) IsDirection() bool {
	return k == KeyUp || k == KeyDown || k == KeyLeft || k == KeyRight
}
