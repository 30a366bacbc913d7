package console

import (
	"fmt"
	"strings"
)

// Color is one of the 16 standard console colors.
// The order matches the classic console palette, not ANSI indices; use ANSI
// to convert.
type Color int

const (
	Black Color = iota
	DarkBlue
	DarkGreen
	DarkCyan
	DarkRed
	DarkMagenta
	DarkYellow
	Gray
	DarkGray
	Blue
	Green
	Cyan
	Red
	Magenta
	Yellow
	White
)

var colorNames = [...]string{
	"Black", "DarkBlue", "DarkGreen", "DarkCyan",
	"DarkRed", "DarkMagenta", "DarkYellow", "Gray",
	"DarkGray", "Blue", "Green", "Cyan",
	"Red", "Magenta", "Yellow", "White",
}

// ansiIndex maps a Color to its index in the standard 16-color ANSI palette
var ansiIndex = [...]int{
	Black:       0,
	DarkBlue:    4,
	DarkGreen:   2,
	DarkCyan:    6,
	DarkRed:     1,
	DarkMagenta: 5,
	DarkYellow:  3,
	Gray:        7,
	DarkGray:    8,
	Blue:        12,
	Green:       10,
	Cyan:        14,
	Red:         9,
	Magenta:     13,
	Yellow:      11,
	White:       15,
}

// Valid reports whether c is one of the 16 named colors
func (c Color) Valid() bool {
	return c >= Black && c <= White
}

// String returns the color name
func (c Color) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Color(%d)", int(c))
	}
	return colorNames[c]
}

// ANSI returns the standard ANSI palette index (0-15). Invalid colors map to 7.
func (c Color) ANSI() int {
	if !c.Valid() {
		return 7
	}
	return ansiIndex[c]
}

// ParseColor resolves a color name, case-insensitively
func ParseColor(name string) (Color, error) {
	for i, n := range colorNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return Color(i), nil
		}
	}
	return Black, fmt.Errorf("unknown color %q", name)
}

// UnmarshalText lets colors be written by name in config files
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalText writes the color name
func (c Color) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid color %d", int(c))
	}
	return []byte(c.String()), nil
}
