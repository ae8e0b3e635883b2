package screen

import (
	"fmt"
	"strings"
)

// Color is one of the 16 palette colors, numbered in DOS attribute order.
type Color uint8

const (
	Black Color = iota
	Blue
	Green
	Cyan
	Red
	Magenta
	Brown
	LightGray
	DarkGray
	LightBlue
	LightGreen
	LightCyan
	LightRed
	LightMagenta
	Yellow
	White
)

// PaletteSize is the number of colors in the palette.
const PaletteSize = 16

var colorNames = [PaletteSize]string{
	"black", "blue", "green", "cyan", "red", "magenta", "brown", "light_gray",
	"dark_gray", "light_blue", "light_green", "light_cyan", "light_red",
	"light_magenta", "yellow", "white",
}

// ansiIndex maps palette order to the ANSI 16-color index.
var ansiIndex = [PaletteSize]int{0, 4, 2, 6, 1, 5, 3, 7, 8, 12, 10, 14, 9, 13, 11, 15}

// inverted is the mouse-pointer color swap. Every entry is paired with its
// inverse, so applying it twice yields the original color.
var inverted = [PaletteSize]Color{
	Black:        White,
	White:        Black,
	Blue:         Yellow,
	Yellow:       Blue,
	Green:        LightMagenta,
	LightMagenta: Green,
	Cyan:         LightRed,
	LightRed:     Cyan,
	Red:          LightCyan,
	LightCyan:    Red,
	Magenta:      LightGreen,
	LightGreen:   Magenta,
	Brown:        LightBlue,
	LightBlue:    Brown,
	LightGray:    DarkGray,
	DarkGray:     LightGray,
}

func (c Color) String() string {
	if c < PaletteSize {
		return colorNames[c]
	}
	return fmt.Sprintf("color(%d)", int(c))
}

// Valid reports whether c is a palette color.
func (c Color) Valid() bool { return c < PaletteSize }

// ANSI returns the ANSI 16-color index (0-15) for c.
func (c Color) ANSI() int {
	if c >= PaletteSize {
		return 7
	}
	return ansiIndex[c]
}

// Invert returns the pointer-contrast partner of c.
func (c Color) Invert() Color {
	if c >= PaletteSize {
		return c
	}
	return inverted[c]
}

// ParseColor parses a color name such as "light_gray", "LightGray" or
// "light-gray".
func ParseColor(name string) (Color, error) {
	key := strings.ToLower(strings.NewReplacer("-", "", "_", "", " ", "").Replace(name))
	for i, n := range colorNames {
		if strings.ReplaceAll(n, "_", "") == key {
			return Color(i), nil
		}
	}
	if key == "grey" || key == "lightgrey" {
		return LightGray, nil
	}
	if key == "darkgrey" {
		return DarkGray, nil
	}
	return Black, fmt.Errorf("unknown color %q", name)
}

// CursorStyle is the terminal cursor shape.
type CursorStyle uint8

const (
	BlinkingBlock CursorStyle = iota
	SteadyBlock
	BlinkingUnderline
	SteadyUnderline
	BlinkingBar
	SteadyBar
)

// DefaultCursorStyle is the shape used until a caller picks another.
const DefaultCursorStyle = BlinkingUnderline

var cursorStyleNames = [...]string{
	"blinking_block", "steady_block", "blinking_underline",
	"steady_underline", "blinking_bar", "steady_bar",
}

func (s CursorStyle) String() string {
	if int(s) < len(cursorStyleNames) {
		return cursorStyleNames[s]
	}
	return fmt.Sprintf("cursor_style(%d)", int(s))
}

// DECSCUSR returns the parameter for the CSI Ps SP q sequence.
func (s CursorStyle) DECSCUSR() int {
	return int(s) + 1
}

// ParseCursorStyle parses a cursor style name such as "steady_bar".
func ParseCursorStyle(name string) (CursorStyle, error) {
	key := strings.ToLower(strings.ReplaceAll(name, "-", "_"))
	for i, n := range cursorStyleNames {
		if n == key {
			return CursorStyle(i), nil
		}
	}
	return DefaultCursorStyle, fmt.Errorf("unknown cursor style %q", name)
}
