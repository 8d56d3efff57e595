package clikit

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ColorType distinguishes between color representations.
type ColorType uint8

const (
	// ColorDefault represents the terminal's default color (no color set).
	ColorDefault ColorType = iota
	// ColorANSI16 represents one of the 16 basic ANSI colors (0-15).
	ColorANSI16
	// ColorANSI256 represents an ANSI 256 palette color (0-255).
	ColorANSI256
	// ColorRGB represents a true color (24-bit RGB).
	ColorRGB
	// ColorAdaptive represents a light/dark pair resolved at render time.
	ColorAdaptive
)

// Color represents a terminal color with support for default, ANSI 16,
// ANSI 256, true color, and adaptive light/dark pairs.
// Zero value represents the terminal default color.
type Color struct {
	typ ColorType
	// For ANSI16/ANSI256: r holds the palette index.
	// For RGB: r, g, b hold the color components.
	r, g, b uint8
	// For Adaptive: the light and dark variants.
	adaptive *adaptivePair
}

type adaptivePair struct {
	light Color
	dark  Color
}

// DefaultColor returns a Color representing the terminal's default color.
func DefaultColor() Color {
	return Color{typ: ColorDefault}
}

// ANSI16Color returns a Color from the 16 basic ANSI colors.
// Returns an error if the index is outside 0-15.
func ANSI16Color(index uint8) (Color, error) {
	if index > 15 {
		return Color{}, fmt.Errorf("ANSI 16 color index out of range: %d", index)
	}
	return Color{typ: ColorANSI16, r: index}, nil
}

// ANSI256Color returns a Color from the ANSI 256 palette.
func ANSI256Color(index uint8) Color {
	return Color{typ: ColorANSI256, r: index}
}

// RGBColor returns a true color (24-bit RGB) Color.
func RGBColor(r, g, b uint8) Color {
	return Color{typ: ColorRGB, r: r, g: g, b: b}
}

// AdaptiveColor returns a Color that resolves to light or dark depending
// on the renderer's background mode. Rendering defaults to the dark variant.
func AdaptiveColor(light, dark Color) Color {
	return Color{typ: ColorAdaptive, adaptive: &adaptivePair{light: light, dark: dark}}
}

// HexColor parses a hex color string and returns a Color.
// Supported formats: "#RRGGBB" and "#RGB" (leading '#' optional,
// case-insensitive). Invalid input is an error, never a substitute color.
func HexColor(hex string) (Color, error) {
	hex = strings.TrimPrefix(hex, "#")

	switch len(hex) {
	case 6:
		// #RRGGBB
		r, err := parseHexByte(hex[0:2])
		if err != nil {
			return Color{}, err
		}
		g, err := parseHexByte(hex[2:4])
		if err != nil {
			return Color{}, err
		}
		b, err := parseHexByte(hex[4:6])
		if err != nil {
			return Color{}, err
		}
		return RGBColor(r, g, b), nil
	case 3:
		// #RGB -> expand to #RRGGBB
		r, err := parseHexNibble(hex[0])
		if err != nil {
			return Color{}, err
		}
		g, err := parseHexNibble(hex[1])
		if err != nil {
			return Color{}, err
		}
		b, err := parseHexNibble(hex[2])
		if err != nil {
			return Color{}, err
		}
		// Expand nibble to byte: 0xF -> 0xFF
		return RGBColor(r<<4|r, g<<4|g, b<<4|b), nil
	default:
		return Color{}, errors.New("invalid hex color format: expected #RGB or #RRGGBB")
	}
}

// MustHex is like HexColor but panics on invalid input.
// Intended for color literals in source code.
func MustHex(hex string) Color {
	c, err := HexColor(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// parseHexByte parses a two-character hex string into a byte.
func parseHexByte(s string) (uint8, error) {
	if len(s) != 2 {
		return 0, errors.New("invalid hex byte")
	}
	high, err := parseHexNibble(s[0])
	if err != nil {
		return 0, err
	}
	low, err := parseHexNibble(s[1])
	if err != nil {
		return 0, err
	}
	return high<<4 | low, nil
}

// parseHexNibble parses a single hex character into a nibble (0-15).
func parseHexNibble(c byte) (uint8, error) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', nil
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, nil
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, nil
	default:
		return 0, errors.New("invalid hex character")
	}
}

// Type returns the ColorType of this color.
func (c Color) Type() ColorType {
	return c.typ
}

// IsDefault returns true if this is the terminal's default color.
func (c Color) IsDefault() bool {
	return c.typ == ColorDefault
}

// Index returns the palette index of an ANSI 16 or ANSI 256 color.
// Panics if the color is not a palette color.
func (c Color) Index() uint8 {
	if c.typ != ColorANSI16 && c.typ != ColorANSI256 {
		panic("Color.Index() called on non-palette color")
	}
	return c.r
}

// RGB returns the red, green, and blue components.
// Panics if the color is not an RGB color.
func (c Color) RGB() (r, g, b uint8) {
	if c.typ != ColorRGB {
		panic("Color.RGB() called on non-RGB color")
	}
	return c.r, c.g, c.b
}

// Adaptive returns the light and dark variants.
// Panics if the color is not an adaptive color.
func (c Color) Adaptive() (light, dark Color) {
	if c.typ != ColorAdaptive {
		panic("Color.Adaptive() called on non-adaptive color")
	}
	return c.adaptive.light, c.adaptive.dark
}

// Resolve collapses an adaptive color against a background mode.
// Non-adaptive colors are returned unchanged.
func (c Color) Resolve(dark bool) Color {
	if c.typ != ColorAdaptive {
		return c
	}
	if dark {
		return c.adaptive.dark.Resolve(dark)
	}
	return c.adaptive.light.Resolve(dark)
}

// Equal returns true if both colors are identical.
func (c Color) Equal(other Color) bool {
	if c.typ != other.typ {
		return false
	}
	switch c.typ {
	case ColorDefault:
		return true
	case ColorANSI16, ColorANSI256:
		return c.r == other.r
	case ColorRGB:
		return c.r == other.r && c.g == other.g && c.b == other.b
	case ColorAdaptive:
		return c.adaptive.light.Equal(other.adaptive.light) &&
			c.adaptive.dark.Equal(other.adaptive.dark)
	}
	return false
}

// ToANSI256 approximates an RGB color to the nearest ANSI 256 palette entry.
// Pure grays map to the grayscale ramp (232-255, with the cube's black and
// white at the extremes); everything else maps to the 6x6x6 cube (16-231).
// Returns the color unchanged if it is not RGB.
func (c Color) ToANSI256() Color {
	if c.typ != ColorRGB {
		return c
	}

	r, g, b := c.r, c.g, c.b

	if r == g && g == b {
		// Grayscale ramp: 232-255 (24 shades)
		if r < 8 {
			return ANSI256Color(16) // cube black is closer
		}
		if r > 248 {
			return ANSI256Color(231) // cube white is closer
		}
		gray := uint8(math.Round(float64(r-8)/247*24)) + 232
		return ANSI256Color(gray)
	}

	// 6x6x6 color cube: 16-231, each component maps to 0-5
	ri := uint8(math.Round(float64(r) / 255 * 5))
	gi := uint8(math.Round(float64(g) / 255 * 5))
	bi := uint8(math.Round(float64(b) / 255 * 5))

	return ANSI256Color(16 + 36*ri + 6*gi + bi)
}

// Standard ANSI colors (basic 8 colors).
var (
	Black   = Color{typ: ColorANSI16, r: 0}
	Red     = Color{typ: ColorANSI16, r: 1}
	Green   = Color{typ: ColorANSI16, r: 2}
	Yellow  = Color{typ: ColorANSI16, r: 3}
	Blue    = Color{typ: ColorANSI16, r: 4}
	Magenta = Color{typ: ColorANSI16, r: 5}
	Cyan    = Color{typ: ColorANSI16, r: 6}
	White   = Color{typ: ColorANSI16, r: 7}
)

// Bright ANSI colors (high-intensity variants).
var (
	BrightBlack   = Color{typ: ColorANSI16, r: 8}
	BrightRed     = Color{typ: ColorANSI16, r: 9}
	BrightGreen   = Color{typ: ColorANSI16, r: 10}
	BrightYellow  = Color{typ: ColorANSI16, r: 11}
	BrightBlue    = Color{typ: ColorANSI16, r: 12}
	BrightMagenta = Color{typ: ColorANSI16, r: 13}
	BrightCyan    = Color{typ: ColorANSI16, r: 14}
	BrightWhite   = Color{typ: ColorANSI16, r: 15}
)

// ansi16RGB maps ANSI colors 0-15 to approximate RGB values.
// These are typical terminal color values; actual values vary by terminal.
var ansi16RGB = [16][3]uint8{
	{0, 0, 0},       // 0: Black
	{205, 49, 49},   // 1: Red
	{13, 188, 121},  // 2: Green
	{229, 229, 16},  // 3: Yellow
	{36, 114, 200},  // 4: Blue
	{188, 63, 188},  // 5: Magenta
	{17, 168, 205},  // 6: Cyan
	{229, 229, 229}, // 7: White
	{102, 102, 102}, // 8: Bright Black (Gray)
	{241, 76, 76},   // 9: Bright Red
	{35, 209, 139},  // 10: Bright Green
	{245, 245, 67},  // 11: Bright Yellow
	{59, 142, 234},  // 12: Bright Blue
	{214, 112, 214}, // 13: Bright Magenta
	{41, 184, 219},  // 14: Bright Cyan
	{255, 255, 255}, // 15: Bright White
}

// ToRGBValues returns the red, green, and blue components of any color.
// Palette colors are expanded through the reference tables; adaptive colors
// use their dark variant; default colors return (0, 0, 0).
func (c Color) ToRGBValues() (r, g, b uint8) {
	switch c.typ {
	case ColorDefault:
		return 0, 0, 0
	case ColorRGB:
		return c.r, c.g, c.b
	case ColorAdaptive:
		return c.adaptive.dark.ToRGBValues()
	case ColorANSI16:
		rgb := ansi16RGB[c.r]
		return rgb[0], rgb[1], rgb[2]
	case ColorANSI256:
		idx := c.r
		if idx < 16 {
			rgb := ansi16RGB[idx]
			return rgb[0], rgb[1], rgb[2]
		} else if idx < 232 {
			// 6x6x6 color cube (indices 16-231)
			// index = 16 + 36*r + 6*g + b where r,g,b are 0-5
			idx -= 16
			ri := idx / 36
			gi := (idx % 36) / 6
			bi := idx % 6
			// Convert 0-5 to RGB: 0→0, 1→95, 2→135, 3→175, 4→215, 5→255
			cubeToRGB := func(v uint8) uint8 {
				if v == 0 {
					return 0
				}
				return 55 + v*40
			}
			return cubeToRGB(ri), cubeToRGB(gi), cubeToRGB(bi)
		}
		// Grayscale (indices 232-255): 24 shades from dark to light gray
		gray := 8 + (idx-232)*10
		return gray, gray, gray
	}
	return 0, 0, 0
}

// ToANSI16 approximates any color to the nearest of the 16 basic ANSI colors
// by Euclidean RGB distance against the reference table. Ties resolve to the
// lowest index. Default colors are returned unchanged.
func (c Color) ToANSI16() Color {
	switch c.typ {
	case ColorDefault:
		return c
	case ColorANSI16:
		return c
	case ColorANSI256:
		if c.r < 16 {
			return Color{typ: ColorANSI16, r: c.r}
		}
	}

	r, g, b := c.ToRGBValues()
	target := rgbToColorful(r, g, b)

	best := 0
	bestDist := math.Inf(1)
	for i, rgb := range ansi16RGB {
		d := target.DistanceRgb(rgbToColorful(rgb[0], rgb[1], rgb[2]))
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return Color{typ: ColorANSI16, r: uint8(best)}
}
