package clikit

import (
	"strings"

	"github.com/muesli/termenv"
)

// Profile is the maximum color fidelity a terminal supports.
// Profiles are ordered: a higher profile is a superset of every lower one.
type Profile uint8

const (
	// ProfileNoColor disables all color output.
	ProfileNoColor Profile = iota
	// ProfileANSI16 supports the 16 basic ANSI colors.
	ProfileANSI16
	// ProfileANSI256 supports the 256-color palette.
	ProfileANSI256
	// ProfileTrueColor supports 24-bit RGB color.
	ProfileTrueColor
)

// Capabilities describes what the target terminal can render.
// It is supplied by the host; DetectCapabilities offers an
// environment-based default.
type Capabilities struct {
	// Profile is the negotiated color profile.
	Profile Profile
	// Dark selects the dark variant of adaptive colors. Defaults to true.
	Dark bool
	// Width and Height optionally fix the viewport; 0 means unconstrained.
	Width  int
	Height int
}

// DefaultCapabilities returns conservative defaults: 16 colors, dark mode.
func DefaultCapabilities() Capabilities {
	return Capabilities{Profile: ProfileANSI16, Dark: true}
}

// DetectCapabilities determines terminal capabilities from the environment.
// Color profile and background mode come from termenv; the viewport is left
// unconstrained.
func DetectCapabilities() Capabilities {
	caps := Capabilities{Dark: true}

	switch termenv.ColorProfile() {
	case termenv.TrueColor:
		caps.Profile = ProfileTrueColor
	case termenv.ANSI256:
		caps.Profile = ProfileANSI256
	case termenv.ANSI:
		caps.Profile = ProfileANSI16
	default:
		caps.Profile = ProfileNoColor
	}

	caps.Dark = termenv.HasDarkBackground()
	return caps
}

// Supports returns true if the profile can render the given color natively.
func (p Profile) Supports(c Color) bool {
	switch c.Type() {
	case ColorDefault:
		return true
	case ColorANSI16:
		return p >= ProfileANSI16
	case ColorANSI256:
		return p >= ProfileANSI256
	case ColorRGB:
		return p >= ProfileTrueColor
	case ColorAdaptive:
		// Adaptive colors must be resolved before the profile check.
		return false
	}
	return false
}

// EffectiveColor degrades a color to the nearest representation the
// capabilities allow. Adaptive colors are resolved against the Dark flag
// first, then downgraded like any other color.
func (c Capabilities) EffectiveColor(color Color) Color {
	color = color.Resolve(c.Dark)

	if c.Profile == ProfileNoColor {
		return DefaultColor()
	}
	if c.Profile.Supports(color) {
		return color
	}

	switch color.Type() {
	case ColorRGB:
		if c.Profile >= ProfileANSI256 {
			return color.ToANSI256()
		}
		return color.ToANSI16()
	case ColorANSI256:
		return color.ToANSI16()
	default:
		return color
	}
}

// String returns a human-readable description of the capabilities.
func (c Capabilities) String() string {
	var parts []string

	switch c.Profile {
	case ProfileNoColor:
		parts = append(parts, "no-color")
	case ProfileANSI16:
		parts = append(parts, "16-color")
	case ProfileANSI256:
		parts = append(parts, "256-color")
	case ProfileTrueColor:
		parts = append(parts, "true-color")
	}

	if c.Dark {
		parts = append(parts, "dark")
	} else {
		parts = append(parts, "light")
	}

	return strings.Join(parts, ", ")
}
