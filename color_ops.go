package clikit

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// rgbToColorful converts 8-bit channels to a colorful.Color in [0,1] space.
func rgbToColorful(r, g, b uint8) colorful.Color {
	return colorful.Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}
}

// clampChannel clamps a float channel value to the 0-255 byte range.
func clampChannel(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Lighten scales each RGB channel of an RGB color by (1 + amount),
// clamped to [0,255]. Amount is expected in [0,1].
// Non-RGB colors pass through unchanged.
func (c Color) Lighten(amount float64) Color {
	if c.typ != ColorRGB {
		return c
	}
	return RGBColor(
		clampChannel(float64(c.r)*(1+amount)),
		clampChannel(float64(c.g)*(1+amount)),
		clampChannel(float64(c.b)*(1+amount)),
	)
}

// Darken scales each RGB channel of an RGB color by (1 - amount),
// clamped to [0,255]. Amount is expected in [0,1].
// Non-RGB colors pass through unchanged.
func (c Color) Darken(amount float64) Color {
	if c.typ != ColorRGB {
		return c
	}
	return RGBColor(
		clampChannel(float64(c.r)*(1-amount)),
		clampChannel(float64(c.g)*(1-amount)),
		clampChannel(float64(c.b)*(1-amount)),
	)
}

// Blend linearly interpolates between two RGB colors in RGB space.
// alpha=1 yields a, alpha=0 yields b. If either color is not RGB,
// alpha > 0.5 picks a, otherwise b.
func Blend(a, b Color, alpha float64) Color {
	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}
	if a.typ != ColorRGB || b.typ != ColorRGB {
		if alpha > 0.5 {
			return a
		}
		return b
	}
	ar, ag, ab := a.RGB()
	br, bg, bb := b.RGB()
	mixed := rgbToColorful(br, bg, bb).BlendRgb(rgbToColorful(ar, ag, ab), alpha)
	mr, mg, mb := mixed.RGB255()
	return RGBColor(mr, mg, mb)
}

// Luminance returns the relative luminance of the color (0.0-1.0).
// Uses the W3C formula for calculating relative luminance.
func (c Color) Luminance() float64 {
	if c.typ == ColorDefault {
		// Default color luminance is unknown; assume dark background
		return 0.0
	}
	r, g, b := c.ToRGBValues()

	// Convert to linear RGB (sRGB gamma correction)
	linearize := func(v uint8) float64 {
		f := float64(v) / 255.0
		if f <= 0.03928 {
			return f / 12.92
		}
		return math.Pow((f+0.055)/1.055, 2.4)
	}

	rLin := linearize(r)
	gLin := linearize(g)
	bLin := linearize(b)

	// W3C relative luminance formula
	return 0.2126*rLin + 0.7152*gLin + 0.0722*bLin
}

// IsLight returns true if the color is perceptually light.
func (c Color) IsLight() bool {
	if c.typ == ColorDefault {
		return false // Assume default is dark
	}
	return c.Luminance() > 0.2
}
