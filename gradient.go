package clikit

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/rivo/uniseg"
)

// GradientDirection is the axis a gradient runs along when applied to a
// block of text.
type GradientDirection uint8

const (
	// GradientHorizontal runs left to right.
	GradientHorizontal GradientDirection = iota
	// GradientVertical runs top to bottom.
	GradientVertical
	// GradientDiagonalDown runs top-left to bottom-right.
	GradientDiagonalDown
	// GradientDiagonalUp runs bottom-left to top-right.
	GradientDiagonalUp
	// GradientRadial runs outward from the center.
	GradientRadial
)

// Easing shapes the interpolation parameter between two gradient stops.
type Easing uint8

const (
	// EaseLinear interpolates uniformly.
	EaseLinear Easing = iota
	// EaseIn starts slow: t².
	EaseIn
	// EaseOut ends slow: 1-(1-t)².
	EaseOut
	// EaseInOut is piecewise quadratic around t=0.5.
	EaseInOut
)

// apply shapes a normalized parameter.
func (e Easing) apply(t float64) float64 {
	switch e {
	case EaseIn:
		return t * t
	case EaseOut:
		return 1 - (1-t)*(1-t)
	case EaseInOut:
		if t < 0.5 {
			return 2 * t * t
		}
		return 1 - 2*(1-t)*(1-t)
	default:
		return t
	}
}

// GradientStop anchors a color at a position in [0,1].
type GradientStop struct {
	Position float64
	Color    Color
}

// Gradient is a multi-stop color interpolation along an axis.
// Gradients are immutable values; WithDirection, WithEasing, and Shift
// return copies.
type Gradient struct {
	Stops     []GradientStop
	Direction GradientDirection
	Easing    Easing
}

// NewGradient returns a two-stop horizontal gradient from start to end.
func NewGradient(start, end Color) Gradient {
	return Gradient{
		Stops: []GradientStop{
			{Position: 0, Color: start},
			{Position: 1, Color: end},
		},
	}
}

// NewGradientStops returns a horizontal gradient over the given stops.
// Stops are clamped to [0,1] and sorted by position; input order does not
// matter.
func NewGradientStops(stops ...GradientStop) Gradient {
	normalized := make([]GradientStop, len(stops))
	for i, s := range stops {
		s.Position = clamp01(s.Position)
		normalized[i] = s
	}
	sort.SliceStable(normalized, func(i, j int) bool {
		return normalized[i].Position < normalized[j].Position
	})
	return Gradient{Stops: normalized}
}

// WithDirection returns a copy of the gradient running along the given axis.
func (g Gradient) WithDirection(d GradientDirection) Gradient {
	g.Stops = append([]GradientStop(nil), g.Stops...)
	g.Direction = d
	return g
}

// WithEasing returns a copy of the gradient using the given easing.
func (g Gradient) WithEasing(e Easing) Gradient {
	g.Stops = append([]GradientStop(nil), g.Stops...)
	g.Easing = e
	return g
}

// At returns the gradient color at position t in [0,1]; t is clamped.
// At or outside the first/last stop the stop's color is returned as-is;
// between stops the result is an RGB interpolation, with non-RGB stops
// converted through the fixed palette tables. A gradient with no stops
// yields white; a single stop yields that stop's color.
func (g Gradient) At(t float64) Color {
	if len(g.Stops) == 0 {
		return RGBColor(255, 255, 255)
	}
	t = clamp01(t)

	first := g.Stops[0]
	last := g.Stops[len(g.Stops)-1]

	if len(g.Stops) == 1 || t <= first.Position {
		return first.Color
	}
	if t >= last.Position {
		return last.Color
	}

	// Find the bracketing pair of stops.
	var s1, s2 GradientStop
	for i := 0; i < len(g.Stops)-1; i++ {
		if t >= g.Stops[i].Position && t <= g.Stops[i+1].Position {
			s1, s2 = g.Stops[i], g.Stops[i+1]
			break
		}
	}

	span := s2.Position - s1.Position
	if span <= 0 {
		return toRGB(s2.Color)
	}

	local := g.Easing.apply((t - s1.Position) / span)

	r1, g1, b1 := s1.Color.ToRGBValues()
	r2, g2, b2 := s2.Color.ToRGBValues()
	return RGBColor(
		lerpChannel(r1, r2, local),
		lerpChannel(g1, g2, local),
		lerpChannel(b1, b2, local),
	)
}

// Shift returns a copy with offset added to every stop position, clamped to
// [0,1]. Stops are not wrapped around the ends.
func (g Gradient) Shift(offset float64) Gradient {
	stops := make([]GradientStop, len(g.Stops))
	for i, s := range g.Stops {
		s.Position = clamp01(s.Position + offset)
		stops[i] = s
	}
	g.Stops = stops
	return g
}

// Animated returns the gradient shifted as a pure function of time:
// the offset is (time*speed) mod 1.
func (g Gradient) Animated(time, speed float64) Gradient {
	offset := math.Mod(time*speed, 1)
	if offset < 0 {
		offset++
	}
	return g.Shift(offset)
}

// cellT parameterizes a character cell of a text block to a gradient
// position. col/row index the cell; cols/rows are the block extents.
// Degenerate axes (a single column or row) parameterize to 0, so a
// vertical gradient over one line is uniform.
func (g Gradient) cellT(col, cols, row, rows int) float64 {
	frac := func(i, n int) float64 {
		if n <= 1 {
			return 0
		}
		return float64(i) / float64(n-1)
	}

	cx := frac(col, cols)
	ry := frac(row, rows)

	switch g.Direction {
	case GradientVertical:
		return ry
	case GradientDiagonalDown:
		return (cx + ry) / 2
	case GradientDiagonalUp:
		return (cx + (1 - ry)) / 2
	case GradientRadial:
		dx := cx - 0.5
		dy := ry - 0.5
		return clamp01(math.Sqrt(dx*dx+dy*dy) / math.Sqrt2 * 2)
	default: // GradientHorizontal
		return cx
	}
}

// ApplyToText colors each character of text by its gradient position,
// emitting foreground sequences under the given profile. Multi-line text
// is treated as a 2-D block; each line ends with a reset when any color
// was emitted.
func (g Gradient) ApplyToText(text string, p Profile) string {
	lines := strings.Split(text, "\n")
	rows := len(lines)

	var b strings.Builder
	b.Grow(len(text) * 4)

	for row, line := range lines {
		if row > 0 {
			b.WriteByte('\n')
		}
		cols := uniseg.GraphemeClusterCount(line)
		colored := false

		col := 0
		gr := uniseg.NewGraphemes(line)
		for gr.Next() {
			seq := ColorSequence(g.At(g.cellT(col, cols, row, rows)), p, false)
			if seq != "" {
				colored = true
			}
			b.WriteString(seq)
			b.WriteString(gr.Str())
			col++
		}
		if colored {
			b.WriteString(ResetSequence)
		}
	}
	return b.String()
}

// toRGB converts any color to its RGB form via the fixed palette tables.
func toRGB(c Color) Color {
	if c.Type() == ColorRGB {
		return c
	}
	r, g, b := c.ToRGBValues()
	return RGBColor(r, g, b)
}

// lerpChannel linearly interpolates one 8-bit channel.
func lerpChannel(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + t*(float64(b)-float64(a)))
}

// clamp01 clamps a value to the [0,1] range.
func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// fingerprint encodes the gradient for style cache keys.
func (g Gradient) fingerprint() string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(int(g.Direction)))
	b.WriteByte('|')
	b.WriteString(strconv.Itoa(int(g.Easing)))
	for _, s := range g.Stops {
		b.WriteByte('|')
		b.WriteString(strconv.FormatFloat(s.Position, 'g', -1, 64))
		b.WriteByte('@')
		writeColorValue(&b, s.Color)
	}
	return b.String()
}
