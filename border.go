package clikit

import (
	"fmt"
	"strings"
)

// BorderSide selects which sides of a box border are drawn.
type BorderSide uint8

const (
	// BorderTop draws the top border row.
	BorderTop BorderSide = 1 << iota
	// BorderRight draws the right border column.
	BorderRight
	// BorderBottom draws the bottom border row.
	BorderBottom
	// BorderLeft draws the left border column.
	BorderLeft

	// BorderAll draws all four sides.
	BorderAll = BorderTop | BorderRight | BorderBottom | BorderLeft
	// BorderNone draws no sides.
	BorderNone BorderSide = 0
)

// Has returns true if all given side bits are active.
func (s BorderSide) Has(sides BorderSide) bool {
	return s&sides == sides
}

// BorderPosition identifies a cell of the border frame.
type BorderPosition uint8

const (
	// BorderPosTop is a cell of the top edge.
	BorderPosTop BorderPosition = iota
	// BorderPosBottom is a cell of the bottom edge.
	BorderPosBottom
	// BorderPosLeft is a cell of the left edge.
	BorderPosLeft
	// BorderPosRight is a cell of the right edge.
	BorderPosRight
	// BorderPosTopLeft is the top-left corner.
	BorderPosTopLeft
	// BorderPosTopRight is the top-right corner.
	BorderPosTopRight
	// BorderPosBottomLeft is the bottom-left corner.
	BorderPosBottomLeft
	// BorderPosBottomRight is the bottom-right corner.
	BorderPosBottomRight
)

// Border holds the glyphs used to draw a box frame. The four edges and four
// corners are required; the junction glyphs are optional and only consulted
// by composite layouts (tables, split panes). A zero rune means the glyph
// is absent; MergeBorders uses that to fall back to a base border.
type Border struct {
	Top         rune
	Bottom      rune
	Left        rune
	Right       rune
	TopLeft     rune
	TopRight    rune
	BottomLeft  rune
	BottomRight rune

	// Optional junctions.
	MidLeft   rune
	MidRight  rune
	MidTop    rune
	MidBottom rune
	Mid       rune
}

// NewBorder builds a Border from a glyph pattern. The pattern must contain
// at least 8 runes in the order: top-left, top, top-right, left, right,
// bottom-left, bottom, bottom-right. Runes 9-13, when present, are the
// junction glyphs: mid-left, mid-right, mid-top, mid-bottom, cross.
// A shorter pattern is a construction error.
func NewBorder(pattern string) (Border, error) {
	glyphs := []rune(pattern)
	if len(glyphs) < 8 {
		return Border{}, fmt.Errorf("border pattern needs at least 8 glyphs, got %d", len(glyphs))
	}

	b := Border{
		TopLeft:     glyphs[0],
		Top:         glyphs[1],
		TopRight:    glyphs[2],
		Left:        glyphs[3],
		Right:       glyphs[4],
		BottomLeft:  glyphs[5],
		Bottom:      glyphs[6],
		BottomRight: glyphs[7],
	}

	optional := []*rune{&b.MidLeft, &b.MidRight, &b.MidTop, &b.MidBottom, &b.Mid}
	for i, dst := range optional {
		if 8+i < len(glyphs) {
			*dst = glyphs[8+i]
		}
	}

	return b, nil
}

// NormalBorder returns a border with single-line box-drawing characters.
func NormalBorder() Border {
	return Border{
		TopLeft:     '┌',
		Top:         '─',
		TopRight:    '┐',
		Left:        '│',
		Right:       '│',
		BottomLeft:  '└',
		Bottom:      '─',
		BottomRight: '┘',
		MidLeft:     '├',
		MidRight:    '┤',
		MidTop:      '┬',
		MidBottom:   '┴',
		Mid:         '┼',
	}
}

// RoundedBorder returns a border with rounded corner characters.
func RoundedBorder() Border {
	b := NormalBorder()
	b.TopLeft = '╭'
	b.TopRight = '╮'
	b.BottomLeft = '╰'
	b.BottomRight = '╯'
	return b
}

// ThickBorder returns a border with heavy box-drawing characters.
func ThickBorder() Border {
	return Border{
		TopLeft:     '┏',
		Top:         '━',
		TopRight:    '┓',
		Left:        '┃',
		Right:       '┃',
		BottomLeft:  '┗',
		Bottom:      '━',
		BottomRight: '┛',
		MidLeft:     '┣',
		MidRight:    '┫',
		MidTop:      '┳',
		MidBottom:   '┻',
		Mid:         '╋',
	}
}

// DoubleBorder returns a border with double-line box-drawing characters.
func DoubleBorder() Border {
	return Border{
		TopLeft:     '╔',
		Top:         '═',
		TopRight:    '╗',
		Left:        '║',
		Right:       '║',
		BottomLeft:  '╚',
		Bottom:      '═',
		BottomRight: '╝',
		MidLeft:     '╠',
		MidRight:    '╣',
		MidTop:      '╦',
		MidBottom:   '╩',
		Mid:         '╬',
	}
}

// ASCIIBorder returns a border drawn with plain ASCII characters.
func ASCIIBorder() Border {
	return Border{
		TopLeft:     '+',
		Top:         '-',
		TopRight:    '+',
		Left:        '|',
		Right:       '|',
		BottomLeft:  '+',
		Bottom:      '-',
		BottomRight: '+',
		MidLeft:     '+',
		MidRight:    '+',
		MidTop:      '+',
		MidBottom:   '+',
		Mid:         '+',
	}
}

// HiddenBorder returns a border that occupies space but draws nothing.
func HiddenBorder() Border {
	return Border{
		TopLeft:     ' ',
		Top:         ' ',
		TopRight:    ' ',
		Left:        ' ',
		Right:       ' ',
		BottomLeft:  ' ',
		Bottom:      ' ',
		BottomRight: ' ',
		MidLeft:     ' ',
		MidRight:    ' ',
		MidTop:      ' ',
		MidBottom:   ' ',
		Mid:         ' ',
	}
}

// MergeBorders overlays partial border glyphs on a base border.
// Every non-zero glyph in overlay replaces the base glyph; zero glyphs fall
// back to the base, field by field.
func MergeBorders(base, overlay Border) Border {
	merge := func(b, o rune) rune {
		if o != 0 {
			return o
		}
		return b
	}
	return Border{
		Top:         merge(base.Top, overlay.Top),
		Bottom:      merge(base.Bottom, overlay.Bottom),
		Left:        merge(base.Left, overlay.Left),
		Right:       merge(base.Right, overlay.Right),
		TopLeft:     merge(base.TopLeft, overlay.TopLeft),
		TopRight:    merge(base.TopRight, overlay.TopRight),
		BottomLeft:  merge(base.BottomLeft, overlay.BottomLeft),
		BottomRight: merge(base.BottomRight, overlay.BottomRight),
		MidLeft:     merge(base.MidLeft, overlay.MidLeft),
		MidRight:    merge(base.MidRight, overlay.MidRight),
		MidTop:      merge(base.MidTop, overlay.MidTop),
		MidBottom:   merge(base.MidBottom, overlay.MidBottom),
		Mid:         merge(base.Mid, overlay.Mid),
	}
}

// GlyphAt resolves the glyph for a border cell against the active sides.
// Edge glyphs render as a space when their side is inactive. Corners render
// as the true corner glyph only when both adjacent sides are active, as the
// single active side's edge glyph when exactly one is active, and as a
// space when neither is.
func (b Border) GlyphAt(pos BorderPosition, sides BorderSide) rune {
	edge := func(active bool, glyph rune) rune {
		if active {
			return glyph
		}
		return ' '
	}
	corner := func(vertical, horizontal bool, cornerGlyph, vGlyph, hGlyph rune) rune {
		switch {
		case vertical && horizontal:
			return cornerGlyph
		case vertical:
			return vGlyph
		case horizontal:
			return hGlyph
		default:
			return ' '
		}
	}

	switch pos {
	case BorderPosTop:
		return edge(sides.Has(BorderTop), b.Top)
	case BorderPosBottom:
		return edge(sides.Has(BorderBottom), b.Bottom)
	case BorderPosLeft:
		return edge(sides.Has(BorderLeft), b.Left)
	case BorderPosRight:
		return edge(sides.Has(BorderRight), b.Right)
	case BorderPosTopLeft:
		return corner(sides.Has(BorderLeft), sides.Has(BorderTop), b.TopLeft, b.Left, b.Top)
	case BorderPosTopRight:
		return corner(sides.Has(BorderRight), sides.Has(BorderTop), b.TopRight, b.Right, b.Top)
	case BorderPosBottomLeft:
		return corner(sides.Has(BorderLeft), sides.Has(BorderBottom), b.BottomLeft, b.Left, b.Bottom)
	case BorderPosBottomRight:
		return corner(sides.Has(BorderRight), sides.Has(BorderBottom), b.BottomRight, b.Right, b.Bottom)
	}
	return ' '
}

// RenderBox frames content lines with the border, drawing only the active
// sides. Every content line is right-padded with spaces to the box width
// (targetWidth, or the widest line's display width when targetWidth <= 0)
// before the left/right glyphs are attached. Top and bottom rows are
// emitted only when their side is active. An empty side mask returns the
// lines unchanged.
func RenderBox(lines []string, b Border, sides BorderSide, targetWidth int) []string {
	if sides == BorderNone {
		return lines
	}

	width := targetWidth
	if width <= 0 {
		for _, line := range lines {
			if w := MeasureWidth(line); w > width {
				width = w
			}
		}
	}

	left := string(b.GlyphAt(BorderPosLeft, sides))
	right := string(b.GlyphAt(BorderPosRight, sides))

	out := make([]string, 0, len(lines)+2)

	if sides.Has(BorderTop) {
		out = append(out, string(b.GlyphAt(BorderPosTopLeft, sides))+
			strings.Repeat(string(b.Top), width)+
			string(b.GlyphAt(BorderPosTopRight, sides)))
	}

	for _, line := range lines {
		if pad := width - MeasureWidth(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		out = append(out, left+line+right)
	}

	if sides.Has(BorderBottom) {
		out = append(out, string(b.GlyphAt(BorderPosBottomLeft, sides))+
			strings.Repeat(string(b.Bottom), width)+
			string(b.GlyphAt(BorderPosBottomRight, sides)))
	}

	return out
}

// RenderBoxTitle frames content lines like RenderBox and centers a title in
// the top border row. The title is truncated to the available display width.
// Without an active top side this is identical to RenderBox.
func RenderBoxTitle(lines []string, b Border, sides BorderSide, targetWidth int, title string) []string {
	out := RenderBox(lines, b, sides, targetWidth)
	if !sides.Has(BorderTop) || len(out) == 0 || title == "" {
		return out
	}

	top := []rune(out[0])
	available := len(top) - 2
	if available <= 0 {
		return out
	}

	titleRunes := truncateToWidth(title, available)
	titleWidth := MeasureWidth(string(titleRunes))
	start := 1 + (available-titleWidth)/2

	col := start
	for _, r := range titleRunes {
		top[col] = r
		col++
	}
	out[0] = string(top)
	return out
}

// RenderBoxGradient frames content lines like RenderBox and colors every
// border glyph by its position along the frame perimeter, emitting
// foreground sequences under the given profile. Content cells keep their
// own styling.
func RenderBoxGradient(lines []string, b Border, sides BorderSide, targetWidth int, g Gradient, p Profile) []string {
	framed := RenderBox(lines, b, sides, targetWidth)
	if sides == BorderNone || len(framed) == 0 {
		return framed
	}

	w := MeasureWidth(framed[0])
	h := len(framed)

	glyph := func(x, y int, r rune) string {
		seq := ColorSequence(g.At(borderPerimeterT(x, y, w, h)), p, false)
		if seq == "" {
			return string(r)
		}
		return seq + string(r) + ResetSequence
	}

	hasTop := sides.Has(BorderTop)
	hasBottom := sides.Has(BorderBottom)
	hasLeft := sides.Has(BorderLeft)
	hasRight := sides.Has(BorderRight)

	out := make([]string, h)
	for y, row := range framed {
		if (hasTop && y == 0) || (hasBottom && y == h-1) {
			var sb strings.Builder
			x := 0
			for _, r := range row {
				sb.WriteString(glyph(x, y, r))
				x += runeDisplayWidth(r)
			}
			out[y] = sb.String()
			continue
		}
		// An inactive side's column is space filler and stays uncolored.
		runes := []rune(row)
		left := string(runes[0])
		if hasLeft {
			left = glyph(0, y, runes[0])
		}
		right := string(runes[len(runes)-1])
		if hasRight {
			right = glyph(w-1, y, runes[len(runes)-1])
		}
		out[y] = left + string(runes[1:len(runes)-1]) + right
	}
	return out
}

// truncateToWidth returns the longest rune prefix of s that fits the given
// display width.
func truncateToWidth(s string, width int) []rune {
	var out []rune
	used := 0
	for _, r := range s {
		w := runeDisplayWidth(r)
		if used+w > width {
			break
		}
		out = append(out, r)
		used += w
	}
	return out
}

// borderPerimeterT parameterizes a border cell's position along the frame
// perimeter to [0,1], mirrored so the value rises over the first half and
// falls over the second. This avoids a color discontinuity where the
// perimeter wraps when a gradient is applied to the frame.
func borderPerimeterT(x, y, width, height int) float64 {
	w := float64(width)
	h := float64(height)
	perimeter := 2*w + 2*h - 4 // corners counted once
	if perimeter <= 0 {
		return 0
	}

	right := width - 1
	bottom := height - 1

	var pos float64
	switch {
	case y == 0:
		pos = float64(x)
	case x == right:
		pos = w - 1 + float64(y)
	case y == bottom:
		pos = w - 1 + h - 1 + float64(right-x)
	default:
		pos = w - 1 + h - 1 + w - 1 + float64(bottom-y)
	}

	t := pos / perimeter
	if t <= 0.5 {
		return 2 * t
	}
	return 2 * (1 - t)
}

// fingerprint encodes the border glyphs for style cache keys.
func (b Border) fingerprint() string {
	return string([]rune{
		b.TopLeft, b.Top, b.TopRight, b.Left, b.Right,
		b.BottomLeft, b.Bottom, b.BottomRight,
		b.MidLeft, b.MidRight, b.MidTop, b.MidBottom, b.Mid,
	})
}
