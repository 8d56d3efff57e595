package clikit

import "strings"

// Attr represents text decorations as a bitfield for efficient comparison
// and storage.
type Attr uint16

const (
	// AttrNone represents no text decorations.
	AttrNone Attr = 0
	// AttrBold makes text bold/bright.
	AttrBold Attr = 1 << iota
	// AttrFaint makes text dimmed/faint.
	AttrFaint
	// AttrItalic makes text italic.
	AttrItalic
	// AttrUnderline underlines the text.
	AttrUnderline
	// AttrBlink makes text blink (rarely supported).
	AttrBlink
	// AttrInverse swaps foreground and background colors.
	AttrInverse
	// AttrHidden renders the text invisible.
	AttrHidden
	// AttrStrikethrough draws a line through the text.
	AttrStrikethrough
)

// Align specifies horizontal alignment of text within its content area.
type Align uint8

const (
	// AlignLeft aligns text to the left edge (default).
	AlignLeft Align = iota
	// AlignCenter centers text horizontally.
	AlignCenter
	// AlignRight aligns text to the right edge.
	AlignRight
	// AlignJustify distributes extra space between words.
	AlignJustify
)

// VAlign specifies vertical alignment of lines within a target height.
type VAlign uint8

const (
	// VAlignTop packs lines at the top (default).
	VAlignTop VAlign = iota
	// VAlignMiddle centers lines vertically.
	VAlignMiddle
	// VAlignBottom packs lines at the bottom.
	VAlignBottom
)

// Overflow specifies what happens to lines wider than the target width.
type Overflow uint8

const (
	// OverflowWrap word-wraps long lines (default).
	OverflowWrap Overflow = iota
	// OverflowVisible leaves long lines untouched.
	OverflowVisible
	// OverflowHidden hard-truncates long lines without a marker.
	OverflowHidden
	// OverflowEllipsis truncates long lines with a trailing marker.
	OverflowEllipsis
)

// Edges represents spacing on four sides of a box.
type Edges struct {
	Top, Right, Bottom, Left int
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n int) Edges {
	return Edges{Top: n, Right: n, Bottom: n, Left: n}
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal
// (left/right) values.
func EdgeSymmetric(v, h int) Edges {
	return Edges{Top: v, Right: h, Bottom: v, Left: h}
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l int) Edges {
	return Edges{Top: t, Right: r, Bottom: b, Left: l}
}

// Horizontal returns the sum of Left and Right.
func (e Edges) Horizontal() int {
	return e.Left + e.Right
}

// Vertical returns the sum of Top and Bottom.
func (e Edges) Vertical() int {
	return e.Top + e.Bottom
}

// IsZero returns true if all edge values are zero.
func (e Edges) IsZero() bool {
	return e == Edges{}
}

// TransformKind identifies a text transform.
type TransformKind uint8

const (
	// TransformNone leaves text unchanged.
	TransformNone TransformKind = iota
	// TransformUpper upper-cases text.
	TransformUpper
	// TransformLower lower-cases text.
	TransformLower
	// TransformCapitalize upper-cases the first letter of each word.
	TransformCapitalize
	// TransformCustom applies a user-supplied function.
	TransformCustom
)

// TextTransform describes how rendered text content is transformed.
type TextTransform struct {
	Kind TransformKind
	// Fn is the custom transform; only consulted when Kind is TransformCustom.
	Fn func(string) string
}

// Apply runs the transform over s.
func (t TextTransform) Apply(s string) string {
	switch t.Kind {
	case TransformUpper:
		return strings.ToUpper(s)
	case TransformLower:
		return strings.ToLower(s)
	case TransformCapitalize:
		return capitalizeWords(s)
	case TransformCustom:
		if t.Fn != nil {
			return t.Fn(s)
		}
	}
	return s
}

// capitalizeWords upper-cases the first rune of every space-separated word.
func capitalizeWords(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	atWordStart := true
	for _, r := range s {
		if r == ' ' || r == '\n' || r == '\t' {
			atWordStart = true
			b.WriteRune(r)
			continue
		}
		if atWordStart {
			b.WriteString(strings.ToUpper(string(r)))
			atWordStart = false
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// styleProp identifies a style property for set-tracking, inheritance,
// merge, and fingerprinting. IDs are stable; fingerprints depend on them.
type styleProp uint32

const (
	propForeground styleProp = 1 << iota
	propBackground
	propBorder
	propBorderSides
	propBorderForeground
	propBorderBackground
	propPadding
	propMargin
	propWidth
	propHeight
	propMinWidth
	propMinHeight
	propMaxWidth
	propMaxHeight
	propAlign
	propVAlign
	propTransform
	propOverflow
	propWordBreak
	propInline
	propGradient
)

// inheritableProps are the only properties that propagate from a parent
// style when unset locally. Spacing, dimensions, and borders never inherit.
const inheritableProps = propForeground | propBackground | propTransform | propWordBreak

// Style is an immutable, composable description of how text is rendered:
// colors, decorations, border, spacing, dimensions, alignment, transform,
// and overflow policy. Every setter returns a new value; a Style is never
// mutated after construction.
//
// The zero value is a fully-unset style that renders text unchanged.
type Style struct {
	props styleProp // which properties are explicitly set

	fg Color
	bg Color

	attrs    Attr // decoration values
	attrsSet Attr // which decorations were explicitly assigned

	border      Border
	borderSides BorderSide
	borderFg    Color
	borderBg    Color
	padding     Edges
	margin      Edges
	width       int
	height      int
	minWidth    int
	minHeight   int
	maxWidth    int
	maxHeight   int
	align       Align
	valign      VAlign
	transform   TextTransform
	overflow    Overflow
	wordBreak   bool
	inline      bool
	gradient    *Gradient
	parent      *Style
}

// NewStyle returns a new empty Style.
func NewStyle() Style {
	return Style{}
}

// NewStyleInheriting returns a new empty Style whose unset inheritable
// properties (colors, decorations, transform, word-break) resolve from
// parent. The parent is fixed at construction; styles carry no mutable
// links, so inheritance chains cannot form cycles.
func NewStyleInheriting(parent Style) Style {
	return Style{parent: &parent}
}

// Foreground returns a new Style with the given foreground color.
func (s Style) Foreground(c Color) Style {
	s.fg = c
	s.props |= propForeground
	return s
}

// Background returns a new Style with the given background color.
func (s Style) Background(c Color) Style {
	s.bg = c
	s.props |= propBackground
	return s
}

// setAttr explicitly assigns one decoration flag.
func (s Style) setAttr(a Attr, v bool) Style {
	if v {
		s.attrs |= a
	} else {
		s.attrs &^= a
	}
	s.attrsSet |= a
	return s
}

// Bold returns a new Style with the bold decoration assigned.
func (s Style) Bold(v bool) Style { return s.setAttr(AttrBold, v) }

// Faint returns a new Style with the faint decoration assigned.
func (s Style) Faint(v bool) Style { return s.setAttr(AttrFaint, v) }

// Italic returns a new Style with the italic decoration assigned.
func (s Style) Italic(v bool) Style { return s.setAttr(AttrItalic, v) }

// Underline returns a new Style with the underline decoration assigned.
func (s Style) Underline(v bool) Style { return s.setAttr(AttrUnderline, v) }

// Blink returns a new Style with the blink decoration assigned.
func (s Style) Blink(v bool) Style { return s.setAttr(AttrBlink, v) }

// Inverse returns a new Style with the inverse decoration assigned.
func (s Style) Inverse(v bool) Style { return s.setAttr(AttrInverse, v) }

// Hidden returns a new Style with the hidden decoration assigned.
func (s Style) Hidden(v bool) Style { return s.setAttr(AttrHidden, v) }

// Strikethrough returns a new Style with the strikethrough decoration assigned.
func (s Style) Strikethrough(v bool) Style { return s.setAttr(AttrStrikethrough, v) }

// BorderStyle returns a new Style framed with the given border on all sides.
func (s Style) BorderStyle(b Border) Style {
	s.border = b
	s.props |= propBorder
	if s.props&propBorderSides == 0 {
		s.borderSides = BorderAll
		s.props |= propBorderSides
	}
	return s
}

// BorderSides returns a new Style limiting the border to the given sides.
func (s Style) BorderSides(sides BorderSide) Style {
	s.borderSides = sides
	s.props |= propBorderSides
	return s
}

// BorderForeground returns a new Style with the given border glyph color.
func (s Style) BorderForeground(c Color) Style {
	s.borderFg = c
	s.props |= propBorderForeground
	return s
}

// BorderBackground returns a new Style with the given border background color.
func (s Style) BorderBackground(c Color) Style {
	s.borderBg = c
	s.props |= propBorderBackground
	return s
}

// Padding returns a new Style with the given padding.
func (s Style) Padding(e Edges) Style {
	s.padding = e
	s.props |= propPadding
	return s
}

// Margin returns a new Style with the given margin.
func (s Style) Margin(e Edges) Style {
	s.margin = e
	s.props |= propMargin
	return s
}

// Width returns a new Style with a fixed content width in cells.
func (s Style) Width(w int) Style {
	s.width = w
	s.props |= propWidth
	return s
}

// Height returns a new Style with a fixed content height in lines.
func (s Style) Height(h int) Style {
	s.height = h
	s.props |= propHeight
	return s
}

// MinWidth returns a new Style with a minimum content width.
func (s Style) MinWidth(w int) Style {
	s.minWidth = w
	s.props |= propMinWidth
	return s
}

// MinHeight returns a new Style with a minimum content height.
func (s Style) MinHeight(h int) Style {
	s.minHeight = h
	s.props |= propMinHeight
	return s
}

// MaxWidth returns a new Style with a maximum content width.
func (s Style) MaxWidth(w int) Style {
	s.maxWidth = w
	s.props |= propMaxWidth
	return s
}

// MaxHeight returns a new Style with a maximum content height.
func (s Style) MaxHeight(h int) Style {
	s.maxHeight = h
	s.props |= propMaxHeight
	return s
}

// AlignHorizontal returns a new Style with the given horizontal alignment.
func (s Style) AlignHorizontal(a Align) Style {
	s.align = a
	s.props |= propAlign
	return s
}

// AlignVertical returns a new Style with the given vertical alignment.
func (s Style) AlignVertical(a VAlign) Style {
	s.valign = a
	s.props |= propVAlign
	return s
}

// Transform returns a new Style with the given text transform.
func (s Style) Transform(t TextTransform) Style {
	s.transform = t
	s.props |= propTransform
	return s
}

// Overflow returns a new Style with the given overflow policy.
func (s Style) Overflow(o Overflow) Style {
	s.overflow = o
	s.props |= propOverflow
	return s
}

// WordBreak returns a new Style controlling whether words longer than the
// target width are hard-split (true) or emitted on their own overflowing
// line (false, default).
func (s Style) WordBreak(v bool) Style {
	s.wordBreak = v
	s.props |= propWordBreak
	return s
}

// Inline returns a new Style controlling inline rendering: inline styles
// collapse newlines and skip the box model (border, padding, margin).
func (s Style) Inline(v bool) Style {
	s.inline = v
	s.props |= propInline
	return s
}

// ForegroundGradient returns a new Style whose text foreground is colored
// per character by the given gradient, overriding Foreground.
func (s Style) ForegroundGradient(g Gradient) Style {
	s.gradient = &g
	s.props |= propGradient
	return s
}

// isSet reports whether a property was explicitly assigned on this style,
// ignoring the parent chain.
func (s Style) isSet(p styleProp) bool {
	return s.props&p != 0
}

// GetForeground returns the foreground color, or the default color if unset.
func (s Style) GetForeground() Color {
	if s.isSet(propForeground) {
		return s.fg
	}
	return DefaultColor()
}

// GetBackground returns the background color, or the default color if unset.
func (s Style) GetBackground() Color {
	if s.isSet(propBackground) {
		return s.bg
	}
	return DefaultColor()
}

// Attrs returns the active decoration flags.
func (s Style) Attrs() Attr {
	return s.attrs
}

// HasAttr returns true if the style has the given decoration(s) active.
func (s Style) HasAttr(a Attr) bool {
	return s.attrs&a == a
}
