package clikit

import (
	"reflect"
	"strconv"
	"strings"
)

// Resolved walks the parent chain and returns a parent-less style in which
// every unset inheritable property (colors, decoration flags, transform,
// word-break) takes the value of the nearest ancestor that set it.
// Spacing, dimensions, and borders never inherit.
func (s Style) Resolved() Style {
	out := s
	out.parent = nil

	for p := s.parent; p != nil; p = p.parent {
		if !out.isSet(propForeground) && p.isSet(propForeground) {
			out.fg = p.fg
			out.props |= propForeground
		}
		if !out.isSet(propBackground) && p.isSet(propBackground) {
			out.bg = p.bg
			out.props |= propBackground
		}
		if !out.isSet(propTransform) && p.isSet(propTransform) {
			out.transform = p.transform
			out.props |= propTransform
		}
		if !out.isSet(propWordBreak) && p.isSet(propWordBreak) {
			out.wordBreak = p.wordBreak
			out.props |= propWordBreak
		}
		// Decorations inherit per flag.
		unset := p.attrsSet &^ out.attrsSet
		out.attrs |= p.attrs & unset
		out.attrsSet |= unset
	}

	return out
}

// Merge returns a parent-less style holding a's resolved properties
// overridden by b's resolved properties. Every property b has set replaces
// a's value; everything else keeps a's value.
func Merge(a, b Style) Style {
	ra := a.Resolved()
	rb := b.Resolved()
	out := ra

	if rb.isSet(propForeground) {
		out.fg = rb.fg
		out.props |= propForeground
	}
	if rb.isSet(propBackground) {
		out.bg = rb.bg
		out.props |= propBackground
	}
	if rb.isSet(propBorder) {
		out.border = rb.border
		out.props |= propBorder
	}
	if rb.isSet(propBorderSides) {
		out.borderSides = rb.borderSides
		out.props |= propBorderSides
	}
	if rb.isSet(propBorderForeground) {
		out.borderFg = rb.borderFg
		out.props |= propBorderForeground
	}
	if rb.isSet(propBorderBackground) {
		out.borderBg = rb.borderBg
		out.props |= propBorderBackground
	}
	if rb.isSet(propPadding) {
		out.padding = rb.padding
		out.props |= propPadding
	}
	if rb.isSet(propMargin) {
		out.margin = rb.margin
		out.props |= propMargin
	}
	if rb.isSet(propWidth) {
		out.width = rb.width
		out.props |= propWidth
	}
	if rb.isSet(propHeight) {
		out.height = rb.height
		out.props |= propHeight
	}
	if rb.isSet(propMinWidth) {
		out.minWidth = rb.minWidth
		out.props |= propMinWidth
	}
	if rb.isSet(propMinHeight) {
		out.minHeight = rb.minHeight
		out.props |= propMinHeight
	}
	if rb.isSet(propMaxWidth) {
		out.maxWidth = rb.maxWidth
		out.props |= propMaxWidth
	}
	if rb.isSet(propMaxHeight) {
		out.maxHeight = rb.maxHeight
		out.props |= propMaxHeight
	}
	if rb.isSet(propAlign) {
		out.align = rb.align
		out.props |= propAlign
	}
	if rb.isSet(propVAlign) {
		out.valign = rb.valign
		out.props |= propVAlign
	}
	if rb.isSet(propTransform) {
		out.transform = rb.transform
		out.props |= propTransform
	}
	if rb.isSet(propOverflow) {
		out.overflow = rb.overflow
		out.props |= propOverflow
	}
	if rb.isSet(propWordBreak) {
		out.wordBreak = rb.wordBreak
		out.props |= propWordBreak
	}
	if rb.isSet(propInline) {
		out.inline = rb.inline
		out.props |= propInline
	}
	if rb.isSet(propGradient) {
		out.gradient = rb.gradient
		out.props |= propGradient
	}

	// Decorations override per flag.
	out.attrs = (out.attrs &^ rb.attrsSet) | (rb.attrs & rb.attrsSet)
	out.attrsSet |= rb.attrsSet

	return out
}

// Fingerprint returns a canonical, order-independent encoding of the
// resolved style's set properties, suitable as a cache key: two styles
// built by different setter orders produce identical fingerprints.
func (s Style) Fingerprint() string {
	r := s.Resolved()

	var b strings.Builder
	b.Grow(64)

	writeColor := func(tag string, c Color) {
		b.WriteString(tag)
		b.WriteByte(':')
		writeColorValue(&b, c)
		b.WriteByte(';')
	}
	writeEdges := func(tag string, e Edges) {
		b.WriteString(tag)
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(e.Top))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(e.Right))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(e.Bottom))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(e.Left))
		b.WriteByte(';')
	}
	writeInt := func(tag string, v int) {
		b.WriteString(tag)
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(v))
		b.WriteByte(';')
	}

	if r.isSet(propForeground) {
		writeColor("fg", r.fg)
	}
	if r.isSet(propBackground) {
		writeColor("bg", r.bg)
	}
	if r.attrsSet != 0 {
		writeInt("at", int(r.attrs))
		writeInt("as", int(r.attrsSet))
	}
	if r.isSet(propBorder) {
		b.WriteString("bd:")
		b.WriteString(r.border.fingerprint())
		b.WriteByte(';')
	}
	if r.isSet(propBorderSides) {
		writeInt("bs", int(r.borderSides))
	}
	if r.isSet(propBorderForeground) {
		writeColor("bf", r.borderFg)
	}
	if r.isSet(propBorderBackground) {
		writeColor("bb", r.borderBg)
	}
	if r.isSet(propPadding) {
		writeEdges("pd", r.padding)
	}
	if r.isSet(propMargin) {
		writeEdges("mg", r.margin)
	}
	if r.isSet(propWidth) {
		writeInt("w", r.width)
	}
	if r.isSet(propHeight) {
		writeInt("h", r.height)
	}
	if r.isSet(propMinWidth) {
		writeInt("nw", r.minWidth)
	}
	if r.isSet(propMinHeight) {
		writeInt("nh", r.minHeight)
	}
	if r.isSet(propMaxWidth) {
		writeInt("xw", r.maxWidth)
	}
	if r.isSet(propMaxHeight) {
		writeInt("xh", r.maxHeight)
	}
	if r.isSet(propAlign) {
		writeInt("al", int(r.align))
	}
	if r.isSet(propVAlign) {
		writeInt("vl", int(r.valign))
	}
	if r.isSet(propTransform) {
		writeInt("tf", int(r.transform.Kind))
		if r.transform.Kind == TransformCustom && r.transform.Fn != nil {
			// Custom transforms key by function identity.
			b.WriteString("tp:")
			b.WriteString(strconv.FormatUint(uint64(reflect.ValueOf(r.transform.Fn).Pointer()), 16))
			b.WriteByte(';')
		}
	}
	if r.isSet(propOverflow) {
		writeInt("of", int(r.overflow))
	}
	if r.isSet(propWordBreak) {
		if r.wordBreak {
			b.WriteString("wb:1;")
		} else {
			b.WriteString("wb:0;")
		}
	}
	if r.isSet(propInline) {
		if r.inline {
			b.WriteString("in:1;")
		} else {
			b.WriteString("in:0;")
		}
	}
	if r.isSet(propGradient) && r.gradient != nil {
		b.WriteString("gr:")
		b.WriteString(r.gradient.fingerprint())
		b.WriteByte(';')
	}

	return b.String()
}

// writeColorValue encodes a non-adaptive color compactly for fingerprints.
func writeColorValue(b *strings.Builder, c Color) {
	switch c.Type() {
	case ColorDefault:
		b.WriteString("d")
	case ColorANSI16:
		b.WriteString("a")
		b.WriteString(strconv.Itoa(int(c.Index())))
	case ColorANSI256:
		b.WriteString("x")
		b.WriteString(strconv.Itoa(int(c.Index())))
	case ColorRGB:
		cr, cg, cb := c.RGB()
		b.WriteString("r")
		b.WriteString(strconv.Itoa(int(cr)))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(int(cg)))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(int(cb)))
	case ColorAdaptive:
		light, dark := c.Adaptive()
		b.WriteString("{")
		writeColorValue(b, light)
		b.WriteByte('/')
		writeColorValue(b, dark)
		b.WriteString("}")
	}
}
