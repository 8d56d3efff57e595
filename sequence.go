package clikit

import "strconv"

// SGR decoration codes.
const (
	sgrReset         = 0
	sgrBold          = 1
	sgrFaint         = 2
	sgrItalic        = 3
	sgrUnderline     = 4
	sgrBlink         = 5
	sgrInverse       = 7
	sgrHidden        = 8
	sgrStrikethrough = 9
)

// ResetSequence is the SGR sequence that clears all attributes.
const ResetSequence = "\x1b[0m"

// seqBuilder efficiently builds ANSI escape sequences.
// It uses a pre-allocated buffer to minimize allocations.
type seqBuilder struct {
	buf []byte
}

// newSeqBuilder creates a new escape sequence builder with the given
// initial capacity.
func newSeqBuilder(capacity int) *seqBuilder {
	return &seqBuilder{
		buf: make([]byte, 0, capacity),
	}
}

// Reset clears the buffer for reuse.
func (e *seqBuilder) Reset() {
	e.buf = e.buf[:0]
}

// String returns the built output.
func (e *seqBuilder) String() string {
	return string(e.buf)
}

// Len returns the current length of the buffer.
func (e *seqBuilder) Len() int {
	return len(e.buf)
}

// writeCSI writes the Control Sequence Introducer (ESC [).
func (e *seqBuilder) writeCSI() {
	e.buf = append(e.buf, '\x1b', '[')
}

// writeInt writes an integer to the buffer.
func (e *seqBuilder) writeInt(n int) {
	e.buf = strconv.AppendInt(e.buf, int64(n), 10)
}

// SGR writes a single-parameter SGR sequence (ESC [ n m).
func (e *seqBuilder) SGR(code int) {
	e.writeCSI()
	e.writeInt(code)
	e.buf = append(e.buf, 'm')
}

// ResetStyle resets all text attributes to default.
func (e *seqBuilder) ResetStyle() {
	e.SGR(sgrReset)
}

// WriteString appends a string to the buffer.
func (e *seqBuilder) WriteString(s string) {
	e.buf = append(e.buf, s...)
}

// ColorSGR writes the SGR sequence selecting the given color under the given
// profile. Colors the profile cannot represent natively are degraded first;
// default colors and the no-color profile produce no output.
func (e *seqBuilder) ColorSGR(c Color, p Profile, background bool) {
	if p == ProfileNoColor {
		return
	}
	// Adaptive colors reaching this point resolve to their dark variant.
	c = c.Resolve(true)

	// Degrade to what the profile can express.
	switch c.Type() {
	case ColorDefault:
		return
	case ColorRGB:
		if p < ProfileTrueColor {
			if p >= ProfileANSI256 {
				c = c.ToANSI256()
			} else {
				c = c.ToANSI16()
			}
		}
	case ColorANSI256:
		if p < ProfileANSI256 {
			c = c.ToANSI16()
		}
	}

	switch c.Type() {
	case ColorANSI16:
		// 0-7: 30-37 fg / 40-47 bg; 8-15: 90-97 fg / 100-107 bg
		idx := int(c.Index())
		base := 30
		if background {
			base = 40
		}
		if idx >= 8 {
			base += 60
			idx -= 8
		}
		e.SGR(base + idx)

	case ColorANSI256:
		// ESC[38;5;{n}m fg / ESC[48;5;{n}m bg
		e.writeCSI()
		if background {
			e.writeInt(48)
		} else {
			e.writeInt(38)
		}
		e.buf = append(e.buf, ';', '5', ';')
		e.writeInt(int(c.Index()))
		e.buf = append(e.buf, 'm')

	case ColorRGB:
		// ESC[38;2;{r};{g};{b}m fg / ESC[48;2;{r};{g};{b}m bg
		r, g, b := c.RGB()
		e.writeCSI()
		if background {
			e.writeInt(48)
		} else {
			e.writeInt(38)
		}
		e.buf = append(e.buf, ';', '2', ';')
		e.writeInt(int(r))
		e.buf = append(e.buf, ';')
		e.writeInt(int(g))
		e.buf = append(e.buf, ';')
		e.writeInt(int(b))
		e.buf = append(e.buf, 'm')
	}
}

// ColorSequence returns the complete SGR sequence selecting the given color
// under the given profile, or "" when no sequence is required.
func ColorSequence(c Color, p Profile, background bool) string {
	e := newSeqBuilder(16)
	e.ColorSGR(c, p, background)
	return e.String()
}

// DecorationSGR writes one SGR sequence per active decoration, in ascending
// SGR-code order so output is deterministic.
func (e *seqBuilder) DecorationSGR(attrs Attr) {
	ordered := [...]struct {
		attr Attr
		code int
	}{
		{AttrBold, sgrBold},
		{AttrFaint, sgrFaint},
		{AttrItalic, sgrItalic},
		{AttrUnderline, sgrUnderline},
		{AttrBlink, sgrBlink},
		{AttrInverse, sgrInverse},
		{AttrHidden, sgrHidden},
		{AttrStrikethrough, sgrStrikethrough},
	}
	for _, d := range ordered {
		if attrs&d.attr != 0 {
			e.SGR(d.code)
		}
	}
}
