package clikit

import "strings"

// alignLine pads a line out to the target display width according to the
// horizontal alignment. Lines at or beyond the width are returned unchanged.
func alignLine(line string, width int, a Align) string {
	diff := width - MeasureWidth(line)
	if diff <= 0 {
		return line
	}

	switch a {
	case AlignRight:
		return strings.Repeat(" ", diff) + line
	case AlignCenter:
		left := diff / 2
		return strings.Repeat(" ", left) + line + strings.Repeat(" ", diff-left)
	case AlignJustify:
		return justifyLine(line, width)
	default: // AlignLeft
		return line + strings.Repeat(" ", diff)
	}
}

// alignLines aligns every line to the target width.
func alignLines(lines []string, width int, a Align) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = alignLine(line, width, a)
	}
	return out
}

// justifyLine distributes the width difference as extra spaces between
// words, assigning remainder spaces to the earliest gaps first. Lines with
// fewer than two words fall back to left alignment.
func justifyLine(line string, width int) string {
	words := strings.Fields(line)
	if len(words) < 2 {
		return alignLine(strings.Join(words, " "), width, AlignLeft)
	}

	wordWidth := 0
	for _, w := range words {
		wordWidth += MeasureWidth(w)
	}

	gaps := len(words) - 1
	total := width - wordWidth
	if total < gaps {
		// Not enough room to justify; single spaces are the floor.
		total = gaps
	}

	base := total / gaps
	extra := total % gaps

	var b strings.Builder
	b.Grow(width)
	for i, w := range words {
		b.WriteString(w)
		if i == gaps {
			break
		}
		pad := base
		if i < extra {
			pad++
		}
		b.WriteString(strings.Repeat(" ", pad))
	}
	return b.String()
}

// alignVertical pads or truncates lines to the target height. Padding adds
// blank lines (below for top, above for bottom, split for middle);
// truncation keeps a contiguous run, never reordering lines.
func alignVertical(lines []string, height int, v VAlign) []string {
	if height <= 0 || len(lines) == height {
		return lines
	}

	if len(lines) > height {
		excess := len(lines) - height
		switch v {
		case VAlignBottom:
			return lines[excess:]
		case VAlignMiddle:
			top := excess / 2
			return lines[top : top+height]
		default: // VAlignTop
			return lines[:height]
		}
	}

	missing := height - len(lines)
	blanks := func(n int) []string {
		out := make([]string, n)
		return out
	}

	switch v {
	case VAlignBottom:
		return append(blanks(missing), lines...)
	case VAlignMiddle:
		top := missing / 2
		out := append(blanks(top), lines...)
		return append(out, blanks(missing-top)...)
	default: // VAlignTop
		return append(append([]string{}, lines...), blanks(missing)...)
	}
}
