package clikit

import "strings"

// Ellipsis is the marker appended by OverflowEllipsis truncation.
const Ellipsis = "…"

// Wrap greedily packs space-separated words into lines whose display width
// does not exceed width. Existing newlines are respected as hard breaks.
// A single word wider than width is emitted on its own overflowing line
// unless breakWords is true, in which case it is hard-split at the width.
func Wrap(text string, width int, breakWords bool) []string {
	if width <= 0 {
		return strings.Split(text, "\n")
	}

	var out []string
	for _, paragraph := range strings.Split(text, "\n") {
		out = append(out, wrapLine(paragraph, width, breakWords)...)
	}
	return out
}

// wrapLine wraps a single newline-free line.
func wrapLine(line string, width int, breakWords bool) []string {
	words := strings.Fields(line)
	if len(words) == 0 {
		return []string{""}
	}

	var (
		out     []string
		current strings.Builder
		used    int
	)

	flush := func() {
		out = append(out, current.String())
		current.Reset()
		used = 0
	}

	for _, word := range words {
		w := MeasureWidth(word)

		if w > width && breakWords {
			// Hard-split an oversized word across as many lines as needed.
			for _, part := range splitWord(word, width) {
				pw := MeasureWidth(part)
				gap := 0
				if used > 0 {
					gap = 1
				}
				if used+gap+pw > width && used > 0 {
					flush()
					gap = 0
				}
				if gap > 0 {
					current.WriteByte(' ')
					used++
				}
				current.WriteString(part)
				used += pw
			}
			continue
		}

		gap := 0
		if used > 0 {
			gap = 1
		}
		if used+gap+w > width {
			if used > 0 {
				flush()
			}
			// The word starts its own line even if it overflows.
			current.WriteString(word)
			used = w
			continue
		}

		if gap > 0 {
			current.WriteByte(' ')
			used++
		}
		current.WriteString(word)
		used += w
	}

	if current.Len() > 0 || len(out) == 0 {
		flush()
	}
	return out
}

// splitWord breaks a word into chunks of at most width display cells.
func splitWord(word string, width int) []string {
	var (
		out     []string
		current strings.Builder
		used    int
	)
	for _, r := range word {
		w := runeDisplayWidth(r)
		if used+w > width && used > 0 {
			out = append(out, current.String())
			current.Reset()
			used = 0
		}
		current.WriteRune(r)
		used += w
	}
	if current.Len() > 0 {
		out = append(out, current.String())
	}
	return out
}

// Truncate cuts a line to at most width display cells, appending marker
// (which counts against the width) when anything was removed. Lines already
// within the width are returned unchanged.
func Truncate(line string, width int, marker string) string {
	if MeasureWidth(line) <= width {
		return line
	}

	markerWidth := MeasureWidth(marker)
	budget := width - markerWidth
	if budget < 0 {
		budget = 0
	}

	kept := truncateToWidth(line, budget)
	return string(kept) + marker
}

// applyOverflow enforces the overflow policy on already-split lines.
// Wrap re-flows long lines; ellipsis and hidden truncate them; visible
// leaves them alone.
func applyOverflow(lines []string, width int, policy Overflow, breakWords bool) []string {
	if width <= 0 || policy == OverflowVisible {
		return lines
	}

	out := make([]string, 0, len(lines))
	for _, line := range lines {
		switch policy {
		case OverflowWrap:
			out = append(out, wrapLine(line, width, breakWords)...)
		case OverflowEllipsis:
			out = append(out, Truncate(line, width, Ellipsis))
		case OverflowHidden:
			out = append(out, Truncate(line, width, ""))
		default:
			out = append(out, line)
		}
	}
	return out
}
