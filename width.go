package clikit

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// MeasureWidth returns the number of terminal cells a string occupies.
// Wide (East-Asian) characters count as 2 cells, combining marks as 0, and
// escape sequences as 0. Grapheme clusters (emoji ZWJ sequences, flags)
// occupy at most 2 cells. This is the measurement every alignment, wrap,
// and border-fit decision is based on — never byte length or rune count.
func MeasureWidth(s string) int {
	if s == "" {
		return 0
	}
	plain := stripANSI(s)

	width := 0
	g := uniseg.NewGraphemes(plain)
	for g.Next() {
		width += clusterWidth(g.Str())
	}
	return width
}

// clusterWidth returns the display width of a single grapheme cluster.
func clusterWidth(cluster string) int {
	w := runewidth.StringWidth(cluster)
	// Multi-rune clusters (ZWJ emoji, flags) render as a single glyph
	// occupying at most two cells, whatever their rune sum suggests.
	if w > 2 && utf8.RuneCountInString(cluster) > 1 {
		return 2
	}
	return w
}

// runeDisplayWidth returns the display width of a single rune.
func runeDisplayWidth(r rune) int {
	return runewidth.RuneWidth(r)
}

// stripANSI removes common escape-sequence forms from text so they measure
// as zero cells. CSI and OSC sequences are skipped whole; other two-byte
// escapes are dropped.
func stripANSI(s string) string {
	// Fast path: no escape byte, nothing to strip.
	hasEsc := false
	for i := 0; i < len(s); i++ {
		if s[i] == 0x1b {
			hasEsc = true
			break
		}
	}
	if !hasEsc {
		return s
	}

	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); {
		if s[i] != 0x1b {
			out = append(out, s[i])
			i++
			continue
		}

		if i+1 >= len(s) {
			i++
			continue
		}

		switch s[i+1] {
		case '[':
			// CSI: ESC [ ... final-byte
			i += 2
			for i < len(s) {
				c := s[i]
				i++
				if c >= 0x40 && c <= 0x7e {
					break
				}
			}
		case ']':
			// OSC: ESC ] ... BEL or ST
			i += 2
			for i < len(s) {
				c := s[i]
				i++
				if c == 0x07 {
					break
				}
				if c == 0x1b && i < len(s) && s[i] == '\\' {
					i++
					break
				}
			}
		default:
			// Generic 2-byte escape.
			i += 2
		}
	}

	return string(out)
}
