package clikit

import (
	"strings"

	"github.com/cinderlink/clikit/cache"
	"github.com/rivo/uniseg"
)

// Renderer turns (content, style) pairs into terminal output for a fixed
// set of capabilities. It owns the two memoization caches (display width
// and style escape prefixes); construct one per target rather than relying
// on process-wide globals so hosts can isolate and clear cache state.
//
// A Renderer is safe for concurrent use: all inputs are immutable values
// and the caches synchronize internally.
type Renderer struct {
	caps       Capabilities
	widthCache *cache.Cache[string, int]
	seqCache   *cache.Cache[string, string]
}

// RendererOption configures a Renderer at construction.
type RendererOption func(*Renderer)

// WithCacheCapacity bounds both caches to n entries each, evicting the
// least recently used entry when full. Without this option the caches are
// unbounded and never evict.
func WithCacheCapacity(n int) RendererOption {
	return func(r *Renderer) {
		r.widthCache = cache.New[string, int](n)
		r.seqCache = cache.New[string, string](n)
	}
}

// NewRenderer creates a Renderer for the given terminal capabilities.
func NewRenderer(caps Capabilities, opts ...RendererOption) *Renderer {
	r := &Renderer{
		caps:       caps,
		widthCache: cache.New[string, int](0),
		seqCache:   cache.New[string, string](0),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Capabilities returns the capabilities the renderer targets.
func (r *Renderer) Capabilities() Capabilities {
	return r.caps
}

// MeasureWidth returns the display width of s, memoized per distinct string
// until ClearCaches.
func (r *Renderer) MeasureWidth(s string) int {
	return r.widthCache.GetOrCompute(s, func() int {
		return MeasureWidth(s)
	})
}

// ClearCaches empties both caches immediately.
func (r *Renderer) ClearCaches() {
	r.widthCache.Clear()
	r.seqCache.Clear()
}

// RenderStats reports the state of the renderer's caches.
type RenderStats struct {
	Width    cache.Stats
	Sequence cache.Stats
}

// CacheStats returns a snapshot of both caches' size and hit counters.
func (r *Renderer) CacheStats() RenderStats {
	return RenderStats{
		Width:    r.widthCache.Stats(),
		Sequence: r.seqCache.Stats(),
	}
}

// Render applies a style to text content and returns the final terminal
// output. The pipeline runs content → transform → wrap/overflow →
// horizontal align → vertical align → padding → color/decoration emission →
// border → margin; see the package documentation for the box model.
func (r *Renderer) Render(text string, style Style) string {
	s := style.Resolved()

	// 1. Text transform.
	if s.isSet(propTransform) {
		text = s.transform.Apply(text)
	}

	// Inline styles collapse to a single line and skip the box model.
	if s.isSet(propInline) && s.inline {
		text = strings.ReplaceAll(text, "\n", " ")
		line := text
		if s.isSet(propMaxWidth) && s.maxWidth > 0 {
			line = Truncate(line, s.maxWidth, "")
		}
		return r.styleLines([]string{line}, s)[0]
	}

	// 2. Establish the content width target.
	width := r.contentWidth(s)

	// 3. Wrap or truncate per the overflow policy.
	policy := OverflowWrap
	if s.isSet(propOverflow) {
		policy = s.overflow
	}
	lines := strings.Split(text, "\n")
	if width > 0 {
		lines = applyOverflow(lines, width, policy, s.wordBreak)
	}

	// 4. Horizontal alignment pads every line to the block width.
	blockWidth := width
	if blockWidth <= 0 {
		for _, line := range lines {
			if w := r.MeasureWidth(line); w > blockWidth {
				blockWidth = w
			}
		}
	}
	lines = alignLines(lines, blockWidth, s.align)

	// 5. Vertical alignment pads or truncates to the height target.
	if height := r.contentHeight(s, len(lines)); height > 0 {
		lines = alignVertical(lines, height, s.valign)
		lines = alignLines(lines, blockWidth, s.align)
	}

	// 6. Padding joins the colored region around the content.
	if s.isSet(propPadding) && !s.padding.IsZero() {
		lines = padLines(lines, s.padding, blockWidth)
	}

	// 7. Colors and decorations wrap each content line.
	lines = r.styleLines(lines, s)

	// 8. Border.
	if s.isSet(propBorder) && s.borderSides != BorderNone {
		lines = r.renderBorder(lines, s)
	}

	// 9. Margin: plain blank lines and leading spaces, never styled.
	if s.isSet(propMargin) && !s.margin.IsZero() {
		lines = marginLines(lines, s.margin, r.MeasureWidth(longestLine(lines)))
	}

	return strings.Join(lines, "\n")
}

// contentWidth resolves the effective content width from the style's
// width constraints and the capability viewport override.
func (r *Renderer) contentWidth(s Style) int {
	width := 0
	if s.isSet(propWidth) {
		width = s.width
	} else if r.caps.Width > 0 {
		// Fit the frame inside the viewport.
		width = r.caps.Width - s.frameHorizontal()
	}
	if s.isSet(propMinWidth) && width < s.minWidth {
		width = s.minWidth
	}
	if s.isSet(propMaxWidth) && s.maxWidth > 0 && (width == 0 || width > s.maxWidth) {
		width = s.maxWidth
	}
	if width < 0 {
		width = 0
	}
	return width
}

// contentHeight resolves the effective content height target; 0 means the
// natural line count stands.
func (r *Renderer) contentHeight(s Style, natural int) int {
	height := 0
	if s.isSet(propHeight) {
		height = s.height
	} else if r.caps.Height > 0 {
		if frame := s.frameVertical(); natural+frame > r.caps.Height {
			height = r.caps.Height - frame
		}
	}
	if s.isSet(propMinHeight) && height < s.minHeight && natural < s.minHeight {
		height = s.minHeight
	}
	if s.isSet(propMaxHeight) && s.maxHeight > 0 && (height == 0 || height > s.maxHeight) {
		if natural > s.maxHeight || height > s.maxHeight {
			height = s.maxHeight
		}
	}
	if height < 0 {
		height = 0
	}
	return height
}

// frameHorizontal is the number of columns the non-content frame occupies.
func (s Style) frameHorizontal() int {
	n := 0
	if s.isSet(propPadding) {
		n += s.padding.Horizontal()
	}
	if s.isSet(propMargin) {
		n += s.margin.Horizontal()
	}
	if s.isSet(propBorder) {
		if s.borderSides.Has(BorderLeft) {
			n++
		}
		if s.borderSides.Has(BorderRight) {
			n++
		}
	}
	return n
}

// frameVertical is the number of rows the non-content frame occupies.
func (s Style) frameVertical() int {
	n := 0
	if s.isSet(propPadding) {
		n += s.padding.Vertical()
	}
	if s.isSet(propMargin) {
		n += s.margin.Vertical()
	}
	if s.isSet(propBorder) {
		if s.borderSides.Has(BorderTop) {
			n++
		}
		if s.borderSides.Has(BorderBottom) {
			n++
		}
	}
	return n
}

// padLines surrounds content lines with blank padding lines (top/bottom)
// and spaces (left/right). Padding belongs to the styled region.
func padLines(lines []string, p Edges, width int) []string {
	left := strings.Repeat(" ", p.Left)
	right := strings.Repeat(" ", p.Right)
	blank := left + strings.Repeat(" ", width) + right

	out := make([]string, 0, len(lines)+p.Vertical())
	for i := 0; i < p.Top; i++ {
		out = append(out, blank)
	}
	for _, line := range lines {
		out = append(out, left+line+right)
	}
	for i := 0; i < p.Bottom; i++ {
		out = append(out, blank)
	}
	return out
}

// marginLines surrounds finished output with unstyled blank lines and
// leading spaces. Margins are never colored or bordered.
func marginLines(lines []string, m Edges, width int) []string {
	left := strings.Repeat(" ", m.Left)
	blank := strings.Repeat(" ", m.Left+width+m.Right)

	out := make([]string, 0, len(lines)+m.Vertical())
	for i := 0; i < m.Top; i++ {
		out = append(out, blank)
	}
	for _, line := range lines {
		out = append(out, left+line)
	}
	for i := 0; i < m.Bottom; i++ {
		out = append(out, blank)
	}
	return out
}

// longestLine returns the line with the greatest display width.
func longestLine(lines []string) string {
	longest := ""
	best := -1
	for _, line := range lines {
		if w := MeasureWidth(line); w > best {
			best = w
			longest = line
		}
	}
	return longest
}

// styleLines wraps each line in the style's decoration and color sequences.
// The escape prefix is memoized by the style fingerprint. A line is wrapped
// as <decorations><fg><bg><content><reset>; empty content with an active
// prefix still emits <prefix><reset>.
func (r *Renderer) styleLines(lines []string, s Style) []string {
	if s.gradient != nil && len(s.gradient.Stops) > 0 {
		return r.styleLinesGradient(lines, s)
	}

	prefix := r.stylePrefix(s)
	if prefix == "" {
		return lines
	}

	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = prefix + line + ResetSequence
	}
	return out
}

// stylePrefix computes (or recalls) the escape prefix for a resolved style.
func (r *Renderer) stylePrefix(s Style) string {
	return r.seqCache.GetOrCompute(s.Fingerprint(), func() string {
		e := newSeqBuilder(32)
		e.DecorationSGR(s.attrs)
		if s.isSet(propForeground) {
			e.ColorSGR(r.caps.EffectiveColor(s.fg), r.caps.Profile, false)
		}
		if s.isSet(propBackground) {
			e.ColorSGR(r.caps.EffectiveColor(s.bg), r.caps.Profile, true)
		}
		return e.String()
	})
}

// styleLinesGradient colors the text foreground per character along the
// gradient axis; decorations and background still come from the style.
func (r *Renderer) styleLinesGradient(lines []string, s Style) []string {
	g := *s.gradient

	base := newSeqBuilder(32)
	base.DecorationSGR(s.attrs)
	if s.isSet(propBackground) {
		base.ColorSGR(r.caps.EffectiveColor(s.bg), r.caps.Profile, true)
	}
	basePrefix := base.String()

	rows := len(lines)
	out := make([]string, rows)
	for row, line := range lines {
		cols := uniseg.GraphemeClusterCount(line)

		var b strings.Builder
		b.Grow(len(line) * 4)
		b.WriteString(basePrefix)

		col := 0
		gr := uniseg.NewGraphemes(line)
		for gr.Next() {
			c := r.caps.EffectiveColor(g.At(g.cellT(col, cols, row, rows)))
			b.WriteString(ColorSequence(c, r.caps.Profile, false))
			b.WriteString(gr.Str())
			col++
		}

		if b.Len() > 0 {
			b.WriteString(ResetSequence)
		}
		out[row] = b.String()
	}
	return out
}

// renderBorder frames styled lines, coloring border glyphs with the
// style's border colors.
func (r *Renderer) renderBorder(lines []string, s Style) []string {
	width := 0
	for _, line := range lines {
		if w := r.MeasureWidth(line); w > width {
			width = w
		}
	}

	framed := RenderBox(lines, s.border, s.borderSides, width)

	prefix := r.borderPrefix(s)
	if prefix == "" {
		return framed
	}

	hasTop := s.borderSides.Has(BorderTop)
	hasBottom := s.borderSides.Has(BorderBottom)
	hasLeft := s.borderSides.Has(BorderLeft)
	hasRight := s.borderSides.Has(BorderRight)

	out := make([]string, len(framed))
	for i, row := range framed {
		isEdgeRow := (hasTop && i == 0) || (hasBottom && i == len(framed)-1)
		if isEdgeRow {
			// Whole row is border glyphs.
			out[i] = prefix + row + ResetSequence
			continue
		}
		// Only the edge cells of active sides are border glyphs; an
		// inactive side's column is space filler and stays unstyled.
		runes := []rune(row)
		left := string(runes[0])
		if hasLeft {
			left = prefix + left + ResetSequence
		}
		right := string(runes[len(runes)-1])
		if hasRight {
			right = prefix + right + ResetSequence
		}
		out[i] = left + string(runes[1:len(runes)-1]) + right
	}
	return out
}

// borderPrefix computes the escape prefix for border glyphs.
func (r *Renderer) borderPrefix(s Style) string {
	e := newSeqBuilder(16)
	if s.isSet(propBorderForeground) {
		e.ColorSGR(r.caps.EffectiveColor(s.borderFg), r.caps.Profile, false)
	}
	if s.isSet(propBorderBackground) {
		e.ColorSGR(r.caps.EffectiveColor(s.borderBg), r.caps.Profile, true)
	}
	return e.String()
}
