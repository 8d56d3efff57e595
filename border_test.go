package clikit

import (
	"reflect"
	"testing"
)

func TestNewBorder(t *testing.T) {
	b, err := NewBorder("┌─┐││└─┘")
	if err != nil {
		t.Fatalf("NewBorder error = %v", err)
	}
	if b.TopLeft != '┌' || b.Top != '─' || b.TopRight != '┐' {
		t.Errorf("top row glyphs wrong: %c %c %c", b.TopLeft, b.Top, b.TopRight)
	}
	if b.Left != '│' || b.Right != '│' {
		t.Errorf("side glyphs wrong: %c %c", b.Left, b.Right)
	}
	if b.BottomLeft != '└' || b.Bottom != '─' || b.BottomRight != '┘' {
		t.Errorf("bottom row glyphs wrong: %c %c %c", b.BottomLeft, b.Bottom, b.BottomRight)
	}
	if b.MidLeft != 0 || b.Mid != 0 {
		t.Error("junction glyphs should be absent for an 8-rune pattern")
	}

	full, err := NewBorder("┌─┐││└─┘├┤┬┴┼")
	if err != nil {
		t.Fatalf("NewBorder with junctions error = %v", err)
	}
	if full.MidLeft != '├' || full.MidRight != '┤' || full.Mid != '┼' {
		t.Errorf("junction glyphs wrong: %c %c %c", full.MidLeft, full.MidRight, full.Mid)
	}

	if _, err := NewBorder("┌─┐││└─"); err == nil {
		t.Error("7-glyph pattern should be an error")
	}
	if _, err := NewBorder(""); err == nil {
		t.Error("empty pattern should be an error")
	}
}

func TestMergeBorders(t *testing.T) {
	base := NormalBorder()
	overlay := Border{TopLeft: '╔', Top: '═'}

	merged := MergeBorders(base, overlay)
	if merged.TopLeft != '╔' {
		t.Errorf("TopLeft = %c, want ╔", merged.TopLeft)
	}
	if merged.Top != '═' {
		t.Errorf("Top = %c, want ═", merged.Top)
	}
	// Everything the overlay left zero falls back to the base.
	if merged.Bottom != '─' || merged.Left != '│' || merged.BottomRight != '┘' {
		t.Error("unset overlay glyphs should fall back to the base")
	}
	if merged.Mid != '┼' {
		t.Errorf("Mid = %c, want base ┼", merged.Mid)
	}
}

func TestGlyphAt(t *testing.T) {
	b := NormalBorder()

	type tc struct {
		pos   BorderPosition
		sides BorderSide
		want  rune
	}

	tests := map[string]tc{
		"top active":          {pos: BorderPosTop, sides: BorderAll, want: '─'},
		"top inactive":        {pos: BorderPosTop, sides: BorderLeft, want: ' '},
		"left active":         {pos: BorderPosLeft, sides: BorderLeft, want: '│'},
		"right inactive":      {pos: BorderPosRight, sides: BorderLeft, want: ' '},
		"corner both":         {pos: BorderPosTopLeft, sides: BorderTop | BorderLeft, want: '┌'},
		"corner only left":    {pos: BorderPosTopLeft, sides: BorderLeft, want: '│'},
		"corner only top":     {pos: BorderPosTopLeft, sides: BorderTop, want: '─'},
		"corner neither":      {pos: BorderPosTopLeft, sides: BorderBottom, want: ' '},
		"bottom right both":   {pos: BorderPosBottomRight, sides: BorderBottom | BorderRight, want: '┘'},
		"bottom right v only": {pos: BorderPosBottomRight, sides: BorderRight, want: '│'},
		"bottom right h only": {pos: BorderPosBottomRight, sides: BorderBottom, want: '─'},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := b.GlyphAt(tt.pos, tt.sides); got != tt.want {
				t.Errorf("GlyphAt(%v, %b) = %q, want %q", tt.pos, tt.sides, got, tt.want)
			}
		})
	}
}

func TestRenderBox(t *testing.T) {
	b := NormalBorder()

	got := RenderBox([]string{"ab", "c"}, b, BorderAll, 0)
	want := []string{
		"┌──┐",
		"│ab│",
		"│c │",
		"└──┘",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("RenderBox = %q, want %q", got, want)
	}
}

func TestRenderBoxPartialSides(t *testing.T) {
	b := NormalBorder()

	// Left side only: no top/bottom rows, a space keeps the right column.
	got := RenderBox([]string{"ab", "c"}, b, BorderLeft, 0)
	want := []string{
		"│ab ",
		"│c  ",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("left only = %q, want %q", got, want)
	}

	// Top and bottom only: side columns render as spaces.
	got = RenderBox([]string{"ab"}, b, BorderTop|BorderBottom, 0)
	want = []string{
		"────",
		" ab ",
		"────",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("top+bottom = %q, want %q", got, want)
	}

	// No sides returns the content untouched.
	lines := []string{"ab"}
	if got := RenderBox(lines, b, BorderNone, 0); !reflect.DeepEqual(got, lines) {
		t.Errorf("BorderNone = %q, want %q", got, lines)
	}
}

func TestRenderBoxTargetWidth(t *testing.T) {
	got := RenderBox([]string{"a"}, NormalBorder(), BorderAll, 4)
	want := []string{
		"┌────┐",
		"│a   │",
		"└────┘",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("RenderBox = %q, want %q", got, want)
	}
}

func TestRenderBoxWideContent(t *testing.T) {
	// Box width follows display cells, not rune count.
	got := RenderBox([]string{"你好", "ab"}, NormalBorder(), BorderAll, 0)
	want := []string{
		"┌────┐",
		"│你好│",
		"│ab  │",
		"└────┘",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("RenderBox = %q, want %q", got, want)
	}
}

func TestRenderBoxTitle(t *testing.T) {
	got := RenderBoxTitle([]string{"body"}, NormalBorder(), BorderAll, 0, "T")
	want := []string{
		"┌─T──┐",
		"│body│",
		"└────┘",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("RenderBoxTitle = %q, want %q", got, want)
	}

	// No top side means nowhere to put the title.
	got = RenderBoxTitle([]string{"body"}, NormalBorder(), BorderLeft, 0, "T")
	if !reflect.DeepEqual(got, []string{"│body "}) {
		t.Errorf("titled without top = %q", got)
	}
}

func TestRenderBoxGradient(t *testing.T) {
	// A constant gradient colors every border glyph identically, which
	// pins down the exact output shape.
	c := RGBColor(10, 20, 30)
	g := NewGradient(c, c)

	got := RenderBoxGradient([]string{"ab"}, NormalBorder(), BorderAll, 0, g, ProfileTrueColor)

	seq := "\x1b[38;2;10;20;30m"
	want := []string{
		seq + "┌" + ResetSequence + seq + "─" + ResetSequence + seq + "─" + ResetSequence + seq + "┐" + ResetSequence,
		seq + "│" + ResetSequence + "ab" + seq + "│" + ResetSequence,
		seq + "└" + ResetSequence + seq + "─" + ResetSequence + seq + "─" + ResetSequence + seq + "┘" + ResetSequence,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("RenderBoxGradient = %q, want %q", got, want)
	}

	// The no-color profile leaves the frame uncolored.
	plain := RenderBoxGradient([]string{"ab"}, NormalBorder(), BorderAll, 0, g, ProfileNoColor)
	if !reflect.DeepEqual(plain, RenderBox([]string{"ab"}, NormalBorder(), BorderAll, 0)) {
		t.Errorf("no-color RenderBoxGradient = %q", plain)
	}

	// Inactive sides leave their filler column uncolored.
	partial := RenderBoxGradient([]string{"ab"}, NormalBorder(), BorderLeft, 0, g, ProfileTrueColor)
	want = []string{seq + "│" + ResetSequence + "ab "}
	if !reflect.DeepEqual(partial, want) {
		t.Errorf("left-only RenderBoxGradient = %q, want %q", partial, want)
	}
}

func TestBorderPerimeterT(t *testing.T) {
	// A 4x4 frame: the top-left corner parameterizes to 0 and the
	// opposite corner to the mirrored maximum of 1.
	if got := borderPerimeterT(0, 0, 4, 4); got != 0 {
		t.Errorf("borderPerimeterT(0,0) = %v, want 0", got)
	}
	if got := borderPerimeterT(3, 3, 4, 4); got != 1 {
		t.Errorf("borderPerimeterT(3,3) = %v, want 1", got)
	}

	// All perimeter values stay inside [0,1].
	for x := 0; x < 4; x++ {
		for _, y := range []int{0, 3} {
			if v := borderPerimeterT(x, y, 4, 4); v < 0 || v > 1 {
				t.Errorf("borderPerimeterT(%d,%d) = %v out of range", x, y, v)
			}
		}
	}

	// A degenerate frame parameterizes to 0 rather than dividing by zero.
	if got := borderPerimeterT(0, 0, 1, 1); got != 0 {
		t.Errorf("borderPerimeterT on 1x1 = %v, want 0", got)
	}
}
