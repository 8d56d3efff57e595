package clikit

import (
	"testing"
)

func TestDefaultColor(t *testing.T) {
	c := DefaultColor()
	if c.Type() != ColorDefault {
		t.Errorf("DefaultColor().Type() = %v, want ColorDefault", c.Type())
	}
	if !c.IsDefault() {
		t.Error("DefaultColor().IsDefault() = false, want true")
	}
}

func TestANSI16Color(t *testing.T) {
	type tc struct {
		idx     uint8
		wantErr bool
	}

	tests := map[string]tc{
		"zero":       {idx: 0},
		"white":      {idx: 7},
		"bright max": {idx: 15},
		"just over":  {idx: 16, wantErr: true},
		"way over":   {idx: 200, wantErr: true},
		"byte max":   {idx: 255, wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c, err := ANSI16Color(tt.idx)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ANSI16Color(%d) error = nil, want error", tt.idx)
				}
				return
			}
			if err != nil {
				t.Fatalf("ANSI16Color(%d) error = %v, want nil", tt.idx, err)
			}
			if c.Type() != ColorANSI16 {
				t.Errorf("ANSI16Color(%d).Type() = %v, want ColorANSI16", tt.idx, c.Type())
			}
			if got := c.Index(); got != tt.idx {
				t.Errorf("ANSI16Color(%d).Index() = %d, want %d", tt.idx, got, tt.idx)
			}
		})
	}
}

func TestANSI256Color(t *testing.T) {
	type tc struct {
		idx uint8
	}

	tests := map[string]tc{
		"zero": {idx: 0},
		"cube": {idx: 127},
		"gray": {idx: 244},
		"max":  {idx: 255},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c := ANSI256Color(tt.idx)
			if c.Type() != ColorANSI256 {
				t.Errorf("ANSI256Color(%d).Type() = %v, want ColorANSI256", tt.idx, c.Type())
			}
			if c.IsDefault() {
				t.Errorf("ANSI256Color(%d).IsDefault() = true, want false", tt.idx)
			}
			if got := c.Index(); got != tt.idx {
				t.Errorf("ANSI256Color(%d).Index() = %d, want %d", tt.idx, got, tt.idx)
			}
		})
	}
}

func TestRGBColor(t *testing.T) {
	type tc struct {
		r, g, b uint8
	}

	tests := map[string]tc{
		"black": {r: 0, g: 0, b: 0},
		"white": {r: 255, g: 255, b: 255},
		"red":   {r: 255, g: 0, b: 0},
		"mixed": {r: 128, g: 64, b: 32},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c := RGBColor(tt.r, tt.g, tt.b)
			if c.Type() != ColorRGB {
				t.Errorf("RGBColor.Type() = %v, want ColorRGB", c.Type())
			}
			r, g, b := c.RGB()
			if r != tt.r || g != tt.g || b != tt.b {
				t.Errorf("RGBColor(%d,%d,%d).RGB() = (%d,%d,%d)", tt.r, tt.g, tt.b, r, g, b)
			}
		})
	}
}

func TestHexColor(t *testing.T) {
	type tc struct {
		in      string
		r, g, b uint8
		wantErr bool
	}

	tests := map[string]tc{
		"six digit":       {in: "#ff0000", r: 255, g: 0, b: 0},
		"six digit upper": {in: "#FF8000", r: 255, g: 128, b: 0},
		"no hash":         {in: "336699", r: 0x33, g: 0x66, b: 0x99},
		"three digit":     {in: "#f00", r: 255, g: 0, b: 0},
		"three expand":    {in: "#abc", r: 0xaa, g: 0xbb, b: 0xcc},
		"empty":           {in: "", wantErr: true},
		"too short":       {in: "#ff", wantErr: true},
		"five digits":     {in: "#12345", wantErr: true},
		"seven digits":    {in: "#1234567", wantErr: true},
		"bad char":        {in: "#gg0000", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c, err := HexColor(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("HexColor(%q) error = nil, want error", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("HexColor(%q) error = %v, want nil", tt.in, err)
			}
			r, g, b := c.RGB()
			if r != tt.r || g != tt.g || b != tt.b {
				t.Errorf("HexColor(%q) = (%d,%d,%d), want (%d,%d,%d)", tt.in, r, g, b, tt.r, tt.g, tt.b)
			}
		})
	}
}

func TestMustHexPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustHex(\"nope\") did not panic")
		}
	}()
	MustHex("nope")
}

func TestAdaptiveResolve(t *testing.T) {
	c := AdaptiveColor(Black, BrightWhite)

	if c.Type() != ColorAdaptive {
		t.Fatalf("Type() = %v, want ColorAdaptive", c.Type())
	}
	if got := c.Resolve(true); !got.Equal(BrightWhite) {
		t.Errorf("Resolve(dark) = %v, want BrightWhite", got)
	}
	if got := c.Resolve(false); !got.Equal(Black) {
		t.Errorf("Resolve(light) = %v, want Black", got)
	}

	// Non-adaptive colors resolve to themselves.
	if got := Red.Resolve(true); !got.Equal(Red) {
		t.Errorf("Red.Resolve(true) = %v, want Red", got)
	}

	// Nested adaptive pairs resolve all the way down.
	nested := AdaptiveColor(Black, AdaptiveColor(Red, Blue))
	if got := nested.Resolve(true); !got.Equal(Blue) {
		t.Errorf("nested Resolve(dark) = %v, want Blue", got)
	}
}

func TestColorEqual(t *testing.T) {
	type tc struct {
		a, b Color
		want bool
	}

	tests := map[string]tc{
		"defaults":        {a: DefaultColor(), b: DefaultColor(), want: true},
		"same rgb":        {a: RGBColor(1, 2, 3), b: RGBColor(1, 2, 3), want: true},
		"diff rgb":        {a: RGBColor(1, 2, 3), b: RGBColor(1, 2, 4), want: false},
		"same ansi":       {a: Red, b: Red, want: true},
		"type mismatch":   {a: Red, b: ANSI256Color(1), want: false},
		"rgb vs default":  {a: RGBColor(0, 0, 0), b: DefaultColor(), want: false},
		"adaptive equal":  {a: AdaptiveColor(Red, Blue), b: AdaptiveColor(Red, Blue), want: true},
		"adaptive differ": {a: AdaptiveColor(Red, Blue), b: AdaptiveColor(Blue, Red), want: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestToANSI256(t *testing.T) {
	type tc struct {
		in   Color
		want uint8
	}

	tests := map[string]tc{
		"near black gray": {in: RGBColor(0, 0, 0), want: 16},
		"near white gray": {in: RGBColor(255, 255, 255), want: 231},
		"mid gray":        {in: RGBColor(128, 128, 128), want: 244},
		"darkest ramp":    {in: RGBColor(8, 8, 8), want: 232},
		"lightest ramp":   {in: RGBColor(248, 248, 248), want: 255},
		"pure red":        {in: RGBColor(255, 0, 0), want: 196},
		"pure blue":       {in: RGBColor(0, 0, 255), want: 21},
		"mixed":           {in: RGBColor(128, 64, 32), want: 131},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := tt.in.ToANSI256()
			if got.Type() != ColorANSI256 {
				t.Fatalf("ToANSI256().Type() = %v, want ColorANSI256", got.Type())
			}
			if got.Index() != tt.want {
				t.Errorf("ToANSI256() = %d, want %d", got.Index(), tt.want)
			}
		})
	}

	// Non-RGB colors pass through unchanged.
	if got := ANSI256Color(42).ToANSI256(); got.Index() != 42 {
		t.Errorf("ANSI256Color(42).ToANSI256() = %d, want 42", got.Index())
	}
	if got := Red.ToANSI256(); !got.Equal(Red) {
		t.Errorf("Red.ToANSI256() = %v, want Red", got)
	}
}

func TestToRGBValues(t *testing.T) {
	type tc struct {
		in      Color
		r, g, b uint8
	}

	tests := map[string]tc{
		"rgb passthrough": {in: RGBColor(1, 2, 3), r: 1, g: 2, b: 3},
		"default is zero": {in: DefaultColor(), r: 0, g: 0, b: 0},
		"ansi16 red":      {in: Red, r: 205, g: 49, b: 49},
		"palette low":     {in: ANSI256Color(1), r: 205, g: 49, b: 49},
		"cube black":      {in: ANSI256Color(16), r: 0, g: 0, b: 0},
		"cube blue step":  {in: ANSI256Color(17), r: 0, g: 0, b: 95},
		"cube red":        {in: ANSI256Color(196), r: 255, g: 0, b: 0},
		"cube white":      {in: ANSI256Color(231), r: 255, g: 255, b: 255},
		"gray ramp start": {in: ANSI256Color(232), r: 8, g: 8, b: 8},
		"gray ramp end":   {in: ANSI256Color(255), r: 238, g: 238, b: 238},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			r, g, b := tt.in.ToRGBValues()
			if r != tt.r || g != tt.g || b != tt.b {
				t.Errorf("ToRGBValues() = (%d,%d,%d), want (%d,%d,%d)", r, g, b, tt.r, tt.g, tt.b)
			}
		})
	}
}

func TestToANSI16(t *testing.T) {
	type tc struct {
		in   Color
		want uint8
	}

	tests := map[string]tc{
		"low palette index": {in: ANSI256Color(9), want: 9},
		"exact black":       {in: RGBColor(0, 0, 0), want: 0},
		"exact white":       {in: RGBColor(255, 255, 255), want: 15},
		"exact red":         {in: RGBColor(205, 49, 49), want: 1},
		"near white":        {in: RGBColor(250, 250, 250), want: 15},
		"cube red":          {in: ANSI256Color(196), want: 1},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := tt.in.ToANSI16()
			if got.Type() != ColorANSI16 {
				t.Fatalf("ToANSI16().Type() = %v, want ColorANSI16", got.Type())
			}
			if got.Index() != tt.want {
				t.Errorf("ToANSI16() = %d, want %d", got.Index(), tt.want)
			}
		})
	}

	// Default and ANSI16 colors pass through unchanged.
	if got := DefaultColor().ToANSI16(); got.Type() != ColorDefault {
		t.Errorf("DefaultColor().ToANSI16().Type() = %v, want ColorDefault", got.Type())
	}
	if got := Cyan.ToANSI16(); !got.Equal(Cyan) {
		t.Errorf("Cyan.ToANSI16() = %v, want Cyan", got)
	}
}

func TestAccessorPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("RGB() on an ANSI16 color did not panic")
		}
	}()
	Red.RGB()
}
