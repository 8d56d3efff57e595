package clikit

import "testing"

func TestMeasureWidth(t *testing.T) {
	type tc struct {
		in   string
		want int
	}

	tests := map[string]tc{
		"empty":            {in: "", want: 0},
		"ascii":            {in: "hello", want: 5},
		"spaces":           {in: "a b", want: 3},
		"cjk":              {in: "你好", want: 4},
		"mixed cjk":        {in: "go语言", want: 6},
		"combining mark":   {in: "é", want: 1},
		"emoji":            {in: "👍", want: 2},
		"zwj emoji":        {in: "👨‍👩‍👧", want: 2},
		"sgr stripped":     {in: "\x1b[31mred\x1b[0m", want: 3},
		"rgb sgr stripped": {in: "\x1b[38;2;1;2;3mx\x1b[0m", want: 1},
		"osc stripped":     {in: "\x1b]0;title\x07x", want: 1},
		"escape only":      {in: "\x1b[1m", want: 0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := MeasureWidth(tt.in); got != tt.want {
				t.Errorf("MeasureWidth(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestStripANSI(t *testing.T) {
	type tc struct {
		in   string
		want string
	}

	tests := map[string]tc{
		"plain":         {in: "hello", want: "hello"},
		"sgr":           {in: "\x1b[31mred\x1b[0m", want: "red"},
		"multi param":   {in: "\x1b[1;38;5;42mx", want: "x"},
		"osc bel":       {in: "\x1b]0;t\x07x", want: "x"},
		"osc st":        {in: "\x1b]0;t\x1b\\x", want: "x"},
		"trailing esc":  {in: "x\x1b", want: "x"},
		"two byte":      {in: "\x1b(Bx", want: "Bx"},
		"cursor motion": {in: "\x1b[2Ax", want: "x"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := stripANSI(tt.in); got != tt.want {
				t.Errorf("stripANSI(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
