package main

import (
	"strings"
	"testing"

	"snapblocks/internal/stack"
)

func TestCellRendererMeasure(t *testing.T) {
	tests := []struct {
		label string
		w     float64
	}{
		{"", 4},
		{"a", 5},
		{"say hello", 13},
		{"日本", 8},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			w, h := cellRenderer{}.Measure(stack.Content{Label: tt.label})
			if w != tt.w || h != blockHeight {
				t.Errorf("Measure(%q) = %v, %v, want %v, %v", tt.label, w, h, tt.w, float64(blockHeight))
			}
		})
	}
}

func TestGridBox(t *testing.T) {
	tests := []struct {
		name string
		look blockLook
		want []string
	}{
		{"plain", blockLook{}, []string{"+-----+", "| say |", "+-----+"}},
		{"floating", blockLook{floating: true}, []string{"#######", "# say #", "#######"}},
		{"top", blockLook{hlTop: true}, []string{"=======", "| say |", "+-----+"}},
		{"bottom", blockLook{hlBottom: true}, []string{"+-----+", "| say |", "======="}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newGrid(7, 3)
			g.box(0, 0, 7, 3, "say", tt.look)
			got := g.plain()
			if strings.Join(got, "\n") != strings.Join(tt.want, "\n") {
				t.Errorf("box() =\n%s\nwant\n%s", strings.Join(got, "\n"), strings.Join(tt.want, "\n"))
			}
		})
	}
}

func TestGridClip(t *testing.T) {
	g := newGrid(6, 1)
	g.clip = 3
	g.text(-2, 0, "abcdefgh", paintLabel)
	g.set(1, 5, 'x', paintLabel)
	if got := g.plain()[0]; got != "   fgh" {
		t.Errorf("plain() = %q, want %q", got, "   fgh")
	}
}

func TestGridLines(t *testing.T) {
	g := newGrid(4, 1)
	g.text(0, 0, "ab", paintLabel)
	g.text(2, 0, "cd", paintConnector)
	line := g.lines(paintStyles())[0]
	for _, s := range []string{"ab", "cd"} {
		if !strings.Contains(line, s) {
			t.Errorf("lines() = %q, missing %q", line, s)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		s    string
		n    int
		want string
	}{
		{"hello", 10, "hello"},
		{"hello", 3, "hel"},
		{"hello", 0, ""},
		{"日本語", 4, "日本"},
	}
	for _, tt := range tests {
		if got := truncate(tt.s, tt.n); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.s, tt.n, got, tt.want)
		}
	}
}
