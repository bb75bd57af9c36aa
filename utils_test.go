package main

import (
	"slices"
	"testing"

	"snapblocks/internal/stack"
)

func TestClipboardLabels(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", nil},
		{"lines", "a\nb\nc", []string{"a", "b", "c"}},
		{"crlf", "move\r\nturn\r\n", []string{"move", "turn"}},
		{"blank lines", "\n\n  x  \n\n", []string{"x"}},
		{"control", "a\x1b[1mb\tc", []string{"a[1mb c"}},
		{"old mac", "a\rb", []string{"a", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clipboardLabels(tt.text); !slices.Equal(got, tt.want) {
				t.Errorf("clipboardLabels(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestStackText(t *testing.T) {
	s := stack.NewSegment(1,
		stack.New(stack.Content{Label: "move 10 steps"}),
		stack.New(stack.Content{Label: "say hello"}),
	)
	if got, want := stackText(s), "move 10 steps\nsay hello"; got != want {
		t.Errorf("stackText() = %q, want %q", got, want)
	}
	if got := clipboardLabels(stackText(s)); len(got) != 2 {
		t.Errorf("round trip = %q", got)
	}
}
