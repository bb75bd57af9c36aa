package main

import (
	"errors"
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"

	"snapblocks/internal/geom"
	"snapblocks/internal/stack"
)

var errNoStack = errors.New("no stack under the pointer")

func readClipboardText() (string, error) {
	if runtime.GOOS == "darwin" {
		if output, err := exec.Command("pbpaste", "-Prefer", "txt").Output(); err == nil {
			return string(output), nil
		}
	}
	return clipboard.ReadAll()
}

// stackText is the clipboard form of a stack: one label per line.
func stackText(s *stack.Segment) string {
	labels := make([]string, 0, s.Len())
	for _, b := range s.Blocks() {
		labels = append(labels, b.Content().Label)
	}
	return strings.Join(labels, "\n")
}

// clipboardLabels splits pasted text into block labels, dropping blank
// lines and control characters.
func clipboardLabels(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var labels []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.Map(func(r rune) rune {
			if r == '\t' {
				return ' '
			}
			if r < 32 || r == 127 {
				return -1
			}
			return r
		}, line)
		if line = strings.TrimSpace(line); line != "" {
			labels = append(labels, line)
		}
	}
	return labels
}

// yankStack copies the labels of the stack under the pointer.
func (m *model) yankStack() (int, error) {
	b, ok := m.ws.BlockAt(m.toWorkspace(m.pointer.X, m.pointer.Y))
	if !ok {
		return 0, errNoStack
	}
	s, ok := m.ws.Segment(b.Top())
	if !ok {
		return 0, errNoStack
	}
	return s.Len(), clipboard.WriteAll(stackText(s))
}

// pasteStack places the clipboard lines as a new stack at the pointer.
func (m *model) pasteStack() (int, error) {
	text, err := readClipboardText()
	if err != nil {
		return 0, err
	}
	labels := clipboardLabels(text)
	if len(labels) == 0 {
		return 0, errors.New("clipboard is empty")
	}

	blocks := make([]*stack.Block, len(labels))
	for i, l := range labels {
		blocks[i] = m.newBlock(stack.Content{Label: l})
	}
	at := m.toWorkspace(max(m.pointer.X, m.canvasLeft()), m.pointer.Y)
	at = geom.Point{X: max(at.X, 0), Y: max(at.Y, 0)}
	if _, err := m.ws.AddStack(at.X, at.Y, blocks...); err != nil {
		return 0, err
	}
	return len(blocks), nil
}
