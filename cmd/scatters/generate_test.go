package main

import (
	"strings"
	"testing"

	"github.com/tsawler/scatters/scatter"
)

func TestRenderGrid(t *testing.T) {
	placements := []scatter.Placement{
		{Word: "fox", X: 2, Y: 0},
		{Word: "owl", X: 7, Y: 0},
		{Word: "crane", X: 0, Y: 2},
	}

	got := renderGrid(placements, 12, 3)
	want := "  fox  owl\n\ncrane\n"
	if got != want {
		t.Errorf("renderGrid() = %q, want %q", got, want)
	}
}

func TestRenderGridEmpty(t *testing.T) {
	got := renderGrid(nil, 4, 2)
	if got != "\n\n" {
		t.Errorf("renderGrid() = %q, want two empty rows", got)
	}
}

func TestRenderGridClipsAtWidth(t *testing.T) {
	// A word must never write past the right edge even if handed a
	// malformed placement.
	got := renderGrid([]scatter.Placement{{Word: "overflow", X: 4, Y: 0}}, 8, 1)
	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	if len(lines[0]) > 8 {
		t.Errorf("row wider than canvas: %q", lines[0])
	}
}
