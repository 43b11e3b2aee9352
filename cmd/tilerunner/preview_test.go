package main

import (
	"strings"
	"testing"

	"github.com/automoto/tilerunner/tilemap"
)

func TestPreviewRows(t *testing.T) {
	g := tilemap.New(3, 2)
	g.Set(0, 0, tilemap.Ground)
	g.Set(2, 1, tilemap.Ground)

	rows := previewRows(g)
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	// Styles render without escapes when output is not a terminal.
	want := []string{"··█", "█··"}
	for i, row := range rows {
		if row != want[i] {
			t.Errorf("row %d = %q, want %q", i, row, want[i])
		}
	}
}

func TestPreviewTitle(t *testing.T) {
	g := tilemap.New(4, 1)
	g.Set(1, 0, tilemap.Ground)

	out := preview("map_00", g)
	if !strings.Contains(out, "map_00  4x1, 1 ground") {
		t.Errorf("preview title missing:\n%s", out)
	}
	if !strings.Contains(out, "·█··") {
		t.Errorf("preview body missing:\n%s", out)
	}
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"15", 15, false},
		{"0", 0, true},
		{"-3", 0, true},
		{"wide", 0, true},
	}
	for _, tt := range tests {
		got, err := parseSize("width", tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseSize(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("parseSize(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
