package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/automoto/tilerunner/tilemap"
)

var (
	groundStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	emptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	titleStyle  = lipgloss.NewStyle().Bold(true)
	frameStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
)

var tileGlyphs = map[tilemap.Tile]string{
	tilemap.Empty:  "·",
	tilemap.Ground: "█",
}

// previewRows renders the grid top row first, one rune per tile.
func previewRows(g *tilemap.Grid) []string {
	rows := make([]string, 0, g.Height())
	for y := g.Height() - 1; y >= 0; y-- {
		var b strings.Builder
		for x := range g.Width() {
			t := g.At(x, y)
			style := emptyStyle
			if t.Visible() {
				style = groundStyle
			}
			b.WriteString(style.Render(tileGlyphs[t]))
		}
		rows = append(rows, b.String())
	}
	return rows
}

func preview(name string, g *tilemap.Grid) string {
	title := titleStyle.Render(fmt.Sprintf("%s  %dx%d, %d ground", name, g.Width(), g.Height(), g.Count(tilemap.Ground)))
	return lipgloss.JoinVertical(lipgloss.Left, title, frameStyle.Render(strings.Join(previewRows(g), "\n")))
}
