package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/brocode/goat/internal/countdown"
)

// renderFrame lays out the legend box above the gauge box, splitting the
// usable height 72/25 inside a fixed margin.
func renderFrame(f countdown.Frame, width, height int, bar progress.Model) string {
	if width <= 0 {
		width = fallbackWidth
	}
	if height <= 0 {
		height = fallbackHeight
	}

	boxWidth := width - 2*frameMargin
	if boxWidth < minBoxWidth {
		boxWidth = minBoxWidth
	}
	usable := height - 2*frameMargin
	legendHeight := usable * legendPercent / 100
	gaugeHeight := usable * gaugePercent / 100

	legend := renderLegend(f, boxWidth, legendHeight)
	gauge := renderGauge(f, boxWidth, gaugeHeight, bar)

	return lipgloss.NewStyle().
		Margin(frameMargin).
		Render(lipgloss.JoinVertical(lipgloss.Left, legend, gauge))
}

func renderLegend(f countdown.Frame, width, height int) string {
	title := lipgloss.NewStyle().Foreground(colorTitle).Bold(true).Render(f.Title)
	keyStyle := lipgloss.NewStyle().Foreground(colorKey)

	lines := make([]string, 0, len(f.Legend)+1)
	lines = append(lines, title)
	for _, e := range f.Legend {
		lines = append(lines, fmt.Sprintf("%s -> %s", keyStyle.Render(string(e.Key)), e.Label))
	}

	return box(height).Width(width - 2).Render(strings.Join(lines, "\n"))
}

func renderGauge(f countdown.Frame, width, height int, bar progress.Model) string {
	bar.Width = width - boxChrome
	title := lipgloss.NewStyle().Foreground(colorMuted).Render("timer")
	label := lipgloss.PlaceHorizontal(width-boxChrome, lipgloss.Center, f.Label)

	content := lipgloss.JoinVertical(lipgloss.Left,
		title,
		bar.ViewAs(float64(f.Percent)/100),
		label,
	)
	return box(height).Width(width - 2).Render(content)
}

// box is a bordered, padded block. height counts border rows and is ignored
// when too small to hold them.
func box(height int) lipgloss.Style {
	s := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 1)
	if height > 2 {
		s = s.Height(height - 2)
	}
	return s
}
