package tui

import "github.com/charmbracelet/lipgloss"

// Package-level constants to avoid magic numbers in the layout.
const (
	keyBufferSize = 16

	// frameMargin is the blank border around both boxes.
	frameMargin = 2
	// legendPercent and gaugePercent split the usable height.
	legendPercent = 72
	gaugePercent  = 25

	// boxChrome is the horizontal space taken by a box border plus padding.
	boxChrome = 4
	// minBoxWidth keeps the gauge readable on tiny terminals.
	minBoxWidth = 20
	// fallbackWidth/fallbackHeight are used until the geometry is known.
	fallbackWidth  = 80
	fallbackHeight = 24
)

//nolint:gochecknoglobals // Shared styles.
var (
	colorTitle  = lipgloss.Color("5")
	colorKey    = lipgloss.Color("2")
	colorBorder = lipgloss.Color("6")
	colorMuted  = lipgloss.Color("241")
)
