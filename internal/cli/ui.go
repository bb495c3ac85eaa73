package cli

import (
	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan  = lipgloss.Color("36")  // Teal - selection, headings
	colorGreen = lipgloss.Color("35")  // Green - taken branches, entry blocks
	colorRed   = lipgloss.Color("167") // Soft red - fall-through branches, exit blocks
	colorWhite = lipgloss.Color("255") // Bright white - hover, values
	colorGray  = lipgloss.Color("245") // Gray - unconditional edges, borders
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)
)

// Canvas styles, keyed by what the cell draws.
var (
	styleEdgeTaken    = lipgloss.NewStyle().Foreground(colorGreen)
	styleEdgeFall     = lipgloss.NewStyle().Foreground(colorRed)
	styleEdgePlain    = lipgloss.NewStyle().Foreground(colorGray)
	styleEdgeSelected = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)

	styleNodeBorder   = lipgloss.NewStyle().Foreground(colorGray)
	styleNodeEntry    = lipgloss.NewStyle().Foreground(colorGreen)
	styleNodeExit     = lipgloss.NewStyle().Foreground(colorRed)
	styleNodeHovered  = lipgloss.NewStyle().Foreground(colorWhite)
	styleNodeSelected = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)

	styleNodeTitle = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
	styleNodeBody  = lipgloss.NewStyle().Foreground(colorGray)
)
