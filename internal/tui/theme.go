package tui

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette — true-color hex values
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	colorMauve    lipgloss.Color = "#cba6f7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorPeach    lipgloss.Color = "#fab387"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext1 lipgloss.Color = "#bac2de"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface0 lipgloss.Color = "#313244"
	colorMantle   lipgloss.Color = "#181825"
)

// Semantic aliases.
const (
	colorBrand   = colorMauve
	colorFocus   = colorLavender
	colorSuccess = colorGreen
	colorError   = colorRed
	colorHint    = colorTeal
)

// ---------------------------------------------------------------------------
// Styles
// ---------------------------------------------------------------------------

var (
	headerBarStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorMantle).
			Padding(0, 2)

	headerAppStyle = lipgloss.NewStyle().
			Foreground(colorBrand).
			Bold(true)

	// Step indicator: the active step, steps already completed, and
	// steps still ahead.
	stepActiveStyle = lipgloss.NewStyle().
			Foreground(colorBrand).
			Background(colorSurface0).
			Bold(true).
			Padding(0, 1)

	stepDoneStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Background(colorMantle).
			Padding(0, 1)

	stepPendingStyle = lipgloss.NewStyle().
				Foreground(colorOverlay1).
				Background(colorMantle).
				Padding(0, 1)

	stepSepStyle = lipgloss.NewStyle().
			Foreground(colorOverlay0).
			Background(colorMantle)

	titleStyle = lipgloss.NewStyle().Foreground(colorBrand).Bold(true)

	labelStyle      = lipgloss.NewStyle().Foreground(colorSubtext1)
	labelFocusStyle = lipgloss.NewStyle().Foreground(colorFocus).Bold(true)

	fieldErrorStyle = lipgloss.NewStyle().Foreground(colorError)
	hintStyle       = lipgloss.NewStyle().Foreground(colorHint).Italic(true)

	reviewKeyStyle   = lipgloss.NewStyle().Foreground(colorSubtext0).Width(14)
	reviewValueStyle = lipgloss.NewStyle().Foreground(colorText)
	reviewEmptyStyle = lipgloss.NewStyle().Foreground(colorOverlay0).Italic(true)

	successTitleStyle = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)

	statusStyle    = lipgloss.NewStyle().Foreground(colorSubtext0)
	statusErrStyle = lipgloss.NewStyle().Foreground(colorError).Bold(true)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSubtext1).
			Background(colorSurface0).
			Padding(0, 2)

	footerStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Background(colorMantle).
			Padding(0, 2)
)

func padRight(s string, width int) string {
	if width <= lipgloss.Width(s) {
		return s
	}
	return s + lipgloss.NewStyle().Width(width-lipgloss.Width(s)).Render("")
}
