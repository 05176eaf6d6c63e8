package panels

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin palette — true-color hex values
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	colorRosewater lipgloss.Color = "#f5e0dc"
	colorPink      lipgloss.Color = "#f5c2e7"
	colorMauve     lipgloss.Color = "#cba6f7"
	colorRed       lipgloss.Color = "#f38ba8"
	colorPeach     lipgloss.Color = "#fab387"
	colorYellow    lipgloss.Color = "#f9e2af"
	colorGreen     lipgloss.Color = "#a6e3a1"
	colorTeal      lipgloss.Color = "#94e2d5"
	colorSky       lipgloss.Color = "#89dceb"
	colorBlue      lipgloss.Color = "#89b4fa"
	colorLavender  lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext  lipgloss.Color = "#a6adc8"
	colorOverlay  lipgloss.Color = "#6c7086"
	colorSurface  lipgloss.Color = "#313244"
	colorBase     lipgloss.Color = "#1e1e2e"
	colorCrust    lipgloss.Color = "#11111b"
	colorLatte    lipgloss.Color = "#4c4f69"
	colorLatteDim lipgloss.Color = "#6c6f85"
	colorLatteBg  lipgloss.Color = "#eff1f5"
)

// ThemeMode selects the palette variant.
type ThemeMode string

const (
	ModeDark  ThemeMode = "dark"
	ModeLight ThemeMode = "light"
)

// Theme carries the semantic colors panels render with. Passed
// explicitly through the rendering context rather than held as a
// process global.
type Theme struct {
	Mode       ThemeMode
	Text       lipgloss.Color
	Subtle     lipgloss.Color
	Border     lipgloss.Color
	Accent     lipgloss.Color
	Focus      lipgloss.Color
	Success    lipgloss.Color
	Error      lipgloss.Color
	Warning    lipgloss.Color
	Background lipgloss.Color
}

func NewTheme(mode ThemeMode) Theme {
	if mode == ModeLight {
		return Theme{
			Mode:       ModeLight,
			Text:       colorLatte,
			Subtle:     colorLatteDim,
			Border:     colorLatteDim,
			Accent:     colorMauve,
			Focus:      colorBlue,
			Success:    colorGreen,
			Error:      colorRed,
			Warning:    colorPeach,
			Background: colorLatteBg,
		}
	}
	return Theme{
		Mode:       ModeDark,
		Text:       colorText,
		Subtle:     colorSubtext,
		Border:     colorOverlay,
		Accent:     colorPink,
		Focus:      colorLavender,
		Success:    colorGreen,
		Error:      colorRed,
		Warning:    colorYellow,
		Background: colorBase,
	}
}

// Toggle flips between the dark and light variants.
func (t Theme) Toggle() Theme {
	if t.Mode == ModeDark {
		return NewTheme(ModeLight)
	}
	return NewTheme(ModeDark)
}

// AccentColors returns the rotating accent set used by demo content.
func AccentColors() []lipgloss.Color {
	return []lipgloss.Color{
		colorGreen, colorTeal, colorPeach, colorBlue,
		colorMauve, colorPink, colorSky, colorLavender,
		colorYellow, colorRed, colorRosewater,
	}
}
