package design

import (
	"github.com/charmbracelet/lipgloss"
)

// Spacing follows a 4px base unit.
const (
	SpaceNone = 0
	SpaceXS   = 1 // 4px
	SpaceSM   = 2 // 8px
	SpaceMD   = 3 // 12px
	SpaceLG   = 4 // 16px

	MinPanelHeight = 5
	MinPanelWidth  = 20
)

// Color Palette - semantic colors with light/dark variants
var (
	ColorPrimary = lipgloss.AdaptiveColor{
		Light: "#5A56E0",
		Dark:  "#7571F9",
	}

	ColorSuccess = lipgloss.AdaptiveColor{
		Light: "#059669",
		Dark:  "#10B981",
	}
	ColorError = lipgloss.AdaptiveColor{
		Light: "#DC2626",
		Dark:  "#EF4444",
	}
	ColorWarning = lipgloss.AdaptiveColor{
		Light: "#D97706",
		Dark:  "#F59E0B",
	}
	ColorInfo = lipgloss.AdaptiveColor{
		Light: "#2563EB",
		Dark:  "#3B82F6",
	}
	ColorFreeze = lipgloss.AdaptiveColor{
		Light: "#0891B2",
		Dark:  "#22D3EE",
	}

	ColorBackground = lipgloss.AdaptiveColor{
		Light: "#FFFFFF",
		Dark:  "#0F0F0F",
	}
	ColorSurface = lipgloss.AdaptiveColor{
		Light: "#F9FAFB",
		Dark:  "#1A1A1A",
	}
	ColorSurfaceAlt = lipgloss.AdaptiveColor{
		Light: "#F3F4F6",
		Dark:  "#262626",
	}
	ColorBorder = lipgloss.AdaptiveColor{
		Light: "#E5E7EB",
		Dark:  "#404040",
	}
	ColorBorderFocus = lipgloss.AdaptiveColor{
		Light: "#5A56E0",
		Dark:  "#7571F9",
	}

	ColorText = lipgloss.AdaptiveColor{
		Light: "#111827",
		Dark:  "#F9FAFB",
	}
	ColorTextSecondary = lipgloss.AdaptiveColor{
		Light: "#6B7280",
		Dark:  "#9CA3AF",
	}
	ColorTextMuted = lipgloss.AdaptiveColor{
		Light: "#9CA3AF",
		Dark:  "#6B7280",
	}

	ColorHighlight = lipgloss.AdaptiveColor{
		Light: "#EEF2FF",
		Dark:  "#312E81",
	}
	ColorBackgroundOverlay = lipgloss.AdaptiveColor{
		Light: "#FFFFFF",
		Dark:  "#1E1E1E",
	}
)

// Base Styles
var (
	TextStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	TextSecondaryStyle = lipgloss.NewStyle().
				Foreground(ColorTextSecondary)

	TextSuccessStyle = lipgloss.NewStyle().
				Foreground(ColorSuccess)

	TextErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	TextWarningStyle = lipgloss.NewStyle().
				Foreground(ColorWarning)

	DimStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder)

	BorderFocusStyle = lipgloss.NewStyle().
				Border(lipgloss.ThickBorder()).
				BorderForeground(ColorBorderFocus)
)

// Component Styles
var (
	PanelStyle = lipgloss.NewStyle().
			Inherit(BorderStyle).
			Padding(0, SpaceXS)

	PanelFocusedStyle = PanelStyle.
				Border(lipgloss.ThickBorder()).
				BorderForeground(ColorBorderFocus)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Background(ColorSurface).
			Foreground(ColorText).
			Padding(0, SpaceSM)

	StatusBarStyle = lipgloss.NewStyle().
			Background(ColorSurfaceAlt).
			Foreground(ColorText).
			Padding(0, SpaceSM).
			Height(1)

	StatusBarSuccessStyle = StatusBarStyle.
				Background(ColorSuccess).
				Foreground(ColorBackground)

	StatusBarErrorStyle = StatusBarStyle.
				Background(ColorError).
				Foreground(ColorBackground)

	StatusBarWarningStyle = StatusBarStyle.
				Background(ColorWarning).
				Foreground(ColorBackground)

	StatusBarInfoStyle = StatusBarStyle.
				Background(ColorInfo).
				Foreground(ColorBackground)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText)

	GroupHeadingStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorTextSecondary)

	ListItemStyle = lipgloss.NewStyle().
			PaddingLeft(SpaceXS)

	ListItemActiveStyle = ListItemStyle.
				Foreground(ColorPrimary).
				Bold(true)

	CursorStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	TagStyle = lipgloss.NewStyle().
			Foreground(ColorBackground).
			Background(ColorTextSecondary).
			Padding(0, SpaceXS)

	PillStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorBackground).
			Padding(0, SpaceXS)

	MutedPillStyle = PillStyle.
			Background(ColorTextMuted)

	HintStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true)

	DangerHintStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	UserBadgeStyle = lipgloss.NewStyle().
			Foreground(ColorBackground).
			Background(ColorPrimary).
			Bold(true).
			Padding(0, SpaceXS)

	AdminBadgeStyle = UserBadgeStyle.
			Background(ColorWarning)
)

// Overlay styles
var (
	HelpTitleStyle = lipgloss.NewStyle().
			Bold(true).
			MarginBottom(1).
			Align(lipgloss.Center).
			Foreground(ColorText)

	CenteredOverlayContainerStyle = lipgloss.NewStyle().
					Border(lipgloss.RoundedBorder()).
					BorderForeground(ColorBorder).
					Background(ColorBackgroundOverlay).
					Foreground(ColorText).
					Padding(1, 2)

	AlertOverlayStyle = CenteredOverlayContainerStyle.
				BorderForeground(ColorError)

	ConfirmOverlayStyle = CenteredOverlayContainerStyle.
				BorderForeground(ColorWarning)

	LogOverlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Background(ColorBackgroundOverlay).
			Foreground(ColorText).
			Padding(1, 2)

	LogPanelTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Padding(0, 1).
				MarginBottom(1).
				Foreground(ColorText)

	LoginBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(1, 2)
)

// Log level styles
var (
	LogInfoStyle  = lipgloss.NewStyle().Foreground(ColorText)
	LogWarnStyle  = lipgloss.NewStyle().Foreground(ColorWarning)
	LogErrorStyle = lipgloss.NewStyle().Foreground(ColorError)
	LogDebugStyle = lipgloss.NewStyle().Foreground(ColorTextMuted).Italic(true)
)

// StatusColor maps an environment status to its display color.
func StatusColor(status string) lipgloss.TerminalColor {
	switch status {
	case "OK":
		return ColorSuccess
	case "ISSUES":
		return ColorWarning
	case "FREEZE":
		return ColorFreeze
	case "DOWN":
		return ColorError
	default:
		return ColorTextMuted
	}
}

// StatusDotStyle colors the status dot of an environment row.
func StatusDotStyle(status string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(StatusColor(status))
}

// StatusPillStyle colors the status pill of the environment header.
func StatusPillStyle(status string) lipgloss.Style {
	return PillStyle.Background(StatusColor(status))
}

// CenterHorizontal pads content so it sits in the middle of width.
func CenterHorizontal(width int, content string) string {
	contentWidth := lipgloss.Width(content)
	if contentWidth >= width {
		return content
	}
	padding := (width - contentWidth) / 2
	return lipgloss.NewStyle().
		PaddingLeft(padding).
		Width(width).
		Render(content)
}

// Initialize sets up the design system
func Initialize(isDarkMode bool) {
	lipgloss.SetHasDarkBackground(isDarkMode)
}
