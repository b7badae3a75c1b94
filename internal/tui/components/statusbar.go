package components

import (
	"strings"

	"statusboard/internal/tui/design"
	"statusboard/internal/tui/model"
	"statusboard/internal/tui/utils"

	"github.com/charmbracelet/lipgloss"
)

// StatusBar represents the bottom status bar
type StatusBar struct {
	Width       int
	Message     string
	MessageType model.MessageType
	LeftText    string
	RightText   string
	ShowMessage bool
}

// NewStatusBar creates a new status bar
func NewStatusBar(width int) *StatusBar {
	return &StatusBar{Width: width}
}

// WithMessage sets a status message
func (s *StatusBar) WithMessage(message string, msgType model.MessageType) *StatusBar {
	s.Message = message
	s.MessageType = msgType
	s.ShowMessage = message != ""
	return s
}

// WithLeftText sets the left side text
func (s *StatusBar) WithLeftText(text string) *StatusBar {
	s.LeftText = text
	return s
}

// WithRightText sets the right side text
func (s *StatusBar) WithRightText(text string) *StatusBar {
	s.RightText = text
	return s
}

// Render returns the styled status bar
func (s *StatusBar) Render() string {
	style := s.getStyle()
	inner := s.Width - style.GetHorizontalPadding()
	if inner < 0 {
		inner = 0
	}

	left := s.LeftText
	if s.ShowMessage {
		left = s.Message
	}

	var content string
	switch {
	case left != "" && s.RightText != "":
		gap := inner - lipgloss.Width(left) - lipgloss.Width(s.RightText)
		if gap > 0 {
			content = left + strings.Repeat(" ", gap) + s.RightText
		} else {
			content = utils.TruncateStyled(left, inner)
		}
	case left != "":
		content = utils.TruncateStyled(left, inner)
	default:
		content = utils.TruncateStyled(s.RightText, inner)
	}

	return style.
		Width(s.Width).
		MaxWidth(s.Width).
		Render(content)
}

func (s *StatusBar) getStyle() lipgloss.Style {
	if !s.ShowMessage {
		return design.StatusBarStyle
	}
	switch s.MessageType {
	case model.StatusBarSuccess:
		return design.StatusBarSuccessStyle
	case model.StatusBarError:
		return design.StatusBarErrorStyle
	case model.StatusBarWarning:
		return design.StatusBarWarningStyle
	default:
		return design.StatusBarInfoStyle
	}
}
