package components

import (
	"strings"

	"statusboard/internal/tui/design"
	"statusboard/internal/tui/utils"

	"github.com/charmbracelet/lipgloss"
)

// PanelType defines the visual style of a panel
type PanelType int

const (
	PanelTypeDefault PanelType = iota
	PanelTypeError
	PanelTypeWarning
)

// Panel is a bordered box with a title line and clipped content.
type Panel struct {
	Title   string
	Badge   string
	Content string
	Width   int
	Height  int
	Focused bool
	Type    PanelType
}

// NewPanel creates a new panel with default settings
func NewPanel(title string) *Panel {
	return &Panel{
		Title:  title,
		Width:  design.MinPanelWidth,
		Height: design.MinPanelHeight,
		Type:   PanelTypeDefault,
	}
}

// WithContent sets the panel content
func (p *Panel) WithContent(content string) *Panel {
	p.Content = content
	return p
}

// WithBadge sets text shown right of the title.
func (p *Panel) WithBadge(badge string) *Panel {
	p.Badge = badge
	return p
}

// WithDimensions sets the panel dimensions
func (p *Panel) WithDimensions(width, height int) *Panel {
	p.Width = width
	p.Height = height
	return p
}

// WithType sets the panel type for styling
func (p *Panel) WithType(panelType PanelType) *Panel {
	p.Type = panelType
	return p
}

// SetFocused updates the focus state
func (p *Panel) SetFocused(focused bool) *Panel {
	p.Focused = focused
	return p
}

// Render returns the styled panel. Content beyond the panel height is
// replaced by a trailing "..." line.
func (p *Panel) Render() string {
	if p.Width < design.MinPanelWidth {
		p.Width = design.MinPanelWidth
	}
	if p.Height < design.MinPanelHeight {
		p.Height = design.MinPanelHeight
	}

	style := p.getStyle()
	innerWidth := p.Width - style.GetHorizontalFrameSize()
	innerHeight := p.Height - style.GetVerticalFrameSize()
	if innerWidth < 1 {
		innerWidth = 1
	}
	if innerHeight < 1 {
		innerHeight = 1
	}

	var lines []string
	if p.Title != "" {
		lines = append(lines, p.renderTitle(innerWidth))
	}

	if p.Content != "" {
		contentLines := strings.Split(p.Content, "\n")
		available := innerHeight - len(lines)
		if available > 0 {
			if len(contentLines) > available {
				contentLines = append(contentLines[:available-1:available-1], design.DimStyle.Render("..."))
			}
			for _, line := range contentLines {
				lines = append(lines, utils.TruncateStyled(line, innerWidth))
			}
		}
	}

	for len(lines) < innerHeight {
		lines = append(lines, "")
	}
	if len(lines) > innerHeight {
		lines = lines[:innerHeight]
	}

	// lipgloss sizes exclude the border.
	return style.
		Width(p.Width - style.GetHorizontalBorderSize()).
		Height(p.Height - style.GetVerticalBorderSize()).
		Render(strings.Join(lines, "\n"))
}

func (p *Panel) getStyle() lipgloss.Style {
	base := design.PanelStyle
	if p.Focused {
		base = design.PanelFocusedStyle
	}
	switch p.Type {
	case PanelTypeError:
		return base.BorderForeground(design.ColorError)
	case PanelTypeWarning:
		return base.BorderForeground(design.ColorWarning)
	default:
		return base
	}
}

func (p *Panel) renderTitle(width int) string {
	if p.Title == "" {
		return ""
	}
	titleStyle := design.TitleStyle
	if p.Focused {
		titleStyle = titleStyle.Foreground(design.ColorPrimary)
	}
	title := titleStyle.Render(p.Title)
	if p.Badge != "" {
		title += " " + design.DimStyle.Render(p.Badge)
	}
	return utils.TruncateStyled(title, width)
}
