package components

import (
	"strings"
	"testing"

	"statusboard/internal/tui/design"
	"statusboard/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestPanel_Render_EdgeCases(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		height  int
		title   string
		content string
	}{
		{"zero dimensions", 0, 0, "Environments", "staging"},
		{"negative dimensions", -10, -5, "Environments", "staging"},
		{"empty content", 40, 10, "Posts", ""},
		{"very long content", 20, 6, "Posts", strings.Repeat("a very long line that must be clipped ", 10)},
		{"multiline content exceeding height", 30, 6, "Posts", "1\n2\n3\n4\n5\n6\n7\n8\n9\n10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			panel := NewPanel(tt.title).
				WithContent(tt.content).
				WithDimensions(tt.width, tt.height)

			output := panel.Render()

			assert.NotEmpty(t, output)
			assert.GreaterOrEqual(t, panel.Width, design.MinPanelWidth)
			assert.GreaterOrEqual(t, panel.Height, design.MinPanelHeight)
			assert.Equal(t, panel.Height, lipgloss.Height(output))
			assert.LessOrEqual(t, lipgloss.Width(output), panel.Width)
		})
	}
}

func TestPanel_OverflowShowsEllipsisLine(t *testing.T) {
	out := ansi.Strip(NewPanel("Posts").
		WithContent("1\n2\n3\n4\n5\n6\n7\n8\n9\n10").
		WithDimensions(30, 6).
		Render())
	assert.Contains(t, out, "...")
	assert.NotContains(t, out, "10")
}

func TestPanel_TitleAndBadge(t *testing.T) {
	out := ansi.Strip(NewPanel("Environments").WithBadge("(3)").WithDimensions(40, 6).SetFocused(true).Render())
	assert.Contains(t, out, "Environments (3)")
}

func TestStatusBar_MessageReplacesLeftText(t *testing.T) {
	bar := NewStatusBar(60).WithLeftText("alice").WithRightText("? help")
	assert.Contains(t, ansi.Strip(bar.Render()), "alice")

	bar.WithMessage("Environment created", model.StatusBarSuccess)
	out := ansi.Strip(bar.Render())
	assert.Contains(t, out, "Environment created")
	assert.NotContains(t, out, "alice")
	assert.Contains(t, out, "? help")
}

func TestHeader_KeepsRightContent(t *testing.T) {
	out := ansi.Strip(NewHeader(strings.Repeat("long title ", 10)).WithRightContent("alice").WithWidth(40).Render())
	assert.Contains(t, out, "alice")
	assert.LessOrEqual(t, lipgloss.Width(out), 40)
}

func TestLayout_SplitVertical(t *testing.T) {
	left, right := NewLayout(100, 40).SplitVertical(0.3)
	assert.Equal(t, 30, left)
	assert.Equal(t, 70, right)

	left, right = NewLayout(10, 40).SplitVertical(0.3)
	assert.Equal(t, design.MinPanelWidth, left)
	assert.Equal(t, design.MinPanelWidth, right)
}

func TestModal_Render(t *testing.T) {
	out := ansi.Strip(NewModal(ModalConfirm, "Delete environment", "Delete staging?").WithHint("y confirm • n cancel").Render())
	assert.Contains(t, out, "Delete environment")
	assert.Contains(t, out, "Delete staging?")
	assert.Contains(t, out, "y confirm")
}
