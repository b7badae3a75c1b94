package view

import (
	"fmt"
	"strings"
	"time"

	"statusboard/internal/api"
	"statusboard/internal/state"
	"statusboard/internal/tui/components"
	"statusboard/internal/tui/design"
	"statusboard/internal/tui/model"
	"statusboard/internal/tui/utils"

	"github.com/charmbracelet/lipgloss"
)

const (
	emptyEnvironmentsText   = "No environments yet. Create one to get started."
	failedEnvironmentsText  = "Failed to load environments."
	noSelectionTitle        = "Select an environment"
	noSelectionPill         = "No environment"
	noSelectionPostsText    = "Select an environment to see posts."
	emptyPostsText          = "No posts for this environment yet."
	failedPostsText         = "Failed to load posts."
	loadingCommentsText     = "Loading comments..."
	emptyCommentsText       = "No comments yet."
	failedCommentsText      = "Failed to load comments."
	unknownAuthor           = "unknown"
	unknownEnvironment      = "-"
	environmentListWidthPct = 0.32
)

func renderDashboard(m *model.Model) string {
	header := renderHeader(m, m.Width)
	statusBar := renderStatusBar(m, m.Width)

	layout := components.NewLayout(m.Width, m.Height)
	bodyHeight := layout.CalculateContentArea(lipgloss.Height(header), lipgloss.Height(statusBar))

	var body string
	if m.Width < minWidthForColumns {
		envHeight := bodyHeight / 3
		body = components.JoinVertical(
			renderEnvironmentList(m, m.Width, envHeight),
			renderMainColumn(m, m.Width, bodyHeight-envHeight),
		)
	} else {
		leftWidth, rightWidth := layout.SplitVertical(environmentListWidthPct)
		body = components.JoinHorizontal(
			renderEnvironmentList(m, leftWidth, bodyHeight),
			renderMainColumn(m, rightWidth, bodyHeight),
		)
	}

	return components.JoinVertical(header, body, statusBar)
}

func renderHeader(m *model.Model, width int) string {
	h := components.NewHeader(appTitle).WithWidth(width).WithRightContent(renderUserBadge(m.Session, time.Now()))
	if m.IsLoading() {
		h.WithSpinner(m.Spinner.View())
	}
	return h.Render()
}

// renderUserBadge shows the signed-in user, the role and, for JWTs, the remaining token lifetime.
func renderUserBadge(s state.Session, now time.Time) string {
	if !s.LoggedIn {
		return ""
	}
	badge := design.UserBadgeStyle.Render(SanitizeText(s.Username, false))
	if s.IsAdmin() {
		badge += " " + design.AdminBadgeStyle.Render(string(s.Role))
	} else if s.Role != "" {
		badge += " " + design.DimStyle.Render(SanitizeText(string(s.Role), false))
	}
	if left, ok := s.ExpiresIn(now); ok {
		if left > 0 {
			badge += " " + design.DimStyle.Render("token "+left.Round(time.Minute).String())
		} else {
			badge += " " + design.TextWarningStyle.Render("token expired")
		}
	}
	return badge
}

func renderMainColumn(m *model.Model, width, height int) string {
	envHeader := renderEnvironmentHeader(m, width)
	parts := []string{envHeader}
	used := lipgloss.Height(envHeader)

	if form := renderFormArea(m, width); form != "" {
		parts = append(parts, form)
		used += lipgloss.Height(form)
	}

	postsHeight := height - used
	parts = append(parts, renderPostList(m, width, postsHeight))
	return components.JoinVertical(parts...)
}

// ---- Environment list ----

// environmentListLines renders the grouped rows and returns the line of the cursor row.
func environmentListLines(m *model.Model, width int) ([]string, int) {
	switch {
	case m.EnvironmentsState == model.LoadFailed && len(m.Board.Environments) == 0:
		return []string{design.TextErrorStyle.Render(failedEnvironmentsText)}, 0
	case m.EnvironmentsState == model.LoadInProgress && len(m.Board.Environments) == 0:
		return []string{m.Spinner.View() + " Loading environments..."}, 0
	case len(m.Board.Environments) == 0:
		return []string{design.DimStyle.Render(emptyEnvironmentsText)}, 0
	}

	canDelete := m.Session.Can(state.CapDeleteEnvironment)
	focused := m.Focus == model.FocusEnvironments

	var lines []string
	cursorLine := 0
	row := 0
	for gi, group := range GroupBySolution(m.Board.Environments) {
		if gi > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, design.GroupHeadingStyle.Render(SanitizeText(group.Label, false)))
		for _, env := range group.Environments {
			cursor := "  "
			if focused && row == m.EnvCursor {
				cursor = design.CursorStyle.Render("> ")
				cursorLine = len(lines)
			}
			lines = append(lines, renderEnvironmentRow(env, cursor, m.Board.IsCurrent(env.ID), canDelete && focused && row == m.EnvCursor, width))
			row++
		}
	}
	return lines, cursorLine
}

func renderEnvironmentRow(env api.Environment, cursor string, active, showDelete bool, width int) string {
	status := string(env.Status.Normalize())
	name := SanitizeText(env.Name, false)
	nameStyle := design.ListItemStyle
	if active {
		nameStyle = design.ListItemActiveStyle
		name += " (active)"
	}

	row := cursor + components.StatusDot(status) + nameStyle.Render(name) + " " + design.StatusDotStyle(status).Render(status)
	if showDelete {
		row += " " + design.DangerHintStyle.Render("[d delete]")
	}
	return utils.TruncateStyled(row, width)
}

func renderEnvironmentList(m *model.Model, width, height int) string {
	panel := components.NewPanel("Environments").
		WithDimensions(width, height).
		SetFocused(m.Focus == model.FocusEnvironments && m.ActiveForm == nil && !m.CommentInputActive)
	if n := len(m.Board.Environments); n > 0 {
		panel.WithBadge(fmt.Sprintf("(%d)", n))
	}
	if m.EnvironmentsState == model.LoadFailed {
		panel.WithType(components.PanelTypeError)
	}

	inner := height - design.PanelStyle.GetVerticalFrameSize() - 1
	lines, cursorLine := environmentListLines(m, width-design.PanelStyle.GetHorizontalFrameSize())
	return panel.WithContent(strings.Join(scrollWindow(lines, cursorLine, cursorLine, inner), "\n")).Render()
}

// ---- Environment header ----

func renderEnvironmentHeader(m *model.Model, width int) string {
	env, ok := m.Board.Current()
	if !ok {
		line := design.TitleStyle.Render(noSelectionTitle) + "  " + components.MutedPill(noSelectionPill)
		return lipgloss.NewStyle().Padding(0, design.SpaceXS).Width(width).Render(utils.TruncateStyled(line, width-2))
	}

	title := design.TitleStyle.Render(SanitizeText(env.Solution(), false) + " / " + SanitizeText(env.Name, false))
	line := title + "  " + components.StatusPill(string(env.Status.Normalize()))
	if m.Session.Can(state.CapCycleStatus) {
		line += " " + design.HintStyle.Render("s cycle → "+string(env.Status.Next()))
	}
	return lipgloss.NewStyle().Padding(0, design.SpaceXS).Width(width).Render(utils.TruncateStyled(line, width-2))
}

// ---- Forms ----

func renderFormArea(m *model.Model, width int) string {
	switch {
	case m.ActiveForm != nil:
		title := ""
		switch m.ActiveFormKind {
		case model.FormEnvironment:
			title = "New environment"
		case model.FormPost:
			if env, ok := m.Board.Current(); ok {
				title = "New post in " + SanitizeText(env.Name, false)
			} else {
				title = "New post"
			}
		case model.FormChangePassword:
			title = "Change password"
		}
		body := design.TitleStyle.Render(title) + "\n" + m.ActiveForm.View()
		if m.FormPending {
			body += "\n" + m.Spinner.View() + " Saving..."
		}
		body += "\n" + design.HintStyle.Render("esc cancel")
		return design.BorderFocusStyle.Width(width - 2).Render(body)

	case m.CommentInputActive:
		target := "post"
		if idx := m.CardIndex(m.CommentTargetPostID); idx >= 0 {
			target = `"` + SanitizeText(m.Posts[idx].Post.Title, false) + `"`
		}
		body := design.TitleStyle.Render("Comment on "+target) + "\n" + m.CommentInput.View()
		if m.CommentPending {
			body += "\n" + m.Spinner.View() + " Sending..."
		}
		body += "\n" + design.HintStyle.Render("enter send • esc cancel")
		return design.BorderFocusStyle.Width(width - 2).Render(body)
	}
	return ""
}

// ---- Posts ----

func renderPostList(m *model.Model, width, height int) string {
	panel := components.NewPanel("Posts").
		WithDimensions(width, height).
		SetFocused((m.Focus == model.FocusPosts || m.Focus == model.FocusComments) && m.ActiveForm == nil && !m.CommentInputActive)
	if m.PostsState == model.LoadFailed {
		panel.WithType(components.PanelTypeError)
	}
	if n := len(m.Posts); n > 0 {
		panel.WithBadge(fmt.Sprintf("(%d)", n))
	}

	innerWidth := width - design.PanelStyle.GetHorizontalFrameSize()
	inner := height - design.PanelStyle.GetVerticalFrameSize() - 1

	lines, start, end := postListLines(m, innerWidth)
	return panel.WithContent(strings.Join(scrollWindow(lines, start, end, inner), "\n")).Render()
}

// postListLines returns all card lines plus the line range of the focused card.
func postListLines(m *model.Model, width int) ([]string, int, int) {
	if _, ok := m.Board.Current(); !ok {
		return []string{design.DimStyle.Render(noSelectionPostsText)}, 0, 0
	}
	switch m.PostsState {
	case model.LoadInProgress:
		if len(m.Posts) == 0 {
			return []string{m.Spinner.View() + " Loading posts..."}, 0, 0
		}
	case model.LoadFailed:
		return []string{design.TextErrorStyle.Render(failedPostsText)}, 0, 0
	}
	if len(m.Posts) == 0 {
		return []string{design.DimStyle.Render(emptyPostsText)}, 0, 0
	}

	var lines []string
	start, end := 0, 0
	for i := range m.Posts {
		if i > 0 {
			lines = append(lines, design.DimStyle.Render(strings.Repeat("─", width)))
		}
		focused := i == m.PostCursor
		if focused {
			start = len(lines)
		}
		lines = append(lines, renderPostCard(m, &m.Posts[i], focused, width)...)
		if focused {
			end = len(lines) - 1
		}
	}
	return lines, start, end
}

func renderPostCard(m *model.Model, card *model.PostCard, focused bool, width int) []string {
	p := card.Post
	cursor := "  "
	if focused && m.Focus != model.FocusEnvironments {
		cursor = design.CursorStyle.Render("> ")
	}

	postType := SanitizeText(p.Type, false)
	if postType == "" {
		postType = "POST"
	}
	titleLine := cursor + design.TitleStyle.Render(SanitizeText(p.Title, false)) + " " + design.TagStyle.Render(postType)
	if focused && m.Session.Can(state.CapDeletePost) && m.Focus == model.FocusPosts {
		titleLine += " " + design.DangerHintStyle.Render("[d delete]")
	}

	author := unknownAuthor
	if p.CreatedBy != nil && strings.TrimSpace(*p.CreatedBy) != "" {
		author = SanitizeText(*p.CreatedBy, false)
	}
	envName := unknownEnvironment
	if p.Environment != nil && p.Environment.Name != "" {
		envName = SanitizeText(p.Environment.Name, false)
	}
	meta := fmt.Sprintf("%s • by %s • Environment: %s", FormatTimestamp(p.CreatedAt, m.DateFormat), author, envName)

	lines := []string{
		utils.TruncateStyled(titleLine, width),
		"  " + design.DimStyle.Render(utils.TruncateWithEllipsis(meta, width-2)),
	}
	if desc := SanitizeText(p.Description, true); strings.TrimSpace(desc) != "" {
		wrapped := lipgloss.NewStyle().Width(width - 2).Render(desc)
		for _, l := range strings.Split(wrapped, "\n") {
			lines = append(lines, "  "+l)
		}
	}

	toggle := "▸ Show comments"
	if card.Expanded {
		toggle = "▾ Hide comments"
	}
	if card.Loaded {
		toggle += fmt.Sprintf(" (%d)", len(card.Comments))
	}
	lines = append(lines, "  "+design.HintStyle.Render(toggle))

	if card.Expanded {
		lines = append(lines, renderComments(m, card, focused && m.Focus == model.FocusComments, width-4)...)
	}
	return lines
}

func renderComments(m *model.Model, card *model.PostCard, focused bool, width int) []string {
	indent := "    "
	switch {
	case card.Loading && !card.Loaded:
		return []string{indent + m.Spinner.View() + " " + loadingCommentsText}
	case card.LoadFailed:
		return []string{indent + design.TextErrorStyle.Render(failedCommentsText)}
	case card.Loaded && len(card.Comments) == 0:
		return []string{indent + design.DimStyle.Render(emptyCommentsText)}
	}

	canDelete := m.Session.Can(state.CapDeleteComment)
	var lines []string
	for i, c := range card.Comments {
		cursor := "  "
		selected := focused && i == card.CommentIndex
		if selected {
			cursor = design.CursorStyle.Render("> ")
		}
		author := SanitizeText(c.Author, false)
		if strings.TrimSpace(author) == "" {
			author = unknownAuthor
		}
		head := cursor + design.TextStyle.Bold(true).Render(author) + " " + design.DimStyle.Render(FormatTimestamp(c.CreatedAt, m.DateFormat))
		if selected && canDelete {
			head += " " + design.DangerHintStyle.Render("[d delete]")
		}
		lines = append(lines, indent+utils.TruncateStyled(head, width))

		text := lipgloss.NewStyle().Width(width - 2).Render(SanitizeText(c.Text, true))
		for _, l := range strings.Split(text, "\n") {
			lines = append(lines, indent+"  "+l)
		}
	}
	return lines
}

// FormatTimestamp renders ts in local time, or "-" when absent.
func FormatTimestamp(ts *api.Timestamp, layout string) string {
	if ts == nil || ts.IsZero() {
		return "-"
	}
	return ts.Local().Format(layout)
}

// scrollWindow returns at most height lines of lines, keeping [start,end] visible.
func scrollWindow(lines []string, start, end, height int) []string {
	if height <= 0 {
		return nil
	}
	if len(lines) <= height {
		return lines
	}
	offset := 0
	if end >= height {
		offset = end - height + 1
	}
	if start < offset {
		offset = start
	}
	if offset+height > len(lines) {
		offset = len(lines) - height
	}
	return lines[offset : offset+height]
}
