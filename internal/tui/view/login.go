package view

import (
	"strings"

	"statusboard/internal/tui/design"
	"statusboard/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

func authFormTitle(kind model.AuthFormKind) string {
	switch kind {
	case model.AuthFormRegister:
		return "Create an account"
	case model.AuthFormChangePassword:
		return "Change password"
	default:
		return "Sign in"
	}
}

func authFormHint(kind model.AuthFormKind) string {
	switch kind {
	case model.AuthFormLogin:
		return "enter submit • ctrl+r register • ctrl+p change password • ctrl+c quit"
	case model.AuthFormRegister:
		return "enter submit • ctrl+p change password • esc back to sign in"
	default:
		return "enter submit • ctrl+r register • esc back to sign in"
	}
}

func renderLogin(m *model.Model) string {
	var parts []string
	parts = append(parts, design.TitleStyle.Foreground(design.ColorPrimary).Render(appTitle))
	parts = append(parts, design.TextSecondaryStyle.Render(authFormTitle(m.AuthFormKind)), "")

	if m.AuthForm != nil {
		parts = append(parts, m.AuthForm.View())
	}
	if m.AuthPending {
		parts = append(parts, m.Spinner.View()+" Working...")
	}
	if m.AuthNotice != "" {
		style := design.TextSuccessStyle
		if m.AuthNoticeIsError {
			style = design.TextErrorStyle
		}
		parts = append(parts, "", style.Render(SanitizeText(m.AuthNotice, false)))
	}
	parts = append(parts, "", design.HintStyle.Render(authFormHint(m.AuthFormKind)))

	box := design.LoginBoxStyle.Render(strings.Join(parts, "\n"))
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, box)
}
