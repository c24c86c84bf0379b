package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/raith/agroconnect/internal/nav"
)

type forgotForm struct {
	email textinput.Model
	sent  bool
}

func newForgotForm() forgotForm {
	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 120
	email.Focus()
	return forgotForm{email: email}
}

func (f *forgotForm) reset() {
	f.email.SetValue("")
	f.email.Focus()
	f.sent = false
}

func (a *App) handleForgotKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.register.RequestTransition(nav.PageLogin, "", false)
		return a, nil
	case "enter":
		if a.forgot.sent {
			a.register.RequestTransition(nav.PageLogin, "", false)
			return a, nil
		}
		email := strings.TrimSpace(a.forgot.email.Value())
		if email == "" {
			a.setStatus("enter your account email")
			a.statusErr = true
			return a, nil
		}
		return a, a.resetPasswordCmd(email)
	}
	if a.forgot.sent {
		return a, nil
	}
	var cmd tea.Cmd
	a.forgot.email, cmd = a.forgot.email.Update(msg)
	return a, cmd
}

func (a *App) viewForgot() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Reset password"))
	b.WriteString("\n\n")
	if a.forgot.sent {
		b.WriteString(successStyle.Render("If that account exists, reset instructions are on their way."))
		b.WriteString("\n\n")
		b.WriteString(dimStyle.Render("enter back to sign in"))
		return b.String()
	}
	b.WriteString(a.forgot.email.View())
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("enter send reset link · esc back to sign in"))
	return b.String()
}
