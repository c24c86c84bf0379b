package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/raith/agroconnect/internal/nav"
)

type loginForm struct {
	inputs []textinput.Model
	focus  int
}

func newLoginForm() loginForm {
	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 120
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 120
	password.EchoMode = textinput.EchoPassword

	return loginForm{inputs: []textinput.Model{email, password}}
}

func (f *loginForm) reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
	}
	f.focus = 0
	f.inputs[0].Focus()
}

func (f *loginForm) setFocus(i int) {
	f.inputs[f.focus].Blur()
	f.focus = i
	f.inputs[f.focus].Focus()
}

func (a *App) handleLoginKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := &a.login
	switch msg.String() {
	case "tab", "down":
		f.setFocus((f.focus + 1) % len(f.inputs))
		return a, nil
	case "shift+tab", "up":
		f.setFocus((f.focus + len(f.inputs) - 1) % len(f.inputs))
		return a, nil
	case "enter":
		if f.focus < len(f.inputs)-1 {
			f.setFocus(f.focus + 1)
			return a, nil
		}
		email := strings.TrimSpace(f.inputs[0].Value())
		password := f.inputs[1].Value()
		if email == "" || password == "" {
			a.setStatus("email and password are required")
			a.statusErr = true
			return a, nil
		}
		a.setStatus("signing in...")
		return a, a.signInCmd(email, password)
	case "ctrl+n":
		a.register.RequestTransition(nav.PageRegister, "", false)
		return a, nil
	case "ctrl+f":
		a.register.RequestTransition(nav.PageForgotPassword, "", false)
		return a, nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return a, cmd
}

func (a *App) viewLogin() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Sign in"))
	b.WriteString("\n\n")
	for i := range a.login.inputs {
		b.WriteString(a.login.inputs[i].View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("enter sign in · ctrl+n create account · ctrl+f forgot password · ctrl+c quit"))
	return b.String()
}
