package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/raith/agroconnect/internal/api"
	"github.com/raith/agroconnect/internal/nav"
)

// roles the backend accepts at registration.
var roles = []string{"farmer", "vendor", "logistics"}

type signupForm struct {
	inputs []textinput.Model // full name, email, password, confirm
	role   int
	focus  int
}

func newSignupForm() signupForm {
	name := textinput.New()
	name.Placeholder = "full name"
	name.CharLimit = 120
	name.Focus()

	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 120

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 120
	password.EchoMode = textinput.EchoPassword

	confirm := textinput.New()
	confirm.Placeholder = "confirm password"
	confirm.CharLimit = 120
	confirm.EchoMode = textinput.EchoPassword

	return signupForm{inputs: []textinput.Model{name, email, password, confirm}}
}

func (f *signupForm) reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
	}
	f.role = 0
	f.focus = 0
	f.inputs[0].Focus()
}

func (f *signupForm) setFocus(i int) {
	f.inputs[f.focus].Blur()
	f.focus = i
	f.inputs[f.focus].Focus()
}

func (a *App) handleSignupKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := &a.signup
	switch msg.String() {
	case "esc":
		a.register.RequestTransition(nav.PageLogin, "", false)
		return a, nil
	case "tab", "down":
		f.setFocus((f.focus + 1) % len(f.inputs))
		return a, nil
	case "shift+tab", "up":
		f.setFocus((f.focus + len(f.inputs) - 1) % len(f.inputs))
		return a, nil
	case "ctrl+r":
		f.role = (f.role + 1) % len(roles)
		return a, nil
	case "enter":
		if f.focus < len(f.inputs)-1 {
			f.setFocus(f.focus + 1)
			return a, nil
		}
		return a.submitSignup()
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return a, cmd
}

func (a *App) submitSignup() (tea.Model, tea.Cmd) {
	f := &a.signup
	in := api.RegisterInput{
		FullName:        strings.TrimSpace(f.inputs[0].Value()),
		Email:           strings.TrimSpace(f.inputs[1].Value()),
		Role:            roles[f.role],
		Password:        f.inputs[2].Value(),
		ConfirmPassword: f.inputs[3].Value(),
	}
	switch {
	case in.FullName == "" || in.Email == "" || in.Password == "":
		a.setStatus("all fields are required")
		a.statusErr = true
		return a, nil
	case in.Password != in.ConfirmPassword:
		a.setStatus("passwords do not match")
		a.statusErr = true
		return a, nil
	}
	a.setStatus("creating account...")
	return a, a.signUpCmd(in)
}

func (a *App) viewSignup() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Create account"))
	b.WriteString("\n\n")
	for i := range a.signup.inputs {
		b.WriteString(a.signup.inputs[i].View())
		b.WriteString("\n")
	}
	b.WriteString("\nrole: " + selectedStyle.Render(roles[a.signup.role]))
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("enter submit · ctrl+r change role · esc back to sign in"))
	return b.String()
}
