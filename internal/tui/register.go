package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/memehoueibib/securecode-platform-sub001/internal/service"
	"github.com/memehoueibib/securecode-platform-sub001/models"
)

// RegisterModel is the account creation screen. A successful registration
// signs the user in, so it reports through [LoginResult] like the login page.
type RegisterModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	form       form
	submitting bool
	errMsg     string
}

func NewRegisterModel(ctx context.Context, auth service.ClientAuthService) *RegisterModel {
	return &RegisterModel{
		ctx:  ctx,
		auth: auth,
		form: newForm(
			formField{label: "Name", limit: 100},
			formField{label: "Login", limit: 254},
			formField{label: "Password", secret: true, limit: 256},
			formField{label: "Repeat password", secret: true, limit: 256},
		),
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(LoginResult); ok {
		m.submitting = false
		m.errMsg = humanizeError(result.Err)
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.submitting = false
			m.errMsg = ""
			m.form.reset()
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case key.Matches(keyMsg, keys.tab):
			m.form.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.form.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}

			name := strings.TrimSpace(m.form.value(0))
			login := strings.TrimSpace(m.form.value(1))
			pass := m.form.value(2)
			repeat := m.form.value(3)

			if login == "" || pass == "" {
				m.errMsg = "Login and password are required"
				return m, nil
			}
			if pass != repeat {
				m.errMsg = "Passwords do not match"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdRegister(name, login, pass)
		}
	}

	return m, m.form.update(msg)
}

func (m *RegisterModel) View() string {
	return renderPage("CREATE ACCOUNT", m.form.view("Create account", m.submitting, m.errMsg),
		"esc: back │ tab: next field │ enter: submit")
}

func (m *RegisterModel) cmdRegister(name, login, pass string) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		session, err := auth.Register(ctx, models.User{Name: name, Login: login, Password: pass})
		return LoginResult{Session: session, Err: err}
	}
}
