// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/webcrm-console/internal/app"
	"github.com/MKhiriev/webcrm-console/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type loginResultMsg struct {
	gen uint64
	msg signedInMsg
	err error
}

// LoginModel is the sign-in page. It renders the user name and password inputs
// and dispatches the password grant on submit. On success a [signedInMsg] is
// produced and handled by [RootModel].
type LoginModel struct {
	ctx  context.Context
	auth service.AuthService

	inputs     []textinput.Model
	focus      int
	gen        uint64
	submitting bool
	errMsg     string
	notice     string
}

// NewLoginModel creates a [LoginModel]; the user name field has focus and the
// password field uses masked echo.
func NewLoginModel(ctx context.Context, auth service.AuthService) *LoginModel {
	userInput := textinput.New()
	userInput.Placeholder = "nome utente"
	userInput.CharLimit = 64
	userInput.Width = 40
	userInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return &LoginModel{
		ctx:    ctx,
		auth:   auth,
		inputs: []textinput.Model{userInput, passwordInput},
	}
}

func (m *LoginModel) Init() tea.Cmd {
	m.gen = nextGeneration()
	return textinput.Blink
}

// Update handles:
//   - loginResultMsg: clears the submitting state and reports failures.
//   - tab / shift+tab: moves focus between the inputs.
//   - enter: checks both fields are filled and submits.
//
// All other key events go to the focused input.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(loginResultMsg); ok {
		if result.gen != m.gen {
			return m, nil
		}
		m.submitting = false
		if result.err != nil {
			m.errMsg = userMessage(result.err, app.MsgWrongCredentials)
			return m, nil
		}
		m.inputs[1].SetValue("")
		return m, func() tea.Msg { return result.msg }
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.tab):
			m.setFocus(m.focus + 1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.setFocus(m.focus - 1)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}

			user := strings.TrimSpace(m.inputs[0].Value())
			pass := m.inputs[1].Value()
			if user == "" || pass == "" {
				m.errMsg = app.MsgMissingCredentials
				return m, nil
			}

			m.errMsg = ""
			m.notice = ""
			m.submitting = true
			return m, m.cmdSignIn(user, pass)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *LoginModel) View() string {
	var b strings.Builder

	if m.notice != "" {
		b.WriteString(errorStyle.Render(m.notice))
		b.WriteString("\n\n")
	}

	b.WriteString("Campo       │ Valore\n")
	b.WriteString("────────────┼────────────────────────────────────────────\n")
	b.WriteString("Utente      │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Password    │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Accesso in corso...]\n")
	} else {
		b.WriteString("\n[Accedi]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Errore: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("ACCESSO", strings.TrimRight(b.String(), "\n"), "tab: campo successivo │ enter: accedi")
}

// reset clears the form for a new sign-in and shows notice above it.
func (m *LoginModel) reset(notice string) {
	m.gen = nextGeneration()
	m.submitting = false
	m.errMsg = ""
	m.notice = notice
	m.inputs[1].SetValue("")
	m.setFocus(0)
}

func (m *LoginModel) setNotice(notice string) {
	m.notice = notice
}

func (m *LoginModel) setFocus(i int) {
	n := len(m.inputs)
	m.focus = ((i % n) + n) % n
	for j := range m.inputs {
		if j == m.focus {
			m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
}

func (m *LoginModel) cmdSignIn(user, pass string) tea.Cmd {
	ctx, auth, gen := m.ctx, m.auth, m.gen
	return func() tea.Msg {
		cred, err := auth.SignIn(ctx, user, pass)
		if err != nil {
			return loginResultMsg{gen: gen, err: err}
		}
		return loginResultMsg{gen: gen, msg: signedInMsg{cred: cred}}
	}
}
