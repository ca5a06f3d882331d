package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type authOKMsg struct{}

type errMsg error

type LoginModel struct {
	Client   *Client
	Inputs   []textinput.Model
	FocusIdx int
	SignUp   bool // false: sign in, true: sign up
	Err      error
}

const (
	inputUsername = iota
	inputPassword
	inputEmail // only used in sign-up mode
)

func NewLoginModel(c *Client) LoginModel {
	inputs := make([]textinput.Model, 3)

	inputs[inputUsername] = textinput.New()
	inputs[inputUsername].Placeholder = "username"
	inputs[inputUsername].Prompt = "Username: "
	inputs[inputUsername].Focus()

	inputs[inputPassword] = textinput.New()
	inputs[inputPassword].Placeholder = "password"
	inputs[inputPassword].EchoMode = textinput.EchoPassword
	inputs[inputPassword].Prompt = "Password: "

	inputs[inputEmail] = textinput.New()
	inputs[inputEmail].Placeholder = "you@example.com"
	inputs[inputEmail].Prompt = "Email: "

	return LoginModel{Client: c, Inputs: inputs}
}

func (m LoginModel) visibleInputs() int {
	if m.SignUp {
		return 3
	}
	return 2
}

func (m LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m LoginModel) Update(msg tea.Msg) (LoginModel, tea.Cmd) {
	cmds := make([]tea.Cmd, len(m.Inputs))

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			if m.FocusIdx == m.visibleInputs()-1 {
				return m, m.submitCmd
			}
			m.nextInput()
		case tea.KeyTab, tea.KeyDown:
			m.nextInput()
		case tea.KeyShiftTab, tea.KeyUp:
			m.prevInput()
		case tea.KeyCtrlN:
			m.SignUp = !m.SignUp
			m.Err = nil
			if m.FocusIdx >= m.visibleInputs() {
				m.FocusIdx = 0
			}
		}
	case errMsg:
		m.Err = msg
	}

	for i := range m.Inputs {
		m.Inputs[i], cmds[i] = m.Inputs[i].Update(msg)
	}
	return m, tea.Batch(cmds...)
}

func (m *LoginModel) nextInput() {
	m.Inputs[m.FocusIdx].Blur()
	m.FocusIdx = (m.FocusIdx + 1) % m.visibleInputs()
	m.Inputs[m.FocusIdx].Focus()
}

func (m *LoginModel) prevInput() {
	m.Inputs[m.FocusIdx].Blur()
	m.FocusIdx--
	if m.FocusIdx < 0 {
		m.FocusIdx = m.visibleInputs() - 1
	}
	m.Inputs[m.FocusIdx].Focus()
}

func (m LoginModel) submitCmd() tea.Msg {
	username := m.Inputs[inputUsername].Value()
	password := m.Inputs[inputPassword].Value()

	var err error
	if m.SignUp {
		err = m.Client.SignUp(username, password, m.Inputs[inputEmail].Value())
	} else {
		err = m.Client.SignIn(username, password)
	}
	if err != nil {
		return errMsg(err)
	}
	return authOKMsg{}
}

func (m LoginModel) View() string {
	var b strings.Builder

	mode := "Sign In"
	if m.SignUp {
		mode = "Sign Up"
	}
	b.WriteString(titleStyle.Render("Simple Notes - "+mode) + "\n\n")

	for i := 0; i < m.visibleInputs(); i++ {
		b.WriteString(m.Inputs[i].View())
		b.WriteRune('\n')
	}

	b.WriteString("\n")
	b.WriteString(blurredStyle.Render("Tab: next field, Enter: submit, Ctrl+N: toggle sign in/up"))

	if m.Err != nil {
		b.WriteString("\n\n")
		b.WriteString(errorMessageStyle(m.Err.Error()))
	}
	return b.String()
}
