package ui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
)

var errNoText = errors.New("nothing to translate")

type state int

const (
	stateLogin state = iota
	stateNotes
	stateEditor
)

type RootModel struct {
	State    state
	Client   *Client
	Login    LoginModel
	Notes    NotesModel
	Editor   EditorModel
	Quitting bool
	width    int
	height   int
}

func NewRootModel(baseURL string) RootModel {
	c := NewClient(baseURL)
	return RootModel{
		State:  stateLogin,
		Client: c,
		Login:  NewLoginModel(c),
	}
}

func (m RootModel) Init() tea.Cmd {
	return m.Login.Init()
}

func (m RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.Quitting = true
			return m, tea.Quit
		}
	}

	switch m.State {
	case stateLogin:
		if _, ok := msg.(authOKMsg); ok {
			m.State = stateNotes
			m.Notes = NewNotesModel(m.Client, m.width, m.height)
			return m, m.Notes.Init()
		}
		newLogin, cmd := m.Login.Update(msg)
		m.Login = newLogin
		cmds = append(cmds, cmd)

	case stateNotes:
		switch msg := msg.(type) {
		case noteOpenedMsg:
			m.State = stateEditor
			m.Editor = NewEditorModel(m.Client, msg.note, m.width, m.height)
			return m, m.Editor.Init()
		case NewNoteMsg:
			m.State = stateEditor
			m.Editor = NewEditorModel(m.Client, nil, m.width, m.height)
			return m, m.Editor.Init()
		}
		newNotes, cmd := m.Notes.Update(msg)
		m.Notes = newNotes
		cmds = append(cmds, cmd)

	case stateEditor:
		if _, ok := msg.(BackToNotesMsg); ok {
			m.State = stateNotes
			return m, m.Notes.refreshCmd
		}
		newEditor, cmd := m.Editor.Update(msg)
		m.Editor = newEditor
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m RootModel) View() string {
	if m.Quitting {
		return "Bye!\n"
	}
	switch m.State {
	case stateLogin:
		return m.Login.View()
	case stateNotes:
		return m.Notes.View()
	case stateEditor:
		return m.Editor.View()
	}
	return ""
}
