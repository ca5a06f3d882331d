package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type noteSavedMsg struct{ id uint }

type translatedMsg struct{ text string }

type BackToNotesMsg struct{}

// EditorModel edits one note: a new one when NoteID is zero, otherwise
// the loaded note.
type EditorModel struct {
	Client      *Client
	NoteID      uint
	Title       textinput.Model
	Content     textarea.Model
	TitleFocus  bool
	Translation string
	Status      string
	Err         error
}

func NewEditorModel(c *Client, note *Note, width, height int) EditorModel {
	title := textinput.New()
	title.Prompt = "Title: "
	title.Placeholder = "note title"
	title.Focus()

	content := textarea.New()
	content.Placeholder = "write your note..."
	content.SetWidth(max(width-4, 40))
	content.SetHeight(max(height-12, 6))

	m := EditorModel{Client: c, Title: title, Content: content, TitleFocus: true}
	if note != nil {
		m.NoteID = note.ID
		m.Title.SetValue(note.Title)
		m.Content.SetValue(note.Content)
	}
	return m
}

func (m EditorModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m EditorModel) saveCmd() tea.Msg {
	title := m.Title.Value()
	content := m.Content.Value()
	if m.NoteID == 0 {
		id, err := m.Client.CreateNote(title, content)
		if err != nil {
			return errMsg(err)
		}
		return noteSavedMsg{id: id}
	}
	if err := m.Client.UpdateNote(m.NoteID, title, content); err != nil {
		return errMsg(err)
	}
	return noteSavedMsg{id: m.NoteID}
}

func (m EditorModel) translateCmd() tea.Msg {
	text := m.Content.Value()
	if strings.TrimSpace(text) == "" {
		return errMsg(errNoText)
	}
	translated, err := m.Client.Translate(text)
	if err != nil {
		return errMsg(err)
	}
	return translatedMsg{text: translated}
}

func (m EditorModel) Update(msg tea.Msg) (EditorModel, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc:
			return m, func() tea.Msg { return BackToNotesMsg{} }
		case tea.KeyCtrlS:
			return m, m.saveCmd
		case tea.KeyCtrlT:
			return m, m.translateCmd
		case tea.KeyTab:
			m.TitleFocus = !m.TitleFocus
			if m.TitleFocus {
				m.Content.Blur()
				cmds = append(cmds, m.Title.Focus())
			} else {
				m.Title.Blur()
				cmds = append(cmds, m.Content.Focus())
			}
			return m, tea.Batch(cmds...)
		}

	case noteSavedMsg:
		m.Err = nil
		m.NoteID = msg.id
		m.Status = "saved"

	case translatedMsg:
		m.Err = nil
		m.Translation = msg.text

	case errMsg:
		m.Err = msg
	}

	var cmd tea.Cmd
	if m.TitleFocus {
		m.Title, cmd = m.Title.Update(msg)
	} else {
		m.Content, cmd = m.Content.Update(msg)
	}
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m EditorModel) View() string {
	var b strings.Builder
	header := "New Note"
	if m.NoteID != 0 {
		header = "Edit Note"
	}
	b.WriteString(titleStyle.Render(header) + "\n\n")
	b.WriteString(m.Title.View() + "\n\n")
	b.WriteString(m.Content.View() + "\n\n")
	if m.Translation != "" {
		b.WriteString(focusedStyle.Render("Translation: ") + m.Translation + "\n")
	}
	if m.Status != "" {
		b.WriteString(blurredStyle.Render(m.Status) + "\n")
	}
	b.WriteString(blurredStyle.Render("Ctrl+S: save, Ctrl+T: translate, Tab: switch field, Esc: back"))
	if m.Err != nil {
		b.WriteString("\n" + errorMessageStyle(m.Err.Error()))
	}
	return b.String()
}
