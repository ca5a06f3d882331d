package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type notesLoadedMsg struct{ notes []Note }

type noteOpenedMsg struct{ note *Note }

type noteDeletedMsg struct{}

type NewNoteMsg struct{}

type NotesModel struct {
	Client    *Client
	Table     table.Model
	Search    textinput.Model
	Searching bool
	Notes     []Note
	Err       error
}

func NewNotesModel(c *Client, width, height int) NotesModel {
	columns := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Title", Width: 40},
		{Title: "Updated", Width: 20},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(height-10, 5)),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	search := textinput.New()
	search.Placeholder = "title contains..."
	search.Prompt = "Search: "

	return NotesModel{Client: c, Table: t, Search: search}
}

func (m NotesModel) Init() tea.Cmd {
	return m.refreshCmd
}

func (m NotesModel) refreshCmd() tea.Msg {
	notes, err := m.Client.ListNotes(m.Search.Value())
	if err != nil {
		return errMsg(err)
	}
	return notesLoadedMsg{notes: notes}
}

func (m NotesModel) openCmd(id uint) tea.Cmd {
	return func() tea.Msg {
		n, err := m.Client.GetNote(id)
		if err != nil {
			return errMsg(err)
		}
		return noteOpenedMsg{note: n}
	}
}

func (m NotesModel) deleteCmd(id uint) tea.Cmd {
	return func() tea.Msg {
		if err := m.Client.DeleteNote(id); err != nil {
			return errMsg(err)
		}
		return noteDeletedMsg{}
	}
}

func (m NotesModel) selectedID() (uint, bool) {
	row := m.Table.SelectedRow()
	if len(row) == 0 {
		return 0, false
	}
	id, err := strconv.ParseUint(row[0], 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func (m NotesModel) Update(msg tea.Msg) (NotesModel, tea.Cmd) {
	var cmd tea.Cmd

	if m.Searching {
		switch msg := msg.(type) {
		case tea.KeyMsg:
			switch msg.Type {
			case tea.KeyEnter:
				m.Searching = false
				m.Search.Blur()
				return m, m.refreshCmd
			case tea.KeyEsc:
				m.Searching = false
				m.Search.Blur()
				m.Search.SetValue("")
				return m, m.refreshCmd
			}
		}
		m.Search, cmd = m.Search.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			return m, m.refreshCmd
		case "/":
			m.Searching = true
			return m, m.Search.Focus()
		case "n":
			return m, func() tea.Msg { return NewNoteMsg{} }
		case "d":
			if id, ok := m.selectedID(); ok {
				return m, m.deleteCmd(id)
			}
		case "enter":
			if id, ok := m.selectedID(); ok {
				return m, m.openCmd(id)
			}
		case "q":
			return m, tea.Quit
		}

	case notesLoadedMsg:
		m.Err = nil
		m.Notes = msg.notes
		rows := make([]table.Row, 0, len(msg.notes))
		for _, n := range msg.notes {
			rows = append(rows, table.Row{
				strconv.FormatUint(uint64(n.ID), 10),
				n.Title,
				n.UpdatedAt.Format("2006-01-02 15:04:05"),
			})
		}
		m.Table.SetRows(rows)

	case noteDeletedMsg:
		return m, m.refreshCmd

	case errMsg:
		m.Err = msg
	}

	m.Table, cmd = m.Table.Update(msg)
	return m, cmd
}

func (m NotesModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Your Notes") + "\n\n")
	b.WriteString(m.Search.View() + "\n\n")
	b.WriteString(m.Table.View())
	b.WriteString("\n\n")
	b.WriteString(blurredStyle.Render("enter: open, n: new, d: delete, /: search, r: refresh, q: quit"))
	if m.Err != nil {
		b.WriteString("\n" + errorMessageStyle(m.Err.Error()))
	}
	return b.String()
}
