package cmd

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

/*
 * The command edit uses Bubble Tea to select an entry interactively.
 * All BubbleTea-related code is present in this file to make easy to
 * refactor or switch to another library someday.
 */

var (
	listWidth             = 20
	listHeight            = 14
	listTitleStyle        = lipgloss.NewStyle().MarginLeft(2)
	listItemStyle         = lipgloss.NewStyle().PaddingLeft(4)
	listSelectedItemStyle = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("170"))
	helpStyle             = list.DefaultStyles().HelpStyle.PaddingLeft(4).PaddingBottom(1)
)

// ChooseEntry asks to pick an entry title interactively.
// An empty result means the selection was aborted.
func ChooseEntry(titles []string) string {
	/* Inspired by https://github.com/charmbracelet/bubbletea/blob/master/examples/list-simple/ */
	res, err := tea.NewProgram(NewEntryModel(titles)).Run()
	if err != nil {
		log.Fatal(err)
	}
	return res.(EntryModel).choice
}

func NewEntryModel(titles []string) EntryModel {
	items := []list.Item{}
	for _, title := range titles {
		items = append(items, EntryItem{title: title})
	}

	l := list.New(items, entryDelegate{}, listWidth, listHeight)
	l.Title = "Which entry?"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowPagination(false)
	l.Styles.Title = listTitleStyle
	l.Styles.HelpStyle = helpStyle

	return EntryModel{list: l}
}

type EntryItem struct {
	title string
}

func (i EntryItem) FilterValue() string { return "" }

type entryDelegate struct{}

func (d entryDelegate) Height() int                             { return 1 }
func (d entryDelegate) Spacing() int                            { return 0 }
func (d entryDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d entryDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(EntryItem)
	if !ok {
		return
	}

	fn := listItemStyle.Render
	if index == m.Index() {
		fn = func(s ...string) string {
			return listSelectedItemStyle.Render("> " + strings.Join(s, " "))
		}
	}

	fmt.Fprint(w, fn(i.title))
}

type EntryModel struct {
	list     list.Model
	choice   string
	quitting bool
}

func (m EntryModel) Init() tea.Cmd {
	return nil
}

func (m EntryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		return m, nil

	case tea.KeyMsg:
		switch keypress := msg.String(); keypress {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			i, ok := m.list.SelectedItem().(EntryItem)
			if ok {
				m.choice = i.title
			}
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m EntryModel) View() string {
	if m.choice != "" || m.quitting {
		return ""
	}
	return "\n" + m.list.View()
}
