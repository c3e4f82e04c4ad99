package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// TemplateListModel - Interactive template selection
// =============================================================================

// TemplateListModel is the bubbletea model for picking a starter template.
type TemplateListModel struct {
	Templates []Template
	Cursor    int
	Selected  *Template
}

// NewTemplateListModel creates a new template list model.
func NewTemplateListModel(templates []Template) TemplateListModel {
	return TemplateListModel{Templates: templates}
}

func (m TemplateListModel) Init() tea.Cmd {
	return nil
}

func (m TemplateListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Templates)-1 {
				m.Cursor++
			}
		case "enter":
			m.Selected = &m.Templates[m.Cursor]
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m TemplateListModel) View() string {
	var sb strings.Builder
	sb.WriteString(StyleTitle.Render("Pick a figure template"))
	sb.WriteString("\n\n")

	for i, tmpl := range m.Templates {
		cursor := "  "
		nameStyle := listNormalStyle
		if i == m.Cursor {
			cursor = listSelectedStyle.Render("› ")
			nameStyle = listSelectedStyle
		}
		fmt.Fprintf(&sb, "%s%s  %s\n",
			cursor,
			nameStyle.Render(fmt.Sprintf("%-8s", tmpl.Name)),
			listDimStyle.Render(tmpl.Description))
	}

	sb.WriteString("\n")
	sb.WriteString(listDimStyle.Render("↑/↓ move · enter select · q quit"))
	sb.WriteString("\n")
	return sb.String()
}

// pickTemplate runs the interactive picker and returns the selection,
// or nil if the user quit without choosing.
func pickTemplate() (*Template, error) {
	p := tea.NewProgram(NewTemplateListModel(templates))
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("template picker: %w", err)
	}
	m, ok := final.(TemplateListModel)
	if !ok {
		return nil, nil
	}
	return m.Selected, nil
}
