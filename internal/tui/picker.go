package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Provider is one selectable entry in the picker.
type Provider struct {
	Name    string
	Source  string // "built-in" or "custom"
	Current bool   // the config currently points at this provider
}

// ProviderPickerModel is a TUI model for choosing a target provider
// (from the switch command run without arguments).
// It exits after selecting or cancelling.
type ProviderPickerModel struct {
	providers []Provider
	filtered  []Provider

	filterInput textinput.Model
	cursor      int

	// UI state
	width  int
	height int
	done   bool
	choice string
}

// NewProviderPickerModel creates a picker over the given providers.
func NewProviderPickerModel(providers []Provider) ProviderPickerModel {
	ti := textinput.New()
	ti.Placeholder = "type to filter"
	ti.CharLimit = 64
	ti.Width = 30
	ti.Focus()

	return ProviderPickerModel{
		providers:   providers,
		filtered:    providers,
		filterInput: ti,
	}
}

func (m ProviderPickerModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m ProviderPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.done = true
			m.choice = ""
			return m, tea.Quit

		case "enter":
			if m.cursor < len(m.filtered) {
				m.choice = m.filtered[m.cursor].Name
			}
			m.done = true
			return m, tea.Quit

		case "up":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case "down":
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
			return m, nil
		}
	}

	// Everything else goes to the filter input
	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	applyPickerFilter(&m)
	return m, cmd
}

func (m ProviderPickerModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Switch Provider") + "\n")
	b.WriteString("Filter: " + m.filterInput.View() + "\n\n")

	if len(m.filtered) == 0 {
		b.WriteString(emptyStyle.Render("  no providers match") + "\n")
	}

	for i, p := range m.filtered {
		marker := "  "
		if p.Current {
			marker = lipgloss.NewStyle().Foreground(currentColor).Render("● ")
		}

		line := fmt.Sprintf("%s%-32s %s", marker, truncate(p.Name, 30), sourceStyle.Render(p.Source))
		if i == m.cursor {
			b.WriteString(selectedRowStyle.Render(line))
		} else {
			b.WriteString(rowStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ = navigate | Enter = select | Esc = cancel"))

	return b.String()
}

// applyPickerFilter recomputes the visible rows from the filter text and
// keeps the cursor on a valid row.
func applyPickerFilter(m *ProviderPickerModel) {
	query := strings.ToLower(strings.TrimSpace(m.filterInput.Value()))
	if query == "" {
		m.filtered = m.providers
	} else {
		filtered := make([]Provider, 0, len(m.providers))
		for _, p := range m.providers {
			if strings.Contains(strings.ToLower(p.Name), query) {
				filtered = append(filtered, p)
			}
		}
		m.filtered = filtered
	}

	if m.cursor >= len(m.filtered) {
		m.cursor = len(m.filtered) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Choice returns the selected provider name, empty when cancelled.
func (m ProviderPickerModel) Choice() string {
	return m.choice
}

// Cancelled reports whether the picker was dismissed without a selection.
func (m ProviderPickerModel) Cancelled() bool {
	return m.done && m.choice == ""
}

// Done returns whether the model is done
func (m ProviderPickerModel) Done() bool {
	return m.done
}

func truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
