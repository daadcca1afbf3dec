package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mdk754/libstatic/deque"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(0, 1)

	emptyCellStyle = cellStyle.
			Foreground(lipgloss.Color("#666666"))

	endpointStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type inspectModel struct {
	d     *deque.Deque[int]
	input textinput.Model
	log   []string
	fault string
	width int
}

func newInspectModel(capacity int) *inspectModel {
	ti := textinput.New()
	ti.Placeholder = "pb 5"
	ti.Prompt = "> "
	ti.Width = 40
	ti.Focus()
	return &inspectModel{
		d:     deque.New[int](capacity),
		input: ti,
	}
}

func (m *inspectModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "enter":
			line := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			if line == "q" || line == "quit" {
				return m, tea.Quit
			}
			if line == "" {
				return m, nil
			}
			m.fault = ""
			if err := m.exec(line); err != nil {
				m.fault = err.Error()
			} else {
				m.log = append(m.log, line)
				if len(m.log) > 8 {
					m.log = m.log[1:]
				}
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *inspectModel) exec(line string) error {
	fields := strings.Fields(line)
	name := fields[0]
	args := make([]int, 0, 2)
	for _, f := range fields[1:] {
		n, err := strconv.Atoi(f)
		if err != nil {
			return fmt.Errorf("argument %q is not an integer", f)
		}
		args = append(args, n)
	}

	want := map[string]int{
		"pb": 1, "pf": 1, "popb": 0, "popf": 0,
		"ins": 2, "del": 1, "resize": 1, "clear": 0,
	}
	n, ok := want[name]
	if !ok {
		return fmt.Errorf("unknown command %q", name)
	}
	if len(args) != n {
		return fmt.Errorf("%s takes %d argument(s)", name, n)
	}

	switch name {
	case "pb":
		m.d.PushBack(args[0])
	case "pf":
		m.d.PushFront(args[0])
	case "popb":
		m.d.PopBack()
	case "popf":
		m.d.PopFront()
	case "ins":
		if args[0] < 0 || args[0] > m.d.Len() {
			return fmt.Errorf("position %d out of range", args[0])
		}
		m.d.Insert(args[0], args[1])
	case "del":
		if args[0] < 0 || args[0] >= m.d.Len() {
			return fmt.Errorf("position %d out of range", args[0])
		}
		m.d.Erase(args[0])
	case "resize":
		if args[0] < 0 {
			return fmt.Errorf("size %d out of range", args[0])
		}
		m.d.Resize(args[0])
	case "clear":
		m.d.Clear()
	}
	return nil
}

func (m *inspectModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Deque Inspector"))
	fmt.Fprintf(&b, "  %d/%d", m.d.Len(), m.d.Cap())
	b.WriteString("\n\n")

	b.WriteString(m.renderCells())
	b.WriteString("\n")

	if front := m.d.Front(); front != nil {
		b.WriteString(endpointStyle.Render(
			fmt.Sprintf("front %d  back %d", *front, *m.d.Back())))
		b.WriteString("\n")
	}

	if m.fault != "" {
		b.WriteString(errorStyle.Render(m.fault))
		b.WriteString("\n")
	}
	if len(m.log) > 0 {
		b.WriteString(helpStyle.Render("history: " + strings.Join(m.log, ", ")))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(
		"pb/pf v push • popb/popf pop • ins pos v • del pos • resize n • clear • q quit"))

	return b.String()
}

// renderCells draws one bordered cell per capacity slot, in logical
// order, wrapping rows to the terminal width.
func (m *inspectModel) renderCells() string {
	if m.d.Cap() == 0 {
		return emptyCellStyle.Render("(zero capacity)")
	}
	cells := make([]string, m.d.Cap())
	for i := range cells {
		if i < m.d.Len() {
			cells[i] = cellStyle.Render(strconv.Itoa(*m.d.At(i)))
		} else {
			cells[i] = emptyCellStyle.Render("·")
		}
	}

	perRow := len(cells)
	if m.width > 0 {
		w := lipgloss.Width(cells[0]) + 1
		if w > 0 && m.width/w > 0 {
			perRow = min(perRow, m.width/w)
		}
	}
	if perRow == 0 {
		perRow = 1
	}

	var rows []string
	for len(cells) > 0 {
		n := min(perRow, len(cells))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells[:n]...))
		cells = cells[n:]
	}
	return strings.Join(rows, "\n")
}

func runInteractive(capacity int) error {
	p := tea.NewProgram(newInspectModel(capacity), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
