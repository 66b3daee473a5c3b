package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"whatscript/internal/detect"
	"whatscript/internal/report"
)

// topRows caps how many tally rows the live view shows.
const topRows = 5

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	winnerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	noneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	faintStyle  = lipgloss.NewStyle().Faint(true)
)

type replModel struct {
	input    textinput.Model
	detector *detect.Detector
	width    int
}

// NewReplModel returns a Bubble Tea model that classifies text as it is
// typed.
func NewReplModel(detector *detect.Detector) tea.Model {
	ti := textinput.New()
	ti.Placeholder = "type some text"
	ti.Focus()
	ti.CharLimit = 0
	ti.Width = 76
	return &replModel{
		input:    ti,
		detector: detector,
		width:    80,
	}
}

func (m *replModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.input.Width = msg.Width - 4
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *replModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("whatscript"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	text := m.input.Value()
	if text == "" {
		b.WriteString(faintStyle.Render("esc or ctrl+c to quit"))
		b.WriteString("\n")
		return b.String()
	}

	if s, ok := m.detector.Detect(text); ok {
		b.WriteString(winnerStyle.Render(s.Name()))
	} else {
		b.WriteString(noneStyle.Render("no dominant script"))
	}
	b.WriteString("\n")

	stats := report.NewStatsOutput(detect.Tally(text))
	rows := stats.Counts
	if len(rows) > topRows {
		rows = rows[:topRows]
	}
	if len(rows) > 0 {
		b.WriteString("\n")
		nameWidth := 0
		for _, row := range rows {
			if w := runewidth.StringWidth(row.Script); w > nameWidth {
				nameWidth = w
			}
		}
		for _, row := range rows {
			b.WriteString(faintStyle.Render(fmt.Sprintf("%s %6d",
				runewidth.FillRight(row.Script, nameWidth), row.Count)))
			b.WriteString("\n")
		}
	}
	return b.String()
}
