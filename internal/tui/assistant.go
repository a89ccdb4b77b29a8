package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zarlcorp/core/pkg/zstyle"
)

// maxTranscript caps how many command/response pairs stay on screen.
const maxTranscript = 12

// entry is one command and the response it produced.
type entry struct {
	line   string
	output string
}

// commandMsg asks the root model to run one input line against the book.
type commandMsg struct {
	line string
}

// assistantModel is the prompt/transcript view.
type assistantModel struct {
	input      textinput.Model
	transcript []entry
	version    string
}

func newAssistantModel(version string) assistantModel {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "help"
	ti.Focus()
	ti.CharLimit = 200
	ti.Width = 60

	return assistantModel{
		input:   ti,
		version: version,
	}
}

func (m assistantModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m assistantModel) Update(msg tea.Msg) (assistantModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}

		if key.Matches(msg, zstyle.KeyEnter) {
			line := strings.TrimSpace(m.input.Value())
			if line == "" {
				return m, nil
			}
			m.input.SetValue("")
			return m, func() tea.Msg { return commandMsg{line: line} }
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// append records a command/response pair, trimming the oldest entries.
func (m *assistantModel) append(line, output string) {
	m.transcript = append(m.transcript, entry{line: line, output: output})
	if len(m.transcript) > maxTranscript {
		m.transcript = m.transcript[len(m.transcript)-maxTranscript:]
	}
}

func (m assistantModel) View(height int) string {
	indent := lipgloss.NewStyle().MarginLeft(2)
	title := zstyle.Title.Render("zbook")
	ver := zstyle.MutedText.Render(m.version)

	var sb strings.Builder
	sb.WriteString("\n" + indent.Render(fmt.Sprintf("%s %s", title, ver)) + "\n")
	sb.WriteString(indent.Render(zstyle.MutedText.Render("Welcome to the assistant. Type help for commands.")) + "\n\n")

	for _, e := range m.visible(height) {
		sb.WriteString("  " + zstyle.Highlight.Render("> "+e.line) + "\n")
		if e.output != "" {
			for _, line := range strings.Split(e.output, "\n") {
				sb.WriteString("  " + line + "\n")
			}
		}
		sb.WriteString("\n")
	}

	sb.WriteString("  " + m.input.View() + "\n\n")
	sb.WriteString("  " + zstyle.MutedText.Render("enter run  ctrl+c quit") + "\n")
	return sb.String()
}

// visible trims the transcript to what fits the terminal height, keeping the
// newest entries.
func (m assistantModel) visible(height int) []entry {
	if height <= 0 {
		return m.transcript
	}

	// banner, prompt, and footer take roughly eight rows
	budget := height - 8
	if budget < 0 {
		budget = 0
	}

	rows := 0
	i := len(m.transcript)
	for i > 0 {
		e := m.transcript[i-1]
		need := 2 + strings.Count(e.output, "\n") + 1
		if rows+need > budget {
			break
		}
		rows += need
		i--
	}
	return m.transcript[i:]
}
