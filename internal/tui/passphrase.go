package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zarlcorp/core/pkg/zstyle"
)

// passphraseModel handles the snapshot passphrase prompt.
type passphraseModel struct {
	input      textinput.Model
	firstRun   bool
	confirming bool
	firstPass  string
	errMsg     string
}

// passphraseSubmitMsg is sent when the user submits a passphrase.
type passphraseSubmitMsg struct {
	passphrase string
}

// passphraseErrMsg is sent when the passphrase is wrong.
type passphraseErrMsg struct {
	err error
}

func newPassphraseModel(firstRun bool) passphraseModel {
	ti := textinput.New()
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '*'
	ti.Focus()
	ti.CharLimit = 128
	ti.Width = 40

	return passphraseModel{
		input:    ti,
		firstRun: firstRun,
	}
}

func (m passphraseModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m passphraseModel) Update(msg tea.Msg) (passphraseModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}

		if key.Matches(msg, zstyle.KeyEnter) {
			return m.handleSubmit()
		}

	case passphraseErrMsg:
		m.errMsg = msg.err.Error()
		m.input.SetValue("")
		m.confirming = false
		m.firstPass = ""
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m passphraseModel) handleSubmit() (passphraseModel, tea.Cmd) {
	val := m.input.Value()
	if val == "" {
		return m, nil
	}

	// first run: need to confirm the new passphrase
	if m.firstRun && !m.confirming {
		m.firstPass = val
		m.confirming = true
		m.input.SetValue("")
		m.errMsg = ""
		return m, nil
	}

	if m.firstRun && m.confirming {
		if val != m.firstPass {
			m.errMsg = "passphrases do not match"
			m.confirming = false
			m.firstPass = ""
			m.input.SetValue("")
			return m, nil
		}
	}

	m.errMsg = ""
	return m, func() tea.Msg {
		return passphraseSubmitMsg{passphrase: val}
	}
}

func (m passphraseModel) View() string {
	indent := lipgloss.NewStyle().MarginLeft(2)
	title := indent.Render(zstyle.Title.Render("zbook"))

	var prompt string
	if m.firstRun {
		if m.confirming {
			prompt = "confirm passphrase:"
		} else {
			prompt = "create passphrase:"
		}
	} else {
		prompt = "passphrase:"
	}

	s := fmt.Sprintf("\n%s\n\n  %s\n  %s\n", title, prompt, m.input.View())

	if m.errMsg != "" {
		s += "\n  " + zstyle.StatusErr.Render(m.errMsg)
	}

	s += "\n"
	return s
}
