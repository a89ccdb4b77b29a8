// Package tui implements the interactive assistant: a passphrase view for
// encrypted snapshots, then a prompt/transcript loop over the address book.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zfilesystem"
	"github.com/zarlcorp/zbook/internal/book"
	"github.com/zarlcorp/zbook/internal/command"
	"github.com/zarlcorp/zbook/internal/snapshot"
)

type viewID int

const (
	viewPassphrase viewID = iota
	viewAssistant
)

// Options configures the root model.
type Options struct {
	// Encrypted marks an existing encrypted snapshot that must be unlocked.
	Encrypted bool
	// FirstRun requests creating an encrypted snapshot on a fresh store.
	FirstRun bool
	// Passphrase, when non-empty, skips the passphrase view entirely.
	Passphrase string
}

// Model is the root TUI model.
type Model struct {
	version string
	fsys    zfilesystem.ReadWriteFileFS
	opts    Options

	store *snapshot.Store
	book  *book.Book

	active     viewID
	passphrase passphraseModel
	assistant  assistantModel

	width  int
	height int
	err    error
}

// New creates the root model over the given snapshot filesystem.
func New(version string, fsys zfilesystem.ReadWriteFileFS, opts Options) Model {
	m := Model{
		version:   version,
		fsys:      fsys,
		opts:      opts,
		active:    viewAssistant,
		assistant: newAssistantModel(version),
	}
	if m.needsPrompt() {
		m.active = viewPassphrase
		m.passphrase = newPassphraseModel(opts.FirstRun)
	}
	return m
}

func (m Model) needsPrompt() bool {
	if m.opts.Passphrase != "" {
		return false
	}
	return m.opts.Encrypted || m.opts.FirstRun
}

// Err returns the fatal error, if any, that ended the program.
func (m Model) Err() error { return m.err }

func (m Model) Init() tea.Cmd {
	if m.active == viewPassphrase {
		return m.passphrase.Init()
	}
	pass := m.opts.Passphrase
	return tea.Batch(m.assistant.Init(), func() tea.Msg {
		return passphraseSubmitMsg{passphrase: pass}
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case passphraseSubmitMsg:
		return m.openStore(msg.passphrase)

	case commandMsg:
		return m.runCommand(msg.line)
	}

	switch m.active {
	case viewPassphrase:
		var cmd tea.Cmd
		m.passphrase, cmd = m.passphrase.Update(msg)
		return m, cmd
	default:
		var cmd tea.Cmd
		m.assistant, cmd = m.assistant.Update(msg)
		return m, cmd
	}
}

func (m Model) View() string {
	switch m.active {
	case viewPassphrase:
		return m.passphrase.View()
	default:
		return m.assistant.View(m.height)
	}
}

// openStore opens the snapshot store and loads the book. A wrong passphrase
// goes back to the passphrase view; any other failure ends the program.
func (m Model) openStore(pass string) (tea.Model, tea.Cmd) {
	s, err := snapshot.Open(m.fsys, pass)
	if err != nil {
		return m.storeFailed(err)
	}

	b, err := s.Load()
	if err != nil {
		s.Close()
		return m.storeFailed(err)
	}

	m.store = s
	m.book = b
	m.active = viewAssistant
	return m, m.assistant.Init()
}

func (m Model) storeFailed(err error) (tea.Model, tea.Cmd) {
	if m.active == viewPassphrase {
		return m, func() tea.Msg { return passphraseErrMsg{err: err} }
	}
	m.err = err
	return m, tea.Quit
}

// runCommand dispatches one line from the prompt against the book.
func (m Model) runCommand(line string) (tea.Model, tea.Cmd) {
	if m.book == nil {
		// store not opened yet; nothing to dispatch against
		return m, nil
	}
	out, quit := command.Dispatch(m.book, line, time.Now())
	m.assistant.append(line, out)
	if quit {
		return m, tea.Quit
	}
	return m, nil
}

// Close saves the book and erases the store key. Called by main once the
// program has finished, on every exit path including interrupts.
func (m Model) Close() error {
	if m.store == nil {
		return nil
	}
	err := m.store.Save(m.book)
	m.store.Close()
	return err
}
