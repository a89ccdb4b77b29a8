// Package cli implements zbook's non-interactive mode: resolve the data
// directory, open the snapshot, run exactly one command, save.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"
	"time"

	"github.com/zarlcorp/core/pkg/zfilesystem"
	"github.com/zarlcorp/zbook/internal/book"
	"github.com/zarlcorp/zbook/internal/command"
	"github.com/zarlcorp/zbook/internal/snapshot"
	"golang.org/x/term"
)

// DataDir returns the directory holding the snapshot files.
func DataDir() string {
	if d := os.Getenv("ZBOOK_DATA_DIR"); d != "" {
		return d
	}
	if d := os.Getenv("XDG_DATA_HOME"); d != "" {
		return d + "/zbook"
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".zbook"
	}
	return home + "/.local/share/zbook"
}

// ReadPassword prompts on w and reads a passphrase without echo.
func ReadPassword(prompt string, w io.Writer) (string, error) {
	fmt.Fprint(w, prompt)
	b, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(w)
	if err != nil {
		return "", fmt.Errorf("read passphrase: %w", err)
	}
	return string(b), nil
}

// ReadNewPassword prompts for a new passphrase with confirmation.
func ReadNewPassword(w io.Writer) (string, error) {
	pass, err := ReadPassword("new passphrase: ", w)
	if err != nil {
		return "", err
	}
	confirm, err := ReadPassword("confirm passphrase: ", w)
	if err != nil {
		return "", err
	}
	if pass != confirm {
		return "", fmt.Errorf("passphrases do not match")
	}
	return pass, nil
}

// Passphrase resolves the snapshot passphrase. ZBOOK_PASSPHRASE wins when
// set. Otherwise the user is prompted: to unlock when the store is already
// encrypted, or to create one when encryption was requested on a fresh
// store. Plain stores need no passphrase at all.
func Passphrase(fsys zfilesystem.ReadWriteFileFS, encrypt bool) (string, error) {
	if p := os.Getenv("ZBOOK_PASSPHRASE"); p != "" {
		return p, nil
	}
	if snapshot.IsEncrypted(fsys) {
		return ReadPassword("passphrase: ", os.Stderr)
	}
	if encrypt {
		return ReadNewPassword(os.Stderr)
	}
	return "", nil
}

// OpenBook opens the snapshot store in dir and loads the book from it.
func OpenBook(dir string, encrypt bool) (*snapshot.Store, *book.Book, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, nil, fmt.Errorf("create data dir: %w", err)
	}

	fsys := zfilesystem.NewOSFileSystem(dir)
	pass, err := Passphrase(fsys, encrypt)
	if err != nil {
		return nil, nil, err
	}

	s, err := snapshot.Open(fsys, pass)
	if err != nil {
		return nil, nil, err
	}

	b, err := s.Load()
	if err != nil {
		s.Close()
		return nil, nil, err
	}

	return s, b, nil
}

// Run executes one command line non-interactively and returns an exit code.
// The book is loaded before and saved after, so one-shot invocations compose
// with the interactive assistant.
func Run(args []string) int {
	encrypt := hasFlag(args, "--encrypt")
	args = stripFlag(args, "--encrypt")

	s, b, err := OpenBook(DataDir(), encrypt)
	if err != nil {
		fmt.Fprintf(os.Stderr, "zbook: %v\n", err)
		return 1
	}
	defer s.Close()

	out, _ := command.Dispatch(b, strings.Join(args, " "), time.Now())
	if out != "" {
		fmt.Println(out)
	}

	if err := s.Save(b); err != nil {
		fmt.Fprintf(os.Stderr, "zbook: save: %v\n", err)
		return 1
	}
	return 0
}

func hasFlag(args []string, flag string) bool {
	for _, a := range args {
		if strings.EqualFold(a, flag) {
			return true
		}
	}
	return false
}

func stripFlag(args []string, flag string) []string {
	out := args[:0]
	for _, a := range args {
		if !strings.EqualFold(a, flag) {
			out = append(out, a)
		}
	}
	return out
}
