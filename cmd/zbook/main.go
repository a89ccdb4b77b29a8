package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zapp"
	"github.com/zarlcorp/core/pkg/zfilesystem"
	"github.com/zarlcorp/zbook/internal/cli"
	"github.com/zarlcorp/zbook/internal/snapshot"
	"github.com/zarlcorp/zbook/internal/tui"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	app := zapp.New(zapp.WithName("zbook"))

	ctx, cancel := zapp.SignalContext(context.Background())
	defer cancel()

	args := os.Args[1:]
	if firstCommand(args) != "" {
		code := runCLI(ctx, args)
		_ = app.Close()
		os.Exit(code)
	}

	if err := runTUI(args); err != nil {
		slog.Error("tui", "err", err)
		_ = app.Close()
		os.Exit(1)
	}

	if err := app.Close(); err != nil {
		slog.Error("shutdown", "err", err)
		os.Exit(1)
	}
}

func runCLI(_ context.Context, args []string) int {
	switch firstCommand(args) {
	case "version":
		fmt.Printf("zbook %s\n", version)
		return 0
	default:
		return cli.Run(args)
	}
}

// firstCommand returns the first non-flag argument, or "" when the arguments
// carry flags alone and the interactive assistant should run.
func firstCommand(args []string) string {
	for _, a := range args {
		if !strings.HasPrefix(a, "-") {
			return a
		}
	}
	return ""
}

func runTUI(args []string) error {
	dataDir := cli.DataDir()
	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	fsys := zfilesystem.NewOSFileSystem(dataDir)
	encrypted := snapshot.IsEncrypted(fsys)

	m := tui.New(version, fsys, tui.Options{
		Encrypted:  encrypted,
		FirstRun:   !encrypted && len(args) > 0 && args[0] == "--encrypt",
		Passphrase: os.Getenv("ZBOOK_PASSPHRASE"),
	})

	p := tea.NewProgram(m)
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	if fm, ok := finalModel.(tui.Model); ok {
		if err := fm.Err(); err != nil {
			return err
		}
		// save on every exit path, interrupts included
		if err := fm.Close(); err != nil {
			return err
		}
	}

	fmt.Println("Goodbye!")
	return nil
}
