package command

import (
	"strings"
	"testing"

	"github.com/zarlcorp/zbook/internal/book"
)

func TestDispatchHello(t *testing.T) {
	b := book.New()

	out, quit := Dispatch(b, "hello", testToday)
	if quit {
		t.Error("hello should not quit")
	}
	if out != "Hello! How can I help you?" {
		t.Errorf("output: %q", out)
	}
}

func TestDispatchCaseInsensitiveCommand(t *testing.T) {
	b := book.New()

	out, _ := Dispatch(b, "HELLO", testToday)
	if out != "Hello! How can I help you?" {
		t.Errorf("output: %q", out)
	}
}

func TestDispatchQuitCommands(t *testing.T) {
	b := book.New()

	for _, cmd := range []string{"close", "exit"} {
		out, quit := Dispatch(b, cmd, testToday)
		if !quit {
			t.Errorf("%s should quit", cmd)
		}
		if out != "Goodbye!" {
			t.Errorf("%s output: %q", cmd, out)
		}
	}
}

func TestDispatchHelp(t *testing.T) {
	b := book.New()

	out, _ := Dispatch(b, "help", testToday)
	for _, cmd := range []string{"add", "change", "phone", "all", "add-birthday", "show-birthday", "birthdays", "close"} {
		if !strings.Contains(out, cmd) {
			t.Errorf("help should mention %q", cmd)
		}
	}
}

func TestDispatchUnknownCommand(t *testing.T) {
	b := book.New()

	out, quit := Dispatch(b, "frobnicate", testToday)
	if quit {
		t.Error("unknown command should not quit")
	}
	if !strings.HasPrefix(out, "Invalid command. Please try again") {
		t.Errorf("output: %q", out)
	}
	if !strings.Contains(out, "add-birthday") {
		t.Error("fallback should include the command reference")
	}
}

func TestDispatchArityMismatch(t *testing.T) {
	b := book.New()

	tests := []struct {
		name string
		line string
	}{
		{"add missing phone", "add Ann"},
		{"add extra arg", "add Ann 1111111111 extra"},
		{"change short", "change Ann 1111111111"},
		{"phone no name", "phone"},
		{"all with arg", "all everything"},
		{"add-birthday short", "add-birthday Ann"},
		{"show-birthday no name", "show-birthday"},
		{"birthdays with arg", "birthdays tomorrow"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, quit := Dispatch(b, tt.line, testToday)
			if quit {
				t.Error("arity error should not quit")
			}
			if !strings.HasPrefix(out, "Invalid number of arguments") {
				t.Errorf("output: %q", out)
			}
			if !strings.Contains(out, "Usage:") {
				t.Errorf("arity error should show usage: %q", out)
			}
		})
	}
}

func TestDispatchEmptyLine(t *testing.T) {
	b := book.New()

	out, quit := Dispatch(b, "   ", testToday)
	if out != "" || quit {
		t.Errorf("empty line: got %q, quit=%v", out, quit)
	}
}

func TestDispatchRunsHandlers(t *testing.T) {
	b := book.New()

	out, _ := Dispatch(b, "add Ann 1111111111", testToday)
	if out != "Contact Ann has been added with phone number 1111111111" {
		t.Errorf("add output: %q", out)
	}

	out, _ = Dispatch(b, "add-birthday Ann 15.06.1990", testToday)
	if !strings.Contains(out, "15.06.1990") {
		t.Errorf("add-birthday output: %q", out)
	}

	out, _ = Dispatch(b, "birthdays", testToday)
	if out != "Upcoming birthdays:\nAnn - 2024-06-17" {
		t.Errorf("birthdays output: %q", out)
	}
}

func TestDispatchRendersErrors(t *testing.T) {
	b := book.New()

	out, quit := Dispatch(b, "phone Ann", testToday)
	if quit {
		t.Error("handler error should not quit")
	}
	if !strings.HasPrefix(out, "Error: ") {
		t.Errorf("output: %q", out)
	}

	out, _ = Dispatch(b, "add Ann 123", testToday)
	if !strings.HasPrefix(out, "Error: ") {
		t.Errorf("bad phone output: %q", out)
	}
}
