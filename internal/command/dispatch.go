package command

import (
	"fmt"
	"strings"
	"time"

	"github.com/zarlcorp/zbook/internal/book"
)

// HelpText is the command reference shown by help and after an unknown
// command.
const HelpText = `Commands:
  hello                             greet the assistant
  add <name> <phone>                add a contact, or another phone to one
  change <name> <old> <new>         replace a contact's phone number
  phone <name>                      show a contact's phone numbers
  all                               show all contacts
  add-birthday <name> <DD.MM.YYYY>  set a contact's birthday
  show-birthday <name>              show a contact's birthday
  birthdays                         show upcoming birthdays
  help                              show this help
  close | exit                      save and quit`

// usage maps each book command to its argument list, for arity errors.
var usage = map[string]string{
	"add":           "add <name> <phone>",
	"change":        "change <name> <old phone> <new phone>",
	"phone":         "phone <name>",
	"all":           "all",
	"add-birthday":  "add-birthday <name> <DD.MM.YYYY>",
	"show-birthday": "show-birthday <name>",
	"birthdays":     "birthdays",
}

var arity = map[string]int{
	"add":           2,
	"change":        3,
	"phone":         1,
	"all":           0,
	"add-birthday":  2,
	"show-birthday": 1,
	"birthdays":     0,
}

// Dispatch parses one raw input line, runs the matching command against the
// book, and returns the text to display plus whether the assistant should
// quit. Errors never escape: they come back rendered.
func Dispatch(b *book.Book, line string, now time.Time) (out string, quit bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", false
	}

	cmd := strings.ToLower(fields[0])
	args := fields[1:]

	switch cmd {
	case "hello":
		return "Hello! How can I help you?", false
	case "help":
		return HelpText, false
	case "close", "exit":
		return "Goodbye!", true
	}

	want, known := arity[cmd]
	if !known {
		return "Invalid command. Please try again\n" + HelpText, false
	}
	if len(args) != want {
		return fmt.Sprintf("Invalid number of arguments for command %q. Usage: %s",
			cmd, usage[cmd]), false
	}

	var err error
	switch cmd {
	case "add":
		out, err = Add(b, args[0], args[1])
	case "change":
		out, err = Change(b, args[0], args[1], args[2])
	case "phone":
		out, err = Phone(b, args[0])
	case "all":
		out, err = All(b)
	case "add-birthday":
		out, err = AddBirthday(b, args[0], args[1])
	case "show-birthday":
		out, err = ShowBirthday(b, args[0])
	case "birthdays":
		out = Birthdays(b, now)
	}
	if err != nil {
		return Render(err), false
	}
	return out, false
}
