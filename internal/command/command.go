// Package command implements the assistant's command surface over the
// address book. Every handler returns a human-readable result string or an
// error; Render converts errors to display text so nothing propagates past
// the dispatch boundary.
package command

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/zarlcorp/zbook/internal/book"
	"github.com/zarlcorp/zbook/internal/contact"
)

var (
	// ErrEmptyBook is returned by All when the book has no contacts.
	ErrEmptyBook = errors.New("no contacts found")

	// ErrNoBirthday is returned by ShowBirthday for contacts without one.
	ErrNoBirthday = errors.New("no birthday set")
)

// Add creates a contact, or appends another phone when the name exists.
func Add(b *book.Book, name, phone string) (string, error) {
	if rec := b.Find(name); rec != nil {
		if err := rec.AddPhone(phone); err != nil {
			return "", err
		}
		return fmt.Sprintf("Phone number %s has been added to contact %s", phone, name), nil
	}

	rec, err := contact.NewRecord(name, phone)
	if err != nil {
		return "", err
	}
	b.AddRecord(rec)
	return fmt.Sprintf("Contact %s has been added with phone number %s", name, phone), nil
}

// Change replaces one of a contact's phone numbers.
func Change(b *book.Book, name, oldPhone, newPhone string) (string, error) {
	rec := b.Find(name)
	if rec == nil {
		return "", fmt.Errorf("%w: %s", book.ErrNotFound, name)
	}
	if err := rec.EditPhone(oldPhone, newPhone); err != nil {
		return "", err
	}
	return fmt.Sprintf("Contact %s has been changed phone number from %s to %s",
		name, oldPhone, newPhone), nil
}

// Phone lists a contact's phone numbers.
func Phone(b *book.Book, name string) (string, error) {
	rec := b.Find(name)
	if rec == nil {
		return "", fmt.Errorf("%w: %s", book.ErrNotFound, name)
	}

	phones := make([]string, len(rec.Phones))
	for i, p := range rec.Phones {
		phones[i] = p.String()
	}
	return fmt.Sprintf("Phone numbers for %s are: %s", name, strings.Join(phones, ", ")), nil
}

// All renders every contact, one per line, in insertion order.
func All(b *book.Book) (string, error) {
	if b.Len() == 0 {
		return "", ErrEmptyBook
	}

	lines := make([]string, 0, b.Len())
	for _, rec := range b.Records() {
		lines = append(lines, rec.String())
	}
	return strings.Join(lines, "\n"), nil
}

// AddBirthday sets a contact's birthday, overwriting any prior one.
func AddBirthday(b *book.Book, name, birthday string) (string, error) {
	rec := b.Find(name)
	if rec == nil {
		return "", fmt.Errorf("%w: %s", book.ErrNotFound, name)
	}
	if err := rec.SetBirthday(birthday); err != nil {
		return "", err
	}
	return fmt.Sprintf("Birthday %s has been added to contact %s", birthday, name), nil
}

// ShowBirthday shows a contact's birthday in DD.MM.YYYY form.
func ShowBirthday(b *book.Book, name string) (string, error) {
	rec := b.Find(name)
	if rec == nil {
		return "", fmt.Errorf("%w: %s", book.ErrNotFound, name)
	}
	if rec.Birthday == nil {
		return "", fmt.Errorf("%w: %s", ErrNoBirthday, name)
	}
	return fmt.Sprintf("Birthday for %s is %s", name, rec.Birthday.Format()), nil
}

// Birthdays lists upcoming congratulation dates, one contact per line.
func Birthdays(b *book.Book, today time.Time) string {
	greetings := b.UpcomingBirthdays(today)
	if len(greetings) == 0 {
		return "No upcoming birthdays"
	}

	var sb strings.Builder
	sb.WriteString("Upcoming birthdays:")
	for _, g := range greetings {
		sb.WriteString("\n")
		sb.WriteString(g.Name)
		sb.WriteString(" - ")
		sb.WriteString(g.CongratulationDate)
	}
	return sb.String()
}

// Render converts a handler error into the user-facing message. Known error
// kinds render as "Error: ..."; anything else is reported as unexpected.
func Render(err error) string {
	switch {
	case errors.Is(err, contact.ErrPhoneFormat),
		errors.Is(err, contact.ErrBirthdayFormat),
		errors.Is(err, contact.ErrInvalidDate),
		errors.Is(err, contact.ErrPhoneNotFound),
		errors.Is(err, book.ErrNotFound),
		errors.Is(err, ErrEmptyBook),
		errors.Is(err, ErrNoBirthday):
		return "Error: " + err.Error()
	default:
		return "An unexpected error occurred: " + err.Error()
	}
}
