package contact

import (
	"errors"
	"fmt"
	"strings"
)

// ErrPhoneNotFound is returned when an edit targets a number the record
// does not hold.
var ErrPhoneNotFound = errors.New("phone number not found")

// Record is one contact: a name, an ordered list of phone numbers, and an
// optional birthday. The name is opaque; duplicate phone numbers are allowed.
type Record struct {
	Name     string    `json:"name"`
	Phones   []Phone   `json:"phones"`
	Birthday *Birthday `json:"birthday,omitempty"`
}

// NewRecord creates a record with a single validated initial phone number.
func NewRecord(name, initialPhone string) (*Record, error) {
	r := &Record{Name: name}
	if err := r.AddPhone(initialPhone); err != nil {
		return nil, err
	}
	return r, nil
}

// AddPhone appends a validated phone number. No dedup check is made; the
// same number may appear twice.
func (r *Record) AddPhone(phone string) error {
	p, err := ParsePhone(phone)
	if err != nil {
		return err
	}
	r.Phones = append(r.Phones, p)
	return nil
}

// RemovePhone removes every entry equal to phone. Absent numbers are a no-op.
func (r *Record) RemovePhone(phone string) {
	kept := r.Phones[:0]
	for _, p := range r.Phones {
		if p.String() != phone {
			kept = append(kept, p)
		}
	}
	r.Phones = kept
}

// EditPhone replaces the first entry equal to oldPhone with a validated
// newPhone. Later duplicates are left untouched.
func (r *Record) EditPhone(oldPhone, newPhone string) error {
	p, err := ParsePhone(newPhone)
	if err != nil {
		return err
	}
	for i, existing := range r.Phones {
		if existing.String() == oldPhone {
			r.Phones[i] = p
			return nil
		}
	}
	return ErrPhoneNotFound
}

// FindPhone returns the first entry equal to phone.
func (r *Record) FindPhone(phone string) (Phone, bool) {
	for _, p := range r.Phones {
		if p.String() == phone {
			return p, true
		}
	}
	return "", false
}

// SetBirthday parses and stores a birthday, overwriting any prior one.
func (r *Record) SetBirthday(s string) error {
	b, err := ParseBirthday(s)
	if err != nil {
		return err
	}
	r.Birthday = &b
	return nil
}

func (r *Record) String() string {
	phones := make([]string, len(r.Phones))
	for i, p := range r.Phones {
		phones[i] = p.String()
	}
	birthday := "No info"
	if r.Birthday != nil {
		birthday = r.Birthday.Format()
	}
	return fmt.Sprintf("Contact name: %s, phones: %s, birthday: %s",
		r.Name, strings.Join(phones, "; "), birthday)
}
