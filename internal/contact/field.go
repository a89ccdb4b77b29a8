// Package contact defines the contact record and its field validators.
// Phone numbers and birthdays are validated on construction; values that
// exist are always well-formed.
package contact

import (
	"encoding/json"
	"errors"
	"regexp"
	"time"
)

var (
	// ErrPhoneFormat is returned when a phone number is not exactly 10 digits.
	ErrPhoneFormat = errors.New("phone number must contain 10 digits")

	// ErrBirthdayFormat is returned when a birthday does not match DD.MM.YYYY.
	ErrBirthdayFormat = errors.New("invalid date format, use DD.MM.YYYY")

	// ErrInvalidDate is returned when a birthday matches the format but the
	// date does not exist on the calendar.
	ErrInvalidDate = errors.New("date does not exist")
)

// phoneRe matches exactly 10 ASCII digits: no separators, no leading +.
var phoneRe = regexp.MustCompile(`^\d{10}$`)

// birthdayRe checks the shape only; time.Parse is the calendar authority.
var birthdayRe = regexp.MustCompile(`^\d{2}\.\d{2}\.\d{4}$`)

const birthdayLayout = "02.01.2006"

// Phone is a validated 10-digit phone number.
type Phone string

// ParsePhone validates s and returns it as a Phone. No normalization is
// performed: the input must already be exactly 10 digits.
func ParsePhone(s string) (Phone, error) {
	if !phoneRe.MatchString(s) {
		return "", ErrPhoneFormat
	}
	return Phone(s), nil
}

func (p Phone) String() string { return string(p) }

// UnmarshalJSON re-validates stored numbers so a hand-edited snapshot cannot
// smuggle in a malformed phone.
func (p *Phone) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParsePhone(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Birthday is a validated calendar date.
type Birthday struct {
	date time.Time
}

// ParseBirthday validates s against DD.MM.YYYY and the real calendar.
// A bad shape yields ErrBirthdayFormat; a well-shaped date that does not
// exist (31.02.2020, 00.01.2020, 29.02.2021) yields ErrInvalidDate.
func ParseBirthday(s string) (Birthday, error) {
	if !birthdayRe.MatchString(s) {
		return Birthday{}, ErrBirthdayFormat
	}
	d, err := time.Parse(birthdayLayout, s)
	if err != nil {
		return Birthday{}, ErrInvalidDate
	}
	return Birthday{date: d}, nil
}

// Date returns the birthday as a time value at midnight UTC.
func (b Birthday) Date() time.Time { return b.date }

// Format renders the birthday back to DD.MM.YYYY.
func (b Birthday) Format() string { return b.date.Format(birthdayLayout) }

// MarshalJSON stores the birthday in its display format.
func (b Birthday) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.Format())
}

func (b *Birthday) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseBirthday(s)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}
