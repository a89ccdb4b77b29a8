package contact

import (
	"errors"
	"testing"
)

func newTestRecord(t *testing.T) *Record {
	t.Helper()
	r, err := NewRecord("Ann", "1111111111")
	if err != nil {
		t.Fatalf("new record: %v", err)
	}
	return r
}

func TestNewRecord(t *testing.T) {
	r := newTestRecord(t)

	if r.Name != "Ann" {
		t.Errorf("name: got %q", r.Name)
	}
	if len(r.Phones) != 1 || r.Phones[0].String() != "1111111111" {
		t.Errorf("phones: got %v", r.Phones)
	}
	if r.Birthday != nil {
		t.Error("new record should have no birthday")
	}
}

func TestNewRecordBadPhone(t *testing.T) {
	_, err := NewRecord("Ann", "123")
	if !errors.Is(err, ErrPhoneFormat) {
		t.Errorf("got %v, want ErrPhoneFormat", err)
	}
}

func TestAddPhonePreservesOrder(t *testing.T) {
	r := newTestRecord(t)

	if err := r.AddPhone("2222222222"); err != nil {
		t.Fatalf("add phone: %v", err)
	}

	if len(r.Phones) != 2 {
		t.Fatalf("phones: got %d, want 2", len(r.Phones))
	}
	if r.Phones[0].String() != "1111111111" || r.Phones[1].String() != "2222222222" {
		t.Errorf("order not preserved: %v", r.Phones)
	}
}

func TestAddPhoneAllowsDuplicates(t *testing.T) {
	r := newTestRecord(t)

	if err := r.AddPhone("1111111111"); err != nil {
		t.Fatalf("add duplicate: %v", err)
	}
	if len(r.Phones) != 2 {
		t.Errorf("phones: got %d, want 2", len(r.Phones))
	}
}

func TestRemovePhone(t *testing.T) {
	r := newTestRecord(t)
	r.AddPhone("2222222222")
	r.AddPhone("1111111111")

	// removes every matching entry
	r.RemovePhone("1111111111")
	if len(r.Phones) != 1 || r.Phones[0].String() != "2222222222" {
		t.Errorf("phones after remove: %v", r.Phones)
	}

	// absent number is a no-op
	r.RemovePhone("9999999999")
	if len(r.Phones) != 1 {
		t.Errorf("phones after no-op remove: %v", r.Phones)
	}
}

func TestEditPhone(t *testing.T) {
	r := newTestRecord(t)

	if err := r.EditPhone("1111111111", "3333333333"); err != nil {
		t.Fatalf("edit: %v", err)
	}
	if r.Phones[0].String() != "3333333333" {
		t.Errorf("phones: %v", r.Phones)
	}
}

func TestEditPhoneFirstMatchOnly(t *testing.T) {
	r := newTestRecord(t)
	r.AddPhone("1111111111")

	if err := r.EditPhone("1111111111", "3333333333"); err != nil {
		t.Fatalf("edit: %v", err)
	}

	if r.Phones[0].String() != "3333333333" {
		t.Errorf("first entry: got %q", r.Phones[0])
	}
	if r.Phones[1].String() != "1111111111" {
		t.Errorf("duplicate should stay: got %q", r.Phones[1])
	}
}

func TestEditPhoneNotFound(t *testing.T) {
	r := newTestRecord(t)

	err := r.EditPhone("9999999999", "3333333333")
	if !errors.Is(err, ErrPhoneNotFound) {
		t.Errorf("got %v, want ErrPhoneNotFound", err)
	}
}

func TestEditPhoneBadNewNumber(t *testing.T) {
	r := newTestRecord(t)

	err := r.EditPhone("1111111111", "bad")
	if !errors.Is(err, ErrPhoneFormat) {
		t.Errorf("got %v, want ErrPhoneFormat", err)
	}
	if r.Phones[0].String() != "1111111111" {
		t.Errorf("record should be untouched: %v", r.Phones)
	}
}

func TestFindPhone(t *testing.T) {
	r := newTestRecord(t)
	r.AddPhone("2222222222")

	p, ok := r.FindPhone("2222222222")
	if !ok || p.String() != "2222222222" {
		t.Errorf("find: got %q, %v", p, ok)
	}

	if _, ok := r.FindPhone("9999999999"); ok {
		t.Error("found a phone that does not exist")
	}
}

func TestSetBirthday(t *testing.T) {
	r := newTestRecord(t)

	if err := r.SetBirthday("15.06.1990"); err != nil {
		t.Fatalf("set birthday: %v", err)
	}
	if r.Birthday == nil || r.Birthday.Format() != "15.06.1990" {
		t.Errorf("birthday: %v", r.Birthday)
	}

	// setting again overwrites
	if err := r.SetBirthday("01.01.2000"); err != nil {
		t.Fatalf("overwrite birthday: %v", err)
	}
	if r.Birthday.Format() != "01.01.2000" {
		t.Errorf("birthday after overwrite: %q", r.Birthday.Format())
	}

	if err := r.SetBirthday("31.02.2020"); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("got %v, want ErrInvalidDate", err)
	}
}

func TestRecordString(t *testing.T) {
	r := newTestRecord(t)
	r.AddPhone("2222222222")

	want := "Contact name: Ann, phones: 1111111111; 2222222222, birthday: No info"
	if got := r.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	r.SetBirthday("15.06.1990")
	want = "Contact name: Ann, phones: 1111111111; 2222222222, birthday: 15.06.1990"
	if got := r.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
