// Package book implements the address book: a name-keyed collection of
// contact records that iterates in insertion order.
package book

import (
	"encoding/json"
	"errors"

	"github.com/zarlcorp/zbook/internal/contact"
)

// ErrNotFound is returned when a contact does not exist.
var ErrNotFound = errors.New("contact not found")

// Book maps contact names to records. One record per name; iteration follows
// insertion order, not key order.
type Book struct {
	names   []string
	records map[string]*contact.Record
}

// New creates an empty book.
func New() *Book {
	return &Book{records: make(map[string]*contact.Record)}
}

// AddRecord inserts a record keyed by its name. An existing contact with the
// same name is overwritten, keeping its original position.
func (b *Book) AddRecord(r *contact.Record) {
	if _, ok := b.records[r.Name]; !ok {
		b.names = append(b.names, r.Name)
	}
	b.records[r.Name] = r
}

// Find returns the record for name, or nil when absent.
func (b *Book) Find(name string) *contact.Record {
	return b.records[name]
}

// Delete removes the record for name. Missing names are a no-op.
func (b *Book) Delete(name string) {
	if _, ok := b.records[name]; !ok {
		return
	}
	delete(b.records, name)
	for i, n := range b.names {
		if n == name {
			b.names = append(b.names[:i], b.names[i+1:]...)
			break
		}
	}
}

// Len returns the number of contacts.
func (b *Book) Len() int { return len(b.records) }

// Records returns all records in insertion order.
func (b *Book) Records() []*contact.Record {
	out := make([]*contact.Record, 0, len(b.names))
	for _, n := range b.names {
		out = append(out, b.records[n])
	}
	return out
}

// MarshalJSON encodes the book as an ordered array of records so snapshots
// preserve insertion order across restarts.
func (b *Book) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.Records())
}

func (b *Book) UnmarshalJSON(data []byte) error {
	var records []*contact.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return err
	}
	b.names = nil
	b.records = make(map[string]*contact.Record, len(records))
	for _, r := range records {
		if r == nil {
			return errors.New("null record in snapshot")
		}
		b.AddRecord(r)
	}
	return nil
}
