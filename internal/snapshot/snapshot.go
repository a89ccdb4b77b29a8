// Package snapshot persists the whole address book as a single file on a
// filesystem. Saving and loading are all-or-nothing: the book serializes as
// one unit and restores as one unit. Snapshots are plain JSON by default, or
// AES-256-GCM encrypted when a passphrase is supplied.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"

	"github.com/zarlcorp/core/pkg/zcrypto"
	"github.com/zarlcorp/core/pkg/zfilesystem"
	"github.com/zarlcorp/zbook/internal/book"
)

const (
	saltFile    = "salt"
	verifyFile  = "verify"
	plainFile   = "book.json"
	cipherFile  = "book.enc"
	verifyToken = "zbook-snapshot-ok"
)

// ErrWrongPassphrase is returned when the passphrase does not match the one
// the snapshot was encrypted with.
var ErrWrongPassphrase = errors.New("wrong passphrase")

// Store reads and writes address-book snapshots.
type Store struct {
	fs  zfilesystem.ReadWriteFileFS
	key []byte // nil for plaintext snapshots
}

// IsEncrypted reports whether the filesystem holds an encrypted snapshot.
func IsEncrypted(fsys zfilesystem.ReadWriteFileFS) bool {
	_, err := fsys.ReadFile(saltFile)
	return err == nil
}

// Open prepares a snapshot store. An empty passphrase selects plaintext
// snapshots. With a passphrase, the key is derived from a stored salt and
// checked against a verification token before any book data is touched; on
// first use the salt and token are created.
func Open(fsys zfilesystem.ReadWriteFileFS, passphrase string) (*Store, error) {
	if passphrase == "" {
		return &Store{fs: fsys}, nil
	}

	salt, err := readOrCreateSalt(fsys)
	if err != nil {
		return nil, fmt.Errorf("open snapshot store: %w", err)
	}

	key, _, err := zcrypto.DeriveKey([]byte(passphrase), salt)
	if err != nil {
		return nil, fmt.Errorf("open snapshot store: derive key: %w", err)
	}

	if err := verifyOrCreateToken(fsys, key); err != nil {
		zcrypto.Erase(key)
		return nil, fmt.Errorf("open snapshot store: %w", err)
	}

	return &Store{fs: fsys, key: key}, nil
}

// Load reads the snapshot and rebuilds the book. A missing snapshot file
// yields a fresh empty book, not an error.
func (s *Store) Load() (*book.Book, error) {
	name := s.fileName()

	data, err := s.fs.ReadFile(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return book.New(), nil
		}
		return nil, fmt.Errorf("load snapshot: read %s: %w", name, err)
	}

	if s.key != nil {
		data, err = zcrypto.Decrypt(s.key, data)
		if err != nil {
			return nil, fmt.Errorf("load snapshot: decrypt: %w", err)
		}
	}

	b := book.New()
	if err := json.Unmarshal(data, b); err != nil {
		return nil, fmt.Errorf("load snapshot: unmarshal: %w", err)
	}
	return b, nil
}

// Save serializes the whole book and writes it in a single write.
func (s *Store) Save(b *book.Book) error {
	data, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("save snapshot: marshal: %w", err)
	}

	if s.key != nil {
		data, err = zcrypto.Encrypt(s.key, data)
		if err != nil {
			return fmt.Errorf("save snapshot: encrypt: %w", err)
		}
	}

	if err := s.fs.WriteFile(s.fileName(), data, 0o600); err != nil {
		return fmt.Errorf("save snapshot: write %s: %w", s.fileName(), err)
	}
	return nil
}

// Close erases the derived key from memory.
func (s *Store) Close() error {
	if s.key != nil {
		zcrypto.Erase(s.key)
		s.key = nil
	}
	return nil
}

func (s *Store) fileName() string {
	if s.key != nil {
		return cipherFile
	}
	return plainFile
}

func readOrCreateSalt(fsys zfilesystem.ReadWriteFileFS) ([]byte, error) {
	salt, err := fsys.ReadFile(saltFile)
	if err == nil {
		return salt, nil
	}

	salt, err = zcrypto.RandBytes(zcrypto.SaltSize)
	if err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}

	if err := fsys.WriteFile(saltFile, salt, 0o600); err != nil {
		return nil, fmt.Errorf("write salt: %w", err)
	}

	return salt, nil
}

func verifyOrCreateToken(fsys zfilesystem.ReadWriteFileFS, key []byte) error {
	ct, err := fsys.ReadFile(verifyFile)
	if err != nil {
		// first use — create the verification token
		ct, err = zcrypto.Encrypt(key, []byte(verifyToken))
		if err != nil {
			return fmt.Errorf("encrypt verify token: %w", err)
		}

		if err := fsys.WriteFile(verifyFile, ct, 0o600); err != nil {
			return fmt.Errorf("write verify token: %w", err)
		}

		return nil
	}

	// subsequent use — verify the passphrase
	plain, err := zcrypto.Decrypt(key, ct)
	if err != nil {
		return ErrWrongPassphrase
	}

	if string(plain) != verifyToken {
		return ErrWrongPassphrase
	}

	return nil
}
