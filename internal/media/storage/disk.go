// Package storage persists ingested media on the local filesystem under
// server-generated names. The destination directory is fixed at
// construction and never derived from client input.
package storage

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// ErrTooLarge means the source exceeded the byte limit. The partial file
// is removed before the error is returned.
var ErrTooLarge = errors.New("file exceeds size limit")

type Store interface {
	// Save streams r into a file named name, enforcing maxBytes.
	// No partial file remains on any failure.
	Save(name string, r io.Reader, maxBytes int64) (int64, error)
	Remove(name string) error
}

type DiskStore struct {
	dir string
}

func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskStore{dir: dir}, nil
}

// Dir returns the directory files are written to, for static serving.
func (s *DiskStore) Dir() string {
	return s.dir
}

func (s *DiskStore) Save(name string, r io.Reader, maxBytes int64) (int64, error) {
	// filepath.Base strips any path components a hostile name could carry
	path := filepath.Join(s.dir, filepath.Base(name))

	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}

	n, err := io.Copy(f, io.LimitReader(r, maxBytes+1))
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(path)
		return 0, err
	}
	if n > maxBytes {
		_ = os.Remove(path)
		return 0, ErrTooLarge
	}

	return n, nil
}

func (s *DiskStore) Remove(name string) error {
	return os.Remove(filepath.Join(s.dir, filepath.Base(name)))
}

// GenerateName builds a collision-free filename from a nanosecond
// timestamp and a random suffix. Concurrent requests within the same
// tick still diverge on the suffix.
func GenerateName(ext string) string {
	var suffix [4]byte
	_, _ = rand.Read(suffix[:])
	return fmt.Sprintf("%d-%s%s", time.Now().UnixNano(), hex.EncodeToString(suffix[:]), ext)
}
