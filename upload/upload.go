// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package upload

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
)

var ErrTooLarge = errors.New("file exceeds upload size limit")

// Store writes uploaded résumés into a managed directory under
// collision-resistant names.
type Store struct {
	dir      string
	maxBytes int64
}

func NewStore(dir string, maxBytes int64) *Store {
	return &Store{dir: dir, maxBytes: maxBytes}
}

// Save stores the uploaded file and returns the stored filename (not the
// full path). The name is <unix-ms>-<random>-<sanitized original name> so
// concurrent uploads of the same file never collide.
func (s *Store) Save(fh *multipart.FileHeader) (string, error) {
	if fh.Size > s.maxBytes {
		return "", fmt.Errorf("%w (%s > %s)", ErrTooLarge,
			humanize.Bytes(uint64(fh.Size)), humanize.Bytes(uint64(s.maxBytes)))
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	name := fmt.Sprintf("%d-%s-%s",
		time.Now().UnixMilli(),
		uuid.NewString()[:8],
		SanitizeName(fh.Filename),
	)

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return name, nil
}

// Dir returns the managed upload directory.
func (s *Store) Dir() string {
	return s.dir
}

// SanitizeName strips path components and replaces every non-alphanumeric
// character in the base name with '_'. The extension's dot is preserved.
func SanitizeName(original string) string {
	base := filepath.Base(original)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	clean := func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			return r
		}
		return '_'
	}

	stem = strings.Map(clean, stem)
	ext = strings.Map(clean, strings.TrimPrefix(ext, "."))

	if stem == "" {
		stem = "archivo"
	}
	if ext == "" {
		return stem
	}
	return stem + "." + ext
}
