package words

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/charmbracelet/log"

	"bukvoed/internal/fileutil"
)

// ErrWordNotFound is returned by Remove for words that are not in the
// dictionary.
var ErrWordNotFound = errors.New("word not found in dictionary")

// Store reads and rewrites the dictionary file: UTF-8, one word per
// line. Every mutation rewrites the complete sorted list through an
// atomic rename, so a reader never observes a half-written dictionary.
type Store struct {
	path   string
	logger *log.Logger
}

// NewStore creates a store for the dictionary file at path.
func NewStore(path string, logger *log.Logger) *Store {
	return &Store{path: path, logger: logger}
}

// Path returns the dictionary file location.
func (s *Store) Path() string {
	return s.path
}

// Load returns the deduplicated, lexicographically sorted valid words
// from the dictionary file. Lines that do not normalize to a valid
// word are skipped. A missing or unreadable file yields an empty list
// rather than an error.
func (s *Store) Load() []Word {
	data, err := os.ReadFile(s.path)
	if err != nil {
		s.logger.Warn("Dictionary not readable", "path", s.path, "error", err)
		return nil
	}

	seen := make(map[Word]bool)
	var list []Word
	for _, line := range strings.Split(string(data), "\n") {
		w, err := Normalize(line)
		if err != nil || seen[w] {
			continue
		}
		seen[w] = true
		list = append(list, w)
	}
	slices.SortFunc(list, Word.Compare)
	return list
}

// Add validates raw, inserts it into the dictionary and rewrites the
// file. Adding a word that is already present is a successful no-op
// that leaves the file untouched. Returns the resulting word count.
func (s *Store) Add(raw string) (int, error) {
	w, err := Normalize(raw)
	if err != nil {
		return 0, err
	}

	list := s.Load()
	if slices.Contains(list, w) {
		s.logger.Info("Word already in dictionary", "word", w)
		return len(list), nil
	}

	list = append(list, w)
	slices.SortFunc(list, Word.Compare)
	if err := s.write(list); err != nil {
		return 0, err
	}
	s.logger.Info("Word added", "word", w, "count", len(list))
	return len(list), nil
}

// Remove deletes raw from the dictionary and rewrites the file.
// Returns ErrWordNotFound if the word is not present.
func (s *Store) Remove(raw string) (int, error) {
	w, err := Normalize(raw)
	if err != nil {
		return 0, err
	}

	list := s.Load()
	i := slices.Index(list, w)
	if i < 0 {
		return 0, fmt.Errorf("%w: %s", ErrWordNotFound, w)
	}

	list = slices.Delete(list, i, i+1)
	if err := s.write(list); err != nil {
		return 0, err
	}
	s.logger.Info("Word removed", "word", w, "count", len(list))
	return len(list), nil
}

func (s *Store) write(list []Word) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create dictionary directory: %w", err)
		}
	}
	var buf bytes.Buffer
	for _, w := range list {
		buf.WriteString(w.String())
		buf.WriteByte('\n')
	}
	return fileutil.WriteFileAtomic(s.path, buf.Bytes(), 0o644)
}
