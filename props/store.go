package props

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Store holds the entries of a properties document and an index of its
// property values.
type Store struct {
	entries []Entry
	values  map[string]string

	transforms []Transform
	logger     *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithTransforms sets the transforms applied to property values on load and
// save. They run in the given order in both directions.
func WithTransforms(transforms ...Transform) Option {
	return func(s *Store) {
		s.transforms = append([]Transform(nil), transforms...)
	}
}

// WithLogger sets the logger used for load and save diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New returns an empty Store.
func New(opts ...Option) *Store {
	s := &Store{
		values: make(map[string]string),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Len returns the number of entries, including comments and blank lines.
func (s *Store) Len() int {
	return len(s.entries)
}

// Entries returns a copy of the entries in document order.
func (s *Store) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Keys returns the property keys in document order.
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.values))
	for _, e := range s.entries {
		if e.IsProperty() {
			keys = append(keys, e.key)
		}
	}
	return keys
}

// Property returns the value for key and whether it was found.
func (s *Store) Property(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Get looks up key and converts its value with m. It reports false if the
// key is absent. A conversion failure is returned as a *MappingError
// naming the key.
func Get[T any](s *Store, key string, m Mapper[T]) (T, bool, error) {
	var zero T
	if err := checkKey(key); err != nil {
		return zero, false, err
	}
	if m == nil {
		return zero, false, fmt.Errorf("mapper must not be nil: %w", ErrInvalidArgument)
	}
	raw, ok := s.values[key]
	if !ok {
		return zero, false, nil
	}
	v, err := m(raw)
	if err != nil {
		var me *MappingError
		if errors.As(err, &me) {
			me.Key = key
			return zero, true, me
		}
		return zero, true, &MappingError{Key: key, Value: raw, Type: "value", Err: err}
	}
	return v, true, nil
}

// IndexOfProperty returns the position of the entry for key, or -1.
func (s *Store) IndexOfProperty(key string) int {
	for i, e := range s.entries {
		if e.IsProperty() && e.key == key {
			return i
		}
	}
	return -1
}

// IndexOfComment returns the position of the first comment whose text is
// exactly text, or -1.
func (s *Store) IndexOfComment(text string) int {
	for i, e := range s.entries {
		if e.IsComment() && e.comment == text {
			return i
		}
	}
	return -1
}

// AppendProperty adds a property at the end of the document. It fails with
// ErrDuplicateKey if key is already present.
func (s *Store) AppendProperty(key, value string) error {
	return s.InsertProperty(len(s.entries), key, value)
}

// InsertProperty adds a property at position pos, shifting later entries.
// pos may equal Len() to append.
func (s *Store) InsertProperty(pos int, key, value string) error {
	if err := checkNewProperty(key, value); err != nil {
		return err
	}
	if _, exists := s.values[key]; exists {
		return fmt.Errorf("property %q: %w", key, ErrDuplicateKey)
	}
	if err := s.checkInsertPos(pos); err != nil {
		return err
	}
	s.insert(pos, Property(key, value))
	s.values[key] = value
	return nil
}

// SetProperty updates the value of key in place, keeping its position, or
// appends a new property if key is absent.
func (s *Store) SetProperty(key, value string) error {
	if err := checkNewProperty(key, value); err != nil {
		return err
	}
	if i := s.IndexOfProperty(key); i >= 0 {
		s.entries[i].value = value
	} else {
		s.entries = append(s.entries, Property(key, value))
	}
	s.values[key] = value
	return nil
}

// SetOptional is SetProperty for an optional value: a nil value removes
// the property.
func (s *Store) SetOptional(key string, value *string) error {
	if value == nil {
		_, err := s.RemoveProperty(key)
		return err
	}
	return s.SetProperty(key, *value)
}

// AppendComment adds a comment at the end of the document.
func (s *Store) AppendComment(text string) error {
	return s.InsertComment(len(s.entries), text)
}

// InsertComment adds a comment at position pos, shifting later entries.
func (s *Store) InsertComment(pos int, text string) error {
	// A saved "# a = b" would reload as a property.
	if strings.ContainsAny(text, "=\r\n") {
		return fmt.Errorf("comment must be a single line without '=': %w", ErrInvalidArgument)
	}
	if err := s.checkInsertPos(pos); err != nil {
		return err
	}
	s.insert(pos, Comment(text))
	return nil
}

// AppendBlank adds a blank line at the end of the document.
func (s *Store) AppendBlank() {
	s.entries = append(s.entries, Blank())
}

// RemoveEntryAt removes and returns the entry at pos.
func (s *Store) RemoveEntryAt(pos int) (Entry, error) {
	if pos < 0 || pos >= len(s.entries) {
		return Entry{}, fmt.Errorf("remove at %d of %d entries: %w", pos, len(s.entries), ErrOutOfRange)
	}
	e := s.entries[pos]
	s.entries = append(s.entries[:pos], s.entries[pos+1:]...)
	if e.IsProperty() {
		delete(s.values, e.key)
	}
	return e, nil
}

// RemoveProperty removes every entry for key. It reports whether anything
// was removed.
func (s *Store) RemoveProperty(key string) (bool, error) {
	if err := checkKey(key); err != nil {
		return false, err
	}
	delete(s.values, key)
	return s.removeIf(func(e Entry) bool {
		return e.IsProperty() && e.key == key
	}), nil
}

// RemoveComment removes every comment whose text is exactly text. It
// reports whether anything was removed.
func (s *Store) RemoveComment(text string) bool {
	return s.removeIf(func(e Entry) bool {
		return e.IsComment() && e.comment == text
	})
}

// RemoveAllComments removes every comment, leaving properties and blank
// lines in their relative order.
func (s *Store) RemoveAllComments() {
	s.removeIf(Entry.IsComment)
}

func (s *Store) insert(pos int, e Entry) {
	s.entries = append(s.entries, Entry{})
	copy(s.entries[pos+1:], s.entries[pos:])
	s.entries[pos] = e
}

func (s *Store) removeIf(match func(Entry) bool) bool {
	kept := s.entries[:0]
	for _, e := range s.entries {
		if !match(e) {
			kept = append(kept, e)
		}
	}
	removed := len(kept) != len(s.entries)
	clear(s.entries[len(kept):])
	s.entries = kept
	return removed
}

func (s *Store) checkInsertPos(pos int) error {
	if pos < 0 || pos > len(s.entries) {
		return fmt.Errorf("insert at %d of %d entries: %w", pos, len(s.entries), ErrOutOfRange)
	}
	return nil
}

func checkKey(key string) error {
	if key == "" {
		return fmt.Errorf("key must not be empty: %w", ErrInvalidArgument)
	}
	return nil
}

// checkNewProperty rejects a key or value that Save could not write back
// as the same single property line.
func checkNewProperty(key, value string) error {
	if err := checkKey(key); err != nil {
		return err
	}
	if strings.ContainsAny(key, "=\r\n") || strings.TrimSpace(key) != key {
		return fmt.Errorf("key %q: must be trimmed and contain no '=' or line break: %w", key, ErrInvalidArgument)
	}
	if strings.ContainsAny(value, "\r\n") {
		return fmt.Errorf("value for %q must be a single line: %w", key, ErrInvalidArgument)
	}
	return nil
}
