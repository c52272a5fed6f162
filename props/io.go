package props

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/kjk/common/atomicfile"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// LineSeparator terminates every line written by Save.
var LineSeparator = "\n"

func init() {
	if runtime.GOOS == "windows" {
		LineSeparator = "\r\n"
	}
}

// Load replaces the contents of s with the UTF-8 document read from r.
// On error s is left unchanged.
func (s *Store) Load(r io.Reader) error {
	return s.LoadEncoded(r, nil)
}

// LoadEncoded is Load for a document in the character encoding enc.
// A nil enc means UTF-8.
func (s *Store) LoadEncoded(r io.Reader, enc encoding.Encoding) error {
	start := time.Now()
	entries, values, err := s.parse(decoder(r, enc))
	if err != nil {
		return err
	}
	s.entries = entries
	s.values = values
	s.logger.Debug("properties loaded", "entries", len(entries), "properties", len(values), "elapsed", time.Since(start))
	return nil
}

// LoadFile replaces the contents of s with the file at path. A nil enc
// means UTF-8.
func (s *Store) LoadFile(path string, enc encoding.Encoding) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening properties file: %w", err)
	}
	defer f.Close()

	if err := s.LoadEncoded(f, enc); err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// parse reads every line into a fresh entry sequence and index.
func (s *Store) parse(r io.Reader) ([]Entry, map[string]string, error) {
	var entries []Entry
	values := make(map[string]string)

	br := bufio.NewReader(r)
	for lineNumber := 1; ; lineNumber++ {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, nil, fmt.Errorf("reading line %d: %w", lineNumber, err)
		}
		if line == "" && err != nil {
			break
		}
		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")

		entry, perr := parseLine(line, lineNumber)
		if perr != nil {
			return nil, nil, perr
		}
		if entry.IsProperty() {
			if _, dup := values[entry.key]; dup {
				return nil, nil, &ParseError{Line: lineNumber, Text: line, Err: ErrDuplicateKey}
			}
			v, terr := applyRead(s.transforms, entry.key, entry.value)
			if terr != nil {
				return nil, nil, &ParseError{Line: lineNumber, Text: line, Err: terr}
			}
			entry.value = v
			values[entry.key] = v
		}
		entries = append(entries, entry)

		if err != nil {
			break
		}
	}
	return entries, values, nil
}

// Save writes the document to w as UTF-8. Property values pass through the
// write transforms; s itself is not modified.
func (s *Store) Save(w io.Writer) error {
	return s.SaveEncoded(w, nil)
}

// SaveEncoded is Save in the character encoding enc. A nil enc means UTF-8.
func (s *Store) SaveEncoded(w io.Writer, enc encoding.Encoding) error {
	start := time.Now()
	ew := encoder(w, enc)
	bw := bufio.NewWriter(ew)
	for _, e := range s.entries {
		if e.IsProperty() {
			v, err := applyWrite(s.transforms, e.key, e.value)
			if err != nil {
				return err
			}
			e.value = v
		}
		if _, err := bw.WriteString(e.String() + LineSeparator); err != nil {
			return fmt.Errorf("writing properties: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing properties: %w", err)
	}
	// Flushes the encoder's pending bytes; w itself stays open.
	if err := ew.Close(); err != nil {
		return fmt.Errorf("writing properties: %w", err)
	}
	s.logger.Debug("properties saved", "entries", len(s.entries), "elapsed", time.Since(start))
	return nil
}

// SaveFile writes the document to path. The file is replaced atomically:
// on error the previous contents are left in place.
func (s *Store) SaveFile(path string, enc encoding.Encoding) error {
	f, err := atomicfile.New(path)
	if err != nil {
		return fmt.Errorf("creating properties file: %w", err)
	}
	defer f.RemoveIfNotClosed()

	if err := s.SaveEncoded(f, enc); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}

func decoder(r io.Reader, enc encoding.Encoding) io.Reader {
	if enc == nil {
		// Strip a UTF-8 byte order mark if present.
		enc = unicode.UTF8BOM
	}
	return enc.NewDecoder().Reader(r)
}

func encoder(w io.Writer, enc encoding.Encoding) io.WriteCloser {
	if enc == nil {
		return nopCloser{w}
	}
	return transform.NewWriter(w, enc.NewEncoder())
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
