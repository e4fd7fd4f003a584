// Package snapshot is the boundary between the engine and the jobs snapshot
// file on disk. It reads the raw delimited table and exposes the file's
// last-modification instant as an opaque freshness token; it never interprets
// the data beyond CSV framing.
package snapshot

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"
)

// ErrUnavailable reports that the snapshot file does not exist. Callers map
// it to a structured "data unavailable" condition rather than a crash.
var ErrUnavailable = errors.New("snapshot source unavailable")

// Token identifies one version of the snapshot. Two equal tokens mean the
// source has not changed and a cached canonical table may be served.
type Token struct {
	ModTime time.Time
}

func (t Token) Equal(other Token) bool {
	return t.ModTime.Equal(other.ModTime)
}

// String renders the token for cache keying and load-history rows.
func (t Token) String() string {
	return t.ModTime.UTC().Format(time.RFC3339Nano)
}

// Table is a raw snapshot as read from disk: a header plus rows, with no
// guarantee about which columns are present.
type Table struct {
	Columns []string
	Rows    [][]string
}

// ColumnIndex returns the position of a named column, or -1 when the source
// does not carry it.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Source reads a delimited jobs snapshot from a fixed path.
type Source struct {
	path      string
	delimiter rune
}

func NewSource(path string, delimiter rune) *Source {
	return &Source{path: path, delimiter: delimiter}
}

// Identity returns the path the source reads from.
func (s *Source) Identity() string { return s.path }

// Stat returns the current freshness token without reading the file.
func (s *Source) Stat() (Token, error) {
	info, err := os.Stat(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Token{}, fmt.Errorf("stat %s: %w", s.path, ErrUnavailable)
		}
		return Token{}, fmt.Errorf("stat %s: %w", s.path, err)
	}
	return Token{ModTime: info.ModTime()}, nil
}

// Load reads the whole snapshot. A missing file maps to ErrUnavailable;
// malformed CSV framing aborts the load. Field-level problems are not this
// layer's concern.
func (s *Source) Load() (*Table, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("open %s: %w", s.path, ErrUnavailable)
		}
		return nil, fmt.Errorf("open %s: %w", s.path, err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.Comma = s.delimiter

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return &Table{}, nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	var rows [][]string
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", len(rows)+2, err)
		}
		rows = append(rows, row)
	}

	return &Table{Columns: header, Rows: rows}, nil
}
