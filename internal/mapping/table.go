// Package mapping turns raw "<code>:<key>:<label>" entries into the key table
// consulted by the countdown loop.
package mapping

import (
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/brocode/goat/internal/validate"
)

// Built-in bindings, always present and inserted after user entries.
const (
	AbortKey      = 'q'
	AbortCode     = 1
	AbortLabel    = "abort"
	ContinueKey   = 'c'
	ContinueCode  = 0
	ContinueLabel = "continue"

	fieldSeparator = ":"
	fieldCount     = 3
)

// Mapping is the exit code and legend label bound to a key.
type Mapping struct {
	Code  int
	Label string
}

// Entry is a Mapping together with its key, as listed in the legend.
type Entry struct {
	Key rune
	Mapping
}

// Table is the immutable key lookup built by Parse.
type Table struct {
	byKey map[rune]Mapping
}

// Parse validates raw entries in order and builds a Table. The first invalid
// entry aborts the whole parse and no table is returned.
func Parse(raw []string) (*Table, error) {
	byKey := make(map[rune]Mapping, len(raw)+2)
	for _, entry := range raw {
		key, m, err := parseEntry(entry)
		if err != nil {
			return nil, err
		}
		if prev, ok := byKey[key]; ok {
			logrus.Debugf("mapping %q overrides earlier %d:%q", entry, prev.Code, prev.Label)
		}
		byKey[key] = m
	}

	byKey[AbortKey] = Mapping{Code: AbortCode, Label: AbortLabel}
	byKey[ContinueKey] = Mapping{Code: ContinueCode, Label: ContinueLabel}

	logrus.Debugf("parsed %d user mappings into %d bindings", len(raw), len(byKey))
	return &Table{byKey: byKey}, nil
}

func parseEntry(entry string) (rune, Mapping, error) {
	fields := strings.Split(entry, fieldSeparator)
	if len(fields) != fieldCount {
		return 0, Mapping{}, &ParseError{Entry: entry, Err: ErrFormat}
	}

	rawCode, rawKey, label := fields[0], fields[1], fields[2]

	if utf8.RuneCountInString(rawKey) != 1 {
		return 0, Mapping{}, &ParseError{Entry: entry, Err: ErrKey}
	}
	key, _ := utf8.DecodeRuneInString(rawKey)

	code, err := strconv.Atoi(rawCode)
	if err != nil {
		return 0, Mapping{}, &ParseError{Entry: entry, Err: ErrCodeNotNumeric}
	}
	if err := validate.ExitCode(code); err != nil {
		return 0, Mapping{}, &ParseError{Entry: entry, Err: ErrCodeOutOfRange}
	}

	return key, Mapping{Code: code, Label: label}, nil
}

// Lookup returns the mapping bound to key, if any.
func (t *Table) Lookup(key rune) (Mapping, bool) {
	m, ok := t.byKey[key]
	return m, ok
}

// Entries lists every binding ordered by key.
func (t *Table) Entries() []Entry {
	entries := make([]Entry, 0, len(t.byKey))
	for k, m := range t.byKey {
		entries = append(entries, Entry{Key: k, Mapping: m})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })
	return entries
}

// Len returns the number of bindings, built-ins included.
func (t *Table) Len() int { return len(t.byKey) }
