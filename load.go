package acrotex

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Canonical column names.
const (
	ColumnID          = "id"
	ColumnShort       = "short"
	ColumnLong        = "long"
	ColumnDescription = "description"
	ColumnTag         = "tag"
)

var canonicalColumns = []string{ColumnID, ColumnShort, ColumnLong, ColumnDescription, ColumnTag}

// LoadOption configures loading behavior.
type LoadOption func(*loadConfig)

type loadConfig struct {
	delimiter rune
	comment   rune
	aliases   map[string]string
	missing   map[string]struct{}
}

// WithDelimiter sets the field separator. The default is ','.
func WithDelimiter(r rune) LoadOption {
	return func(cfg *loadConfig) {
		if r != 0 {
			cfg.delimiter = r
		}
	}
}

// WithComment treats lines starting with r as comments.
func WithComment(r rune) LoadOption {
	return func(cfg *loadConfig) {
		cfg.comment = r
	}
}

// WithColumnAliases maps custom header names to canonical columns,
// for example {"acronym": "short"}. Matching is case-insensitive.
func WithColumnAliases(aliases map[string]string) LoadOption {
	return func(cfg *loadConfig) {
		if cfg.aliases == nil {
			cfg.aliases = make(map[string]string, len(aliases))
		}
		for from, to := range aliases {
			cfg.aliases[normalizeHeader(from)] = normalizeHeader(to)
		}
	}
}

// WithMissingMarkers treats cells equal to any marker (after trimming) as
// absent, for example "NA" or "null". Empty cells are always absent.
func WithMissingMarkers(markers ...string) LoadOption {
	return func(cfg *loadConfig) {
		if cfg.missing == nil {
			cfg.missing = make(map[string]struct{}, len(markers))
		}
		for _, m := range markers {
			cfg.missing[strings.TrimSpace(m)] = struct{}{}
		}
	}
}

// LoadFile reads entries from the CSV file at path.
func LoadFile(path string, opts ...LoadOption) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w: %w", path, ErrInputNotFound, err)
	}
	defer f.Close()
	entries, err := Load(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return entries, nil
}

// Load reads a header row and the data rows that follow it from r.
func Load(r io.Reader, opts ...LoadOption) ([]Entry, error) {
	cfg := loadConfig{delimiter: ','}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if r == nil {
		return nil, errors.New("load: Reader is nil")
	}
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w: %w", ErrInputNotFound, err)
	}
	if err := ValidateInput(src); err != nil {
		return nil, err
	}

	cr := csv.NewReader(bytes.NewReader(trimBOM(src)))
	cr.Comma = cfg.delimiter
	cr.Comment = cfg.comment

	header, err := cr.Read()
	if err == io.EOF {
		return nil, malformed{errors.New("missing header row")}
	}
	if err != nil {
		return nil, malformed{fmt.Errorf("header: %w", err)}
	}
	idx, err := indexHeader(header, cfg.aliases)
	if err != nil {
		return nil, err
	}
	idx.missing = cfg.missing
	cr.FieldsPerRecord = len(header)

	var entries []Entry
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, malformed{err}
		}
		line, _ := cr.FieldPos(0)
		entry, err := idx.entry(record, line)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

type headerIndex struct {
	pos     map[string]int
	missing map[string]struct{}
}

func indexHeader(header []string, aliases map[string]string) (*headerIndex, error) {
	idx := &headerIndex{pos: make(map[string]int, len(canonicalColumns))}
	for i, raw := range header {
		name := normalizeHeader(raw)
		if alias, ok := aliases[name]; ok {
			name = alias
		}
		if !isCanonical(name) {
			continue
		}
		if _, dup := idx.pos[name]; dup {
			return nil, &FieldError{Column: name, Err: malformed{errors.New("duplicate column")}}
		}
		idx.pos[name] = i
	}
	for _, required := range []string{ColumnID, ColumnLong} {
		if _, ok := idx.pos[required]; !ok {
			return nil, &FieldError{Column: required, Err: malformed{errors.New("required column missing from header")}}
		}
	}
	return idx, nil
}

func (h *headerIndex) cell(record []string, column string) (string, bool) {
	i, ok := h.pos[column]
	if !ok || i >= len(record) {
		return "", false
	}
	return record[i], true
}

func (h *headerIndex) optional(record []string, column string) Optional {
	cell, ok := h.cell(record, column)
	if !ok {
		return None()
	}
	if _, marker := h.missing[strings.TrimSpace(cell)]; marker {
		return None()
	}
	return OptionalFromCell(cell)
}

func (h *headerIndex) entry(record []string, line int) (Entry, error) {
	id, _ := h.cell(record, ColumnID)
	long, _ := h.cell(record, ColumnLong)
	e := Entry{
		ID:          id,
		Short:       h.optional(record, ColumnShort),
		Long:        long,
		Description: h.optional(record, ColumnDescription),
		Tag:         h.optional(record, ColumnTag),
	}
	if err := e.Validate(); err != nil {
		var fe *FieldError
		if errors.As(err, &fe) {
			fe.Line = line
			fe.Err = malformed{errors.New("required field is empty")}
		}
		return Entry{}, err
	}
	return e, nil
}

func normalizeHeader(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func isCanonical(name string) bool {
	for _, c := range canonicalColumns {
		if c == name {
			return true
		}
	}
	return false
}
