package acrotex

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// WriteOption configures WriteFile.
type WriteOption func(*writeConfig)

type writeConfig struct {
	mkdir bool
	perm  os.FileMode
}

// WithMkdir creates missing parent directories of the output path.
func WithMkdir(enabled bool) WriteOption {
	return func(cfg *writeConfig) {
		cfg.mkdir = enabled
	}
}

// Write writes each block followed by a blank line and returns the number of
// blocks written.
func Write(w io.Writer, blocks []string) (int, error) {
	if w == nil {
		return 0, errors.New("write: Writer is nil")
	}
	bw := bufio.NewWriter(w)
	for i, block := range blocks {
		if _, err := bw.WriteString(block); err != nil {
			return i, fmt.Errorf("write: %w: %w", ErrOutputWrite, err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return i, fmt.Errorf("write: %w: %w", ErrOutputWrite, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return 0, fmt.Errorf("write: %w: %w", ErrOutputWrite, err)
	}
	return len(blocks), nil
}

// WriteFile creates or truncates path and writes blocks to it.
func WriteFile(path string, blocks []string, opts ...WriteOption) (n int, err error) {
	cfg := writeConfig{perm: 0o644}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.mkdir {
		if dir := filepath.Dir(path); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return 0, fmt.Errorf("write %s: %w: %w", path, ErrOutputWrite, err)
			}
		}
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, cfg.perm)
	if err != nil {
		return 0, fmt.Errorf("write %s: %w: %w", path, ErrOutputWrite, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			n, err = 0, fmt.Errorf("write %s: %w: %w", path, ErrOutputWrite, cerr)
		}
	}()
	n, err = Write(f, blocks)
	if err != nil {
		return n, fmt.Errorf("write %s: %w", path, err)
	}
	return n, nil
}
