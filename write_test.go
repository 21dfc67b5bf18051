package acrotex

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteSeparatesBlocksWithBlankLines(t *testing.T) {
	var out bytes.Buffer
	n, err := Write(&out, []string{"one\n", "two\n"})
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected count 2, got %d", n)
	}
	if got := out.String(); got != "one\n\ntwo\n\n" {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestWriteReportsFailure(t *testing.T) {
	_, err := Write(failingWriter{}, []string{"block\n"})
	if !errors.Is(err, ErrOutputWrite) {
		t.Fatalf("expected ErrOutputWrite, got %v", err)
	}
}

func TestWriteFileOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.tex")
	if err := os.WriteFile(path, []byte("stale content that is longer than the new output"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	n, err := WriteFile(path, []string{"x\n"})
	if err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected count 1, got %d", n)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "x\n\n" {
		t.Fatalf("unexpected file content: %q", data)
	}
}

func TestWriteFileEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.tex")
	n, err := WriteFile(path, nil)
	if err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected count 0, got %d", n)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected output file to exist: %v", err)
	}
	if info.Size() != 0 {
		t.Fatalf("expected empty file, got %d bytes", info.Size())
	}
}

func TestWriteFileMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.tex")
	if _, err := WriteFile(path, []string{"x\n"}); !errors.Is(err, ErrOutputWrite) {
		t.Fatalf("expected ErrOutputWrite, got %v", err)
	}
	if _, err := WriteFile(path, []string{"x\n"}, WithMkdir(true)); err != nil {
		t.Fatalf("WriteFile with mkdir: %v", err)
	}
}

func TestWriteFileIntoDirectory(t *testing.T) {
	if _, err := WriteFile(t.TempDir(), []string{"x\n"}); !errors.Is(err, ErrOutputWrite) {
		t.Fatalf("expected ErrOutputWrite, got %v", err)
	}
}
