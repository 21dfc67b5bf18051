package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"pkt.systems/acrotex"
)

// variants maps a golden suffix to the format options that produce it.
var variants = map[string][]acrotex.FormatOption{
	"":         nil,
	".escaped": {acrotex.WithEscape(true)},
}

func main() {
	root := "testdata"
	var paths []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(path, ".csv") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		fatalf("walk %s: %v", root, err)
	}
	if len(paths) == 0 {
		fatalf("no csv files found under %s", root)
	}
	for _, path := range paths {
		src, err := os.ReadFile(path)
		if err != nil {
			fatalf("read %s: %v", path, err)
		}
		base := strings.TrimSuffix(path, ".csv")
		for suffix, opts := range variants {
			golden := base + suffix + ".golden"
			if suffix != "" {
				if _, err := os.Stat(golden); err != nil {
					continue
				}
			}
			var out bytes.Buffer
			_, err := acrotex.Convert(context.Background(), acrotex.ConvertRequest{
				Reader: bytes.NewReader(src),
				Writer: &out,
				Format: opts,
			})
			if err != nil {
				fatalf("convert %s: %v", path, err)
			}
			if err := os.WriteFile(golden, out.Bytes(), 0o644); err != nil {
				fatalf("write %s: %v", golden, err)
			}
			fmt.Printf("wrote %s\n", golden)
		}
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
