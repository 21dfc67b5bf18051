package acrotex

import (
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"
)

const (
	declareMacro = `\DeclareAcronym`
	indent       = "   "
	// Placeholder marks an absent short form or tag.
	Placeholder = "{-}"
)

// Format renders e as a \DeclareAcronym block ending in a newline.
//
// The long form is braced in the long field but emitted bare in the sort
// trailer; documents built from earlier output rely on that.
func Format(e Entry, opts ...FormatOption) (string, error) {
	cfg := newFormatConfig(opts)
	return formatEntry(e, cfg)
}

// FormatAll formats entries and returns the blocks in input order.
func FormatAll(entries []Entry, opts ...FormatOption) ([]string, error) {
	cfg := newFormatConfig(opts)
	blocks := make([]string, len(entries))
	if cfg.jobs <= 1 || len(entries) < 2 {
		for i, e := range entries {
			block, err := formatEntry(e, cfg)
			if err != nil {
				return nil, fmt.Errorf("entry %d: %w", i+1, err)
			}
			blocks[i] = block
		}
		return blocks, nil
	}

	var g errgroup.Group
	g.SetLimit(cfg.jobs)
	for i, e := range entries {
		g.Go(func() error {
			block, err := formatEntry(e, cfg)
			if err != nil {
				return fmt.Errorf("entry %d: %w", i+1, err)
			}
			blocks[i] = block
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return blocks, nil
}

func formatEntry(e Entry, cfg formatConfig) (string, error) {
	if err := e.Validate(); err != nil {
		return "", fmt.Errorf("format %q: %w", e.ID, err)
	}
	if cfg.escape {
		e = EscapeEntry(e)
	}

	var b strings.Builder
	b.Grow(160 + len(e.ID) + len(e.Short.Or("")) + len(e.Long)*2 + len(e.Description.Or("")) + len(e.Tag.Or("")))

	b.WriteString(declareMacro)
	b.WriteString("{")
	b.WriteString(e.ID)
	b.WriteString("}{\n")

	b.WriteString(indent + "short = ")
	b.WriteString(e.Short.Or(Placeholder))
	b.WriteString(",\n")

	b.WriteString(indent + "long = {")
	b.WriteString(e.Long)
	b.WriteString("},\n")

	if desc, ok := e.Description.Get(); ok {
		b.WriteString(indent + "extra = {%\n")
		b.WriteString(indent + "    ")
		b.WriteString(desc)
		b.WriteString("\n" + indent + "},\n")
	} else {
		b.WriteString(indent + "extra = ,\n")
	}

	b.WriteString(indent + "tag = ")
	if tag, ok := e.Tag.Get(); ok {
		b.WriteString("{")
		b.WriteString(tag)
		b.WriteString("}")
	} else {
		b.WriteString(Placeholder)
	}
	b.WriteString(",\n")

	if !e.Short.IsSet() {
		b.WriteString(indent + "first-style = long,\n")
		b.WriteString(indent + "sort = ")
		b.WriteString(e.Long)
		b.WriteString(",\n")
	}

	b.WriteString("}\n")
	return b.String(), nil
}
