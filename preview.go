package acrotex

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const bannerWidth = 20

// Banner is the separator line printed around the summary.
var Banner = strings.Repeat("*", bannerWidth)

// PreviewOptions configures console output.
type PreviewOptions struct {
	// Theme styles the output. Nil or the plain theme emits plain text.
	Theme Theme
	// Width wraps preview lines. Zero disables wrapping.
	Width int
	// OSC8 links the summary target to the written file.
	OSC8 bool
}

// WritePreview prints each block followed by a blank line.
func WritePreview(w io.Writer, blocks []string, opts PreviewOptions) error {
	bw := bufio.NewWriter(w)
	styles := opts.styles()
	for _, block := range blocks {
		for _, line := range strings.SplitAfter(block, "\n") {
			if line == "" {
				continue
			}
			text := strings.TrimSuffix(line, "\n")
			for _, part := range wrapLine(text, opts.Width) {
				writeStyledLine(bw, part, styles)
				bw.WriteByte('\n')
			}
		}
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	return nil
}

// WriteSummary prints the count of written entries between two banners.
func WriteSummary(w io.Writer, count int, target string, opts PreviewOptions) error {
	styles := opts.styles()
	shown := target
	if opts.OSC8 {
		shown = fileHyperlink(target, target)
	}
	banner := styled(Banner, styles.Banner)
	msg := styled(fmt.Sprintf("%d acronyms written to ", count), styles.Summary) + shown
	if _, err := fmt.Fprintf(w, "%s\n%s\n%s\n", banner, msg, banner); err != nil {
		return fmt.Errorf("summary: %w", err)
	}
	return nil
}

func (o PreviewOptions) styles() Styles {
	if o.Theme == nil {
		return Styles{}
	}
	return o.Theme.Styles()
}

func writeStyledLine(w *bufio.Writer, line string, styles Styles) {
	if styles == (Styles{}) {
		w.WriteString(line)
		return
	}
	for _, tok := range TokenizeLine(line) {
		w.WriteString(styled(tok.Text, styles.forKind(tok.Kind)))
	}
}

func styled(text string, s Style) string {
	if s.Prefix == "" || text == "" {
		return text
	}
	return s.Prefix + text + ansiReset
}
