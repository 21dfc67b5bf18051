package acrotex

import "strings"

// latexReplacer substitutes in a single left-to-right pass, so the backslashes
// it introduces are never escaped again.
var latexReplacer = strings.NewReplacer(
	`\`, `\textbackslash`,
	`&`, `\&`,
	`#`, `\#`,
	`%`, `\%`,
	`{`, `\{`,
	`}`, `\}`,
	`_`, `\_`,
	`~`, `\textasciitilde`,
)

// Escape rewrites LaTeX reserved characters in s: \ & # % { } _ ~
func Escape(s string) string {
	return latexReplacer.Replace(s)
}

// EscapeEntry escapes every present field of e, including the id.
func EscapeEntry(e Entry) Entry {
	return Entry{
		ID:          Escape(e.ID),
		Short:       e.Short.mapValue(Escape),
		Long:        Escape(e.Long),
		Description: e.Description.mapValue(Escape),
		Tag:         e.Tag.mapValue(Escape),
	}
}
