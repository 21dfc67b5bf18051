package acrotex

import (
	"fmt"
	"sort"
	"strings"
)

const (
	ansiReset = "\x1b[0m"
	ansiBold  = "\x1b[1m"
	ansiItal  = "\x1b[3m"
	ansiDim   = "\x1b[2m"
)

// Style describes a terminal style as an ANSI prefix sequence.
type Style struct {
	Prefix string
}

// Styles groups the semantic styles used by the preview.
type Styles struct {
	Macro       Style
	Brace       Style
	Key         Style
	Value       Style
	Placeholder Style
	Comment     Style
	Banner      Style
	Summary     Style
}

// Theme provides named styles for the console preview.
type Theme interface {
	Name() string
	Styles() Styles
}

type theme struct {
	name   string
	styles Styles
}

func (t theme) Name() string   { return t.name }
func (t theme) Styles() Styles { return t.styles }

// NewTheme returns a Theme from a Styles definition.
func NewTheme(name string, styles Styles) Theme {
	return theme{name: name, styles: styles}
}

func style(prefixes ...string) Style {
	var b strings.Builder
	for _, p := range prefixes {
		if p != "" {
			b.WriteString(p)
		}
	}
	return Style{Prefix: b.String()}
}

func fg(hex uint32) string {
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", hex>>16&0xff, hex>>8&0xff, hex&0xff)
}

type palette struct {
	macro, brace, key, value, placeholder, comment, banner uint32
}

func stylesFromPalette(p palette) Styles {
	return Styles{
		Macro:       style(ansiBold, fg(p.macro)),
		Brace:       style(fg(p.brace)),
		Key:         style(fg(p.key)),
		Value:       style(fg(p.value)),
		Placeholder: style(ansiItal, fg(p.placeholder)),
		Comment:     style(ansiDim, fg(p.comment)),
		Banner:      style(fg(p.banner)),
		Summary:     style(ansiBold),
	}
}

// PlainThemeName names the theme that emits no escape sequences.
const PlainThemeName = "plain"

var builtinThemes = map[string]Theme{
	PlainThemeName: theme{name: PlainThemeName},
	"default": theme{name: "default", styles: stylesFromPalette(palette{
		macro: 0x61afef, brace: 0xabb2bf, key: 0xe5c07b, value: 0x98c379, placeholder: 0xc678dd, comment: 0x5c6370, banner: 0x56b6c2,
	})},
	"gruvbox": theme{name: "gruvbox", styles: stylesFromPalette(palette{
		macro: 0xfb4934, brace: 0xa89984, key: 0xfabd2f, value: 0xb8bb26, placeholder: 0xd3869b, comment: 0x928374, banner: 0x8ec07c,
	})},
	"nord": theme{name: "nord", styles: stylesFromPalette(palette{
		macro: 0x88c0d0, brace: 0xd8dee9, key: 0x81a1c1, value: 0xa3be8c, placeholder: 0xb48ead, comment: 0x616e88, banner: 0x8fbcbb,
	})},
	"dracula": theme{name: "dracula", styles: stylesFromPalette(palette{
		macro: 0xff79c6, brace: 0xf8f8f2, key: 0x8be9fd, value: 0xf1fa8c, placeholder: 0xbd93f9, comment: 0x6272a4, banner: 0x50fa7b,
	})},
	"solarized-dark": theme{name: "solarized-dark", styles: stylesFromPalette(palette{
		macro: 0x268bd2, brace: 0x93a1a1, key: 0xb58900, value: 0x859900, placeholder: 0x6c71c4, comment: 0x586e75, banner: 0x2aa198,
	})},
	"solarized-light": theme{name: "solarized-light", styles: stylesFromPalette(palette{
		macro: 0x268bd2, brace: 0x586e75, key: 0xb58900, value: 0x859900, placeholder: 0x6c71c4, comment: 0x93a1a1, banner: 0x2aa198,
	})},
}

// AvailableThemes returns the names of built-in themes.
func AvailableThemes() []string {
	names := make([]string, 0, len(builtinThemes))
	for name := range builtinThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName returns a built-in theme by name.
func ThemeByName(name string) (Theme, bool) {
	if name == "" {
		return builtinThemes["default"], true
	}
	normalized := strings.ToLower(strings.TrimSpace(name))
	theme, ok := builtinThemes[normalized]
	return theme, ok
}

// DefaultTheme returns the default built-in theme.
func DefaultTheme() Theme {
	return builtinThemes["default"]
}

// PlainTheme returns the theme without styling.
func PlainTheme() Theme {
	return builtinThemes[PlainThemeName]
}
