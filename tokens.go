package acrotex

import "strings"

// Token is a preview text segment with a kind used for styling.
type Token struct {
	Text string
	Kind TokenKind
}

// TokenKind classifies a preview token.
type TokenKind uint8

const (
	// TokenText represents unstyled text.
	TokenText TokenKind = iota
	// TokenMacro represents a LaTeX control sequence.
	TokenMacro
	// TokenBrace represents a group delimiter.
	TokenBrace
	// TokenKey represents a key in a key = value list.
	TokenKey
	// TokenValue represents a value in a key = value list.
	TokenValue
	// TokenPlaceholder represents the {-} placeholder.
	TokenPlaceholder
	// TokenComment represents a % line-end comment marker.
	TokenComment
)

// TokenizeLine splits one line of a declaration block into tokens.
// Concatenating the token texts yields the input line.
func TokenizeLine(line string) []Token {
	if strings.HasPrefix(line, declareMacro) {
		toks := []Token{{Text: declareMacro, Kind: TokenMacro}}
		return append(toks, splitBraces(line[len(declareMacro):], TokenValue)...)
	}
	body := strings.TrimLeft(line, " ")
	lead := line[:len(line)-len(body)]
	eq := strings.Index(body, " = ")
	if lead != indent || eq <= 0 || !isKey(body[:eq]) {
		return splitBraces(line, TokenText)
	}
	toks := []Token{
		{Text: lead, Kind: TokenText},
		{Text: body[:eq], Kind: TokenKey},
		{Text: " = ", Kind: TokenText},
	}
	return append(toks, tokenizeValue(body[eq+3:])...)
}

func tokenizeValue(v string) []Token {
	switch {
	case strings.HasPrefix(v, Placeholder):
		return append([]Token{{Text: Placeholder, Kind: TokenPlaceholder}}, splitBraces(v[len(Placeholder):], TokenValue)...)
	case strings.HasSuffix(v, "%"):
		return append(splitBraces(v[:len(v)-1], TokenValue), Token{Text: "%", Kind: TokenComment})
	default:
		return splitBraces(v, TokenValue)
	}
}

func splitBraces(s string, kind TokenKind) []Token {
	var toks []Token
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '{' && c != '}' && c != ',' {
			continue
		}
		if i > 0 && s[i-1] == '\\' {
			continue
		}
		if i > start {
			toks = append(toks, Token{Text: s[start:i], Kind: kind})
		}
		k := TokenBrace
		if c == ',' {
			k = TokenText
		}
		toks = append(toks, Token{Text: s[i : i+1], Kind: k})
		start = i + 1
	}
	if start < len(s) {
		toks = append(toks, Token{Text: s[start:], Kind: kind})
	}
	return toks
}

func isKey(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if (r < 'a' || r > 'z') && r != '-' {
			return false
		}
	}
	return true
}

func (s Styles) forKind(k TokenKind) Style {
	switch k {
	case TokenMacro:
		return s.Macro
	case TokenBrace:
		return s.Brace
	case TokenKey:
		return s.Key
	case TokenValue:
		return s.Value
	case TokenPlaceholder:
		return s.Placeholder
	case TokenComment:
		return s.Comment
	default:
		return Style{}
	}
}
