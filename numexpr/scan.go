package numexpr

import "fmt"

type tokenKind int

const (
	tokenEOF tokenKind = iota
	tokenNumber
	tokenOperator
	tokenLeftParen
	tokenRightParen
)

type token struct {
	Kind tokenKind
	Text string
	Pos  int
}

type scanner struct {
	src string
	off int
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isNumberChar reports whether c may appear inside a numeric literal token.
// Letters are included so that base prefixes (0x, 0b, 0o) and hex digits stay
// in a single token; big.Int.SetString rejects anything malformed afterwards.
func isNumberChar(c byte) bool {
	return isDigit(c) || c == '_' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func (s *scanner) next() (token, error) {
	for s.off < len(s.src) && (s.src[s.off] == ' ' || s.src[s.off] == '\t') {
		s.off++
	}
	if s.off >= len(s.src) {
		return token{Kind: tokenEOF, Pos: s.off}, nil
	}

	start := s.off
	c := s.src[s.off]
	switch {
	case isDigit(c):
		for s.off < len(s.src) && isNumberChar(s.src[s.off]) {
			s.off++
		}
		return token{Kind: tokenNumber, Text: s.src[start:s.off], Pos: start}, nil

	case c == '(':
		s.off++
		return token{Kind: tokenLeftParen, Text: "(", Pos: start}, nil

	case c == ')':
		s.off++
		return token{Kind: tokenRightParen, Text: ")", Pos: start}, nil

	case c == '<' || c == '>':
		if s.off+1 >= len(s.src) || s.src[s.off+1] != c {
			return token{}, fmt.Errorf("offset %d: unexpected character %q: %w", start, string(c), ErrSyntax)
		}
		s.off += 2
		return token{Kind: tokenOperator, Text: s.src[start : start+2], Pos: start}, nil

	case c == '+' || c == '-' || c == '*' || c == '/' || c == '%' ||
		c == '&' || c == '|' || c == '^':
		s.off++
		return token{Kind: tokenOperator, Text: string(c), Pos: start}, nil

	default:
		return token{}, fmt.Errorf("offset %d: unexpected character %q: %w", start, string(c), ErrSyntax)
	}
}
