package regexlib

import (
	"strings"
	"unicode/utf8"
)

// Symbol is one input symbol of an automaton. Literal symbols are Unicode code
// points; the negative values are reserved markers.
type Symbol rune

const (
	// Epsilon labels NFA transitions that consume no input.
	Epsilon Symbol = -1
	// Sentinel is the alphabet of a DFA built from an automaton with no literal
	// symbols. It never matches input.
	Sentinel Symbol = -2
)

func (s Symbol) String() string {
	switch s {
	case Epsilon:
		return "ε"
	case Sentinel:
		return "∅"
	}
	return string(rune(s))
}

// TokenKind classifies a Token.
type TokenKind int

const (
	TokEOF     TokenKind = iota
	TokLiteral           // any non-operator rune
	TokLParen            // (
	TokRParen            // )
	TokStar              // *
	TokUnion             // |
	TokConcat            // implicit concatenation, inserted by the parser
)

// Token is one element of a tokenized regex. Pos is the rune offset in the
// source; inserted concatenation tokens carry the offset of the token after
// them.
type Token struct {
	Kind TokenKind
	Sym  Symbol // for TokLiteral
	Pos  int
}

func (t Token) String() string {
	switch t.Kind {
	case TokLiteral:
		return t.Sym.String()
	case TokLParen:
		return "("
	case TokRParen:
		return ")"
	case TokStar:
		return "*"
	case TokUnion:
		return "|"
	case TokConcat:
		return "·"
	}
	return "EOF"
}

// FormatPostfix renders a token sequence with no separators, concatenation
// shown as ·.
func FormatPostfix(tokens []Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(t.String())
	}
	return b.String()
}

type lexer struct {
	input string
	pos   int // byte offset
	col   int // rune offset
}

func newLexer(s string) *lexer { return &lexer{input: s} }

func (l *lexer) next() Token {
	if l.pos >= len(l.input) {
		return Token{Kind: TokEOF, Pos: l.col}
	}
	r, size := utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += size
	col := l.col
	l.col++
	switch r {
	case '(':
		return Token{Kind: TokLParen, Pos: col}
	case ')':
		return Token{Kind: TokRParen, Pos: col}
	case '*':
		return Token{Kind: TokStar, Pos: col}
	case '|':
		return Token{Kind: TokUnion, Pos: col}
	default:
		return Token{Kind: TokLiteral, Sym: Symbol(r), Pos: col}
	}
}

// tokenize splits regex into tokens and verifies parenthesis nesting before
// anything else looks at the input.
func tokenize(regex string) ([]Token, error) {
	var (
		tokens []Token
		open   []int
	)
	l := newLexer(regex)
	for tok := l.next(); tok.Kind != TokEOF; tok = l.next() {
		switch tok.Kind {
		case TokLParen:
			open = append(open, tok.Pos)
		case TokRParen:
			if len(open) == 0 {
				return nil, unbalanced(tok.Pos, "unexpected )")
			}
			open = open[:len(open)-1]
		}
		tokens = append(tokens, tok)
	}
	if len(open) > 0 {
		return nil, unbalanced(open[len(open)-1], "missing )")
	}
	return tokens, nil
}

// insertConcat makes implicit concatenation explicit: a concat token goes
// between A and B unless A is ( or |, or B is *, | or ).
func insertConcat(tokens []Token) []Token {
	if len(tokens) == 0 {
		return nil
	}
	out := make([]Token, 0, 2*len(tokens))
	for i, cur := range tokens {
		out = append(out, cur)
		if i+1 == len(tokens) {
			break
		}
		nxt := tokens[i+1]
		if cur.Kind == TokLParen || cur.Kind == TokUnion {
			continue
		}
		switch nxt.Kind {
		case TokStar, TokUnion, TokRParen:
			continue
		}
		out = append(out, Token{Kind: TokConcat, Pos: nxt.Pos})
	}
	return out
}
