package token

import (
	"bytes"
	"io"
	"unicode"
	"unicode/utf8"

	"github.com/signadot/eds/debug"
	"github.com/signadot/eds/ir"
)

// Lexer turns source text into tokens.  Its only state besides the input
// is the line counter.
type Lexer struct {
	node  *ir.Node
	arena *ir.Arena

	src       []byte
	off       int
	line      int
	lineStart int
}

// NewLexer creates a lexer building its primitives in a.  The lexer is
// itself represented by a node of kind lexer named name.
func NewLexer(a *ir.Arena, name string) *Lexer {
	return &Lexer{
		node:  a.Lexer(name),
		arena: a,
		line:  1,
	}
}

func (l *Lexer) Node() *ir.Node {
	return l.node
}

// Line is the current line, counting from 1.
func (l *Lexer) Line() int {
	return l.line
}

// Reset loads src and resets the line counter.
func (l *Lexer) Reset(src []byte) {
	l.src = src
	l.off = 0
	l.line = 1
	l.lineStart = 0
}

// Tokenize lexes all of src.
func (l *Lexer) Tokenize(src []byte) ([]Token, error) {
	l.Reset(src)
	var res []Token
	for {
		tok, err := l.Next()
		if err == io.EOF {
			return res, nil
		}
		if err != nil {
			return nil, err
		}
		res = append(res, tok)
	}
}

// Tokenize lexes src with a throw away lexer.
func Tokenize(a *ir.Arena, src []byte) ([]Token, error) {
	return NewLexer(a, "tokenize").Tokenize(src)
}

func (l *Lexer) pos() Pos {
	return Pos{Offset: l.off, Line: l.line, Col: l.off - l.lineStart + 1}
}

// Next returns the next token, or io.EOF at the end of input.  Space, tab,
// carriage return and '+' separate tokens and are dropped, as are comments
// running from '#' to the end of the line.
func (l *Lexer) Next() (Token, error) {
	tok, err := l.next()
	if err == nil && debug.Lex() {
		debug.Logf("lex %s %q\n", tok.Info(), tok.String())
	}
	return tok, err
}

func (l *Lexer) next() (Token, error) {
	for l.off < len(l.src) {
		d := l.src[l.off:]
		r, sz := utf8.DecodeRune(d)
		switch r {
		case ' ', '\t', '\r', '+':
			l.off += sz
			continue
		case '#':
			eol := bytes.IndexByte(d, '\n')
			if eol == -1 {
				eol = len(d)
			}
			l.off += eol
			continue
		case '\n':
			tok := Token{Type: TNewline, Pos: l.pos(), Bytes: d[:1]}
			l.off++
			l.line++
			l.lineStart = l.off
			return tok, nil
		}
		if n := integerLen(d); n > 0 {
			return l.integer(d[:n])
		}
		if n := symbolLen(d); n > 0 {
			tok := Token{Type: TSymbol, Pos: l.pos(), Bytes: d[:n]}
			tok.Node = l.arena.Symbol(string(tok.Bytes))
			l.off += n
			return tok, nil
		}
		return Token{}, UnexpectedErr(r, l.pos())
	}
	return Token{}, io.EOF
}

func (l *Lexer) integer(text []byte) (Token, error) {
	tok := Token{Type: TInteger, Pos: l.pos(), Bytes: text}
	n, err := l.arena.Integer(string(text))
	if err != nil {
		return Token{}, NewTokenizeErr(err, tok.Pos)
	}
	tok.Node = n
	l.off += len(text)
	return tok, nil
}

// integerLen matches [+-]?[0-9]+ at the start of d.  It stops at the first
// non digit, so 12ab is the integer 12 followed by the symbol ab.
func integerLen(d []byte) int {
	i := 0
	if len(d) > 0 && (d[0] == '-' || d[0] == '+') {
		i++
	}
	start := i
	for i < len(d) && d[i] >= '0' && d[i] <= '9' {
		i++
	}
	if i == start {
		return 0
	}
	return i
}

func symbolLen(d []byte) int {
	i := 0
	for i < len(d) {
		r, sz := utf8.DecodeRune(d[i:])
		if !isSymbolRune(r, sz) {
			break
		}
		i += sz
	}
	return i
}

// isSymbolRune accepts valid runes other than white space, control
// characters, the comment lead '#', the separator '+' and '@'.  Format
// characters such as U+200D are symbol runes.
func isSymbolRune(r rune, sz int) bool {
	if r == utf8.RuneError && sz <= 1 {
		return false
	}
	switch r {
	case '#', '+', '@':
		return false
	}
	return !unicode.IsControl(r) && !unicode.IsSpace(r)
}
