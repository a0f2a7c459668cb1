package parse

import (
	"fmt"
	"io"
	"strconv"

	"github.com/signadot/eds/debug"
	"github.com/signadot/eds/eval"
	"github.com/signadot/eds/ir"
	"github.com/signadot/eds/token"
)

// Parser evaluates token streams against a machine.
type Parser struct {
	node  *ir.Node
	m     *eval.Machine
	lexer *token.Lexer
}

// NewParser creates a parser for m.  The parser and its lexer are nodes
// too, bound into the VM by kind.
func NewParser(m *eval.Machine, opts ...ParseOption) *Parser {
	pOpts := &parseOpts{name: eval.DefaultName}
	for _, f := range opts {
		f(pOpts)
	}
	p := &Parser{
		node:  m.Arena().Parser(pOpts.name),
		m:     m,
		lexer: token.NewLexer(m.Arena(), pOpts.name),
	}
	m.VM().BindByType(p.lexer.Node()).BindByType(p.node)
	return p
}

func (p *Parser) Node() *ir.Node {
	return p.node
}

func (p *Parser) Lexer() *token.Lexer {
	return p.lexer
}

// Parse lexes src a statement at a time, running each statement as soon
// as its newline is read, holding the machine lock.  A tokenize error
// stops the parse at the offending statement; statements before it keep
// their effect.
func (p *Parser) Parse(src []byte) error {
	p.m.Lock()
	defer p.m.Unlock()
	p.lexer.Reset(src)
	var stmt []token.Token
	for {
		tok, err := p.lexer.Next()
		if err == io.EOF {
			return p.exec(stmt)
		}
		if err != nil {
			return err
		}
		if tok.Type != token.TNewline {
			stmt = append(stmt, tok)
			continue
		}
		if err := p.exec(stmt); err != nil {
			return err
		}
		stmt = stmt[:0]
	}
}

// Run evaluates toks statement by statement, holding the machine lock.
// It stops at the first failing statement; statements before it keep
// their effect.
func (p *Parser) Run(toks []token.Token) error {
	p.m.Lock()
	defer p.m.Unlock()
	pi := 0
	for pi < len(toks) {
		stmt := statement(toks, &pi)
		if err := p.exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// statement returns the tokens up to the next newline and moves *pi past
// it.
func statement(toks []token.Token, pi *int) []token.Token {
	start := *pi
	for *pi < len(toks) {
		t := &toks[*pi]
		*pi++
		if t.Type == token.TNewline {
			return toks[start : *pi-1]
		}
	}
	return toks[start:]
}

func (p *Parser) exec(stmt []token.Token) error {
	if len(stmt) == 0 {
		return nil
	}
	if debug.Parse() {
		token.LogTokens(stmt, fmt.Sprintf("statement at line %d", stmt[0].Pos.Line))
	}
	for i := range stmt {
		t := &stmt[i]
		if t.Type != token.TSymbol {
			continue
		}
		cmd := p.m.Command(t.Node.Str())
		if cmd == nil {
			continue
		}
		if len(stmt) != 1 {
			return &GrammarErr{
				Err: fmt.Errorf("command %s must stand alone in its statement", cmd.Str()),
				Pos: t.Pos,
			}
		}
		if err := p.m.Call(cmd); err != nil {
			return fmt.Errorf("line %d: %w", t.Pos.Line, err)
		}
		return nil
	}
	vec := p.m.Arena().Vector(strconv.Itoa(stmt[0].Pos.Line))
	for i := range stmt {
		vec.Push(stmt[i].Node)
	}
	p.m.VM().Push(vec)
	return nil
}
