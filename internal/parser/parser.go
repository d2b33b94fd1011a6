// Package parser builds a typed AST from a token list: resolving alias
// directives, rewriting struct methods to their mangled top-level form, and
// tracking import/module declarations (spec §4.2).
package parser

import (
	"github.com/comelang/come-go/internal/ast"
	"github.com/comelang/come-go/internal/lexer"
	"github.com/comelang/come-go/pkg/token"
)

// Parser consumes a token stream and produces a Program node. Per the
// re-architecture in spec §5, state that the original C parser kept as
// process-wide globals lives per parse instead: the alias table on the
// Parser value and the module name in a local of ParseProgram, so two
// Parsers (e.g. for two translation units) never interfere with each other.
type Parser struct {
	tokens []token.Token
	pos    int
	cur    token.Token
	peek   token.Token

	errors  []Error
	aliases map[string]*ast.Node // spec §4.5: alias name -> cloned AST fragment
}

// New creates a Parser over every token l produces (collectTokens drains
// l.Next to EOF up front; the source language has no streaming-parse
// requirement and a flat slice makes lookahead and backtracking trivial).
func New(l *lexer.Lexer) *Parser {
	p := &Parser{
		tokens:  collectTokens(l),
		aliases: make(map[string]*ast.Node),
	}
	p.pos = 0
	p.cur = p.tokens[0]
	p.peek = p.tokenAt(1)
	return p
}

func collectTokens(l *lexer.Lexer) []token.Token {
	var toks []token.Token
	for {
		tok := l.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks
		}
	}
}

func (p *Parser) tokenAt(i int) token.Token {
	if i >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1] // EOF
	}
	return p.tokens[i]
}

// advance consumes the current token and returns it.
func (p *Parser) advance() token.Token {
	cur := p.cur
	p.pos++
	p.cur = p.peek
	p.peek = p.tokenAt(p.pos + 1)
	return cur
}

func (p *Parser) curIs(k token.Kind) bool  { return p.cur.Kind == k }
func (p *Parser) peekIs(k token.Kind) bool { return p.peek.Kind == k }

// expect consumes the current token if it has kind k, else records an error
// and leaves the cursor unmoved (the caller, or the statement-level
// recovery loop, is responsible for the mandatory one-token resync).
func (p *Parser) expect(k token.Kind) token.Token {
	if p.curIs(k) {
		return p.advance()
	}
	p.errorf("expected %s", k)
	return token.Token{Kind: token.ILLEGAL, Line: p.cur.Line}
}

// ParseProgram parses one translation unit and returns its Program node.
func (p *Parser) ParseProgram() *ast.Node {
	moduleName := "main"
	var children []*ast.Node

	for !p.curIs(token.EOF) {
		before := p.pos
		decls, isModuleDecl, name := p.parseTopLevel()
		if isModuleDecl {
			moduleName = name
		} else {
			children = append(children, decls...)
		}
		// A top-level parser that made no progress must still advance one
		// token, or EOF is never reached (spec §4.2 "no token progress").
		if p.pos == before {
			p.advance()
		}
	}

	return ast.NewProgram(moduleName, children...)
}
