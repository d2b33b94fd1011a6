package parser

import (
	"github.com/comelang/come-go/internal/ast"
	"github.com/comelang/come-go/pkg/token"
)

// parseDottedName reads a possibly-hierarchical alias name ("a.b.c") and
// returns its concatenated lookup key (spec §4.5).
func (p *Parser) parseDottedName() string {
	key := p.expect(token.IDENT).Text
	for p.curIs(token.DOT) {
		p.advance()
		key += "." + p.expect(token.IDENT).Text
	}
	return key
}

// parseAlias handles both alias forms. A type alias ("alias N = struct M")
// produces a TypeAlias AST node. An expression alias ("alias N = <expr>") is
// purely compile-time: the parsed fragment is registered under N's dotted
// key and the directive itself produces no AST node (spec §4.2, §4.5).
func (p *Parser) parseAlias() *ast.Node {
	line := p.advance().Line // 'alias'
	name := p.parseDottedName()
	p.expect(token.ASSIGN)

	if p.curIs(token.STRUCT) || p.curIs(token.UNION) || p.curIs(token.ENUM) {
		kw := p.advance()
		target := p.expect(token.IDENT)
		kind := ast.TypeAlias
		_ = kw
		node := ast.New(kind, name, line, ast.New(ast.Ident, target.Text, line))
		p.consumeSemi()
		return node
	}

	fragment := p.ParseExpression()
	p.consumeSemi()
	p.aliases[name] = fragment
	return nil
}
