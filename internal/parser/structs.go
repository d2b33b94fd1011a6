package parser

import (
	"github.com/comelang/come-go/internal/ast"
	"github.com/comelang/come-go/pkg/token"
)

// parseStructOrUnion parses "struct N { … }" / "union N { … }". Fields parse
// as var-decls; inline methods are consumed here but only as forward
// declarations — their bodies are hoisted out and returned alongside the
// struct/union node, to live at top level as ordinary mangled functions
// (spec §4.2 "inline methods … recorded as forward declarations only").
func (p *Parser) parseStructOrUnion() (*ast.Node, []*ast.Node) {
	kind := ast.StructDecl
	if p.curIs(token.UNION) {
		kind = ast.UnionDecl
	}
	line := p.advance().Line // 'struct' / 'union'
	nameTok := p.expect(token.IDENT)
	p.expect(token.LBRACE)

	var fields []*ast.Node
	var hoisted []*ast.Node
	for !p.curIs(token.RBRACE) && !p.curIs(token.EOF) {
		before := p.pos
		switch {
		case p.curIs(token.METHOD):
			p.advance()
			hoisted = append(hoisted, p.parseMethodDef(nameTok.Text))
		case p.curIs(token.IDENT) && p.peekIs(token.IDENT) && p.tokenAt(p.pos+2).Kind == token.LPAREN:
			hoisted = append(hoisted, p.parseMethodDef(nameTok.Text))
		default:
			fields = append(fields, p.parseStructField())
		}
		if p.pos == before {
			p.advance()
		}
	}
	p.expect(token.RBRACE)
	p.consumeSemi()

	return ast.New(kind, nameTok.Text, line, fields...), hoisted
}

// parseStructField parses "Type name ;" as a field var-decl, carrying the
// invariant synthetic-0 initializer like any other uninitialised declaration.
func (p *Parser) parseStructField() *ast.Node {
	typeText, line := p.parseTypeSpelling()
	nameTok := p.expect(token.IDENT)
	p.consumeSemi()
	return ast.NewVarDecl(nameTok.Text, line, ast.New(ast.NumberLit, "0", line), ast.New(ast.Ident, typeText, line))
}

// parseMethodDef parses "RetType name(args) { body }" inside a struct body
// and mangles it to the top-level "Struct_method" function the same way a
// dotted top-level "Struct.method" definition does (spec §4.2, §4.3).
func (p *Parser) parseMethodDef(structName string) *ast.Node {
	retType, line := p.parseTypeSpelling()
	nameTok := p.expect(token.IDENT)
	params := p.parseMethodParamList(structName)
	body := p.parseBlock()
	mangled := structName + "_" + nameTok.Text
	return ast.NewFunction(mangled, line, ast.New(ast.Ident, retType, line), params, body)
}

// parseMethodParamList parses a method's "(…)" parameter list and always
// prepends a synthetic "self: Struct*" parameter (spec §4.2). If the source
// also wrote "self" explicitly as the first parameter name, that token is
// consumed and discarded rather than duplicated.
func (p *Parser) parseMethodParamList(structName string) []*ast.Node {
	open := p.expect(token.LPAREN)
	if p.curIs(token.IDENT) && p.cur.Text == "self" && (p.peekIs(token.COMMA) || p.peekIs(token.RPAREN)) {
		p.advance()
		if p.curIs(token.COMMA) {
			p.advance()
		}
	}
	var params []*ast.Node
	for !p.curIs(token.RPAREN) && !p.curIs(token.EOF) {
		typeText, line := p.parseTypeSpelling()
		nameTok := p.expect(token.IDENT)
		params = append(params, ast.NewArg(nameTok.Text, line, typeText))
		if p.curIs(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	p.expect(token.RPAREN)
	self := ast.NewArg("self", open.Line, structName+"*")
	return append([]*ast.Node{self}, params...)
}
