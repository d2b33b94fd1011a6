package parser

import (
	"github.com/comelang/come-go/internal/ast"
	"github.com/comelang/come-go/pkg/token"
)

func (p *Parser) parseBlock() *ast.Node {
	line := p.cur.Line
	p.expect(token.LBRACE)
	var stmts []*ast.Node
	for !p.curIs(token.RBRACE) && !p.curIs(token.EOF) {
		before := p.pos
		if stmt := p.parseStatement(); stmt != nil {
			stmts = append(stmts, stmt)
		}
		if p.pos == before {
			p.advance()
		}
	}
	p.expect(token.RBRACE)
	return ast.New(ast.Block, "", line, stmts...)
}

func (p *Parser) parseStatement() *ast.Node {
	switch p.cur.Kind {
	case token.LBRACE:
		return p.parseBlock()
	case token.IF:
		return p.parseIf()
	case token.WHILE:
		return p.parseWhile()
	case token.DO:
		return p.parseDoWhile()
	case token.FOR:
		return p.parseFor()
	case token.SWITCH:
		return p.parseSwitch()
	case token.RETURN:
		return p.parseReturn()
	case token.BREAK:
		line := p.advance().Line
		p.consumeSemi()
		return ast.New(ast.Break, "break", line)
	case token.CONTINUE:
		line := p.advance().Line
		p.consumeSemi()
		return ast.New(ast.Continue, "continue", line)
	case token.SEMI:
		p.advance()
		return nil
	}
	if decl, ok := p.tryParseVarDecl(); ok {
		return decl
	}
	return p.parseExprStatement()
}

func (p *Parser) consumeSemi() {
	if p.curIs(token.SEMI) {
		p.advance()
	}
}

func (p *Parser) parseIf() *ast.Node {
	line := p.advance().Line // 'if'
	p.expect(token.LPAREN)
	cond := p.ParseExpression()
	p.expect(token.RPAREN)
	then := p.parseStatement()
	children := []*ast.Node{cond, then}
	if p.curIs(token.ELSE) {
		p.advance()
		children = append(children, p.parseStatement())
	}
	return ast.New(ast.If, "", line, children...)
}

func (p *Parser) parseWhile() *ast.Node {
	line := p.advance().Line // 'while'
	p.expect(token.LPAREN)
	cond := p.ParseExpression()
	p.expect(token.RPAREN)
	body := p.parseStatement()
	return ast.New(ast.While, "", line, cond, body)
}

func (p *Parser) parseDoWhile() *ast.Node {
	line := p.advance().Line // 'do'
	body := p.parseStatement()
	p.expect(token.WHILE)
	p.expect(token.LPAREN)
	cond := p.ParseExpression()
	p.expect(token.RPAREN)
	p.consumeSemi()
	return ast.New(ast.DoWhile, "", line, body, cond)
}

func (p *Parser) parseFor() *ast.Node {
	line := p.advance().Line // 'for'
	p.expect(token.LPAREN)

	var initNode *ast.Node
	if p.curIs(token.SEMI) {
		initNode = ast.New(ast.Block, "", line)
	} else if decl, ok := p.tryParseVarDecl(); ok {
		initNode = decl // already consumed its trailing ';'
	} else {
		initNode = p.ParseExpression()
		p.expect(token.SEMI)
	}

	var condNode *ast.Node
	if p.curIs(token.SEMI) {
		condNode = ast.New(ast.BoolLit, "true", line)
	} else {
		condNode = p.ParseExpression()
	}
	p.expect(token.SEMI)

	var postNode *ast.Node
	if p.curIs(token.RPAREN) {
		postNode = ast.New(ast.Block, "", line)
	} else {
		postNode = p.ParseExpression()
	}
	p.expect(token.RPAREN)

	body := p.parseStatement()
	return ast.New(ast.For, "", line, initNode, condNode, postNode, body)
}

func (p *Parser) parseSwitch() *ast.Node {
	line := p.advance().Line // 'switch'
	p.expect(token.LPAREN)
	subject := p.ParseExpression()
	p.expect(token.RPAREN)
	p.expect(token.LBRACE)

	children := []*ast.Node{subject}
	for !p.curIs(token.RBRACE) && !p.curIs(token.EOF) {
		before := p.pos
		switch p.cur.Kind {
		case token.CASE:
			children = append(children, p.parseCase())
		case token.DEFAULT:
			children = append(children, p.parseDefault())
		default:
			p.errorf("expected case or default")
		}
		if p.pos == before {
			p.advance()
		}
	}
	p.expect(token.RBRACE)
	return ast.New(ast.Switch, "", line, children...)
}

func (p *Parser) parseCaseBody() []*ast.Node {
	var stmts []*ast.Node
	for !p.curIs(token.CASE) && !p.curIs(token.DEFAULT) && !p.curIs(token.RBRACE) && !p.curIs(token.EOF) {
		before := p.pos
		if stmt := p.parseStatement(); stmt != nil {
			stmts = append(stmts, stmt)
		}
		if p.pos == before {
			p.advance()
		}
	}
	return stmts
}

func (p *Parser) parseCase() *ast.Node {
	line := p.advance().Line // 'case'
	expr := p.ParseExpression()
	p.expect(token.COLON)
	children := append([]*ast.Node{expr}, p.parseCaseBody()...)
	return ast.New(ast.Case, "", line, children...)
}

func (p *Parser) parseDefault() *ast.Node {
	line := p.advance().Line // 'default'
	p.expect(token.COLON)
	return ast.New(ast.Default, "", line, p.parseCaseBody()...)
}

func (p *Parser) parseReturn() *ast.Node {
	line := p.advance().Line // 'return'
	var children []*ast.Node
	if !p.curIs(token.SEMI) && !p.curIs(token.RBRACE) {
		children = append(children, p.ParseExpression())
	}
	p.consumeSemi()
	return ast.New(ast.Return, "return", line, children...)
}

var assignOps = map[token.Kind]bool{
	token.ASSIGN: true, token.PLUS_EQ: true, token.MINUS_EQ: true,
	token.STAR_EQ: true, token.SLASH_EQ: true, token.PCT_EQ: true,
	token.AMP_EQ: true, token.PIPE_EQ: true, token.CARET_EQ: true,
	token.SHL_EQ: true, token.SHR_EQ: true,
}

func (p *Parser) parseExprStatement() *ast.Node {
	line := p.cur.Line
	expr := p.ParseExpression()
	var node *ast.Node
	if assignOps[p.cur.Kind] {
		opTok := p.advance()
		rhs := p.ParseExpression()
		node = ast.New(ast.Assign, opTok.Text, line, expr, rhs)
	} else {
		node = expr
	}
	p.consumeSemi()
	return node
}

// tryParseVarDecl speculatively parses "TypeSpelling name (= expr)? ;". On
// failure it rewinds the cursor so the caller can fall back to an expression
// statement — the source has no 'let'/'var'-only declaration keyword, so a
// type-then-name lookahead is the only way to tell a declaration from a call
// (spec §4.2's var-decl shape; re-architected as an explicit backtrack
// rather than a hard-coded keyword list).
func (p *Parser) tryParseVarDecl() (*ast.Node, bool) {
	if !p.curIs(token.IDENT) && !p.curIs(token.VAR) {
		return nil, false
	}
	saved := p.pos

	typeLine := p.cur.Line
	var typeText string
	if p.curIs(token.VAR) {
		typeText = "var"
		p.advance()
	} else {
		typeText, _ = p.parseTypeSpelling()
	}

	if !p.curIs(token.IDENT) {
		p.restoreTo(saved)
		return nil, false
	}
	nameTok := p.advance()

	var initNode *ast.Node
	if p.curIs(token.ASSIGN) {
		p.advance()
		initNode = p.ParseExpression()
	} else {
		initNode = ast.New(ast.NumberLit, "0", typeLine)
	}
	p.consumeSemi()

	typeNode := ast.New(ast.Ident, typeText, typeLine)
	return ast.NewVarDecl(nameTok.Text, typeLine, initNode, typeNode), true
}
