package parser

import (
	"strings"

	"github.com/comelang/come-go/internal/ast"
	"github.com/comelang/come-go/pkg/token"
)

// ParseExpression parses one expression at the loosest binding level
// (ternary), recursing down through the precedence table in precedence.go.
func (p *Parser) ParseExpression() *ast.Node {
	return p.parseTernary()
}

func (p *Parser) parseTernary() *ast.Node {
	cond := p.parseBinary(precOrOr)
	if p.curIs(token.QUESTION) {
		line := p.advance().Line
		then := p.parseTernary() // right-associative
		p.expect(token.COLON)
		els := p.parseTernary()
		return ast.New(ast.Ternary, "?:", line, cond, then, els)
	}
	return cond
}

// parseBinary implements precedence climbing: minPrec is the loosest level
// this call will consume, so the top-level ternary caller passes precOrOr to
// cover every binary level below it (spec §4.2 precedence table).
func (p *Parser) parseBinary(minPrec int) *ast.Node {
	left := p.parseUnary()
	for {
		prec := precedenceOf(p.cur.Kind)
		if prec == precLowest || prec < minPrec {
			return left
		}
		opTok := p.advance()
		right := p.parseBinary(prec + 1) // left-associative
		left = ast.New(ast.BinaryOp, opTok.Text, opTok.Line, left, right)
	}
}

// parseUnary recurses on itself so prefix chains like "**p" or "--x" parse
// correctly (spec §4.2).
func (p *Parser) parseUnary() *ast.Node {
	if p.curIs(token.DEC) {
		// The lexer reads "--" as one DEC token; in prefix position it is
		// two nested unary minuses.
		line := p.advance().Line
		operand := p.parseUnary()
		return ast.New(ast.UnaryOp, "-", line, ast.New(ast.UnaryOp, "-", line, operand))
	}
	if isUnaryPrefix(p.cur.Kind) {
		opTok := p.advance()
		operand := p.parseUnary()
		return ast.New(ast.UnaryOp, opTok.Text, opTok.Line, operand)
	}
	return p.parsePostfix(p.parsePrimary())
}

// parsePostfix left-folds ".ident", "[…]", "(…)", "++", "--" around the
// current primary until no further postfix token is present (spec §4.2).
func (p *Parser) parsePostfix(left *ast.Node) *ast.Node {
	for {
		switch {
		case p.curIs(token.DOT):
			line := p.advance().Line
			nameTok := p.expect(token.IDENT)
			if p.curIs(token.LPAREN) {
				args, trailing := p.parseCallArgs()
				left = ast.NewMethodCall(nameTok.Text, line, left, args, trailing)
			} else {
				left = ast.New(ast.MemberAccess, nameTok.Text, line, left)
			}
		case p.curIs(token.LBRACK):
			line := p.advance().Line
			index := p.ParseExpression()
			p.expect(token.RBRACK)
			left = ast.New(ast.ArrayAccess, "", line, left, index)
		case p.curIs(token.LPAREN):
			line := p.cur.Line
			args, _ := p.parseCallArgs()
			left = ast.NewCall(line, left, args...)
		case p.curIs(token.INC):
			line := p.advance().Line
			left = ast.New(ast.PostInc, "++", line, left)
		case p.curIs(token.DEC):
			line := p.advance().Line
			left = ast.New(ast.PostDec, "--", line, left)
		default:
			return left
		}
	}
}

// parseCallArgs parses a "(arg, …)" argument list and an optional
// immediately-following trailing-closure block (spec §3 "method-call").
func (p *Parser) parseCallArgs() ([]*ast.Node, *ast.Node) {
	p.expect(token.LPAREN)
	var args []*ast.Node
	for !p.curIs(token.RPAREN) && !p.curIs(token.EOF) {
		args = append(args, p.ParseExpression())
		if p.curIs(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	p.expect(token.RPAREN)
	var trailing *ast.Node
	if p.curIs(token.LBRACE) {
		trailing = p.parseBlock()
	}
	return args, trailing
}

func (p *Parser) parsePrimary() *ast.Node {
	line := p.cur.Line
	switch {
	case p.curIs(token.IDENT):
		if node, ok := p.tryAliasSubstitution(); ok {
			return node
		}
		tok := p.advance()
		return ast.New(ast.Ident, tok.Text, line)
	case p.curIs(token.INT) || p.curIs(token.FLOAT):
		tok := p.advance()
		return ast.New(ast.NumberLit, tok.Text, line)
	case p.curIs(token.STRING):
		return p.parseStringLiteral()
	case p.curIs(token.CHAR):
		tok := p.advance()
		return ast.New(ast.StringLit, tok.Text, line)
	case p.curIs(token.TRUE):
		p.advance()
		return ast.New(ast.BoolLit, "true", line)
	case p.curIs(token.FALSE):
		p.advance()
		return ast.New(ast.BoolLit, "false", line)
	case p.curIs(token.NULL):
		p.advance()
		return ast.New(ast.Ident, "null", line)
	case p.curIs(token.LPAREN):
		p.advance()
		expr := p.ParseExpression()
		p.expect(token.RPAREN)
		return expr
	case p.curIs(token.LBRACE):
		return p.parseAggregateInit()
	default:
		p.errorf("unexpected token in expression")
		tok := p.advance()
		_ = tok
		return ast.Err(line)
	}
}

// parseStringLiteral concatenates adjacent string-literal tokens into one
// StringLit node (spec §4.2, §8 round-trip law).
func (p *Parser) parseStringLiteral() *ast.Node {
	line := p.cur.Line
	var sb strings.Builder
	sb.WriteString(unquoteString(p.advance().Text))
	for p.curIs(token.STRING) {
		sb.WriteString(unquoteString(p.advance().Text))
	}
	return ast.New(ast.StringLit, `"`+sb.String()+`"`, line)
}

func unquoteString(text string) string {
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		return text[1 : len(text)-1]
	}
	return text
}

// parseAggregateInit parses "{ elem, … }", where each elem is either a raw
// expression (positional) or ".field = expr" (designated).
func (p *Parser) parseAggregateInit() *ast.Node {
	line := p.advance().Line // '{'
	var elems []*ast.Node
	for !p.curIs(token.RBRACE) && !p.curIs(token.EOF) {
		if p.curIs(token.DOT) {
			dotLine := p.advance().Line
			nameTok := p.expect(token.IDENT)
			designator := ast.New(ast.Ident, "."+nameTok.Text, dotLine)
			p.expect(token.ASSIGN)
			value := p.ParseExpression()
			elems = append(elems, ast.New(ast.Assign, "=", dotLine, designator, value))
		} else {
			elems = append(elems, p.ParseExpression())
		}
		if p.curIs(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	p.expect(token.RBRACE)
	return ast.NewAggregateInit(line, elems...)
}

// tryAliasSubstitution checks whether the identifier (or dotted identifier
// chain) starting at the cursor matches a registered alias, trying the
// longest dotted prefix first. On a match it consumes the matched tokens and
// returns a fresh clone of the registered fragment (spec §4.5).
func (p *Parser) tryAliasSubstitution() (*ast.Node, bool) {
	names := []string{p.cur.Text}
	offset := 1
	for {
		dotTok := p.tokenAt(p.pos + offset)
		identTok := p.tokenAt(p.pos + offset + 1)
		if dotTok.Kind != token.DOT || identTok.Kind != token.IDENT {
			break
		}
		names = append(names, identTok.Text)
		offset += 2
	}
	for n := len(names); n >= 1; n-- {
		key := strings.Join(names[:n], ".")
		if frag, ok := p.aliases[key]; ok {
			consumed := 1 + (n-1)*2
			for i := 0; i < consumed; i++ {
				p.advance()
			}
			return frag.Clone(), true
		}
	}
	return nil, false
}
