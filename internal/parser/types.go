package parser

import "github.com/comelang/come-go/pkg/token"

// parseTypeSpelling reads a type name plus any pointer/array suffix and
// returns its literal spelling, e.g. "int", "Rect*", "string[]", "int[8]".
// Array-typed arguments retain their "[]" suffix on the type text so codegen
// can dispatch on it later (spec §4.2 "Function arguments").
func (p *Parser) parseTypeSpelling() (string, int) {
	line := p.cur.Line
	text := p.expect(token.IDENT).Text
	for p.curIs(token.STAR) {
		text += "*"
		p.advance()
	}
	if p.curIs(token.LBRACK) {
		p.advance()
		dim := ""
		if p.curIs(token.INT) {
			dim = p.advance().Text
		}
		p.expect(token.RBRACK)
		text += "[" + dim + "]"
	}
	return text, line
}

// captureParenthesizedText consumes a balanced "(...)" run and returns its
// raw text, used for a multi-return function signature (spec §9: "A return
// type whose first character is '(' denotes a multi-value return").
func (p *Parser) captureParenthesizedText() string {
	text := "("
	p.advance() // '('
	depth := 1
	for depth > 0 && !p.curIs(token.EOF) {
		if p.curIs(token.LPAREN) {
			depth++
		} else if p.curIs(token.RPAREN) {
			depth--
			if depth == 0 {
				text += ")"
				p.advance()
				break
			}
		}
		if text != "(" {
			text += " "
		}
		text += p.cur.Text
		p.advance()
	}
	return text
}

// restoreTo rewinds the cursor to a previously saved token index, used when
// a speculative return-type lookahead turns out not to have been one.
func (p *Parser) restoreTo(savedPos int) {
	p.pos = savedPos
	p.cur = p.tokens[savedPos]
	p.peek = p.tokenAt(savedPos + 1)
}
