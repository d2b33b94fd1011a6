package parser

import "fmt"

// Error is a single parse diagnostic: the line and the offending token text.
// The parser never aborts on one of these (spec §4.2 "Error policy"); it
// resynchronises by advancing one token and keeps going, so the final AST
// may contain ast.Err placeholder nodes in addition to any errors collected
// here.
type Error struct {
	Line    int
	Token   string
	Message string
}

func (e Error) String() string {
	return fmt.Sprintf("line %d: %s (near %q)", e.Line, e.Message, e.Token)
}

func (p *Parser) errorf(format string, args ...any) {
	p.errors = append(p.errors, Error{
		Line:    p.cur.Line,
		Token:   p.cur.Text,
		Message: fmt.Sprintf(format, args...),
	})
}

// Errors returns every diagnostic collected during parsing, in source order.
func (p *Parser) Errors() []Error { return p.errors }
