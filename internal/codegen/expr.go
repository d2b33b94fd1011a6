package codegen

import (
	"fmt"
	"strings"

	"github.com/comelang/come-go/internal/ast"
	"github.com/comelang/come-go/internal/lexer"
)

// expr lowers one expression-level AST node to its C text. This is the Go
// analogue of generate_expression in the original codegen: a big switch
// over Kind, with a handful of special cases (string equality, printf
// specialization, pointer-vs-value member access) that the original
// computed ad hoc and this package computes from the local-variable type
// table instead (spec §9 re-architecture note).
func (g *Generator) expr(n *ast.Node) string {
	if n == nil || n.IsErr() {
		return "/* AST ERROR: NULL NODE */ 0"
	}

	switch n.Kind {
	case ast.Ident:
		if n.Text == "null" {
			return "NULL"
		}
		return n.Text
	case ast.NumberLit:
		return n.Text
	case ast.BoolLit:
		return n.Text
	case ast.StringLit:
		return g.stringLiteralText(n)
	case ast.Call:
		return g.exprCall(n)
	case ast.MethodCall:
		return g.exprMethodCall(n)
	case ast.MemberAccess:
		return g.exprMemberAccess(n)
	case ast.ArrayAccess:
		return g.exprArrayAccess(n)
	case ast.BinaryOp:
		return g.exprBinaryOp(n)
	case ast.UnaryOp:
		return fmt.Sprintf("(%s%s)", n.Text, g.expr(n.Child(0)))
	case ast.PostInc:
		return fmt.Sprintf("(%s++)", g.expr(n.Child(0)))
	case ast.PostDec:
		return fmt.Sprintf("(%s--)", g.expr(n.Child(0)))
	case ast.Cast:
		return fmt.Sprintf("((%s)%s)", n.Text, g.expr(n.Child(0)))
	case ast.Ternary:
		return fmt.Sprintf("(%s ? %s : %s)", g.expr(n.Child(0)), g.expr(n.Child(1)), g.expr(n.Child(2)))
	case ast.Assign:
		return g.exprAssign(n)
	case ast.AggregateInit:
		return g.exprAggregateInit(n)
	default:
		return fmt.Sprintf("/* AST ERROR: unhandled kind %s */ 0", n.Kind)
	}
}

// stringLiteralText passes a char/string literal through verbatim, except
// for a char literal that lexer.IsWideChar reports as wide (its body is
// longer than one byte), which the runtime expects as a wide-char C
// literal (spec §4.1/§9 "Hex float and char-literal byte inspection").
func (g *Generator) stringLiteralText(n *ast.Node) string {
	if len(n.Text) >= 2 && n.Text[0] == '\'' && lexer.IsWideChar(n.Text) {
		return "L" + n.Text
	}
	return n.Text
}

func (g *Generator) exprCall(n *ast.Node) string {
	callee := n.Callee()
	name := g.mangleCallee(callee.Text)
	args := make([]string, 0, len(n.Children)-1)
	for _, a := range n.Children[1:] {
		args = append(args, g.expr(a))
	}
	return fmt.Sprintf("%s(%s)", name, strings.Join(args, ", "))
}

func (g *Generator) exprArrayAccess(n *ast.Node) string {
	base := n.Child(0)
	index := g.expr(n.Child(1))
	if g.receiverIsStringType(base) {
		return fmt.Sprintf("come_string_at(%s, %s)", g.expr(base), index)
	}
	return fmt.Sprintf("%s->items[%s]", g.expr(base), index)
}

// exprMemberAccess renders "." or "->" depending on whether the receiver
// expression's declared type is a pointer (spec §9: type-table-driven,
// replacing the original's hard-coded identifier list).
func (g *Generator) exprMemberAccess(n *ast.Node) string {
	receiver := n.Child(0)
	op := "."
	if g.receiverIsPointer(receiver) {
		op = "->"
	}
	return fmt.Sprintf("%s%s%s", g.expr(receiver), op, n.Text)
}

// receiverIsPointer classifies a receiver expression's pointer-ness by
// consulting the local-variable type table first; only when the
// expression is a bare identifier with no table entry does it fall back to
// the preserved array-receiver numeric-name heuristic (spec §9).
func (g *Generator) receiverIsPointer(n *ast.Node) bool {
	if n.Kind == ast.Ident {
		if typ, ok := g.lookupLocal(n.Text); ok {
			return isPointerType(typ)
		}
		return arrayReceiverHints[n.Text]
	}
	switch n.Kind {
	case ast.MemberAccess, ast.ArrayAccess:
		return true
	case ast.MethodCall:
		switch n.Text {
		case "accept", "new", "at", "byte_array":
			return true
		}
	}
	return false
}

func (g *Generator) receiverIsStringType(n *ast.Node) bool {
	if n.Kind == ast.Ident {
		typ, ok := g.lookupLocal(n.Text)
		return ok && isStringType(typ)
	}
	return false
}

func (g *Generator) exprBinaryOp(n *ast.Node) string {
	lhs, rhs := n.Child(0), n.Child(1)
	if (n.Text == "==" || n.Text == "!=") && g.isStringEquality(lhs, rhs) {
		cmp := fmt.Sprintf("come_string_cmp(%s, %s, 0)", g.expr(lhs), g.stringOperand(rhs))
		if n.Text == "==" {
			return fmt.Sprintf("(%s == 0)", cmp)
		}
		return fmt.Sprintf("(%s != 0)", cmp)
	}
	return fmt.Sprintf("(%s %s %s)", g.expr(lhs), n.Text, g.expr(rhs))
}

// isStringEquality decides whether a "==" / "!=" must lower to a runtime
// string comparison rather than a pointer comparison: true when either
// operand is string-typed (via the local table) or a string literal,
// unless either operand is the null literal (pointer comparison against
// null is always what's intended — spec §4.3's string equality rule).
func (g *Generator) isStringEquality(lhs, rhs *ast.Node) bool {
	if isNullLiteral(lhs) || isNullLiteral(rhs) {
		return false
	}
	return g.isStringOperand(lhs) || g.isStringOperand(rhs)
}

func isNullLiteral(n *ast.Node) bool {
	return n.Kind == ast.Ident && n.Text == "null"
}

func (g *Generator) isStringOperand(n *ast.Node) bool {
	if n.Kind == ast.StringLit {
		return true
	}
	if n.Kind == ast.Ident {
		typ, ok := g.lookupLocal(n.Text)
		return ok && isStringType(typ)
	}
	return false
}

// stringOperand renders the right-hand operand of a string "==" lowering,
// wrapping a bare literal/expression in a throwaway come_string_t the
// comparison can read (the original allocates these on the module context
// since they never need to outlive the comparison expression).
func (g *Generator) stringOperand(n *ast.Node) string {
	if n.Kind == ast.StringLit {
		return fmt.Sprintf("come_string_new(NULL, %s)", n.Text)
	}
	expr := g.expr(n)
	if g.isStringOperand(n) {
		return expr
	}
	return fmt.Sprintf("come_string_new(NULL, %s)", expr)
}

func (g *Generator) exprAssign(n *ast.Node) string {
	return fmt.Sprintf("%s %s %s", g.expr(n.Child(0)), n.Text, g.expr(n.Child(1)))
}

func (g *Generator) exprAggregateInit(n *ast.Node) string {
	elems := make([]string, len(n.Children))
	for i, c := range n.Children {
		if n.IsDesignated() {
			elems[i] = fmt.Sprintf("%s = %s", c.Child(0).Text, g.expr(c.Child(1)))
		} else {
			elems[i] = g.expr(c)
		}
	}
	return fmt.Sprintf("{%s}", strings.Join(elems, ", "))
}
