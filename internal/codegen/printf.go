package codegen

import (
	"fmt"
	"strings"

	"github.com/comelang/come-go/internal/ast"
)

// printfCall recognises the three "std"-qualified printf forms
// ("std.printf", "std.out.printf", "std.err.printf") and lowers them to a
// libc printf/fprintf call, rewriting "%t"/"%T" format specifiers to "%s"
// with the corresponding bool argument wrapped in a string ternary, and
// wrapping string-typed arguments in a null-safe "->data" unwrap (spec
// §4.3 printf specialization). Any other method call returns ok=false so
// the caller falls through to the ordinary dispatch table.
func (g *Generator) printfCall(receiver *ast.Node, method string, args []*ast.Node) (string, bool) {
	if method != "printf" {
		return "", false
	}

	var stream string
	switch {
	case receiver.Kind == ast.Ident && receiver.Text == "std":
		stream = ""
	case receiver.Kind == ast.MemberAccess && receiver.Text == "out" &&
		receiver.Child(0).Kind == ast.Ident && receiver.Child(0).Text == "std":
		stream = "stdout"
	case receiver.Kind == ast.MemberAccess && receiver.Text == "err" &&
		receiver.Child(0).Kind == ast.Ident && receiver.Child(0).Text == "std":
		stream = "stderr"
	default:
		return "", false
	}

	if len(args) == 0 || args[0].Kind != ast.StringLit {
		// No literal format string to rewrite; pass the call through as-is.
		if stream == "" {
			return fmt.Sprintf("printf(%s)", g.renderArgs(args)), true
		}
		return fmt.Sprintf("fprintf(%s, %s)", stream, g.renderArgs(args)), true
	}

	rewritten, specs := rewriteFormat(args[0].Text)
	rest := args[1:]
	parts := make([]string, 0, len(rest)+1)
	parts = append(parts, rewritten)
	for i, a := range rest {
		var spec byte
		if i < len(specs) {
			spec = specs[i]
		}
		parts = append(parts, g.printfArg(a, spec))
	}

	if stream == "" {
		return fmt.Sprintf("printf(%s)", strings.Join(parts, ", ")), true
	}
	return fmt.Sprintf("fprintf(%s, %s)", stream, strings.Join(parts, ", ")), true
}

// rewriteFormat scans a quoted format-string literal's body for printf
// conversion specifiers, rewriting "%t"/"%T" (a source-language bool
// specifier the C printf family has no equivalent for) to "%s", and
// returns the specifier letter seen at each placeholder position in order
// (excluding a literal "%%").
func rewriteFormat(quoted string) (string, []byte) {
	if len(quoted) < 2 {
		return quoted, nil
	}
	body := quoted[1 : len(quoted)-1]
	var out strings.Builder
	var specs []byte
	out.WriteByte('"')
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '%' {
			out.WriteByte(c)
			continue
		}
		if i+1 < len(body) && body[i+1] == '%' {
			out.WriteString("%%")
			i++
			continue
		}
		j := i + 1
		for j < len(body) && strings.IndexByte("-+ #0123456789.", body[j]) >= 0 {
			j++
		}
		if j >= len(body) {
			out.WriteByte('%')
			continue
		}
		spec := body[j]
		specs = append(specs, spec)
		out.WriteByte('%')
		out.WriteString(body[i+1 : j])
		if spec == 't' || spec == 'T' {
			out.WriteByte('s')
		} else {
			out.WriteByte(spec)
		}
		i = j
	}
	out.WriteByte('"')
	return out.String(), specs
}

// printfArg renders one printf argument, wrapping it per its matched
// format specifier: a bool specifier becomes a string ternary, and a
// string specifier over a string-typed operand becomes a null-safe
// "->data" unwrap so a NULL come_string_t* prints as "NULL" rather than
// crashing.
func (g *Generator) printfArg(n *ast.Node, spec byte) string {
	expr := g.expr(n)
	switch spec {
	case 't':
		return fmt.Sprintf("(%s ? \"true\" : \"false\")", expr)
	case 'T':
		return fmt.Sprintf("(%s ? \"TRUE\" : \"FALSE\")", expr)
	case 's':
		if g.looksStringTyped(n) {
			return fmt.Sprintf("(%s ? %s->data : \"NULL\")", expr, expr)
		}
	}
	return expr
}

// looksStringTyped reports whether n is an expression likely to evaluate
// to a come_string_t* that needs the null-safe "->data" unwrap before
// reaching printf's "%s": a known string-typed local, a string-returning
// array access, or a method call (string methods like .upper()/.trim()
// return a fresh come_string_t*).
func (g *Generator) looksStringTyped(n *ast.Node) bool {
	if g.isStringOperand(n) {
		return true
	}
	switch n.Kind {
	case ast.ArrayAccess, ast.MethodCall:
		return true
	}
	return false
}
