package codegen

import (
	"fmt"

	"github.com/comelang/come-go/internal/ast"
)

// emitBlockStatements emits every statement of a Block node, without
// wrapping braces — callers that need a nested scope open/close their own
// "{"/"}" around the call (emitFunction's body, or emitStatement's own
// Block case for a nested block).
func (g *Generator) emitBlockStatements(block *ast.Node) {
	if block == nil {
		return
	}
	for _, stmt := range block.Children {
		g.emitStatement(stmt)
	}
}

// emitStatement lowers one statement-level AST node (the Go analogue of
// generate_node's big switch in the original codegen).
func (g *Generator) emitStatement(n *ast.Node) {
	if n == nil || n.IsErr() {
		fmt.Fprint(&g.buf, "\t/* AST ERROR: NULL NODE */\n")
		return
	}
	g.emitLineDirective(n.Line)

	switch n.Kind {
	case ast.Block:
		fmt.Fprint(&g.buf, "\t{\n")
		g.emitBlockStatements(n)
		fmt.Fprint(&g.buf, "\t}\n")
	case ast.VarDecl:
		g.emitVarDecl(n)
	case ast.If:
		g.emitIf(n)
	case ast.While:
		fmt.Fprintf(&g.buf, "\twhile (%s) {\n", g.expr(n.Child(0)))
		g.emitStatement(n.Child(1))
		fmt.Fprint(&g.buf, "\t}\n")
	case ast.DoWhile:
		fmt.Fprint(&g.buf, "\tdo {\n")
		g.emitStatement(n.Child(0))
		fmt.Fprintf(&g.buf, "\t} while (%s);\n", g.expr(n.Child(1)))
	case ast.For:
		g.emitFor(n)
	case ast.Switch:
		g.emitSwitch(n)
	case ast.Return:
		if len(n.Children) == 0 {
			fmt.Fprint(&g.buf, "\treturn;\n")
		} else {
			fmt.Fprintf(&g.buf, "\treturn %s;\n", g.expr(n.Child(0)))
		}
	case ast.Break:
		fmt.Fprint(&g.buf, "\tbreak;\n")
	case ast.Continue:
		fmt.Fprint(&g.buf, "\tcontinue;\n")
	case ast.Assign:
		fmt.Fprintf(&g.buf, "\t%s;\n", g.expr(n))
	default:
		// Any other node appearing in statement position is a bare
		// expression statement (a call, a method call, ++/--, …).
		fmt.Fprintf(&g.buf, "\t%s;\n", g.expr(n))
	}
}

func (g *Generator) emitIf(n *ast.Node) {
	fmt.Fprintf(&g.buf, "\tif (%s) {\n", g.expr(n.Child(0)))
	g.emitStatement(n.Child(1))
	fmt.Fprint(&g.buf, "\t}\n")
	if len(n.Children) > 2 {
		fmt.Fprint(&g.buf, "\telse {\n")
		g.emitStatement(n.Child(2))
		fmt.Fprint(&g.buf, "\t}\n")
	}
}

func (g *Generator) emitFor(n *ast.Node) {
	init := g.forClauseText(n.Child(0))
	cond := g.expr(n.Child(1))
	post := g.forClauseText(n.Child(2))
	fmt.Fprintf(&g.buf, "\tfor (%s; %s; %s) {\n", init, cond, post)
	g.emitStatement(n.Child(3))
	fmt.Fprint(&g.buf, "\t}\n")
}

// forClauseText renders a for-loop's init/post clause inline (no trailing
// semicolon or statement-level formatting), since "for(;;)" clauses are
// C expressions, not statements, even when the init clause is a var-decl.
func (g *Generator) forClauseText(n *ast.Node) string {
	if n == nil || n.Kind == ast.Block {
		return ""
	}
	if n.Kind == ast.VarDecl {
		g.declareLocal(n.Text, n.DeclType().Text)
		return fmt.Sprintf("%s %s = %s", g.cType(n.DeclType().Text), n.Text, g.expr(n.Initializer()))
	}
	return g.expr(n)
}

func (g *Generator) emitSwitch(n *ast.Node) {
	fmt.Fprintf(&g.buf, "\tswitch (%s) {\n", g.expr(n.Child(0)))
	for _, c := range n.Children[1:] {
		switch c.Kind {
		case ast.Case:
			fmt.Fprintf(&g.buf, "\tcase %s:\n", g.expr(c.Child(0)))
			for _, stmt := range c.Children[1:] {
				g.emitStatement(stmt)
			}
			fmt.Fprint(&g.buf, "\t\tbreak;\n")
		case ast.Default:
			fmt.Fprint(&g.buf, "\tdefault:\n")
			for _, stmt := range c.Children {
				g.emitStatement(stmt)
			}
			fmt.Fprint(&g.buf, "\t\tbreak;\n")
		}
	}
	fmt.Fprint(&g.buf, "\t}\n")
}

// emitVarDecl lowers a local variable declaration per the source type's
// entry in the original's declaration table: string/string[]/bool/var get
// their own constructor-call shape, arrays get arena-allocated headers, and
// everything else (scalars, structs) is a plain "T v = expr;" with a couple
// of small collapsing rules (spec §4.3 var-decl lowering table).
func (g *Generator) emitVarDecl(n *ast.Node) {
	name := n.Text
	typ := n.DeclType().Text
	init := n.Initializer()
	g.declareLocal(name, typ)

	switch {
	case typ == "string":
		fmt.Fprintf(&g.buf, "\tcome_string_t* %s = %s;\n", name, g.stringInitExpr(init))
	case typ == "string[]":
		fmt.Fprintf(&g.buf, "\tcome_string_list_t* %s = %s;\n", name, g.stringListInitExpr(init))
		fmt.Fprintf(&g.buf, "\t(void)%s;\n", name)
	case typ == "bool":
		fmt.Fprintf(&g.buf, "\tbool %s = %s;\n", name, g.expr(init))
	case typ == "var":
		if init.Kind == ast.StringLit {
			fmt.Fprintf(&g.buf, "\tcome_string_t* %s = %s;\n", name, g.stringInitExpr(init))
			g.declareLocal(name, "string")
		} else {
			fmt.Fprintf(&g.buf, "\t__auto_type %s = %s;\n", name, g.expr(init))
		}
	case isArrayType(typ):
		g.emitArrayVarDecl(name, typ, init)
	default:
		cTy := typ
		if cTy == "var" {
			cTy = "int"
		} else {
			cTy = g.cType(typ)
		}
		if init.Kind == ast.NumberLit && init.Text == "0" && !isScalarType(typ) {
			fmt.Fprintf(&g.buf, "\t%s %s = {0};\n", cTy, name)
		} else {
			fmt.Fprintf(&g.buf, "\t%s %s = %s;\n", cTy, name, g.expr(init))
		}
	}
}

func isScalarType(typ string) bool {
	switch typ {
	case "int", "float", "bool", "byte", "long", "double", "char":
		return true
	}
	return isPointerType(typ)
}

// stringInitExpr wraps a StringLit initializer in the runtime constructor;
// any other expression is assumed already string-typed (e.g. a call
// returning come_string_t*) and passed through unchanged.
func (g *Generator) stringInitExpr(init *ast.Node) string {
	if init.Kind == ast.StringLit {
		return fmt.Sprintf("come_string_new(COME_CTX, %s)", init.Text)
	}
	return g.expr(init)
}

// stringListInitExpr recognises the "__ARGS__" sentinel the parser
// produces for a "string[] args = __ARGS__;" declaration and rewrites it to
// the runtime's argv adapter (spec §6); every other initializer passes
// through.
func (g *Generator) stringListInitExpr(init *ast.Node) string {
	if init.Kind == ast.Ident && init.Text == "__ARGS__" {
		return "come_string_list_from_argv(COME_CTX, argc, argv)"
	}
	return g.expr(init)
}

// emitArrayVarDecl lowers "T[N] v = {...}" / "T[] v = ...": a fixed-size
// array with an aggregate initializer is arena-allocated and memcpy'd in
// from a temporary C array; a fixed-size array with no initializer is
// zeroed; a dynamic array with no initializer gets a header-only
// allocation.
func (g *Generator) emitArrayVarDecl(name, typ string, init *ast.Node) {
	elem, bound := arrayBounds(typ)
	headerType := g.cElementPointer(elem)
	elemCType := g.cType(elem)

	if init.Kind == ast.AggregateInit {
		count := len(init.Children)
		tmp := name + "__init"
		fmt.Fprintf(&g.buf, "\t%s %s[] = %s;\n", elemCType, tmp, g.expr(init))
		fmt.Fprintf(&g.buf, "\t%s %s = come_array_alloc(COME_CTX, sizeof(%s), %d);\n", headerType, name, elemCType, count)
		fmt.Fprintf(&g.buf, "\tmemcpy(%s->items, %s, sizeof(%s));\n", name, tmp, tmp)
		fmt.Fprintf(&g.buf, "\t%s->count = %d;\n", name, count)
		return
	}

	if bound != "" {
		fmt.Fprintf(&g.buf, "\t%s %s = come_array_alloc(COME_CTX, sizeof(%s), %s);\n", headerType, name, elemCType, bound)
		fmt.Fprintf(&g.buf, "\tmemset(%s->items, 0, sizeof(%s) * %s);\n", name, elemCType, bound)
		fmt.Fprintf(&g.buf, "\t%s->count = %s;\n", name, bound)
		return
	}

	fmt.Fprintf(&g.buf, "\t%s %s = come_array_alloc(COME_CTX, sizeof(%s), 0);\n", headerType, name, elemCType)
}
