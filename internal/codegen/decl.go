package codegen

import (
	"fmt"
	"strings"

	"github.com/comelang/come-go/internal/ast"
)

// emitTypeAliases emits pass -1: a C typedef for every "alias N = struct M"
// / "alias N = union M" / "alias N = enum M" directive (spec §4.5). "FILE"
// is skipped verbatim — aliasing it would redeclare the standard library's
// own typedef and fail to compile (grounded on the original's literal
// skip-hack for the same name).
func (g *Generator) emitTypeAliases(program *ast.Node) {
	for _, n := range unwrapExports(program.Children) {
		if n.Kind != ast.TypeAlias {
			continue
		}
		target := n.Child(0).Text
		if target == "FILE" {
			continue
		}
		fmt.Fprintf(&g.buf, "typedef struct %s %s;\n", target, n.Text)
	}
	g.buf.WriteByte('\n')
}

// emitForwardStructs emits pass 0: an opaque forward typedef for every
// struct/union declared at top level, guarded by seenStructs so a type
// declared more than once at top level is forward-typedef'd only once.
func (g *Generator) emitForwardStructs(program *ast.Node) {
	for _, n := range unwrapExports(program.Children) {
		if n.Kind != ast.StructDecl && n.Kind != ast.UnionDecl {
			continue
		}
		if g.seenStructs[n.Text] {
			continue
		}
		g.seenStructs[n.Text] = true
		kw := "struct"
		if n.Kind == ast.UnionDecl {
			kw = "union"
		}
		fmt.Fprintf(&g.buf, "typedef %s %s %s;\n", kw, n.Text, n.Text)
	}
	g.buf.WriteByte('\n')
}

// emitForwardPrototypes emits pass 1: an extern prototype for every
// top-level function ahead of its (possibly much later) full definition,
// so mutually-recursive functions and forward references compile without
// requiring the source to declare functions in call order. "main" is
// skipped — it never appears as "come_<module>__main" until emitted inline
// by emitEntryPoint/emitFunction, and C requires exactly one declaration of
// the real main().
func (g *Generator) emitForwardPrototypes(program *ast.Node) {
	for _, n := range unwrapExports(program.Children) {
		if n.Kind != ast.Function || n.Text == "main" {
			continue
		}
		fmt.Fprintf(&g.buf, "%s;\n", g.functionSignature(n))
	}
	g.buf.WriteByte('\n')
}

// functionSignature renders a function node's C declarator — return type,
// mangled name, parameter list — shared by the forward-prototype pass and
// the full-definition pass so the two never drift apart.
func (g *Generator) functionSignature(n *ast.Node) string {
	name := g.mangle(n.Text)
	returnSpelling := n.ReturnType().Text

	var params []string
	for _, arg := range n.Args() {
		params = append(params, g.cType(arg.DeclType().Text)+" "+arg.Text)
	}

	retType := g.cType(returnSpelling)
	if isMultiReturn(returnSpelling) {
		types := splitMultiReturn(returnSpelling)
		if len(types) > 0 {
			retType = g.cType(types[0])
			for i, extra := range types[1:] {
				params = append(params, fmt.Sprintf("%s* out%d", g.cType(extra), i+1))
			}
		}
	}

	if n.Text == "module_init" {
		params = append([]string{"TALLOC_CTX* ctx"}, params...)
	}
	if len(params) == 0 {
		params = append(params, "void")
	}
	return fmt.Sprintf("%s %s(%s)", retType, name, strings.Join(params, ", "))
}

// emitFunction emits a top-level function's full C definition. A function
// literally named "module_init" gets the injected TALLOC_CTX* parameter
// and a body preamble propagating it into this module's own context global
// and every import's context global, ahead of the user's own statements
// (spec §4.2/§4.3's module.init() sugar; see declarations.go's parser-side
// half of this contract).
func (g *Generator) emitFunction(n *ast.Node) {
	g.resetLocals()
	for _, arg := range n.Args() {
		g.declareLocal(arg.Text, arg.DeclType().Text)
	}

	fmt.Fprintf(&g.buf, "%s {\n", g.functionSignature(n))
	if n.Text == "module_init" {
		fmt.Fprintf(&g.buf, "\tCOME_CTX = ctx;\n")
		for _, imp := range g.imports {
			fmt.Fprintf(&g.buf, "\tcome_%s__ctx = ctx;\n", imp)
		}
	}
	g.emitBlockStatements(n.Body())
	fmt.Fprint(&g.buf, "}\n\n")
}

// emitStructBody emits a struct/union's full field list. The tag itself was
// already forward-typedef'd by emitForwardStructs, so this just fills in
// "struct Name { fields };" at the node's natural source position.
func (g *Generator) emitStructBody(n *ast.Node) {
	kw := "struct"
	if n.Kind == ast.UnionDecl {
		kw = "union"
	}
	fmt.Fprintf(&g.buf, "%s %s {\n", kw, n.Text)
	for _, field := range n.Children {
		fmt.Fprintf(&g.buf, "\t%s %s;\n", g.cType(field.DeclType().Text), field.Text)
	}
	fmt.Fprintf(&g.buf, "};\n\n")
}

// emitConstGroup lowers a "const ( … )" group. A group where every entry is
// bare (no "= value") lowers to a single anonymous C enum; any other group
// lowers to individually typed const declarations, each one's C type
// inferred from its initializer's lexical shape (inferConstType, grounded
// on codegen.c's infer_const_type).
func (g *Generator) emitConstGroup(n *ast.Node) {
	if isEnumGroup(n) {
		g.enumCounter++
		names := make([]string, len(n.Children))
		for i, entry := range n.Children {
			names[i] = g.mangle(entry.Text)
		}
		fmt.Fprintf(&g.buf, "enum { %s };\n\n", strings.Join(names, ", "))
		return
	}
	for _, entry := range n.Children {
		name := g.mangle(entry.Text)
		if len(entry.Children) == 0 {
			fmt.Fprintf(&g.buf, "const int %s;\n", name)
			continue
		}
		value := entry.Child(0)
		cTy := inferConstType(value)
		fmt.Fprintf(&g.buf, "const %s %s = %s;\n", cTy, name, g.expr(value))
	}
	g.buf.WriteByte('\n')
}

func isEnumGroup(n *ast.Node) bool {
	if len(n.Children) == 0 {
		return false
	}
	for _, entry := range n.Children {
		if len(entry.Children) != 0 {
			return false
		}
	}
	return true
}

// inferConstType mirrors infer_const_type: a string literal is "char*", a
// non-numeric literal is "int", a numeric literal containing '.' (or, when
// it is not a 0x hex literal, 'f'/'F') is "float", and otherwise the
// literal's unsigned/long suffix combination picks among the usual C
// integer widths.
func inferConstType(n *ast.Node) string {
	if n.Kind == ast.StringLit {
		return "char*"
	}
	if n.Kind != ast.NumberLit {
		return "int"
	}
	text := n.Text
	lower := strings.ToLower(text)
	isHex := strings.HasPrefix(lower, "0x")
	if strings.ContainsAny(text, ".") || (!isHex && strings.ContainsAny(text, "fF")) {
		return "float"
	}
	unsigned := strings.Contains(lower, "u")
	longLong := strings.Count(lower, "l") >= 2
	long := strings.Contains(lower, "l") && !longLong
	switch {
	case unsigned && longLong:
		return "unsigned long long"
	case unsigned && long:
		return "unsigned long"
	case unsigned:
		return "unsigned int"
	case longLong:
		return "long long"
	case long:
		return "long"
	default:
		return "int"
	}
}

// unwrapExports filters out "export" markers: the parser emits an empty
// Export node as a standalone sibling immediately before the declaration it
// modifies (declarations.go), rather than wrapping it as a child, so
// dropping Export nodes is all a declaration-only pass needs to do (spec
// §9: export is parsing-only, affecting no emission).
func unwrapExports(nodes []*ast.Node) []*ast.Node {
	out := make([]*ast.Node, 0, len(nodes))
	for _, n := range nodes {
		if n.Kind == ast.Export {
			continue
		}
		out = append(out, n)
	}
	return out
}
