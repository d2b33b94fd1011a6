package codegen

import (
	"fmt"
	"strings"

	"github.com/comelang/come-go/internal/ast"
)

// stringMethods, arrayMethods, and mapMethods are the (receiverKind,
// methodName) -> emission-rule table spec §9 calls for, replacing the
// original's ad hoc per-method-name cascade with a lookup keyed on the
// receiver's declared type rather than hard-coded identifier names.
var stringMethods = map[string]bool{
	"len": true, "size": true, "cmp": true, "casecmp": true,
	"chr": true, "rchr": true, "memchr": true, "find": true, "rfind": true,
	"count": true, "isdigit": true, "isalpha": true, "isalnum": true,
	"isspace": true, "isascii": true, "upper": true, "lower": true,
	"repeat": true, "replace": true, "trim": true, "ltrim": true, "rtrim": true,
	"at": true, "split": true, "split_n": true, "join": true, "substr": true,
	"regex": true, "regex_split": true, "regex_groups": true, "regex_replace": true,
	"chown": true, "sprintf": true, "to_byte_array": true, "tol": true,
}

var arrayMethods = map[string]bool{"resize": true, "slice": true, "len": true}

var mapMethods = map[string]bool{"put": true, "get": true, "remove": true, "len": true}

// exprMethodCall lowers a MethodCall node. A handful of receivers get
// special handling ahead of the generic dispatch table: "std"/"std.out"/
// "std.err" qualify calls into the standard printf family (with %t/%T
// rewriting, spec §4.3), and everything else is either a runtime
// string/array/map method or a user struct method reached through the
// mangled "come_<module>__<Struct>__<method>" convention.
func (g *Generator) exprMethodCall(n *ast.Node) string {
	receiver := n.Receiver()
	method := n.Text
	args := methodArgs(n)

	if call, ok := g.printfCall(receiver, method, args); ok {
		return call
	}

	typ := g.typeOf(receiver)
	base := baseType(typ)

	switch {
	case base == "map" && mapMethods[method]:
		return g.mapMethodCall(receiver, method, args)
	case isArrayType(typ) && arrayMethods[method]:
		// Checked ahead of the plain-string case: "string[]" strips to a
		// "string" base type too, but its resize/slice/len go through the
		// array macros, not come_string_*.
		return g.arrayMethodCall(receiver, typ, method, args)
	case typ == "string" && stringMethods[method]:
		return g.runtimeMethodCall("come_string_"+method, receiver, args)
	default:
		return g.structMethodCall(receiver, base, method, args)
	}
}

// methodArgs returns a MethodCall node's argument expressions, excluding
// the receiver (child 0) and a trailing-closure Block, if present — that
// block is a statement body, not an expression argument, and trailing
// closures are otherwise out of scope for this repository (no come source
// in the test corpus relies on them; spec §3 records the grammar slot but
// §1's Non-goals exclude a full semantic model for it).
func methodArgs(n *ast.Node) []*ast.Node {
	children := n.Children[1:]
	if len(children) > 0 && children[len(children)-1].Kind == ast.Block {
		children = children[:len(children)-1]
	}
	return children
}

func (g *Generator) renderArgs(args []*ast.Node) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = g.expr(a)
	}
	return strings.Join(parts, ", ")
}

func (g *Generator) runtimeMethodCall(fn string, receiver *ast.Node, args []*ast.Node) string {
	all := append([]string{g.expr(receiver)}, toExprStrings(g, args)...)
	return fmt.Sprintf("%s(%s)", fn, strings.Join(all, ", "))
}

func toExprStrings(g *Generator, args []*ast.Node) []string {
	out := make([]string, len(args))
	for i, a := range args {
		out[i] = g.expr(a)
	}
	return out
}

// mapMethodCall lowers the come_map_t* API: "put" takes the map by address
// (the runtime may need to grow/rehash it), everything else takes it by
// value (spec §6 runtime contract, come_map.h).
func (g *Generator) mapMethodCall(receiver *ast.Node, method string, args []*ast.Node) string {
	recv := g.expr(receiver)
	switch method {
	case "put":
		return fmt.Sprintf("come_map_put(&%s, %s)", recv, g.renderArgs(args))
	case "get":
		return fmt.Sprintf("come_map_get(%s, %s)", recv, g.renderArgs(args))
	case "remove":
		return fmt.Sprintf("come_map_remove(%s, %s)", recv, g.renderArgs(args))
	case "len":
		return fmt.Sprintf("come_map_len(%s)", recv)
	}
	return fmt.Sprintf("/* AST ERROR: unknown map method %q */ 0", method)
}

// arrayMethodCall lowers the three array-header operations through the
// runtime's _Generic macros (come_array_resize/slice/size), which dispatch
// on the header's C pointer type at compile time — codegen only needs to
// emit the macro call, not pick the specialization itself.
func (g *Generator) arrayMethodCall(receiver *ast.Node, typ, method string, args []*ast.Node) string {
	recv := g.expr(receiver)
	switch method {
	case "resize":
		return fmt.Sprintf("come_array_resize(%s, %s)", recv, g.renderArgs(args))
	case "slice":
		return fmt.Sprintf("come_array_slice(%s, %s)", recv, g.renderArgs(args))
	case "len":
		return fmt.Sprintf("come_array_size(%s)", recv)
	}
	return fmt.Sprintf("/* AST ERROR: unknown array method %q */ 0", method)
}

// structMethodCall handles everything else: a call like "self.SetName(n)"
// (or equivalently "rect.Area()") where the receiver's declared base type
// names a struct/union. The receiver becomes the leading "self" argument,
// passed by pointer (matching parseMethodParamList's always-pointer
// synthetic self parameter) whether or not the receiver expression is
// itself already a pointer.
func (g *Generator) structMethodCall(receiver *ast.Node, structType, method string, args []*ast.Node) string {
	name := fmt.Sprintf("come_%s__%s__%s", g.moduleName, structType, method)
	self := g.expr(receiver)
	if !g.receiverIsPointer(receiver) {
		self = "&" + self
	}
	all := append([]string{self}, toExprStrings(g, args)...)
	return fmt.Sprintf("%s(%s)", name, strings.Join(all, ", "))
}

// typeOf returns receiver's declared source type spelling where knowable
// (a bare identifier present in the local-variable table), else "".
func (g *Generator) typeOf(n *ast.Node) string {
	if n.Kind == ast.Ident {
		if typ, ok := g.lookupLocal(n.Text); ok {
			return typ
		}
	}
	return ""
}
