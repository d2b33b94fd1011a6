package codegen

import "strings"

// arrayReceiverHints is the preserved fallback from the original
// is_pointer_expression heuristic (spec §9 Open Questions: "preserved
// verbatim as a fallback"). It is consulted only when the local-variable
// type table has no entry for an identifier — typically a function
// argument whose declared type didn't make it into the table (e.g. an
// external/forward-declared symbol) — never to override a known type.
var arrayReceiverHints = map[string]bool{
	"scaled": true,
	"dyn":    true,
	"buf":    true,
	"arr":    true,
	"args":   true,
}

// isPointerType reports whether a source type spelling denotes a C pointer:
// an explicit "*" suffix, or one of the runtime's own always-boxed value
// types (string, string[], map), which come.generated C as pointers.
func isPointerType(typ string) bool {
	if strings.HasSuffix(typ, "*") {
		return true
	}
	switch baseType(typ) {
	case "string", "map":
		return true
	}
	if strings.HasSuffix(typ, "[]") {
		return true
	}
	return false
}

// baseType strips pointer/array suffixes from a source type spelling,
// e.g. "Rect*" -> "Rect", "string[]" -> "string", "int[8]" -> "int".
func baseType(typ string) string {
	t := typ
	for strings.HasSuffix(t, "*") {
		t = t[:len(t)-1]
	}
	if i := strings.IndexByte(t, '['); i >= 0 {
		t = t[:i]
	}
	return t
}

// isArrayType reports whether a source type spelling is a fixed or dynamic
// array ("T[N]" or "T[]").
func isArrayType(typ string) bool {
	return strings.Contains(typ, "[") && strings.HasSuffix(typ, "]")
}

// arrayBounds splits "T[N]"/"T[]" into its element type and bound text
// ("" for a dynamic array).
func arrayBounds(typ string) (elem, bound string) {
	i := strings.IndexByte(typ, '[')
	if i < 0 {
		return typ, ""
	}
	return typ[:i], typ[i+1 : len(typ)-1]
}

// cType translates a source type spelling to the C spelling codegen emits,
// mapping the small set of built-in names the runtime headers define
// (spec §6 runtime contract) and leaving user struct/union names and
// pointer/array suffixes otherwise untouched.
func (g *Generator) cType(typ string) string {
	switch typ {
	case "", "var":
		return "__auto_type"
	case "string":
		return "come_string_t*"
	case "string[]":
		return "come_string_list_t*"
	case "map":
		return "come_map_t*"
	case "bool":
		return "bool"
	case "byte":
		return "uint8_t"
	}
	if isArrayType(typ) {
		elem, bound := arrayBounds(typ)
		if bound == "" {
			return g.cElementPointer(elem)
		}
		return g.cType(elem)
	}
	return typ
}

// cElementPointer returns the runtime's dynamic-array header type for elem,
// falling back to a plain pointer for user-defined element types (the
// runtime only ships int/byte/string specializations).
func (g *Generator) cElementPointer(elem string) string {
	switch elem {
	case "int":
		return "come_int_array_t*"
	case "byte":
		return "come_byte_array_t*"
	case "string":
		return "come_string_list_t*"
	default:
		return elem + "*"
	}
}

// isStringType reports whether typ denotes the source "string" type
// (used by == / != lowering and printf specialization to decide whether an
// operand needs library comparison / null-safe unwrapping).
func isStringType(typ string) bool {
	return typ == "string"
}

// isMultiReturn reports whether a return-type spelling denotes a
// multi-value return: a parenthesized, space-separated type list captured
// verbatim by the parser's captureParenthesizedText (spec §9 Open
// Questions: "a return type whose first character is '(' denotes a
// multi-value return").
func isMultiReturn(typ string) bool {
	return strings.HasPrefix(typ, "(")
}

// splitMultiReturn parses a "(T0 T1 … Tn)" return-type spelling into its
// individual type spellings, in declaration order. The first becomes the C
// function's return value; the rest are lowered to trailing "T*"
// out-parameters (the out-parameters resolution of the multi-return open
// question — no new runtime surface, since the runtime contract has no
// tuple type).
func splitMultiReturn(typ string) []string {
	inner := strings.TrimSuffix(strings.TrimPrefix(typ, "("), ")")
	return strings.Fields(inner)
}
