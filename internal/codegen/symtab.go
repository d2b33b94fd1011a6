package codegen

import "strings"

// Generator holds everything that the original C codegen kept as
// process-wide mutable globals. Spec §5's re-architecture confines that
// state to a value owned by one compilation: a fresh Generator per
// translation unit means two units being compiled independently (e.g. by a
// future multi-file driver) never need a global reset between them, the
// same pattern internal/parser.Parser already follows for its alias table.
type Generator struct {
	moduleName string
	imports    []string

	// seenStructs guards the forward-typedef pass (pass 0) against emitting
	// the same "typedef struct X X;" twice when the same struct/union name is
	// declared more than once at top level.
	seenStructs map[string]bool

	// enumCounter counts the bare (all-children-empty) const groups emitted
	// so far. Each such group is emitted as an anonymous C enum, so the
	// count never appears in the output.
	enumCounter int

	// locals is the current function's local-variable type table: declared
	// name -> source type spelling ("string", "int", "Rect*", "string[]", …).
	// It is reset at the start of every function body (emitFunction)
	// rather than accumulating across the whole translation unit, matching
	// the original's per-function reset of its local symbol table.
	locals map[string]string

	lineDirectives bool
	lastEmittedLn  int

	buf strings.Builder
}

func newGenerator(moduleName string, imports []string, lineDirectives bool) *Generator {
	return &Generator{
		moduleName:     moduleName,
		imports:        imports,
		seenStructs:    make(map[string]bool),
		locals:         make(map[string]string),
		lineDirectives: lineDirectives,
	}
}

// resetLocals clears the local-variable type table at the start of a new
// function body.
func (g *Generator) resetLocals() {
	g.locals = make(map[string]string)
}

// declareLocal records name's source-level type spelling so later
// expressions referencing name can be classified (pointer vs. value,
// string vs. scalar) without the hard-coded identifier-name heuristic the
// original used (spec §9 re-architecture note).
func (g *Generator) declareLocal(name, typ string) {
	g.locals[name] = typ
}

// lookupLocal returns the declared type spelling for name and whether one
// was found.
func (g *Generator) lookupLocal(name string) (string, bool) {
	t, ok := g.locals[name]
	return t, ok
}
