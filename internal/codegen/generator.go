// Package codegen lowers a parsed come.Program into portable C source text
// (spec §4.3, §4.4, §6). It owns no process-wide state: every translation
// unit gets a fresh *Generator (spec §5), mirroring internal/parser's
// per-unit Parser value.
package codegen

import (
	"fmt"

	"github.com/comelang/come-go/internal/ast"
)

// Options configures a single Generate call.
type Options struct {
	// LineDirectives enables "#line N" emission before statements whose
	// source line differs from the previously emitted one (spec §4.3,
	// "#line directive emission").
	LineDirectives bool
}

// runtimeModules are translation units that implement the runtime itself;
// they never get a synthesised C main() (spec §6 entry-point rule).
var runtimeModules = map[string]bool{
	"std": true, "string": true, "array": true, "map": true,
}

func isRuntimeModule(name string) bool { return runtimeModules[name] }

// Generate lowers program to a complete C translation unit: the fixed
// preamble, the four-phase forward-declaration sequence (type aliases,
// struct typedefs, function prototypes, then full definitions in source
// order), the synthesised module init/exit chain, and — unless this module
// is one of the runtime's own base modules — a C main() (spec §6).
func Generate(program *ast.Node, opts Options) (string, error) {
	if program == nil || program.Kind != ast.Program {
		return "", fmt.Errorf("codegen: expected a Program node")
	}

	g := newGenerator(program.Text, collectImports(program), opts.LineDirectives)

	g.writePreamble()

	g.emitTypeAliases(program)
	g.emitForwardStructs(program)
	g.emitForwardPrototypes(program)

	for _, decl := range program.Children {
		g.emitTopLevelDecl(decl)
	}

	g.emitInitExitChain(program)
	if !isRuntimeModule(g.moduleName) {
		g.emitEntryPoint(program)
	}

	return g.buf.String(), nil
}

func collectImports(program *ast.Node) []string {
	var imports []string
	for _, child := range program.Children {
		if child.Kind == ast.Import {
			imports = append(imports, child.Text)
		}
	}
	return imports
}

// emitTopLevelDecl dispatches a single top-level node to its emission
// routine. Import nodes produce nothing directly (they're consumed by the
// preamble's extern block and the init/exit chain); everything else emits
// its full definition, since the forward-declaration passes already ran.
func (g *Generator) emitTopLevelDecl(n *ast.Node) {
	switch n.Kind {
	case ast.Import, ast.Export:
		// Import nodes feed the preamble's extern block and the init/exit
		// chain (collectImports, emitInitExitChain), not their own emission.
		// Export markers are empty siblings (declarations.go); the
		// declaration they annotate is its own entry in this same loop.
		return
	case ast.Function:
		g.emitFunction(n)
	case ast.StructDecl, ast.UnionDecl:
		g.emitStructBody(n)
	case ast.ConstGroup:
		g.emitConstGroup(n)
	case ast.TypeAlias:
		// handled in emitTypeAliases
	}
}

func (g *Generator) line(n *ast.Node) int {
	if n == nil {
		return 0
	}
	return n.Line
}

// emitLineDirective writes "#line N" before a statement whose source line
// differs from the last one emitted, when line directives are enabled
// (spec §4.3).
func (g *Generator) emitLineDirective(line int) {
	if !g.lineDirectives || line == 0 || line == g.lastEmittedLn {
		return
	}
	g.lastEmittedLn = line
	fmt.Fprintf(&g.buf, "#line %d\n", line)
}
