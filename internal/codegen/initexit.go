package codegen

import (
	"fmt"

	"github.com/comelang/come-go/internal/ast"
)

// emitInitExitChain synthesises come_<module>__init/__exit, the two
// functions every other module's init/exit (and the entry point, for a
// non-runtime module) actually calls. Each is idempotency-guarded with a
// static bool, matching the original's "static bool initialized"/"static
// bool exited" pattern. __init runs imports in declaration order then this
// module's own module_init/local-init; __exit runs local-exit first, then
// imports in reverse order — the mirror image, so a module never observes
// an import it has already torn down (spec §4.2, §4.3).
func (g *Generator) emitInitExitChain(program *ast.Node) {
	decls := unwrapExports(program.Children)
	hasModuleInit := false
	hasLocalInit := false
	hasLocalExit := false
	for _, n := range decls {
		if n.Kind != ast.Function {
			continue
		}
		switch n.Text {
		case "module_init":
			hasModuleInit = true
		case "init":
			hasLocalInit = true
		case "exit":
			hasLocalExit = true
		}
	}

	fmt.Fprintf(&g.buf, "void come_%s__init(TALLOC_CTX* ctx) {\n", g.moduleName)
	fmt.Fprint(&g.buf, "\tstatic bool initialized = false;\n")
	fmt.Fprint(&g.buf, "\tif (initialized) return;\n")
	fmt.Fprint(&g.buf, "\tinitialized = true;\n")
	for _, imp := range g.imports {
		fmt.Fprintf(&g.buf, "\tcome_%s__init(ctx);\n", imp)
	}
	if hasModuleInit {
		fmt.Fprintf(&g.buf, "\t%s(ctx);\n", g.mangle("module_init"))
	}
	if hasLocalInit {
		fmt.Fprintf(&g.buf, "\t%s();\n", g.mangle("init"))
	}
	fmt.Fprint(&g.buf, "}\n\n")

	fmt.Fprintf(&g.buf, "void come_%s__exit(void) {\n", g.moduleName)
	fmt.Fprint(&g.buf, "\tstatic bool exited = false;\n")
	fmt.Fprint(&g.buf, "\tif (exited) return;\n")
	fmt.Fprint(&g.buf, "\texited = true;\n")
	if hasLocalExit {
		fmt.Fprintf(&g.buf, "\t%s();\n", g.mangle("exit"))
	}
	for i := len(g.imports) - 1; i >= 0; i-- {
		fmt.Fprintf(&g.buf, "\tcome_%s__exit();\n", g.imports[i])
	}
	fmt.Fprint(&g.buf, "}\n\n")
}
