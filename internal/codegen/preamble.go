package codegen

import (
	"fmt"

	"github.com/comelang/come-go/internal/ast"
)

// writePreamble emits the fixed header list (which includes <errno.h>; no
// errno/strerror shim functions are emitted), three helper macros
// (come_eprintf, come_free, come_net_hton), the
// per-module TALLOC_CTX global and its COME_CTX alias macro, and an extern
// forward-declaration of each import's own context global — grounded on
// generate_c_from_ast's preamble block in the original codegen.
func (g *Generator) writePreamble() {
	fmt.Fprint(&g.buf, `#include <stdio.h>
#include <string.h>
#include <stdbool.h>
#include <stdint.h>
#include <stdlib.h>
#include <math.h>
#include <errno.h>
#include <arpa/inet.h>
#include "come_string.h"
#include "come_array.h"
#include "come_map.h"
#include "come_types.h"
#include "mem/talloc.h"

#define come_eprintf(ctx, fmt, ...) fprintf(stderr, fmt, ##__VA_ARGS__)
#define come_free(ptr) mem_talloc_free(ptr)
#define come_net_hton(x) htonl(x)

`)

	for _, imp := range g.imports {
		fmt.Fprintf(&g.buf, "extern TALLOC_CTX* come_%s__ctx;\n", imp)
		fmt.Fprintf(&g.buf, "extern void come_%s__init(TALLOC_CTX* ctx);\n", imp)
		fmt.Fprintf(&g.buf, "extern void come_%s__exit(void);\n", imp)
	}
	if len(g.imports) > 0 {
		g.buf.WriteByte('\n')
	}

	fmt.Fprintf(&g.buf, "#define COME_CTX come_%s__ctx\n", g.moduleName)
	fmt.Fprintf(&g.buf, "TALLOC_CTX* come_%s__ctx = NULL;\n\n", g.moduleName)
}

// emitEntryPoint synthesises a C main() for a non-runtime module, creating
// the top-level talloc arena, calling the module's init/exit chain around
// the user's "main" function, and adapting argc/argv into a come string
// list only when the user's main actually declares a parameter (spec §6).
func (g *Generator) emitEntryPoint(program *ast.Node) {
	userMain, hasParams := findUserMain(program)
	if userMain == nil {
		return
	}

	fmt.Fprint(&g.buf, "\nint main(int argc, char* argv[]) {\n")
	fmt.Fprint(&g.buf, "\tTALLOC_CTX* ctx = mem_talloc_new_ctx(NULL);\n")
	fmt.Fprint(&g.buf, "\tif (!ctx) { fprintf(stderr, \"out of memory\\n\"); return 1; }\n\n")

	fmt.Fprintf(&g.buf, "\tcome_%s__init(ctx);\n", g.moduleName)

	result := "0"
	if hasParams {
		fmt.Fprintf(&g.buf, "\tcome_string_list_t* args = come_string_list_from_argv(ctx, argc, argv);\n")
		if userMain.ReturnType().Text != "void" {
			result = fmt.Sprintf("come_%s__main(args)", g.moduleName)
		} else {
			fmt.Fprintf(&g.buf, "\tcome_%s__main(args);\n", g.moduleName)
		}
	} else {
		if userMain.ReturnType().Text != "void" {
			result = fmt.Sprintf("come_%s__main()", g.moduleName)
		} else {
			fmt.Fprintf(&g.buf, "\tcome_%s__main();\n", g.moduleName)
		}
	}

	if result != "0" {
		fmt.Fprintf(&g.buf, "\tint result = %s;\n", result)
	}

	fmt.Fprintf(&g.buf, "\tcome_%s__exit();\n", g.moduleName)
	fmt.Fprint(&g.buf, "\tmem_talloc_free(ctx);\n")
	if result != "0" {
		fmt.Fprint(&g.buf, "\treturn result;\n")
	} else {
		fmt.Fprint(&g.buf, "\treturn 0;\n")
	}
	fmt.Fprint(&g.buf, "}\n")
}

func findUserMain(program *ast.Node) (fn *ast.Node, hasParams bool) {
	for _, n := range unwrapExports(program.Children) {
		if n.Kind == ast.Function && n.Text == "main" {
			return n, len(n.Args()) > 0
		}
	}
	return nil, false
}
