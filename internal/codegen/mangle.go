package codegen

import (
	"strings"
	"unicode"
)

// mangle computes the C symbol for a top-level declaration named name,
// declared in module moduleName. Three shapes exist (grounded on the
// original codegen's mangling switch):
//
//   - a plain top-level function literally named "init" or "exit" mangles to
//     "..._init_local"/"..._exit_local" so the synthesised init/exit chain
//     (see emitInitExitChain) can call it without colliding with the chain
//     function's own name;
//   - a struct-method name (produced by the parser as "Struct_method",
//     requiring an uppercase first letter and never "main") mangles to
//     "come_<module>__<Struct>__<method>";
//   - everything else mangles to "come_<module>__<name>".
//
// Calls to a name that already starts with "come_" or "std_" bypass
// mangling entirely — those are runtime/import-qualified references the
// parser or an earlier pass already resolved to a final symbol.
func (g *Generator) mangle(name string) string {
	if strings.HasPrefix(name, "come_") || strings.HasPrefix(name, "std_") {
		return name
	}
	switch name {
	case "init":
		return g.modulePrefix() + "init_local"
	case "exit":
		return g.modulePrefix() + "exit_local"
	}
	if structName, method, ok := splitMethodName(name); ok {
		return g.modulePrefix() + structName + "__" + method
	}
	return g.modulePrefix() + name
}

func (g *Generator) modulePrefix() string {
	return "come_" + g.moduleName + "__"
}

// splitMethodName recognises the parser's "Struct_method" mangling: the
// first underscore-separated segment must start with an uppercase letter
// (a struct name) and the whole name must not be "main" (spec §4.3 mangling
// table — "main" never gets struct-split even if it happens to contain an
// underscore).
func splitMethodName(name string) (structName, method string, ok bool) {
	if name == "main" {
		return "", "", false
	}
	idx := strings.IndexByte(name, '_')
	if idx <= 0 || idx == len(name)-1 {
		return "", "", false
	}
	first := rune(name[0])
	if !unicode.IsUpper(first) {
		return "", "", false
	}
	return name[:idx], name[idx+1:], true
}

// mangleCallee mangles a call target the same way mangle does, except it
// additionally recognises "module.name" qualified references produced by
// import-qualified calls: these mangle against the *imported* module, not
// the current one.
func (g *Generator) mangleCallee(name string) string {
	if dot := strings.IndexByte(name, '.'); dot > 0 {
		module, rest := name[:dot], name[dot+1:]
		if g.isImport(module) {
			return "come_" + module + "__" + rest
		}
	}
	return g.mangle(name)
}

func (g *Generator) isImport(name string) bool {
	for _, imp := range g.imports {
		if imp == name {
			return true
		}
	}
	return false
}
