package codegen

import (
	"strings"
	"testing"

	"github.com/comelang/come-go/internal/ast"
	"github.com/comelang/come-go/internal/lexer"
	"github.com/comelang/come-go/internal/parser"
)

func generateSource(t *testing.T, src string) string {
	t.Helper()
	p := parser.New(lexer.New(src))
	program := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	out, err := Generate(program, Options{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return out
}

func TestGenerate_MainEntryPoint(t *testing.T) {
	out := generateSource(t, `
module demo
int main() {
	return 0;
}
`)
	for _, want := range []string{
		"come_demo__main",
		"int main(int argc, char* argv[])",
		"mem_talloc_new_ctx(NULL)",
		"come_demo__init(ctx)",
		"come_demo__exit()",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("generated output missing %q:\n%s", want, out)
		}
	}
}

func TestGenerate_RuntimeModuleSkipsMain(t *testing.T) {
	out := generateSource(t, `
module std
void helper() {
}
`)
	if strings.Contains(out, "int main(") {
		t.Errorf("runtime module %q must not get a synthesised main():\n%s", "std", out)
	}
}

func TestGenerate_ModuleInitInjectsContext(t *testing.T) {
	out := generateSource(t, `
module demo
import other

module.init() {
	x = 1;
}
`)
	for _, want := range []string{
		"come_demo__module_init(TALLOC_CTX* ctx)",
		"COME_CTX = ctx;",
		"come_other__ctx = ctx;",
		"come_demo__module_init(ctx);",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestGenerate_PlainInitExitMangleToLocal(t *testing.T) {
	out := generateSource(t, `
module demo
void init() {
}
void exit() {
}
`)
	for _, want := range []string{
		"come_demo__init_local(void)",
		"come_demo__exit_local(void)",
		"come_demo__init_local();",
		"come_demo__exit_local();",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestGenerate_StructMethodMangling(t *testing.T) {
	out := generateSource(t, `
module demo
struct Rect {
	int width;
	int height;
}
int Rect.area(self) {
	return self.width * self.height;
}
`)
	for _, want := range []string{
		"struct Rect {",
		"come_demo__Rect__area",
		"self->width",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestGenerate_PrintfBoolSpecialization(t *testing.T) {
	out := generateSource(t, `
module demo
void report(bool ok) {
	std.out.printf("ok=%t\n", ok);
}
`)
	if !strings.Contains(out, "fprintf(stdout, \"ok=%s\\n\", (ok ? \"true\" : \"false\"))") {
		t.Errorf("printf bool specialization not applied:\n%s", out)
	}
}

func TestGenerate_ConstGroupEnumForm(t *testing.T) {
	out := generateSource(t, `
module demo
const (
	RED
	GREEN
	BLUE
)
`)
	if !strings.Contains(out, "enum { come_demo__RED, come_demo__GREEN, come_demo__BLUE };") {
		t.Errorf("enum-form const group not lowered correctly:\n%s", out)
	}
}

func TestGenerate_ConstGroupTypedForm(t *testing.T) {
	out := generateSource(t, `
module demo
const (
	MAX = 100
	NAME = "demo"
)
`)
	for _, want := range []string{
		"const int come_demo__MAX = 100;",
		`const char* come_demo__NAME = "demo";`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestGenerate_MultiReturnLowersToOutParameters(t *testing.T) {
	out := generateSource(t, `
module demo
(int string) divmod(int a, int b) {
	return a;
}
`)
	for _, want := range []string{
		"int come_demo__divmod(int a, int b, come_string_t** out1)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestMangle_PlainAndMethodAndBypass(t *testing.T) {
	g := newGenerator("demo", nil, false)
	tests := []struct {
		name string
		want string
	}{
		{"foo", "come_demo__foo"},
		{"init", "come_demo__init_local"},
		{"exit", "come_demo__exit_local"},
		{"Rect_area", "come_demo__Rect__area"},
		{"main", "come_demo__main"},
		{"come_string_new", "come_string_new"},
		{"std_out", "std_out"},
	}
	for _, tt := range tests {
		if got := g.mangle(tt.name); got != tt.want {
			t.Errorf("mangle(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestInferConstType(t *testing.T) {
	tests := []struct {
		kind ast.Kind
		text string
		want string
	}{
		{ast.StringLit, `"hi"`, "char*"},
		{ast.NumberLit, "42", "int"},
		{ast.NumberLit, "3.14", "float"},
		{ast.NumberLit, "42u", "unsigned int"},
		{ast.NumberLit, "42L", "long"},
		{ast.NumberLit, "42LL", "long long"},
		{ast.NumberLit, "42ULL", "unsigned long long"},
	}
	for _, tt := range tests {
		n := ast.New(tt.kind, tt.text, 1)
		if got := inferConstType(n); got != tt.want {
			t.Errorf("inferConstType(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestRewriteFormat(t *testing.T) {
	rewritten, specs := rewriteFormat(`"ok=%t n=%d s=%s%%"`)
	if rewritten != `"ok=%s n=%d s=%s%%"` {
		t.Errorf("rewriteFormat rewrote to %q", rewritten)
	}
	want := []byte{'t', 'd', 's'}
	if len(specs) != len(want) {
		t.Fatalf("specs = %v, want %v", specs, want)
	}
	for i := range want {
		if specs[i] != want[i] {
			t.Errorf("specs[%d] = %q, want %q", i, specs[i], want[i])
		}
	}
}
