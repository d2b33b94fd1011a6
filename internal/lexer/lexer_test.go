package lexer

import (
	"testing"

	"github.com/comelang/come-go/pkg/token"
)

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestTokenize_KeywordsAndIdents(t *testing.T) {
	toks := Tokenize("module demo import foo struct Rect")
	want := []token.Kind{
		token.MODULE, token.IDENT, token.IMPORT, token.IDENT,
		token.STRUCT, token.IDENT, token.EOF,
	}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d kind = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestTokenize_IdentNeverMatchesKeywordPrefix(t *testing.T) {
	toks := Tokenize("int internal important")
	if toks[0].Kind != token.IDENT {
		t.Errorf("toks[0].Kind = %s, want IDENT (\"int\" is not a keyword)", toks[0].Kind)
	}
	if toks[1].Kind != token.IDENT || toks[1].Text != "internal" {
		t.Errorf("toks[1] = %+v, want IDENT \"internal\"", toks[1])
	}
	if toks[2].Kind != token.IDENT || toks[2].Text != "important" {
		t.Errorf("toks[2] = %+v, want IDENT \"important\" (not keyword \"import\")", toks[2])
	}
}

func TestTokenize_NumberSuffixesPreserved(t *testing.T) {
	tests := []struct {
		src  string
		kind token.Kind
		text string
	}{
		{"42", token.INT, "42"},
		{"42u", token.INT, "42u"},
		{"42UL", token.INT, "42UL"},
		{"42LL", token.INT, "42LL"},
		{"3.14", token.FLOAT, "3.14"},
		{"3.14f", token.FLOAT, "3.14f"},
		{"0xFF", token.INT, "0xFF"},
		{"1'000'000", token.INT, "1000000"},
	}
	for _, tt := range tests {
		toks := Tokenize(tt.src)
		if toks[0].Kind != tt.kind {
			t.Errorf("Tokenize(%q)[0].Kind = %s, want %s", tt.src, toks[0].Kind, tt.kind)
		}
		if toks[0].Text != tt.text {
			t.Errorf("Tokenize(%q)[0].Text = %q, want %q", tt.src, toks[0].Text, tt.text)
		}
	}
}

func TestTokenize_StringAndCharLiterals(t *testing.T) {
	toks := Tokenize(`"hello\n" 'x'`)
	if toks[0].Kind != token.STRING || toks[0].Text != `"hello\n"` {
		t.Errorf("toks[0] = %+v, want STRING %q", toks[0], `"hello\n"`)
	}
	if toks[1].Kind != token.CHAR || toks[1].Text != "'x'" {
		t.Errorf("toks[1] = %+v, want CHAR 'x'", toks[1])
	}
}

func TestTokenize_MultiCharOperatorsBeatPrefixes(t *testing.T) {
	toks := Tokenize("<<= << < <=")
	want := []token.Kind{token.SHL_EQ, token.SHL, token.LT, token.LE, token.EOF}
	got := kinds(toks)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestTokenize_CommentsAreSkipped(t *testing.T) {
	toks := Tokenize("x // trailing comment\ny /* block\ncomment */ z")
	want := []string{"x", "y", "z"}
	if len(toks) != len(want)+1 {
		t.Fatalf("got %d tokens, want %d (+EOF): %v", len(toks), len(want)+1, toks)
	}
	for i, w := range want {
		if toks[i].Text != w {
			t.Errorf("toks[%d].Text = %q, want %q", i, toks[i].Text, w)
		}
	}
}

func TestTokenize_LineNumbersTrackNewlines(t *testing.T) {
	toks := Tokenize("a\nb\n\nc")
	if toks[0].Line != 1 {
		t.Errorf("a.Line = %d, want 1", toks[0].Line)
	}
	if toks[1].Line != 2 {
		t.Errorf("b.Line = %d, want 2", toks[1].Line)
	}
	if toks[2].Line != 4 {
		t.Errorf("c.Line = %d, want 4", toks[2].Line)
	}
}

func TestTokenize_IllegalByteIsSkipped(t *testing.T) {
	toks := Tokenize("a @ b")
	want := []string{"a", "b"}
	if len(toks) != len(want)+1 {
		t.Fatalf("got %d tokens, want %d (+EOF): %v", len(toks), len(want)+1, toks)
	}
	for i, w := range want {
		if toks[i].Text != w {
			t.Errorf("toks[%d].Text = %q, want %q", i, toks[i].Text, w)
		}
	}
}

func TestTokenize_EmptyInputIsJustEOF(t *testing.T) {
	toks := Tokenize("")
	if len(toks) != 1 || toks[0].Kind != token.EOF {
		t.Errorf("Tokenize(\"\") = %v, want [EOF]", toks)
	}
}
