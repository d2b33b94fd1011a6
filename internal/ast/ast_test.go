package ast

import "testing"

func TestKindString(t *testing.T) {
	if got := Function.String(); got != "Function" {
		t.Errorf("Function.String() = %q, want Function", got)
	}
	if got := Kind(999).String(); got != "Kind(999)" {
		t.Errorf("out-of-range Kind.String() = %q, want Kind(999)", got)
	}
}

func TestFunctionAccessors(t *testing.T) {
	ret := New(Ident, "int", 1)
	arg0 := NewArg("a", 1, "int")
	arg1 := NewArg("b", 1, "string")
	body := New(Block, "", 2)
	fn := NewFunction("add", 1, ret, []*Node{arg0, arg1}, body)

	if fn.ReturnType() != ret {
		t.Error("ReturnType() did not return the return-type node")
	}
	args := fn.Args()
	if len(args) != 2 || args[0] != arg0 || args[1] != arg1 {
		t.Errorf("Args() = %v, want [arg0, arg1]", args)
	}
	if fn.Body() != body {
		t.Error("Body() did not return the body node")
	}
}

func TestFunctionAccessors_NoArgs(t *testing.T) {
	ret := New(Ident, "void", 1)
	body := New(Block, "", 1)
	fn := NewFunction("noop", 1, ret, nil, body)
	if args := fn.Args(); len(args) != 0 {
		t.Errorf("Args() = %v, want empty", args)
	}
	if fn.Body() != body {
		t.Error("Body() did not return the body node")
	}
}

func TestChild_OutOfRangeReturnsErr(t *testing.T) {
	n := New(Block, "", 7)
	placeholder := n.Child(3)
	if !placeholder.IsErr() {
		t.Error("Child() past the end should return an Err placeholder")
	}
	if placeholder.Line != 7 {
		t.Errorf("placeholder.Line = %d, want 7 (inherited from parent)", placeholder.Line)
	}
}

func TestChild_NilNodeReturnsErr(t *testing.T) {
	var n *Node
	if !n.Child(0).IsErr() {
		t.Error("Child() on a nil node should return an Err placeholder")
	}
}

func TestIsErr(t *testing.T) {
	if !Err(5).IsErr() {
		t.Error("Err(5).IsErr() should be true")
	}
	if New(Ident, "x", 1).IsErr() {
		t.Error("a real Ident node should not report IsErr")
	}
}

func TestClone_DeepCopiesChildren(t *testing.T) {
	original := New(Block, "", 1, New(Ident, "x", 1), New(NumberLit, "1", 1))
	clone := original.Clone()

	if clone == original {
		t.Fatal("Clone() returned the same pointer")
	}
	if len(clone.Children) != len(original.Children) {
		t.Fatalf("clone has %d children, want %d", len(clone.Children), len(original.Children))
	}
	for i := range original.Children {
		if clone.Children[i] == original.Children[i] {
			t.Errorf("child %d shares a pointer with the original", i)
		}
		if clone.Children[i].Text != original.Children[i].Text {
			t.Errorf("child %d text = %q, want %q", i, clone.Children[i].Text, original.Children[i].Text)
		}
	}

	clone.Children[0].Text = "mutated"
	if original.Children[0].Text == "mutated" {
		t.Error("mutating the clone mutated the original")
	}
}

func TestClone_Nil(t *testing.T) {
	var n *Node
	if n.Clone() != nil {
		t.Error("Clone() of a nil node should be nil")
	}
}

func TestAggregateInit_IsDesignated(t *testing.T) {
	positional := NewAggregateInit(1, New(NumberLit, "1", 1), New(NumberLit, "2", 1))
	if positional.IsDesignated() {
		t.Error("all-positional aggregate reported as designated")
	}

	designated := NewAggregateInit(1,
		New(Assign, "", 1, New(Ident, ".x", 1), New(NumberLit, "1", 1)),
		New(Assign, "", 1, New(Ident, ".y", 1), New(NumberLit, "2", 1)),
	)
	if !designated.IsDesignated() {
		t.Error("all-designated aggregate not reported as designated")
	}

	mixed := NewAggregateInit(1,
		New(Assign, "", 1, New(Ident, ".x", 1), New(NumberLit, "1", 1)),
		New(NumberLit, "2", 1),
	)
	if mixed.IsDesignated() {
		t.Error("mixed positional/designated aggregate should not report IsDesignated")
	}

	empty := NewAggregateInit(1)
	if empty.IsDesignated() {
		t.Error("empty aggregate should not report IsDesignated")
	}
}

func TestMethodCall_ReceiverAndTrailingBlock(t *testing.T) {
	receiver := New(Ident, "self", 1)
	arg := New(NumberLit, "1", 1)
	trailing := New(Block, "", 1)
	mc := NewMethodCall("push", 1, receiver, []*Node{arg}, trailing)

	if mc.Receiver() != receiver {
		t.Error("Receiver() did not return the receiver node")
	}
	if len(mc.Children) != 3 {
		t.Fatalf("len(Children) = %d, want 3 (receiver, arg, trailing)", len(mc.Children))
	}
	if mc.Children[len(mc.Children)-1] != trailing {
		t.Error("trailing block should be the last child")
	}
}

func TestMethodCall_NoTrailingBlock(t *testing.T) {
	receiver := New(Ident, "self", 1)
	mc := NewMethodCall("len", 1, receiver, nil, nil)
	if len(mc.Children) != 1 {
		t.Errorf("len(Children) = %d, want 1 (receiver only)", len(mc.Children))
	}
}

func TestCall_Callee(t *testing.T) {
	callee := New(Ident, "foo", 1)
	arg := New(NumberLit, "1", 1)
	call := NewCall(1, callee, arg)
	if call.Callee() != callee {
		t.Error("Callee() did not return the callee node")
	}
	if len(call.Children) != 2 {
		t.Errorf("len(Children) = %d, want 2", len(call.Children))
	}
}

func TestVarDecl_InitializerAndDeclType(t *testing.T) {
	init := New(NumberLit, "0", 1)
	typ := New(Ident, "int", 1)
	decl := NewVarDecl("x", 1, init, typ)
	if decl.Initializer() != init {
		t.Error("Initializer() mismatch")
	}
	if decl.DeclType() != typ {
		t.Error("DeclType() mismatch")
	}
}

func TestNewArg_HasErrInitializer(t *testing.T) {
	arg := NewArg("x", 3, "int")
	if !arg.Initializer().IsErr() {
		t.Error("NewArg's initializer slot must be the Err placeholder, not a real value")
	}
	if arg.DeclType().Text != "int" {
		t.Errorf("DeclType().Text = %q, want int", arg.DeclType().Text)
	}
}
