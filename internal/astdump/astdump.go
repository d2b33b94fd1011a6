// Package astdump renders a parsed AST for debugging: JSON produces a JSON
// document built incrementally with sjson (and is typically queried back
// out with gjson in tests), Debug produces a kr/pretty human-readable dump.
// Neither sits on the translation path, and the come CLI exposes neither
// through a flag; both are developer-facing tooling only (SPEC_FULL.md §1
// ambient stack).
package astdump

import (
	"fmt"

	"github.com/kr/pretty"
	"github.com/tidwall/sjson"

	"github.com/comelang/come-go/internal/ast"
)

// JSON renders n as a JSON document: {"kind":"...","text":"...","line":N,
// "children":[...]}. Built with sjson.SetBytes rather than encoding/json so
// the node's Kind renders as its String() name instead of its raw integer
// tag, without needing a parallel MarshalJSON on ast.Node itself (ast.Node
// stays a plain data type, spec §3).
func JSON(n *ast.Node) (string, error) {
	data, err := appendNodeJSON(nil, "", n)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func appendNodeJSON(data []byte, prefix string, n *ast.Node) ([]byte, error) {
	var err error
	set := func(path, value string) {
		if err != nil {
			return
		}
		data, err = sjson.SetBytes(data, prefix+path, value)
	}
	setInt := func(path string, value int) {
		if err != nil {
			return
		}
		data, err = sjson.SetBytes(data, prefix+path, value)
	}

	if n == nil {
		set("kind", "nil")
		return data, err
	}

	set("kind", n.Kind.String())
	set("text", n.Text)
	setInt("line", n.Line)
	if err != nil {
		return nil, err
	}

	for i, child := range n.Children {
		childPrefix := fmt.Sprintf("%schildren.%d.", prefix, i)
		data, err = appendNodeJSON(data, childPrefix, child)
		if err != nil {
			return nil, err
		}
	}
	return data, nil
}

// Debug pretty-prints n with kr/pretty, a more compact human-readable view
// than the JSON form for interactive use at a terminal.
func Debug(n *ast.Node) string {
	return pretty.Sprint(n)
}
