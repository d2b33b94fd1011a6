package parser

import (
	"github.com/comelang/come-go/internal/ast"
	"github.com/comelang/come-go/pkg/token"
)

// parseTopLevel parses one top-level declaration. It returns the AST nodes
// it produced (zero, one, or several — e.g. "import (a, b, c)" yields three
// Import nodes, a hoisted struct method yields one node alongside the
// struct's own), or signals a "module <name>" directive via isModuleDecl.
func (p *Parser) parseTopLevel() (decls []*ast.Node, isModuleDecl bool, moduleName string) {
	switch p.cur.Kind {
	case token.MODULE:
		return p.parseModuleDirective()
	case token.IMPORT:
		return p.parseImport(), false, ""
	case token.ALIAS:
		if node := p.parseAlias(); node != nil {
			return []*ast.Node{node}, false, ""
		}
		return nil, false, ""
	case token.CONST:
		return []*ast.Node{p.parseConstGroup()}, false, ""
	case token.STRUCT, token.UNION:
		structNode, hoisted := p.parseStructOrUnion()
		return append([]*ast.Node{structNode}, hoisted...), false, ""
	case token.EXPORT:
		// spec §9 open question: export is a parsing-only marker, affecting
		// no emission. Consume it and parse whatever it modifies normally,
		// emitting an empty Export node as a sibling just before the result
		// so the marker survives for completeness.
		line := p.advance().Line
		inner, moduleDecl, name := p.parseTopLevel()
		if moduleDecl {
			return nil, true, name
		}
		return append([]*ast.Node{ast.New(ast.Export, "", line)}, inner...), false, ""
	default:
		return []*ast.Node{p.parseTopLevelFunction()}, false, ""
	}
}

// parseModuleDirective handles "module <name>" and the "module.init() {…}"
// sugar. The sugar takes no user-written parameters — codegen injects the
// arena-context parameter and the per-import context-propagation preamble
// when it sees a function literally named "module_init". A plain top-level
// "init"/"exit" function is a different thing: it mangles to "_local" so the
// synthesised init/exit chain can call it (spec §4.2, §4.3).
func (p *Parser) parseModuleDirective() ([]*ast.Node, bool, string) {
	p.advance() // 'module'
	if p.curIs(token.DOT) {
		p.advance()
		line := p.cur.Line
		p.expect(token.IDENT) // 'init'
		p.expect(token.LPAREN)
		p.expect(token.RPAREN)
		body := p.parseBlock()
		fn := ast.NewFunction("module_init", line, ast.New(ast.Ident, "void", line), nil, body)
		return []*ast.Node{fn}, false, ""
	}
	nameTok := p.expect(token.IDENT)
	p.consumeSemi()
	return nil, true, nameTok.Text
}

// parseImport handles "import name" and "import (a, b, c)".
func (p *Parser) parseImport() []*ast.Node {
	line := p.advance().Line // 'import'
	var names []string
	if p.curIs(token.LPAREN) {
		p.advance()
		for !p.curIs(token.RPAREN) && !p.curIs(token.EOF) {
			names = append(names, p.expect(token.IDENT).Text)
			if p.curIs(token.COMMA) {
				p.advance()
				continue
			}
			break
		}
		p.expect(token.RPAREN)
	} else {
		names = append(names, p.expect(token.IDENT).Text)
	}
	p.consumeSemi()

	nodes := make([]*ast.Node, len(names))
	for i, name := range names {
		nodes[i] = ast.New(ast.Import, name, line)
	}
	return nodes
}

// parseConstGroup handles "const ( … )". An entry with no "= value" is the
// bare enum-style form; codegen lowers an all-bare group to a single C enum
// and every other group to individually typed consts (spec §4.2, §4.3).
func (p *Parser) parseConstGroup() *ast.Node {
	line := p.advance().Line // 'const'
	p.expect(token.LPAREN)
	var entries []*ast.Node
	for !p.curIs(token.RPAREN) && !p.curIs(token.EOF) {
		before := p.pos
		nameTok := p.expect(token.IDENT)
		var children []*ast.Node
		if p.curIs(token.ASSIGN) {
			p.advance()
			children = append(children, p.ParseExpression())
		}
		entries = append(entries, ast.New(ast.ConstDecl, nameTok.Text, nameTok.Line, children...))
		if p.curIs(token.COMMA) || p.curIs(token.SEMI) {
			p.advance()
		}
		if p.pos == before {
			p.advance()
		}
	}
	p.expect(token.RPAREN)
	p.consumeSemi()
	return ast.New(ast.ConstGroup, "", line, entries...)
}

// parseTopLevelFunction parses "RetType? Name(args) { body }", where Name
// may be dotted ("Struct.method") and RetType may be omitted (defaulting per
// spec §4.2: "int" for "main", "void" otherwise) or parenthesised for a
// multi-return signature.
func (p *Parser) parseTopLevelFunction() *ast.Node {
	line := p.cur.Line
	retTypeText := p.tryParseLeadingReturnType()

	nameTok := p.expect(token.IDENT)
	structName := nameTok.Text
	methodName := ""
	isMethod := false
	if p.curIs(token.DOT) {
		p.advance()
		methodName = p.expect(token.IDENT).Text
		isMethod = true
	}

	var params []*ast.Node
	mangledName := structName
	if isMethod {
		params = p.parseMethodParamList(structName)
		mangledName = structName + "_" + methodName
	} else {
		params = p.parseParamList()
	}

	body := p.parseBlock()

	if retTypeText == "" {
		if mangledName == "main" {
			retTypeText = "int"
		} else {
			retTypeText = "void"
		}
	}
	return ast.NewFunction(mangledName, line, ast.New(ast.Ident, retTypeText, line), params, body)
}

// tryParseLeadingReturnType speculatively consumes a return-type spelling
// preceding the function name, restoring the cursor if what follows isn't
// actually a name (spec §9's multi-return form, plus the plain "Type Name"
// shape).
func (p *Parser) tryParseLeadingReturnType() string {
	if p.curIs(token.LPAREN) {
		return p.captureParenthesizedText()
	}
	if p.curIs(token.IDENT) && p.peekIs(token.IDENT) {
		text, _ := p.parseTypeSpelling()
		return text
	}
	if p.curIs(token.IDENT) && p.peekIs(token.STAR) {
		saved := p.pos
		text, _ := p.parseTypeSpelling()
		if p.curIs(token.IDENT) {
			return text
		}
		p.restoreTo(saved)
	}
	return ""
}

func (p *Parser) parseParamList() []*ast.Node {
	p.expect(token.LPAREN)
	var params []*ast.Node
	for !p.curIs(token.RPAREN) && !p.curIs(token.EOF) {
		typeText, line := p.parseTypeSpelling()
		nameTok := p.expect(token.IDENT)
		params = append(params, ast.NewArg(nameTok.Text, line, typeText))
		if p.curIs(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	p.expect(token.RPAREN)
	return params
}
