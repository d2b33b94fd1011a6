// Package lexer splits come source text into a flat, line-numbered token
// list. The lexer never fails: an unrecognised byte is skipped and scanning
// continues, since diagnostics are the parser's job (spec §4.1 "Failure").
package lexer

import (
	"strings"

	"github.com/comelang/come-go/pkg/token"
)

// Lexer is a single-pass scanner over one file's source text.
type Lexer struct {
	input        string
	position     int  // start of current rune
	readPosition int  // next rune to read
	ch           byte // current byte, 0 at end of input
	line         int
}

// New creates a Lexer over input. Line numbers start at 1.
func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
}

func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

// Tokenize scans the entire input and returns its tokens, terminated by an
// explicit EOF token.
func Tokenize(input string) []token.Token {
	l := New(input)
	var tokens []token.Token
	for {
		tok := l.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens
		}
	}
}

// Next scans and returns the next token, advancing the lexer.
func (l *Lexer) Next() token.Token {
	l.skipTrivia()

	line := l.line
	switch {
	case l.ch == 0:
		return token.New(token.EOF, "", line)
	case isDigit(l.ch) || (l.ch == '.' && isDigit(l.peekChar())):
		return l.scanNumber(line)
	case isIdentStart(l.ch):
		return l.scanIdentOrKeyword(line)
	case l.ch == '"':
		return l.scanString(line)
	case l.ch == '\'':
		return l.scanChar(line)
	default:
		if tok, ok := l.scanOperator(line); ok {
			return tok
		}
		// Unrecognised byte: skip it and keep scanning (spec §4.1).
		l.readChar()
		return l.Next()
	}
}

func (l *Lexer) skipTrivia() {
	for {
		switch {
		case l.ch == '\n':
			l.line++
			l.readChar()
		case l.ch == ' ' || l.ch == '\t' || l.ch == '\r':
			l.readChar()
		case l.ch == '/' && l.peekChar() == '/':
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
		case l.ch == '/' && l.peekChar() == '*':
			l.readChar()
			l.readChar()
			for {
				if l.ch == 0 {
					return
				}
				if l.ch == '*' && l.peekChar() == '/' {
					l.readChar()
					l.readChar()
					break
				}
				if l.ch == '\n' {
					l.line++
				}
				l.readChar()
			}
		default:
			return
		}
	}
}

func isDigit(ch byte) bool      { return ch >= '0' && ch <= '9' }
func isHexDigit(ch byte) bool   { return isDigit(ch) || (ch|0x20 >= 'a' && ch|0x20 <= 'f') }
func isIdentStart(ch byte) bool { return ch == '_' || (ch|0x20 >= 'a' && ch|0x20 <= 'z') }
func isIdentPart(ch byte) bool  { return isIdentStart(ch) || isDigit(ch) }

func (l *Lexer) scanIdentOrKeyword(line int) token.Token {
	start := l.position
	for isIdentPart(l.ch) {
		l.readChar()
	}
	text := l.input[start:l.position]
	// Right-boundary check is implicit: LookupIdent only matches an entire
	// identifier run, so "important" never matches keyword "import" as a prefix.
	return token.New(token.LookupIdent(text), text, line)
}

func (l *Lexer) scanNumber(line int) token.Token {
	start := l.position
	if l.ch == '0' && (l.peekChar()|0x20) == 'x' {
		l.readChar()
		l.readChar()
		for isHexDigit(l.ch) || l.ch == '\'' {
			l.readChar()
		}
		return token.New(token.INT, stripSeparators(l.input[start:l.position]), line)
	}

	kind := token.INT
	for isDigit(l.ch) || l.ch == '\'' {
		l.readChar()
	}
	if l.ch == '.' && isDigit(l.peekChar()) {
		kind = token.FLOAT
		l.readChar()
		for isDigit(l.ch) || l.ch == '\'' {
			l.readChar()
		}
	}
	// Trailing type suffixes, preserved verbatim in Text.
	for strings.IndexByte("uUlLf", l.ch) >= 0 {
		if l.ch|0x20 == 'f' {
			kind = token.FLOAT
		}
		l.readChar()
	}
	return token.New(kind, stripSeparators(l.input[start:l.position]), line)
}

// stripSeparators removes digit-separator quotes from a numeric literal's
// text without touching any other character (so a trailing suffix survives).
func stripSeparators(s string) string {
	if !strings.ContainsRune(s, '\'') {
		return s
	}
	return strings.ReplaceAll(s, "'", "")
}

func (l *Lexer) scanString(line int) token.Token {
	start := l.position
	l.readChar() // opening quote
	for l.ch != '"' && l.ch != 0 {
		if l.ch == '\\' && l.peekChar() != 0 {
			l.readChar()
		}
		if l.ch == '\n' {
			l.line++
		}
		l.readChar()
	}
	if l.ch == '"' {
		l.readChar() // closing quote
	}
	return token.New(token.STRING, l.input[start:l.position], line)
}

// scanChar scans a character literal. Quotes are retained; whether the
// literal is narrow or wide is a parser-time decision made by scanning the
// unquoted bytes (spec §3 "multi-byte character literals are detected
// later").
func (l *Lexer) scanChar(line int) token.Token {
	start := l.position
	l.readChar() // opening quote
	for l.ch != '\'' && l.ch != 0 {
		if l.ch == '\\' && l.peekChar() != 0 {
			l.readChar()
		}
		l.readChar()
	}
	if l.ch == '\'' {
		l.readChar() // closing quote
	}
	return token.New(token.CHAR, l.input[start:l.position], line)
}

// multiCharOperators is tried longest-first so "<<=" beats "<<" beats "<".
var multiCharOperators = []struct {
	text string
	kind token.Kind
}{
	{"<<=", token.SHL_EQ}, {">>=", token.SHR_EQ},
	{"&&", token.AND_AND}, {"||", token.OR_OR},
	{"==", token.EQ}, {"!=", token.NOT_EQ},
	{"<=", token.LE}, {">=", token.GE},
	{"<<", token.SHL}, {">>", token.SHR},
	{"+=", token.PLUS_EQ}, {"-=", token.MINUS_EQ},
	{"*=", token.STAR_EQ}, {"/=", token.SLASH_EQ}, {"%=", token.PCT_EQ},
	{"&=", token.AMP_EQ}, {"|=", token.PIPE_EQ}, {"^=", token.CARET_EQ},
	{"++", token.INC}, {"--", token.DEC},
}

var singleCharOperators = map[byte]token.Kind{
	'+': token.PLUS, '-': token.MINUS, '*': token.STAR, '/': token.SLASH,
	'%': token.PERCENT, '=': token.ASSIGN, '<': token.LT, '>': token.GT,
	'!': token.NOT, '~': token.TILDE, '&': token.AMP, '|': token.PIPE,
	'^': token.CARET, '?': token.QUESTION,
	'(': token.LPAREN, ')': token.RPAREN, '{': token.LBRACE, '}': token.RBRACE,
	'[': token.LBRACK, ']': token.RBRACK, ',': token.COMMA, ';': token.SEMI,
	':': token.COLON, '.': token.DOT,
}

func (l *Lexer) scanOperator(line int) (token.Token, bool) {
	rest := l.input[l.position:]
	for _, op := range multiCharOperators {
		if strings.HasPrefix(rest, op.text) {
			for range op.text {
				l.readChar()
			}
			return token.New(op.kind, op.text, line), true
		}
	}
	if kind, ok := singleCharOperators[l.ch]; ok {
		text := string(l.ch)
		l.readChar()
		return token.New(kind, text, line), true
	}
	return token.Token{}, false
}
