package parser

import "github.com/comelang/come-go/pkg/token"

// Binding power table (spec §4.2), low to high. Ternary binds loosest and is
// right-associative; everything else here is left-associative.
const (
	precLowest = iota
	precTernary
	precOrOr
	precAndAnd
	precEquality
	precRelational
	precAdditive
	precMultiplicative
)

var binaryPrecedence = map[token.Kind]int{
	token.OR_OR:    precOrOr,
	token.AND_AND:  precAndAnd,
	token.EQ:       precEquality,
	token.NOT_EQ:   precEquality,
	token.LT:       precRelational,
	token.GT:       precRelational,
	token.LE:       precRelational,
	token.GE:       precRelational,
	token.PLUS:     precAdditive,
	token.MINUS:    precAdditive,
	token.STAR:     precMultiplicative,
	token.SLASH:    precMultiplicative,
	token.PERCENT:  precMultiplicative,
}

func precedenceOf(k token.Kind) int {
	if p, ok := binaryPrecedence[k]; ok {
		return p
	}
	return precLowest
}

// isUnaryPrefix reports whether k can start a unary prefix expression:
// "!", "~", "*", "-", plus the lexer's "++" and "--" tokens (parseUnary
// reads a prefix "--" as two "-"). All of them bind tighter than any binary
// operator.
func isUnaryPrefix(k token.Kind) bool {
	switch k {
	case token.NOT, token.TILDE, token.STAR, token.MINUS, token.INC, token.DEC:
		return true
	}
	return false
}
