package token

import (
	"volt/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsLiteral reports whether the token is an integer literal.
func (t Token) IsLiteral() bool { return t.Kind == IntLit }

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwModule, KwEndmodule, KwInput, KwOutput, KwReg, KwWire,
		KwBegin, KwEnd, KwAlways, KwIf, KwElse, KwPosedge, KwNegedge:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// IsPunctOrOp reports whether the token is a punctuation or operator.
func (t Token) IsPunctOrOp() bool {
	switch t.Kind {
	case Plus, EqEq, AndAnd, OrOr, Assign, LtAssign, At, Star,
		LParen, RParen, LBracket, RBracket, Colon, Semicolon, Comma:
		return true
	default:
		return false
	}
}
