package lexer

import (
	"fmt"

	"volt/internal/diag"
	"volt/internal/token"
)

// scanOperatorOrPunct сканирует операторы и пунктуацию.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Pos()
	ch := lx.cursor.Peek()

	mk := func(kind token.Kind) token.Token {
		return token.Token{
			Kind: kind,
			Span: lx.cursor.SpanFrom(start),
			Text: lx.cursor.Slice(start),
		}
	}

	switch ch {
	case '+':
		lx.cursor.Bump()
		return mk(token.Plus)
	case '=':
		lx.cursor.Bump()
		if lx.cursor.Peek() == '=' {
			lx.cursor.Bump()
			return mk(token.EqEq)
		}
		return mk(token.Assign)
	case '<':
		if lx.cursor.PeekAt(1) == '=' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			return mk(token.LtAssign)
		}
	case '&':
		if lx.cursor.PeekAt(1) == '&' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			return mk(token.AndAnd)
		}
	case '|':
		if lx.cursor.PeekAt(1) == '|' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			return mk(token.OrOr)
		}
	case '@':
		lx.cursor.Bump()
		return mk(token.At)
	case '*':
		lx.cursor.Bump()
		return mk(token.Star)
	case '(':
		lx.cursor.Bump()
		return mk(token.LParen)
	case ')':
		lx.cursor.Bump()
		return mk(token.RParen)
	case '[':
		lx.cursor.Bump()
		return mk(token.LBracket)
	case ']':
		lx.cursor.Bump()
		return mk(token.RBracket)
	case ':':
		lx.cursor.Bump()
		return mk(token.Colon)
	case ';':
		lx.cursor.Bump()
		return mk(token.Semicolon)
	case ',':
		lx.cursor.Bump()
		return mk(token.Comma)
	}

	// неизвестный символ: съедаем один байт, чтобы не зациклиться
	lx.cursor.Bump()
	tok := mk(token.Invalid)
	diag.ReportError(lx.opts.Reporter, diag.LexUnknownChar,
		tok.Span, fmt.Sprintf("unknown character %q", string(ch)))
	return tok
}
