package lexer

import (
	"volt/internal/token"
)

// scanIdentOrKeyword сканирует идентификатор и проверяет, не ключевое ли это слово.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Pos()
	for !lx.cursor.EOF() && isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	text := lx.cursor.Slice(start)
	return token.Token{
		Kind: token.LookupKeyword(text),
		Span: lx.cursor.SpanFrom(start),
		Text: text,
	}
}
