package lexer

import (
	"volt/internal/diag"
	"volt/internal/token"
)

// scanNumber сканирует целочисленный литерал.
// Поддерживаются обе формы Verilog:
//
//	42              — обычное десятичное число
//	4'b10_1x        — размерный литерал <width>'<base><digits>
//
// Основание: b/B, d/D, h/H, o/O. В цифрах допускаются x/X, z/Z и '_'.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Pos()
	for !lx.cursor.EOF() && isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	// Размерная форма: за шириной идёт апостроф и основание
	if lx.cursor.Peek() == '\'' {
		lx.cursor.Bump()
		base := lx.cursor.Peek()
		if !isBaseByte(base) {
			diag.ReportError(lx.opts.Reporter, diag.LexBadLiteral,
				lx.cursor.SpanFrom(start), "expected base (b/d/h/o) after ' in sized literal")
			return token.Token{
				Kind: token.Invalid,
				Span: lx.cursor.SpanFrom(start),
				Text: lx.cursor.Slice(start),
			}
		}
		lx.cursor.Bump()
		nDigits := 0
		for !lx.cursor.EOF() && isBasedDigit(lx.cursor.Peek()) {
			if lx.cursor.Peek() != '_' {
				nDigits++
			}
			lx.cursor.Bump()
		}
		if nDigits == 0 {
			diag.ReportError(lx.opts.Reporter, diag.LexBadLiteral,
				lx.cursor.SpanFrom(start), "sized literal has no digits")
			return token.Token{
				Kind: token.Invalid,
				Span: lx.cursor.SpanFrom(start),
				Text: lx.cursor.Slice(start),
			}
		}
	}

	return token.Token{
		Kind: token.IntLit,
		Span: lx.cursor.SpanFrom(start),
		Text: lx.cursor.Slice(start),
	}
}

func isBaseByte(b byte) bool {
	switch b {
	case 'b', 'B', 'd', 'D', 'h', 'H', 'o', 'O':
		return true
	default:
		return false
	}
}

// isBasedDigit допускает цифры всех оснований; проверка на соответствие
// основанию происходит при разборе значения в элаборации.
func isBasedDigit(b byte) bool {
	switch {
	case b >= '0' && b <= '9':
		return true
	case b >= 'a' && b <= 'f', b >= 'A' && b <= 'F':
		return true
	case b == 'x' || b == 'X' || b == 'z' || b == 'Z' || b == '_':
		return true
	default:
		return false
	}
}
