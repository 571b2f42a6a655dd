package parser

import (
	"fmt"

	"volt/internal/ast"
	"volt/internal/diag"
	"volt/internal/token"
)

// binOpPrec возвращает приоритет бинарного оператора (0 — не оператор).
// || < && < == < +
func binOpPrec(kind token.Kind) (ast.BinOp, int) {
	switch kind {
	case token.OrOr:
		return ast.BinLor, 1
	case token.AndAnd:
		return ast.BinLand, 2
	case token.EqEq:
		return ast.BinEq, 3
	case token.Plus:
		return ast.BinAdd, 4
	default:
		return 0, 0
	}
}

// parseExpr разбирает выражение методом precedence climbing.
func (p *Parser) parseExpr() *ast.Expr {
	return p.parseBinary(1)
}

func (p *Parser) parseBinary(minPrec int) *ast.Expr {
	left := p.parsePrimary()
	if left == nil {
		return nil
	}

	for {
		op, prec := binOpPrec(p.peek().Kind)
		if prec == 0 || prec < minPrec {
			return left
		}
		p.next()

		right := p.parseBinary(prec + 1)
		if right == nil {
			return nil
		}

		node := &ast.Expr{
			Kind: ast.ExprBinary,
			Span: left.Span.Cover(right.Span),
			Binary: ast.BinaryExpr{
				Op:    op,
				Left:  left,
				Right: right,
			},
		}
		left = node
	}
}

func (p *Parser) parsePrimary() *ast.Expr {
	tok := p.peek()
	switch tok.Kind {
	case token.Ident:
		p.next()
		return &ast.Expr{Kind: ast.ExprIdent, Span: tok.Span, Ident: tok.Text}
	case token.IntLit:
		p.next()
		return &ast.Expr{Kind: ast.ExprIntLit, Span: tok.Span, Lit: ast.IntLit{Text: tok.Text}}
	case token.LParen:
		p.next()
		inner := p.parseExpr()
		if inner == nil {
			return nil
		}
		if _, ok := p.expect(token.RParen, diag.SynUnexpectedToken); !ok {
			return nil
		}
		return inner
	default:
		diag.ReportError(p.reporter, diag.SynUnexpectedToken,
			tok.Span, fmt.Sprintf("expected expression, found %q", tok.Text))
		return nil
	}
}
