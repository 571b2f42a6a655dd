package parser

import (
	"fmt"

	"volt/internal/ast"
	"volt/internal/diag"
	"volt/internal/token"
)

// parseStmt разбирает один оператор: begin/end блок, if или присваивание.
func (p *Parser) parseStmt() *ast.Stmt {
	switch p.peek().Kind {
	case token.KwBegin:
		return p.parseBlock()
	case token.KwIf:
		return p.parseIf()
	case token.Ident:
		return p.parseAssign()
	default:
		got := p.peek()
		diag.ReportError(p.reporter, diag.SynUnexpectedToken,
			got.Span, fmt.Sprintf("expected statement, found %q", got.Text))
		p.syncTo(token.Semicolon, token.KwEnd, token.KwEndmodule)
		p.eat(token.Semicolon)
		return nil
	}
}

func (p *Parser) parseBlock() *ast.Stmt {
	start, _ := p.eat(token.KwBegin)
	stmt := &ast.Stmt{Kind: ast.StmtBlock, Span: start.Span}

	for !p.at(token.KwEnd) && !p.at(token.EOF) {
		child := p.parseStmt()
		if child == nil {
			continue
		}
		stmt.Block = append(stmt.Block, child)
		stmt.Span = stmt.Span.Cover(child.Span)
	}

	end, _ := p.expect(token.KwEnd, diag.SynUnexpectedToken)
	stmt.Span = stmt.Span.Cover(end.Span)
	return stmt
}

func (p *Parser) parseIf() *ast.Stmt {
	start, _ := p.eat(token.KwIf)
	stmt := &ast.Stmt{Kind: ast.StmtIf, Span: start.Span}

	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken); !ok {
		return nil
	}
	cond := p.parseExpr()
	if cond == nil {
		return nil
	}
	if _, ok := p.expect(token.RParen, diag.SynUnexpectedToken); !ok {
		return nil
	}

	then := p.parseStmt()
	if then == nil {
		return nil
	}
	stmt.If = ast.IfStmt{Cond: cond, Then: then}
	stmt.Span = stmt.Span.Cover(then.Span)

	if _, ok := p.eat(token.KwElse); ok {
		els := p.parseStmt()
		if els == nil {
			return nil
		}
		stmt.If.Else = els
		stmt.Span = stmt.Span.Cover(els.Span)
	}
	return stmt
}

func (p *Parser) parseAssign() *ast.Stmt {
	target := p.next() // Ident, проверен вызывающим
	stmt := &ast.Stmt{Kind: ast.StmtAssign, Span: target.Span}
	stmt.Assign.Target = target.Text
	stmt.Assign.TargetSpan = target.Span

	switch p.peek().Kind {
	case token.Assign:
		p.next()
	case token.LtAssign:
		p.next()
		stmt.Assign.NonBlocking = true
	default:
		got := p.peek()
		diag.ReportError(p.reporter, diag.SynUnexpectedToken,
			got.Span, fmt.Sprintf("expected '=' or '<=', found %q", got.Text))
		p.syncTo(token.Semicolon, token.KwEnd, token.KwEndmodule)
		p.eat(token.Semicolon)
		return nil
	}

	rhs := p.parseExpr()
	if rhs == nil {
		return nil
	}
	stmt.Assign.RHS = rhs
	stmt.Span = stmt.Span.Cover(rhs.Span)

	if _, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon); !ok {
		p.syncTo(token.Semicolon, token.KwEnd, token.KwEndmodule)
		p.eat(token.Semicolon)
	}
	return stmt
}
