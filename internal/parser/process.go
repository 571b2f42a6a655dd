package parser

import (
	"fmt"

	"volt/internal/ast"
	"volt/internal/diag"
	"volt/internal/token"
)

// parseProcess разбирает always-блок:
//
//	"always" "@" "(" senslist ")" stmt
func (p *Parser) parseProcess() *ast.Process {
	start, _ := p.eat(token.KwAlways)
	proc := &ast.Process{Span: start.Span}

	if _, ok := p.expect(token.At, diag.SynBadSensList); !ok {
		p.syncTo(token.KwAlways, token.KwEndmodule)
		return nil
	}
	if _, ok := p.expect(token.LParen, diag.SynBadSensList); !ok {
		p.syncTo(token.KwAlways, token.KwEndmodule)
		return nil
	}

	if _, ok := p.eat(token.Star); ok {
		proc.Star = true
	} else {
		for {
			sens, ok := p.parseSens()
			if !ok {
				p.syncTo(token.KwAlways, token.KwEndmodule)
				return nil
			}
			proc.Sens = append(proc.Sens, sens)
			if _, ok := p.eat(token.Comma); !ok {
				break
			}
		}
	}

	if _, ok := p.expect(token.RParen, diag.SynBadSensList); !ok {
		p.syncTo(token.KwAlways, token.KwEndmodule)
		return nil
	}

	body := p.parseStmt()
	if body == nil {
		return nil
	}
	proc.Body = body
	proc.Span = proc.Span.Cover(body.Span)
	return proc
}

// parseSens разбирает один элемент списка чувствительности.
func (p *Parser) parseSens() (ast.Sens, bool) {
	var sens ast.Sens

	switch {
	case p.at(token.KwPosedge):
		tok := p.next()
		sens.Edge = ast.EdgePos
		sens.Span = tok.Span
	case p.at(token.KwNegedge):
		tok := p.next()
		sens.Edge = ast.EdgeNeg
		sens.Span = tok.Span
	default:
		sens.Edge = ast.EdgeLevel
	}

	name := p.peek()
	if name.Kind != token.Ident {
		diag.ReportError(p.reporter, diag.SynBadSensList,
			name.Span, fmt.Sprintf("expected signal name in sensitivity list, found %q", name.Text))
		return sens, false
	}
	p.next()
	sens.Signal = name.Text
	sens.Span = sens.Span.Cover(name.Span)
	return sens, true
}
