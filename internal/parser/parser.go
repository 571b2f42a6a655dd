package parser

import (
	"fmt"

	"volt/internal/ast"
	"volt/internal/diag"
	"volt/internal/lexer"
	"volt/internal/source"
	"volt/internal/token"
)

type Options struct {
	Reporter diag.Reporter
}

type Result struct {
	Module *ast.Module
	Bag    *diag.Bag
}

// Parser — состояние парсера на один файл.
type Parser struct {
	lx       *lexer.Lexer
	fs       *source.FileSet
	opts     Options
	reporter diag.Reporter
	lastSpan source.Span // span последнего съеденного токена для лучшей диагностики
}

// ParseFile — входная точка для разбора одного файла.
// Требует уже созданный lexer (на основе source.File).
func ParseFile(fs *source.FileSet, lx *lexer.Lexer, opts Options) Result {
	bag := diag.NewBag(64)
	reporter := opts.Reporter
	if reporter == nil {
		reporter = diag.BagReporter{Bag: bag}
	}
	p := Parser{
		lx:       lx,
		fs:       fs,
		opts:     opts,
		reporter: reporter,
		lastSpan: lx.EmptySpan(),
	}

	mod := p.parseModule()
	return Result{Module: mod, Bag: bag}
}

func (p *Parser) next() token.Token {
	tok := p.lx.Next()
	p.lastSpan = tok.Span
	return tok
}

func (p *Parser) peek() token.Token {
	return p.lx.Peek()
}

// at reports whether the lookahead token has the given kind.
func (p *Parser) at(kind token.Kind) bool {
	return p.peek().Kind == kind
}

// eat потребляет токен, если он ожидаемого вида.
func (p *Parser) eat(kind token.Kind) (token.Token, bool) {
	if p.at(kind) {
		return p.next(), true
	}
	return token.Token{}, false
}

// expect потребляет токен ожидаемого вида или репортит диагностику.
func (p *Parser) expect(kind token.Kind, code diag.Code) (token.Token, bool) {
	if tok, ok := p.eat(kind); ok {
		return tok, true
	}
	got := p.peek()
	diag.ReportError(p.reporter, code,
		got.Span, fmt.Sprintf("expected %q, found %q", kind.String(), got.Text))
	return got, false
}

// syncTo пропускает токены до одного из указанных видов (или EOF).
func (p *Parser) syncTo(kinds ...token.Kind) {
	for {
		tok := p.peek()
		if tok.Kind == token.EOF {
			return
		}
		for _, k := range kinds {
			if tok.Kind == k {
				return
			}
		}
		p.next()
	}
}

// parseModule разбирает единственное определение модуля в файле.
func (p *Parser) parseModule() *ast.Module {
	start, ok := p.eat(token.KwModule)
	if !ok {
		diag.ReportError(p.reporter, diag.SynNoModule,
			p.peek().Span, "no module definition found")
		return nil
	}

	name, ok := p.expect(token.Ident, diag.SynExpectIdent)
	if !ok {
		return nil
	}

	mod := &ast.Module{
		Name: name.Text,
		Span: start.Span,
	}

	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken); !ok {
		return nil
	}
	p.parsePortList(mod)
	if _, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon); !ok {
		p.syncTo(token.KwAlways, token.KwEndmodule)
	}

	for !p.at(token.KwEndmodule) && !p.at(token.EOF) {
		if p.at(token.KwAlways) {
			if proc := p.parseProcess(); proc != nil {
				mod.Processes = append(mod.Processes, *proc)
			}
			continue
		}
		got := p.next()
		diag.ReportError(p.reporter, diag.SynUnexpectedToken,
			got.Span, fmt.Sprintf("unexpected token %q in module body", got.Text))
		p.syncTo(token.KwAlways, token.KwEndmodule)
	}

	end, _ := p.expect(token.KwEndmodule, diag.SynUnexpectedToken)
	mod.Span = mod.Span.Cover(end.Span)
	return mod
}

// parsePortList разбирает список портов до закрывающей скобки.
func (p *Parser) parsePortList(mod *ast.Module) {
	if _, ok := p.eat(token.RParen); ok {
		return // пустой список портов
	}
	for {
		if port, ok := p.parsePortDecl(); ok {
			mod.Ports = append(mod.Ports, port)
		} else {
			p.syncTo(token.Comma, token.RParen)
		}
		if _, ok := p.eat(token.Comma); ok {
			continue
		}
		p.expect(token.RParen, diag.SynUnexpectedToken)
		return
	}
}

// parsePortDecl разбирает одно объявление порта:
//
//	("input"|"output") "reg"? ("[" msb ":" lsb "]")? ident
func (p *Parser) parsePortDecl() (ast.Port, bool) {
	var port ast.Port

	switch {
	case p.at(token.KwInput):
		tok := p.next()
		port.Dir = ast.DirInput
		port.Span = tok.Span
	case p.at(token.KwOutput):
		tok := p.next()
		port.Dir = ast.DirOutput
		port.Span = tok.Span
	default:
		got := p.peek()
		diag.ReportError(p.reporter, diag.SynBadPort,
			got.Span, fmt.Sprintf("expected port direction, found %q", got.Text))
		return port, false
	}

	if _, ok := p.eat(token.KwReg); ok {
		port.IsReg = true
	}
	// 'wire' допускается и игнорируется: это поведение по умолчанию
	p.eat(token.KwWire)

	if _, ok := p.eat(token.LBracket); ok {
		msb, okMSB := p.parseRangeBound()
		if _, ok := p.expect(token.Colon, diag.SynBadRange); !ok {
			return port, false
		}
		lsb, okLSB := p.parseRangeBound()
		if _, ok := p.expect(token.RBracket, diag.SynBadRange); !ok {
			return port, false
		}
		if !okMSB || !okLSB {
			return port, false
		}
		port.HasRange = true
		port.MSB = msb
		port.LSB = lsb
	}

	name, ok := p.expect(token.Ident, diag.SynExpectIdent)
	if !ok {
		return port, false
	}
	port.Name = name.Text
	port.Span = port.Span.Cover(name.Span)
	return port, true
}

func (p *Parser) parseRangeBound() (int, bool) {
	tok, ok := p.expect(token.IntLit, diag.SynBadRange)
	if !ok {
		return 0, false
	}
	n := 0
	for _, c := range tok.Text {
		if c < '0' || c > '9' {
			diag.ReportError(p.reporter, diag.SynBadRange,
				tok.Span, "range bound must be a plain decimal constant")
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}
