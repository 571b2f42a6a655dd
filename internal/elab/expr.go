package elab

import (
	"fmt"
	"strconv"
	"strings"

	"volt/internal/ast"
	"volt/internal/diag"
	"volt/internal/netlist"
)

// defaultLitWidth применяется, когда ни литерал, ни контекст не задали
// ширину. Унаследованное соглашение, не пересматривать.
const defaultLitWidth = 32

// compileExpr converts an expression into a result signal, collecting the
// gates it emits into buf. expectedWidth 0 means no expectation; a
// non-zero expectation is threaded into operands where the operation
// requires width-consistent arithmetic.
func (e *elaborator) compileExpr(expr *ast.Expr, expectedWidth int, buf *[]netlist.HighGate) (*netlist.Signal, error) {
	switch expr.Kind {
	case ast.ExprIdent:
		// Ожидаемая ширина продвигает сигнал с шириной по умолчанию.
		return e.mod.GetOrCreate(expr.Ident, expectedWidth, 0), nil

	case ast.ExprIntLit:
		value, declared, hasWidth := parseIntLit(expr.Lit.Text)
		w := defaultLitWidth
		switch {
		case hasWidth:
			w = declared
		case expectedWidth > 0:
			w = expectedWidth
		}
		return e.mod.ConstSignal(value, w), nil

	case ast.ExprBinary:
		var op netlist.HighOp
		switch expr.Binary.Op {
		case ast.BinAdd:
			op = netlist.HighAdd
		case ast.BinEq:
			op = netlist.HighEq
		case ast.BinLand:
			op = netlist.HighAnd
		case ast.BinLor:
			op = netlist.HighOr
		}

		// Для сравнения и логики операнды не обязаны совпадать по ширине
		// с результатом (результат — 1 бит). Для арифметики — обязаны.
		reqW := 0
		if op == netlist.HighAdd {
			reqW = expectedWidth
		}

		a, err := e.compileExpr(expr.Binary.Left, reqW, buf)
		if err != nil {
			return nil, err
		}
		b, err := e.compileExpr(expr.Binary.Right, reqW, buf)
		if err != nil {
			return nil, err
		}

		outW := 1
		if op == netlist.HighAdd {
			outW = expectedWidth
			if outW == 0 {
				outW = max(a.Width, b.Width)
			}
		}

		tmp := e.mod.Fresh("tmp_"+op.String(), outW)
		*buf = append(*buf, netlist.HighGate{Op: op, Inputs: []*netlist.Signal{a, b}, Out: tmp})
		return tmp, nil
	}

	diag.ReportError(e.reporter, diag.ElabUnsupportedExpr, expr.Span,
		fmt.Sprintf("unsupported expression kind %s", expr.Kind))
	return nil, fmt.Errorf("elab: unsupported expression kind %s", expr.Kind)
}

// parseIntLit разбирает текст целочисленного литерала.
// Поддерживаются формы "4'b1010", "32'd100", "8'hFF", "3'o7" и "42".
// Разряды x/z трактуются как 0, '_' игнорируется. Неразбираемое
// значение по соглашению даёт 0 (восстановление, а не ошибка).
func parseIntLit(text string) (value uint64, width int, hasWidth bool) {
	text = strings.TrimSpace(text)
	widthPart, valPart, found := strings.Cut(text, "'")
	if !found {
		v, err := strconv.ParseUint(text, 10, 64)
		if err != nil {
			return 0, 0, false
		}
		return v, 0, false
	}

	width, err := strconv.Atoi(strings.TrimSpace(widthPart))
	if err != nil || width < 1 {
		return 0, 0, false
	}
	if valPart == "" {
		return 0, width, true
	}

	base := 10
	switch valPart[0] {
	case 'b', 'B':
		base = 2
	case 'h', 'H':
		base = 16
	case 'o', 'O':
		base = 8
	case 'd', 'D':
		base = 10
	}

	digits := strings.NewReplacer("_", "", "x", "0", "X", "0", "z", "0", "Z", "0").Replace(valPart[1:])
	v, err := strconv.ParseUint(digits, base, 64)
	if err != nil {
		v = 0
	}
	return v, width, true
}
