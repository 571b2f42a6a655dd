package elab

import (
	"fmt"

	"volt/internal/ast"
	"volt/internal/diag"
	"volt/internal/netlist"
)

// lowerCombinational infers a MUX tree for every output or register
// signal out of an unclocked process. A target with no statement driving
// it is simply left undriven by this process.
func (e *elaborator) lowerCombinational(proc *ast.Process) error {
	// Кандидаты фиксируются до обхода тела процесса.
	candidates := make([]*netlist.Signal, 0, e.mod.NumSignals())
	for _, name := range e.mod.Names() {
		s := e.mod.Get(name)
		if s.Output || s.Reg {
			candidates = append(candidates, s)
		}
	}

	for _, target := range candidates {
		var gates []netlist.HighGate
		result, err := e.buildMuxTree(proc.Body, target, &gates)
		if err != nil {
			return err
		}
		if result == nil {
			// Цель не управляется этим процессом; собранные ворота
			// отбрасываются целиком.
			continue
		}
		e.flush(gates)
		// Явное соединение результата дерева с целевым сигналом.
		e.mod.AddHigh(netlist.HighBuf, []*netlist.Signal{result}, target)
	}
	return nil
}

// buildMuxTree recursively converts a statement into a result signal for
// the given target. Nested conditionals become chained 2-input MUXes with
// input order [condition, true, false]. Returns nil without error when the
// statement does not produce a result for this target.
func (e *elaborator) buildMuxTree(stmt *ast.Stmt, target *netlist.Signal, buf *[]netlist.HighGate) (*netlist.Signal, error) {
	if stmt == nil {
		return nil, nil
	}

	switch stmt.Kind {
	case ast.StmtBlock:
		// Только первый оператор блока; остальные в этой форме не
		// рассматриваются.
		if len(stmt.Block) == 0 {
			return nil, nil
		}
		return e.buildMuxTree(stmt.Block[0], target, buf)

	case ast.StmtAssign:
		if stmt.Assign.Target != target.Name {
			// Присваивание другой цели: для этого дерева результата нет.
			return nil, nil
		}
		return e.compileExpr(stmt.Assign.RHS, target.Width, buf)

	case ast.StmtIf:
		cond, err := e.compileExpr(stmt.If.Cond, 0, buf)
		if err != nil {
			return nil, err
		}

		trueSig, err := e.buildMuxTree(stmt.If.Then, target, buf)
		if err != nil {
			return nil, err
		}

		var falseSig *netlist.Signal
		if stmt.If.Else != nil {
			falseSig, err = e.buildMuxTree(stmt.If.Else, target, buf)
			if err != nil {
				return nil, err
			}
		} else {
			// Нет ветки else: держим текущее значение цели
			// (latch-семантика вместо ошибки).
			falseSig = target
			if trueSig != nil {
				diag.ReportWarning(e.reporter, diag.ElabLatchInferred, stmt.Span,
					fmt.Sprintf("missing else branch: %s holds its previous value", target.Name))
			}
		}

		if trueSig == nil || falseSig == nil {
			return nil, nil
		}

		muxOut := e.mod.Fresh("mux_"+target.Name, trueSig.Width)
		*buf = append(*buf, netlist.HighGate{
			Op:     netlist.HighMux,
			Inputs: []*netlist.Signal{cond, trueSig, falseSig},
			Out:    muxOut,
		})
		return muxOut, nil
	}

	return nil, nil
}
