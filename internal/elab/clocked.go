package elab

import (
	"volt/internal/ast"
	"volt/internal/netlist"
)

// lowerClocked recognizes the one supported sequential shape and lowers it
// into a single DFF_EN_RST macro gate per target register:
//
//	always @(posedge clk)
//	  if (rst) q <= <reset value>;
//	  else if (en) q <= <next value>;
//
// The missing innermost else is an implicit hold. Anything else fails fast
// rather than silently mis-synthesizing.
func (e *elaborator) lowerClocked(proc *ast.Process) error {
	clk := e.mod.GetOrCreate(proc.ClockName(), 1, netlist.FlagInput)

	body := firstStmt(proc.Body)
	if body == nil || body.Kind != ast.StmtIf {
		return e.unsupportedProcess(proc, "clocked body must be a reset conditional")
	}

	if body.If.Cond.Kind != ast.ExprIdent {
		return e.unsupportedProcess(proc, "reset condition must be a plain signal")
	}
	rst := e.mod.GetOrCreate(body.If.Cond.Ident, 1, 0)

	// Ветка сброса даёт целевой регистр и значение сброса.
	thenStmt := firstStmt(body.If.Then)
	if thenStmt == nil || thenStmt.Kind != ast.StmtAssign {
		return e.unsupportedProcess(proc, "reset branch must assign the register")
	}
	target := e.mod.GetOrCreate(thenStmt.Assign.Target, 1, 0)

	var gates []netlist.HighGate
	rstVal, err := e.compileExpr(thenStmt.Assign.RHS, target.Width, &gates)
	if err != nil {
		return err
	}
	e.flush(gates)

	// Ветка else обязана быть условием на enable.
	elseStmt := body.If.Else
	if elseStmt == nil || elseStmt.Kind != ast.StmtIf {
		return e.unsupportedProcess(proc, "expected enable conditional after reset")
	}
	if elseStmt.If.Cond.Kind != ast.ExprIdent {
		return e.unsupportedProcess(proc, "enable condition must be a plain signal")
	}
	en := e.mod.GetOrCreate(elseStmt.If.Cond.Ident, 1, 0)

	enThen := firstStmt(elseStmt.If.Then)
	if enThen == nil || enThen.Kind != ast.StmtAssign {
		return e.unsupportedProcess(proc, "enable branch must assign the register")
	}
	if elseStmt.If.Else != nil {
		return e.unsupportedProcess(proc, "unexpected else after enable branch")
	}

	gates = gates[:0]
	nextVal, err := e.compileExpr(enThen.Assign.RHS, target.Width, &gates)
	if err != nil {
		return err
	}
	e.flush(gates)

	// [next, current, en, rstval, rst, clk] -> target
	e.mod.AddHigh(netlist.HighDFFEnRst,
		[]*netlist.Signal{nextVal, target, en, rstVal, rst, clk}, target)
	return nil
}
