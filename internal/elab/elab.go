package elab

import (
	"errors"
	"fmt"

	"volt/internal/ast"
	"volt/internal/diag"
	"volt/internal/netlist"
)

// ErrNoModule is returned when the syntax tree has no module definition.
var ErrNoModule = errors.New("elab: no module definition")

// elaborator несёт состояние прохода: целевой модуль и приёмник диагностик.
type elaborator struct {
	mod      *netlist.Module
	reporter diag.Reporter
}

// Run lowers a parsed module into a netlist of high-level gates.
// Unsupported constructs are fatal: a diagnostic is reported and the
// pass aborts with an error. The partially built module is returned for
// inspection either way.
func Run(src *ast.Module, reporter diag.Reporter) (*netlist.Module, error) {
	if src == nil {
		return nil, ErrNoModule
	}
	if reporter == nil {
		reporter = diag.NopReporter{}
	}

	e := &elaborator{
		mod:      netlist.NewModule(src.Name),
		reporter: reporter,
	}

	for _, port := range src.Ports {
		e.lowerPort(port)
	}

	for i := range src.Processes {
		proc := &src.Processes[i]
		var err error
		if proc.Clocked() {
			err = e.lowerClocked(proc)
		} else {
			err = e.lowerCombinational(proc)
		}
		if err != nil {
			return e.mod, err
		}
	}

	return e.mod, nil
}

func (e *elaborator) lowerPort(port ast.Port) {
	var flags netlist.Flag
	switch port.Dir {
	case ast.DirInput:
		flags = netlist.FlagInput
	case ast.DirOutput:
		flags = netlist.FlagOutput
		if port.IsReg {
			flags |= netlist.FlagReg
		}
	}
	e.mod.GetOrCreate(port.Name, port.Width(), flags)
}

// firstStmt разворачивает begin/end блок до первого оператора.
// Остальные операторы блока в этой форме не рассматриваются.
func firstStmt(s *ast.Stmt) *ast.Stmt {
	if s == nil {
		return nil
	}
	if s.Kind == ast.StmtBlock {
		if len(s.Block) == 0 {
			return nil
		}
		return s.Block[0]
	}
	return s
}

// flush appends collected gates to the module in compilation order.
func (e *elaborator) flush(gates []netlist.HighGate) {
	for _, g := range gates {
		e.mod.AddHigh(g.Op, g.Inputs, g.Out)
	}
}

// unsupportedProcess reports the fatal diagnostic and builds the pass error.
func (e *elaborator) unsupportedProcess(proc *ast.Process, detail string) error {
	diag.ReportError(e.reporter, diag.ElabUnsupportedProcess, proc.Span,
		fmt.Sprintf("unsupported process shape: %s", detail))
	return fmt.Errorf("elab: unsupported process shape: %s", detail)
}
