package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"volt/internal/ast"
)

// FormatModulePretty печатает дерево модуля с отступами.
func FormatModulePretty(w io.Writer, mod *ast.Module) error {
	if mod == nil {
		_, err := fmt.Fprintln(w, "<no module>")
		return err
	}
	fmt.Fprintf(w, "module %s\n", mod.Name)
	for _, p := range mod.Ports {
		reg := ""
		if p.IsReg {
			reg = " reg"
		}
		if p.HasRange {
			fmt.Fprintf(w, "  %s%s [%d:%d] %s\n", p.Dir, reg, p.MSB, p.LSB, p.Name)
		} else {
			fmt.Fprintf(w, "  %s%s %s\n", p.Dir, reg, p.Name)
		}
	}
	for i := range mod.Processes {
		proc := &mod.Processes[i]
		fmt.Fprintf(w, "  always @(%s)\n", sensString(proc))
		writeStmt(w, proc.Body, 2)
	}
	return nil
}

func sensString(proc *ast.Process) string {
	if proc.Star {
		return "*"
	}
	parts := make([]string, 0, len(proc.Sens))
	for _, s := range proc.Sens {
		switch s.Edge {
		case ast.EdgePos:
			parts = append(parts, "posedge "+s.Signal)
		case ast.EdgeNeg:
			parts = append(parts, "negedge "+s.Signal)
		default:
			parts = append(parts, s.Signal)
		}
	}
	return strings.Join(parts, " or ")
}

func writeStmt(w io.Writer, stmt *ast.Stmt, depth int) {
	if stmt == nil {
		return
	}
	indent := strings.Repeat("  ", depth)
	switch stmt.Kind {
	case ast.StmtBlock:
		fmt.Fprintf(w, "%sbegin\n", indent)
		for _, s := range stmt.Block {
			writeStmt(w, s, depth+1)
		}
		fmt.Fprintf(w, "%send\n", indent)
	case ast.StmtIf:
		fmt.Fprintf(w, "%sif (%s)\n", indent, exprString(stmt.If.Cond))
		writeStmt(w, stmt.If.Then, depth+1)
		if stmt.If.Else != nil {
			fmt.Fprintf(w, "%selse\n", indent)
			writeStmt(w, stmt.If.Else, depth+1)
		}
	case ast.StmtAssign:
		op := "="
		if stmt.Assign.NonBlocking {
			op = "<="
		}
		fmt.Fprintf(w, "%s%s %s %s\n", indent, stmt.Assign.Target, op, exprString(stmt.Assign.RHS))
	}
}

func exprString(e *ast.Expr) string {
	if e == nil {
		return "<nil>"
	}
	switch e.Kind {
	case ast.ExprIdent:
		return e.Ident
	case ast.ExprIntLit:
		return e.Lit.Text
	case ast.ExprBinary:
		return fmt.Sprintf("(%s %s %s)",
			exprString(e.Binary.Left), e.Binary.Op, exprString(e.Binary.Right))
	}
	return "<unknown>"
}

// FormatModuleJSON сериализует модуль как есть.
func FormatModuleJSON(w io.Writer, mod *ast.Module) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(mod)
}
