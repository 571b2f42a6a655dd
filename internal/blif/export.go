// Package blif renders a bit-blasted netlist into the BLIF structural
// interchange format. Downstream tools depend on bit-exact truth-table
// conventions, so the emitted rows are fixed per primitive.
package blif

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"

	"volt/internal/diag"
	"volt/internal/netlist"
	"volt/internal/source"
)

// Export writes the module in BLIF form. Only width-1 primary ports are
// listed; the global constants are declared as always-false/always-true
// truth tables. An unrecognized gate reaching export is a fatal error,
// reported as ExportUnsupportedOp.
func Export(w io.Writer, mod *netlist.Module, reporter diag.Reporter) error {
	bw := bufio.NewWriter(w)

	var inputs, outputs []string
	for _, name := range mod.Names() {
		if name == netlist.FalseName || name == netlist.TrueName {
			continue
		}
		s := mod.Get(name)
		if s.Width != 1 {
			continue
		}
		if s.Input {
			inputs = append(inputs, name)
		}
		if s.Output {
			outputs = append(outputs, name)
		}
	}
	sort.Strings(inputs)
	sort.Strings(outputs)

	fmt.Fprintf(bw, ".model %s\n", mod.Name)
	if len(inputs) > 0 {
		fmt.Fprint(bw, ".inputs")
		for _, name := range inputs {
			fmt.Fprintf(bw, " %s", name)
		}
		fmt.Fprintln(bw)
	}
	if len(outputs) > 0 {
		fmt.Fprint(bw, ".outputs")
		for _, name := range outputs {
			fmt.Fprintf(bw, " %s", name)
		}
		fmt.Fprintln(bw)
	}
	fmt.Fprintln(bw)

	if mod.Get(netlist.FalseName) != nil {
		fmt.Fprintf(bw, ".names %s\n", netlist.FalseName)
		fmt.Fprintln(bw) // логический 0: пустая таблица
	}
	if mod.Get(netlist.TrueName) != nil {
		fmt.Fprintf(bw, ".names %s\n", netlist.TrueName)
		fmt.Fprintln(bw, "1") // логическая 1
	}
	fmt.Fprintln(bw)

	for _, g := range mod.Prims {
		if err := writeGate(bw, g); err != nil {
			diag.ReportError(reporter, diag.ExportUnsupportedOp, source.Span{}, err.Error())
			return err
		}
	}

	fmt.Fprintln(bw, ".end")
	return bw.Flush()
}

func writeGate(bw *bufio.Writer, g netlist.PrimGate) error {
	out := g.Out.Name
	in := func(i int) string { return g.Inputs[i].Name }

	switch g.Op {
	case netlist.PrimNot:
		fmt.Fprintf(bw, ".names %s %s\n", in(0), out)
		fmt.Fprintln(bw, "0 1")
	case netlist.PrimBuf:
		fmt.Fprintf(bw, ".names %s %s\n", in(0), out)
		fmt.Fprintln(bw, "1 1")
	case netlist.PrimAnd:
		fmt.Fprintf(bw, ".names %s %s %s\n", in(0), in(1), out)
		fmt.Fprintln(bw, "11 1")
	case netlist.PrimOr:
		fmt.Fprintf(bw, ".names %s %s %s\n", in(0), in(1), out)
		fmt.Fprintln(bw, "1- 1")
		fmt.Fprintln(bw, "-1 1")
	case netlist.PrimXor:
		fmt.Fprintf(bw, ".names %s %s %s\n", in(0), in(1), out)
		fmt.Fprintln(bw, "10 1")
		fmt.Fprintln(bw, "01 1")
	case netlist.PrimMux:
		// Соглашение: [sel, true, false].
		fmt.Fprintf(bw, ".names %s %s %s %s\n", in(0), in(1), in(2), out)
		fmt.Fprintln(bw, "11- 1")
		fmt.Fprintln(bw, "0-1 1")
	case netlist.PrimDFF:
		// Соглашение: [d, clk]; rising edge, начальное состояние 0.
		fmt.Fprintf(bw, ".latch %s %s re %s 0\n", in(0), out, in(1))
	default:
		return fmt.Errorf("blif: unsupported gate operation %q", g.Op)
	}
	return nil
}

// ExportFile writes the module to the given path. The file handle is
// scoped to the call and released regardless of outcome.
func ExportFile(path string, mod *netlist.Module, reporter diag.Reporter) (err error) {
	// #nosec G304 -- path is provided by the caller
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return Export(f, mod, reporter)
}
