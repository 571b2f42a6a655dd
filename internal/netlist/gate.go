package netlist

import (
	"fmt"
	"strings"
)

// HighGate is a single high-level operation. Input order is semantically
// significant (see the per-operation conventions on HighOp).
type HighGate struct {
	Op     HighOp
	Inputs []*Signal
	Out    *Signal
}

func (g HighGate) String() string {
	return gateString(g.Op.String(), g.Inputs, g.Out)
}

// PrimGate is a single 1-bit primitive operation.
type PrimGate struct {
	Op     PrimOp
	Inputs []*Signal
	Out    *Signal
}

func (g PrimGate) String() string {
	return gateString(g.Op.String(), g.Inputs, g.Out)
}

func gateString(op string, inputs []*Signal, out *Signal) string {
	names := make([]string, 0, len(inputs))
	for _, s := range inputs {
		names = append(names, s.Name)
	}
	return fmt.Sprintf("[%s] [%s] -> %s", op, strings.Join(names, " "), out.Name)
}
