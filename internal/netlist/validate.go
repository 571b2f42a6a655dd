package netlist

import (
	"fmt"
)

// Validate checks module-level invariants: every gate input and output
// must reference a signal present in the signal mapping, and arities must
// match the operation.
func (m *Module) Validate() error {
	check := func(op string, inputs []*Signal, out *Signal, arity int) error {
		if len(inputs) != arity {
			return fmt.Errorf("%s: arity %d, want %d", op, len(inputs), arity)
		}
		for _, s := range inputs {
			if m.signals[s.Name] != s {
				return fmt.Errorf("%s: input %q not owned by module", op, s.Name)
			}
		}
		if m.signals[out.Name] != out {
			return fmt.Errorf("%s: output %q not owned by module", op, out.Name)
		}
		return nil
	}

	for i, g := range m.Gates {
		if err := check(g.Op.String(), g.Inputs, g.Out, g.Op.Arity()); err != nil {
			return fmt.Errorf("gate %d: %w", i, err)
		}
	}
	for i, g := range m.Prims {
		if err := check(g.Op.String(), g.Inputs, g.Out, g.Op.Arity()); err != nil {
			return fmt.Errorf("prim gate %d: %w", i, err)
		}
	}
	return nil
}

// ValidatePrimitive checks the post-bit-blasting invariants: every signal
// has width 1 and no two primitive gates drive the same output.
func (m *Module) ValidatePrimitive() error {
	if err := m.Validate(); err != nil {
		return err
	}
	for _, name := range m.order {
		if w := m.signals[name].Width; w != 1 {
			return fmt.Errorf("signal %q has width %d after bit-blasting", name, w)
		}
	}
	drivers := make(map[SignalID]int, len(m.Prims))
	for i, g := range m.Prims {
		if prev, ok := drivers[g.Out.ID]; ok {
			return fmt.Errorf("signal %q driven by gates %d and %d", g.Out.Name, prev, i)
		}
		drivers[g.Out.ID] = i
	}
	return nil
}
