package testkit

import (
	"fmt"

	"volt/internal/netlist"
)

// CheckPrimitiveInvariants runs the full set of post-lowering invariants:
// 1) every gate references module-owned signals with matching arity
// 2) every signal has width 1 and a single driver
// 3) no high-level gates remain
// 4) constant signals $false/$true are never driven by a gate
func CheckPrimitiveInvariants(m *netlist.Module) error {
	if m == nil {
		return fmt.Errorf("nil module")
	}
	if len(m.Gates) != 0 {
		return fmt.Errorf("%d high-level gates remain after lowering", len(m.Gates))
	}
	if err := m.ValidatePrimitive(); err != nil {
		return err
	}
	for i, g := range m.Prims {
		if g.Out.Name == netlist.FalseName || g.Out.Name == netlist.TrueName {
			return fmt.Errorf("gate %d drives constant signal %q", i, g.Out.Name)
		}
	}
	return nil
}

// CheckBusExpansion verifies that base was expanded into width bit
// signals named base_0..base_{width-1} and that the multi-bit parent is gone.
func CheckBusExpansion(m *netlist.Module, base string, width int) error {
	if m == nil {
		return fmt.Errorf("nil module")
	}
	if s := m.Get(base); s != nil && s.Width != 1 {
		return fmt.Errorf("multi-bit parent %q still present (width %d)", base, s.Width)
	}
	for i := 0; i < width; i++ {
		name := netlist.BitName(base, i)
		bit := m.Get(name)
		if bit == nil {
			return fmt.Errorf("bit signal %q missing", name)
		}
		if bit.Width != 1 {
			return fmt.Errorf("bit signal %q has width %d", name, bit.Width)
		}
	}
	return nil
}
