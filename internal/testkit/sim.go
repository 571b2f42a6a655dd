package testkit

import (
	"fmt"

	"volt/internal/netlist"
)

// Sim is a gate-level evaluator over a primitive netlist. It evaluates
// combinational logic with repeated forward sweeps and holds flip-flop
// state explicitly: Eval settles the combinational fabric for the current
// inputs, Step latches every DFF from its data input.
//
// Симулятор только для тестов: корректность важнее скорости.
type Sim struct {
	mod    *netlist.Module
	values map[netlist.SignalID]bool
	known  map[netlist.SignalID]bool
	state  map[netlist.SignalID]bool // q-значения DFF между тактами
}

// NewSim builds a simulator over a lowered module. The module must pass
// the primitive invariants first.
func NewSim(m *netlist.Module) (*Sim, error) {
	if err := CheckPrimitiveInvariants(m); err != nil {
		return nil, err
	}
	return &Sim{
		mod:    m,
		values: make(map[netlist.SignalID]bool),
		known:  make(map[netlist.SignalID]bool),
		state:  make(map[netlist.SignalID]bool),
	}, nil
}

// Set assigns a value to a named 1-bit signal (usually a primary input).
func (s *Sim) Set(name string, v bool) error {
	sig := s.mod.Get(name)
	if sig == nil {
		return fmt.Errorf("signal %q not found", name)
	}
	s.values[sig.ID] = v
	s.known[sig.ID] = true
	return nil
}

// SetBus assigns value to the expanded bits of a bus, LSB first.
func (s *Sim) SetBus(base string, value uint64, width int) error {
	for i := 0; i < width; i++ {
		if err := s.Set(netlist.BitName(base, i), value>>i&1 == 1); err != nil {
			return err
		}
	}
	return nil
}

// Get reads back a settled 1-bit signal value.
func (s *Sim) Get(name string) (bool, error) {
	sig := s.mod.Get(name)
	if sig == nil {
		return false, fmt.Errorf("signal %q not found", name)
	}
	if !s.known[sig.ID] {
		return false, fmt.Errorf("signal %q has no settled value", name)
	}
	return s.values[sig.ID], nil
}

// GetBus reassembles a bus value from its expanded bits, LSB first.
func (s *Sim) GetBus(base string, width int) (uint64, error) {
	var out uint64
	for i := 0; i < width; i++ {
		bit, err := s.Get(netlist.BitName(base, i))
		if err != nil {
			return 0, err
		}
		if bit {
			out |= 1 << i
		}
	}
	return out, nil
}

// Eval settles the combinational fabric for the current inputs. DFF
// outputs read from the held state; their data inputs are evaluated but
// not latched (see Step).
func (s *Sim) Eval() error {
	// сбрасываем всё, кроме входов и состояния DFF
	s.seed()

	// прямые проходы до неподвижной точки; на ацикличной схеме хватает
	// len(Prims) итераций, лишний проход детектирует цикл
	for pass := 0; pass <= len(s.mod.Prims); pass++ {
		changed := false
		for i := range s.mod.Prims {
			g := &s.mod.Prims[i]
			if g.Op == netlist.PrimDFF {
				continue // выход DFF уже засеян из state
			}
			if s.known[g.Out.ID] {
				continue
			}
			v, ok := s.evalGate(g)
			if !ok {
				continue
			}
			s.values[g.Out.ID] = v
			s.known[g.Out.ID] = true
			changed = true
		}
		if !changed {
			break
		}
	}

	for i := range s.mod.Prims {
		g := &s.mod.Prims[i]
		if g.Op == netlist.PrimDFF {
			continue
		}
		if !s.known[g.Out.ID] {
			return fmt.Errorf("signal %q did not settle (combinational loop?)", g.Out.Name)
		}
	}
	return nil
}

// Step latches every DFF: q <- d for the values settled by the last Eval.
func (s *Sim) Step() error {
	next := make(map[netlist.SignalID]bool, len(s.state))
	for i := range s.mod.Prims {
		g := &s.mod.Prims[i]
		if g.Op != netlist.PrimDFF {
			continue
		}
		d := g.Inputs[0]
		if !s.known[d.ID] {
			return fmt.Errorf("DFF %q input %q not settled; call Eval first", g.Out.Name, d.Name)
		}
		next[g.Out.ID] = s.values[d.ID]
	}
	for id, v := range next {
		s.state[id] = v
	}
	return nil
}

// seed clears derived values, keeping externally Set inputs and DFF state.
func (s *Sim) seed() {
	inputs := make(map[netlist.SignalID]bool)
	for _, name := range s.mod.Names() {
		sig := s.mod.Get(name)
		if sig.Input && s.known[sig.ID] {
			inputs[sig.ID] = s.values[sig.ID]
		}
	}

	s.values = make(map[netlist.SignalID]bool)
	s.known = make(map[netlist.SignalID]bool)
	for id, v := range inputs {
		s.values[id] = v
		s.known[id] = true
	}

	if f := s.mod.Get(netlist.FalseName); f != nil {
		s.values[f.ID] = false
		s.known[f.ID] = true
	}
	if tr := s.mod.Get(netlist.TrueName); tr != nil {
		s.values[tr.ID] = true
		s.known[tr.ID] = true
	}

	for i := range s.mod.Prims {
		g := &s.mod.Prims[i]
		if g.Op != netlist.PrimDFF {
			continue
		}
		s.values[g.Out.ID] = s.state[g.Out.ID]
		s.known[g.Out.ID] = true
	}
}

func (s *Sim) evalGate(g *netlist.PrimGate) (bool, bool) {
	in := make([]bool, len(g.Inputs))
	for i, sig := range g.Inputs {
		if !s.known[sig.ID] {
			return false, false
		}
		in[i] = s.values[sig.ID]
	}
	switch g.Op {
	case netlist.PrimAnd:
		return in[0] && in[1], true
	case netlist.PrimOr:
		return in[0] || in[1], true
	case netlist.PrimXor:
		return in[0] != in[1], true
	case netlist.PrimNot:
		return !in[0], true
	case netlist.PrimBuf:
		return in[0], true
	case netlist.PrimMux:
		// [sel, true, false]
		if in[0] {
			return in[1], true
		}
		return in[2], true
	default:
		return false, false
	}
}
