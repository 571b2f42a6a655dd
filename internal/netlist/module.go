package netlist

import (
	"fmt"
)

// Module is the container for the whole design under synthesis. It owns
// every Signal and Gate it contains and hands out fresh signal IDs and
// fresh temporary names from explicit counters.
type Module struct {
	Name string

	signals map[string]*Signal
	order   []string // insertion order, для детерминированного вывода

	// Gates holds the high-level sequence produced by elaboration.
	Gates []HighGate
	// Prims holds the primitive sequence produced by bit-blasting; it
	// fully replaces Gates once the pass completes.
	Prims []PrimGate

	nextID    SignalID
	nextFresh uint32
	nextConst uint32
}

// NewModule creates an empty module.
func NewModule(name string) *Module {
	return &Module{
		Name:    name,
		signals: make(map[string]*Signal),
	}
}

// Get returns the signal with the given name, or nil.
func (m *Module) Get(name string) *Signal {
	return m.signals[name]
}

// Names returns signal names in insertion order. The returned slice is
// owned by the module; callers must not modify it.
func (m *Module) Names() []string {
	return m.order
}

// NumSignals returns the signal count.
func (m *Module) NumSignals() int {
	return len(m.order)
}

// add registers a new signal, assigning the next SignalID.
func (m *Module) add(s *Signal) *Signal {
	m.nextID++
	s.ID = m.nextID
	m.signals[s.Name] = s
	m.order = append(m.order, s.Name)
	return s
}

// GetOrCreate fetches an existing signal or creates a new one.
// For an existing signal the width is promoted if it is still at the
// default 1 and a wider expectation arrives, and direction/register
// flags are OR-merged.
func (m *Module) GetOrCreate(name string, width int, flags Flag) *Signal {
	if width < 1 {
		width = 1
	}
	if s := m.signals[name]; s != nil {
		if s.Width == 1 && width != 1 {
			s.Width = width
		}
		s.Input = s.Input || flags&FlagInput != 0
		s.Output = s.Output || flags&FlagOutput != 0
		s.Reg = s.Reg || flags&FlagReg != 0
		return s
	}
	return m.add(&Signal{
		Name:   name,
		Width:  width,
		Input:  flags&FlagInput != 0,
		Output: flags&FlagOutput != 0,
		Reg:    flags&FlagReg != 0,
	})
}

// Fresh creates a new uniquely named signal "<prefix>_<n>" of the given width.
func (m *Module) Fresh(prefix string, width int) *Signal {
	name := fmt.Sprintf("%s_%d", prefix, m.nextFresh)
	m.nextFresh++
	return m.GetOrCreate(name, width, 0)
}

// ConstSignal creates a constant signal whose name encodes value and width
// so a later pass can decode them without a side channel.
func (m *Module) ConstSignal(value uint64, width int) *Signal {
	name := ConstName(value, width, m.nextConst)
	m.nextConst++
	return m.GetOrCreate(name, width, 0)
}

// Remove drops a signal from the module. Used by bit-blasting to retire
// multi-bit parents once their bit signals fully replace them.
func (m *Module) Remove(name string) {
	if _, ok := m.signals[name]; !ok {
		return
	}
	delete(m.signals, name)
	for i, n := range m.order {
		if n == name {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
}

// AddHigh appends a high-level gate. The arity must match the operation.
func (m *Module) AddHigh(op HighOp, inputs []*Signal, out *Signal) {
	if len(inputs) != op.Arity() {
		panic(fmt.Sprintf("netlist: %s expects %d inputs, got %d", op, op.Arity(), len(inputs)))
	}
	m.Gates = append(m.Gates, HighGate{Op: op, Inputs: inputs, Out: out})
}

// AddPrim appends a primitive gate. The arity must match the operation.
func (m *Module) AddPrim(op PrimOp, inputs []*Signal, out *Signal) {
	if len(inputs) != op.Arity() {
		panic(fmt.Sprintf("netlist: %s expects %d inputs, got %d", op, op.Arity(), len(inputs)))
	}
	m.Prims = append(m.Prims, PrimGate{Op: op, Inputs: inputs, Out: out})
}
