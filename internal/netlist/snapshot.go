package netlist

// Snapshot is the write-only debug record of a module between stages.
// It is serialized (msgpack) by the driver and never read back.

// SnapshotSchemaVersion is bumped when the snapshot layout changes.
const SnapshotSchemaVersion uint16 = 1

// SignalRecord is the snapshot form of a Signal.
type SignalRecord struct {
	Name   string
	Width  int
	Input  bool
	Output bool
	Reg    bool
}

// GateRecord is the snapshot form of a gate at either stage.
type GateRecord struct {
	Op     string
	Inputs []string
	Output string
}

// Snapshot is a stable, order-preserving record of the module.
type Snapshot struct {
	Schema  uint16
	Module  string
	Signals []SignalRecord
	Gates   []GateRecord
}

// Snapshot captures the current signals and gates in insertion order.
// Whichever gate sequence is populated (high-level before bit-blasting,
// primitive after) is recorded.
func (m *Module) Snapshot() *Snapshot {
	snap := &Snapshot{
		Schema: SnapshotSchemaVersion,
		Module: m.Name,
	}

	snap.Signals = make([]SignalRecord, 0, len(m.order))
	for _, name := range m.order {
		s := m.signals[name]
		snap.Signals = append(snap.Signals, SignalRecord{
			Name:   s.Name,
			Width:  s.Width,
			Input:  s.Input,
			Output: s.Output,
			Reg:    s.Reg,
		})
	}

	if len(m.Prims) > 0 {
		snap.Gates = make([]GateRecord, 0, len(m.Prims))
		for _, g := range m.Prims {
			snap.Gates = append(snap.Gates, gateRecord(g.Op.String(), g.Inputs, g.Out))
		}
		return snap
	}

	snap.Gates = make([]GateRecord, 0, len(m.Gates))
	for _, g := range m.Gates {
		snap.Gates = append(snap.Gates, gateRecord(g.Op.String(), g.Inputs, g.Out))
	}
	return snap
}

func gateRecord(op string, inputs []*Signal, out *Signal) GateRecord {
	names := make([]string, 0, len(inputs))
	for _, s := range inputs {
		names = append(names, s.Name)
	}
	return GateRecord{Op: op, Inputs: names, Output: out.Name}
}
