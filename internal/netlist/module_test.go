package netlist

import (
	"testing"
)

func TestGetOrCreate_AssignsSequentialIDs(t *testing.T) {
	m := NewModule("m")
	a := m.GetOrCreate("a", 1, FlagInput)
	b := m.GetOrCreate("b", 8, FlagOutput)

	if !a.ID.IsValid() || !b.ID.IsValid() {
		t.Fatal("created signals must have valid IDs")
	}
	if a.ID == b.ID {
		t.Fatal("distinct signals share an ID")
	}
	if m.GetOrCreate("a", 1, 0) != a {
		t.Error("GetOrCreate must return the same instance for the same name")
	}
}

func TestGetOrCreate_WidthPromotion(t *testing.T) {
	m := NewModule("m")
	s := m.GetOrCreate("bus", 1, 0)
	if s.Width != 1 {
		t.Fatalf("Width = %d, want 1", s.Width)
	}

	// ширина по умолчанию продвигается до первой реальной
	m.GetOrCreate("bus", 8, 0)
	if s.Width != 8 {
		t.Fatalf("Width = %d after promotion, want 8", s.Width)
	}

	// уже известная ширина назад не откатывается
	m.GetOrCreate("bus", 4, 0)
	if s.Width != 8 {
		t.Errorf("Width = %d, promotion must be one-way", s.Width)
	}
}

func TestGetOrCreate_FlagsMerge(t *testing.T) {
	m := NewModule("m")
	m.GetOrCreate("q", 1, FlagOutput)
	s := m.GetOrCreate("q", 1, FlagReg)

	if !s.Output || !s.Reg {
		t.Errorf("flags must OR-merge: Output=%v Reg=%v", s.Output, s.Reg)
	}
	if s.Input {
		t.Error("Input flag appeared out of nowhere")
	}
}

func TestFresh_UniqueNames(t *testing.T) {
	m := NewModule("m")
	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		s := m.Fresh("tmp_MUX", 1)
		if seen[s.Name] {
			t.Fatalf("Fresh produced duplicate name %q", s.Name)
		}
		seen[s.Name] = true
	}
}

func TestNames_InsertionOrder(t *testing.T) {
	m := NewModule("m")
	for _, name := range []string{"z", "a", "k"} {
		m.GetOrCreate(name, 1, 0)
	}
	got := m.Names()
	want := []string{"z", "a", "k"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Names()[%d] = %q, want %q (insertion order)", i, got[i], want[i])
		}
	}
}

func TestRemove(t *testing.T) {
	m := NewModule("m")
	m.GetOrCreate("a", 8, 0)
	m.GetOrCreate("b", 1, 0)

	m.Remove("a")
	if m.Get("a") != nil {
		t.Error("removed signal still resolvable")
	}
	if len(m.Names()) != 1 || m.Names()[0] != "b" {
		t.Errorf("Names() = %v after Remove, want [b]", m.Names())
	}

	// удаление несуществующего — no-op
	m.Remove("ghost")
}

func TestAddHigh_ArityPanics(t *testing.T) {
	m := NewModule("m")
	a := m.GetOrCreate("a", 1, 0)
	out := m.GetOrCreate("y", 1, 0)

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on arity mismatch")
		}
	}()
	m.AddHigh(HighMux, []*Signal{a}, out) // MUX ждёт 3 входа
}

func TestValidate_ForeignSignal(t *testing.T) {
	m := NewModule("m")
	a := m.GetOrCreate("a", 1, 0)
	out := m.GetOrCreate("y", 1, 0)
	m.AddHigh(HighBuf, []*Signal{a}, out)

	if err := m.Validate(); err != nil {
		t.Fatalf("valid module rejected: %v", err)
	}

	// сигнал из другого модуля
	other := NewModule("other")
	foreign := other.GetOrCreate("f", 1, 0)
	m.AddHigh(HighBuf, []*Signal{foreign}, out)
	if err := m.Validate(); err == nil {
		t.Fatal("foreign input must fail validation")
	}
}

func TestValidatePrimitive_WidthAndDrivers(t *testing.T) {
	m := NewModule("m")
	a := m.GetOrCreate("a", 1, FlagInput)
	y := m.GetOrCreate("y", 1, FlagOutput)
	m.AddPrim(PrimBuf, []*Signal{a}, y)

	if err := m.ValidatePrimitive(); err != nil {
		t.Fatalf("valid primitive module rejected: %v", err)
	}

	// второй драйвер того же выхода
	m.AddPrim(PrimNot, []*Signal{a}, y)
	if err := m.ValidatePrimitive(); err == nil {
		t.Fatal("double driver must fail validation")
	}
}

func TestValidatePrimitive_RejectsWideSignals(t *testing.T) {
	m := NewModule("m")
	m.GetOrCreate("bus", 8, 0)
	if err := m.ValidatePrimitive(); err == nil {
		t.Fatal("width > 1 must fail the primitive invariant")
	}
}

func TestSnapshot_PrefersPrims(t *testing.T) {
	m := NewModule("top")
	a := m.GetOrCreate("a", 1, FlagInput)
	y := m.GetOrCreate("y", 1, FlagOutput)
	m.AddHigh(HighBuf, []*Signal{a}, y)

	snap := m.Snapshot()
	if snap.Schema != SnapshotSchemaVersion {
		t.Errorf("Schema = %d, want %d", snap.Schema, SnapshotSchemaVersion)
	}
	if snap.Module != "top" {
		t.Errorf("Module = %q, want %q", snap.Module, "top")
	}
	if len(snap.Gates) != 1 || snap.Gates[0].Op != "BUF" {
		t.Fatalf("expected one BUF gate record, got %+v", snap.Gates)
	}

	// после появления примитивов снимок переключается на них
	m.AddPrim(PrimAnd, []*Signal{a, a}, y)
	snap = m.Snapshot()
	if len(snap.Gates) != 1 || snap.Gates[0].Op != "AND" {
		t.Fatalf("snapshot must record primitives once they exist, got %+v", snap.Gates)
	}
}
