package netlist

import (
	"testing"
)

func TestConstName_RoundTrip(t *testing.T) {
	tests := []struct {
		value uint64
		width int
	}{
		{0, 1},
		{1, 1},
		{5, 3},
		{255, 8},
		{1 << 31, 32},
	}
	for _, tt := range tests {
		name := ConstName(tt.value, tt.width, 7)
		if !IsConstName(name) {
			t.Errorf("IsConstName(%q) = false", name)
		}
		value, width := ParseConstName(name, 0)
		if value != tt.value || width != tt.width {
			t.Errorf("ParseConstName(%q) = (%d, %d), want (%d, %d)",
				name, value, width, tt.value, tt.width)
		}
	}
}

func TestConstSignal_SerialKeepsDistinct(t *testing.T) {
	m := NewModule("m")
	a := m.ConstSignal(5, 4)
	b := m.ConstSignal(5, 4)
	if a == b || a.Name == b.Name {
		t.Fatal("repeated literals must get distinct signals")
	}
}

func TestParseConstName_MalformedYieldsZero(t *testing.T) {
	tests := []string{
		"K_",
		"K_abc_4_c0",
		"K_5_4",       // нет серийного суффикса
		"K_5__c0",     // пустая ширина
		"K_1_2_c3_c4", // лишний хвост
	}
	for _, name := range tests {
		value, width := ParseConstName(name, 8)
		if value != 0 {
			t.Errorf("ParseConstName(%q) value = %d, want 0", name, value)
		}
		if width != 8 {
			t.Errorf("ParseConstName(%q) width = %d, want hint 8", name, width)
		}
	}
}

func TestIsConstName_Negative(t *testing.T) {
	for _, name := range []string{"a", "$true", "Kout", "tmp_ADD_0"} {
		if IsConstName(name) {
			t.Errorf("IsConstName(%q) = true", name)
		}
	}
}
