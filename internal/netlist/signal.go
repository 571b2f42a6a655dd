package netlist

import (
	"fmt"
)

// SignalID uniquely identifies a signal within its Module. IDs are assigned
// monotonically at creation time and are the only identity used for
// hashing and graph keys; pointer identity is never relied on.
type SignalID uint32

// NoSignalID is the zero, never-assigned ID.
const NoSignalID SignalID = 0

// IsValid reports whether the ID was assigned by a Module.
func (id SignalID) IsValid() bool { return id != NoSignalID }

// BitName returns the name of bit i of a bus signal; index 0 is the LSB.
func BitName(base string, i int) string {
	return fmt.Sprintf("%s_%d", base, i)
}

// Flag is a bitset of signal attributes.
type Flag uint8

const (
	// FlagInput marks a primary input.
	FlagInput Flag = 1 << iota
	// FlagOutput marks a primary output.
	FlagOutput
	// FlagReg marks a register (sequential element target).
	FlagReg
)

// Signal represents a wire or register in the design.
type Signal struct {
	ID     SignalID
	Name   string
	Width  int
	Input  bool
	Output bool
	Reg    bool
}

func (s *Signal) String() string {
	dir := "WIRE"
	if s.Input {
		dir = "IN"
	} else if s.Output {
		dir = "OUT"
	}
	kind := "NET"
	if s.Reg {
		kind = "REG"
	}
	return fmt.Sprintf("<%s [%d] %s %s>", s.Name, s.Width, dir, kind)
}
