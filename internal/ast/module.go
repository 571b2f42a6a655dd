package ast

import (
	"volt/internal/source"
)

// PortDir distinguishes input and output ports.
type PortDir uint8

const (
	// DirInput marks an input port.
	DirInput PortDir = iota
	// DirOutput marks an output port.
	DirOutput
)

func (d PortDir) String() string {
	if d == DirInput {
		return "input"
	}
	return "output"
}

// Port represents a declared module port.
type Port struct {
	Name     string
	Dir      PortDir
	IsReg    bool
	HasRange bool
	MSB      int
	LSB      int
	Span     source.Span
}

// Width returns the declared bit width of the port (1 without a range).
func (p Port) Width() int {
	if !p.HasRange {
		return 1
	}
	w := p.MSB - p.LSB
	if w < 0 {
		w = -w
	}
	return w + 1
}

// Module represents a single parsed module definition.
type Module struct {
	Name      string
	Span      source.Span
	Ports     []Port
	Processes []Process
}
