package ast

import (
	"volt/internal/source"
)

// Edge describes the trigger edge of a sensitivity entry.
type Edge uint8

const (
	// EdgeLevel is a plain (level) sensitivity entry.
	EdgeLevel Edge = iota
	// EdgePos is a rising-edge entry (posedge).
	EdgePos
	// EdgeNeg is a falling-edge entry (negedge).
	EdgeNeg
)

// Sens is one entry of a sensitivity list.
type Sens struct {
	Edge   Edge
	Signal string
	Span   source.Span
}

// Process represents an always block.
type Process struct {
	Span source.Span
	// Star is true for always @(*).
	Star bool
	Sens []Sens
	Body *Stmt
}

// Clocked reports whether the process triggers on a rising edge.
func (p *Process) Clocked() bool {
	for _, s := range p.Sens {
		if s.Edge == EdgePos {
			return true
		}
	}
	return false
}

// ClockName returns the signal of the first sensitivity entry.
func (p *Process) ClockName() string {
	if len(p.Sens) == 0 {
		return ""
	}
	return p.Sens[0].Signal
}
