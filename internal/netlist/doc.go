// Package netlist defines the intermediate representation of the
// synthesis pipeline: signals (wires and registers), gates at two
// stages (high-level operations after elaboration, 1-bit primitives
// after bit-blasting), and the Module that owns them.
package netlist
