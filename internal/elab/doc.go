// Package elab implements elaboration: lowering the parsed syntax tree
// into a structural netlist of high-level operators (ADD, EQ, MUX,
// AND, OR, DFF_EN_RST, NOT, BUF). Clocked processes matching the
// reset/enable pattern become DFF_EN_RST macro gates; unclocked
// processes become inferred MUX trees per driven target.
package elab
