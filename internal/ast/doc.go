// Package ast defines the syntax tree for the supported Verilog subset:
// one module definition with ports and always processes, statements
// (block, if, assignment) and expressions (identifier, integer literal,
// binary operation). Nodes are kind-tagged variants so the elaboration
// pass can switch exhaustively.
package ast
