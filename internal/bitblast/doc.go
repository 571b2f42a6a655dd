// Package bitblast implements the bus-to-bit lowering pass: every
// multi-bit signal is expanded into 1-bit signals and every high-level
// gate is rewritten into the closed primitive set {AND, OR, XOR, NOT,
// MUX, DFF, BUF}. Adders become ripple-carry chains, equality becomes
// an XNOR tree with AND reduction, and the DFF_EN_RST macro expands
// into enable/reset multiplexers in front of primitive flip-flops.
package bitblast
