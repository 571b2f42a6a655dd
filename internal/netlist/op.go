package netlist

// HighOp enumerates the high-level gate operations produced by elaboration.
type HighOp uint8

const (
	// HighAdd represents multi-bit addition.
	HighAdd HighOp = iota
	// HighEq represents equality comparison (1-bit result).
	HighEq
	// HighMux represents a 2-way multiplexer [sel, true, false].
	HighMux
	// HighAnd represents logical AND.
	HighAnd
	// HighOr represents logical OR.
	HighOr
	// HighDFFEnRst represents the clocked register macro with synchronous
	// reset (priority) and enable: [next, current, en, rstval, rst, clk].
	HighDFFEnRst
	// HighNot represents inversion.
	HighNot
	// HighBuf represents a buffer (explicit connection).
	HighBuf
)

func (op HighOp) String() string {
	switch op {
	case HighAdd:
		return "ADD"
	case HighEq:
		return "EQ"
	case HighMux:
		return "MUX"
	case HighAnd:
		return "AND"
	case HighOr:
		return "OR"
	case HighDFFEnRst:
		return "DFF_EN_RST"
	case HighNot:
		return "NOT"
	case HighBuf:
		return "BUF"
	}
	return "UNKNOWN"
}

// Arity returns the fixed input count of the operation.
func (op HighOp) Arity() int {
	switch op {
	case HighAdd, HighEq, HighAnd, HighOr:
		return 2
	case HighMux:
		return 3
	case HighDFFEnRst:
		return 6
	case HighNot, HighBuf:
		return 1
	}
	return 0
}

// PrimOp enumerates the closed set of 1-bit primitives after bit-blasting.
type PrimOp uint8

const (
	// PrimAnd is a 2-input AND.
	PrimAnd PrimOp = iota
	// PrimOr is a 2-input OR.
	PrimOr
	// PrimXor is a 2-input XOR.
	PrimXor
	// PrimNot is an inverter.
	PrimNot
	// PrimMux is a 1-bit multiplexer [sel, true, false].
	PrimMux
	// PrimDFF is a rising-edge flip-flop [d, clk].
	PrimDFF
	// PrimBuf is a buffer.
	PrimBuf
)

func (op PrimOp) String() string {
	switch op {
	case PrimAnd:
		return "AND"
	case PrimOr:
		return "OR"
	case PrimXor:
		return "XOR"
	case PrimNot:
		return "NOT"
	case PrimMux:
		return "MUX"
	case PrimDFF:
		return "DFF"
	case PrimBuf:
		return "BUF"
	}
	return "UNKNOWN"
}

// Arity returns the fixed input count of the primitive.
func (op PrimOp) Arity() int {
	switch op {
	case PrimAnd, PrimOr, PrimXor, PrimDFF:
		return 2
	case PrimMux:
		return 3
	case PrimNot, PrimBuf:
		return 1
	}
	return 0
}
