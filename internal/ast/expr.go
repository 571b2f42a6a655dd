package ast

import (
	"volt/internal/source"
)

// ExprKind enumerates expression kinds.
type ExprKind uint8

const (
	// ExprIdent represents a signal reference.
	ExprIdent ExprKind = iota
	// ExprIntLit represents an integer literal.
	ExprIntLit
	// ExprBinary represents a binary operation.
	ExprBinary
)

func (k ExprKind) String() string {
	switch k {
	case ExprIdent:
		return "Ident"
	case ExprIntLit:
		return "IntLit"
	case ExprBinary:
		return "Binary"
	}
	return "Unknown"
}

// BinOp enumerates the supported binary operators.
type BinOp uint8

const (
	// BinAdd represents '+'.
	BinAdd BinOp = iota
	// BinEq represents '=='.
	BinEq
	// BinLand represents '&&'.
	BinLand
	// BinLor represents '||'.
	BinLor
)

func (op BinOp) String() string {
	switch op {
	case BinAdd:
		return "+"
	case BinEq:
		return "=="
	case BinLand:
		return "&&"
	case BinLor:
		return "||"
	}
	return "?"
}

// Expr is a kind-tagged expression node; the payload matching Kind is set.
type Expr struct {
	Kind ExprKind
	Span source.Span

	Ident  string
	Lit    IntLit
	Binary BinaryExpr
}

// IntLit keeps the literal text verbatim; the numeric value and width are
// decoded during elaboration.
type IntLit struct {
	Text string
}

// BinaryExpr is the payload of ExprBinary.
type BinaryExpr struct {
	Op    BinOp
	Left  *Expr
	Right *Expr
}
