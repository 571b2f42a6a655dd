package ast

import (
	"volt/internal/source"
)

// StmtKind enumerates statement kinds.
type StmtKind uint8

const (
	// StmtBlock represents a begin/end block.
	StmtBlock StmtKind = iota
	// StmtIf represents a conditional statement.
	StmtIf
	// StmtAssign represents a blocking or non-blocking assignment.
	StmtAssign
)

func (k StmtKind) String() string {
	switch k {
	case StmtBlock:
		return "Block"
	case StmtIf:
		return "If"
	case StmtAssign:
		return "Assign"
	}
	return "Unknown"
}

// Stmt is a kind-tagged statement node; the payload matching Kind is set.
type Stmt struct {
	Kind StmtKind
	Span source.Span

	Block  []*Stmt
	If     IfStmt
	Assign AssignStmt
}

// IfStmt is the payload of StmtIf.
type IfStmt struct {
	Cond *Expr
	Then *Stmt
	Else *Stmt // nil, если ветки else нет
}

// AssignStmt is the payload of StmtAssign.
type AssignStmt struct {
	Target      string
	TargetSpan  source.Span
	NonBlocking bool // <= вместо =
	RHS         *Expr
}
