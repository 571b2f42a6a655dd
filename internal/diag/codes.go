package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0

	// Лексические
	LexUnknownChar              Code = 1001
	LexBadLiteral               Code = 1002
	LexUnterminatedBlockComment Code = 1003

	// Парсерные
	SynUnexpectedToken Code = 2001
	SynExpectSemicolon Code = 2002
	SynNoModule        Code = 2003
	SynExpectIdent     Code = 2004
	SynBadRange        Code = 2005
	SynBadSensList     Code = 2006
	SynBadPort         Code = 2007

	// Элаборация
	ElabUnsupportedExpr    Code = 3001
	ElabUnsupportedProcess Code = 3002
	ElabLatchInferred      Code = 3003

	// Бит-бласт
	BlastUnsupportedOp Code = 4001

	// Экспорт
	ExportUnsupportedOp Code = 5001
)

var codeDescription = map[Code]string{
	UnknownCode: "unknown error",

	LexUnknownChar:              "unknown character",
	LexBadLiteral:               "malformed integer literal",
	LexUnterminatedBlockComment: "unterminated block comment",

	SynUnexpectedToken: "unexpected token",
	SynExpectSemicolon: "expected ';'",
	SynNoModule:        "no module definition found",
	SynExpectIdent:     "expected identifier",
	SynBadRange:        "malformed bit range",
	SynBadSensList:     "malformed sensitivity list",
	SynBadPort:         "malformed port declaration",

	ElabUnsupportedExpr:    "unsupported expression",
	ElabUnsupportedProcess: "unsupported process shape",
	ElabLatchInferred:      "latch inferred",

	BlastUnsupportedOp: "unsupported gate operation",

	ExportUnsupportedOp: "unsupported gate operation in export",
}

// ID returns the stable short identifier of the code, grouped by pipeline phase.
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("ELB%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("BLT%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("EXP%04d", ic)
	default:
		return fmt.Sprintf("UNK%04d", ic)
	}
}

// Title returns the human description of the code.
func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
