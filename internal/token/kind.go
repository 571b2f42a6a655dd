package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// IntLit represents an integer literal, sized (4'b1010) or plain (42).
	IntLit

	// KwModule represents the 'module' keyword.
	KwModule // module
	// KwEndmodule represents the 'endmodule' keyword.
	KwEndmodule // endmodule
	// KwInput represents the 'input' keyword.
	KwInput // input
	// KwOutput represents the 'output' keyword.
	KwOutput // output
	// KwReg represents the 'reg' keyword.
	KwReg // reg
	// KwWire represents the 'wire' keyword.
	KwWire // wire
	// KwBegin represents the 'begin' keyword.
	KwBegin // begin
	// KwEnd represents the 'end' keyword.
	KwEnd // end
	// KwAlways represents the 'always' keyword.
	KwAlways // always
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwPosedge represents the 'posedge' keyword.
	KwPosedge // posedge
	// KwNegedge represents the 'negedge' keyword.
	KwNegedge // negedge

	// Plus represents '+'.
	Plus
	// EqEq represents '=='.
	EqEq
	// AndAnd represents '&&'.
	AndAnd
	// OrOr represents '||'.
	OrOr
	// Assign represents '=' (blocking assignment).
	Assign
	// LtAssign represents '<=' (non-blocking assignment).
	LtAssign
	// At represents '@'.
	At
	// Star represents '*'.
	Star
	// LParen represents '('.
	LParen
	// RParen represents ')'.
	RParen
	// LBracket represents '['.
	LBracket
	// RBracket represents ']'.
	RBracket
	// Colon represents ':'.
	Colon
	// Semicolon represents ';'.
	Semicolon
	// Comma represents ','.
	Comma
)

var kindNames = map[Kind]string{
	Invalid:     "Invalid",
	EOF:         "EOF",
	Ident:       "Ident",
	IntLit:      "IntLit",
	KwModule:    "module",
	KwEndmodule: "endmodule",
	KwInput:     "input",
	KwOutput:    "output",
	KwReg:       "reg",
	KwWire:      "wire",
	KwBegin:     "begin",
	KwEnd:       "end",
	KwAlways:    "always",
	KwIf:        "if",
	KwElse:      "else",
	KwPosedge:   "posedge",
	KwNegedge:   "negedge",
	Plus:        "+",
	EqEq:        "==",
	AndAnd:      "&&",
	OrOr:        "||",
	Assign:      "=",
	LtAssign:    "<=",
	At:          "@",
	Star:        "*",
	LParen:      "(",
	RParen:      ")",
	LBracket:    "[",
	RBracket:    "]",
	Colon:       ":",
	Semicolon:   ";",
	Comma:       ",",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Unknown"
}
