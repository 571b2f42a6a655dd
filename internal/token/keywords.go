package token

var keywords = map[string]Kind{
	"module":    KwModule,
	"endmodule": KwEndmodule,
	"input":     KwInput,
	"output":    KwOutput,
	"reg":       KwReg,
	"wire":      KwWire,
	"begin":     KwBegin,
	"end":       KwEnd,
	"always":    KwAlways,
	"if":        KwIf,
	"else":      KwElse,
	"posedge":   KwPosedge,
	"negedge":   KwNegedge,
}

// LookupKeyword возвращает Kind ключевого слова или Ident.
func LookupKeyword(text string) Kind {
	if kind, ok := keywords[text]; ok {
		return kind
	}
	return Ident
}
