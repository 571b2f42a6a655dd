package lexer

import "volt/internal/diag"

// Options configures a Lexer instance.
type Options struct {
	// Reporter receives lexical diagnostics; nil discards them.
	Reporter diag.Reporter
}
