// Package diag defines the diagnostic model shared by all pipeline phases:
// severities, stable codes, the Bag accumulator, and the Reporter contract
// that the lexer, parser, and synthesis passes use to emit findings.
package diag
