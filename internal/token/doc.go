// Package token defines the token vocabulary of the supported Verilog
// subset: identifiers, sized integer literals, the handful of keywords a
// synthesizable module uses, and the operator/punctuation set.
package token
