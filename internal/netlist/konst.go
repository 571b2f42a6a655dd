package netlist

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Constant signals are named so that their numeric value and width can be
// recovered from the name alone: K_<value>_<width>_c<serial>. The serial
// keeps repeated literals distinct within a module.

const (
	// FalseName is the global logic-0 constant signal.
	FalseName = "$false"
	// TrueName is the global logic-1 constant signal.
	TrueName = "$true"

	constPrefix = "K_"
)

var constNameRe = regexp.MustCompile(`^K_(\d+)_(\d+)_c\d+$`)

// ConstName encodes a constant value and width into a signal name.
func ConstName(value uint64, width int, serial uint32) string {
	return fmt.Sprintf("%s%d_%d_c%d", constPrefix, value, width, serial)
}

// IsConstName reports whether the name follows the constant encoding.
func IsConstName(name string) bool {
	return strings.HasPrefix(name, constPrefix)
}

// ParseConstName decodes value and width from a constant signal name.
// A malformed payload yields value 0 (defined recovery, not an error);
// width falls back to widthHint in that case.
func ParseConstName(name string, widthHint int) (value uint64, width int) {
	m := constNameRe.FindStringSubmatch(name)
	if m == nil {
		if widthHint < 1 {
			widthHint = 1
		}
		return 0, widthHint
	}
	value, err := strconv.ParseUint(m[1], 10, 64)
	if err != nil {
		value = 0
	}
	width, err = strconv.Atoi(m[2])
	if err != nil || width < 1 {
		width = widthHint
		if width < 1 {
			width = 1
		}
	}
	return value, width
}
