package syntax

import "nanomorpho/report"

// The lowest and highest binary operator priorities.  Priority 2 is the only
// right associative level.
const (
	minPriority        = 1
	maxPriority        = 7
	rightAssocPriority = 2
)

// priorities maps the first character of an operator name to its priority.
// Higher priorities bind tighter.
var priorities = map[byte]int{
	'^': 1, '?': 1, '~': 1,
	':': 2,
	'|': 3,
	'&': 4,
	'!': 5, '=': 5, '<': 5, '>': 5,
	'+': 6, '-': 6,
	'*': 7, '/': 7, '%': 7,
}

// priority returns the binary priority of an operator name.  The priority is
// determined by the operator's first character only, so user-defined operators
// like `+=+` take the priority of `+`.  An operator whose first character has
// no priority raises a syntax error.
func priority(opname string, line int) int {
	if opname != "" {
		if pri, ok := priorities[opname[0]]; ok {
			return pri
		}
	}

	report.RaiseMalformed(line, "invalid operator name", "`"+opname+"`")
	return 0
}
