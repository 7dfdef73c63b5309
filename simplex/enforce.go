package simplex

import (
	"fmt"
	"strings"
)

// enforce halts the engine when an internal invariant is broken. These are
// bugs, not runtime conditions, so there is nothing to recover.
func enforce(ok bool, args ...interface{}) {
	if ok {
		return
	}
	panic("simplex: invariant violated: " + strings.TrimSuffix(fmt.Sprintln(args...), "\n"))
}
