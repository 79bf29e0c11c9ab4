package branchline

import (
	"fmt"
	"os"
	"time"
)

// debugStats holds per-frame timing metrics.
// Only populated when Scene.debug is true.
type debugStats struct {
	traverseTime time.Duration
	submitTime   time.Duration
	commandCount int
}

// debugLog prints frame timing to stderr.
func (s *Scene) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[branchline] traverse: %v | submit: %v | total: %v | commands: %d\n",
		stats.traverseTime, stats.submitTime, stats.traverseTime+stats.submitTime, stats.commandCount)
}

// debugf prints one prefixed line to stderr. Callers check the debug flag.
func debugf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[branchline] "+format+"\n", args...)
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("branchline debug: %s on disposed node %q (ID was %d)", op, n.Name, n.ID))
	}
}

// debugCheckChildCount warns on stderr if a node has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		debugf("warning: node %q has %d children (threshold %d)", n.Name, len(n.children), debugMaxChildCount)
	}
}
