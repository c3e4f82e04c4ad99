package figure

import (
	"fmt"
	"sync"
)

// Namer hands out unique names. Each base string keeps its own counter,
// so successive requests for "h" yield "h_0", "h_1" and so on. A Namer
// is safe for concurrent use.
//
// Figures constructed without an explicit Namer share a process-wide
// instance, which keeps figure and clone names unique across all of
// them. Tests that need deterministic names pass their own.
type Namer struct {
	mu     sync.Mutex
	counts map[string]int
}

// NewNamer returns an empty Namer.
func NewNamer() *Namer {
	return &Namer{counts: make(map[string]int)}
}

// Next returns base with its next free suffix appended.
func (n *Namer) Next(base string) string {
	n.mu.Lock()
	defer n.mu.Unlock()
	c := n.counts[base]
	n.counts[base]++
	return fmt.Sprintf("%s_%d", base, c)
}

var defaultNamer = NewNamer()

// DefaultNamer returns the process-wide Namer used by figures created
// without one.
func DefaultNamer() *Namer { return defaultNamer }
