// Package metrics provides per-scan counter collection.
//
// The Collector accumulates counters during a single scan. It is a leaf
// package with no internal dependencies beyond types. Counters are absorbed
// into the report summary at scan completion.
package metrics

import (
	"sync"

	"github.com/scenewright/sceneqc/types"
)

// Collector accumulates counters during a single scan.
// Thread-safe via sync.Mutex. All increment methods are nil-receiver safe,
// so validators can run without a collector wired in.
type Collector struct {
	mu sync.Mutex

	primsVisited int64
	attrsChecked int64
	attrsSkipped int64
	errorsByKind map[types.ErrorKind]int64
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{errorsByKind: map[types.ErrorKind]int64{}}
}

// PrimVisited records one prim pre-order visit.
func (c *Collector) PrimVisited() {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.primsVisited++
	c.mu.Unlock()
}

// AttrChecked records one attribute that entered cardinality checking.
func (c *Collector) AttrChecked() {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.attrsChecked++
	c.mu.Unlock()
}

// AttrSkipped records one attribute skipped as unclassified or unreadable.
func (c *Collector) AttrSkipped() {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.attrsSkipped++
	c.mu.Unlock()
}

// ErrorDetected records one detected validation error by kind.
func (c *Collector) ErrorDetected(kind types.ErrorKind) {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.errorsByKind[kind]++
	c.mu.Unlock()
}

// Summary returns an atomic snapshot of the counters as a report summary.
func (c *Collector) Summary() types.ScanSummary {
	if c == nil {
		return types.ScanSummary{}
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	byKind := make(map[types.ErrorKind]int64, len(c.errorsByKind))
	for k, v := range c.errorsByKind {
		byKind[k] = v
	}
	return types.ScanSummary{
		PrimsVisited: c.primsVisited,
		AttrsChecked: c.attrsChecked,
		AttrsSkipped: c.attrsSkipped,
		ErrorsByKind: byKind,
	}
}
