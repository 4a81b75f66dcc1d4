package searcher

import (
	"sync/atomic"
	"time"
)

// SearchMetric describes one completed search.
type SearchMetric struct {
	Depth    int
	Duration time.Duration
	Nodes    int
	Cutoffs  int
}

type Collector interface {
	Start(depth int)
	AddNode()
	AddCutoff()
	Complete() SearchMetric
}

type collector struct {
	depth     int
	startTime time.Time
	nodes     atomic.Int64
	cutoffs   atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(depth int) {
	c.depth = depth
	c.startTime = time.Now()
	c.nodes.Store(0)
	c.cutoffs.Store(0)
}

func (c *collector) AddNode() {
	c.nodes.Add(1)
}

func (c *collector) AddCutoff() {
	c.cutoffs.Add(1)
}

func (c *collector) Complete() SearchMetric {
	return SearchMetric{
		Depth:    c.depth,
		Duration: time.Since(c.startTime),
		Nodes:    int(c.nodes.Load()),
		Cutoffs:  int(c.cutoffs.Load()),
	}
}

// dummyCollector does nothing; it is the default so that uninstrumented
// searches pay no bookkeeping cost.
type dummyCollector struct{}

func NewDummyCollector() Collector { return dummyCollector{} }

func (dummyCollector) Start(int)              {}
func (dummyCollector) AddNode()               {}
func (dummyCollector) AddCutoff()             {}
func (dummyCollector) Complete() SearchMetric { return SearchMetric{} }
