package searcher

import "time"

// Metrics describes a single search call. Counters are local to the call, so
// concurrent searches never mix their numbers.
type Metrics struct {
	Depth    int
	Nodes    int
	Cutoffs  int
	Duration time.Duration
}

type counter struct {
	startTime time.Time
	depth     int
	nodes     int
	cutoffs   int
}

func newCounter(depth int) *counter {
	return &counter{startTime: time.Now(), depth: depth}
}

func (c *counter) addNode() {
	c.nodes++
}

func (c *counter) addCutoff() {
	c.cutoffs++
}

func (c *counter) complete() Metrics {
	return Metrics{
		Depth:    c.depth,
		Nodes:    c.nodes,
		Cutoffs:  c.cutoffs,
		Duration: time.Since(c.startTime),
	}
}
