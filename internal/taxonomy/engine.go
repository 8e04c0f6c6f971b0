package taxonomy

// sentinelNoNode marks a TaxID absent from the engine's node arena.
const sentinelNoNode = -1

// Engine is the read-mostly taxonomy index: the node arena, the TaxID to
// internal-id map, and the Euler-tour/sparse-table RMQ structures that
// answer LCA queries in O(1). Construction is single-threaded; once built,
// every query method is safe to call concurrently (spec.md §5).
type Engine struct {
	nodes    []TaxonNode
	d        []int // TaxID -> internal id, sentinelNoNode when absent
	maxNodes int

	// Euler-tour arrays, length 2*maxNodes. The last slot holds the root's
	// closing entry at depth -1, which no RMQ over first-visit positions reaches.
	e []int // tour of internal ids
	l []int // depth at each tour position
	h []int // internal id -> first tour position

	// Sparse table for range-minimum queries over l, flattened row-major
	// with stride m.cols.
	m struct {
		data []int
		cols int
	}
}

// NumNodes reports how many taxa are loaded.
func (e *Engine) NumNodes() int {
	return e.maxNodes
}

// nodeExists reports whether taxID has a loaded node, including merged
// aliases. TaxID 0 never exists.
func (e *Engine) nodeExists(taxID TaxID) bool {
	if taxID < 0 || int(taxID) >= len(e.d) {
		return false
	}
	return e.d[taxID] != sentinelNoNode
}

// internalID returns the dense internal id for taxID. Callers must check
// nodeExists first; this does not validate.
func (e *Engine) internalID(taxID TaxID) int {
	return e.d[taxID]
}

// Node returns the TaxonNode for taxID and whether it exists. TaxID 0
// never resolves to a node.
func (e *Engine) Node(taxID TaxID) (TaxonNode, bool) {
	if taxID == 0 || !e.nodeExists(taxID) {
		return TaxonNode{}, false
	}
	return e.nodes[e.internalID(taxID)], true
}

func (e *Engine) nodeByInternalID(id int) TaxonNode {
	return e.nodes[id]
}
