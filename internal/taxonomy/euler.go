package taxonomy

// rootTaxID is the canonical root of the tree: it is expected to be the
// first entry in the nodes file and is the only node whose parent is
// itself (spec.md §3, §4.3).
const rootTaxID TaxID = 1

// eulerFrame is one stack entry of the iterative walk that replaces the
// source's recursive elh(); taxonomies can be arbitrarily deep, so the
// walk keeps its own work stack instead of the call stack (spec.md §9).
type eulerFrame struct {
	taxID    TaxID
	level    int
	childIdx int
}

// buildEulerTour performs the DFS described in spec.md §4.3, filling e.e,
// e.l and e.h. On entering a node, if it has not been visited before its
// first tour position is recorded in h; the node is appended to the tour
// on entry and again after every child returns, including once more after
// its own last child (the source appends the parent id unconditionally,
// even for the root, producing a final root entry at level -1 that no
// valid RMQ ever addresses).
func (e *Engine) buildEulerTour() {
	e.h = make([]int, e.maxNodes)
	e.e = make([]int, 0, e.maxNodes*2)
	e.l = make([]int, 0, e.maxNodes*2)

	stack := []eulerFrame{{taxID: rootTaxID, level: 0, childIdx: -1}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.childIdx == -1 {
			id := e.internalID(top.taxID)
			if e.h[id] == 0 {
				e.h[id] = len(e.e)
			}
			e.e = append(e.e, id)
			e.l = append(e.l, top.level)
			top.childIdx = 0
		}

		node := e.nodeByInternalID(e.internalID(top.taxID))
		if top.childIdx < len(node.Children) {
			child := node.Children[top.childIdx]
			top.childIdx++
			stack = append(stack, eulerFrame{taxID: child, level: top.level + 1, childIdx: -1})
			continue
		}

		parentID := e.internalID(node.ParentTaxID)
		e.e = append(e.e, parentID)
		e.l = append(e.l, top.level-1)
		stack = stack[:len(stack)-1]
	}

	for len(e.e) < e.maxNodes*2 {
		e.e = append(e.e, 0)
		e.l = append(e.l, 0)
	}
}
