package taxonomy

import (
	"strings"

	"taxorf/internal/rank"
)

// AllRanks walks from node up to the root, recording the name of the
// first (closest) ancestor seen at each ranked level. no_rank ancestors
// are skipped except the root itself, which is always recorded regardless
// of its rank (spec.md §4.5).
func (e *Engine) AllRanks(node TaxID) map[string]string {
	result := make(map[string]string)
	n, ok := e.Node(node)
	if !ok {
		return result
	}
	for {
		if n.TaxID == rootTaxID {
			if _, seen := result[n.Rank]; !seen {
				result[n.Rank] = n.Name
			}
			return result
		}
		if n.Rank != rank.NoRank {
			if _, seen := result[n.Rank]; !seen {
				result[n.Rank] = n.Name
			}
		}
		n, _ = e.Node(n.ParentTaxID)
	}
}

// AtRanks projects node onto each requested rank name: the recorded name
// if node's lineage has it, "uc_<name>" if the request is for a rank below
// node's own, or "unknown" otherwise (spec.md §4.5).
func (e *Engine) AtRanks(node TaxID, levels []string) []string {
	result := make([]string, 0, len(levels))
	n, ok := e.Node(node)
	if !ok {
		for range levels {
			result = append(result, "unknown")
		}
		return result
	}
	allRanks := e.AllRanks(node)
	baseLevel, baseOK := rank.LevelOf(n.Rank)
	if !baseOK {
		baseLevel = 0
	}
	ucName := "uc_" + n.Name
	for _, want := range levels {
		if name, ok := allRanks[want]; ok {
			result = append(result, name)
			continue
		}
		if wantLevel, ok := rank.LevelOf(want); ok && wantLevel < baseLevel {
			result = append(result, ucName)
			continue
		}
		result = append(result, "unknown")
	}
	return result
}

// TaxLineage returns the names from the root down to node itself, joined
// by ";".
func (e *Engine) TaxLineage(node TaxID) string {
	n, ok := e.Node(node)
	if !ok {
		return ""
	}
	names := []string{n.Name}
	for !n.isRoot() {
		n, _ = e.Node(n.ParentTaxID)
		names = append(names, n.Name)
	}
	for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
		names[i], names[j] = names[j], names[i]
	}
	return strings.Join(names, ";")
}

// cladeFrame is one stack entry of the iterative post-order walk that
// replaces the source's recursive cladeSummation (spec.md §9).
type cladeFrame struct {
	taxID    TaxID
	childIdx int
	sum      uint64
}

// GetCladeCounts sums taxonCounts over every node's subtree, rooted at
// rootTaxon. Nodes absent from taxonCounts contribute 0 locally but their
// descendants' counts still propagate upward.
func (e *Engine) GetCladeCounts(taxonCounts map[TaxID]uint64, rootTaxon TaxID) map[TaxID]uint64 {
	cladeCounts := make(map[TaxID]uint64)
	root, ok := e.Node(rootTaxon)
	if !ok {
		return cladeCounts
	}

	stack := []*cladeFrame{{taxID: root.TaxID, sum: taxonCounts[root.TaxID]}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		node, _ := e.Node(top.taxID)
		if top.childIdx < len(node.Children) {
			child := node.Children[top.childIdx]
			top.childIdx++
			stack = append(stack, &cladeFrame{taxID: child, sum: taxonCounts[child]})
			continue
		}
		cladeCounts[top.taxID] = top.sum
		stack = stack[:len(stack)-1]
		if len(stack) > 0 {
			stack[len(stack)-1].sum += top.sum
		}
	}
	return cladeCounts
}
