package taxonomy

// lcaHelper returns the internal id of the LCA of the two internal ids i
// and j. Internal id 0 is always the root, so either argument being 0
// short-circuits to the root (spec.md §4.5).
func (e *Engine) lcaHelper(i, j int) int {
	if i == 0 || j == 0 {
		return 0
	}
	if i == j {
		return i
	}
	v1, v2 := e.h[i], e.h[j]
	if v1 > v2 {
		v1, v2 = v2, v1
	}
	return e.e[e.rangeMinimumQuery(v1, v2)]
}

// LCA returns the lowest common ancestor of a and b. If either is absent
// from the engine the other is returned; if either is the reserved "no
// taxon" id 0 the result is 0; equal ids return themselves.
func (e *Engine) LCA(a, b TaxID) TaxID {
	if a == 0 || b == 0 {
		return 0
	}
	if a == b {
		return a
	}
	if !e.nodeExists(a) {
		return b
	}
	if !e.nodeExists(b) {
		return a
	}
	return e.nodeByInternalID(e.lcaHelper(e.internalID(a), e.internalID(b))).TaxID
}

// LCAList folds LCA pairwise, left to right, over taxa, skipping any id
// that does not resolve to a node. warn is called once per skipped id; it
// may be nil. It returns 0 when no id in taxa resolves.
func (e *Engine) LCAList(taxa []TaxID, warn func(TaxID)) TaxID {
	i := 0
	for i < len(taxa) && !e.nodeExists(taxa[i]) {
		if warn != nil {
			warn(taxa[i])
		}
		i++
	}
	if i == len(taxa) {
		return 0
	}
	red := e.internalID(taxa[i])
	for i++; i < len(taxa); i++ {
		if e.nodeExists(taxa[i]) {
			red = e.lcaHelper(red, e.internalID(taxa[i]))
		} else if warn != nil {
			warn(taxa[i])
		}
	}
	return e.nodeByInternalID(red).TaxID
}

// IsAncestor reports whether ancestor is child itself or a true ancestor
// of child. Either id being 0 returns false with no warning, since 0 is
// the reserved "no taxon" id rather than an unknown one; otherwise equal
// ids return true. For distinct ids, either id being unknown (absent from
// the engine) returns false and calls warn, once per unknown id, if warn
// is non-nil (spec.md §4.5, §7).
func (e *Engine) IsAncestor(ancestor, child TaxID, warn func(TaxID)) bool {
	if ancestor == 0 || child == 0 {
		return false
	}
	if ancestor == child {
		return true
	}
	childKnown, ancestorKnown := e.nodeExists(child), e.nodeExists(ancestor)
	if !childKnown && warn != nil {
		warn(child)
	}
	if !ancestorKnown && warn != nil {
		warn(ancestor)
	}
	if !childKnown || !ancestorKnown {
		return false
	}
	return e.lcaHelper(e.internalID(child), e.internalID(ancestor)) == e.internalID(ancestor)
}
