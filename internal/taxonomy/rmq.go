package taxonomy

// log2Floor returns floor(log2(n)) for n >= 1.
func log2Floor(n int) int {
	k := 0
	for (1 << uint(k+1)) <= n {
		k++
	}
	return k
}

// buildSparseTable fills the sparse table M described in spec.md §4.4,
// stored as a single flattened buffer with a computed row stride rather
// than a row-major 2D allocation (spec.md §9).
func (e *Engine) buildSparseTable() {
	dimension := e.maxNodes * 2
	cols := log2Floor(dimension) + 1
	e.m.cols = cols
	e.m.data = make([]int, dimension*cols)

	at := func(i, j int) *int { return &e.m.data[i*cols+j] }

	for i := 0; i < dimension; i++ {
		*at(i, 0) = i
	}
	for j := 1; (1 << uint(j)) <= dimension; j++ {
		half := 1 << uint(j-1)
		for i := 0; i+(1<<uint(j))-1 < dimension; i++ {
			a := *at(i, j-1)
			b := *at(i+half, j-1)
			if e.l[a] <= e.l[b] {
				*at(i, j) = a
			} else {
				*at(i, j) = b
			}
		}
	}
}

// rangeMinimumQuery returns the tour position in [i, j] with the smallest
// depth, breaking ties toward the lower position (spec.md §4.4).
func (e *Engine) rangeMinimumQuery(i, j int) int {
	k := log2Floor(j - i + 1)
	cols := e.m.cols
	a := e.m.data[i*cols+k]
	b := e.m.data[(j-(1<<uint(k))+1)*cols+k]
	if e.l[a] <= e.l[b] {
		return a
	}
	return b
}
