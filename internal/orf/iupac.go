package orf

// complementTable is the 256-entry IUPAC complement map. Most bytes map to
// the invalid sentinel '.'; the literal N->N, S->S, W->W, U->A, T->A
// pattern is deliberate and must be preserved (spec.md §4.6, §9).
var complementTable [256]byte

func init() {
	for i := range complementTable {
		complementTable[i] = '.'
	}
	pairs := map[byte]byte{
		'A': 'T', 'T': 'A', 'C': 'G', 'G': 'C', 'U': 'A',
		'R': 'Y', 'Y': 'R', 'S': 'S', 'W': 'W', 'K': 'M', 'M': 'K',
		'B': 'V', 'V': 'B', 'D': 'H', 'H': 'D', 'N': 'N',
	}
	for upper, comp := range pairs {
		complementTable[upper] = comp
		complementTable[upper+32] = comp + 32 // lowercase mirror
	}
}

// complement returns the IUPAC complement of c, or '.' if c is not a
// recognised base/ambiguity code.
func complement(c byte) byte {
	return complementTable[c]
}

func toUpperByte(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 32
	}
	return c
}

// reverseComplement upper-cases seq and builds its reverse complement. ok
// is false when seq is shorter than 3 bases or any base has no defined
// complement (spec.md §4.6).
func reverseComplement(seq []byte) (upper, rc []byte, ok bool) {
	if len(seq) < 3 {
		return nil, nil, false
	}
	upper = make([]byte, len(seq))
	for i, b := range seq {
		upper[i] = toUpperByte(b)
	}
	rc = make([]byte, len(seq))
	for i := 0; i < len(upper); i++ {
		c := complement(upper[len(upper)-1-i])
		if c == '.' {
			return nil, nil, false
		}
		rc[i] = c
	}
	return upper, rc, true
}
