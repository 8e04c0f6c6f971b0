// Package gencode supplies genetic-code codon tables to internal/orf's
// Scanner, so the scanner itself stays independent of any one code.
package gencode

// Table is a CodonProvider for one NCBI genetic code.
type Table struct {
	starts []string
	stops  []string
}

func (t Table) StartCodons() []string { return t.starts }
func (t Table) StopCodons() []string  { return t.stops }

// Standard is NCBI genetic code 1, the default used by most prokaryotic
// and eukaryotic nuclear genomes.
var Standard = Table{
	starts: []string{"ATG", "CTG", "TTG"},
	stops:  []string{"TAA", "TAG", "TGA"},
}

// Mitochondrial is NCBI genetic code 2, used by vertebrate mitochondria.
var Mitochondrial = Table{
	starts: []string{"ATT", "ATC", "ATA", "ATG", "GTG"},
	stops:  []string{"TAA", "TAG", "AGA", "AGG"},
}

// ByName resolves one of the named tables, defaulting to Standard for an
// unrecognised or empty name.
func ByName(name string) Table {
	switch name {
	case "mitochondrial":
		return Mitochondrial
	default:
		return Standard
	}
}
