// Package rank holds the fixed total order over named taxonomic ranks.
package rank

// NoRank is the sentinel rank name that carries no position in the order.
const NoRank = "no_rank"

var levels = map[string]int{
	"forma":            1,
	"varietas":         2,
	"subspecies":       3,
	"species":          4,
	"species subgroup": 5,
	"species group":    6,
	"subgenus":         7,
	"genus":            8,
	"subtribe":         9,
	"tribe":            10,
	"subfamily":        11,
	"family":           12,
	"superfamily":      13,
	"parvorder":        14,
	"infraorder":       15,
	"suborder":         16,
	"order":            17,
	"superorder":       18,
	"infraclass":       19,
	"subclass":         20,
	"class":            21,
	"superclass":       22,
	"subphylum":        23,
	"phylum":           24,
	"superphylum":      25,
	"subkingdom":       26,
	"kingdom":          27,
	"superkingdom":     28,
}

// LevelOf returns the position of name in the total order. ok is false for
// unrecognised names, including the no_rank sentinel.
func LevelOf(name string) (level int, ok bool) {
	level, ok = levels[name]
	return
}
