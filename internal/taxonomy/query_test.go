package taxonomy

import (
	"reflect"
	"testing"
)

func TestLCABasic(t *testing.T) {
	e := loadTestEngine(t)

	if got := e.LCA(5, 1); got != 1 {
		t.Fatalf("LCA(5, root) = %d, want 1", got)
	}
	if got := e.LCA(5, 5); got != 5 {
		t.Fatalf("LCA(5, 5) = %d, want 5", got)
	}
	if got := e.LCA(5, 3); got != 3 {
		t.Fatalf("LCA(5, 3) = %d, want 3", got)
	}
	if got := e.LCA(0, 5); got != 0 {
		t.Fatalf("LCA(0, 5) = %d, want 0", got)
	}
	if got := e.LCA(5, 0); got != 0 {
		t.Fatalf("LCA(5, 0) = %d, want 0", got)
	}
}

func TestLCAUnknownTaxonReturnsOther(t *testing.T) {
	e := loadTestEngine(t)
	if got := e.LCA(999, 5); got != 5 {
		t.Fatalf("LCA(unknown, 5) = %d, want 5", got)
	}
	if got := e.LCA(5, 999); got != 5 {
		t.Fatalf("LCA(5, unknown) = %d, want 5", got)
	}
}

func TestLCAListFoldsPairwise(t *testing.T) {
	e := loadTestEngine(t)
	var skipped []TaxID
	got := e.LCAList([]TaxID{5, 3, 999, 2}, func(id TaxID) { skipped = append(skipped, id) })
	if got != 2 {
		t.Fatalf("LCAList = %d, want 2", got)
	}
	if !reflect.DeepEqual(skipped, []TaxID{999}) {
		t.Fatalf("expected only 999 skipped, got %v", skipped)
	}
}

func TestLCAListAllUnknownReturnsZero(t *testing.T) {
	e := loadTestEngine(t)
	if got := e.LCAList([]TaxID{999, 998}, nil); got != 0 {
		t.Fatalf("expected 0 when no taxon resolves, got %d", got)
	}
}

func TestIsAncestor(t *testing.T) {
	e := loadTestEngine(t)
	if !e.IsAncestor(1, 5, nil) {
		t.Fatalf("expected root to be an ancestor of 5")
	}
	if !e.IsAncestor(5, 5, nil) {
		t.Fatalf("expected a taxon to be its own ancestor")
	}
	if e.IsAncestor(5, 1, nil) {
		t.Fatalf("expected 5 not to be an ancestor of root")
	}
	if e.IsAncestor(0, 5, nil) || e.IsAncestor(5, 0, nil) {
		t.Fatalf("expected taxon 0 to never be an ancestor or descendant")
	}
}

func TestIsAncestorWarnsOnUnknownIDs(t *testing.T) {
	e := loadTestEngine(t)
	var warned []TaxID
	warn := func(id TaxID) { warned = append(warned, id) }

	if e.IsAncestor(999, 5, warn) {
		t.Fatalf("expected unknown ancestor to return false")
	}
	if !reflect.DeepEqual(warned, []TaxID{999}) {
		t.Fatalf("expected warn(999), got %v", warned)
	}

	warned = nil
	if e.IsAncestor(1, 999, warn) {
		t.Fatalf("expected unknown child to return false")
	}
	if !reflect.DeepEqual(warned, []TaxID{999}) {
		t.Fatalf("expected warn(999), got %v", warned)
	}

	warned = nil
	if e.IsAncestor(0, 5, warn) || e.IsAncestor(5, 0, warn) {
		t.Fatalf("expected taxon 0 to never be an ancestor or descendant")
	}
	if warned != nil {
		t.Fatalf("expected no warning for the reserved id 0, got %v", warned)
	}
}

func TestTaxLineageIncludesRootAndLeaf(t *testing.T) {
	e := loadTestEngine(t)
	got := e.TaxLineage(5)
	want := "name1;name2;name3;name5"
	if got != want {
		t.Fatalf("TaxLineage(5) = %q, want %q", got, want)
	}
}

func TestAllRanksRecordsClosestPerRank(t *testing.T) {
	e := loadTestEngine(t)
	ranks := e.AllRanks(5)
	if ranks["species"] != "name5" {
		t.Fatalf("expected species=name5, got %v", ranks)
	}
	if ranks["genus"] != "name3" {
		t.Fatalf("expected genus=name3, got %v", ranks)
	}
	if ranks["superkingdom"] != "name2" {
		t.Fatalf("expected superkingdom=name2, got %v", ranks)
	}
	if ranks["no_rank"] != "name1" {
		t.Fatalf("expected root recorded under no_rank, got %v", ranks)
	}
}

func TestAtRanksProjectsAboveBelowAndUnknown(t *testing.T) {
	e := loadTestEngine(t)
	got := e.AtRanks(3, []string{"genus", "species", "superkingdom", "phylum"})
	want := []string{"name3", "uc_name3", "name2", "unknown"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("AtRanks = %v, want %v", got, want)
	}
}

func TestGetCladeCountsSumsSubtrees(t *testing.T) {
	e := loadTestEngine(t)
	counts := map[TaxID]uint64{5: 3, 3: 1, 2: 0, 1: 0}
	clade := e.GetCladeCounts(counts, 1)
	if clade[5] != 3 {
		t.Fatalf("clade[5] = %d, want 3", clade[5])
	}
	if clade[3] != 4 {
		t.Fatalf("clade[3] = %d, want 4", clade[3])
	}
	if clade[2] != 4 {
		t.Fatalf("clade[2] = %d, want 4", clade[2])
	}
	if clade[1] != 4 {
		t.Fatalf("clade[1] = %d, want 4", clade[1])
	}
}
