package taxonomy

import (
	"os"
	"path/filepath"
	"testing"
)

// writeDumpFiles builds a tiny four-node tree:
//
//	1 (root)
//	└─ 2
//	   └─ 3
//	      └─ 5
//	4 is merged into 3.
func writeDumpFiles(t *testing.T) (nodes, names, merged string) {
	t.Helper()
	dir := t.TempDir()

	nodesData := "" +
		"1\t|\t1\t|\tno_rank\t|\n" +
		"2\t|\t1\t|\tsuperkingdom\t|\n" +
		"3\t|\t2\t|\tgenus\t|\n" +
		"5\t|\t3\t|\tspecies\t|\n"
	namesData := "" +
		"1\t|\tname1\t|\t\t|\tscientific name\t|\n" +
		"2\t|\tname2\t|\t\t|\tscientific name\t|\n" +
		"3\t|\tname3\t|\t\t|\tscientific name\t|\n" +
		"3\t|\tsynonym3\t|\t\t|\tsynonym\t|\n" +
		"5\t|\tname5\t|\t\t|\tscientific name\t|\n"
	mergedData := "4\t|\t3\t|\n"

	nodes = filepath.Join(dir, "nodes.dmp")
	names = filepath.Join(dir, "names.dmp")
	merged = filepath.Join(dir, "merged.dmp")
	if err := os.WriteFile(nodes, []byte(nodesData), 0o644); err != nil {
		t.Fatalf("write nodes: %v", err)
	}
	if err := os.WriteFile(names, []byte(namesData), 0o644); err != nil {
		t.Fatalf("write names: %v", err)
	}
	if err := os.WriteFile(merged, []byte(mergedData), 0o644); err != nil {
		t.Fatalf("write merged: %v", err)
	}
	return nodes, names, merged
}

func loadTestEngine(t *testing.T) *Engine {
	t.Helper()
	nodes, names, merged := writeDumpFiles(t)
	e, err := Load(nodes, names, merged)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return e
}

func TestSplitColumnsStopsAtMaxCol(t *testing.T) {
	cols := splitColumns("1\t|\t1\t|\tno rank\t|\textra\t|\tstuff", columnDelimiter, 3)
	if len(cols) != 3 {
		t.Fatalf("expected 3 columns, got %d: %#v", len(cols), cols)
	}
	if cols[0] != "1" || cols[1] != "1" || cols[2] != "no rank" {
		t.Fatalf("unexpected columns: %#v", cols)
	}
}

func TestSplitColumnsShortLineYieldsFewerFields(t *testing.T) {
	cols := splitColumns("7\t|\t1", columnDelimiter, 3)
	if len(cols) != 2 {
		t.Fatalf("expected 2 columns for a short line, got %#v", cols)
	}
}

func TestLoadBuildsExpectedTree(t *testing.T) {
	e := loadTestEngine(t)
	if e.NumNodes() != 4 {
		t.Fatalf("expected 4 nodes, got %d", e.NumNodes())
	}
	node, ok := e.Node(5)
	if !ok || node.Name != "name5" || node.Rank != "species" {
		t.Fatalf("unexpected node for taxon 5: %+v ok=%v", node, ok)
	}
	if node.ParentTaxID != 3 {
		t.Fatalf("expected parent 3, got %d", node.ParentTaxID)
	}
}

func TestLoadMergedAliasResolves(t *testing.T) {
	e := loadTestEngine(t)
	node, ok := e.Node(4)
	if !ok {
		t.Fatalf("expected merged taxon 4 to resolve")
	}
	if node.TaxID != 3 {
		t.Fatalf("expected merged taxon 4 to alias node 3, got taxid %d", node.TaxID)
	}
}

func TestLoadRejectsUnknownParent(t *testing.T) {
	dir := t.TempDir()
	nodes := filepath.Join(dir, "nodes.dmp")
	names := filepath.Join(dir, "names.dmp")
	merged := filepath.Join(dir, "merged.dmp")
	os.WriteFile(nodes, []byte("1\t|\t1\t|\tno rank\t|\n2\t|\t99\t|\tspecies\t|\n"), 0o644)
	os.WriteFile(names, []byte("1\t|\tname1\t|\t\t|\tscientific name\t|\n"), 0o644)
	os.WriteFile(merged, []byte(""), 0o644)

	if _, err := Load(nodes, names, merged); err == nil {
		t.Fatalf("expected error for missing parent taxon")
	}
}
