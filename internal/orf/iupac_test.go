package orf

import "testing"

func TestReverseComplementBasic(t *testing.T) {
	upper, rc, ok := reverseComplement([]byte("atgaaa"))
	if !ok {
		t.Fatalf("expected ok=true")
	}
	if string(upper) != "ATGAAA" {
		t.Fatalf("upper = %q, want ATGAAA", upper)
	}
	if string(rc) != "TTTCAT" {
		t.Fatalf("rc = %q, want TTTCAT", rc)
	}
}

func TestReverseComplementAmbiguityCodes(t *testing.T) {
	_, rc, ok := reverseComplement([]byte("NSW"))
	if !ok {
		t.Fatalf("expected N/S/W to have defined complements")
	}
	if string(rc) != "WSN" {
		t.Fatalf("rc = %q, want WSN", rc)
	}
}

func TestReverseComplementRejectsShortOrInvalid(t *testing.T) {
	if _, _, ok := reverseComplement([]byte("AT")); ok {
		t.Fatalf("expected rejection of sequence shorter than 3 bases")
	}
	if _, _, ok := reverseComplement([]byte("AT-")); ok {
		t.Fatalf("expected rejection of a base with no defined complement")
	}
}
