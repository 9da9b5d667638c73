package internal

import "testing"

func TestDiffLinesChange(t *testing.T) {
	old := "line one\nline two\nline three\n"
	updated := "line one\nline 2\nline three\n"

	var inserts, deletes []string
	for _, d := range DiffLines(old, updated) {
		switch d.Op {
		case DiffInsert:
			inserts = append(inserts, d.Text)
		case DiffDelete:
			deletes = append(deletes, d.Text)
		}
	}

	if len(deletes) != 1 || deletes[0] != "line two" {
		t.Errorf("deletes = %v", deletes)
	}
	if len(inserts) != 1 || inserts[0] != "line 2" {
		t.Errorf("inserts = %v", inserts)
	}
}

func TestDiffLinesIdentical(t *testing.T) {
	body := "a\nb\nc\n"
	for _, d := range DiffLines(body, body) {
		if d.Op != DiffEqual {
			t.Fatalf("identical bodies produced op %d on %q", d.Op, d.Text)
		}
	}
}

func TestDiffLinesAddition(t *testing.T) {
	got := DiffLines("a\n", "a\nb\n")

	found := false
	for _, d := range got {
		if d.Op == DiffInsert && d.Text == "b" {
			found = true
		}
		if d.Op == DiffDelete {
			t.Errorf("pure addition produced delete of %q", d.Text)
		}
	}
	if !found {
		t.Errorf("insert of b not found: %+v", got)
	}
}
