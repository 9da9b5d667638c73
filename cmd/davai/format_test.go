package main

import (
	"strings"
	"testing"

	"github.com/4thel00z/davai/internal"
)

func TestRenderDiff(t *testing.T) {
	lines := []internal.DiffLine{
		{Op: internal.DiffEqual, Text: "same"},
		{Op: internal.DiffDelete, Text: "old"},
		{Op: internal.DiffInsert, Text: "new"},
	}

	out := renderDiff(lines)

	if !strings.Contains(out, " same") {
		t.Errorf("equal line missing: %q", out)
	}
	if !strings.Contains(out, "-old") {
		t.Errorf("delete line missing: %q", out)
	}
	if !strings.Contains(out, "+new") {
		t.Errorf("insert line missing: %q", out)
	}
}
