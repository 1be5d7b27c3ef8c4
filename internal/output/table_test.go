package output

import (
	"bytes"
	"strings"
	"testing"
)

func TestTable_Render(t *testing.T) {
	var buf bytes.Buffer
	table := NewTableWithWriter(&buf, []string{"ID", "TITLE", "SCORE"})
	table.AddRow([]string{"abc123", "Test Article", "85"})
	table.AddRow([]string{"def456", "Another Article", "42"})
	table.Render()

	out := buf.String()
	for _, want := range []string{"ID", "TITLE", "SCORE", "abc123", "Test Article", "def456", "42"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestTable_EmptyRows(t *testing.T) {
	var buf bytes.Buffer
	table := NewTableWithWriter(&buf, []string{"ID"})
	table.Render()

	if !strings.Contains(buf.String(), "ID") {
		t.Errorf("header missing from empty table: %q", buf.String())
	}
}
