package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestConstantTables(t *testing.T) {
	tables := constantTables()
	byType := make(map[string]table, len(tables))
	for _, tb := range tables {
		if len(tb.Entries) == 0 {
			t.Errorf("%s has no entries", tb.Type)
		}
		byType[tb.Type] = tb
	}

	opts, ok := byType["ClearOptions"]
	if !ok || !opts.Bitmask {
		t.Fatal("ClearOptions missing or not a bitmask")
	}
	if opts.Entries[0] != (entry{Name: "Target", Raw: 1}) {
		t.Errorf("first ClearOptions entry = %+v", opts.Entries[0])
	}
	if byType["IndexElementSize"].Bitmask {
		t.Error("IndexElementSize marked as bitmask")
	}
}

func TestWriteTextUnlinked(t *testing.T) {
	r := report{
		Tables:  []table{{Type: "CullMode", Entries: []entry{{Name: "None", Raw: 0}}}},
		Presets: []preset{{Name: "P", Fields: map[string]string{"b": "2", "a": "1"}}},
	}
	var buf bytes.Buffer
	if err := writeText(&buf, r); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"not linked", "CullMode (enum)", "None", "P\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "  a") > strings.Index(out, "  b") {
		t.Error("preset fields not sorted")
	}
}

func TestWriteJSON(t *testing.T) {
	r := buildReport(true, true)
	var buf bytes.Buffer
	if err := writeJSON(&buf, r); err != nil {
		t.Fatal(err)
	}
	var back report
	if err := json.Unmarshal(buf.Bytes(), &back); err != nil {
		t.Fatal(err)
	}
	if len(back.Tables) != len(r.Tables) || len(back.Presets) != len(r.Presets) {
		t.Errorf("round trip lost entries: %d/%d tables, %d/%d presets",
			len(back.Tables), len(r.Tables), len(back.Presets), len(r.Presets))
	}
	if got := back.Presets[3].Fields["ColorDestinationBlend"]; got != "Zero" {
		t.Errorf("Opaque destination = %q, want Zero", got)
	}
}
