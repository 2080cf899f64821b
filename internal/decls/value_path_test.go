package decls_test

import (
	"errors"
	"testing"

	"saveedit/internal/decls"
)

func structuredRecord(t *testing.T, value string) *decls.Declaration {
	t.Helper()
	records := decls.Parse("var towers = " + value + ";")
	if len(records) != 1 {
		t.Fatalf("fixture parse produced %d records", len(records))
	}
	return records[0]
}

func TestValueAtReadsNestedElements(t *testing.T) {
	d := structuredRecord(t, `[{"name":"dart","range":60},{"name":"tack","range":40}]`)

	got, err := d.ValueAt("1.name")
	if err != nil {
		t.Fatalf("ValueAt returned error: %v", err)
	}
	if got != "tack" {
		t.Fatalf("unexpected value: %q", got)
	}

	if _, err := d.ValueAt("7.name"); err == nil {
		t.Fatal("expected error for missing path")
	}
}

func TestSetValueAtInsertsRawJSONLiterals(t *testing.T) {
	d := structuredRecord(t, `{"range":60,"cost":250}`)

	if err := d.SetValueAt("range", "85"); err != nil {
		t.Fatalf("SetValueAt returned error: %v", err)
	}
	got, err := d.ValueAt("range")
	if err != nil {
		t.Fatalf("ValueAt returned error: %v", err)
	}
	if got != "85" {
		t.Fatalf("unexpected value: %q", got)
	}
	if d.ValueType != decls.TypeObject {
		t.Fatalf("value type drifted to %s", d.ValueType)
	}
}

func TestSetValueAtInsertsPlainStrings(t *testing.T) {
	d := structuredRecord(t, `{"name":"dart"}`)

	if err := d.SetValueAt("name", "super monkey"); err != nil {
		t.Fatalf("SetValueAt returned error: %v", err)
	}
	got, err := d.ValueAt("name")
	if err != nil {
		t.Fatalf("ValueAt returned error: %v", err)
	}
	if got != "super monkey" {
		t.Fatalf("unexpected value: %q", got)
	}
}

func TestPathOperationsRejectScalars(t *testing.T) {
	d := structuredRecord(t, "650")

	if _, err := d.ValueAt("x"); !errors.Is(err, decls.ErrNotStructured) {
		t.Fatalf("expected ErrNotStructured, got %v", err)
	}
	if err := d.SetValueAt("x", "1"); !errors.Is(err, decls.ErrNotStructured) {
		t.Fatalf("expected ErrNotStructured, got %v", err)
	}
}
