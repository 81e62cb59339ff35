package dataset

import "testing"

func TestDedupeKeepsLast(t *testing.T) {
	t.Parallel()

	f := NewFrame(
		[]string{"id", "name"},
		[]Row{
			{"id": "a1", "name": "first"},
			{"id": "a2", "name": "other"},
			{"id": "a1", "name": "last"},
		},
	)

	removed, err := f.Dedupe([]string{"id"})
	if err != nil {
		t.Fatalf("Dedupe: %v", err)
	}
	if removed != 1 {
		t.Fatalf("removed = %d, want 1", removed)
	}
	if f.Len() != 2 {
		t.Fatalf("rows = %d, want 2", f.Len())
	}
	for _, r := range f.Rows() {
		if r["id"] == "a1" && r["name"] != "last" {
			t.Fatalf("kept %v, want the last occurrence", r["name"])
		}
	}
}

func TestDedupeNoDuplicates(t *testing.T) {
	t.Parallel()

	f := NewFrame(
		[]string{"id"},
		[]Row{{"id": "a"}, {"id": "b"}, {"id": nil}},
	)
	removed, err := f.Dedupe([]string{"id"})
	if err != nil {
		t.Fatalf("Dedupe: %v", err)
	}
	if removed != 0 || f.Len() != 3 {
		t.Fatalf("removed=%d len=%d, want 0 and 3", removed, f.Len())
	}
}

func TestDedupeErrors(t *testing.T) {
	t.Parallel()

	f := NewFrame([]string{"id"}, []Row{{"id": "a"}})
	if _, err := f.Dedupe(nil); err == nil {
		t.Fatal("expected error for empty keys")
	}
	if _, err := f.Dedupe([]string{"nope"}); err == nil {
		t.Fatal("expected error for unknown key column")
	}
}
