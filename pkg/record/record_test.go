package record

import "testing"

func strPtr(s string) *string { return &s }

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"  Dr.  Smith   Dental ", "dr. smith dental"},
		{"UPPER\tCASE", "upper case"},
		{"", ""},
		{"   ", ""},
	}
	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestDedupKey_RequiresNameAndAddress(t *testing.T) {
	b := Business{Name: "Acme Dental"}
	if key := b.DedupKey(); key != "" {
		t.Errorf("expected empty key without address, got %q", key)
	}

	b = Business{Address: strPtr("100 Main St")}
	if key := b.DedupKey(); key != "" {
		t.Errorf("expected empty key without name, got %q", key)
	}

	b = Business{Name: "Acme Dental", Address: strPtr("  100  Main St ")}
	if key := b.DedupKey(); key != "acme dental|100 main st" {
		t.Errorf("unexpected key %q", key)
	}
}

func TestResultSet_DedupIdempotent(t *testing.T) {
	set := NewResultSet()
	b := Business{Name: "Acme Dental", Address: strPtr("100 Main St")}

	if !set.Add(b) {
		t.Fatal("first Add should keep the record")
	}
	if set.Add(b) {
		t.Fatal("second Add of the same identity should be rejected")
	}
	// Case and whitespace variations are the same identity.
	dup := Business{Name: "ACME  DENTAL", Address: strPtr("100 main st")}
	if set.Add(dup) {
		t.Fatal("normalized duplicate should be rejected")
	}

	if set.Len() != 1 {
		t.Errorf("expected 1 record, got %d", set.Len())
	}
}

func TestResultSet_KeylessRecordsNeverDeduped(t *testing.T) {
	set := NewResultSet()
	for i := 0; i < 3; i++ {
		if !set.Add(Business{QuerySource: "q"}) {
			t.Fatalf("keyless record %d should always be kept", i)
		}
	}
	if set.Len() != 3 {
		t.Errorf("expected 3 records, got %d", set.Len())
	}
}

func TestResultSet_PreservesInsertionOrder(t *testing.T) {
	set := NewResultSet()
	set.Add(Business{Name: "B", Address: strPtr("2nd Ave")})
	set.Add(Business{Name: "A", Address: strPtr("1st Ave")})

	got := set.Records()
	if len(got) != 2 || got[0].Name != "B" || got[1].Name != "A" {
		t.Errorf("unexpected order: %+v", got)
	}

	// Mutating the copy must not affect the set.
	got[0].Name = "mutated"
	if set.Records()[0].Name != "B" {
		t.Error("Records() should return a copy")
	}
}

func TestLowConfidence(t *testing.T) {
	if (Business{Name: "Named"}).LowConfidence() {
		t.Error("named record should not be low confidence")
	}
	if !(Business{Name: "   "}).LowConfidence() {
		t.Error("blank-named record should be low confidence")
	}
}

func TestSummarize(t *testing.T) {
	set := NewResultSet()
	set.Add(Business{Name: "A", Address: strPtr("1")})
	set.Add(Business{Name: "B", Address: strPtr("2")})

	outcomes := []Outcome{
		{Query: "a", Discovered: 5, Fetched: 4, Failed: 1},
		{Query: "b", Discovered: 2, Fetched: 2},
	}
	s := Summarize(outcomes, set)
	if s.Queries != 2 || s.Discovered != 7 || s.Fetched != 6 || s.Failed != 1 || s.Unique != 2 {
		t.Errorf("unexpected summary: %+v", s)
	}
}
