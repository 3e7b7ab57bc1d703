package position

import (
	"testing"
)

func TestParseAlignment(t *testing.T) {
	cases := []struct {
		token string
		want  Alignment
	}{
		{"before", Before},
		{"start", Start},
		{"center", Center},
		{"end", End},
		{"after", After},
	}
	for _, c := range cases {
		got, ok := ParseAlignment(c.token)
		if !ok {
			t.Errorf("Expected %q to parse, got ok=false", c.token)
		}
		if got != c.want {
			t.Errorf("Expected %q to parse to %v, got %v", c.token, c.want, got)
		}
		if got.String() != c.token {
			t.Errorf("Expected String() to round-trip %q, got %q", c.token, got.String())
		}
	}
}

func TestParseAlignment_Unrecognized(t *testing.T) {
	for _, token := range []string{"", "middle", "BEFORE", "start ", "top"} {
		if _, ok := ParseAlignment(token); ok {
			t.Errorf("Expected %q not to parse", token)
		}
		if IsAlignment(token) {
			t.Errorf("Expected IsAlignment(%q) to be false", token)
		}
	}
}

func TestAlignment_StringUnknown(t *testing.T) {
	if got := Alignment(42).String(); got != "Alignment(42)" {
		t.Errorf("Expected Alignment(42), got %q", got)
	}
}

func TestValidateAlignments(t *testing.T) {
	valid, invalid := ValidateAlignments([]string{"after", "middle", "before", "", "center"})
	if len(valid) != 3 {
		t.Fatalf("Expected 3 valid tokens, got %v", valid)
	}
	if valid[0] != "after" || valid[1] != "before" || valid[2] != "center" {
		t.Errorf("Expected valid order preserved, got %v", valid)
	}
	if len(invalid) != 2 {
		t.Fatalf("Expected 2 invalid tokens, got %v", invalid)
	}
	if invalid[0] != "middle" || invalid[1] != "" {
		t.Errorf("Expected invalid order preserved, got %v", invalid)
	}
}

func TestValidateAlignments_Partition(t *testing.T) {
	// every input lands in exactly one partition, classified by membership
	input := []string{"x", "start", "start", "middle", "end", "after", "y", "before"}
	valid, invalid := ValidateAlignments(input)
	if len(valid)+len(invalid) != len(input) {
		t.Errorf("Expected partition lengths to sum to %d, got %d+%d",
			len(input), len(valid), len(invalid))
	}
	for _, v := range valid {
		if !IsAlignment(v) {
			t.Errorf("Expected every valid entry to be an alignment, got %q", v)
		}
	}
	for _, v := range invalid {
		if IsAlignment(v) {
			t.Errorf("Expected no invalid entry to be an alignment, got %q", v)
		}
	}
}

func TestValidateAlignments_Empty(t *testing.T) {
	valid, invalid := ValidateAlignments(nil)
	if len(valid) != 0 || len(invalid) != 0 {
		t.Errorf("Expected empty partitions, got %v / %v", valid, invalid)
	}
}

func TestParseAlignments(t *testing.T) {
	got := ParseAlignments([]string{"after", "middle", "before"})
	if len(got) != 2 || got[0] != After || got[1] != Before {
		t.Errorf("Expected [after before], got %v", got)
	}
}
