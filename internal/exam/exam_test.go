package exam

import (
	"testing"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		code  string
		found bool
		want  string
	}{
		{"AIME", true, "AIME"},
		{"aime_i", true, "AIME_I"},
		{" 10a ", true, "10A"},
		{"8", true, "8"},
		{"AMC8", false, ""},
		{"", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			typ, ok := Lookup(tt.code)
			if ok != tt.found {
				t.Fatalf("Lookup(%q) found = %v, expected %v", tt.code, ok, tt.found)
			}
			if ok && typ.Code != tt.want {
				t.Errorf("Lookup(%q) = %q, expected %q", tt.code, typ.Code, tt.want)
			}
		})
	}
}

func TestAvailableIn(t *testing.T) {
	tests := []struct {
		code string
		year int
		want bool
	}{
		{"AHSME", 1950, true},
		{"AHSME", 1998, true},
		{"AHSME", 1999, false},
		{"AJHSME", 1984, false},
		{"AJHSME", 1985, true},
		{"8", 1998, false},
		{"8", 1999, true},
		{"8", 2024, true},
		{"10", 2000, true},
		{"10", 2002, false},
		{"10A", 2001, false},
		{"10A", 2002, true},
		{"AIME", 1999, true},
		{"AIME", 2000, false},
		{"AIME_I", 2000, true},
		{"AIME_II", 1999, false},
	}

	for _, tt := range tests {
		typ, ok := Lookup(tt.code)
		if !ok {
			t.Fatalf("unknown test type %q", tt.code)
		}
		if got := typ.AvailableIn(tt.year); got != tt.want {
			t.Errorf("%s.AvailableIn(%d) = %v, expected %v", tt.code, tt.year, got, tt.want)
		}
	}
}

func TestAvailableFor(t *testing.T) {
	codes := func(year int) map[string]bool {
		out := make(map[string]bool)
		for _, typ := range AvailableFor(year) {
			out[typ.Code] = true
		}
		return out
	}

	in1997 := codes(1997)
	for _, want := range []string{"AJHSME", "AHSME", "AIME"} {
		if !in1997[want] {
			t.Errorf("expected %s to be available in 1997", want)
		}
	}
	if in1997["8"] || in1997["10A"] {
		t.Errorf("unexpected modern tests available in 1997: %v", in1997)
	}

	in2003 := codes(2003)
	for _, want := range []string{"8", "10A", "10B", "12A", "12B", "AIME_I", "AIME_II"} {
		if !in2003[want] {
			t.Errorf("expected %s to be available in 2003", want)
		}
	}
	if in2003["10"] || in2003["12"] || in2003["AIME"] {
		t.Errorf("legacy tests should not be available in 2003: %v", in2003)
	}
}

func TestAnswerKeyURL(t *testing.T) {
	tests := []struct {
		code string
		year int
		want string
	}{
		{"10A", 2002, BaseURL + "/2002_AMC_10A_Answer_Key"},
		{"8", 1999, BaseURL + "/1999_AMC_8_Answer_Key"},
		{"12", 2000, BaseURL + "/2000_AMC_12_Answer_Key"},
		{"AIME", 1983, BaseURL + "/1983_AIME_Answer_Key"},
		{"AIME_II", 2010, BaseURL + "/2010_AIME_II_Answer_Key"},
		{"AJHSME", 1985, BaseURL + "/1985_AJHSME_Answer_Key"},
		{"AHSME", 1950, BaseURL + "/1950_AHSME_Answer_Key"},
	}

	for _, tt := range tests {
		typ, ok := Lookup(tt.code)
		if !ok {
			t.Fatalf("unknown test type %q", tt.code)
		}
		if got := typ.AnswerKeyURL(tt.year); got != tt.want {
			t.Errorf("%s.AnswerKeyURL(%d) = %q, expected %q", tt.code, tt.year, got, tt.want)
		}
	}
}

func TestProblemURL(t *testing.T) {
	key := BaseURL + "/2002_AMC_10A_Answer_Key"
	want := BaseURL + "/2002_AMC_10A_Problems/Problem_7"
	if got := ProblemURL(key, 7); got != want {
		t.Errorf("ProblemURL = %q, expected %q", got, want)
	}
}
