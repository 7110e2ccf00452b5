package replicate

import (
	"errors"
	"testing"
)

func TestSplitName(t *testing.T) {
	var tests = []struct {
		path string
		want Name
	}{
		{"ind_1.1.fq", Name{"ind_1", ".1", ".fq", ""}},
		{"inputs/ind_1.2.fq", Name{"ind_1", ".2", ".fq", ""}},
		{"/data/s.R1.fastq.gz", Name{"s", ".R1", ".fastq", ".gz"}},
		{"a.b.c.1.fq", Name{"a.b.c", ".1", ".fq", ""}},
	}
	for _, tt := range tests {
		got, err := SplitName(tt.path)
		if err != nil {
			t.Errorf("SplitName(%q): unexpected error %v", tt.path, err)
			continue
		}
		if got != tt.want {
			t.Errorf("SplitName(%q) = %+v; want %+v", tt.path, got, tt.want)
		}
	}
}

func TestSplitName_Unpairable(t *testing.T) {
	for _, path := range []string{"ind_1.fq", "ind_1.fq.gz", "ind_1", ".1.fq", "ind.", "x..fq"} {
		if _, err := SplitName(path); !errors.Is(err, ErrUnpairable) {
			t.Errorf("SplitName(%q) error = %v; want ErrUnpairable", path, err)
		}
	}
}

func TestName_String(t *testing.T) {
	var n = Name{"ind_1", ".1", ".fq", ".gz"}
	if got := n.String(); got != "ind_1.1.fq.gz" {
		t.Errorf("String() = %q", got)
	}
	if !n.Gzip() {
		t.Error("Expected Gzip() to be true")
	}
}
