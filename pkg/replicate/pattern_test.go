package replicate

import "testing"

func TestNewMatcher(t *testing.T) {
	t.Run("literal patterns use automaton", func(t *testing.T) {
		m, err := NewMatcher([]string{"_WR", "_REP"}, false)
		if err != nil {
			t.Fatalf("Expected no error, but got: %v", err)
		}
		if !m.Literal() {
			t.Error("Expected literal matcher")
		}
	})

	t.Run("regexp patterns", func(t *testing.T) {
		m, err := NewMatcher([]string{`_R[0-9]`}, false)
		if err != nil {
			t.Fatalf("Expected no error, but got: %v", err)
		}
		if m.Literal() {
			t.Error("Expected regexp matcher")
		}
	})

	t.Run("fixed keeps metacharacters literal", func(t *testing.T) {
		m, err := NewMatcher([]string{`.rep`}, true)
		if err != nil {
			t.Fatalf("Expected no error, but got: %v", err)
		}
		if !m.Literal() {
			t.Error("Expected literal matcher")
		}
		if got := m.Match("ind_1xrep.1.fq"); got != -1 {
			t.Errorf("Match() = %d; want -1", got)
		}
		if got := m.Match("ind_1.rep.1.fq"); got != 0 {
			t.Errorf("Match() = %d; want 0", got)
		}
	})

	t.Run("invalid regexp", func(t *testing.T) {
		if _, err := NewMatcher([]string{`_WR(`}, false); err == nil {
			t.Error("Expected an error, but got nil")
		}
	})

	t.Run("empty pattern", func(t *testing.T) {
		if _, err := NewMatcher([]string{""}, false); err == nil {
			t.Error("Expected an error, but got nil")
		}
	})
}

func TestMatcher_MatchStrip(t *testing.T) {
	var tests = []struct {
		name     string
		patterns []string
		file     string
		index    int
		stripped string
	}{
		{"literal", []string{"_WR"}, "ind_1_WR.1.fq", 0, "ind_1.1.fq"},
		{"no match", []string{"_WR"}, "ind_1.1.fq", -1, ""},
		{"first declared wins", []string{"_B", "_WR"}, "ind_WR_B.1.fq", 0, "ind_WR.1.fq"},
		{"leftmost occurrence only", []string{"_WR"}, "a_WR_WR.1.fq", 0, "a_WR.1.fq"},
		{"regexp", []string{`_R[0-9]+`}, "ind_1_R12.2.fq.gz", 0, "ind_1.2.fq.gz"},
		{"regexp second pattern", []string{`^x`, `_rep$`}, "s_rep", 1, "s"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMatcher(tt.patterns, false)
			if err != nil {
				t.Fatalf("Expected no error, but got: %v", err)
			}
			var i = m.Match(tt.file)
			if i != tt.index {
				t.Fatalf("Match(%q) = %d; want %d", tt.file, i, tt.index)
			}
			if i < 0 {
				return
			}
			if got := m.Strip(i, tt.file); got != tt.stripped {
				t.Errorf("Strip(%q) = %q; want %q", tt.file, got, tt.stripped)
			}
		})
	}
}
