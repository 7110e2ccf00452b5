package replicate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/cloudflare/ahocorasick"
)

// Matcher finds which of several patterns occurs in a filename.
// Patterns keep their declared order; the first one that matches wins.
type Matcher struct {
	Patterns []string

	regs []*regexp.Regexp
	// set when every pattern is a plain string
	ac *ahocorasick.Matcher
}

// NewMatcher compiles patterns as regular expressions, or as fixed strings when fixed is true.
// A set made only of literal strings is matched with one Aho-Corasick automaton.
func NewMatcher(patterns []string, fixed bool) (*Matcher, error) {
	var (
		m       = &Matcher{Patterns: patterns}
		literal = true
	)
	for _, p := range patterns {
		if p == "" {
			return nil, fmt.Errorf("empty pattern")
		}
		var expr = p
		if fixed {
			expr = regexp.QuoteMeta(p)
		} else if regexp.QuoteMeta(p) != p {
			literal = false
		}
		reg, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", p, err)
		}
		m.regs = append(m.regs, reg)
	}
	if literal {
		m.ac = ahocorasick.NewStringMatcher(patterns)
	}
	return m, nil
}

// Literal reports whether matching runs on the Aho-Corasick automaton.
func (m *Matcher) Literal() bool { return m.ac != nil }

// Match returns the index of the first declared pattern found in name, or -1.
func (m *Matcher) Match(name string) int {
	if m.ac != nil {
		var hits = m.ac.Match([]byte(name))
		if len(hits) == 0 {
			return -1
		}
		var first = hits[0]
		for _, i := range hits[1:] {
			if i < first {
				first = i
			}
		}
		return first
	}
	for i, reg := range m.regs {
		if reg.MatchString(name) {
			return i
		}
	}
	return -1
}

// Strip removes the leftmost match of pattern i from name.
func (m *Matcher) Strip(i int, name string) string {
	if m.ac != nil {
		var p = m.Patterns[i]
		if j := strings.Index(name, p); j >= 0 {
			return name[:j] + name[j+len(p):]
		}
		return name
	}
	var loc = m.regs[i].FindStringIndex(name)
	if loc == nil {
		return name
	}
	return name[:loc[0]] + name[loc[1]:]
}
