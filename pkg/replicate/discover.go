package replicate

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Replicate is an input file whose name matched a pattern.
type Replicate struct {
	Path    string
	Pattern string
	// OriginalName is the base name with the pattern match removed
	OriginalName string
}

// Set groups replicates by derived original name, in first-seen order.
type Set struct {
	Names      []string
	Replicates map[string][]Replicate
}

// Len is the number of replicate files in the set.
func (s *Set) Len() int {
	var n int
	for _, reps := range s.Replicates {
		n += len(reps)
	}
	return n
}

func (s *Set) isReplicate(path string) bool {
	for _, reps := range s.Replicates {
		for _, r := range reps {
			if r.Path == path {
				return true
			}
		}
	}
	return false
}

// Discover collects the files whose base name matches one of m's patterns.
func Discover(files []string, m *Matcher) (*Set, error) {
	var set = &Set{Replicates: make(map[string][]Replicate)}
	for _, path := range files {
		var (
			base = filepath.Base(path)
			i    = m.Match(base)
		)
		if i < 0 {
			continue
		}
		var name = m.Strip(i, base)
		if name == "" {
			return nil, fmt.Errorf("%w: removing %q from %s", ErrEmptyName, m.Patterns[i], path)
		}
		if _, ok := set.Replicates[name]; !ok {
			set.Names = append(set.Names, name)
		}
		set.Replicates[name] = append(set.Replicates[name], Replicate{
			Path:         path,
			Pattern:      m.Patterns[i],
			OriginalName: name,
		})
	}
	if len(set.Names) == 0 {
		return nil, &NoReplicatesError{Patterns: m.Patterns}
	}
	return set, nil
}

// Pair is one original/replicate couple to concatenate or extract.
type Pair struct {
	Original  string
	Replicate string
	Pattern   string
	// Name is the decomposed original base name, also the concatenation output name
	Name Name
}

// Pairs resolves the original file of every replicate in set.
// The original is the non-replicate input sharing the derived base name; failing that,
// the derived name next to the replicate on disk.
// Paired files are written under their base names, so two different files sharing a
// base name fail with ErrOutputCollision.
func Pairs(files []string, set *Set) ([]Pair, error) {
	var byBase = make(map[string][]string)
	for _, path := range files {
		if set.isReplicate(path) {
			continue
		}
		var base = filepath.Base(path)
		byBase[base] = append(byBase[base], path)
	}

	var (
		pairs   []Pair
		outputs = make(map[string]string)
	)
	for _, name := range set.Names {
		n, err := SplitName(name)
		if err != nil {
			return nil, err
		}
		for _, rep := range set.Replicates[name] {
			if !strings.Contains(filepath.Base(rep.Path), n.Direction) {
				return nil, fmt.Errorf("%w %s: direction %s not in replicate %s", ErrUnpairable, name, n.Direction, rep.Path)
			}
			original, err := findOriginal(rep, byBase[name])
			if err != nil {
				return nil, err
			}
			for _, path := range []string{original, rep.Path} {
				if err := claimOutput(outputs, path); err != nil {
					return nil, err
				}
			}
			pairs = append(pairs, Pair{
				Original:  original,
				Replicate: rep.Path,
				Pattern:   rep.Pattern,
				Name:      n,
			})
		}
	}
	return pairs, nil
}

// claimOutput records path under its base name in outputs.
func claimOutput(outputs map[string]string, path string) error {
	var base = filepath.Base(path)
	if prev, ok := outputs[base]; ok && filepath.Clean(prev) != filepath.Clean(path) {
		return fmt.Errorf("%w %s: both %s and %s", ErrOutputCollision, base, prev, path)
	}
	outputs[base] = path
	return nil
}

func findOriginal(rep Replicate, candidates []string) (string, error) {
	var dir = filepath.Dir(rep.Path)
	for _, c := range candidates {
		if filepath.Dir(c) == dir {
			return c, nil
		}
	}
	if len(candidates) > 0 {
		return candidates[0], nil
	}
	var derived = filepath.Join(dir, rep.OriginalName)
	if info, err := os.Stat(derived); err == nil && info.Mode().IsRegular() {
		return derived, nil
	}
	return "", fmt.Errorf("%w %s for replicate %s", ErrMissingOriginal, rep.OriginalName, rep.Path)
}
