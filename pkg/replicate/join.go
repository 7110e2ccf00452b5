package replicate

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Options selects what a Joiner does with each pair.
type Options struct {
	Concatenate bool
	// OutDir receives concatenated files, current directory when empty
	OutDir string

	Extract bool
	// Dir receives extracted copies
	Dir string
}

// Result records what happened to one pair.
type Result struct {
	Pair

	OriginalReads  int
	ReplicateReads int

	Concatenated string
	Extracted    []string
}

// Joiner concatenates and extracts pairs according to its Options.
type Joiner struct {
	Options
}

// NewJoiner returns a Joiner for opts.
func NewJoiner(opts Options) *Joiner {
	return &Joiner{Options: opts}
}

// Run joins every pair in order. It stops at the first failure; outputs already
// written are left in place.
func (j *Joiner) Run(pairs []Pair) ([]Result, error) {
	var results = make([]Result, 0, len(pairs))
	for _, p := range pairs {
		r, err := j.Join(p)
		if err != nil {
			return results, err
		}
		results = append(results, r)
	}
	return results, nil
}

// Join reads both files of p and applies the selected modes.
func (j *Joiner) Join(p Pair) (Result, error) {
	var r = Result{Pair: p}

	original, err := ReadAll(p.Original)
	if err != nil {
		return r, err
	}
	replicate, err := ReadAll(p.Replicate)
	if err != nil {
		return r, err
	}
	r.OriginalReads = CountReads(original)
	r.ReplicateReads = CountReads(replicate)

	if j.Concatenate {
		if r.Concatenated, err = j.concatenate(p, original, replicate); err != nil {
			return r, err
		}
	}
	if j.Extract {
		if r.Extracted, err = j.extract(p); err != nil {
			return r, err
		}
	}
	return r, nil
}

func (j *Joiner) concatenate(p Pair, original, replicate []byte) (string, error) {
	var (
		out = filepath.Join(j.OutDir, p.Name.String())
		gz  = p.Name.Gzip()
	)
	if SameFile(out, p.Original) {
		slog.Warn("append into original", "original", p.Original, "replicate", p.Replicate)
	}
	if _, err := os.Stat(out); os.IsNotExist(err) {
		slog.Info("create", "out", out, "original", p.Original)
		if err := WriteFile(out, original, gz); err != nil {
			return out, fmt.Errorf("concatenate %s: %w", p.Original, err)
		}
	} else if err != nil {
		return out, err
	}
	slog.Info("append", "out", out, "replicate", p.Replicate)
	if err := AppendFile(out, replicate, gz); err != nil {
		return out, fmt.Errorf("concatenate %s: %w", p.Replicate, err)
	}
	return out, nil
}

func (j *Joiner) extract(p Pair) ([]string, error) {
	var outs []string
	for _, src := range []string{p.Original, p.Replicate} {
		var dst = filepath.Join(j.Dir, filepath.Base(src))
		outs = append(outs, dst)
		if SameFile(src, dst) {
			slog.Warn("skip copy onto itself", "file", src)
			continue
		}
		slog.Info("extract", "from", src, "to", dst)
		if err := CopyFile(src, dst); err != nil {
			return outs, fmt.Errorf("extract %s: %w", src, err)
		}
	}
	return outs, nil
}
