package replicate

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Name is a read file name split as <Root><Direction><Format><Compression>,
// e.g. ind_1 .1 .fq .gz
type Name struct {
	Root        string
	Direction   string
	Format      string
	Compression string
}

// SplitName decomposes the base name of path.
// Names that are not root.<direction>.<format>[.gz] are rejected with ErrUnpairable.
func SplitName(path string) (Name, error) {
	var (
		base = filepath.Base(path)
		rest = base
		n    Name
	)
	if ext := filepath.Ext(rest); strings.EqualFold(ext, ".gz") {
		n.Compression = ext
		rest = strings.TrimSuffix(rest, ext)
	}
	n.Format = filepath.Ext(rest)
	rest = strings.TrimSuffix(rest, n.Format)
	n.Direction = filepath.Ext(rest)
	n.Root = strings.TrimSuffix(rest, n.Direction)

	if n.Root == "" || len(n.Direction) < 2 || len(n.Format) < 2 {
		return Name{}, fmt.Errorf("%w %s: expected <root>.<direction>.<ext>[.gz]", ErrUnpairable, base)
	}
	return n, nil
}

func (n Name) String() string {
	return n.Root + n.Direction + n.Format + n.Compression
}

// Gzip reports whether the name carries a .gz suffix.
func (n Name) Gzip() bool { return n.Compression != "" }
