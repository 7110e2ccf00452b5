package replicate

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoReplicates is wrapped by NoReplicatesError.
	ErrNoReplicates = errors.New("no replicates found")
	// ErrUnpairable marks a name without a direction token.
	ErrUnpairable = errors.New("cannot pair")
	// ErrMissingOriginal means a replicate has no original among the inputs or on disk.
	ErrMissingOriginal = errors.New("no original file")
	// ErrEmptyName means a pattern matched the whole base name.
	ErrEmptyName = errors.New("empty original name")
	// ErrOutputCollision means two different inputs would be written to the same output name.
	ErrOutputCollision = errors.New("output name collision")
)

// NoReplicatesError reports the patterns tried when discovery came back empty.
type NoReplicatesError struct {
	Patterns []string
}

func (e *NoReplicatesError) Error() string {
	var quoted = make([]string, len(e.Patterns))
	for i, p := range e.Patterns {
		quoted[i] = "'" + p + "'"
	}
	return fmt.Sprintf("No replicates were found! Check [%s] is correct.", strings.Join(quoted, ", "))
}

func (e *NoReplicatesError) Unwrap() error { return ErrNoReplicates }
