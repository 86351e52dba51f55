package diff

import (
	"strings-diff/internal/data"
	"strings-diff/internal/data/diff_state"
)

// Result holds the difference of a target key set relative to a base key set
type Result struct {
	// Missing contains keys of the base that the target lacks
	Missing data.KeySet
	// Extra contains keys of the target that the base lacks
	Extra data.KeySet
}

// Compare returns (base - target) as Missing and (target - base) as Extra.
// The given sets are not modified.
func Compare(base data.KeySet, target data.KeySet) Result {
	return Result{
		Missing: base.Subtract(target),
		Extra:   target.Subtract(base),
	}
}

func CompareFiles(base *data.ResourceFile, target *data.ResourceFile) Result {
	return Compare(base.Keys, target.Keys)
}

func (r Result) HasDiff() bool {
	return !r.Missing.IsEmpty() || !r.Extra.IsEmpty()
}

// State returns the diff state of a single key.
// Keys that are neither missing nor extra are reported as Equal,
// no matter if they are part of any of the compared sets.
func (r Result) State(key string) diff_state.DiffState {
	switch {
	case r.Missing.Contains(key):
		return diff_state.Missing
	case r.Extra.Contains(key):
		return diff_state.Extra
	default:
		return diff_state.Equal
	}
}
