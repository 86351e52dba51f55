package diff_state

type DiffState int

const (
	// Missing keys exist in the base file but not in the target
	Missing DiffState = iota
	// Extra keys exist in the target file but not in the base
	Extra
	// Equal keys exist in both files, or in neither
	Equal
)

func (s DiffState) String() string {
	switch s {
	case Missing:
		return "missing"
	case Extra:
		return "extra"
	default:
		return "equal"
	}
}

// Marker returns the prefix used for keys with this state in the report
func (s DiffState) Marker() string {
	switch s {
	case Missing:
		return "-"
	case Extra:
		return "+"
	default:
		return " "
	}
}
