package enum

// Stance represents a party's position on an issue.
//
//go:generate go tool enumer -type=Stance -trimprefix=Stance -transform=lower
type Stance int

const (
	// StanceUnknown means no reference currently determines a position.
	StanceUnknown Stance = iota
	// StanceSupport means the party is in favour of the issue.
	StanceSupport
	// StanceOppose means the party is against the issue.
	StanceOppose
	// StanceUnclear means the top-scored references disagree.
	StanceUnclear
)

// Known reports whether the stance carries information about the party's
// position. Unknown stances are excluded from similarity and notability.
func (i Stance) Known() bool {
	return i != StanceUnknown
}
