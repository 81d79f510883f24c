package enum

// VoteKind represents the direction of a vote.
//
//go:generate go tool enumer -type=VoteKind -trimprefix=VoteKind -transform=lower
type VoteKind int

const (
	VoteKindUp VoteKind = iota
	VoteKindDown
)

// SubjectKind represents the type of entity being voted on.
//
//go:generate go tool enumer -type=SubjectKind -trimprefix=SubjectKind -transform=lower
type SubjectKind int

const (
	SubjectKindReference SubjectKind = iota
)
