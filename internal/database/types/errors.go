package types

import "errors"

var (
	// ErrDuplicateVote indicates a second non-archived vote from the same
	// voter on the same subject was rejected by the uniqueness constraint.
	// This is a client bug or a genuine race; callers may retry the
	// archive-then-insert sequence.
	ErrDuplicateVote = errors.New("voter already has an active vote on this subject")

	// ErrDuplicateReference indicates a non-archived reference with the
	// same (pairing, url, stance) already exists.
	ErrDuplicateReference = errors.New("reference already submitted for this pairing and stance")

	// ErrPairingNotFound indicates the requested pairing does not exist.
	ErrPairingNotFound = errors.New("pairing not found")

	// ErrReferenceNotFound indicates the requested reference does not exist.
	ErrReferenceNotFound = errors.New("reference not found")

	// ErrPartyNotFound indicates the requested party does not exist.
	ErrPartyNotFound = errors.New("party not found")

	// ErrIssueNotFound indicates the requested issue does not exist.
	ErrIssueNotFound = errors.New("issue not found")

	// ErrInvalidSimilarity indicates a similarity value outside the 0-100
	// range was about to be persisted.
	ErrInvalidSimilarity = errors.New("similarity must be between 0 and 100 inclusive")
)
