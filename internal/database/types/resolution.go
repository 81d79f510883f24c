package types

import (
	"math"

	"github.com/poliscope/stancetrack/internal/database/types/enum"
)

// Resolution is the outcome of deriving a pairing's stance from its
// references.
type Resolution struct {
	Stance enum.Stance
	// Winner is the reference backing the stance: the top-scored reference,
	// most recently published on a score tie. Nil when the stance is
	// unknown or unclear.
	Winner *Reference
}

// ResolveStance derives a pairing's stance from its references.
//
// The references with the maximum score decide the outcome: if they all
// argue the same stance, that stance wins; if they disagree, the stance is
// unclear. With no active references the stance is unknown. Archived
// references never participate.
func ResolveStance(references []*Reference) Resolution {
	var top []*Reference
	topScore := math.Inf(-1)

	for _, ref := range references {
		if ref.IsArchived {
			continue
		}

		switch {
		case ref.Score > topScore:
			topScore = ref.Score
			top = append(top[:0], ref)
		case ref.Score == topScore:
			top = append(top, ref)
		}
	}

	if len(top) == 0 {
		return Resolution{Stance: enum.StanceUnknown}
	}

	winner := top[0]
	for _, ref := range top[1:] {
		if ref.Stance != winner.Stance {
			return Resolution{Stance: enum.StanceUnclear}
		}
		if ref.EffectivePublishedOn().After(winner.EffectivePublishedOn()) {
			winner = ref
		}
	}

	return Resolution{Stance: winner.Stance, Winner: winner}
}
