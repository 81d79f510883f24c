package types

import (
	"math"

	"github.com/poliscope/stancetrack/internal/database/types/enum"
)

// StanceSet maps issue IDs to a party's known stance on each. Unknown
// stances must not appear in the set.
type StanceSet map[int64]enum.Stance

// Similarity measures how alike two parties' known stances are.
//
// The denominator is the set of issues both parties have a known stance
// on; the numerator counts those where the stances also match. Returns
// ok=false when the parties share no known issues, in which case the
// similarity is undefined and no snapshot should be recorded.
func Similarity(a, b StanceSet) (float64, bool) {
	var common, matching int

	for issueID, stance := range a {
		other, found := b[issueID]
		if !found {
			continue
		}

		common++
		if other == stance {
			matching++
		}
	}

	if common == 0 {
		return 0, false
	}

	return float64(matching) / float64(common), true
}

// rarityScore is awarded when no other party has a known stance on the
// issue, a sign the issue is specific to one party.
const rarityScore = 0.6

// Notability scores how rare or contrarian a stance is relative to the
// other parties on the same issue; higher values are more notable.
//
// stanceCounts maps each known stance on the issue to the number of
// pairings holding it, including the pairing being scored. The result is
// the larger of two signals: rarity (this is the only known stance on the
// issue) and uniqueness (the stance differs from the prevailing one).
// A pairing with an unknown stance is never notable.
func Notability(stance enum.Stance, stanceCounts map[enum.Stance]int) float64 {
	if !stance.Known() {
		return 0
	}

	var total, prevailing int
	for _, count := range stanceCounts {
		total += count
		if count > prevailing {
			prevailing = count
		}
	}

	if prevailing == 0 {
		return 0
	}

	var rarity float64
	if total == 1 {
		rarity = rarityScore
	}

	uniqueness := 1 - float64(stanceCounts[stance])/float64(prevailing)

	return math.Max(rarity, uniqueness)
}
