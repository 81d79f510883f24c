package utils

import "math"

// wilsonZ is the z-value for a 95% confidence level.
const wilsonZ = 1.65

// WilsonScore returns the lower bound of the Wilson score interval for a
// sample of up/down votes, a value between 0 and 1.
//
// Unlike a raw approval rate, the lower bound penalises small samples: a
// single up vote scores far below ten unanimous up votes, so freshly
// submitted material cannot outrank heavily vetted material on one early
// vote. As the sample grows the bound converges toward the approval rate.
// Returns 0 when no votes have been cast.
func WilsonScore(upvotes, downvotes int) float64 {
	n := float64(upvotes + downvotes)
	if n == 0 {
		return 0
	}

	p := float64(upvotes) / n
	z2 := wilsonZ * wilsonZ

	result := p + z2/(2*n)
	result -= wilsonZ * math.Sqrt(p*(1-p)/n+z2/(4*n*n))

	return result / (1 + z2/n)
}
