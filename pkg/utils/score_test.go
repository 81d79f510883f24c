package utils_test

import (
	"testing"

	"github.com/poliscope/stancetrack/pkg/utils"
	"github.com/stretchr/testify/assert"
)

func TestWilsonScore(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		upvotes   int
		downvotes int
		want      float64
	}{
		{
			name:      "no votes",
			upvotes:   0,
			downvotes: 0,
			want:      0,
		},
		{
			name:    "single up vote",
			upvotes: 1,
			want:    0.2686367,
		},
		{
			name:      "one up one down",
			upvotes:   1,
			downvotes: 1,
			want:      0.1203635,
		},
		{
			name:    "downvoter switches to up",
			upvotes: 2,
			want:    0.4235045,
		},
		{
			name:      "all down votes",
			upvotes:   0,
			downvotes: 3,
			want:      0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := utils.WilsonScore(tt.upvotes, tt.downvotes)
			assert.InDelta(t, tt.want, got, 1e-6)
		})
	}
}

// More votes at the same approval rate must increase confidence.
func TestWilsonScoreMonotonicInSampleSize(t *testing.T) {
	t.Parallel()

	prev := 0.0
	for n := 1; n <= 100; n *= 10 {
		score := utils.WilsonScore(n, 0)
		assert.Greater(t, score, prev, "score should grow with unanimous sample size %d", n)
		prev = score
	}
}

func TestWilsonScoreDeterministic(t *testing.T) {
	t.Parallel()

	first := utils.WilsonScore(7, 3)
	second := utils.WilsonScore(7, 3)
	assert.Equal(t, first, second)
}
