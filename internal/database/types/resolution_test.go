package types_test

import (
	"testing"
	"time"

	"github.com/poliscope/stancetrack/internal/database/types"
	"github.com/poliscope/stancetrack/internal/database/types/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveStanceNoReferences(t *testing.T) {
	t.Parallel()

	res := types.ResolveStance(nil)
	assert.Equal(t, enum.StanceUnknown, res.Stance)
	assert.Nil(t, res.Winner)
}

func TestResolveStanceArchivedExcluded(t *testing.T) {
	t.Parallel()

	res := types.ResolveStance([]*types.Reference{
		{ID: 1, Stance: enum.StanceSupport, Score: 0.9, IsArchived: true},
	})
	assert.Equal(t, enum.StanceUnknown, res.Stance)

	// An archived reference must not outrank an active one either.
	res = types.ResolveStance([]*types.Reference{
		{ID: 1, Stance: enum.StanceSupport, Score: 0.9, IsArchived: true},
		{ID: 2, Stance: enum.StanceOppose, Score: 0.1},
	})
	assert.Equal(t, enum.StanceOppose, res.Stance)
}

func TestResolveStanceTopScoreWins(t *testing.T) {
	t.Parallel()

	res := types.ResolveStance([]*types.Reference{
		{ID: 1, Stance: enum.StanceSupport, Score: 0.2686},
		{ID: 2, Stance: enum.StanceOppose, Score: 0.4235},
	})
	assert.Equal(t, enum.StanceOppose, res.Stance)
	require.NotNil(t, res.Winner)
	assert.Equal(t, int64(2), res.Winner.ID)
}

func TestResolveStanceTie(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		first  enum.Stance
		second enum.Stance
		want   enum.Stance
	}{
		{
			name:   "tied references agree",
			first:  enum.StanceSupport,
			second: enum.StanceSupport,
			want:   enum.StanceSupport,
		},
		{
			name:   "tied references disagree",
			first:  enum.StanceSupport,
			second: enum.StanceOppose,
			want:   enum.StanceUnclear,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := types.ResolveStance([]*types.Reference{
				{ID: 1, Stance: tt.first, Score: 0.5},
				{ID: 2, Stance: tt.second, Score: 0.5},
			})
			assert.Equal(t, tt.want, res.Stance)
		})
	}
}

func TestResolveStanceTieWinnerIsMostRecentlyPublished(t *testing.T) {
	t.Parallel()

	older := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	res := types.ResolveStance([]*types.Reference{
		{ID: 1, Stance: enum.StanceSupport, Score: 0.5, CreatedAt: older},
		{ID: 2, Stance: enum.StanceSupport, Score: 0.5, CreatedAt: newer},
	})
	require.NotNil(t, res.Winner)
	assert.Equal(t, int64(2), res.Winner.ID)

	// An explicit publication date takes precedence over submission time.
	published := time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC)
	res = types.ResolveStance([]*types.Reference{
		{ID: 1, Stance: enum.StanceSupport, Score: 0.5, CreatedAt: older, PublishedOn: &published},
		{ID: 2, Stance: enum.StanceSupport, Score: 0.5, CreatedAt: newer},
	})
	require.NotNil(t, res.Winner)
	assert.Equal(t, int64(1), res.Winner.ID)
}

// Resolving the same reference set twice must yield identical results.
func TestResolveStanceDeterministic(t *testing.T) {
	t.Parallel()

	references := []*types.Reference{
		{ID: 1, Stance: enum.StanceSupport, Score: 0.4235},
		{ID: 2, Stance: enum.StanceOppose, Score: 0.2686},
		{ID: 3, Stance: enum.StanceUnclear, Score: 0.1204},
	}

	first := types.ResolveStance(references)
	second := types.ResolveStance(references)
	assert.Equal(t, first, second)
}
