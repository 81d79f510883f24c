package types_test

import (
	"testing"

	"github.com/poliscope/stancetrack/internal/database/types"
	"github.com/poliscope/stancetrack/internal/database/types/enum"
	"github.com/stretchr/testify/assert"
)

func TestSimilarity(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		a      types.StanceSet
		b      types.StanceSet
		want   float64
		wantOK bool
	}{
		{
			name:   "identical stances",
			a:      types.StanceSet{1: enum.StanceSupport, 2: enum.StanceOppose},
			b:      types.StanceSet{1: enum.StanceSupport, 2: enum.StanceOppose},
			want:   1,
			wantOK: true,
		},
		{
			name:   "half matching",
			a:      types.StanceSet{1: enum.StanceSupport, 2: enum.StanceOppose},
			b:      types.StanceSet{1: enum.StanceSupport, 2: enum.StanceSupport},
			want:   0.5,
			wantOK: true,
		},
		{
			name:   "overlap ignores issues known to one party only",
			a:      types.StanceSet{1: enum.StanceSupport, 2: enum.StanceOppose, 3: enum.StanceSupport},
			b:      types.StanceSet{1: enum.StanceSupport, 4: enum.StanceOppose},
			want:   1,
			wantOK: true,
		},
		{
			name:   "disjoint issue sets are undefined",
			a:      types.StanceSet{1: enum.StanceSupport},
			b:      types.StanceSet{2: enum.StanceSupport},
			wantOK: false,
		},
		{
			name:   "empty sets are undefined",
			a:      types.StanceSet{},
			b:      types.StanceSet{},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := types.Similarity(tt.a, tt.b)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}

func TestNotability(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		stance enum.Stance
		counts map[enum.Stance]int
		want   float64
	}{
		{
			name:   "unknown stance is never notable",
			stance: enum.StanceUnknown,
			counts: map[enum.Stance]int{enum.StanceSupport: 1},
			want:   0,
		},
		{
			name:   "only party with a known stance",
			stance: enum.StanceSupport,
			counts: map[enum.Stance]int{enum.StanceSupport: 1},
			want:   0.6,
		},
		{
			name:   "agrees with the prevailing stance",
			stance: enum.StanceSupport,
			counts: map[enum.Stance]int{enum.StanceSupport: 3, enum.StanceOppose: 1},
			want:   0,
		},
		{
			name:   "contrarian stance",
			stance: enum.StanceOppose,
			counts: map[enum.Stance]int{enum.StanceSupport: 3, enum.StanceOppose: 1},
			want:   1 - 1.0/3.0,
		},
		{
			name:   "even split is not notable",
			stance: enum.StanceSupport,
			counts: map[enum.Stance]int{enum.StanceSupport: 1, enum.StanceOppose: 1},
			want:   0,
		},
		{
			name:   "no known stances on the issue",
			stance: enum.StanceSupport,
			counts: map[enum.Stance]int{},
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := types.Notability(tt.stance, tt.counts)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}
