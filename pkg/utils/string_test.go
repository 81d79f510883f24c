package utils_test

import (
	"testing"

	"github.com/poliscope/stancetrack/pkg/utils"
	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "simple name",
			input: "Carbon Tax",
			want:  "carbon-tax",
		},
		{
			name:  "punctuation collapsed",
			input: "Workers' Rights -- Now!",
			want:  "workers-rights-now",
		},
		{
			name:  "leading and trailing separators dropped",
			input: "  The Greens  ",
			want:  "the-greens",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, utils.Slugify(tt.input))
		})
	}
}
