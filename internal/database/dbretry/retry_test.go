package dbretry

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/uptrace/bun/driver/pgdriver"
)

func TestIsRetryableCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		code string
		want bool
	}{
		{name: "connection failure", code: "08006", want: true},
		{name: "protocol violation", code: "08P01", want: true},
		{name: "serialization failure", code: "40001", want: true},
		{name: "deadlock", code: "40P01", want: true},
		{name: "too many connections", code: "53300", want: true},
		{name: "admin shutdown", code: "57P01", want: true},
		{name: "lock not available", code: "55P03", want: true},
		{name: "unique violation", code: "23505", want: false},
		{name: "foreign key violation", code: "23503", want: false},
		{name: "syntax error", code: "42601", want: false},
		{name: "empty code", code: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, isRetryableCode(tt.code))
		})
	}
}

func TestIsRetryableError(t *testing.T) {
	t.Parallel()

	assert.False(t, IsRetryableError(nil))
	assert.True(t, IsRetryableError(context.DeadlineExceeded))
	assert.True(t, IsRetryableError(context.Canceled))
	assert.True(t, IsRetryableError(errors.New("read tcp 10.0.0.1:5432: connection reset by peer")))
	assert.True(t, IsRetryableError(errors.New("write: broken pipe")))
	assert.False(t, IsRetryableError(errors.New("duplicate key value violates unique constraint")))

	// pgdriver hands its errors back by value, so the value form must not
	// match a non-driver error and must not panic on one.
	var pgerr pgdriver.Error
	assert.False(t, errors.As(errors.New("plain error"), &pgerr))
}

func TestOperationStopsOnPermanentError(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("column does not exist")
	calls := 0

	_, err := Operation(t.Context(), func(context.Context) (int, error) {
		calls++
		return 0, sentinel
	})

	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, 1, calls)
}
