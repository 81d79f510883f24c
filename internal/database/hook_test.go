package database_test

import (
	"errors"
	"testing"
	"time"

	"github.com/poliscope/stancetrack/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestHookLogLevels(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	hook := database.NewHook(zap.New(core))

	hook.AfterQuery(t.Context(), &bun.QueryEvent{
		Query:     "SELECT 1",
		StartTime: time.Now(),
		Err:       errors.New("connection refused"),
	})

	hook.AfterQuery(t.Context(), &bun.QueryEvent{
		Query:     "SELECT pg_sleep(1)",
		StartTime: time.Now().Add(-time.Second),
	})

	hook.AfterQuery(t.Context(), &bun.QueryEvent{
		Query:     "SELECT 1",
		StartTime: time.Now(),
	})

	entries := logs.All()
	require.Len(t, entries, 3)

	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	assert.Equal(t, "Query failed", entries[0].Message)

	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, "Slow query", entries[1].Message)

	assert.Equal(t, zapcore.DebugLevel, entries[2].Level)
	assert.Equal(t, "Query executed", entries[2].Message)
}
