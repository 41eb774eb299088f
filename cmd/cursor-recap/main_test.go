package main

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTargetDate(t *testing.T) {
	day, err := parseTargetDate("2026-03-14")
	require.NoError(t, err)
	assert.Equal(t, 2026, day.Year())
	assert.Equal(t, time.March, day.Month())
	assert.Equal(t, 14, day.Day())
	assert.Equal(t, time.Local, day.Location())
}

func TestParseTargetDateEmptyMeansToday(t *testing.T) {
	day, err := parseTargetDate("")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), day, time.Minute)
}

func TestParseTargetDateInvalid(t *testing.T) {
	for _, value := range []string{"14-03-2026", "2026/03/14", "yesterday", "2026-13-40"} {
		_, err := parseTargetDate(value)
		assert.Error(t, err, "value %q should be rejected", value)
	}
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLogLevel("debug"))
	assert.Equal(t, slog.LevelWarn, parseLogLevel("warn"))
	assert.Equal(t, slog.LevelError, parseLogLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLogLevel("info"))
	assert.Equal(t, slog.LevelInfo, parseLogLevel(""))
}
