package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCountdownUntilFutureTarget(t *testing.T) {
	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	target := now.Add(2*time.Hour + 15*time.Minute + 42*time.Second)

	cd := CountdownUntil(target, now)
	assert.Equal(t, 2, cd.Hours)
	assert.Equal(t, 15, cd.Minutes)
	assert.Equal(t, 42, cd.Seconds)
	assert.False(t, cd.Expired)
}

func TestCountdownUntilPastTargetIsZeroAndExpired(t *testing.T) {
	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	target := now.Add(-time.Minute)

	cd := CountdownUntil(target, now)
	assert.Equal(t, 0, cd.Hours)
	assert.Equal(t, 0, cd.Minutes)
	assert.Equal(t, 0, cd.Seconds)
	assert.True(t, cd.Expired)
}

func TestCountdownUntilExactTargetIsExpired(t *testing.T) {
	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)

	cd := CountdownUntil(now, now)
	assert.True(t, cd.Expired)
	assert.Zero(t, cd.Hours)
	assert.Zero(t, cd.Minutes)
	assert.Zero(t, cd.Seconds)
}

func TestCountdownUntilLongHold(t *testing.T) {
	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	target := now.Add(26*time.Hour + 3*time.Second)

	cd := CountdownUntil(target, now)
	// Hours are not capped at a day boundary.
	assert.Equal(t, 26, cd.Hours)
	assert.Equal(t, 0, cd.Minutes)
	assert.Equal(t, 3, cd.Seconds)
	assert.False(t, cd.Expired)
}
