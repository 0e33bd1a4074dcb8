package tz

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	z, err := Lookup("Asia/Kolkata")
	require.NoError(t, err)
	assert.Equal(t, 330, z.OffsetMinutes, "half-hour offsets are exact")

	z, err = Lookup("Asia/Kathmandu")
	require.NoError(t, err)
	assert.Equal(t, 345, z.OffsetMinutes)

	z, err = Lookup("America/New_York")
	require.NoError(t, err)
	assert.Equal(t, -300, z.OffsetMinutes)

	_, err = Lookup("Mars/Olympus_Mons")
	assert.Error(t, err)
	_, err = Lookup("")
	assert.Error(t, err)
}

func TestOffsetMinutes(t *testing.T) {
	off, err := OffsetMinutes("UTC")
	require.NoError(t, err)
	assert.Equal(t, 0, off)

	off, err = OffsetMinutes("Asia/Tokyo")
	require.NoError(t, err)
	assert.Equal(t, 540, off)
}

func TestConvert(t *testing.T) {
	noon := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)

	got, err := Convert(noon, "UTC", "Asia/Tokyo")
	require.NoError(t, err)
	assert.Equal(t, 21, got.Hour())

	// Symmetric: converting back recovers the original instant.
	back, err := Convert(got, "Asia/Tokyo", "UTC")
	require.NoError(t, err)
	assert.True(t, back.Equal(noon))

	// Sub-hour offsets shift minutes too.
	got, err = Convert(noon, "UTC", "Asia/Kolkata")
	require.NoError(t, err)
	assert.Equal(t, 17, got.Hour())
	assert.Equal(t, 30, got.Minute())

	_, err = Convert(noon, "UTC", "Nowhere/Nothing")
	assert.Error(t, err)
	_, err = Convert(noon, "Nowhere/Nothing", "UTC")
	assert.Error(t, err)
}

func TestIDs(t *testing.T) {
	ids := IDs()
	assert.NotEmpty(t, ids)
	assert.Equal(t, len(zones), len(ids))

	seen := map[string]bool{}
	for _, id := range ids {
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
	assert.True(t, seen["Europe/London"])
	assert.True(t, seen["Australia/Sydney"])
}
