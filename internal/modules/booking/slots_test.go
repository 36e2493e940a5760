package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotGrid_FullDay(t *testing.T) {
	grid, err := slotGrid("09:00", "11:00", 30)

	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30"}, grid)
}

func TestSlotGrid_CloseNeverOffered(t *testing.T) {
	grid, err := slotGrid("10:00", "10:30", 30)

	require.NoError(t, err)
	assert.Equal(t, []string{"10:00"}, grid)
}

func TestSlotGrid_OpenEqualsClose(t *testing.T) {
	grid, err := slotGrid("09:00", "09:00", 30)

	require.NoError(t, err)
	assert.Empty(t, grid)
	assert.NotNil(t, grid)
}

func TestSlotGrid_OpenAfterClose(t *testing.T) {
	grid, err := slotGrid("18:00", "09:00", 30)

	require.NoError(t, err)
	assert.Empty(t, grid)
}

func TestSlotGrid_MalformedTime(t *testing.T) {
	_, err := slotGrid("9am", "17:00", 30)
	assert.Error(t, err)
}

func TestSlotGrid_NonPositiveStep(t *testing.T) {
	grid, err := slotGrid("09:00", "17:00", 0)

	require.NoError(t, err)
	assert.Empty(t, grid)
}

// Labels must be strictly ascending, spaced exactly step minutes apart,
// all >= open and < close.
func TestSlotGrid_AscendingAndSpaced(t *testing.T) {
	cases := []struct {
		open, close string
		step        int
	}{
		{"09:00", "20:00", 30},
		{"08:15", "12:45", 15},
		{"00:00", "23:59", 60},
		{"10:00", "21:00", 45},
	}

	for _, tc := range cases {
		grid, err := slotGrid(tc.open, tc.close, tc.step)
		require.NoError(t, err)
		require.NotEmpty(t, grid)

		open, _ := time.Parse("15:04", tc.open)
		close, _ := time.Parse("15:04", tc.close)

		prev, _ := time.Parse("15:04", grid[0])
		assert.Equal(t, open, prev)
		for _, label := range grid {
			cur, err := time.Parse("15:04", label)
			require.NoError(t, err)
			assert.True(t, cur.Before(close), "label %s not before close", label)
			if !cur.Equal(prev) {
				assert.Equal(t, time.Duration(tc.step)*time.Minute, cur.Sub(prev))
			}
			prev = cur
		}
	}
}

func TestFreeSlots_RemovesOccupied(t *testing.T) {
	grid := []string{"09:00", "09:30", "10:00", "10:30"}
	free := freeSlots(grid, []string{"10:00"})

	assert.Equal(t, []string{"09:00", "09:30", "10:30"}, free)
}

func TestFreeSlots_NoBookings(t *testing.T) {
	grid := []string{"09:00", "09:30"}
	assert.Equal(t, grid, freeSlots(grid, nil))
}

func TestFreeSlots_IgnoresOffGridTimes(t *testing.T) {
	grid := []string{"09:00", "09:30"}
	free := freeSlots(grid, []string{"09:15", "23:00"})

	assert.Equal(t, grid, free)
}
