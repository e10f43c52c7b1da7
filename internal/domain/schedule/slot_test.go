package schedule_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/navalhaclub/booking-api/internal/domain/schedule"
)

func TestGenerateSlotsDefaultWindow(t *testing.T) {
	times, err := schedule.GenerateSlots("09:00", "18:00", 30)
	require.NoError(t, err)

	require.Len(t, times, 18)
	assert.Equal(t, "09:00", times[0])
	assert.Equal(t, "17:30", times[len(times)-1])

	for i := 1; i < len(times); i++ {
		assert.Less(t, times[i-1], times[i], "slots must be strictly increasing")
	}
	for _, tm := range times {
		assert.Less(t, tm, "18:00", "no slot may reach the close time")
	}
}

func TestGenerateSlotsCountMatchesWindow(t *testing.T) {
	cases := []struct {
		open, close string
		interval    int
		want        int
	}{
		{"09:00", "18:00", 30, 18},
		{"09:00", "18:00", 60, 9},
		{"08:00", "12:00", 15, 16},
		{"10:00", "10:30", 30, 1},
		{"00:00", "23:59", 30, 47},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("%s-%s/%d", tc.open, tc.close, tc.interval), func(t *testing.T) {
			times, err := schedule.GenerateSlots(tc.open, tc.close, tc.interval)
			require.NoError(t, err)
			assert.Len(t, times, tc.want)
			if len(times) > 0 {
				assert.Equal(t, tc.open, times[0])
			}
		})
	}
}

func TestGenerateSlotsDropsPartialTrailingSlot(t *testing.T) {
	times, err := schedule.GenerateSlots("09:00", "18:15", 30)
	require.NoError(t, err)

	// 18:00 would spill past 18:15, so the grid still ends at 17:30.
	assert.Len(t, times, 18)
	assert.Equal(t, "17:30", times[len(times)-1])
}

func TestGenerateSlotsRejectsInvalidWindow(t *testing.T) {
	_, err := schedule.GenerateSlots("18:00", "09:00", 30)
	assert.Error(t, err)

	_, err = schedule.GenerateSlots("09:00", "09:00", 30)
	assert.Error(t, err)

	_, err = schedule.GenerateSlots("09:00", "18:00", 0)
	assert.Error(t, err)

	_, err = schedule.GenerateSlots("9h00", "18:00", 30)
	assert.Error(t, err)
}

func TestGenerateSlotsIsDeterministic(t *testing.T) {
	a, err := schedule.GenerateSlots("09:00", "18:00", 30)
	require.NoError(t, err)
	b, err := schedule.GenerateSlots("09:00", "18:00", 30)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestNormalizeTime(t *testing.T) {
	assert.Equal(t, "10:00", schedule.NormalizeTime("10:00:00"))
	assert.Equal(t, "10:00", schedule.NormalizeTime("10:00"))
	assert.Equal(t, "9:00", schedule.NormalizeTime("9:00"))
}
