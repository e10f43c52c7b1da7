package schedule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/navalhaclub/booking-api/internal/domain/schedule"
)

func grid(t *testing.T) []string {
	t.Helper()
	times, err := schedule.GenerateSlots("09:00", "18:00", 30)
	require.NoError(t, err)
	return times
}

func TestResolveAvailabilityMarksBookedSlots(t *testing.T) {
	times := grid(t)
	booked := map[string]struct{}{
		"10:00": {},
		"14:30": {},
	}

	slots := schedule.ResolveAvailability(times, booked)
	require.Len(t, slots, 18)

	unavailable := 0
	for i, s := range slots {
		assert.Equal(t, times[i], s.Time, "order must follow the generated grid")
		if !s.Available {
			unavailable++
			assert.Contains(t, booked, s.Time)
		}
	}
	assert.Equal(t, 2, unavailable)
}

func TestResolveAvailabilityEmptyBookings(t *testing.T) {
	slots := schedule.ResolveAvailability(grid(t), nil)
	for _, s := range slots {
		assert.True(t, s.Available)
	}
}

func TestResolveAvailabilityIsIdempotent(t *testing.T) {
	times := grid(t)
	booked := map[string]struct{}{"11:30": {}}

	first := schedule.ResolveAvailability(times, booked)
	second := schedule.ResolveAvailability(times, booked)
	assert.Equal(t, first, second)
}

func TestBookedSetNormalizesSeconds(t *testing.T) {
	set := schedule.BookedSet([]schedule.BookedSlot{
		{Time: "10:00:00", DurationMinutes: 30},
		{Time: "14:30", DurationMinutes: 30},
	})

	assert.Contains(t, set, "10:00")
	assert.Contains(t, set, "14:30")
	assert.Len(t, set, 2)
}

func TestResolveAvailabilityStrictChecksOverlap(t *testing.T) {
	times := grid(t)
	existing := []schedule.BookedSlot{{Time: "10:00", DurationMinutes: 30}}

	// Requested service lasts 60 minutes: a 09:30 start would run into the
	// 10:00 appointment, something the exact-match mode never sees.
	slots := schedule.ResolveAvailabilityStrict(times, 60, existing)
	byTime := make(map[string]bool, len(slots))
	for _, s := range slots {
		byTime[s.Time] = s.Available
	}

	assert.False(t, byTime["09:30"])
	assert.False(t, byTime["10:00"])
	assert.True(t, byTime["09:00"])
	assert.True(t, byTime["10:30"])

	loose := schedule.ResolveAvailability(times, schedule.BookedSet(existing))
	assert.True(t, loose[1].Available, "default mode leaves 09:30 open")
	assert.Equal(t, "09:30", loose[1].Time)
}

func TestResolveAvailabilityStrictLongExistingAppointment(t *testing.T) {
	times := grid(t)
	existing := []schedule.BookedSlot{{Time: "10:00", DurationMinutes: 90}}

	slots := schedule.ResolveAvailabilityStrict(times, 30, existing)
	byTime := make(map[string]bool, len(slots))
	for _, s := range slots {
		byTime[s.Time] = s.Available
	}

	assert.True(t, byTime["09:30"])
	assert.False(t, byTime["10:00"])
	assert.False(t, byTime["10:30"])
	assert.False(t, byTime["11:00"])
	assert.True(t, byTime["11:30"])
}
