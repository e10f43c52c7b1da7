package db

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/navalhaclub/booking-api/internal/config"
)

func TestBookingDefaultsUsesConfiguredWindow(t *testing.T) {
	cfg := &config.Config{
		BookingOpenTime:    "08:00",
		BookingCloseTime:   "20:00",
		BookingIntervalMin: 15,
	}

	open, close, interval := bookingDefaults(cfg)

	assert.Equal(t, "08:00", open)
	assert.Equal(t, "20:00", close)
	assert.Equal(t, 15, interval)
}

func TestBookingDefaultsFallsBackOnInvalidWindow(t *testing.T) {
	cases := []struct {
		name string
		cfg  config.Config
	}{
		{"janela invertida", config.Config{BookingOpenTime: "18:00", BookingCloseTime: "09:00", BookingIntervalMin: 30}},
		{"intervalo zero", config.Config{BookingOpenTime: "09:00", BookingCloseTime: "18:00", BookingIntervalMin: 0}},
		{"hora ilegível", config.Config{BookingOpenTime: "9am", BookingCloseTime: "18:00", BookingIntervalMin: 30}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			open, close, interval := bookingDefaults(&tc.cfg)

			assert.Equal(t, "09:00", open)
			assert.Equal(t, "18:00", close)
			assert.Equal(t, 30, interval)
		})
	}
}
