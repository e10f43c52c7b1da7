package schedule

import (
	"fmt"
	"time"
)

// Slot é um horário candidato com flag de disponibilidade. Gerado a cada
// consulta, nunca persistido.
type Slot struct {
	Time      string `json:"time"` // HH:MM
	Available bool   `json:"available"`
}

const timeLayout = "15:04"

func parseHM(hm string) (time.Time, error) {
	return time.Parse(timeLayout, hm)
}

// GenerateSlots produz os inícios de slot da janela [openTime, closeTime),
// em ordem crescente. Um slot parcial no fim da janela é descartado.
func GenerateSlots(openTime, closeTime string, intervalMin int) ([]string, error) {
	open, err := parseHM(openTime)
	if err != nil {
		return nil, fmt.Errorf("invalid open time %q: %w", openTime, err)
	}
	closeAt, err := parseHM(closeTime)
	if err != nil {
		return nil, fmt.Errorf("invalid close time %q: %w", closeTime, err)
	}
	if !open.Before(closeAt) {
		return nil, fmt.Errorf("open time %s must be before close time %s", openTime, closeTime)
	}
	if intervalMin <= 0 {
		return nil, fmt.Errorf("interval must be positive, got %d", intervalMin)
	}

	interval := time.Duration(intervalMin) * time.Minute

	var times []string
	for cur := open; cur.Add(interval).Before(closeAt) || cur.Add(interval).Equal(closeAt); cur = cur.Add(interval) {
		times = append(times, cur.Format(timeLayout))
	}

	return times, nil
}

// NormalizeTime reduz um horário persistido (possivelmente HH:MM:SS) para
// HH:MM, a granularidade da grade.
func NormalizeTime(t string) string {
	if len(t) > 5 {
		return t[:5]
	}
	return t
}
