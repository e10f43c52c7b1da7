package schedule

import "time"

// BookedSlot descreve um agendamento ativo já existente na data consultada.
type BookedSlot struct {
	Time            string // HH:MM
	DurationMinutes int
}

// ResolveAvailability marca cada horário da grade como disponível ou não por
// igualdade exata de HH:MM, preservando a ordem da grade. A duração do
// serviço não entra na conta — é o comportamento padrão do produto.
func ResolveAvailability(times []string, booked map[string]struct{}) []Slot {
	slots := make([]Slot, 0, len(times))
	for _, t := range times {
		_, taken := booked[t]
		slots = append(slots, Slot{
			Time:      t,
			Available: !taken,
		})
	}
	return slots
}

// ResolveAvailabilityStrict marca como indisponível todo slot cujo intervalo
// [início, início+duração do serviço pedido) sobrepõe o intervalo de algum
// agendamento existente, cada um com a duração do seu próprio serviço.
// Fecha a brecha de double-booking de serviços longos do modo padrão.
func ResolveAvailabilityStrict(times []string, serviceDurationMin int, existing []BookedSlot) []Slot {
	slots := make([]Slot, 0, len(times))
	for _, t := range times {
		start, err := parseHM(t)
		if err != nil {
			slots = append(slots, Slot{Time: t, Available: false})
			continue
		}
		end := start.Add(time.Duration(serviceDurationMin) * time.Minute)

		conflict := false
		for _, ap := range existing {
			apStart, err := parseHM(NormalizeTime(ap.Time))
			if err != nil {
				continue
			}
			apEnd := apStart.Add(time.Duration(ap.DurationMinutes) * time.Minute)
			if start.Before(apEnd) && end.After(apStart) {
				conflict = true
				break
			}
		}

		slots = append(slots, Slot{Time: t, Available: !conflict})
	}
	return slots
}

// BookedSet indexa os horários ocupados para o lookup exato do modo padrão.
func BookedSet(booked []BookedSlot) map[string]struct{} {
	set := make(map[string]struct{}, len(booked))
	for _, b := range booked {
		set[NormalizeTime(b.Time)] = struct{}{}
	}
	return set
}
