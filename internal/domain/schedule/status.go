package schedule

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusConfirmed  Status = "confirmado"
	StatusInProgress Status = "em_atendimento"
	StatusCompleted  Status = "concluido"
	StatusCancelled  Status = "cancelado"
)

// ActiveStatuses são os status que ocupam um horário na grade. O invariante
// de conflito vale apenas para eles: no máximo um agendamento ativo por
// (barbeiro, data, hora).
func ActiveStatuses() []Status {
	return []Status{StatusConfirmed, StatusInProgress}
}

func InitialStatus() Status {
	return StatusConfirmed
}
