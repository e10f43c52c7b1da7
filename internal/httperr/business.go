package httperr

import "errors"

// Códigos de negócio retornados pelo motor de agendamento.
const (
	CodeSlotConflict       = "slot_conflict"
	CodeInvalidDate        = "invalid_date"
	CodeDataUnavailable    = "data_unavailable"
	CodeCancellationWindow = "cancellation_window_expired"
	CodeInvalidState       = "invalid_state"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func BusinessCode(err error) (string, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code, true
	}
	return "", false
}
