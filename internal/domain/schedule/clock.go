package schedule

import "time"

// Clock abstrai o "agora" para que a janela de cancelamento seja testável
// com tempo fixo.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
