package handlers

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/navalhaclub/booking-api/internal/httperr"
)

func TestMapScheduleErrorStatuses(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"conflito de slot", httperr.ErrBusiness(httperr.CodeSlotConflict), 409},
		{"data inválida", httperr.ErrBusiness(httperr.CodeInvalidDate), 400},
		{"agenda indisponível", httperr.ErrBusiness(httperr.CodeDataUnavailable), 503},
		{"fora da janela de cancelamento", httperr.ErrBusiness(httperr.CodeCancellationWindow), 400},
		{"estado inválido", httperr.ErrBusiness(httperr.CodeInvalidState), 400},
		{"barbeiro inexistente", httperr.ErrBusiness("barber_not_found"), 404},
		{"agendamento inexistente", httperr.ErrBusiness("appointment_not_found"), 404},
		{"código desconhecido", httperr.ErrBusiness("whatever"), 400},
		{"erro não mapeado", errors.New("boom"), 500},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			mapScheduleError(c, tc.err)

			assert.Equal(t, tc.wantStatus, w.Code)
		})
	}
}

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "11987654321", normalizePhone("(11) 98765-4321"))
	assert.Equal(t, "5511987654321", normalizePhone("+55 11 98765-4321"))
	assert.Equal(t, "", normalizePhone("sem número"))
}
