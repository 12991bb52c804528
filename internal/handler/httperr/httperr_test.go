//go:build unit

package httperr_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"physio-scheduler/internal/domain/booking"
	"physio-scheduler/internal/handler/httperr"
	"physio-scheduler/internal/pkg/errs"
	"physio-scheduler/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "validation", err: errs.Mark(errs.New("x"), errs.ErrValidation), want: http.StatusBadRequest},
		{name: "forbidden", err: errs.Mark(errs.New("x"), errs.ErrForbidden), want: http.StatusForbidden},
		{name: "not found", err: errs.Mark(errs.New("x"), errs.ErrNotFound), want: http.StatusNotFound},
		{name: "slot conflict", err: errs.Mark(errs.New("x"), errs.ErrSlotConflict), want: http.StatusConflict},
		{name: "state", err: errs.Mark(errs.New("x"), errs.ErrState), want: http.StatusConflict},
		{name: "external dependency", err: errs.Mark(errs.New("x"), errs.ErrExternalDependency), want: http.StatusBadGateway},
		{name: "wrapped keeps marks", err: errs.Wrap(errs.Mark(errs.New("x"), errs.ErrNotFound), "outer"), want: http.StatusNotFound},
		{name: "unmarked", err: errs.New("boom"), want: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, httperr.StatusFor(tt.err))
		})
	}
}

func TestAbortWithDomainError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "client error exposes sentinel message",
			err:      errs.MarkAll(errs.New("pending -> completed"), booking.ErrIllegalTransition, errs.ErrState),
			wantCode: http.StatusConflict,
			wantBody: booking.ErrIllegalTransition.Error(),
		},
		{
			name:     "gateway error exposes sentinel message",
			err:      errs.MarkAll(errs.New("stripe: 503"), commands.ErrCheckoutFailed, errs.ErrExternalDependency),
			wantCode: http.StatusBadGateway,
			wantBody: commands.ErrCheckoutFailed.Error(),
		},
		{
			name:     "server error hides detail",
			err:      errs.New("pq: relation does not exist"),
			wantCode: http.StatusInternalServerError,
			wantBody: "fallback",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)

			httperr.AbortWithDomainError(c, tt.err, "fallback")

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
			assert.NotContains(t, rec.Body.String(), "relation does not exist")
			assert.True(t, c.IsAborted())
			assert.Len(t, c.Errors, 1)
		})
	}
}
