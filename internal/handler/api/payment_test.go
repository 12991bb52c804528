//go:build unit

package api_test

import (
	"bytes"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"

	"physio-scheduler/internal/domain/booking"
	"physio-scheduler/internal/handler/api"
	"physio-scheduler/internal/pkg/errs"
	"physio-scheduler/internal/usecase/commands"
	"physio-scheduler/internal/usecase/shared"
	"physio-scheduler/tests/common/httptest"
	commandsmock "physio-scheduler/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PaymentWebhookHandlerTestSuite struct {
	suite.Suite
	router         *gin.Engine
	mockCtrl       *gomock.Controller
	mockVerifier   *commandsmock.MockPaymentEventVerifier
	mockReconciler *commandsmock.MockPaymentReconciler
}

func (s *PaymentWebhookHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockVerifier = commandsmock.NewMockPaymentEventVerifier(s.mockCtrl)
	s.mockReconciler = commandsmock.NewMockPaymentReconciler(s.mockCtrl)
	h := api.NewPaymentWebhookHandler(s.mockVerifier, s.mockReconciler)

	s.router.POST("/webhooks/payments", h.Handle)
}

func (s *PaymentWebhookHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPaymentWebhookHandlerSuite(t *testing.T) {
	suite.Run(t, new(PaymentWebhookHandlerTestSuite))
}

func (s *PaymentWebhookHandlerTestSuite) post(payload []byte, signature string) *nethttptest.ResponseRecorder {
	req := nethttptest.NewRequest(http.MethodPost, "/webhooks/payments", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if signature != "" {
		req.Header.Set("Stripe-Signature", signature)
	}
	rec := nethttptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *PaymentWebhookHandlerTestSuite) TestHandle() {
	payload := []byte(`{"id":"evt_1","type":"checkout.session.completed"}`)
	signature := "t=1700000000,v1=abc"
	ev := commands.PaymentEvent{
		ID:              "evt_1",
		Kind:            commands.PaymentEventCompleted,
		SourceType:      "checkout.session.completed",
		Reference:       "PHY-7K3M9Q2X",
		PaymentIntentID: "pi_123",
	}

	s.Run("success: verified event is reconciled", func() {
		s.mockVerifier.EXPECT().Verify(payload, signature).Return(ev, nil).Times(1)
		s.mockReconciler.EXPECT().HandleEvent(gomock.Any(), ev).Return(commands.OutcomeProcessed, nil).Times(1)

		rec := s.post(payload, signature)

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("processed", body["status"])
	})

	s.Run("success: redelivery is acknowledged as duplicate", func() {
		s.mockVerifier.EXPECT().Verify(payload, signature).Return(ev, nil).Times(1)
		s.mockReconciler.EXPECT().HandleEvent(gomock.Any(), ev).Return(commands.OutcomeDuplicate, nil).Times(1)

		rec := s.post(payload, signature)

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("duplicate", body["status"])
	})

	s.Run("error: 400 Bad Request when signature does not verify", func() {
		s.mockVerifier.EXPECT().Verify(payload, "").
			Return(commands.PaymentEvent{}, errs.MarkAll(errs.New("no signatures found"), commands.ErrInvalidSignature, errs.ErrValidation)).Times(1)

		rec := s.post(payload, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid signature")
	})

	s.Run("success: unactionable events are acknowledged as ignored", func() {
		testCases := []struct {
			name string
			err  error
		}{
			{name: "unknown booking", err: errs.MarkAll(errs.New("no rows"), shared.ErrBookingNotFound, errs.ErrNotFound)},
			{name: "booking already declined", err: errs.MarkAll(errs.New("declined -> confirmed"), booking.ErrIllegalTransition, errs.ErrState)},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockVerifier.EXPECT().Verify(payload, signature).Return(ev, nil).Times(1)
				s.mockReconciler.EXPECT().HandleEvent(gomock.Any(), ev).Return(commands.Outcome(""), tc.err).Times(1)

				rec := s.post(payload, signature)

				var body map[string]string
				httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
				s.Equal("ignored", body["status"])
			})
		}
	})

	s.Run("error: 500 so the gateway retries on storage failure", func() {
		s.mockVerifier.EXPECT().Verify(payload, signature).Return(ev, nil).Times(1)
		s.mockReconciler.EXPECT().HandleEvent(gomock.Any(), ev).Return(commands.Outcome(""), errs.New("connection reset")).Times(1)

		rec := s.post(payload, signature)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Payment event processing failed")
	})

	s.Run("error: 413 when the body exceeds the limit", func() {
		oversized := bytes.Repeat([]byte("a"), (1<<20)+1)

		rec := s.post(oversized, signature)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusRequestEntityTooLarge, "Payload too large")
	})

	s.Run("success: a body at the limit reaches the verifier", func() {
		atLimit := bytes.Repeat([]byte("a"), 1<<20)
		s.mockVerifier.EXPECT().Verify(atLimit, signature).Return(commands.PaymentEvent{ID: "evt_big"}, nil).Times(1)
		s.mockReconciler.EXPECT().HandleEvent(gomock.Any(), commands.PaymentEvent{ID: "evt_big"}).Return(commands.OutcomeIgnored, nil).Times(1)

		rec := s.post(atLimit, signature)

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("ignored", body["status"])
	})

	s.Run("error: 400 Bad Request when the event has no id", func() {
		noID := ev
		noID.ID = ""
		s.mockVerifier.EXPECT().Verify(payload, signature).Return(noID, nil).Times(1)
		s.mockReconciler.EXPECT().HandleEvent(gomock.Any(), noID).
			Return(commands.Outcome(""), errs.MarkAll(errs.New("evt"), commands.ErrMissingEventID, errs.ErrValidation)).Times(1)

		rec := s.post(payload, signature)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "payment event has no id")
	})
}
