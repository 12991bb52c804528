package api

import (
	"io"
	"log/slog"
	"net/http"

	"physio-scheduler/internal/handler/httperr"
	"physio-scheduler/internal/infra/metrics"
	"physio-scheduler/internal/pkg/errs"
	"physio-scheduler/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const (
	signatureHeader = "Stripe-Signature"
	maxWebhookBody  = int64(1 << 20)
)

type PaymentWebhookHandler struct {
	verifier   commands.PaymentEventVerifier
	reconciler commands.PaymentReconciler
}

func NewPaymentWebhookHandler(verifier commands.PaymentEventVerifier, reconciler commands.PaymentReconciler) *PaymentWebhookHandler {
	return &PaymentWebhookHandler{verifier: verifier, reconciler: reconciler}
}

// @Summary Payment gateway webhook
// @Description Signed payment notifications. Unknown bookings and stale transitions are acknowledged so the gateway stops redelivering.
// @Tags payments
// @Accept json
// @Produce json
// @Param Stripe-Signature header string true "Gateway signature"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 413 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /webhooks/payments [post]
func (h *PaymentWebhookHandler) Handle(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody+1))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unreadable body", nil)
		return
	}
	if int64(len(payload)) > maxWebhookBody {
		metrics.IncPaymentEvent("rejected")
		httperr.AbortWithError(c, http.StatusRequestEntityTooLarge,
			errs.Newf("webhook body exceeds %d bytes", maxWebhookBody), "Payload too large", nil)
		return
	}
	ev, err := h.verifier.Verify(payload, c.GetHeader(signatureHeader))
	if err != nil {
		metrics.IncPaymentEvent("rejected")
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid signature", nil)
		return
	}

	outcome, err := h.reconciler.HandleEvent(c.Request.Context(), ev)
	switch {
	case err == nil:
	case errs.Is(err, errs.ErrNotFound), errs.Is(err, errs.ErrState):
		slog.Warn("payment event acknowledged without effect",
			"event_id", ev.ID,
			"type", ev.SourceType,
			"reference", ev.Reference,
			"error", err.Error())
		outcome = commands.OutcomeIgnored
	default:
		metrics.IncPaymentEvent("error")
		httperr.AbortWithDomainError(c, err, "Payment event processing failed")
		return
	}

	metrics.IncPaymentEvent(string(outcome))
	c.JSON(http.StatusOK, gin.H{"status": outcome})
}
