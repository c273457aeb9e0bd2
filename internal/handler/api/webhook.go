package api

import (
	"io"
	"net/http"

	resdto "charterlink/internal/handler/dto/response"
	"charterlink/internal/handler/httperr"
	"charterlink/internal/pkg/errs"
	"charterlink/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const signatureHeader = "Signature"

type WebhookHandler struct {
	cmds commands.WebhookCommands
}

func NewWebhookHandler(cmds commands.WebhookCommands) *WebhookHandler {
	return &WebhookHandler{cmds: cmds}
}

// @Summary Ingest payment webhook
// @Description Verify, deduplicate and apply one payment provider callback
// @Tags webhooks
// @Accept json
// @Produce json
// @Param Signature header string true "HMAC signature header"
// @Success 200 {object} resdto.WebhookAckResponse
// @Failure 400 {object} map[string]string
// @Router /webhooks/payments [post]
func (h *WebhookHandler) IngestPayment(c *gin.Context) {
	// Signature covers the raw bytes, so the body must not go through
	// any binding layer before verification.
	rawBody, err := io.ReadAll(c.Request.Body)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unreadable body", nil)
		return
	}

	result, err := h.cmds.IngestPayment(c.Request.Context(), rawBody, c.GetHeader(signatureHeader))
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrInvalidSignature),
			errs.Is(err, errs.ErrStaleTimestamp),
			errs.Is(err, errs.ErrMalformedSignature):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Signature verification failed", nil)
		case errs.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid payload", nil)
		default:
			// The dedup row may already be written at this point, so a
			// provider retry is acknowledged as a duplicate rather than
			// reapplied. Effects are at-most-once.
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Processing failed", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.WebhookAckResponse{Received: true, Duplicate: result.Duplicate})
}
