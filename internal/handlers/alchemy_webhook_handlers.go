package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/cyphera/cyphera-wallets/internal/client/alchemy"
	"github.com/cyphera/cyphera-wallets/internal/constants"
	"github.com/cyphera/cyphera-wallets/internal/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const maxWebhookBodyBytes = 1 << 20

// AlchemyWebhookHandler receives address activity notifications
type AlchemyWebhookHandler struct {
	receipts DepositReceiver
}

func NewAlchemyWebhookHandler(receipts DepositReceiver) *AlchemyWebhookHandler {
	return &AlchemyWebhookHandler{receipts: receipts}
}

// ReceiveResponse reports what a delivery produced
type ReceiveResponse struct {
	Recorded   int `json:"recorded"`
	Duplicates int `json:"duplicates"`
	Skipped    int `json:"skipped"`
}

// HandleWebhook godoc
// @Summary      Receive an Alchemy webhook
// @Description  Verifies the delivery signature against the raw body and records deposits
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Success      200  {object}  ReceiveResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /webhooks/alchemy [post]
// @exclude
func (h *AlchemyWebhookHandler) HandleWebhook(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBodyBytes)
	body, err := c.GetRawData()
	if err != nil {
		sendError(c, http.StatusBadRequest, "Failed to read request body", err)
		return
	}

	var event alchemy.WebhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid webhook payload", err)
		return
	}

	ctx := c.Request.Context()
	signature := c.GetHeader(constants.AlchemySignatureHeader)
	if err := h.receipts.VerifySignature(ctx, event.WebhookID, body, signature); err != nil {
		handleServiceError(c, err)
		return
	}

	result, err := h.receipts.ReceiveEvent(ctx, event)
	if result == nil {
		handleServiceError(c, err)
		return
	}
	if err != nil {
		// Receipts are committed; a redelivery would only count duplicates.
		middleware.LogWithCorrelationID(ctx).Error("Webhook recorded but not fully enqueued",
			zap.String("event_id", event.ID),
			zap.Error(err))
	}

	sendSuccess(c, http.StatusOK, ReceiveResponse{
		Recorded:   len(result.Recorded),
		Duplicates: result.Duplicates,
		Skipped:    result.Skipped,
	})
}
