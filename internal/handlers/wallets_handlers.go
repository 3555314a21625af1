package handlers

import (
	"net/http"

	"github.com/cyphera/cyphera-wallets/internal/db"
	"github.com/cyphera/cyphera-wallets/internal/middleware"
	"github.com/cyphera/cyphera-wallets/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// WalletHandler serves the deposit wallet endpoints
type WalletHandler struct {
	wallets WalletManager
}

func NewWalletHandler(wallets WalletManager) *WalletHandler {
	return &WalletHandler{wallets: wallets}
}

// CreateWalletRequest represents the request body for creating a deposit wallet
type CreateWalletRequest struct {
	Name             string `json:"name"`
	Network          string `json:"network" binding:"required"`
	RecipientAddress string `json:"recipient_address" binding:"required"`
	WebhookURL       string `json:"webhook_url" binding:"required"`
	WebhookSecret    string `json:"webhook_secret,omitempty"`
}

// WalletResponse is the public view of a wallet. Key material never leaves the service.
type WalletResponse struct {
	ID                string `json:"id"`
	Object            string `json:"object"`
	OrganizationID    string `json:"organization_id"`
	Name              string `json:"name"`
	Address           string `json:"address"`
	Network           string `json:"network"`
	ChainID           int64  `json:"chain_id"`
	RecipientAddress  string `json:"recipient_address"`
	WebhookURL        string `json:"webhook_url"`
	HasWebhookSecret  bool   `json:"has_webhook_secret"`
	DaoFeeBasisPoints int32  `json:"dao_fee_basis_points"`
	DaoFeeRecipient   string `json:"dao_fee_recipient"`
	Monitored         bool   `json:"monitored"`
	Source            string `json:"source"`
	CreatedAt         int64  `json:"created_at"`
	UpdatedAt         int64  `json:"updated_at"`
}

func toWalletResponse(w db.Wallet) WalletResponse {
	return WalletResponse{
		ID:                w.ID.String(),
		Object:            "wallet",
		OrganizationID:    w.OrganizationID.String(),
		Name:              w.Name,
		Address:           w.Address,
		Network:           w.Network,
		ChainID:           w.ChainID,
		RecipientAddress:  w.RecipientAddress,
		WebhookURL:        w.WebhookUrl,
		HasWebhookSecret:  w.EncryptedWebhookSecret.Valid,
		DaoFeeBasisPoints: w.DaoFeeBasisPoints,
		DaoFeeRecipient:   w.DaoFeeRecipient,
		Monitored:         w.WebhookID.Valid,
		Source:            w.Source,
		CreatedAt:         w.CreatedAt.Time.Unix(),
		UpdatedAt:         w.UpdatedAt.Time.Unix(),
	}
}

// CreateWallet godoc
// @Summary      Create a deposit wallet
// @Description  Issues a custodial wallet and starts monitoring it for deposits
// @Tags         wallets
// @Accept       json
// @Produce      json
// @Param        wallet  body      CreateWalletRequest  true  "Wallet to create"
// @Success      201     {object}  WalletResponse
// @Failure      400     {object}  ErrorResponse
// @Failure      403     {object}  ErrorResponse
// @Failure      502     {object}  ErrorResponse
// @Security     ApiKeyAuth
// @Router       /wallets [post]
func (h *WalletHandler) CreateWallet(c *gin.Context) {
	orgID, ok := middleware.GetOrganizationID(c)
	if !ok {
		sendError(c, http.StatusUnauthorized, "Missing organization", nil)
		return
	}

	var req CreateWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	wallet, err := h.wallets.CreateWallet(c.Request.Context(), services.CreateWalletParams{
		OrganizationID:   orgID,
		Name:             req.Name,
		Network:          req.Network,
		RecipientAddress: req.RecipientAddress,
		WebhookURL:       req.WebhookURL,
		WebhookSecret:    req.WebhookSecret,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusCreated, toWalletResponse(*wallet))
}

// ListWallets godoc
// @Summary      List deposit wallets
// @Tags         wallets
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Security     ApiKeyAuth
// @Router       /wallets [get]
func (h *WalletHandler) ListWallets(c *gin.Context) {
	orgID, ok := middleware.GetOrganizationID(c)
	if !ok {
		sendError(c, http.StatusUnauthorized, "Missing organization", nil)
		return
	}

	wallets, err := h.wallets.ListWallets(c.Request.Context(), orgID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response := make([]WalletResponse, len(wallets))
	for i, wallet := range wallets {
		response[i] = toWalletResponse(wallet)
	}
	sendList(c, response)
}

// GetWallet godoc
// @Summary      Get a deposit wallet
// @Tags         wallets
// @Produce      json
// @Param        wallet_id  path      string  true  "Wallet ID"
// @Success      200        {object}  WalletResponse
// @Failure      404        {object}  ErrorResponse
// @Security     ApiKeyAuth
// @Router       /wallets/{wallet_id} [get]
func (h *WalletHandler) GetWallet(c *gin.Context) {
	orgID, walletID, ok := walletScope(c)
	if !ok {
		return
	}

	wallet, err := h.wallets.GetWallet(c.Request.Context(), orgID, walletID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, toWalletResponse(*wallet))
}

// DeleteWallet godoc
// @Summary      Delete a deposit wallet
// @Description  Stops monitoring the wallet and removes it
// @Tags         wallets
// @Param        wallet_id  path  string  true  "Wallet ID"
// @Success      204
// @Failure      404  {object}  ErrorResponse
// @Security     ApiKeyAuth
// @Router       /wallets/{wallet_id} [delete]
func (h *WalletHandler) DeleteWallet(c *gin.Context) {
	orgID, walletID, ok := walletScope(c)
	if !ok {
		return
	}

	if err := h.wallets.DeleteWallet(c.Request.Context(), orgID, walletID); err != nil {
		handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func walletScope(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	orgID, ok := middleware.GetOrganizationID(c)
	if !ok {
		sendError(c, http.StatusUnauthorized, "Missing organization", nil)
		return uuid.Nil, uuid.Nil, false
	}

	walletID, err := uuid.Parse(c.Param("wallet_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid wallet ID format", err)
		return uuid.Nil, uuid.Nil, false
	}
	return orgID, walletID, true
}
