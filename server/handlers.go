package server

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Valerii9116/TimaxPaySolanaTransak/clients"
	"github.com/Valerii9116/TimaxPaySolanaTransak/logger"
	"github.com/Valerii9116/TimaxPaySolanaTransak/metrics"
	"github.com/Valerii9116/TimaxPaySolanaTransak/types"
	"github.com/Valerii9116/TimaxPaySolanaTransak/utils"
)

// Handler serves the proxy endpoints the browser front end calls. Its
// only job is attaching server-held secrets and forwarding; no business
// logic lives here.
type Handler struct {
	cfg     *Config
	transak *clients.TransakClient
	log     logger.Logger
	metrics metrics.Recorder
}

func NewHandler(cfg *Config, transak *clients.TransakClient, log logger.Logger, rec metrics.Recorder) *Handler {
	if log == nil {
		log = logger.NoopLogger{}
	}
	if rec == nil {
		rec = metrics.NoopRecorder{}
	}
	return &Handler{cfg: cfg, transak: transak, log: log, metrics: rec}
}

// GetConfig exposes the publishable config values to the front end.
// Secrets (the API secret) are never included.
func (h *Handler) GetConfig(c *gin.Context) {
	if h.cfg.WalletConnectProjectID == "" || h.cfg.TransakAPIKey == "" {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Server configuration is incomplete. Required API keys (WalletConnect, Transak) are missing from environment variables.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"walletConnectProjectId": h.cfg.WalletConnectProjectID,
		"transakApiKey":          h.cfg.TransakAPIKey,
		"transakEnvironment":     h.cfg.TransakEnvironment,
	})
}

// CreateWidget validates the widget request, injects the partner
// secret, and forwards to the ramp provider.
func (h *Handler) CreateWidget(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil || len(body) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Widget configuration is required in request body.",
		})
		return
	}

	widget, perr := utils.ParseWidgetConfig(body)
	if perr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   perr.Error(),
		})
		return
	}

	session, werr := h.transak.CreateWidget(c.Request.Context(), widget)
	if werr != nil {
		status, msg := providerFailure(werr)
		h.metrics.IncCounter("widget_failed", map[string]string{"network": widget.Network})
		c.JSON(status, gin.H{
			"success": false,
			"error":   msg,
		})
		return
	}

	h.metrics.IncCounter("widget_created", map[string]string{"network": widget.Network})
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"widgetUrl":   session.URL,
		"sessionId":   session.SessionID,
		"environment": h.cfg.TransakEnvironment,
	})
}

type transactionsRequest struct {
	PartnerCustomerID string `json:"partnerCustomerId" binding:"required"`
}

// GetTransactions refreshes a provider access token and returns the
// orders filed under the given partner customer id.
func (h *Handler) GetTransactions(c *gin.Context) {
	var req transactionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "partnerCustomerId is required."})
		return
	}

	orders, err := h.transak.GetOrders(c.Request.Context(), req.PartnerCustomerID)
	if err != nil {
		status, msg := providerFailure(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, orders)
}

// Health is a liveness probe.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// providerFailure maps a typed error to the HTTP status the proxy
// reports. Provider statuses pass through; config errors are 500.
func providerFailure(err error) (int, string) {
	te, ok := types.IsTerminalError(err)
	if !ok {
		return http.StatusInternalServerError, err.Error()
	}

	switch te.Code {
	case types.ErrConfigMissing:
		return http.StatusInternalServerError, te.Message
	case types.ErrInvalidRequest:
		return http.StatusBadRequest, te.Message
	case types.ErrProvider:
		if data, ok := te.Data.(map[string]any); ok {
			if status, ok := data["status"].(int); ok && status >= 400 {
				return status, te.Message
			}
		}
		return http.StatusBadGateway, te.Message
	default:
		return http.StatusInternalServerError, te.Message
	}
}
