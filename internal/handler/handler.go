// Package handler exposes the ledger and game core over HTTP/JSON. The
// account id is an opaque string supplied by the caller; this layer does
// not interpret it.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"gacha-ledger/internal/repository"
	"gacha-ledger/internal/service"
)

// Handler bundles the services behind the HTTP surface.
type Handler struct {
	ledger *service.LedgerService
	gacha  *service.GachaService
	games  *service.GameService
}

// New creates a Handler.
func New(ledger *service.LedgerService, gacha *service.GachaService, games *service.GameService) *Handler {
	return &Handler{ledger: ledger, gacha: gacha, games: games}
}

// Routes registers all endpoints on the router.
func (h *Handler) Routes(r *gin.Engine) {
	api := r.Group("/api")

	accounts := api.Group("/accounts/:id")
	accounts.GET("/balance", h.GetBalance)
	accounts.GET("/stats", h.GetGamblingStats)
	accounts.POST("/pull", h.Pull)
	accounts.GET("/inventory", h.GetInventory)
	accounts.GET("/inventory/stats", h.GetInventoryStats)

	api.GET("/games", h.ListGames)
	api.POST("/games/:kind/play", h.PlayGame)
}

// respondError maps domain errors to HTTP statuses and logs storage
// failures. No error here is fatal to the process.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidBet), errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrUnknownGame):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInsufficientFunds):
		c.JSON(http.StatusPaymentRequired, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrDailyLimitExceeded), errors.Is(err, service.ErrCooldownActive):
		c.JSON(http.StatusTooManyRequests, gin.H{"error": err.Error()})
	case errors.Is(err, repository.ErrStorage):
		log.Error().Err(err).Msg("storage failure")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "storage failure"})
	default:
		log.Error().Err(err).Msg("unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
