package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetBalance returns the account's balance, creating the account with
// the default balance on first touch.
func (h *Handler) GetBalance(c *gin.Context) {
	accountID := c.Param("id")

	balance, err := h.ledger.GetBalance(c.Request.Context(), accountID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"account_id": accountID,
		"balance":    balance,
	})
}

// GetGamblingStats returns the account's aggregate gambling statistics.
func (h *Handler) GetGamblingStats(c *gin.Context) {
	accountID := c.Param("id")

	stats, err := h.ledger.GamblingStats(c.Request.Context(), accountID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"account_id":  accountID,
		"total_games": stats.TotalGames,
		"total_bet":   stats.TotalBet,
		"total_won":   stats.TotalWon,
		"net_profit":  stats.NetProfit,
		"today_games": stats.TodayGames,
		"today_bet":   stats.TodayBet,
		"today_won":   stats.TodayWon,
	})
}
