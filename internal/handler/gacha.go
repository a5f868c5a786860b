package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Pull executes one guarded gacha pull for the account.
func (h *Handler) Pull(c *gin.Context) {
	accountID := c.Param("id")

	outcome, err := h.gacha.Pull(c.Request.Context(), accountID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"account_id":        accountID,
		"character":         outcome.Entry.Name,
		"adjective":         outcome.Entry.Adjective,
		"rarity":            outcome.Rarity,
		"pity_pulls":        outcome.PityPulls,
		"next_guaranteed_4": outcome.NextGuaranteed4,
		"next_guaranteed_5": outcome.NextGuaranteed5,
		"new_balance":       outcome.NewBalance,
	})
}

// GetInventory lists the account's pulls, newest first.
func (h *Handler) GetInventory(c *gin.Context) {
	accountID := c.Param("id")

	limit := 50
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = n
	}

	items, err := h.gacha.Inventory(c.Request.Context(), accountID, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]gin.H, 0, len(items))
	for _, item := range items {
		out = append(out, gin.H{
			"character":   item.Character,
			"rarity":      item.Rarity,
			"adjective":   item.Adjective,
			"obtained_at": item.ObtainedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"account_id": accountID,
		"items":      out,
	})
}

// GetInventoryStats returns aggregate inventory statistics.
func (h *Handler) GetInventoryStats(c *gin.Context) {
	accountID := c.Param("id")

	stats, err := h.gacha.InventoryStats(c.Request.Context(), accountID)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := gin.H{
		"account_id":       accountID,
		"total_characters": stats.TotalCharacters,
		"rarity_counts":    stats.RarityCounts,
		"total_value":      stats.TotalValue,
	}
	if stats.Rarest != nil {
		resp["rarest_character"] = gin.H{
			"character": stats.Rarest.Character,
			"rarity":    stats.Rarest.Rarity,
			"adjective": stats.Rarest.Adjective,
		}
	}

	c.JSON(http.StatusOK, resp)
}
