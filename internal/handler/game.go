package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gacha-ledger/internal/service"
)

// playRequest is the body of a play call. Bet is a number or the
// literal "all" and may be omitted for flat-cost games; Guess and
// Choice are game-specific inputs.
type playRequest struct {
	AccountID string `json:"account_id" binding:"required"`
	Bet       string `json:"bet"`
	Guess     string `json:"guess"`
	Choice    string `json:"choice"`
}

// ListGames returns the registered games.
func (h *Handler) ListGames(c *gin.Context) {
	games := h.games.Registry().List()

	out := make([]gin.H, 0, len(games))
	for _, g := range games {
		out = append(out, gin.H{
			"name": g.Name(),
			"kind": g.Kind(),
		})
	}

	c.JSON(http.StatusOK, gin.H{"games": out})
}

// PlayGame runs one round of the game named in the path.
func (h *Handler) PlayGame(c *gin.Context) {
	kind := c.Param("kind")

	var req playRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	bet := service.FixedBet(0)
	if req.Bet != "" {
		parsed, err := service.ParseBet(req.Bet)
		if err != nil {
			respondError(c, err)
			return
		}
		bet = parsed
	}

	params := map[string]any{}
	if req.Guess != "" {
		params["guess"] = req.Guess
	}
	if req.Choice != "" {
		params["choice"] = req.Choice
	}

	outcome, err := h.games.Play(c.Request.Context(), req.AccountID, kind, bet, params)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"game":        outcome.Game,
		"kind":        outcome.Kind,
		"bet":         outcome.Bet,
		"win":         outcome.Win,
		"new_balance": outcome.NewBalance,
		"message":     outcome.Description,
		"details":     outcome.Details,
	})
}
