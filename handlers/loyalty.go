package handlers

import (
	"errors"
	"net/http"

	"salao/services/loyalty"
	"salao/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LoyaltyHandler exposes the points program endpoints.
type LoyaltyHandler struct {
	LoyaltyService loyalty.LoyaltyService
}

// NewLoyaltyHandler builds a LoyaltyHandler.
func NewLoyaltyHandler(svc loyalty.LoyaltyService) *LoyaltyHandler {
	return &LoyaltyHandler{LoyaltyService: svc}
}

// GetProgramHandler handles GET /api/loyalty/program.
func (h *LoyaltyHandler) GetProgramHandler(c *gin.Context) {
	program, err := h.LoyaltyService.GetProgram()
	if err != nil {
		utils.GetLogger().Error("Failed to load loyalty program", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, program)
}

// UpdateProgramHandler handles PUT /api/loyalty/program.
func (h *LoyaltyHandler) UpdateProgramHandler(c *gin.Context) {
	var in loyalty.ProgramInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	program, err := h.LoyaltyService.UpdateProgram(in)
	if err != nil {
		utils.GetLogger().Error("Loyalty program update failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, program)
}

// AddRewardHandler handles POST /api/loyalty/rewards.
func (h *LoyaltyHandler) AddRewardHandler(c *gin.Context) {
	var in loyalty.RewardInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reward, err := h.LoyaltyService.AddReward(in)
	if err != nil {
		if errors.Is(err, loyalty.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		utils.GetLogger().Error("Reward creation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, reward)
}

// UpdateRewardHandler handles PUT /api/loyalty/rewards/:id.
func (h *LoyaltyHandler) UpdateRewardHandler(c *gin.Context) {
	id := c.Param("id")

	var in loyalty.RewardInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reward, err := h.LoyaltyService.UpdateReward(id, in)
	if err != nil {
		if errors.Is(err, loyalty.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		utils.GetLogger().Error("Reward update failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, reward)
}

// GetBalanceHandler handles GET /api/loyalty/balance. Clients read their own
// balance; admins may pass ?user= to inspect another account.
func (h *LoyaltyHandler) GetBalanceHandler(c *gin.Context) {
	userID := c.GetString("userID")
	if target := c.Query("user"); target != "" && c.GetString("userRole") == "admin" {
		userID = target
	}

	balance, err := h.LoyaltyService.Balance(userID)
	if err != nil {
		if errors.Is(err, loyalty.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		utils.GetLogger().Error("Balance lookup failed", zap.String("user", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"userId": userID, "points": balance})
}

// GetTransactionsHandler handles GET /api/loyalty/transactions.
func (h *LoyaltyHandler) GetTransactionsHandler(c *gin.Context) {
	userID := c.GetString("userID")
	if target := c.Query("user"); target != "" && c.GetString("userRole") == "admin" {
		userID = target
	}

	txns, err := h.LoyaltyService.Transactions(userID)
	if err != nil {
		utils.GetLogger().Error("Ledger lookup failed", zap.String("user", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, txns)
}

// AddPointsHandler handles POST /api/loyalty/points.
func (h *LoyaltyHandler) AddPointsHandler(c *gin.Context) {
	var req loyalty.AddPointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	txn, err := h.LoyaltyService.AddPoints(req)
	if err != nil {
		switch {
		case errors.Is(err, loyalty.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, loyalty.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			utils.GetLogger().Error("Point credit failed", zap.String("user", req.UserID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, txn)
}

// RedeemRewardHandler handles POST /api/loyalty/redeem/:rewardId.
func (h *LoyaltyHandler) RedeemRewardHandler(c *gin.Context) {
	userID := c.GetString("userID")
	rewardID := c.Param("rewardId")

	txn, err := h.LoyaltyService.RedeemReward(userID, rewardID)
	if err != nil {
		switch {
		case errors.Is(err, loyalty.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, loyalty.ErrInsufficientPoints), errors.Is(err, loyalty.ErrRewardInactive):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			utils.GetLogger().Error("Redemption failed",
				zap.String("user", userID), zap.String("reward", rewardID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, txn)
}
