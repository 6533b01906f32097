package loyalty

import "salao/models"

// ProgramInput carries optional loyalty program updates.
type ProgramInput struct {
	Name                       *string `json:"name"`
	PointsPerCurrency          *int    `json:"pointsPerCurrency"`
	MinimumPointsForRedemption *int    `json:"minimumPointsForRedemption"`
	PointsToRewardRatio        *int    `json:"pointsToRewardRatio"`
	IsActive                   *bool   `json:"isActive"`
}

// RewardInput is the payload for creating or updating a reward.
type RewardInput struct {
	Name               string   `json:"name"`
	Description        string   `json:"description"`
	PointsRequired     *int     `json:"pointsRequired"`
	DiscountValue      *float64 `json:"discountValue"`
	DiscountPercentage *float64 `json:"discountPercentage"`
	FreeServiceID      string   `json:"freeService"`
	IsActive           *bool    `json:"isActive"`
}

// AddPointsRequest is the admin payload for crediting a client.
type AddPointsRequest struct {
	UserID        string `json:"userId" binding:"required"`
	AppointmentID string `json:"appointmentId"`
	Points        int    `json:"points" binding:"required"`
	Description   string `json:"description"`
}

// LoyaltyService defines the points program operations.
type LoyaltyService interface {
	// GetProgram returns the active program, creating the default one on
	// first access.
	GetProgram() (*models.LoyaltyProgram, error)
	// UpdateProgram applies a partial configuration update.
	UpdateProgram(in ProgramInput) (*models.LoyaltyProgram, error)
	// AddReward appends a reward to the active program.
	AddReward(in RewardInput) (*models.Reward, error)
	// UpdateReward edits one reward of the active program.
	UpdateReward(rewardID string, in RewardInput) (*models.Reward, error)
	// Balance returns a user's current point balance.
	Balance(userID string) (int, error)
	// Transactions returns a user's ledger, newest first.
	Transactions(userID string) ([]models.LoyaltyTransaction, error)
	// AddPoints credits points to a client, recording the ledger entry and
	// the visit when an appointment is referenced.
	AddPoints(req AddPointsRequest) (*models.LoyaltyTransaction, error)
	// RedeemReward debits a reward's cost from the user's balance.
	RedeemReward(userID, rewardID string) (*models.LoyaltyTransaction, error)
}
