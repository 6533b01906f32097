// models/loyalty.go
package models

import "time"

// Loyalty transaction types.
const (
	LoyaltyEarn   = "earn"
	LoyaltyRedeem = "redeem"
	LoyaltyExpire = "expire"
	LoyaltyAdjust = "adjust"
)

// Reward is a redeemable benefit embedded in the loyalty program.
type Reward struct {
	ID                 string  `bson:"id" json:"id"`
	Name               string  `bson:"name" json:"name"`
	Description        string  `bson:"description,omitempty" json:"description,omitempty"`
	PointsRequired     int     `bson:"pointsRequired" json:"pointsRequired"`
	DiscountValue      float64 `bson:"discountValue,omitempty" json:"discountValue,omitempty"`
	DiscountPercentage float64 `bson:"discountPercentage,omitempty" json:"discountPercentage,omitempty"`
	FreeServiceID      string  `bson:"freeServiceId,omitempty" json:"freeServiceId,omitempty"`
	IsActive           bool    `bson:"isActive" json:"isActive"`
}

// LoyaltyProgram holds the salon's points program configuration. A single
// active program document exists at a time; rewards are embedded.
type LoyaltyProgram struct {
	ID                         string    `bson:"id" json:"id"`
	Name                       string    `bson:"name" json:"name"`
	PointsPerCurrency          int       `bson:"pointsPerCurrency" json:"pointsPerCurrency"`
	MinimumPointsForRedemption int       `bson:"minimumPointsForRedemption" json:"minimumPointsForRedemption"`
	PointsToRewardRatio        int       `bson:"pointsToRewardRatio" json:"pointsToRewardRatio"`
	IsActive                   bool      `bson:"isActive" json:"isActive"`
	Rewards                    []Reward  `bson:"rewards,omitempty" json:"rewards,omitempty"`
	CreatedAt                  time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt                  time.Time `bson:"updatedAt" json:"updatedAt"`
}

// LoyaltyTransaction is one entry in a user's points ledger.
type LoyaltyTransaction struct {
	ID          string     `bson:"id" json:"id"`
	UserID      string     `bson:"userId" json:"userId"`
	Type        string     `bson:"type" json:"type"`
	Points      int        `bson:"points" json:"points"`
	Description string     `bson:"description" json:"description"`
	RelatedTo   RelatedRef `bson:"relatedTo,omitempty" json:"relatedTo,omitempty"`
	ExpiresAt   *time.Time `bson:"expiresAt,omitempty" json:"expiresAt,omitempty"`
	CreatedAt   time.Time  `bson:"createdAt" json:"createdAt"`
}
