package loyaltyRepo

import "salao/models"

// LoyaltyRepository defines methods for loyalty program and ledger access.
type LoyaltyRepository interface {
	// GetActiveProgram retrieves the active program document, nil if none.
	GetActiveProgram() (*models.LoyaltyProgram, error)
	// GetProgram retrieves the program document regardless of active flag,
	// nil if none exists yet.
	GetProgram() (*models.LoyaltyProgram, error)
	// CreateProgram inserts a new program document.
	CreateProgram(p *models.LoyaltyProgram) error
	// UpdateProgram modifies the program document.
	UpdateProgram(p *models.LoyaltyProgram) error
	// CreateTransaction appends one entry to the points ledger.
	CreateTransaction(tx *models.LoyaltyTransaction) error
	// GetTransactionsByUser retrieves a user's ledger, newest first.
	GetTransactionsByUser(userID string) ([]models.LoyaltyTransaction, error)
}
