package loyalty

import (
	"errors"
	"fmt"

	appointmentRepo "salao/database/repository/appointment"
	loyaltyRepo "salao/database/repository/loyalty"
	userRepo "salao/database/repository/user"
	"salao/models"

	"github.com/google/uuid"
)

var (
	// ErrNotFound flags a missing program, reward, user or appointment.
	ErrNotFound = errors.New("not found")
	// ErrInsufficientPoints is returned when redeeming beyond the balance.
	ErrInsufficientPoints = errors.New("insufficient loyalty points")
	// ErrRewardInactive is returned when redeeming a disabled reward.
	ErrRewardInactive = errors.New("reward is not active")
	// ErrInvalidInput flags a malformed points or reward request.
	ErrInvalidInput = errors.New("invalid input")
)

// Defaults applied when the program document is first created.
const (
	defaultPointsPerCurrency   = 10
	defaultMinimumForRedeem    = 1000
	defaultPointsToRewardRatio = 100
)

// DefaultLoyaltyService is the production implementation of LoyaltyService.
type DefaultLoyaltyService struct {
	Repo         loyaltyRepo.LoyaltyRepository
	Users        userRepo.UserRepository
	Appointments appointmentRepo.AppointmentRepository
}

// GetProgram returns the active program, creating the default one on first
// access.
func (s *DefaultLoyaltyService) GetProgram() (*models.LoyaltyProgram, error) {
	program, err := s.Repo.GetActiveProgram()
	if err != nil {
		return nil, err
	}
	if program != nil {
		return program, nil
	}

	program = &models.LoyaltyProgram{
		ID:                         uuid.NewString(),
		Name:                       "Programa de Fidelidade",
		PointsPerCurrency:          defaultPointsPerCurrency,
		MinimumPointsForRedemption: defaultMinimumForRedeem,
		PointsToRewardRatio:        defaultPointsToRewardRatio,
		IsActive:                   true,
	}
	if err := s.Repo.CreateProgram(program); err != nil {
		return nil, fmt.Errorf("failed to create default program: %w", err)
	}
	return program, nil
}

// UpdateProgram applies a partial configuration update, creating the
// document if it does not exist yet.
func (s *DefaultLoyaltyService) UpdateProgram(in ProgramInput) (*models.LoyaltyProgram, error) {
	program, err := s.Repo.GetProgram()
	if err != nil {
		return nil, err
	}
	created := false
	if program == nil {
		program = &models.LoyaltyProgram{ID: uuid.NewString(), IsActive: true}
		created = true
	}

	if in.Name != nil {
		program.Name = *in.Name
	}
	if in.PointsPerCurrency != nil {
		program.PointsPerCurrency = *in.PointsPerCurrency
	}
	if in.MinimumPointsForRedemption != nil {
		program.MinimumPointsForRedemption = *in.MinimumPointsForRedemption
	}
	if in.PointsToRewardRatio != nil {
		program.PointsToRewardRatio = *in.PointsToRewardRatio
	}
	if in.IsActive != nil {
		program.IsActive = *in.IsActive
	}

	if created {
		if err := s.Repo.CreateProgram(program); err != nil {
			return nil, err
		}
		return program, nil
	}
	if err := s.Repo.UpdateProgram(program); err != nil {
		return nil, err
	}
	return program, nil
}

// AddReward appends a reward to the active program.
func (s *DefaultLoyaltyService) AddReward(in RewardInput) (*models.Reward, error) {
	if in.Name == "" || in.PointsRequired == nil || *in.PointsRequired <= 0 {
		return nil, fmt.Errorf("%w: reward needs a name and a positive cost", ErrInvalidInput)
	}

	program, err := s.Repo.GetActiveProgram()
	if err != nil {
		return nil, err
	}
	if program == nil {
		return nil, fmt.Errorf("%w: loyalty program", ErrNotFound)
	}

	reward := models.Reward{
		ID:             uuid.NewString(),
		Name:           in.Name,
		Description:    in.Description,
		PointsRequired: *in.PointsRequired,
		FreeServiceID:  in.FreeServiceID,
		IsActive:       true,
	}
	if in.DiscountValue != nil {
		reward.DiscountValue = *in.DiscountValue
	}
	if in.DiscountPercentage != nil {
		reward.DiscountPercentage = *in.DiscountPercentage
	}

	program.Rewards = append(program.Rewards, reward)
	if err := s.Repo.UpdateProgram(program); err != nil {
		return nil, err
	}
	return &reward, nil
}

// UpdateReward edits one reward of the active program.
func (s *DefaultLoyaltyService) UpdateReward(rewardID string, in RewardInput) (*models.Reward, error) {
	program, err := s.Repo.GetActiveProgram()
	if err != nil {
		return nil, err
	}
	if program == nil {
		return nil, fmt.Errorf("%w: loyalty program", ErrNotFound)
	}

	idx := -1
	for i := range program.Rewards {
		if program.Rewards[i].ID == rewardID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, fmt.Errorf("%w: reward %s", ErrNotFound, rewardID)
	}

	reward := &program.Rewards[idx]
	if in.Name != "" {
		reward.Name = in.Name
	}
	if in.Description != "" {
		reward.Description = in.Description
	}
	if in.PointsRequired != nil && *in.PointsRequired > 0 {
		reward.PointsRequired = *in.PointsRequired
	}
	if in.DiscountValue != nil {
		reward.DiscountValue = *in.DiscountValue
	}
	if in.DiscountPercentage != nil {
		reward.DiscountPercentage = *in.DiscountPercentage
	}
	if in.FreeServiceID != "" {
		reward.FreeServiceID = in.FreeServiceID
	}
	if in.IsActive != nil {
		reward.IsActive = *in.IsActive
	}

	if err := s.Repo.UpdateProgram(program); err != nil {
		return nil, err
	}
	return reward, nil
}

// Balance returns a user's current point balance.
func (s *DefaultLoyaltyService) Balance(userID string) (int, error) {
	usr, err := s.Users.GetByID(userID)
	if err != nil {
		return 0, fmt.Errorf("%w: user %s", ErrNotFound, userID)
	}
	return usr.LoyaltyPoints, nil
}

// Transactions returns a user's ledger, newest first.
func (s *DefaultLoyaltyService) Transactions(userID string) ([]models.LoyaltyTransaction, error) {
	return s.Repo.GetTransactionsByUser(userID)
}

// AddPoints credits points to a client. When an appointment is referenced
// it is also recorded in the client's visit history.
func (s *DefaultLoyaltyService) AddPoints(req AddPointsRequest) (*models.LoyaltyTransaction, error) {
	if req.Points <= 0 {
		return nil, fmt.Errorf("%w: points must be positive", ErrInvalidInput)
	}

	usr, err := s.Users.GetByID(req.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: user %s", ErrNotFound, req.UserID)
	}

	related := models.RelatedRef{}
	if req.AppointmentID != "" {
		appt, err := s.Appointments.GetByID(req.AppointmentID)
		if err != nil {
			return nil, fmt.Errorf("%w: appointment %s", ErrNotFound, req.AppointmentID)
		}
		related = models.RelatedRef{Model: "Appointment", ID: appt.ID}
		visit := models.Visit{Date: appt.Date, ServiceID: appt.ServiceID, EmployeeID: appt.EmployeeID}
		if err := s.Users.AppendVisit(usr.ID, visit); err != nil {
			return nil, err
		}
	}

	description := req.Description
	if description == "" {
		description = "Points earned"
	}

	tx := &models.LoyaltyTransaction{
		ID:          uuid.NewString(),
		UserID:      usr.ID,
		Type:        models.LoyaltyEarn,
		Points:      req.Points,
		Description: description,
		RelatedTo:   related,
	}
	if err := s.Repo.CreateTransaction(tx); err != nil {
		return nil, err
	}
	if err := s.Users.AddLoyaltyPoints(usr.ID, req.Points); err != nil {
		return nil, err
	}
	return tx, nil
}

// RedeemReward debits a reward's cost from the user's balance.
func (s *DefaultLoyaltyService) RedeemReward(userID, rewardID string) (*models.LoyaltyTransaction, error) {
	program, err := s.Repo.GetActiveProgram()
	if err != nil {
		return nil, err
	}
	if program == nil {
		return nil, fmt.Errorf("%w: loyalty program", ErrNotFound)
	}

	var reward *models.Reward
	for i := range program.Rewards {
		if program.Rewards[i].ID == rewardID {
			reward = &program.Rewards[i]
			break
		}
	}
	if reward == nil {
		return nil, fmt.Errorf("%w: reward %s", ErrNotFound, rewardID)
	}
	if !reward.IsActive {
		return nil, ErrRewardInactive
	}

	usr, err := s.Users.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: user %s", ErrNotFound, userID)
	}
	if usr.LoyaltyPoints < reward.PointsRequired || usr.LoyaltyPoints < program.MinimumPointsForRedemption {
		return nil, ErrInsufficientPoints
	}

	tx := &models.LoyaltyTransaction{
		ID:          uuid.NewString(),
		UserID:      usr.ID,
		Type:        models.LoyaltyRedeem,
		Points:      -reward.PointsRequired,
		Description: fmt.Sprintf("Redeemed reward: %s", reward.Name),
		RelatedTo:   models.RelatedRef{Model: "LoyaltyProgram", ID: program.ID},
	}
	if err := s.Repo.CreateTransaction(tx); err != nil {
		return nil, err
	}
	if err := s.Users.AddLoyaltyPoints(usr.ID, -reward.PointsRequired); err != nil {
		return nil, err
	}
	return tx, nil
}
