package loyalty

import (
	"context"
	"errors"
	"testing"

	"salao/models"
)

type fakeLoyaltyRepo struct {
	program *models.LoyaltyProgram
	ledger  []models.LoyaltyTransaction
}

func (f *fakeLoyaltyRepo) GetActiveProgram() (*models.LoyaltyProgram, error) {
	if f.program == nil || !f.program.IsActive {
		return nil, nil
	}
	return f.program, nil
}

func (f *fakeLoyaltyRepo) GetProgram() (*models.LoyaltyProgram, error) {
	return f.program, nil
}

func (f *fakeLoyaltyRepo) CreateProgram(p *models.LoyaltyProgram) error {
	f.program = p
	return nil
}

func (f *fakeLoyaltyRepo) UpdateProgram(p *models.LoyaltyProgram) error {
	f.program = p
	return nil
}

func (f *fakeLoyaltyRepo) CreateTransaction(tx *models.LoyaltyTransaction) error {
	f.ledger = append(f.ledger, *tx)
	return nil
}

func (f *fakeLoyaltyRepo) GetTransactionsByUser(userID string) ([]models.LoyaltyTransaction, error) {
	var out []models.LoyaltyTransaction
	for _, tx := range f.ledger {
		if tx.UserID == userID {
			out = append(out, tx)
		}
	}
	return out, nil
}

type fakeUserRepo struct {
	users  map[string]*models.User
	visits int
}

func (f *fakeUserRepo) GetByID(id string) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return u, nil
}

func (f *fakeUserRepo) AddLoyaltyPoints(id string, delta int) error {
	u, ok := f.users[id]
	if !ok {
		return errors.New("not found")
	}
	u.LoyaltyPoints += delta
	return nil
}

func (f *fakeUserRepo) AppendVisit(id string, _ models.Visit) error {
	if _, ok := f.users[id]; !ok {
		return errors.New("not found")
	}
	f.visits++
	return nil
}

func (f *fakeUserRepo) GetByEmail(string) (*models.User, error) { return nil, nil }
func (f *fakeUserRepo) GetByRole(string) ([]models.User, error) { return nil, nil }
func (f *fakeUserRepo) Create(*models.User) error               { return nil }
func (f *fakeUserRepo) Update(*models.User) error               { return nil }
func (f *fakeUserRepo) Delete(string) error                     { return nil }
func (f *fakeUserRepo) SetTokenHash(string, string) error       { return nil }

type fakeApptRepo struct {
	appts map[string]models.Appointment
}

func (f *fakeApptRepo) GetByID(id string) (*models.Appointment, error) {
	a, ok := f.appts[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return &a, nil
}

func (f *fakeApptRepo) GetAll() ([]models.Appointment, error)              { return nil, nil }
func (f *fakeApptRepo) GetByClient(string) ([]models.Appointment, error)   { return nil, nil }
func (f *fakeApptRepo) GetByEmployee(string) ([]models.Appointment, error) { return nil, nil }
func (f *fakeApptRepo) IntervalsFor(string, string) ([]models.TimeInterval, error) {
	return nil, nil
}
func (f *fakeApptRepo) CreateIfFree(context.Context, *models.Appointment) error { return nil }
func (f *fakeApptRepo) Update(*models.Appointment) error                        { return nil }
func (f *fakeApptRepo) Delete(string) error                                     { return nil }

func newTestService(points int) (*DefaultLoyaltyService, *fakeUserRepo, *fakeLoyaltyRepo) {
	users := &fakeUserRepo{users: map[string]*models.User{
		"c1": {ID: "c1", Name: "Ana", LoyaltyPoints: points},
	}}
	repo := &fakeLoyaltyRepo{}
	svc := &DefaultLoyaltyService{
		Repo:  repo,
		Users: users,
		Appointments: &fakeApptRepo{appts: map[string]models.Appointment{
			"a1": {ID: "a1", ClientID: "c1", EmployeeID: "e1", ServiceID: "s1", Date: "2026-09-01"},
		}},
	}
	return svc, users, repo
}

func TestGetProgramCreatesDefault(t *testing.T) {
	svc, _, repo := newTestService(0)

	program, err := svc.GetProgram()
	if err != nil {
		t.Fatalf("GetProgram returned error: %v", err)
	}
	if !program.IsActive {
		t.Error("default program should be active")
	}
	if program.PointsPerCurrency != 10 || program.MinimumPointsForRedemption != 1000 {
		t.Errorf("default config = %+v", program)
	}
	if repo.program == nil {
		t.Error("default program was not persisted")
	}

	// Second call returns the stored document, not a fresh one.
	again, err := svc.GetProgram()
	if err != nil {
		t.Fatalf("second GetProgram returned error: %v", err)
	}
	if again.ID != program.ID {
		t.Errorf("program recreated: %s vs %s", again.ID, program.ID)
	}
}

func TestAddPointsRecordsVisitAndLedger(t *testing.T) {
	svc, users, repo := newTestService(0)

	tx, err := svc.AddPoints(AddPointsRequest{UserID: "c1", AppointmentID: "a1", Points: 250})
	if err != nil {
		t.Fatalf("AddPoints returned error: %v", err)
	}
	if tx.Type != models.LoyaltyEarn || tx.Points != 250 {
		t.Errorf("transaction = %+v", tx)
	}
	if users.users["c1"].LoyaltyPoints != 250 {
		t.Errorf("balance = %d, want 250", users.users["c1"].LoyaltyPoints)
	}
	if users.visits != 1 {
		t.Errorf("visits recorded = %d, want 1", users.visits)
	}
	if len(repo.ledger) != 1 {
		t.Errorf("ledger entries = %d, want 1", len(repo.ledger))
	}
}

func TestAddPointsRejectsNonPositive(t *testing.T) {
	svc, _, _ := newTestService(0)

	if _, err := svc.AddPoints(AddPointsRequest{UserID: "c1", Points: 0}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("AddPoints error = %v, want ErrInvalidInput", err)
	}
	if _, err := svc.AddPoints(AddPointsRequest{UserID: "c1", Points: -5}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("AddPoints error = %v, want ErrInvalidInput", err)
	}
}

func TestRedeemReward(t *testing.T) {
	svc, users, _ := newTestService(1500)

	if _, err := svc.GetProgram(); err != nil {
		t.Fatalf("GetProgram returned error: %v", err)
	}
	cost := 500
	reward, err := svc.AddReward(RewardInput{Name: "Corte grátis", PointsRequired: &cost})
	if err != nil {
		t.Fatalf("AddReward returned error: %v", err)
	}

	tx, err := svc.RedeemReward("c1", reward.ID)
	if err != nil {
		t.Fatalf("RedeemReward returned error: %v", err)
	}
	if tx.Points != -500 {
		t.Errorf("transaction points = %d, want -500", tx.Points)
	}
	if users.users["c1"].LoyaltyPoints != 1000 {
		t.Errorf("balance = %d, want 1000", users.users["c1"].LoyaltyPoints)
	}
}

func TestRedeemRewardInsufficientBalance(t *testing.T) {
	// Above the reward cost but below the program's redemption floor.
	svc, _, _ := newTestService(600)

	if _, err := svc.GetProgram(); err != nil {
		t.Fatalf("GetProgram returned error: %v", err)
	}
	cost := 500
	reward, err := svc.AddReward(RewardInput{Name: "Desconto", PointsRequired: &cost})
	if err != nil {
		t.Fatalf("AddReward returned error: %v", err)
	}

	if _, err := svc.RedeemReward("c1", reward.ID); !errors.Is(err, ErrInsufficientPoints) {
		t.Fatalf("RedeemReward error = %v, want ErrInsufficientPoints", err)
	}
}

func TestRedeemInactiveReward(t *testing.T) {
	svc, _, _ := newTestService(5000)

	if _, err := svc.GetProgram(); err != nil {
		t.Fatalf("GetProgram returned error: %v", err)
	}
	cost := 500
	reward, err := svc.AddReward(RewardInput{Name: "Desconto", PointsRequired: &cost})
	if err != nil {
		t.Fatalf("AddReward returned error: %v", err)
	}
	inactive := false
	if _, err := svc.UpdateReward(reward.ID, RewardInput{IsActive: &inactive}); err != nil {
		t.Fatalf("UpdateReward returned error: %v", err)
	}

	if _, err := svc.RedeemReward("c1", reward.ID); !errors.Is(err, ErrRewardInactive) {
		t.Fatalf("RedeemReward error = %v, want ErrRewardInactive", err)
	}
}

func TestAddRewardRequiresProgram(t *testing.T) {
	svc, _, _ := newTestService(0)

	cost := 100
	if _, err := svc.AddReward(RewardInput{Name: "Brinde", PointsRequired: &cost}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("AddReward error = %v, want ErrNotFound", err)
	}
}
