package usecase

import (
	"sync"
	"testing"
	"time"

	"github.com/bu6wer8/student-services-V4-Docker/internal/domain"
	"github.com/bu6wer8/student-services-V4-Docker/internal/pricing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCustomerRepo struct {
	mu        sync.Mutex
	customers map[string]*domain.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[string]*domain.Customer)}
}

func (r *fakeCustomerRepo) CreateCustomer(customer *domain.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *customer
	r.customers[customer.ID] = &clone
	return nil
}

func (r *fakeCustomerRepo) GetCustomerByID(customerID string) (*domain.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	customer, ok := r.customers[customerID]
	if !ok {
		return nil, domain.ErrCustomerNotFound
	}
	clone := *customer
	return &clone, nil
}

func (r *fakeCustomerRepo) GetCustomerByTelegramID(telegramID string) (*domain.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, customer := range r.customers {
		if customer.TelegramID == telegramID {
			clone := *customer
			return &clone, nil
		}
	}
	return nil, domain.ErrCustomerNotFound
}

func (r *fakeCustomerRepo) UpdateCustomer(customer *domain.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.customers[customer.ID]; !ok {
		return domain.ErrCustomerNotFound
	}
	clone := *customer
	r.customers[customer.ID] = &clone
	return nil
}

func (r *fakeCustomerRepo) TouchLastActivity(customerID string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	customer, ok := r.customers[customerID]
	if !ok {
		return domain.ErrCustomerNotFound
	}
	customer.LastActivity = at
	return nil
}

func newTestCustomerUsecase() (*DefaultCustomerUsecase, *fakeCustomerRepo) {
	repo := newFakeCustomerRepo()
	engine := pricing.NewEngine(pricing.Tables{
		CurrencyRates: map[string]float64{"USD": 1.0, "JOD": 0.71},
	})
	return NewDefaultCustomerUsecase(repo, engine), repo
}

func TestRegisterOrTouch_CreatesWithDefaults(t *testing.T) {
	uc, _ := newTestCustomerUsecase()

	customer, err := uc.RegisterOrTouch(&TouchCustomerInput{
		TelegramID: "12345",
		Username:   "student",
		FullName:   "A Student",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, customer.ID)
	assert.Equal(t, "en", customer.Language)
	assert.Equal(t, "OTHER", customer.Country)
	assert.Equal(t, "USD", customer.Currency)
	assert.True(t, customer.Active)
}

func TestRegisterOrTouch_RefreshesActivity(t *testing.T) {
	uc, repo := newTestCustomerUsecase()
	base := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	uc.Clock = func() time.Time { return base }
	created, err := uc.RegisterOrTouch(&TouchCustomerInput{TelegramID: "12345", FullName: "A Student"})
	require.NoError(t, err)

	uc.Clock = func() time.Time { return base.Add(time.Hour) }
	touched, err := uc.RegisterOrTouch(&TouchCustomerInput{TelegramID: "12345", Username: "renamed"})
	require.NoError(t, err)

	assert.Equal(t, created.ID, touched.ID)
	assert.Equal(t, "renamed", touched.Username)
	assert.Equal(t, base.Add(time.Hour), touched.LastActivity)

	stored, err := repo.GetCustomerByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, base.Add(time.Hour), stored.LastActivity)
}

func TestUpdatePreferences_ValidatesCurrency(t *testing.T) {
	uc, _ := newTestCustomerUsecase()

	created, err := uc.RegisterOrTouch(&TouchCustomerInput{TelegramID: "12345", FullName: "A Student"})
	require.NoError(t, err)

	_, err = uc.UpdatePreferences(created.ID, "", "EUR")
	assert.ErrorIs(t, err, domain.ErrInvalidCurrency)

	updated, err := uc.UpdatePreferences(created.ID, "ar", "JOD")
	require.NoError(t, err)
	assert.Equal(t, "ar", updated.Language)
	assert.Equal(t, "JOD", updated.Currency)
}
