package services

import (
	"math/rand"
	"time"

	"github.com/nicktebbo/FinTrack/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Spending categories the generator draws from, weighted towards everyday
// expenses.
var demoCategories = []string{
	"Food and Drink",
	"Food and Drink",
	"Shopping",
	"Shopping",
	"Transport",
	"Entertainment",
	"Bills",
	"Health",
}

const incomeEveryNth = 12

type demoDataService struct {
	faker *gofakeit.Faker
	rng   *rand.Rand
}

// NewDemoDataService creates a generator for development-only fixture data
func NewDemoDataService() DemoDataServiceInterface {
	seed := time.Now().UnixNano()
	return &demoDataService{
		faker: gofakeit.New(uint64(seed)),
		rng:   rand.New(rand.NewSource(seed)),
	}
}

// GenerateTransactions produces count fake transactions for an account,
// spread evenly over the window and dated newest last. Roughly one in twelve
// is an income entry; the rest are expenses.
func (s *demoDataService) GenerateTransactions(userID, accountID uuid.UUID, start, end time.Time, count int) []models.Transaction {
	if count <= 0 || !end.After(start) {
		return nil
	}

	window := end.Sub(start)
	step := window / time.Duration(count)

	transactions := make([]models.Transaction, 0, count)
	for i := 0; i < count; i++ {
		date := start.Add(time.Duration(i) * step)
		// Jitter within the slot keeps timestamps from forming a grid
		date = date.Add(time.Duration(s.rng.Int63n(int64(step) + 1)))

		if i%incomeEveryNth == incomeEveryNth-1 {
			transactions = append(transactions, models.Transaction{
				AccountID:       accountID,
				UserID:          userID,
				Description:     "Salary - " + s.faker.Company(),
				Amount:          decimal.NewFromFloat(s.faker.Price(1500, 4500)).Round(2),
				Category:        "Income",
				Date:            date,
				TransactionType: models.TransactionTypeIncome,
				Provider:        models.ProviderManual,
			})
			continue
		}

		merchant := s.faker.Company()
		transactions = append(transactions, models.Transaction{
			AccountID:       accountID,
			UserID:          userID,
			Description:     merchant,
			Amount:          decimal.NewFromFloat(s.faker.Price(3, 220)).Round(2),
			Category:        demoCategories[s.rng.Intn(len(demoCategories))],
			Date:            date,
			TransactionType: models.TransactionTypeExpense,
			Provider:        models.ProviderManual,
			MerchantName:    merchant,
			Location:        s.faker.City() + ", " + s.faker.StateAbr(),
		})
	}

	return transactions
}

// DemoUser returns a fake user profile for development logins
func (s *demoDataService) DemoUser() *models.User {
	return &models.User{
		Email:     "demo@fintrack.local",
		FirstName: s.faker.FirstName(),
		LastName:  s.faker.LastName(),
	}
}
