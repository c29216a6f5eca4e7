// Package main seeds a development database with a demo customer and two
// years of ledger entries so the dashboard has data to aggregate.
package main

import (
	"log"
	"time"

	"github.com/google/uuid"

	"corepay/internal/config"
	"corepay/internal/models"
	"corepay/internal/repositories"
	"corepay/internal/services/customer"
)

func main() {
	config.LoadEnv()

	if err := repositories.InitDB(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	customerService := customer.NewService(repositories.NewCustomerRepository(repositories.DB))
	transactionRepo := repositories.NewTransactionRepository(repositories.DB)

	rate := 10.0
	demo, err := customerService.Create(&models.CreateCustomerInput{
		Name:         "Demo Customer",
		Email:        config.GetEnv("SEED_EMAIL", "demo@corepay.local"),
		Password:     config.GetEnv("SEED_PASSWORD", "demo-password"),
		Phone:        "0800000000",
		DiscountRate: &rate,
		Wallet:       100,
	})
	if err != nil {
		log.Printf("Seed customer not created (may already exist): %v", err)
	} else {
		log.Printf("Seeded customer %d (%s)", demo.ID, demo.Email)
	}

	year := time.Now().UTC().Year()
	for _, y := range []int{year - 1, year} {
		for month := time.January; month <= time.December; month++ {
			date := time.Date(y, month, 15, 10, 0, 0, 0, time.UTC)
			entries := []models.Transaction{
				{
					Reference: uuid.NewString(),
					Name:      "monthly sales",
					Type:      models.TransactionTypeIncome,
					Amount:    1000 + float64(month)*50,
					Date:      date,
				},
				{
					Reference: uuid.NewString(),
					Name:      "monthly rent",
					Type:      models.TransactionTypeExpense,
					Amount:    400,
					Date:      date,
				},
			}
			for i := range entries {
				if err := transactionRepo.Create(&entries[i]); err != nil {
					log.Fatalf("Failed to seed ledger entry: %v", err)
				}
			}
		}
	}

	log.Println("Seed complete")
}
