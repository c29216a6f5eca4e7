// Package routes wires repositories, services, and handlers onto the fiber app.
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"corepay/internal/handlers"
	"corepay/internal/middleware"
	"corepay/internal/repositories"
	"corepay/internal/services/auth"
	"corepay/internal/services/customer"
	"corepay/internal/services/ledger"
	"corepay/internal/services/wallet"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	customerRepo := repositories.NewCustomerRepository(db)
	walletRepo := repositories.NewWalletRepository(db)
	transactionRepo := repositories.NewTransactionRepository(db)

	customerService := customer.NewService(customerRepo)
	authService := auth.NewService(customerRepo)
	walletService := wallet.NewService(walletRepo, repositories.CacheService, wallet.Config{}, nil)
	ledgerService := ledger.NewService(transactionRepo)

	authHandler := handlers.NewAuthHandler(authService, customerService)
	customerHandler := handlers.NewCustomerHandler(customerService)
	walletHandler := handlers.NewWalletHandler(walletService)
	ledgerHandler := handlers.NewLedgerHandler(ledgerService)

	app.Get("/health", handlers.HealthCheck)

	api := app.Group("/api")
	api.Post("/register", authHandler.Register)
	api.Post("/login", authHandler.Login)
	api.Post("/refresh", authHandler.Refresh)

	authMiddleware := middleware.NewAuthMiddleware(authService)
	protected := api.Use(authMiddleware.Handler)

	protected.Get("/customers/:id", customerHandler.GetCustomer)

	protected.Get("/wallet", walletHandler.GetBalance)
	protected.Post("/wallet/topup", walletHandler.TopUp)
	protected.Post("/wallet/purchase", walletHandler.Purchase)
	protected.Get("/wallet/orders", walletHandler.ListOrders)

	protected.Post("/transactions", ledgerHandler.RecordTransaction)
	protected.Get("/transactions", ledgerHandler.ListTransactions)
	protected.Get("/dashboard", ledgerHandler.Dashboard)
}
