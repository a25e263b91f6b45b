package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/sarveshkp/rentreceipt-api/internal/application/service"
	"github.com/sarveshkp/rentreceipt-api/internal/config"
	"github.com/sarveshkp/rentreceipt-api/internal/infrastructure/database"
	"github.com/sarveshkp/rentreceipt-api/internal/infrastructure/repository"
	"github.com/sarveshkp/rentreceipt-api/internal/presentation/http/handler"
	"github.com/sarveshkp/rentreceipt-api/internal/presentation/http/routes"
	"github.com/sarveshkp/rentreceipt-api/pkg/email"
	"github.com/sarveshkp/rentreceipt-api/pkg/printer"
	"github.com/sarveshkp/rentreceipt-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.New(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed the admin user if configured
	if err := database.SeedAdminUser(db); err != nil {
		log.Printf("Warning: failed to seed admin user: %v", err)
	}

	// JWT manager
	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours, cfg.JWT.RefreshExpiryHours)

	// Repositories
	userRepo := repository.NewUserRepository(db)
	receiptRepo := repository.NewReceiptRepository(db)
	seqRepo := repository.NewSequenceRepository(db)

	// Email service
	mailer := email.NewService(email.Config{
		SMTPHost:     cfg.Email.SMTPHost,
		SMTPPort:     cfg.Email.SMTPPort,
		SMTPUsername: cfg.Email.SMTPUsername,
		SMTPPassword: cfg.Email.SMTPPassword,
		FromName:     cfg.Email.FromName,
		FromEmail:    cfg.Email.FromEmail,
	})

	// Thermal printer
	ticketPrinter, err := printer.NewPrinterFromConfig(cfg.Printer.Type, cfg.Printer.USBPath, cfg.Printer.Address)
	if err != nil {
		log.Fatalf("Failed to configure printer: %v", err)
	}
	defer ticketPrinter.Close()

	// Services
	authService := service.NewAuthService(userRepo, jwtManager)
	receiptService := service.NewReceiptService(receiptRepo, seqRepo, mailer, cfg.Receipt.Numbering, cfg.Receipt.Orientation)
	printService := service.NewPrintService(ticketPrinter, receiptService, cfg.Printer.Width)

	// Handlers
	handlers := &routes.Handlers{
		Auth:    handler.NewAuthHandler(authService),
		Receipt: handler.NewReceiptHandler(receiptService, printService),
	}

	// Router
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	log.Printf("Starting %s on port %s", cfg.App.Name, cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
