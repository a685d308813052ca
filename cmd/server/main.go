package main

import (
	"context"
	"log"
	"os"

	"helpdesk-admin-backend/internal/api/routes"
	"helpdesk-admin-backend/internal/config"
	"helpdesk-admin-backend/internal/database"
	"helpdesk-admin-backend/internal/mailer"
	"helpdesk-admin-backend/internal/queue"
	"helpdesk-admin-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "helpdesk-admin-backend/docs" // This is needed for swag
)

//	@title			Helpdesk Admin Backend API
//	@version		1.0
//	@description	This is the administrative backend for the helpdesk platform, providing endpoints for managing customers, personnel, sectors, tickets, email templates, inventory and satisfaction surveys.
//	@termsOfService	http://swagger.io/terms/

//	@contact.name	API Support
//	@contact.url	http://www.example.com/support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7040
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	setupLogging(cfg.LogLevel)
	logger := logrus.StandardLogger()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	// Select the email queue: RabbitMQ when configured, in-memory otherwise
	var q queue.Queue
	if cfg.AMQPURL != "" {
		q, err = queue.NewAMQPQueue(cfg.AMQPURL, cfg.EmailAttempts, logger)
		if err != nil {
			logrus.Fatal("Failed to connect to RabbitMQ:", err)
		}
	} else {
		logrus.Info("AMQP_URL not set, using in-memory email queue")
		q = queue.NewInMemoryQueue(cfg.EmailAttempts, logger)
	}
	defer q.Close()

	// Select the mail sender: SMTP relay when configured, log-only otherwise
	var sender mailer.Sender
	if cfg.SMTPHost != "" {
		sender = mailer.NewSMTPSender(mailer.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			User:     cfg.SMTPUser,
			Password: cfg.SMTPPassword,
			From:     cfg.SMTPFrom,
		})
	} else {
		logrus.Info("SMTP_HOST not set, outbound mail will only be logged")
		sender = mailer.NewLogSender(logger)
	}

	// Export object storage is optional
	var store *storage.ExportStore
	if cfg.ExportBucket != "" {
		store, err = storage.NewExportStore(context.Background(), storage.ExportConfig{
			Bucket:    cfg.ExportBucket,
			Endpoint:  cfg.ExportEndpoint,
			Region:    cfg.ExportRegion,
			AccessKey: cfg.ExportAccessKey,
			SecretKey: cfg.ExportSecretKey,
		})
		if err != nil {
			logrus.Fatal("Failed to initialize export storage:", err)
		}
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router, notifier := routes.SetupRoutes(db, cfg, q, sender, store, logger)

	// Without RabbitMQ there is no separate worker process, so queued
	// emails are delivered in-process
	if cfg.AMQPURL == "" {
		if err := q.Subscribe(cfg.EmailQueue, notifier.ProcessMessage); err != nil {
			logrus.Fatal("Failed to subscribe to email queue:", err)
		}
	}

	// Start server
	port := cfg.Port
	if port == "" {
		port = "7040"
	}

	logrus.Infof("Starting server on port %s", port)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatal("Failed to start server:", err)
	}
}

func setupLogging(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	switch level {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}
