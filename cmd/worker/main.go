package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"helpdesk-admin-backend/internal/config"
	"helpdesk-admin-backend/internal/database"
	"helpdesk-admin-backend/internal/mailer"
	"helpdesk-admin-backend/internal/queue"
	"helpdesk-admin-backend/internal/repository"
	"helpdesk-admin-backend/internal/service"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// The worker consumes the email queue and delivers queued notification
// emails. It only makes sense alongside RabbitMQ; with the in-memory
// queue the server process delivers mail itself.
func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}
	if cfg.AMQPURL == "" {
		log.Fatal("AMQP_URL must be set to run the worker")
	}

	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logger := logrus.StandardLogger()

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	q, err := queue.NewAMQPQueue(cfg.AMQPURL, cfg.EmailAttempts, logger)
	if err != nil {
		logrus.Fatal("Failed to connect to RabbitMQ:", err)
	}
	defer q.Close()

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

	templateRepo := repository.NewEmailTemplateRepository(db)
	settingRepo := repository.NewNotificationSettingRepository(db)
	messageRepo := repository.NewEmailMessageRepository(db)
	ticketRepo := repository.NewTicketRepository(db)

	notifier := service.NewNotificationService(
		templateRepo, settingRepo, messageRepo, ticketRepo,
		q, sender, cfg.EmailQueue, logger,
	)

	if err := q.Subscribe(cfg.EmailQueue, notifier.ProcessMessage); err != nil {
		logrus.Fatal("Failed to subscribe to email queue:", err)
	}

	logrus.Infof("Worker running, consuming %q", cfg.EmailQueue)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logrus.Info("Worker shutting down")
}
