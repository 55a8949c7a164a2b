package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"restaurant-orders/internal/configs"
	httpdelivery "restaurant-orders/internal/delivery/http"
	"restaurant-orders/internal/delivery/kafka"
	"restaurant-orders/internal/notify"
	"restaurant-orders/internal/repository"
	"restaurant-orders/internal/service"
)

// @title restaurant orders service
// @version 1.0
// @description Takes storefront orders, holds them pending until the customer confirms a bank transfer, and emails both sides at each step.

// @host localhost:5000
// @basePath /

func main() {
	_ = godotenv.Load()
	cfg, err := configs.LoadConfig()
	if err != nil {
		logrus.Fatalf("config load: %s", err)
	}
	if err := cfg.ConfigureLogger(); err != nil {
		logrus.Fatalf("logger: %s", err)
	}
	logrus.Print("config parsed")

	repo, err := repository.NewRepository(repository.Config{
		Root:         cfg.StorageRoot,
		PendingDir:   cfg.PendingDir,
		CompletedDir: cfg.OrdersDir,
	})
	if err != nil {
		logrus.Fatalf("open order store: %s", err)
	}
	logrus.WithField("root", cfg.StorageRoot).Print("order store indexed")

	tpl, err := notify.NewTemplates(notify.Restaurant{
		Name:     cfg.RestaurantName,
		Email:    cfg.RestaurantInbox(),
		WhatsApp: cfg.RestaurantWhatsApp,
		Location: cfg.Location(),
	})
	if err != nil {
		logrus.Fatalf("email templates: %s", err)
	}

	var mailer notify.Mailer = notify.LogMailer{}
	if cfg.SMTPConfigured() {
		mailer = notify.NewSMTPMailer(notify.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.EmailUser,
			Password: cfg.EmailPass,
			From:     cfg.EmailFrom,
		})
	}
	notifier := notify.NewNotifier(mailer, tpl, cfg.RestaurantInbox())

	opts := []service.Option{
		service.WithPaymentWindow(cfg.PaymentWindow),
		service.WithOrderIDPrefix(cfg.OrderIDPrefix),
	}
	if brokers := cfg.KafkaBrokersSlice(); len(brokers) > 0 {
		pub := kafka.NewPublisher(brokers, cfg.KafkaTopic)
		defer func() {
			if cerr := pub.Close(); cerr != nil {
				logrus.Errorf("publisher close: %v", cerr)
			}
		}()
		opts = append(opts, service.WithEventPublisher(pub))
		logrus.WithField("topic", cfg.KafkaTopic).Print("order events enabled")
	}
	svc := service.NewService(repo, notifier, opts...)

	h := httpdelivery.NewHandler(svc,
		httpdelivery.WithCORSOrigins(cfg.CORSOriginsSlice()),
		httpdelivery.WithServiceName(cfg.RestaurantName),
	)
	srv := new(httpdelivery.Server)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		if err := srv.Run(cfg.HTTPAddr, h.InitRoutes()); err != nil {
			logrus.Errorf("http run: %v", err)
			cancel()
		}
	}()
	logrus.Printf("http server started on %s", cfg.HTTPAddr)
	logStartup(cfg)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	select {
	case <-quit:
		logrus.Print("shutdown signal received")
	case <-ctx.Done():
		logrus.Print("context canceled, shutting down")
	}

	shutdownCtx, stop := context.WithTimeout(context.Background(), 10*time.Second)
	defer stop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("http shutdown: %s", err)
	}
	logrus.Print("service stopped")
}

func logStartup(cfg configs.Config) {
	email := "not configured, emails are logged only"
	if cfg.SMTPConfigured() {
		email = "configured"
	}
	inbox := cfg.RestaurantInbox()
	if inbox == "" {
		inbox = "not set"
	}
	logrus.WithFields(logrus.Fields{
		"email_service":    email,
		"restaurant_email": inbox,
		"payment_window":   cfg.PaymentWindow,
	}).Print("notification settings")
}
