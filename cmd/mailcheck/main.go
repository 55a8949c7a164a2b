package main

import (
	"context"
	"fmt"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"restaurant-orders/internal/configs"
	"restaurant-orders/internal/notify"
)

// mailcheck authenticates against the configured SMTP server and sends a test
// message to the sending account.
func main() {
	_ = godotenv.Load()
	cfg, err := configs.LoadConfig()
	if err != nil {
		logrus.Fatalf("config load: %s", err)
	}

	logrus.WithFields(logrus.Fields{
		"host":       cfg.SMTPHost,
		"port":       cfg.SMTPPort,
		"email_user": cfg.EmailUser,
		"password":   passwordState(cfg.EmailPass),
	}).Print("checking mail configuration")

	if !cfg.SMTPConfigured() {
		logrus.Fatal("EMAIL_USER and EMAIL_PASS must both be set")
	}

	mailer := notify.NewSMTPMailer(notify.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.EmailUser,
		Password: cfg.EmailPass,
		From:     cfg.EmailFrom,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := mailer.Verify(ctx); err != nil {
		logrus.Fatalf("smtp verify: %s", err)
	}
	logrus.Print("smtp login ok")

	body := fmt.Sprintf("<h2>Test email</h2><p>%s can send mail. Sent at %s.</p>",
		cfg.RestaurantName, time.Now().In(cfg.Location()).Format(time.RFC1123))
	if err := mailer.Send(ctx, cfg.EmailUser, "Test Email - "+cfg.RestaurantName, body); err != nil {
		logrus.Fatalf("send test email: %s", err)
	}
	logrus.WithField("to", cfg.EmailUser).Print("test email sent")
}

func passwordState(p string) string {
	if p == "" {
		return "missing"
	}
	return "set"
}
