package configs

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/sirupsen/logrus"
)

type Config struct {
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":5000"`

	StorageRoot string `env:"STORAGE_ROOT" envDefault:"."`
	PendingDir  string `env:"PENDING_DIR" envDefault:"pending-orders"`
	OrdersDir   string `env:"ORDERS_DIR" envDefault:"orders"`

	PaymentWindow time.Duration `env:"PAYMENT_WINDOW" envDefault:"30m"`
	OrderIDPrefix string        `env:"ORDER_ID_PREFIX" envDefault:"MK"`

	SMTPHost  string `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	SMTPPort  int    `env:"SMTP_PORT" envDefault:"587"`
	EmailUser string `env:"EMAIL_USER" envDefault:""`
	EmailPass string `env:"EMAIL_PASS" envDefault:""`
	EmailFrom string `env:"EMAIL_FROM" envDefault:""`

	RestaurantEmail    string `env:"RESTAURANT_EMAIL" envDefault:""`
	RestaurantName     string `env:"RESTAURANT_NAME" envDefault:"Matt-Kenn Minibar & Mix"`
	RestaurantWhatsApp string `env:"RESTAURANT_WHATSAPP" envDefault:""`
	Timezone           string `env:"TIMEZONE" envDefault:"Africa/Lagos"`

	CORSOrigins string `env:"CORS_ORIGINS" envDefault:"http://localhost:3000"`

	KafkaBrokers string `env:"KAFKA_BROKERS" envDefault:""`
	KafkaTopic   string `env:"KAFKA_TOPIC" envDefault:"restaurant-orders"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
}

func LoadConfig() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("config parse: %w", err)
	}
	if c.PaymentWindow <= 0 {
		return Config{}, fmt.Errorf("config parse: PAYMENT_WINDOW must be positive, got %s", c.PaymentWindow)
	}
	return c, nil
}

// SMTPConfigured reports whether mail can actually be delivered.
func (c Config) SMTPConfigured() bool {
	return c.EmailUser != "" && c.EmailPass != ""
}

// RestaurantInbox falls back to the sending account when no dedicated inbox is set.
func (c Config) RestaurantInbox() string {
	if c.RestaurantEmail != "" {
		return c.RestaurantEmail
	}
	return c.EmailUser
}

func (c Config) KafkaBrokersSlice() []string {
	return splitList(c.KafkaBrokers)
}

func (c Config) CORSOriginsSlice() []string {
	return splitList(c.CORSOrigins)
}

// Location resolves TIMEZONE, falling back to UTC when the zone database lacks it.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		logrus.WithError(err).WithField("timezone", c.Timezone).Warn("unknown timezone, using UTC")
		return time.UTC
	}
	return loc
}

// ConfigureLogger applies LOG_LEVEL and LOG_FORMAT to the standard logrus logger.
func (c Config) ConfigureLogger() error {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	logrus.SetLevel(lvl)

	switch strings.ToLower(c.LogFormat) {
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	case "text", "":
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return fmt.Errorf("log format: unknown %q", c.LogFormat)
	}
	return nil
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
