package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"

	"restaurant-orders/internal/models"
	"restaurant-orders/internal/repository"
)

const DefaultPaymentWindow = 30 * time.Minute

type Order interface {
	CreatePending(ctx context.Context, req models.CreateOrderRequest) (models.Order, error)
	SubmitPaymentProof(ctx context.Context, orderID string, proof models.PaymentProof) (models.Order, error)
	GetOrder(ctx context.Context, orderID string) (models.Order, error)
	ListOrders(ctx context.Context) ([]models.Order, error)
}

type Contact interface {
	SendContactMessage(ctx context.Context, msg models.ContactMessage) error
}

// Notifier sends the lifecycle emails. Failures are logged by the caller, never retried.
type Notifier interface {
	PaymentInstructions(ctx context.Context, o models.Order) error
	PaymentConfirmation(ctx context.Context, o models.Order) error
	RestaurantAlert(ctx context.Context, o models.Order) error
	ContactForm(ctx context.Context, m models.ContactMessage) error
}

type EventPublisher interface {
	Publish(ctx context.Context, evt models.OrderEvent) error
}

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, models.OrderEvent) error { return nil }

type Service struct {
	repo     *repository.Repository
	notifier Notifier
	events   EventPublisher

	v        *validator.Validate
	locks    *orderLocks
	now      func() time.Time
	window   time.Duration
	idPrefix string
}

type Option func(*Service)

func WithClock(now func() time.Time) Option      { return func(s *Service) { s.now = now } }
func WithPaymentWindow(d time.Duration) Option   { return func(s *Service) { s.window = d } }
func WithOrderIDPrefix(prefix string) Option     { return func(s *Service) { s.idPrefix = prefix } }
func WithEventPublisher(p EventPublisher) Option { return func(s *Service) { s.events = p } }

func NewService(repository *repository.Repository, notifier Notifier, opts ...Option) *Service {
	s := &Service{
		repo:     repository,
		notifier: notifier,
		events:   nopPublisher{},
		v:        validator.New(),
		locks:    newOrderLocks(),
		now:      time.Now,
		window:   DefaultPaymentWindow,
		idPrefix: DefaultOrderIDPrefix,
	}
	for _, o := range opts {
		o(s)
	}
	if s.window <= 0 {
		s.window = DefaultPaymentWindow
	}
	if s.idPrefix == "" {
		s.idPrefix = DefaultOrderIDPrefix
	}
	return s
}

// clock truncates to milliseconds so timestamps survive the JSON round trip unchanged.
func (s *Service) clock() time.Time {
	return s.now().UTC().Truncate(time.Millisecond)
}
