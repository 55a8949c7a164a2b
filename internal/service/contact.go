package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"restaurant-orders/internal/metrics"
	"restaurant-orders/internal/models"
)

// SendContactMessage forwards a contact-form message to the restaurant inbox.
// Unlike lifecycle emails, a failed send is the caller's error.
func (s *Service) SendContactMessage(ctx context.Context, msg models.ContactMessage) error {
	if err := s.v.Struct(msg); err != nil {
		return validationError(err)
	}

	err := s.notifier.ContactForm(ctx, msg)
	metrics.Notifications.WithLabelValues("contact", metrics.Result(err)).Inc()
	if err != nil {
		return fmt.Errorf("send contact message: %w", err)
	}
	logrus.WithField("from", msg.Email).Info("contact message forwarded")
	return nil
}
