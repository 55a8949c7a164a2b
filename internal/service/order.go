package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"restaurant-orders/internal/metrics"
	"restaurant-orders/internal/models"
	"restaurant-orders/internal/repository/filestore"
)

func (s *Service) CreatePending(ctx context.Context, req models.CreateOrderRequest) (models.Order, error) {
	if err := s.v.Struct(req); err != nil {
		return models.Order{}, validationError(err)
	}
	if err := CanTransition(models.StatusNone, models.StatusPendingPayment); err != nil {
		return models.Order{}, err
	}

	now := s.clock()
	ord := models.Order{
		OrderId:              NewOrderID(s.idPrefix, now),
		CustomerName:         req.CustomerName,
		CustomerEmail:        req.CustomerEmail,
		CustomerPhone:        req.CustomerPhone,
		CustomerAddress:      req.CustomerAddress,
		DeliveryArea:         req.DeliveryArea,
		Items:                req.Items,
		Subtotal:             req.Subtotal,
		DeliveryFee:          req.DeliveryFee,
		Total:                req.Total,
		BankDetails:          req.BankDetails,
		OrderDate:            now,
		Status:               models.StatusPendingPayment,
		PaymentDeadline:      now.Add(s.window),
		PaymentProofUploaded: false,
	}

	if err := s.repo.Pending.Save(ord); err != nil {
		return models.Order{}, fmt.Errorf("save pending order: %w", err)
	}
	metrics.OrdersCreated.Inc()
	logrus.WithFields(logrus.Fields{
		"order_id": ord.OrderId,
		"deadline": ord.PaymentDeadline,
	}).Info("pending order created")

	s.notify(ctx, "payment_instructions", ord.OrderId, func(ctx context.Context) error {
		return s.notifier.PaymentInstructions(ctx, ord)
	})
	s.publish(ctx, models.EventOrderCreated, ord)

	return ord, nil
}

func (s *Service) SubmitPaymentProof(ctx context.Context, orderID string, proof models.PaymentProof) (models.Order, error) {
	unlock := s.locks.Lock(orderID)
	defer unlock()

	pending, err := s.repo.Pending.Get(orderID)
	if errors.Is(err, filestore.ErrOrderNotFound) {
		metrics.PaymentProofs.WithLabelValues("not_found").Inc()
		return models.Order{}, fmt.Errorf("%w: pending order %s", ErrNotFound, orderID)
	}
	if err != nil {
		return models.Order{}, fmt.Errorf("load pending order: %w", err)
	}

	now := s.clock()
	if pending.Expired(now) {
		metrics.PaymentProofs.WithLabelValues("expired").Inc()
		return models.Order{}, fmt.Errorf("%w: order %s was due at %s", ErrExpired, orderID, pending.PaymentDeadline.Format(time.RFC3339))
	}
	if err := CanTransition(pending.Status, models.StatusPaymentSubmitted); err != nil {
		return models.Order{}, err
	}

	updated := pending
	updated.Status = models.StatusPaymentSubmitted
	updated.PaymentProofUploaded = true
	updated.PaymentReference = proof.PaymentReference
	updated.PaymentMethod = proof.PaymentMethod
	if updated.PaymentMethod == "" {
		updated.PaymentMethod = models.DefaultPaymentMethod
	}
	updated.CustomerNote = proof.CustomerNote
	updated.PaymentSubmissionDate = &now

	if err := s.repo.Completed.Save(updated); err != nil {
		return models.Order{}, fmt.Errorf("save order: %w", err)
	}
	if err := s.repo.Pending.Delete(orderID); err != nil {
		logrus.WithError(err).WithField("order_id", orderID).Error("stored order but could not delete pending copy")
	}
	metrics.PaymentProofs.WithLabelValues("accepted").Inc()
	logrus.WithFields(logrus.Fields{
		"order_id":  orderID,
		"reference": updated.PaymentReference,
	}).Info("payment proof accepted")

	s.notify(ctx, "payment_confirmation", orderID, func(ctx context.Context) error {
		return s.notifier.PaymentConfirmation(ctx, updated)
	})
	s.notify(ctx, "restaurant_alert", orderID, func(ctx context.Context) error {
		return s.notifier.RestaurantAlert(ctx, updated)
	})
	s.publish(ctx, models.EventOrderPaymentSubmitted, updated)

	return updated, nil
}

// GetOrder prefers the completed copy when both directories hold the ID.
func (s *Service) GetOrder(_ context.Context, orderID string) (models.Order, error) {
	unlock := s.locks.Lock(orderID)
	defer unlock()

	ord, err := s.repo.Completed.Get(orderID)
	if err == nil {
		return ord, nil
	}
	if !errors.Is(err, filestore.ErrOrderNotFound) {
		return models.Order{}, fmt.Errorf("load order: %w", err)
	}

	ord, err = s.repo.Pending.Get(orderID)
	if errors.Is(err, filestore.ErrOrderNotFound) {
		return models.Order{}, fmt.Errorf("%w: order %s", ErrNotFound, orderID)
	}
	if err != nil {
		return models.Order{}, fmt.Errorf("load pending order: %w", err)
	}
	return ord, nil
}

// ListOrders returns every stored and pending order, newest first.
func (s *Service) ListOrders(_ context.Context) ([]models.Order, error) {
	completed, err := s.repo.Completed.List()
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	pending, err := s.repo.Pending.List()
	if err != nil {
		return nil, fmt.Errorf("list pending orders: %w", err)
	}

	orders := make([]models.Order, 0, len(completed)+len(pending))
	orders = append(orders, completed...)
	orders = append(orders, pending...)
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].OrderDate.After(orders[j].OrderDate)
	})
	return orders, nil
}

func (s *Service) notify(ctx context.Context, kind, orderID string, send func(context.Context) error) {
	err := send(ctx)
	metrics.Notifications.WithLabelValues(kind, metrics.Result(err)).Inc()
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"order_id": orderID,
			"kind":     kind,
		}).Warn("notification failed")
	}
}

func (s *Service) publish(ctx context.Context, typ models.EventType, ord models.Order) {
	err := s.events.Publish(ctx, models.OrderEvent{Type: typ, OccurredAt: s.clock(), Order: ord})
	metrics.Events.WithLabelValues(string(typ), metrics.Result(err)).Inc()
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"order_id": ord.OrderId,
			"event":    typ,
		}).Warn("event publish failed")
	}
}
