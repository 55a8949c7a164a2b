package service

import (
	"fmt"

	"restaurant-orders/internal/models"
)

type Transition struct {
	From models.OrderStatus
	To   models.OrderStatus
}

// validTransitions is the whole lifecycle. payment_submitted is terminal.
var validTransitions = []Transition{
	{From: models.StatusNone, To: models.StatusPendingPayment},
	{From: models.StatusPendingPayment, To: models.StatusPaymentSubmitted},
}

var transitionSet = func() map[Transition]bool {
	m := make(map[Transition]bool, len(validTransitions))
	for _, t := range validTransitions {
		m[t] = true
	}
	return m
}()

func CanTransition(from, to models.OrderStatus) error {
	if transitionSet[Transition{From: from, To: to}] {
		return nil
	}
	return fmt.Errorf("%w: %q -> %q", ErrInvalidTransition, from, to)
}
