package notify

import (
	"context"

	"restaurant-orders/internal/models"
)

// Notifier renders lifecycle emails and hands them to a Mailer.
type Notifier struct {
	mailer          Mailer
	tpl             *Templates
	restaurantEmail string
}

func NewNotifier(m Mailer, tpl *Templates, restaurantEmail string) *Notifier {
	return &Notifier{mailer: m, tpl: tpl, restaurantEmail: restaurantEmail}
}

func (n *Notifier) deliver(ctx context.Context, to string, msg Message, err error) error {
	if err != nil {
		return err
	}
	return n.mailer.Send(ctx, to, msg.Subject, msg.HTML)
}

func (n *Notifier) PaymentInstructions(ctx context.Context, o models.Order) error {
	msg, err := n.tpl.PaymentInstructions(o)
	return n.deliver(ctx, o.CustomerEmail, msg, err)
}

func (n *Notifier) PaymentConfirmation(ctx context.Context, o models.Order) error {
	msg, err := n.tpl.PaymentConfirmation(o)
	return n.deliver(ctx, o.CustomerEmail, msg, err)
}

func (n *Notifier) RestaurantAlert(ctx context.Context, o models.Order) error {
	msg, err := n.tpl.RestaurantAlert(o)
	return n.deliver(ctx, n.restaurantEmail, msg, err)
}

func (n *Notifier) ContactForm(ctx context.Context, m models.ContactMessage) error {
	msg, err := n.tpl.ContactForm(m)
	return n.deliver(ctx, n.restaurantEmail, msg, err)
}
