package notify

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"restaurant-orders/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// Restaurant is the sender identity printed in every email.
type Restaurant struct {
	Name     string
	Email    string
	WhatsApp string
	Location *time.Location
}

type Message struct {
	Subject string
	HTML    string
}

type Templates struct {
	set        *template.Template
	restaurant Restaurant
}

func NewTemplates(r Restaurant) (*Templates, error) {
	if r.Location == nil {
		r.Location = time.UTC
	}
	set, err := template.New("mail").Funcs(template.FuncMap{
		"naira":       Naira,
		"lineTotal":   LineTotal,
		"itemDetails": ItemDetails,
		"localTime": func(t time.Time) string {
			return t.In(r.Location).Format("Jan 2, 2006 3:04 PM")
		},
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("template parse error: %w", err)
	}
	return &Templates{set: set, restaurant: r}, nil
}

type orderView struct {
	Order      models.Order
	Restaurant Restaurant
}

type contactView struct {
	Contact    models.ContactMessage
	Restaurant Restaurant
}

func (t *Templates) render(name string, data any) (string, error) {
	var body bytes.Buffer
	if err := t.set.ExecuteTemplate(&body, name, data); err != nil {
		return "", fmt.Errorf("template execution error: %w", err)
	}
	return body.String(), nil
}

func (t *Templates) PaymentInstructions(o models.Order) (Message, error) {
	html, err := t.render("payment_instructions.html", orderView{Order: o, Restaurant: t.restaurant})
	if err != nil {
		return Message{}, err
	}
	return Message{
		Subject: fmt.Sprintf("Payment Required - Order #%s - %s", o.OrderId, t.restaurant.Name),
		HTML:    html,
	}, nil
}

func (t *Templates) PaymentConfirmation(o models.Order) (Message, error) {
	html, err := t.render("payment_confirmation.html", orderView{Order: o, Restaurant: t.restaurant})
	if err != nil {
		return Message{}, err
	}
	return Message{
		Subject: fmt.Sprintf("Payment Received - Order #%s Being Processed", o.OrderId),
		HTML:    html,
	}, nil
}

func (t *Templates) RestaurantAlert(o models.Order) (Message, error) {
	html, err := t.render("restaurant_alert.html", orderView{Order: o, Restaurant: t.restaurant})
	if err != nil {
		return Message{}, err
	}
	return Message{
		Subject: fmt.Sprintf("🍽️ Payment Received - Order #%s - %s", o.OrderId, o.CustomerName),
		HTML:    html,
	}, nil
}

func (t *Templates) ContactForm(m models.ContactMessage) (Message, error) {
	html, err := t.render("contact.html", contactView{Contact: m, Restaurant: t.restaurant})
	if err != nil {
		return Message{}, err
	}
	return Message{
		Subject: fmt.Sprintf("Contact Form Submission from %s", m.Name),
		HTML:    html,
	}, nil
}

// Naira renders an amount as ₦1,234.5 with at most two decimals.
func Naira(v float64) string {
	d := decimal.NewFromFloat(v).Round(2)
	return "₦" + humanize.CommafWithDigits(d.InexactFloat64(), 2)
}

func LineTotal(it models.Item) float64 {
	return decimal.NewFromFloat(it.UnitPrice()).
		Mul(decimal.NewFromInt(int64(it.Quantity))).
		InexactFloat64()
}

// ItemDetails describes an item with its variants for the kitchen.
func ItemDetails(it models.Item) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s x %d", it.Name, it.Quantity)
	if it.ItemQuantity > 0 {
		fmt.Fprintf(&b, " (%d pieces)", it.ItemQuantity)
	}
	if it.Soup != nil {
		fmt.Fprintf(&b, " + %s", it.Soup.Name)
	}
	if len(it.Meat) > 0 {
		parts := make([]string, 0, len(it.Meat))
		for _, m := range it.Meat {
			parts = append(parts, fmt.Sprintf("%s (%dx)", m.Name, m.Quantity))
		}
		fmt.Fprintf(&b, " + %s", strings.Join(parts, ", "))
	}
	if it.Spoons > 0 {
		fmt.Fprintf(&b, " (%d spoons)", it.Spoons)
	}
	if it.PalmWineSize != nil {
		fmt.Fprintf(&b, " (%s)", it.PalmWineSize.Name)
	}
	if it.HasAutoTakeaway {
		b.WriteString(" + Takeaway")
	}
	return b.String()
}
