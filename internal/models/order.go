package models

import (
	"time"
)

type OrderStatus string

const (
	StatusNone             OrderStatus = ""
	StatusPendingPayment   OrderStatus = "pending_payment"
	StatusPaymentSubmitted OrderStatus = "payment_submitted"
)

const DefaultPaymentMethod = "Bank Transfer"

type DeliveryArea struct {
	Name string `json:"name"`
	Zone string `json:"zone"`
}

type BankDetails struct {
	AccountName   string `json:"accountName"`
	AccountNumber string `json:"accountNumber"`
	BankName      string `json:"bankName"`
}

type Order struct {
	OrderId         string        `json:"orderId"`
	CustomerName    string        `json:"customerName"`
	CustomerEmail   string        `json:"customerEmail"`
	CustomerPhone   string        `json:"customerPhone"`
	CustomerAddress string        `json:"customerAddress,omitempty"`
	DeliveryArea    *DeliveryArea `json:"deliveryArea,omitempty"`
	Items           []Item        `json:"items"`
	Subtotal        float64       `json:"subtotal"`
	DeliveryFee     float64       `json:"deliveryFee"`
	Total           float64       `json:"total"`
	BankDetails     BankDetails   `json:"bankDetails"`

	OrderDate            time.Time   `json:"orderDate"`
	Status               OrderStatus `json:"status"`
	PaymentDeadline      time.Time   `json:"paymentDeadline"`
	PaymentProofUploaded bool        `json:"paymentProofUploaded"`

	PaymentReference      string     `json:"paymentReference,omitempty"`
	PaymentMethod         string     `json:"paymentMethod,omitempty"`
	CustomerNote          string     `json:"customerNote,omitempty"`
	PaymentSubmissionDate *time.Time `json:"paymentSubmissionDate,omitempty"`
}

// Expired reports whether the payment window closed before now.
func (o Order) Expired(now time.Time) bool {
	return now.After(o.PaymentDeadline)
}

// CreateOrderRequest is the cart submitted by the storefront. Totals are taken as sent.
type CreateOrderRequest struct {
	CustomerName    string        `json:"customerName"    validate:"required"`
	CustomerEmail   string        `json:"customerEmail"   validate:"required"`
	CustomerPhone   string        `json:"customerPhone"   validate:"required"`
	CustomerAddress string        `json:"customerAddress"`
	DeliveryArea    *DeliveryArea `json:"deliveryArea"`
	Items           []Item        `json:"items"           validate:"required,min=1"`
	Subtotal        float64       `json:"subtotal"`
	DeliveryFee     float64       `json:"deliveryFee"`
	Total           float64       `json:"total"`
	BankDetails     BankDetails   `json:"bankDetails"`
}

type PaymentProof struct {
	PaymentReference string `json:"paymentReference"`
	PaymentMethod    string `json:"paymentMethod"`
	CustomerNote     string `json:"customerNote"`
}
