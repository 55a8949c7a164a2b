package http_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/require"

	"restaurant-orders/internal/models"
)

func fakeOrder(f *gofakeit.Faker, placed time.Time) models.Order {
	qty := f.IntRange(1, 4)
	price := float64(f.IntRange(5, 60) * 100)
	fee := float64(f.IntRange(5, 20) * 100)
	return models.Order{
		OrderId:         "MK-" + f.LetterN(8) + "-" + f.DigitN(5),
		CustomerName:    f.Name(),
		CustomerEmail:   f.Email(),
		CustomerPhone:   f.Phone(),
		CustomerAddress: f.Street(),
		DeliveryArea:    &models.DeliveryArea{Name: f.City(), Zone: f.RandomString([]string{"A", "B", "C"})},
		Items: []models.Item{
			{
				Name:     f.RandomString([]string{"Jollof Rice", "Egusi Soup", "Palm Wine", "Pounded Yam"}),
				Quantity: qty,
				Price:    price,
			},
		},
		Subtotal:        price * float64(qty),
		DeliveryFee:     fee,
		Total:           price*float64(qty) + fee,
		BankDetails:     models.BankDetails{AccountName: f.Company(), AccountNumber: f.DigitN(10), BankName: f.Company()},
		OrderDate:       placed,
		Status:          models.StatusPendingPayment,
		PaymentDeadline: placed.Add(30 * time.Minute),
	}
}

func Test_ListOrders_Many(t *testing.T) {
	f := gofakeit.New(42)
	start := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	var orders []models.Order
	for i := 0; i < 20; i++ {
		orders = append(orders, fakeOrder(f, start.Add(-time.Duration(i)*time.Minute)))
	}

	s := &svcStub{
		listOrders: func() ([]models.Order, error) { return orders, nil },
	}

	w := serve(t, s, http.MethodGet, "/api/admin/orders", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool           `json:"success"`
		Orders  []models.Order `json:"orders"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.Len(t, resp.Orders, len(orders))
	require.Equal(t, orders[0].OrderId, resp.Orders[0].OrderId)
	require.Equal(t, orders[19].CustomerEmail, resp.Orders[19].CustomerEmail)
}
