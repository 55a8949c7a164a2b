package models

type Option struct {
	Name  string  `json:"name"`
	Price float64 `json:"price,omitempty"`
}

type MeatPortion struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price,omitempty"`
}

type Item struct {
	Name            string        `json:"name"`
	Quantity        int           `json:"quantity"`
	Price           float64       `json:"price"`
	FinalPrice      float64       `json:"finalPrice,omitempty"`
	ItemQuantity    int           `json:"itemQuantity,omitempty"`
	Soup            *Option       `json:"soup,omitempty"`
	Meat            []MeatPortion `json:"meat,omitempty"`
	Spoons          int           `json:"spoons,omitempty"`
	PalmWineSize    *Option       `json:"palmWineSize,omitempty"`
	HasAutoTakeaway bool          `json:"hasAutoTakeaway,omitempty"`
}

// UnitPrice prefers the variant-adjusted price when the storefront sent one.
func (i Item) UnitPrice() float64 {
	if i.FinalPrice != 0 {
		return i.FinalPrice
	}
	return i.Price
}
