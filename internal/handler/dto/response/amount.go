package response

import "hotel-reservation/internal/domain/money"

// Amount renders a monetary value both as cents and as display text.
type Amount struct {
	Cents     int64  `json:"cents"`
	Formatted string `json:"formatted"`
	Currency  string `json:"currency"`
}

func NewAmount(cents int64, currency string) Amount {
	return Amount{
		Cents:     cents,
		Formatted: money.FromCents(cents).String(),
		Currency:  currency,
	}
}

type PriceBreakdownResponse struct {
	Base     Amount `json:"base"`
	Discount Amount `json:"discount"`
	Tax      Amount `json:"tax"`
	Total    Amount `json:"total"`
}
