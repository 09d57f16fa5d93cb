package room

import "hotel-reservation/internal/domain/money"

// Breakdown is the price of a stay. Total == Base - Discount + Tax.
type Breakdown struct {
	Base     money.Money
	Discount money.Money
	Tax      money.Money
	Total    money.Money
}

type PriceCalculator interface {
	Calculate(pricePerNight money.Money, nights Nights) Breakdown
}

// DefaultPriceCalculator gives a long-stay discount and then applies tax
// to the discounted base.
type DefaultPriceCalculator struct {
	DiscountMinNights int
	DiscountPercent   int
	TaxPercent        int
}

func NewDefaultPriceCalculator() *DefaultPriceCalculator {
	return &DefaultPriceCalculator{
		DiscountMinNights: 5,
		DiscountPercent:   5,
		TaxPercent:        10,
	}
}

func (pc *DefaultPriceCalculator) Calculate(pricePerNight money.Money, nights Nights) Breakdown {
	base := pricePerNight.Times(nights.Int())

	discount := money.Zero()
	if nights.Int() >= pc.DiscountMinNights {
		discount = base.Percent(pc.DiscountPercent)
	}

	discounted := base.Sub(discount)
	tax := discounted.Percent(pc.TaxPercent)

	return Breakdown{
		Base:     base,
		Discount: discount,
		Tax:      tax,
		Total:    discounted.Add(tax),
	}
}
