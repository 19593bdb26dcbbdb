// Package pricing derives the order price breakdown. Everything here is pure;
// callers re-run the calculation at submission time rather than trusting a
// previously rendered total.
package pricing

import "storefront/internal/domain"

const (
	chargeInsideDhaka  = 70
	chargeOutsideDhaka = 130
)

type Quote struct {
	Subtotal       int64 `json:"subtotal"`
	DeliveryCharge int64 `json:"deliveryCharge"`
	Total          int64 `json:"total"`
}

// DeliveryCharge returns the flat charge for a zone. Anything other than the
// two known zones is treated as unset and carries no charge.
func DeliveryCharge(zone domain.DeliveryZone) int64 {
	switch zone {
	case domain.ZoneInside:
		return chargeInsideDhaka
	case domain.ZoneOutside:
		return chargeOutsideDhaka
	default:
		return 0
	}
}

// Price computes the breakdown for quantity units of p shipped to zone.
// A quantity below 1 defaults to 1.
func Price(p domain.Product, quantity int, zone domain.DeliveryZone) Quote {
	if quantity < 1 {
		quantity = 1
	}
	subtotal := p.OfferPrice * int64(quantity)
	charge := DeliveryCharge(zone)
	return Quote{
		Subtotal:       subtotal,
		DeliveryCharge: charge,
		Total:          subtotal + charge,
	}
}
