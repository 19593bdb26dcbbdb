package storefront

import (
	"context"
	"fmt"
	"strings"

	"storefront/internal/domain"
	"storefront/internal/pricing"
)

// Submit runs the order pipeline: validate, re-derive the price breakdown,
// build the denormalized payload, and hand it to the order placer. Only one
// submission may be in flight at a time; a second call while one is pending
// fails with ErrSubmitInFlight instead of producing a duplicate order.
//
// On success the order selection resets to the first catalog product and the
// form clears. The display index is left where the shopper put it. If the
// placer fails, state is untouched so the shopper can retry.
func (c *Controller) Submit(ctx context.Context) (domain.OrderDraft, error) {
	c.mu.Lock()
	if c.submitting {
		c.mu.Unlock()
		return domain.OrderDraft{}, ErrSubmitInFlight
	}
	if len(c.catalog) == 0 {
		c.mu.Unlock()
		return domain.OrderDraft{}, ErrNotLoaded
	}
	product, ok := c.selectedLocked()
	if !ok || !validateForm(ok, c.form).All() {
		c.mu.Unlock()
		return domain.OrderDraft{}, ErrFormIncomplete
	}
	draft := buildDraft(product, c.form)
	c.submitting = true
	c.mu.Unlock()

	err := c.orders.Place(ctx, draft)

	c.mu.Lock()
	c.submitting = false
	if err != nil {
		c.mu.Unlock()
		return domain.OrderDraft{}, fmt.Errorf("place order: %w", err)
	}
	c.orderProductID = c.catalog[0].ID
	c.form = Form{Quantity: 1}
	c.mu.Unlock()

	c.autoplay.Restart()
	c.notify()
	return draft, nil
}

// buildDraft snapshots the product's name and prices into the payload and
// recomputes the breakdown from the live quantity and zone.
func buildDraft(p domain.Product, f Form) domain.OrderDraft {
	quantity := f.Quantity
	if quantity < 1 {
		quantity = 1
	}
	quote := pricing.Price(p, quantity, f.Zone)
	return domain.OrderDraft{
		ProductID:      p.ID,
		ProductName:    p.Name,
		RegularPrice:   p.RegularPrice,
		OfferPrice:     p.OfferPrice,
		Quantity:       quantity,
		Size:           f.Size,
		Name:           strings.TrimSpace(f.Name),
		Phone:          strings.TrimSpace(f.Phone),
		Address:        strings.TrimSpace(f.Address),
		DeliveryArea:   f.Zone,
		DeliveryCharge: quote.DeliveryCharge,
		Total:          quote.Total,
	}
}
