package domain

import "fmt"

type OrderStatus string

const (
	StatusPending   OrderStatus = "Pending"
	StatusConfirmed OrderStatus = "Confirmed"
	StatusDelivered OrderStatus = "Delivered"
	StatusCancelled OrderStatus = "Cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether the lifecycle allows moving from s to next.
// Rewriting the current status is always allowed so that patches carrying an
// unchanged status stay idempotent. Delivered and Cancelled are terminal.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s == next {
		return true
	}
	switch s {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusDelivered || next == StatusCancelled
	}
	return false
}

// OrderDraft is the denormalized order payload assembled at submission time.
// Product name and prices are copied from the catalog so later catalog
// changes never alter historical orders.
type OrderDraft struct {
	ProductID      int64        `json:"productId" binding:"required"`
	ProductName    string       `json:"productName"`
	RegularPrice   int64        `json:"regularPrice"`
	OfferPrice     int64        `json:"offerPrice"`
	Quantity       int          `json:"quantity"`
	Size           string       `json:"size"`
	Name           string       `json:"name" binding:"required"`
	Phone          string       `json:"phone" binding:"required"`
	Address        string       `json:"address"`
	DeliveryArea   DeliveryZone `json:"deliveryArea"`
	DeliveryCharge int64        `json:"deliveryCharge"`
	Total          int64        `json:"total"`
}

// Summary renders the confirmation text shown to the customer after a
// successful order.
func (d OrderDraft) Summary() string {
	return fmt.Sprintf(
		"Product: %s\nSize: %s\nQuantity: %d\nDelivery: %s (%d)\nTotal: %d (Cash on Delivery)",
		d.ProductName, d.Size, d.Quantity, d.DeliveryArea.Label(), d.DeliveryCharge, d.Total,
	)
}

// Order is the persisted record: the draft flattened plus server-assigned
// identity and lifecycle status.
type Order struct {
	ID int64 `json:"id"`
	OrderDraft
	Status OrderStatus `json:"status"`
}

// OrderPatch is a partial update. Nil fields are preserved; the order id
// cannot be patched.
type OrderPatch struct {
	Status   *OrderStatus `json:"status,omitempty"`
	Name     *string      `json:"name,omitempty"`
	Phone    *string      `json:"phone,omitempty"`
	Address  *string      `json:"address,omitempty"`
	Size     *string      `json:"size,omitempty"`
	Quantity *int         `json:"quantity,omitempty"`
}

// Apply merges the patch over the order, field by field.
func (o *Order) Apply(p OrderPatch) {
	if p.Status != nil {
		o.Status = *p.Status
	}
	if p.Name != nil {
		o.Name = *p.Name
	}
	if p.Phone != nil {
		o.Phone = *p.Phone
	}
	if p.Address != nil {
		o.Address = *p.Address
	}
	if p.Size != nil {
		o.Size = *p.Size
	}
	if p.Quantity != nil {
		o.Quantity = *p.Quantity
	}
}
