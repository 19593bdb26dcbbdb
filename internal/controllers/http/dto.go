package http

import "storefront/internal/domain"

// UpdateOrderRequest is the PUT body: any subset of patchable fields.
type UpdateOrderRequest struct {
	Status   *domain.OrderStatus `json:"status"`
	Name     *string             `json:"name"`
	Phone    *string             `json:"phone"`
	Address  *string             `json:"address"`
	Size     *string             `json:"size"`
	Quantity *int                `json:"quantity"`
}

func (r UpdateOrderRequest) toPatch() domain.OrderPatch {
	return domain.OrderPatch{
		Status:   r.Status,
		Name:     r.Name,
		Phone:    r.Phone,
		Address:  r.Address,
		Size:     r.Size,
		Quantity: r.Quantity,
	}
}
