package services

import "storefront/internal/domain"

func CreateMockDraft(productID int64, quantity int, total int64) domain.OrderDraft {
	return domain.OrderDraft{
		ProductID:      productID,
		ProductName:    TestProductName,
		RegularPrice:   900,
		OfferPrice:     850,
		Quantity:       quantity,
		Size:           "L",
		Name:           "Rahim",
		Phone:          "01711111111",
		Address:        "Mirpur, Dhaka",
		DeliveryArea:   domain.ZoneInside,
		DeliveryCharge: 70,
		Total:          total,
	}
}

func CreateMockOrder(id, productID int64, total int64, status domain.OrderStatus) domain.Order {
	return domain.Order{
		ID:         id,
		OrderDraft: CreateMockDraft(productID, 1, total),
		Status:     status,
	}
}

const (
	TestOrderID     = int64(1765346289001)
	TestProductID   = int64(161)
	TestProductName = "Argentina Fan Version World Cup 2026 Jersey (Half Sleeve)"
)
