package dto

import (
	"time"

	"viveiro/internal/domain"
)

type CreateOrderRequest struct {
	Type               string  `json:"type"`
	OrderDate          string  `json:"orderDate"`
	DeliveryDate       string  `json:"deliveryDate"`
	NfNumber           *string `json:"nfNumber"`
	CustomerPropertyID uint    `json:"customerPropertyId"`
}

// EditOrderRequest deliberately has no type field: the order type is fixed at
// creation.
type EditOrderRequest struct {
	OrderDate          string  `json:"orderDate"`
	DeliveryDate       string  `json:"deliveryDate"`
	NfNumber           *string `json:"nfNumber"`
	CustomerPropertyID uint    `json:"customerPropertyId"`
}

// OrderDraft is the validated, typed input for creating an order. CustomerID
// is absent on purpose: it is derived from CustomerPropertyID during the
// write.
type OrderDraft struct {
	Type               string
	OrderDate          time.Time
	DeliveryDate       time.Time
	NfNumber           *string
	CustomerPropertyID uint
	UserID             uint
}

type OrderChanges struct {
	OrderDate          time.Time
	DeliveryDate       time.Time
	NfNumber           *string
	CustomerPropertyID uint
}

type OrderDTO struct {
	ID                 uint      `json:"id"`
	Type               string    `json:"type"`
	OrderDate          time.Time `json:"orderDate"`
	DeliveryDate       time.Time `json:"deliveryDate"`
	NfNumber           *string   `json:"nfNumber"`
	Status             string    `json:"status"`
	UserID             uint      `json:"userId"`
	CustomerID         uint      `json:"customerId"`
	CustomerPropertyID uint      `json:"customerPropertyId"`
}

func NewOrderDTO(o domain.Order) OrderDTO {
	return OrderDTO{
		ID:                 o.ID,
		Type:               o.Type,
		OrderDate:          o.OrderDate,
		DeliveryDate:       o.DeliveryDate,
		NfNumber:           o.NfNumber,
		Status:             o.Status,
		UserID:             o.UserID,
		CustomerID:         o.CustomerID,
		CustomerPropertyID: o.CustomerPropertyID,
	}
}
