package domain

import "time"

type Order struct {
	ID                 uint
	Type               string
	OrderDate          time.Time
	DeliveryDate       time.Time
	NfNumber           *string
	Status             string
	UserID             uint
	CustomerID         uint
	CustomerPropertyID uint
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

const (
	OrderStatusActive   = "active"
	OrderStatusCanceled = "canceled"
)

const (
	OrderTypeFruit         = "fruit"
	OrderTypeSeed          = "seed"
	OrderTypeRootstock     = "rootstock"
	OrderTypeBorbulha      = "borbulha"
	OrderTypeSeedlingBench = "seedlingBench"
)

var orderTypes = map[string]struct{}{
	OrderTypeFruit:         {},
	OrderTypeSeed:          {},
	OrderTypeRootstock:     {},
	OrderTypeBorbulha:      {},
	OrderTypeSeedlingBench: {},
}

func IsValidOrderType(t string) bool {
	_, ok := orderTypes[t]
	return ok
}

func (o Order) IsCanceled() bool {
	return o.Status == OrderStatusCanceled
}
