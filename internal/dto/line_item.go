package dto

import "viveiro/internal/domain"

// One request shape and one response DTO per line-item type. The request
// shapes carry no ids; ownership comes from the URL.

type FruitItemRequest struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	BoxPrice float64 `json:"boxPrice"`
}

type SeedItemRequest struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	KgPrice  float64 `json:"kgPrice"`
}

type RootstockItemRequest struct {
	RootstockID uint    `json:"rootstockId"`
	Quantity    int     `json:"quantity"`
	UnityPrice  float64 `json:"unityPrice"`
}

type BorbulhaItemRequest struct {
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	UnityPrice float64 `json:"unityPrice"`
}

type SeedlingBenchItemRequest struct {
	SeedlingBenchID uint    `json:"seedlingBenchId"`
	Quantity        int     `json:"quantity"`
	UnityPrice      float64 `json:"unityPrice"`
}

func (r FruitItemRequest) ToDomain() domain.FruitOrderItem {
	return domain.FruitOrderItem{Name: r.Name, Quantity: r.Quantity, BoxPrice: r.BoxPrice}
}

func (r SeedItemRequest) ToDomain() domain.SeedOrderItem {
	return domain.SeedOrderItem{Name: r.Name, Quantity: r.Quantity, KgPrice: r.KgPrice}
}

func (r RootstockItemRequest) ToDomain() domain.RootstockOrderItem {
	return domain.RootstockOrderItem{RootstockID: r.RootstockID, Quantity: r.Quantity, UnityPrice: r.UnityPrice}
}

func (r BorbulhaItemRequest) ToDomain() domain.BorbulhaOrderItem {
	return domain.BorbulhaOrderItem{Name: r.Name, Quantity: r.Quantity, UnityPrice: r.UnityPrice}
}

func (r SeedlingBenchItemRequest) ToDomain() domain.SeedlingBenchOrderItem {
	return domain.SeedlingBenchOrderItem{SeedlingBenchID: r.SeedlingBenchID, Quantity: r.Quantity, UnityPrice: r.UnityPrice}
}

type FruitItemDTO struct {
	ID       uint    `json:"id"`
	OrderID  uint    `json:"orderId"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	BoxPrice float64 `json:"boxPrice"`
}

type SeedItemDTO struct {
	ID       uint    `json:"id"`
	OrderID  uint    `json:"orderId"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	KgPrice  float64 `json:"kgPrice"`
}

type RootstockItemDTO struct {
	ID            uint    `json:"id"`
	OrderID       uint    `json:"orderId"`
	RootstockID   uint    `json:"rootstockId"`
	RootstockName string  `json:"rootstockName"`
	Quantity      int     `json:"quantity"`
	UnityPrice    float64 `json:"unityPrice"`
}

type BorbulhaItemDTO struct {
	ID         uint    `json:"id"`
	OrderID    uint    `json:"orderId"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	UnityPrice float64 `json:"unityPrice"`
}

type SeedlingBenchItemDTO struct {
	ID              uint    `json:"id"`
	OrderID         uint    `json:"orderId"`
	SeedlingBenchID uint    `json:"seedlingBenchId"`
	BenchLabel      string  `json:"benchLabel"`
	RootstockName   string  `json:"rootstockName"`
	GreenhouseLabel string  `json:"greenhouseLabel"`
	Quantity        int     `json:"quantity"`
	UnityPrice      float64 `json:"unityPrice"`
}

func NewFruitItemDTO(i domain.FruitOrderItem) FruitItemDTO {
	return FruitItemDTO{ID: i.ID, OrderID: i.OrderID, Name: i.Name, Quantity: i.Quantity, BoxPrice: i.BoxPrice}
}

func NewSeedItemDTO(i domain.SeedOrderItem) SeedItemDTO {
	return SeedItemDTO{ID: i.ID, OrderID: i.OrderID, Name: i.Name, Quantity: i.Quantity, KgPrice: i.KgPrice}
}

func NewRootstockItemDTO(i domain.RootstockOrderItem) RootstockItemDTO {
	return RootstockItemDTO{
		ID:            i.ID,
		OrderID:       i.OrderID,
		RootstockID:   i.RootstockID,
		RootstockName: i.RootstockName,
		Quantity:      i.Quantity,
		UnityPrice:    i.UnityPrice,
	}
}

func NewBorbulhaItemDTO(i domain.BorbulhaOrderItem) BorbulhaItemDTO {
	return BorbulhaItemDTO{ID: i.ID, OrderID: i.OrderID, Name: i.Name, Quantity: i.Quantity, UnityPrice: i.UnityPrice}
}

func NewSeedlingBenchItemDTO(i domain.SeedlingBenchOrderItem) SeedlingBenchItemDTO {
	return SeedlingBenchItemDTO{
		ID:              i.ID,
		OrderID:         i.OrderID,
		SeedlingBenchID: i.SeedlingBenchID,
		BenchLabel:      i.BenchLabel,
		RootstockName:   i.RootstockName,
		GreenhouseLabel: i.GreenhouseLabel,
		Quantity:        i.Quantity,
		UnityPrice:      i.UnityPrice,
	}
}
