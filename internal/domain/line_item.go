package domain

// FruitOrderItem through SeedlingBenchOrderItem are the five line-item shapes
// an order can carry, one collection per order type. Display names on the
// rootstock and seedling-bench items are filled from joined reference tables
// on reads and are never written.

type FruitOrderItem struct {
	ID       uint
	OrderID  uint
	Name     string
	Quantity int
	BoxPrice float64
}

type SeedOrderItem struct {
	ID       uint
	OrderID  uint
	Name     string
	Quantity int
	KgPrice  float64
}

type RootstockOrderItem struct {
	ID            uint
	OrderID       uint
	RootstockID   uint
	RootstockName string
	Quantity      int
	UnityPrice    float64
}

type BorbulhaOrderItem struct {
	ID         uint
	OrderID    uint
	Name       string
	Quantity   int
	UnityPrice float64
}

type SeedlingBenchOrderItem struct {
	ID              uint
	OrderID         uint
	SeedlingBenchID uint
	BenchLabel      string
	RootstockName   string
	GreenhouseLabel string
	Quantity        int
	UnityPrice      float64
}
