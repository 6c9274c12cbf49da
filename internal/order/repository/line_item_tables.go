package repository

import (
	"database/sql"

	"viveiro/internal/domain"
)

// The five table descriptors. Rootstock and seedling-bench selects join their
// reference tables so reads carry display names.

var fruitItemTable = ItemTable[domain.FruitOrderItem]{
	Name:       "FruitOrderItems",
	Kind:       "fruit",
	InsertCols: []string{"name", "quantity", "boxPrice"},
	InsertArgs: func(i domain.FruitOrderItem) []interface{} {
		return []interface{}{i.Name, i.Quantity, i.BoxPrice}
	},
	SelectBase: `SELECT i.id, i.orderId, i.name, i.quantity, i.boxPrice FROM FruitOrderItems i`,
	Scan: func(rows *sql.Rows) (domain.FruitOrderItem, error) {
		var i domain.FruitOrderItem
		err := rows.Scan(&i.ID, &i.OrderID, &i.Name, &i.Quantity, &i.BoxPrice)
		return i, err
	},
	SetCols: []string{"name", "quantity", "boxPrice"},
	UpdateArgs: func(i domain.FruitOrderItem) []interface{} {
		return []interface{}{i.Name, i.Quantity, i.BoxPrice}
	},
}

var seedItemTable = ItemTable[domain.SeedOrderItem]{
	Name:       "SeedOrderItems",
	Kind:       "seed",
	InsertCols: []string{"name", "quantity", "kgPrice"},
	InsertArgs: func(i domain.SeedOrderItem) []interface{} {
		return []interface{}{i.Name, i.Quantity, i.KgPrice}
	},
	SelectBase: `SELECT i.id, i.orderId, i.name, i.quantity, i.kgPrice FROM SeedOrderItems i`,
	Scan: func(rows *sql.Rows) (domain.SeedOrderItem, error) {
		var i domain.SeedOrderItem
		err := rows.Scan(&i.ID, &i.OrderID, &i.Name, &i.Quantity, &i.KgPrice)
		return i, err
	},
	SetCols: []string{"name", "quantity", "kgPrice"},
	UpdateArgs: func(i domain.SeedOrderItem) []interface{} {
		return []interface{}{i.Name, i.Quantity, i.KgPrice}
	},
}

var rootstockItemTable = ItemTable[domain.RootstockOrderItem]{
	Name:       "RootstockOrderItems",
	Kind:       "rootstock",
	InsertCols: []string{"rootstockId", "quantity", "unityPrice"},
	InsertArgs: func(i domain.RootstockOrderItem) []interface{} {
		return []interface{}{i.RootstockID, i.Quantity, i.UnityPrice}
	},
	SelectBase: `SELECT i.id, i.orderId, i.rootstockId, r.name, i.quantity, i.unityPrice
		FROM RootstockOrderItems i
		JOIN Rootstocks r ON r.id = i.rootstockId`,
	Scan: func(rows *sql.Rows) (domain.RootstockOrderItem, error) {
		var i domain.RootstockOrderItem
		err := rows.Scan(&i.ID, &i.OrderID, &i.RootstockID, &i.RootstockName, &i.Quantity, &i.UnityPrice)
		return i, err
	},
	SetCols: []string{"rootstockId", "quantity", "unityPrice"},
	UpdateArgs: func(i domain.RootstockOrderItem) []interface{} {
		return []interface{}{i.RootstockID, i.Quantity, i.UnityPrice}
	},
}

var borbulhaItemTable = ItemTable[domain.BorbulhaOrderItem]{
	Name:       "BorbulhaOrderItems",
	Kind:       "borbulha",
	InsertCols: []string{"name", "quantity", "unityPrice"},
	InsertArgs: func(i domain.BorbulhaOrderItem) []interface{} {
		return []interface{}{i.Name, i.Quantity, i.UnityPrice}
	},
	SelectBase: `SELECT i.id, i.orderId, i.name, i.quantity, i.unityPrice FROM BorbulhaOrderItems i`,
	Scan: func(rows *sql.Rows) (domain.BorbulhaOrderItem, error) {
		var i domain.BorbulhaOrderItem
		err := rows.Scan(&i.ID, &i.OrderID, &i.Name, &i.Quantity, &i.UnityPrice)
		return i, err
	},
	SetCols: []string{"name", "quantity", "unityPrice"},
	UpdateArgs: func(i domain.BorbulhaOrderItem) []interface{} {
		return []interface{}{i.Name, i.Quantity, i.UnityPrice}
	},
}

var seedlingBenchItemTable = ItemTable[domain.SeedlingBenchOrderItem]{
	Name:       "SeedlingBenchOrderItems",
	Kind:       "seedlingBench",
	InsertCols: []string{"seedlingBenchId", "quantity", "unityPrice"},
	InsertArgs: func(i domain.SeedlingBenchOrderItem) []interface{} {
		return []interface{}{i.SeedlingBenchID, i.Quantity, i.UnityPrice}
	},
	SelectBase: `SELECT i.id, i.orderId, i.seedlingBenchId, b.label, r.name, g.label,
			i.quantity, i.unityPrice
		FROM SeedlingBenchOrderItems i
		JOIN SeedlingBenches b ON b.id = i.seedlingBenchId
		JOIN Rootstocks r ON r.id = b.rootstockId
		JOIN Greenhouses g ON g.id = b.greenhouseId`,
	Scan: func(rows *sql.Rows) (domain.SeedlingBenchOrderItem, error) {
		var i domain.SeedlingBenchOrderItem
		err := rows.Scan(&i.ID, &i.OrderID, &i.SeedlingBenchID, &i.BenchLabel,
			&i.RootstockName, &i.GreenhouseLabel, &i.Quantity, &i.UnityPrice)
		return i, err
	},
	SetCols: []string{"seedlingBenchId", "quantity", "unityPrice"},
	UpdateArgs: func(i domain.SeedlingBenchOrderItem) []interface{} {
		return []interface{}{i.SeedlingBenchID, i.Quantity, i.UnityPrice}
	},
}

func NewMySQLFruitItemRepository(db *sql.DB) *MySQLLineItemRepository[domain.FruitOrderItem] {
	return NewMySQLLineItemRepository(db, fruitItemTable)
}

func NewMySQLSeedItemRepository(db *sql.DB) *MySQLLineItemRepository[domain.SeedOrderItem] {
	return NewMySQLLineItemRepository(db, seedItemTable)
}

func NewMySQLRootstockItemRepository(db *sql.DB) *MySQLLineItemRepository[domain.RootstockOrderItem] {
	return NewMySQLLineItemRepository(db, rootstockItemTable)
}

func NewMySQLBorbulhaItemRepository(db *sql.DB) *MySQLLineItemRepository[domain.BorbulhaOrderItem] {
	return NewMySQLLineItemRepository(db, borbulhaItemTable)
}

func NewMySQLSeedlingBenchItemRepository(db *sql.DB) *MySQLLineItemRepository[domain.SeedlingBenchOrderItem] {
	return NewMySQLLineItemRepository(db, seedlingBenchItemTable)
}
