package domain

// CustomerProperty links a customer to a property they operate. An order's
// customerPropertyId carries the property id; the owning customer is always
// derived through this link, never supplied by the caller.
type CustomerProperty struct {
	ID         uint
	CustomerID uint
	PropertyID uint
}

type CustomerSummary struct {
	ID       uint
	Name     string
	Nickname *string
}

type PropertySummary struct {
	ID           uint
	ProducerName string
	Name         string
	Cnpj         *string
	Cpf          *string
	Ie           *string
	Address      string
	Zip          string
	City         string
	State        string
	Country      string
}

type UserSummary struct {
	ID   uint
	Name string
}
