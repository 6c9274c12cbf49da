package dto

import (
	"time"

	"viveiro/internal/domain"
)

type UserDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type CustomerDTO struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Nickname *string `json:"nickname"`
}

type PropertyDTO struct {
	ID           uint    `json:"id"`
	ProducerName string  `json:"producerName"`
	Name         string  `json:"name"`
	Cnpj         *string `json:"cnpj"`
	Cpf          *string `json:"cpf"`
	Ie           *string `json:"ie"`
	Address      string  `json:"address"`
	Zip          string  `json:"zip"`
	City         string  `json:"city"`
	State        string  `json:"state"`
	Country      string  `json:"country"`
}

type CustomerPropertyDTO struct {
	Customer CustomerDTO `json:"customer"`
	Property PropertyDTO `json:"property"`
}

// OrderView is the full read projection of one order: the order row, its
// creator, the resolved customer/property pair, the five line-item
// collections and the payment schedule.
type OrderView struct {
	ID                      uint                   `json:"id"`
	Type                    string                 `json:"type"`
	OrderDate               time.Time              `json:"orderDate"`
	DeliveryDate            time.Time              `json:"deliveryDate"`
	NfNumber                *string                `json:"nfNumber"`
	Status                  string                 `json:"status"`
	User                    UserDTO                `json:"user"`
	CustomerProperty        CustomerPropertyDTO    `json:"customerProperty"`
	Payments                []PaymentDTO           `json:"payments"`
	FruitOrderItems         []FruitItemDTO         `json:"fruitOrderItems"`
	SeedOrderItems          []SeedItemDTO          `json:"seedOrderItems"`
	RootstockOrderItems     []RootstockItemDTO     `json:"rootstockOrderItems"`
	BorbulhaOrderItems      []BorbulhaItemDTO      `json:"borbulhaOrderItems"`
	SeedlingBenchOrderItems []SeedlingBenchItemDTO `json:"seedlingBenchOrderItems"`
}

func NewUserDTO(u domain.UserSummary) UserDTO {
	return UserDTO{ID: u.ID, Name: u.Name}
}

func NewCustomerDTO(c domain.CustomerSummary) CustomerDTO {
	return CustomerDTO{ID: c.ID, Name: c.Name, Nickname: c.Nickname}
}

func NewPropertyDTO(p domain.PropertySummary) PropertyDTO {
	return PropertyDTO{
		ID:           p.ID,
		ProducerName: p.ProducerName,
		Name:         p.Name,
		Cnpj:         p.Cnpj,
		Cpf:          p.Cpf,
		Ie:           p.Ie,
		Address:      p.Address,
		Zip:          p.Zip,
		City:         p.City,
		State:        p.State,
		Country:      p.Country,
	}
}
