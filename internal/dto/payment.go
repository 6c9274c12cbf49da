package dto

import (
	"time"

	"viveiro/internal/domain"
)

type PaymentRequest struct {
	Amount        float64 `json:"amount"`
	Method        string  `json:"method"`
	ScheduledDate string  `json:"scheduledDate"`
	Received      bool    `json:"received"`
}

type PaymentDraft struct {
	Amount        float64
	Method        string
	ScheduledDate time.Time
	Received      bool
}

type PaymentDTO struct {
	ID            uint      `json:"id"`
	OrderID       uint      `json:"orderId"`
	Amount        float64   `json:"amount"`
	Method        string    `json:"method"`
	ScheduledDate time.Time `json:"scheduledDate"`
	Received      bool      `json:"received"`
}

func NewPaymentDTO(p domain.Payment) PaymentDTO {
	return PaymentDTO{
		ID:            p.ID,
		OrderID:       p.OrderID,
		Amount:        p.Amount,
		Method:        p.Method,
		ScheduledDate: p.ScheduledDate,
		Received:      p.Received,
	}
}
