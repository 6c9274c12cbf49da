package domain

import "time"

type Payment struct {
	ID            uint
	OrderID       uint
	Amount        float64
	Method        string
	ScheduledDate time.Time
	Received      bool
}
