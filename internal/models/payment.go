package models

import "time"

type Payment struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	TicketID       uint      `gorm:"not null;index" json:"ticketId"`
	Ticket         *Ticket   `json:"-"`
	Value          int       `gorm:"not null" json:"value"`
	CardIssuer     string    `gorm:"not null" json:"cardIssuer"`
	CardLastDigits string    `gorm:"not null" json:"cardLastDigits"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
