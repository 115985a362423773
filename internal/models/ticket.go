package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TicketReserved = "RESERVED"
	TicketPaid     = "PAID"
)

type TicketType struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"not null" json:"name"`
	Price         int       `gorm:"not null" json:"price"`
	IsRemote      bool      `gorm:"not null" json:"isRemote"`
	IncludesHotel bool      `gorm:"not null" json:"includesHotel"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type Ticket struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	Code         uuid.UUID   `gorm:"type:uuid;unique;not null" json:"code"`
	Status       string      `gorm:"not null;default:'RESERVED'" json:"status"`
	EnrollmentID uint        `gorm:"not null;index" json:"enrollmentId"`
	Enrollment   *Enrollment `json:"-"`
	TicketTypeID uint        `gorm:"not null" json:"ticketTypeId"`
	TicketType   TicketType  `json:"TicketType"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

func (ticket *Ticket) BeforeCreate(tx *gorm.DB) (err error) {
	if ticket.Code == uuid.Nil {
		ticket.Code = uuid.New()
	}
	return
}
