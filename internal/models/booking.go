package models

import "time"

// Booking is a user's claim on one hotel room. The unique index on UserID
// keeps the one-booking-per-user rule in the schema, not just the workflow.
type Booking struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex" json:"userId"`
	User      *User     `json:"-"`
	RoomID    uint      `gorm:"not null;index" json:"roomId"`
	Room      Room      `json:"Room"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
