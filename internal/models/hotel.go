package models

import "time"

type Hotel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Image     string    `gorm:"not null" json:"image"`
	Rooms     []Room    `json:"Rooms,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Room struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Capacity  int       `gorm:"not null" json:"capacity"`
	HotelID   uint      `gorm:"not null;index" json:"hotelId"`
	Bookings  []Booking `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
