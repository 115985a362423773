package models

import "time"

type Enrollment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	TaxID     string    `gorm:"not null" json:"taxId"`
	Birthday  time.Time `gorm:"not null" json:"birthday"`
	Phone     string    `gorm:"not null" json:"phone"`
	UserID    uint      `gorm:"not null;uniqueIndex" json:"userId"`
	User      *User     `json:"-"`
	Addresses []Address `json:"Address"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Address struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Street       string    `gorm:"not null" json:"street"`
	Number       string    `gorm:"not null" json:"number"`
	Complement   string    `json:"complement"`
	Neighborhood string    `gorm:"not null" json:"neighborhood"`
	City         string    `gorm:"not null" json:"city"`
	State        string    `gorm:"not null" json:"state"`
	PostalCode   string    `gorm:"not null" json:"postalCode"`
	EnrollmentID uint      `gorm:"not null;index" json:"enrollmentId"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
