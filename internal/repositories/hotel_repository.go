package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tmarqs/eventstay/internal/models"
)

type HotelRepository struct {
	db *gorm.DB
}

func NewHotelRepository(db *gorm.DB) *HotelRepository {
	return &HotelRepository{db: db}
}

func (r *HotelRepository) List(ctx context.Context) ([]models.Hotel, error) {
	var hotels []models.Hotel
	if err := r.db.WithContext(ctx).Order("id").Find(&hotels).Error; err != nil {
		return nil, err
	}
	return hotels, nil
}

func (r *HotelRepository) ByID(ctx context.Context, id uint) (*models.Hotel, error) {
	var hotel models.Hotel
	err := r.db.WithContext(ctx).Preload("Rooms").First(&hotel, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &hotel, nil
}
