package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tmarqs/eventstay/internal/models"
)

type txKey struct{}

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// WithTx runs fn inside a single transaction. The transaction handle rides
// on the context so every repository call inside fn joins it.
func (r *BookingRepository) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

func (r *BookingRepository) conn(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return r.db.WithContext(ctx)
}

// RoomOccupancy returns the room and its current booking count. Inside a
// transaction the room row is locked so the capacity check and the write
// that follows cannot race another request for the same room.
func (r *BookingRepository) RoomOccupancy(ctx context.Context, roomID uint) (*models.Room, int64, error) {
	db := r.conn(ctx)

	var room models.Room
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&room, roomID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, ErrNotFound
		}
		return nil, 0, err
	}

	var occupied int64
	if err := db.Model(&models.Booking{}).Where("room_id = ?", roomID).Count(&occupied).Error; err != nil {
		return nil, 0, err
	}
	return &room, occupied, nil
}

func (r *BookingRepository) ByUserID(ctx context.Context, userID uint) (*models.Booking, error) {
	var booking models.Booking
	err := r.conn(ctx).Preload("Room").Where("user_id = ?", userID).First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &booking, nil
}

func (r *BookingRepository) Create(ctx context.Context, userID, roomID uint) (*models.Booking, error) {
	booking := models.Booking{UserID: userID, RoomID: roomID}
	if err := r.conn(ctx).Create(&booking).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *BookingRepository) ChangeRoom(ctx context.Context, bookingID, roomID uint) (*models.Booking, error) {
	db := r.conn(ctx)
	if err := db.Model(&models.Booking{}).Where("id = ?", bookingID).Update("room_id", roomID).Error; err != nil {
		return nil, err
	}

	var booking models.Booking
	if err := db.First(&booking, bookingID).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}
