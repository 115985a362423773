package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tmarqs/eventstay/internal/models"
)

type EnrollmentRepository struct {
	db *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

func (r *EnrollmentRepository) ByUserID(ctx context.Context, userID uint) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	err := r.db.WithContext(ctx).Preload("Addresses").Where("user_id = ?", userID).First(&enrollment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &enrollment, nil
}

// Upsert saves the user's single enrollment, replacing its address records
// when the enrollment already exists.
func (r *EnrollmentRepository) Upsert(ctx context.Context, enrollment *models.Enrollment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Enrollment
		err := tx.Where("user_id = ?", enrollment.UserID).First(&existing).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return tx.Create(enrollment).Error
			}
			return err
		}

		enrollment.ID = existing.ID
		if err := tx.Where("enrollment_id = ?", existing.ID).Delete(&models.Address{}).Error; err != nil {
			return err
		}
		for i := range enrollment.Addresses {
			enrollment.Addresses[i].ID = 0
			enrollment.Addresses[i].EnrollmentID = existing.ID
		}
		return tx.Save(enrollment).Error
	})
}
