package services

import (
	"context"
	"time"

	"github.com/tmarqs/eventstay/internal/models"
)

type EnrollmentUseCase interface {
	GetEnrollment(ctx context.Context, userID uint) (*models.Enrollment, error)
	SaveEnrollment(ctx context.Context, userID uint, in EnrollmentInput) error
}

type EnrollmentInput struct {
	Name     string
	TaxID    string
	Birthday time.Time
	Phone    string
	Address  AddressInput
}

type AddressInput struct {
	Street       string
	Number       string
	Complement   string
	Neighborhood string
	City         string
	State        string
	PostalCode   string
}

type EnrollmentService struct {
	enrollments EnrollmentStore
}

func NewEnrollmentService(enrollments EnrollmentStore) *EnrollmentService {
	return &EnrollmentService{enrollments: enrollments}
}

func (s *EnrollmentService) GetEnrollment(ctx context.Context, userID uint) (*models.Enrollment, error) {
	return s.enrollments.ByUserID(ctx, userID)
}

// SaveEnrollment creates or updates the caller's single enrollment along
// with its address.
func (s *EnrollmentService) SaveEnrollment(ctx context.Context, userID uint, in EnrollmentInput) error {
	enrollment := models.Enrollment{
		Name:     in.Name,
		TaxID:    in.TaxID,
		Birthday: in.Birthday,
		Phone:    in.Phone,
		UserID:   userID,
		Addresses: []models.Address{{
			Street:       in.Address.Street,
			Number:       in.Address.Number,
			Complement:   in.Address.Complement,
			Neighborhood: in.Address.Neighborhood,
			City:         in.Address.City,
			State:        in.Address.State,
			PostalCode:   in.Address.PostalCode,
		}},
	}
	return s.enrollments.Upsert(ctx, &enrollment)
}

var _ EnrollmentUseCase = (*EnrollmentService)(nil)
