package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tmarqs/eventstay/internal/models"
)

type TicketRepository struct {
	db *gorm.DB
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{db: db}
}

func (r *TicketRepository) ByID(ctx context.Context, id uint) (*models.Ticket, error) {
	var ticket models.Ticket
	err := r.db.WithContext(ctx).Preload("TicketType").First(&ticket, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &ticket, nil
}

func (r *TicketRepository) ByEnrollmentID(ctx context.Context, enrollmentID uint) (*models.Ticket, error) {
	var ticket models.Ticket
	err := r.db.WithContext(ctx).Preload("TicketType").Where("enrollment_id = ?", enrollmentID).First(&ticket).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &ticket, nil
}

func (r *TicketRepository) Create(ctx context.Context, enrollmentID, ticketTypeID uint) (*models.Ticket, error) {
	ticket := models.Ticket{
		Status:       models.TicketReserved,
		EnrollmentID: enrollmentID,
		TicketTypeID: ticketTypeID,
	}
	if err := r.db.WithContext(ctx).Create(&ticket).Error; err != nil {
		return nil, err
	}
	return r.ByID(ctx, ticket.ID)
}

func (r *TicketRepository) MarkPaid(ctx context.Context, ticketID uint) error {
	return r.db.WithContext(ctx).Model(&models.Ticket{}).
		Where("id = ?", ticketID).
		Update("status", models.TicketPaid).Error
}

func (r *TicketRepository) TypeByID(ctx context.Context, id uint) (*models.TicketType, error) {
	var ticketType models.TicketType
	err := r.db.WithContext(ctx).First(&ticketType, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &ticketType, nil
}

func (r *TicketRepository) ListTypes(ctx context.Context) ([]models.TicketType, error) {
	var types []models.TicketType
	if err := r.db.WithContext(ctx).Order("id").Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}
