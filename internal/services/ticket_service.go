package services

import (
	"context"

	"github.com/tmarqs/eventstay/internal/models"
)

type TicketUseCase interface {
	CreateTicket(ctx context.Context, userID, ticketTypeID uint) (*models.Ticket, error)
	GetTicket(ctx context.Context, userID uint) (*models.Ticket, error)
	ListTicketTypes(ctx context.Context) ([]models.TicketType, error)
}

type TicketService struct {
	enrollments EnrollmentStore
	tickets     TicketStore
}

func NewTicketService(enrollments EnrollmentStore, tickets TicketStore) *TicketService {
	return &TicketService{enrollments: enrollments, tickets: tickets}
}

// CreateTicket reserves a ticket of the given type for the caller's
// enrollment. The ticket type is checked up front so an unknown id answers
// a deliberate 404 instead of a storage-layer constraint error.
func (s *TicketService) CreateTicket(ctx context.Context, userID, ticketTypeID uint) (*models.Ticket, error) {
	enrollment, err := s.enrollments.ByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if _, err := s.tickets.TypeByID(ctx, ticketTypeID); err != nil {
		return nil, err
	}

	return s.tickets.Create(ctx, enrollment.ID, ticketTypeID)
}

func (s *TicketService) GetTicket(ctx context.Context, userID uint) (*models.Ticket, error) {
	return userTicket(ctx, s.enrollments, s.tickets, userID)
}

func (s *TicketService) ListTicketTypes(ctx context.Context) ([]models.TicketType, error) {
	return s.tickets.ListTypes(ctx)
}

var _ TicketUseCase = (*TicketService)(nil)
