package services

import (
	"context"

	"github.com/tmarqs/eventstay/internal/models"
)

type EnrollmentStore interface {
	ByUserID(ctx context.Context, userID uint) (*models.Enrollment, error)
	Upsert(ctx context.Context, enrollment *models.Enrollment) error
}

type TicketStore interface {
	ByID(ctx context.Context, id uint) (*models.Ticket, error)
	ByEnrollmentID(ctx context.Context, enrollmentID uint) (*models.Ticket, error)
	Create(ctx context.Context, enrollmentID, ticketTypeID uint) (*models.Ticket, error)
	MarkPaid(ctx context.Context, ticketID uint) error
	TypeByID(ctx context.Context, id uint) (*models.TicketType, error)
	ListTypes(ctx context.Context) ([]models.TicketType, error)
}

// userTicket resolves the caller's ticket through their enrollment. Both
// lookups surface ErrNotFound before any entitlement rule is evaluated.
// The eligibility predicate itself stays with each caller: the booking
// workflow answers 403 and the hotel workflow 402, and the two are kept
// separate on purpose.
func userTicket(ctx context.Context, enrollments EnrollmentStore, tickets TicketStore, userID uint) (*models.Ticket, error) {
	enrollment, err := enrollments.ByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return tickets.ByEnrollmentID(ctx, enrollment.ID)
}
