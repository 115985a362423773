package services

import (
	"context"

	"github.com/tmarqs/eventstay/internal/models"
)

type PaymentStore interface {
	Create(ctx context.Context, payment *models.Payment) (*models.Payment, error)
	ByTicketID(ctx context.Context, ticketID uint) (*models.Payment, error)
}

type PaymentUseCase interface {
	PayTicket(ctx context.Context, userID uint, in PaymentInput) (*models.Payment, error)
	GetTicketPayment(ctx context.Context, userID, ticketID uint) (*models.Payment, error)
}

type PaymentInput struct {
	TicketID       uint
	CardIssuer     string
	CardLastDigits string
}

type PaymentService struct {
	payments    PaymentStore
	tickets     TicketStore
	enrollments EnrollmentStore
}

func NewPaymentService(payments PaymentStore, tickets TicketStore, enrollments EnrollmentStore) *PaymentService {
	return &PaymentService{
		payments:    payments,
		tickets:     tickets,
		enrollments: enrollments,
	}
}

// ownedTicket loads the ticket and verifies it belongs to the caller's
// enrollment. A ticket owned by someone else answers 401.
func (s *PaymentService) ownedTicket(ctx context.Context, userID, ticketID uint) (*models.Ticket, error) {
	ticket, err := s.tickets.ByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	enrollment, err := s.enrollments.ByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if ticket.EnrollmentID != enrollment.ID {
		return nil, Unauthorized()
	}
	return ticket, nil
}

// PayTicket records the payment at the ticket type's price and flips the
// ticket to PAID.
func (s *PaymentService) PayTicket(ctx context.Context, userID uint, in PaymentInput) (*models.Payment, error) {
	ticket, err := s.ownedTicket(ctx, userID, in.TicketID)
	if err != nil {
		return nil, err
	}

	payment, err := s.payments.Create(ctx, &models.Payment{
		TicketID:       ticket.ID,
		Value:          ticket.TicketType.Price,
		CardIssuer:     in.CardIssuer,
		CardLastDigits: in.CardLastDigits,
	})
	if err != nil {
		return nil, err
	}

	if err := s.tickets.MarkPaid(ctx, ticket.ID); err != nil {
		return nil, err
	}
	return payment, nil
}

func (s *PaymentService) GetTicketPayment(ctx context.Context, userID, ticketID uint) (*models.Payment, error) {
	ticket, err := s.ownedTicket(ctx, userID, ticketID)
	if err != nil {
		return nil, err
	}
	return s.payments.ByTicketID(ctx, ticket.ID)
}

var _ PaymentUseCase = (*PaymentService)(nil)
