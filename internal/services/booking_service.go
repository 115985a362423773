package services

import (
	"context"
	"errors"

	"github.com/tmarqs/eventstay/internal/models"
	"github.com/tmarqs/eventstay/internal/repositories"
)

type BookingStore interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
	RoomOccupancy(ctx context.Context, roomID uint) (*models.Room, int64, error)
	ByUserID(ctx context.Context, userID uint) (*models.Booking, error)
	Create(ctx context.Context, userID, roomID uint) (*models.Booking, error)
	ChangeRoom(ctx context.Context, bookingID, roomID uint) (*models.Booking, error)
}

type BookingUseCase interface {
	CreateBooking(ctx context.Context, userID, roomID uint) (uint, error)
	GetBooking(ctx context.Context, userID uint) (*models.Booking, error)
	ChangeBooking(ctx context.Context, userID, roomID, bookingID uint) (uint, error)
}

type BookingService struct {
	bookings    BookingStore
	enrollments EnrollmentStore
	tickets     TicketStore
}

func NewBookingService(bookings BookingStore, enrollments EnrollmentStore, tickets TicketStore) *BookingService {
	return &BookingService{
		bookings:    bookings,
		enrollments: enrollments,
		tickets:     tickets,
	}
}

// checkEntitlement rejects callers whose ticket does not grant hotel
// access. This workflow answers 403; the hotel listing answers 402.
func (s *BookingService) checkEntitlement(ctx context.Context, userID uint) error {
	ticket, err := userTicket(ctx, s.enrollments, s.tickets, userID)
	if err != nil {
		return err
	}
	if ticket.Status == models.TicketReserved || ticket.TicketType.IsRemote || !ticket.TicketType.IncludesHotel {
		return Forbidden()
	}
	return nil
}

func (s *BookingService) CreateBooking(ctx context.Context, userID, roomID uint) (uint, error) {
	if err := s.checkEntitlement(ctx, userID); err != nil {
		return 0, err
	}

	var bookingID uint
	err := s.bookings.WithTx(ctx, func(ctx context.Context) error {
		room, occupied, err := s.bookings.RoomOccupancy(ctx, roomID)
		if err != nil {
			return err
		}
		if int64(room.Capacity) <= occupied {
			return Forbidden()
		}

		booking, err := s.bookings.Create(ctx, userID, roomID)
		if err != nil {
			return err
		}
		bookingID = booking.ID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return bookingID, nil
}

func (s *BookingService) GetBooking(ctx context.Context, userID uint) (*models.Booking, error) {
	return s.bookings.ByUserID(ctx, userID)
}

func (s *BookingService) ChangeBooking(ctx context.Context, userID, roomID, bookingID uint) (uint, error) {
	if err := s.checkEntitlement(ctx, userID); err != nil {
		return 0, err
	}

	var newID uint
	err := s.bookings.WithTx(ctx, func(ctx context.Context) error {
		room, occupied, err := s.bookings.RoomOccupancy(ctx, roomID)
		if err != nil {
			return err
		}
		if int64(room.Capacity) <= occupied {
			return Forbidden()
		}

		current, err := s.bookings.ByUserID(ctx, userID)
		if err != nil {
			// No current booking is an ownership failure, not a missing
			// resource: the caller must not learn whether the id exists.
			if errors.Is(err, repositories.ErrNotFound) {
				return Forbidden()
			}
			return err
		}
		if current.ID != bookingID {
			return Forbidden()
		}

		updated, err := s.bookings.ChangeRoom(ctx, current.ID, roomID)
		if err != nil {
			return err
		}
		newID = updated.ID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return newID, nil
}

var _ BookingUseCase = (*BookingService)(nil)
