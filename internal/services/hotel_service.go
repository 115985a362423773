package services

import (
	"context"

	"github.com/tmarqs/eventstay/internal/models"
	"github.com/tmarqs/eventstay/internal/repositories"
)

type HotelStore interface {
	List(ctx context.Context) ([]models.Hotel, error)
	ByID(ctx context.Context, id uint) (*models.Hotel, error)
}

type HotelCache interface {
	GetHotels(ctx context.Context) ([]models.Hotel, error)
	SetHotels(ctx context.Context, hotels []models.Hotel) error
}

type HotelUseCase interface {
	GetHotels(ctx context.Context, userID uint) ([]models.Hotel, error)
	GetHotelByID(ctx context.Context, userID, hotelID uint) (*models.Hotel, error)
}

type HotelService struct {
	hotels      HotelStore
	enrollments EnrollmentStore
	tickets     TicketStore
	cache       HotelCache
}

// NewHotelService builds the hotel listing workflow. cache may be nil, in
// which case every read goes to the store.
func NewHotelService(hotels HotelStore, enrollments EnrollmentStore, tickets TicketStore, cache HotelCache) *HotelService {
	return &HotelService{
		hotels:      hotels,
		enrollments: enrollments,
		tickets:     tickets,
		cache:       cache,
	}
}

// checkEntitlement is this workflow's variant of the eligibility gate: an
// unpaid, remote or hotel-less ticket answers 402, not the booking
// workflow's 403.
func (s *HotelService) checkEntitlement(ctx context.Context, userID uint) error {
	ticket, err := userTicket(ctx, s.enrollments, s.tickets, userID)
	if err != nil {
		return err
	}
	if ticket.Status != models.TicketPaid || ticket.TicketType.IsRemote || !ticket.TicketType.IncludesHotel {
		return PaymentRequired()
	}
	return nil
}

func (s *HotelService) GetHotels(ctx context.Context, userID uint) ([]models.Hotel, error) {
	if err := s.checkEntitlement(ctx, userID); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if hotels, err := s.cache.GetHotels(ctx); err == nil && len(hotels) > 0 {
			return hotels, nil
		}
	}

	hotels, err := s.hotels.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(hotels) == 0 {
		return nil, repositories.ErrNotFound
	}

	if s.cache != nil {
		_ = s.cache.SetHotels(ctx, hotels)
	}
	return hotels, nil
}

func (s *HotelService) GetHotelByID(ctx context.Context, userID, hotelID uint) (*models.Hotel, error) {
	if err := s.checkEntitlement(ctx, userID); err != nil {
		return nil, err
	}
	return s.hotels.ByID(ctx, hotelID)
}

var _ HotelUseCase = (*HotelService)(nil)
