package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/tmarqs/eventstay/internal/models"
)

type MockEnrollmentStore struct {
	mock.Mock
}

func (m *MockEnrollmentStore) ByUserID(ctx context.Context, userID uint) (*models.Enrollment, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Enrollment), args.Error(1)
}

func (m *MockEnrollmentStore) Upsert(ctx context.Context, enrollment *models.Enrollment) error {
	args := m.Called(ctx, enrollment)
	return args.Error(0)
}

type MockTicketStore struct {
	mock.Mock
}

func (m *MockTicketStore) ByID(ctx context.Context, id uint) (*models.Ticket, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Ticket), args.Error(1)
}

func (m *MockTicketStore) ByEnrollmentID(ctx context.Context, enrollmentID uint) (*models.Ticket, error) {
	args := m.Called(ctx, enrollmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Ticket), args.Error(1)
}

func (m *MockTicketStore) Create(ctx context.Context, enrollmentID, ticketTypeID uint) (*models.Ticket, error) {
	args := m.Called(ctx, enrollmentID, ticketTypeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Ticket), args.Error(1)
}

func (m *MockTicketStore) MarkPaid(ctx context.Context, ticketID uint) error {
	args := m.Called(ctx, ticketID)
	return args.Error(0)
}

func (m *MockTicketStore) TypeByID(ctx context.Context, id uint) (*models.TicketType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TicketType), args.Error(1)
}

func (m *MockTicketStore) ListTypes(ctx context.Context) ([]models.TicketType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.TicketType), args.Error(1)
}

type MockBookingStore struct {
	mock.Mock
}

// WithTx runs fn directly; transactional behavior is the repository's
// concern, not the workflow's.
func (m *MockBookingStore) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (m *MockBookingStore) RoomOccupancy(ctx context.Context, roomID uint) (*models.Room, int64, error) {
	args := m.Called(ctx, roomID)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).(*models.Room), args.Get(1).(int64), args.Error(2)
}

func (m *MockBookingStore) ByUserID(ctx context.Context, userID uint) (*models.Booking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingStore) Create(ctx context.Context, userID, roomID uint) (*models.Booking, error) {
	args := m.Called(ctx, userID, roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingStore) ChangeRoom(ctx context.Context, bookingID, roomID uint) (*models.Booking, error) {
	args := m.Called(ctx, bookingID, roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

type MockHotelStore struct {
	mock.Mock
}

func (m *MockHotelStore) List(ctx context.Context) ([]models.Hotel, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Hotel), args.Error(1)
}

func (m *MockHotelStore) ByID(ctx context.Context, id uint) (*models.Hotel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Hotel), args.Error(1)
}

type MockHotelCache struct {
	mock.Mock
}

func (m *MockHotelCache) GetHotels(ctx context.Context) ([]models.Hotel, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Hotel), args.Error(1)
}

func (m *MockHotelCache) SetHotels(ctx context.Context, hotels []models.Hotel) error {
	args := m.Called(ctx, hotels)
	return args.Error(0)
}

type MockPaymentStore struct {
	mock.Mock
}

func (m *MockPaymentStore) Create(ctx context.Context, payment *models.Payment) (*models.Payment, error) {
	args := m.Called(ctx, payment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Payment), args.Error(1)
}

func (m *MockPaymentStore) ByTicketID(ctx context.Context, ticketID uint) (*models.Payment, error) {
	args := m.Called(ctx, ticketID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Payment), args.Error(1)
}

func paidHotelTicket() *models.Ticket {
	return &models.Ticket{
		ID:           5,
		Status:       models.TicketPaid,
		EnrollmentID: 10,
		TicketTypeID: 3,
		TicketType:   models.TicketType{ID: 3, Name: "In Person + Hotel", Price: 60000, IsRemote: false, IncludesHotel: true},
	}
}
