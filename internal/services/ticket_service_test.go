package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/tmarqs/eventstay/internal/models"
	"github.com/tmarqs/eventstay/internal/repositories"
)

func newTicketFixture() (*TicketService, *MockEnrollmentStore, *MockTicketStore) {
	enrollments := &MockEnrollmentStore{}
	tickets := &MockTicketStore{}
	return NewTicketService(enrollments, tickets), enrollments, tickets
}

func TestCreateTicket_NoEnrollment(t *testing.T) {
	svc, enrollments, tickets := newTicketFixture()
	enrollments.On("ByUserID", mock.Anything, uint(1)).Return(nil, repositories.ErrNotFound)

	_, err := svc.CreateTicket(context.Background(), 1, 3)

	assert.ErrorIs(t, err, repositories.ErrNotFound)
	tickets.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateTicket_UnknownTicketType(t *testing.T) {
	svc, enrollments, tickets := newTicketFixture()
	enrollments.On("ByUserID", mock.Anything, uint(1)).Return(&models.Enrollment{ID: 10, UserID: 1}, nil)
	tickets.On("TypeByID", mock.Anything, uint(99)).Return(nil, repositories.ErrNotFound)

	_, err := svc.CreateTicket(context.Background(), 1, 99)

	assert.ErrorIs(t, err, repositories.ErrNotFound)
	tickets.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateTicket_Success(t *testing.T) {
	svc, enrollments, tickets := newTicketFixture()
	enrollments.On("ByUserID", mock.Anything, uint(1)).Return(&models.Enrollment{ID: 10, UserID: 1}, nil)
	ticketType := &models.TicketType{ID: 3, Name: "In Person + Hotel", Price: 60000, IncludesHotel: true}
	tickets.On("TypeByID", mock.Anything, uint(3)).Return(ticketType, nil)
	created := &models.Ticket{ID: 5, Status: models.TicketReserved, EnrollmentID: 10, TicketTypeID: 3, TicketType: *ticketType}
	tickets.On("Create", mock.Anything, uint(10), uint(3)).Return(created, nil)

	ticket, err := svc.CreateTicket(context.Background(), 1, 3)

	assert.NoError(t, err)
	assert.Equal(t, models.TicketReserved, ticket.Status)
	assert.Equal(t, *ticketType, ticket.TicketType)
	tickets.AssertExpectations(t)
}

func TestGetTicket_NoTicket(t *testing.T) {
	svc, enrollments, tickets := newTicketFixture()
	enrollments.On("ByUserID", mock.Anything, uint(1)).Return(&models.Enrollment{ID: 10, UserID: 1}, nil)
	tickets.On("ByEnrollmentID", mock.Anything, uint(10)).Return(nil, repositories.ErrNotFound)

	_, err := svc.GetTicket(context.Background(), 1)

	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestGetTicket_Success(t *testing.T) {
	svc, enrollments, tickets := newTicketFixture()
	enrollments.On("ByUserID", mock.Anything, uint(1)).Return(&models.Enrollment{ID: 10, UserID: 1}, nil)
	ticket := paidHotelTicket()
	tickets.On("ByEnrollmentID", mock.Anything, uint(10)).Return(ticket, nil)

	result, err := svc.GetTicket(context.Background(), 1)

	assert.NoError(t, err)
	assert.Equal(t, ticket, result)
}

func TestListTicketTypes(t *testing.T) {
	svc, _, tickets := newTicketFixture()
	types := []models.TicketType{
		{ID: 1, Name: "Remote", Price: 10000, IsRemote: true},
		{ID: 3, Name: "In Person + Hotel", Price: 60000, IncludesHotel: true},
	}
	tickets.On("ListTypes", mock.Anything).Return(types, nil)

	result, err := svc.ListTicketTypes(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, types, result)
}
