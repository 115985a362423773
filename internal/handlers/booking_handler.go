package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tmarqs/eventstay/internal/helpers"
	"github.com/tmarqs/eventstay/internal/services"
)

type BookingRequest struct {
	RoomID uint `json:"roomId" binding:"required"`
}

type BookingHandler struct {
	bookings services.BookingUseCase
}

func NewBookingHandler(bookings services.BookingUseCase) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	userID, exists := c.Get("user_id")
	if !exists {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User ID not found in token.")
		return
	}
	uid, ok := userID.(uint)
	if !ok {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Invalid user ID type.")
		return
	}

	bookingID, err := h.bookings.CreateBooking(c.Request.Context(), uid, req.RoomID)
	if err != nil {
		helpers.RespondWithServiceError(c, err, "Enrollment, ticket or room not found.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookingId": bookingID})
}

func (h *BookingHandler) GetBooking(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User ID not found in token.")
		return
	}
	uid, ok := userID.(uint)
	if !ok {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Invalid user ID type.")
		return
	}

	booking, err := h.bookings.GetBooking(c.Request.Context(), uid)
	if err != nil {
		helpers.RespondWithServiceError(c, err, "Booking not found.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":   booking.ID,
		"Room": booking.Room,
	})
}

func (h *BookingHandler) ChangeBooking(c *gin.Context) {
	bookingID, err := helpers.StringToUint(c.Param("bookingId"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID.")
		return
	}

	var req BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	userID, exists := c.Get("user_id")
	if !exists {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User ID not found in token.")
		return
	}
	uid, ok := userID.(uint)
	if !ok {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Invalid user ID type.")
		return
	}

	newID, err := h.bookings.ChangeBooking(c.Request.Context(), uid, req.RoomID, bookingID)
	if err != nil {
		helpers.RespondWithServiceError(c, err, "Enrollment, ticket or room not found.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookingId": newID})
}
