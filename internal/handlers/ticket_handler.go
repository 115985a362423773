package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tmarqs/eventstay/internal/helpers"
	"github.com/tmarqs/eventstay/internal/services"
)

type TicketRequest struct {
	TicketTypeID uint `json:"ticketTypeId" binding:"required"`
}

type TicketHandler struct {
	tickets services.TicketUseCase
}

func NewTicketHandler(tickets services.TicketUseCase) *TicketHandler {
	return &TicketHandler{tickets: tickets}
}

func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req TicketRequest
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

	ticket, err := h.tickets.CreateTicket(c.Request.Context(), uid, req.TicketTypeID)
	if err != nil {
		helpers.RespondWithServiceError(c, err, "Enrollment or ticket type not found.")
		return
	}

	c.JSON(http.StatusCreated, ticket)
}

func (h *TicketHandler) GetTicket(c *gin.Context) {
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

	ticket, err := h.tickets.GetTicket(c.Request.Context(), uid)
	if err != nil {
		helpers.RespondWithServiceError(c, err, "Ticket not found.")
		return
	}

	c.JSON(http.StatusOK, ticket)
}

func (h *TicketHandler) ListTicketTypes(c *gin.Context) {
	types, err := h.tickets.ListTicketTypes(c.Request.Context())
	if err != nil {
		helpers.RespondWithServiceError(c, err, "Ticket types not found.")
		return
	}

	c.JSON(http.StatusOK, types)
}
