package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tmarqs/eventstay/internal/helpers"
	"github.com/tmarqs/eventstay/internal/services"
)

type CardData struct {
	Issuer         string `json:"issuer" binding:"required"`
	Number         string `json:"number" binding:"required,min=13"`
	Name           string `json:"name" binding:"required"`
	ExpirationDate string `json:"expirationDate" binding:"required"`
	CVV            string `json:"cvv" binding:"required"`
}

type PaymentRequest struct {
	TicketID uint     `json:"ticketId" binding:"required"`
	CardData CardData `json:"cardData" binding:"required"`
}

type PaymentHandler struct {
	payments services.PaymentUseCase
}

func NewPaymentHandler(payments services.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

func (h *PaymentHandler) ProcessPayment(c *gin.Context) {
	var req PaymentRequest
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

	payment, err := h.payments.PayTicket(c.Request.Context(), uid, services.PaymentInput{
		TicketID:       req.TicketID,
		CardIssuer:     req.CardData.Issuer,
		CardLastDigits: req.CardData.Number[len(req.CardData.Number)-4:],
	})
	if err != nil {
		helpers.RespondWithServiceError(c, err, "Ticket not found.")
		return
	}

	c.JSON(http.StatusOK, payment)
}

func (h *PaymentHandler) GetPayment(c *gin.Context) {
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

	ticketIDParam := c.Query("ticketId")
	if ticketIDParam == "" {
		helpers.RespondWithError(c, http.StatusBadRequest, "Missing ticketId query parameter.")
		return
	}
	ticketID, err := helpers.StringToUint(ticketIDParam)
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid ticketId query parameter.")
		return
	}

	payment, err := h.payments.GetTicketPayment(c.Request.Context(), uid, ticketID)
	if err != nil {
		helpers.RespondWithServiceError(c, err, "Payment not found.")
		return
	}

	c.JSON(http.StatusOK, payment)
}
