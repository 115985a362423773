package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tmarqs/eventstay/internal/helpers"
	"github.com/tmarqs/eventstay/internal/services"
)

type AddressRequest struct {
	Street       string `json:"street" binding:"required"`
	Number       string `json:"number" binding:"required"`
	Complement   string `json:"complement"`
	Neighborhood string `json:"neighborhood" binding:"required"`
	City         string `json:"city" binding:"required"`
	State        string `json:"state" binding:"required"`
	PostalCode   string `json:"postalCode" binding:"required"`
}

type EnrollmentRequest struct {
	Name     string         `json:"name" binding:"required"`
	TaxID    string         `json:"taxId" binding:"required"`
	Birthday time.Time      `json:"birthday" binding:"required"`
	Phone    string         `json:"phone" binding:"required"`
	Address  AddressRequest `json:"address" binding:"required"`
}

type EnrollmentHandler struct {
	enrollments services.EnrollmentUseCase
}

func NewEnrollmentHandler(enrollments services.EnrollmentUseCase) *EnrollmentHandler {
	return &EnrollmentHandler{enrollments: enrollments}
}

func (h *EnrollmentHandler) GetEnrollment(c *gin.Context) {
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

	enrollment, err := h.enrollments.GetEnrollment(c.Request.Context(), uid)
	if err != nil {
		helpers.RespondWithServiceError(c, err, "Enrollment not found.")
		return
	}

	c.JSON(http.StatusOK, enrollment)
}

func (h *EnrollmentHandler) SaveEnrollment(c *gin.Context) {
	var req EnrollmentRequest
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

	err := h.enrollments.SaveEnrollment(c.Request.Context(), uid, services.EnrollmentInput{
		Name:     req.Name,
		TaxID:    req.TaxID,
		Birthday: req.Birthday,
		Phone:    req.Phone,
		Address: services.AddressInput{
			Street:       req.Address.Street,
			Number:       req.Address.Number,
			Complement:   req.Address.Complement,
			Neighborhood: req.Address.Neighborhood,
			City:         req.Address.City,
			State:        req.Address.State,
			PostalCode:   req.Address.PostalCode,
		},
	})
	if err != nil {
		helpers.RespondWithServiceError(c, err, "Enrollment not found.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Enrollment saved successfully."})
}
