package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tmarqs/eventstay/internal/helpers"
	"github.com/tmarqs/eventstay/internal/services"
)

type HotelHandler struct {
	hotels services.HotelUseCase
}

func NewHotelHandler(hotels services.HotelUseCase) *HotelHandler {
	return &HotelHandler{hotels: hotels}
}

func (h *HotelHandler) ListHotels(c *gin.Context) {
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

	hotels, err := h.hotels.GetHotels(c.Request.Context(), uid)
	if err != nil {
		helpers.RespondWithServiceError(c, err, "No hotels found.")
		return
	}

	c.JSON(http.StatusOK, hotels)
}

func (h *HotelHandler) GetHotel(c *gin.Context) {
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

	// A non-numeric id is indistinguishable from a missing hotel.
	hotelID, err := helpers.StringToUint(c.Param("hotelId"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Hotel not found.")
		return
	}

	hotel, err := h.hotels.GetHotelByID(c.Request.Context(), uid, hotelID)
	if err != nil {
		helpers.RespondWithServiceError(c, err, "Hotel not found.")
		return
	}

	c.JSON(http.StatusOK, hotel)
}
