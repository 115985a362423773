package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/tmarqs/eventstay/internal/models"
	"github.com/tmarqs/eventstay/internal/repositories"
	"github.com/tmarqs/eventstay/internal/services"
)

type mockHotelUseCase struct {
	mock.Mock
}

func (m *mockHotelUseCase) GetHotels(ctx context.Context, userID uint) ([]models.Hotel, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Hotel), args.Error(1)
}

func (m *mockHotelUseCase) GetHotelByID(ctx context.Context, userID, hotelID uint) (*models.Hotel, error) {
	args := m.Called(ctx, userID, hotelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Hotel), args.Error(1)
}

func hotelTestRouter(uc services.HotelUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", uint(1))
	})
	h := NewHotelHandler(uc)
	r.GET("/hotels", h.ListHotels)
	r.GET("/hotels/:hotelId", h.GetHotel)
	return r
}

func TestListHotelsHandler_PaymentRequired(t *testing.T) {
	uc := &mockHotelUseCase{}
	uc.On("GetHotels", mock.Anything, uint(1)).Return(nil, services.PaymentRequired())
	r := hotelTestRouter(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/hotels", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusPaymentRequired, w.Code)
}

func TestListHotelsHandler_Empty(t *testing.T) {
	uc := &mockHotelUseCase{}
	uc.On("GetHotels", mock.Anything, uint(1)).Return(nil, repositories.ErrNotFound)
	r := hotelTestRouter(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/hotels", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListHotelsHandler_Success(t *testing.T) {
	uc := &mockHotelUseCase{}
	uc.On("GetHotels", mock.Anything, uint(1)).Return([]models.Hotel{
		{ID: 1, Name: "Grand Plaza", Image: "plaza.png"},
	}, nil)
	r := hotelTestRouter(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/hotels", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"Grand Plaza"`)
}

func TestGetHotelHandler_NonNumericID(t *testing.T) {
	uc := &mockHotelUseCase{}
	r := hotelTestRouter(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/hotels/abc", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	uc.AssertNotCalled(t, "GetHotelByID", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetHotelHandler_Success(t *testing.T) {
	uc := &mockHotelUseCase{}
	uc.On("GetHotelByID", mock.Anything, uint(1), uint(1)).Return(&models.Hotel{
		ID:    1,
		Name:  "Grand Plaza",
		Image: "plaza.png",
		Rooms: []models.Room{{ID: 2, Name: "101", Capacity: 3, HotelID: 1}},
	}, nil)
	r := hotelTestRouter(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/hotels/1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"Rooms"`)
}
