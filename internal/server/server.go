package server

import (
	"fmt"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tmarqs/eventstay/config"
	"github.com/tmarqs/eventstay/internal/cache"
	"github.com/tmarqs/eventstay/internal/handlers"
	"github.com/tmarqs/eventstay/internal/middleware"
	"github.com/tmarqs/eventstay/internal/repositories"
	"github.com/tmarqs/eventstay/internal/services"
)

func Start() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %v", err)
	}

	db, err := config.InitDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %v", err)
	}

	enrollmentRepo := repositories.NewEnrollmentRepository(db)
	ticketRepo := repositories.NewTicketRepository(db)
	hotelRepo := repositories.NewHotelRepository(db)
	bookingRepo := repositories.NewBookingRepository(db)
	paymentRepo := repositories.NewPaymentRepository(db)

	var hotelCache services.HotelCache
	if client := config.InitRedis(cfg); client != nil {
		hotelCache = cache.NewRedisCache(client, 5*time.Minute)
	}

	enrollmentService := services.NewEnrollmentService(enrollmentRepo)
	ticketService := services.NewTicketService(enrollmentRepo, ticketRepo)
	paymentService := services.NewPaymentService(paymentRepo, ticketRepo, enrollmentRepo)
	hotelService := services.NewHotelService(hotelRepo, enrollmentRepo, ticketRepo, hotelCache)
	bookingService := services.NewBookingService(bookingRepo, enrollmentRepo, ticketRepo)

	authHandler := handlers.NewAuthHandler(db, cfg.JWTSecret)
	enrollmentHandler := handlers.NewEnrollmentHandler(enrollmentService)
	ticketHandler := handlers.NewTicketHandler(ticketService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	hotelHandler := handlers.NewHotelHandler(hotelService)
	bookingHandler := handlers.NewBookingHandler(bookingService)

	r := gin.Default()

	public := r.Group("/v1")
	{
		public.POST("/register", authHandler.Register)
		public.POST("/login", authHandler.Login)
	}

	protected := r.Group("/v1")
	protected.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret, db))
	{
		enrollments := protected.Group("/enrollments")
		{
			enrollments.GET("", enrollmentHandler.GetEnrollment)
			enrollments.POST("", enrollmentHandler.SaveEnrollment)
		}

		tickets := protected.Group("/tickets")
		{
			tickets.POST("", ticketHandler.CreateTicket)
			tickets.GET("", ticketHandler.GetTicket)
			tickets.GET("/types", ticketHandler.ListTicketTypes)
		}

		payments := protected.Group("/payments")
		{
			payments.POST("/process", paymentHandler.ProcessPayment)
			payments.GET("", paymentHandler.GetPayment)
		}

		hotels := protected.Group("/hotels")
		{
			hotels.GET("", hotelHandler.ListHotels)
			hotels.GET("/:hotelId", hotelHandler.GetHotel)
		}

		booking := protected.Group("/booking")
		{
			booking.POST("", bookingHandler.CreateBooking)
			booking.GET("", bookingHandler.GetBooking)
			booking.PUT("/:bookingId", bookingHandler.ChangeBooking)
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return r.Run(":" + port)
}
