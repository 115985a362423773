package config

import (
	"fmt"
	"os"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/tmarqs/eventstay/internal/models"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	JWTSecret  string
	RedisAddr  string
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		RedisAddr:  os.Getenv("REDIS_ADDR"),
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET not configured")
	}
	return cfg, nil
}

func InitDatabase(cfg *Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.Enrollment{},
		&models.Address{},
		&models.TicketType{},
		&models.Ticket{},
		&models.Payment{},
		&models.Hotel{},
		&models.Room{},
		&models.Booking{},
	)
	if err != nil {
		return nil, err
	}

	seedTicketTypes(db)

	return db, nil
}

// InitRedis returns nil when no address is configured; the hotel catalog
// cache is optional.
func InitRedis(cfg *Config) *redis.Client {
	if cfg.RedisAddr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
}

func seedTicketTypes(db *gorm.DB) {
	ticketTypes := []models.TicketType{
		{Name: "Remote", Price: 10000, IsRemote: true, IncludesHotel: false},
		{Name: "In Person", Price: 25000, IsRemote: false, IncludesHotel: false},
		{Name: "In Person + Hotel", Price: 60000, IsRemote: false, IncludesHotel: true},
	}

	for _, ticketType := range ticketTypes {
		var existing models.TicketType
		result := db.Where("name = ?", ticketType.Name).First(&existing)
		if result.Error != nil {
			db.Create(&ticketType)
		}
	}
}
