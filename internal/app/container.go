package app

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lsfhq/resource-booking-backend/internal/api"
	"github.com/lsfhq/resource-booking-backend/internal/auth"
	"github.com/lsfhq/resource-booking-backend/internal/booking"
	"github.com/lsfhq/resource-booking-backend/internal/config"
	"github.com/lsfhq/resource-booking-backend/internal/holiday"
	"github.com/lsfhq/resource-booking-backend/internal/memo"
	"github.com/lsfhq/resource-booking-backend/internal/photo"
	"github.com/lsfhq/resource-booking-backend/internal/pkg/storage"
	"github.com/lsfhq/resource-booking-backend/internal/resource"
	"github.com/lsfhq/resource-booking-backend/internal/user"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string

	// Store selects the persistence backend. DBPool must be set when it is
	// config.StorePostgres.
	Store  string
	DBPool *pgxpool.Pool

	JWTSecret string
	JWTTTL    time.Duration

	AdminEmails          []string
	MonthlyCapacityHours int

	UploadDir     string
	HolidayICSURL string
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
}

type repositories struct {
	user     user.Repository
	resource resource.Repository
	booking  booking.Repository
	photo    photo.Repository
	memo     memo.Repository
}

func newRepositories(cfg Config) (repositories, error) {
	if cfg.Store == config.StorePostgres {
		if cfg.DBPool == nil {
			return repositories{}, fmt.Errorf("postgres store requires a db pool")
		}
		return repositories{
			user:     user.NewPgxRepository(cfg.DBPool),
			resource: resource.NewPgxRepository(cfg.DBPool),
			booking:  booking.NewPgxRepository(cfg.DBPool),
			photo:    photo.NewPgxRepository(cfg.DBPool),
			memo:     memo.NewPgxRepository(cfg.DBPool),
		}, nil
	}

	return repositories{
		user:     user.NewMemoryRepository(),
		resource: resource.NewMemoryRepository(),
		booking:  booking.NewMemoryRepository(),
		photo:    photo.NewMemoryRepository(),
		memo:     memo.NewMemoryRepository(),
	}, nil
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) (*Container, error) {
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	repos, err := newRepositories(cfg)
	if err != nil {
		return nil, err
	}

	fileStore, err := storage.NewLocalStorage(cfg.UploadDir)
	if err != nil {
		return nil, fmt.Errorf("init upload storage: %w", err)
	}

	// User Module
	userService := user.NewService(repos.user, cfg.AdminEmails)

	// Resource Module
	resourceService := resource.NewService(repos.resource)

	// Booking Module
	bookingService := booking.NewService(repos.booking, resourceService, userService, cfg.MonthlyCapacityHours)

	// Photo Module
	photoService := photo.NewService(repos.photo, resourceService, fileStore)

	// Memo Module
	memoService := memo.NewService(repos.memo, userService)

	// Holiday Module
	holidayService := holiday.NewService(http.DefaultClient, cfg.HolidayICSURL)

	router := api.NewRouter(
		api.RouterConfig{
			IsProduction: cfg.IsProduction,
			ProdOrigins:  cfg.ProdOrigins,
		},
		api.Services{
			User:     userService,
			Resource: resourceService,
			Booking:  bookingService,
			Photo:    photoService,
			Memo:     memoService,
			Holiday:  holidayService,
		},
		jwtManager,
	)

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
	}, nil
}
