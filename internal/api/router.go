package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/lsfhq/resource-booking-backend/internal/auth"
	"github.com/lsfhq/resource-booking-backend/internal/booking"
	bookingHttp "github.com/lsfhq/resource-booking-backend/internal/booking/http"
	"github.com/lsfhq/resource-booking-backend/internal/holiday"
	holidayHttp "github.com/lsfhq/resource-booking-backend/internal/holiday/http"
	"github.com/lsfhq/resource-booking-backend/internal/memo"
	memoHttp "github.com/lsfhq/resource-booking-backend/internal/memo/http"
	"github.com/lsfhq/resource-booking-backend/internal/photo"
	photoHttp "github.com/lsfhq/resource-booking-backend/internal/photo/http"
	"github.com/lsfhq/resource-booking-backend/internal/resource"
	resourceHttp "github.com/lsfhq/resource-booking-backend/internal/resource/http"
	"github.com/lsfhq/resource-booking-backend/internal/user"
	userHttp "github.com/lsfhq/resource-booking-backend/internal/user/http"
)

// RouterConfig carries the environment-dependent knobs of the HTTP layer.
type RouterConfig struct {
	IsProduction bool
	// ProdOrigins is a comma-separated allowlist of CORS origins used in
	// production. Outside production every origin is allowed.
	ProdOrigins string
}

// Services bundles the domain services the router wires handlers to.
type Services struct {
	User     user.Service
	Resource resource.Service
	Booking  booking.Service
	Photo    photo.Service
	Memo     memo.Service
	Holiday  holiday.Service
}

// NewRouter initializes the HTTP router engine.
// It assembles middleware (CORS, Logger, Auth) and registers routes for
// every module under /v1.
func NewRouter(cfg RouterConfig, svc Services, jwtManager *auth.JWTManager) *gin.Engine {
	r := gin.New()

	// Global Middleware:
	// - Logger: Logs request information to the console.
	// - Recovery: Captures panics to prevent server crashes and returns a 500 error.
	r.Use(gin.Logger(), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction {
		corsConfig.AllowOrigins = splitOrigins(cfg.ProdOrigins)
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// authMiddleware validates the JWT and resolves (or provisions) the user.
	authMiddleware := auth.AuthRequired(jwtManager, identityResolver{userService: svc.User})
	// adminMiddleware further checks the authenticated user holds the ADMIN role.
	adminMiddleware := RequireAdmin()

	authHandler := NewAuthHandler(svc.User, jwtManager)
	userHandler := userHttp.NewHandler(svc.User)
	resourceHandler := resourceHttp.NewHandler(svc.Resource)
	bookingHandler := bookingHttp.NewHandler(svc.Booking)
	photoHandler := photoHttp.NewHandler(svc.Photo)
	memoHandler := memoHttp.NewHandler(svc.Memo)
	holidayHandler := holidayHttp.NewHandler(svc.Holiday)

	v1 := r.Group("/v1")
	{
		v1.POST("/auth/token", authHandler.Token)
		v1.GET("/me", authMiddleware, authHandler.Me)

		userHttp.RegisterRoutes(v1, userHandler, authMiddleware, adminMiddleware)
		resourceHttp.RegisterRoutes(v1, resourceHandler, authMiddleware, adminMiddleware)
		bookingHttp.RegisterRoutes(v1, bookingHandler, authMiddleware)
		photoHttp.RegisterRoutes(v1, photoHandler, authMiddleware, adminMiddleware)
		memoHttp.RegisterRoutes(v1, memoHandler, authMiddleware)
		holidayHttp.RegisterRoutes(v1, holidayHandler, authMiddleware)
	}

	return r
}

func splitOrigins(s string) []string {
	var origins []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
