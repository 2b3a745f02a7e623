package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ellka-ua/tour-agency-api/internal/api/handler"
	"github.com/ellka-ua/tour-agency-api/internal/api/middleware"
	"github.com/ellka-ua/tour-agency-api/internal/core/domain"
	"github.com/ellka-ua/tour-agency-api/internal/core/service"
	mongodb "github.com/ellka-ua/tour-agency-api/internal/infrastructure/db/mongo"

	_ "github.com/ellka-ua/tour-agency-api/docs"
)

// Version is reported by GET /v1/info. Overridable at build time with
// -ldflags "-X ...".
var Version = "dev"

// NewRouter builds the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, codec *service.TokenCodec, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("tour_agency"))

	// --- Repositories ---
	users := mongodb.NewUserRepository(db)
	clients := mongodb.NewClientRepository(db)
	guides := mongodb.NewGuideRepository(db)
	countries := mongodb.NewCountryRepository(db)
	tours := mongodb.NewTourRepository(db)
	bookings := mongodb.NewBookingRepository(db)

	// --- Services ---
	access := service.NewAccessChecker(clients, guides, bookings, tours)
	resolver := service.NewPrincipalResolver(users)
	clientService := service.NewClientService(clients, bookings, countries, tours, users, access, log)
	guideService := service.NewGuideService(guides, users, access, log)
	countryService := service.NewCountryService(countries, log)
	tourService := service.NewTourService(tours, bookings, guides, countries, access, log)
	bookingService := service.NewBookingService(bookings, clients, tours, access, log)
	userService := service.NewUserService(users, access, log)
	authService := service.NewAuthService(users, codec, clientService, guideService, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	tourHandler := handler.NewTourHandler(tourService)
	bookingHandler := handler.NewBookingHandler(bookingService)
	clientHandler := handler.NewClientHandler(clientService)
	guideHandler := handler.NewGuideHandler(guideService)
	countryHandler := handler.NewCountryHandler(countryService)
	userHandler := handler.NewUserHandler(userService)

	// The identity filter runs on every route; public endpoints simply
	// proceed without a bound principal.
	e.Use(middleware.Auth(codec, resolver))

	anyRole := middleware.RequireAuthenticated()
	clientOrAdmin := middleware.RequireRole(domain.RoleClient, domain.RoleAdmin)
	guideOrAdmin := middleware.RequireRole(domain.RoleGuide, domain.RoleAdmin)
	clientOnly := middleware.RequireRole(domain.RoleClient)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	// --- Auth ---
	auth := e.Group("/v1/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout, anyRole)
	auth.GET("/current", authHandler.Current, anyRole)

	// --- Tours ---
	tour := e.Group("/v1/tour")
	tour.GET("", tourHandler.GetAll, anyRole)
	tour.GET("/country/:countryId", tourHandler.GetByCountry, anyRole)
	tour.GET("/guide/:guideId", tourHandler.GetByGuide, anyRole)
	tour.GET("/popular", tourHandler.MostPopular, anyRole)
	tour.GET("/profit/:id", tourHandler.Profit, guideOrAdmin)
	tour.POST("", tourHandler.Create, guideOrAdmin)
	tour.PUT("/:id", tourHandler.Update, guideOrAdmin)
	tour.DELETE("/:id", tourHandler.Delete, guideOrAdmin)

	// --- Bookings ---
	booking := e.Group("/v1/booking")
	booking.GET("/client/:clientId", bookingHandler.GetByClient, anyRole)
	booking.GET("/tour/:tourId", bookingHandler.GetByTour, anyRole)
	booking.GET("/statisticsByMonth", bookingHandler.StatisticsByMonth, guideOrAdmin)
	booking.POST("", bookingHandler.Create, clientOnly)
	booking.DELETE("/:id", bookingHandler.Delete, clientOrAdmin)

	// --- Clients ---
	client := e.Group("/v1/client")
	client.GET("", clientHandler.GetAll, adminOnly)
	client.GET("/me", clientHandler.Me, clientOrAdmin)
	client.GET("/country/:countryId", clientHandler.GetByCountry, guideOrAdmin)
	client.POST("", clientHandler.Create, clientOrAdmin)
	client.PUT("/:id", clientHandler.Update, clientOrAdmin)
	client.DELETE("/:id", clientHandler.Delete, clientOrAdmin)

	// --- Guides ---
	guide := e.Group("/v1/guide")
	guide.GET("", guideHandler.GetAll, anyRole)
	guide.GET("/me", guideHandler.Me, guideOrAdmin)
	guide.POST("", guideHandler.Create, guideOrAdmin)
	guide.PUT("/:id", guideHandler.Update, guideOrAdmin)
	guide.DELETE("/:id", guideHandler.Delete, guideOrAdmin)

	// --- Countries ---
	country := e.Group("/v1/country")
	country.GET("", countryHandler.GetAll, anyRole)
	country.POST("", countryHandler.Create, adminOnly)
	country.DELETE("/:id", countryHandler.Delete, adminOnly)

	// --- Users (administration) ---
	user := e.Group("/v1/users", adminOnly)
	user.GET("", userHandler.GetAll)
	user.GET("/:id", userHandler.GetByID)
	user.DELETE("/:id", userHandler.Delete)

	// --- Service endpoints (no auth required) ---
	infoHandler := handler.NewInfoHandler(Version)
	e.GET("/v1/info", infoHandler.Info)

	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
