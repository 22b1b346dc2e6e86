package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/rs/zerolog"

	"github.com/doctorconnect/booking-system/internal/api/handler"
	"github.com/doctorconnect/booking-system/internal/api/middleware"
	"github.com/doctorconnect/booking-system/internal/core/domain"
	"github.com/doctorconnect/booking-system/internal/core/ports"
	"github.com/doctorconnect/booking-system/internal/core/service"
	mongodb "github.com/doctorconnect/booking-system/internal/infrastructure/db/mongo"
	redisdb "github.com/doctorconnect/booking-system/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// audit may be nil, in which case auth events are simply not recorded.
func NewRouter(db *mongo.Database, rdb *redis.Client, tokens *service.TokenService, audit ports.AuditSink, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:3000"},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddleware("booking"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	doctorRepo := mongodb.NewDoctorRepository(db)
	appointmentRepo := mongodb.NewAppointmentRepository(db)
	limiter := redisdb.NewLoginLimiter(rdb)

	authService := service.NewAuthService(userRepo, service.NewBcryptHasher(), tokens, limiter, audit, log)
	authService.RegisterRoleProfile(service.NewDoctorRoleProfile(doctorRepo))
	doctorService := service.NewDoctorService(doctorRepo, log)
	appointmentService := service.NewAppointmentService(appointmentRepo, doctorRepo, log)

	authHandler := handler.NewAuthHandler(authService, tokens.TTL())
	doctorHandler := handler.NewDoctorHandler(doctorService)
	appointmentHandler := handler.NewAppointmentHandler(appointmentService)

	session := middleware.Session(tokens)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout)
	auth.GET("/me", authHandler.Me, session)

	// --- Doctor directory (public) ---
	doctor := e.Group("/api/doctor")
	doctor.GET("/all", doctorHandler.List)
	doctor.GET("/:id", doctorHandler.Get)

	// --- Appointments ---
	appointments := e.Group("/api/appointments", session)
	appointments.POST("", appointmentHandler.Create,
		middleware.RequireRoles(domain.RolePatient, domain.RoleAdmin))
	appointments.GET("/doctor/:id", appointmentHandler.ListByDoctor,
		middleware.RequireRoles(domain.RoleDoctor, domain.RoleAdmin))
	appointments.GET("/patient/:id", appointmentHandler.ListByPatient,
		middleware.RequireRoles(domain.RolePatient, domain.RoleAdmin))

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
