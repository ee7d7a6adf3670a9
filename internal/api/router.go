package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/memoboard/memoboard-api/docs"
	"github.com/memoboard/memoboard-api/internal/api/handler"
	"github.com/memoboard/memoboard-api/internal/api/middleware"
	"github.com/memoboard/memoboard-api/internal/core/ports"
)

// Deps carries everything the router needs. Mongo and Redis are only used by
// the readiness probe; when either is nil the probe routes are skipped, which
// lets tests drive the full HTTP surface against in-memory fakes.
type Deps struct {
	Auth      ports.AuthService
	Notes     ports.NoteService
	Profiles  ports.ProfileService
	Sessions  ports.SessionStore
	JWTSecret string
	Mongo     *mongo.Database
	Redis     *redis.Client
	Log       zerolog.Logger
}

// promMiddleware registers its collectors on the default registry, which
// only tolerates one registration per process.
var promMiddleware = echoprometheus.NewMiddleware("memoboard")

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(promMiddleware)

	// --- Dependencies ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	noteHandler := handler.NewNoteHandler(deps.Notes)
	profileHandler := handler.NewProfileHandler(deps.Profiles)
	authGuard := middleware.Auth(deps.JWTSecret, deps.Sessions)

	// --- Public routes ---
	e.GET("/sign-up/", authHandler.SignUpForm)
	e.POST("/sign-up/", authHandler.SignUp)
	e.GET("/login/", authHandler.LoginPrompt)
	e.POST("/login/", authHandler.Login)
	e.GET("/profile/:username/", profileHandler.Profile)

	// --- Authenticated routes (guard redirects to /login/ otherwise) ---
	auth := e.Group("", authGuard)
	auth.POST("/logout/", authHandler.Logout)
	auth.GET("/notes-list/", noteHandler.List)
	auth.GET("/note-create/", noteHandler.CreateForm)
	auth.POST("/note-create/", noteHandler.Create)
	auth.GET("/note-edit/:id/", noteHandler.EditForm)
	auth.POST("/note-edit/:id/", noteHandler.Edit)
	auth.POST("/note-delete/:id/", noteHandler.Delete)
	auth.GET("/account/", profileHandler.Account)
	auth.POST("/account/", profileHandler.AccountUpdate)

	// --- Observability ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	e.GET("/health", healthHandler.Liveness) // liveness  – is the process alive?
	if deps.Mongo != nil && deps.Redis != nil {
		healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Mongo, deps.Redis)
		e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	}

	return e
}
