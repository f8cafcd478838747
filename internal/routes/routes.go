package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/ubereats-api/internal/auth"
	"github.com/BruksfildServices01/ubereats-api/internal/config"
	"github.com/BruksfildServices01/ubereats-api/internal/db"
	"github.com/BruksfildServices01/ubereats-api/internal/handlers"
	"github.com/BruksfildServices01/ubereats-api/internal/httperr"
	"github.com/BruksfildServices01/ubereats-api/internal/infra/cache"
	"github.com/BruksfildServices01/ubereats-api/internal/middleware"
	ucAuth "github.com/BruksfildServices01/ubereats-api/internal/usecase/auth"
	"github.com/BruksfildServices01/ubereats-api/internal/validators"
)

// NewEngine builds a gin engine with the middleware every route shares.
func NewEngine(cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLog())
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))
	return r
}

// RegisterRoutes wires handlers to the store. kv may be nil, in which case
// restaurant reads go straight to the store.
func RegisterRoutes(r *gin.Engine, store *db.Store, cfg *config.Config, kv cache.KV) {

	// ======================================================
	// INFRA
	// ======================================================
	restaurantRepo := store.Restaurants
	if kv != nil {
		restaurantRepo = cache.NewRestaurantRepository(restaurantRepo, kv, cfg.CacheTTL)
	}

	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.JWTTTL)

	var domains ucAuth.DomainChecker
	if cfg.CheckEmailDomain {
		domains = validators.NewEmailDomainChecker(nil)
	}

	// ======================================================
	// USE CASES
	// ======================================================
	registerUC := ucAuth.NewRegisterUser(store.Users, tokens, domains)
	loginUC := ucAuth.NewLoginUser(store.Users, tokens)
	currentUserUC := ucAuth.NewGetCurrentUser(store.Users)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(registerUC, loginUC)
	meHandler := handlers.NewMeHandler(currentUserUC)
	restaurantHandler := handlers.NewRestaurantHandler(restaurantRepo)
	healthHandler := handlers.NewHealthHandler(store, cfg.Environment, cfg.Version, time.Now())

	r.GET("/", healthHandler.Index)

	api := r.Group("/api")
	{
		api.GET("/health", healthHandler.Health)

		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
			authGroup.GET("/me", middleware.AuthMiddleware(tokens), meHandler.GetMe)
		}

		// Mutations are open to any caller.
		restaurants := api.Group("/restaurants")
		{
			restaurants.GET("", restaurantHandler.List)
			restaurants.GET("/:id", restaurantHandler.Get)
			restaurants.POST("", restaurantHandler.Create)
			restaurants.PUT("/:id", restaurantHandler.Update)
			restaurants.DELETE("/:id", restaurantHandler.Delete)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		httperr.Write(c, http.StatusNotFound, "route_not_found", "Route non trouvée")
	})
}
