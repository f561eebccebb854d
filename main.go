package main

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/contactbook/backend/internal/config"
	"github.com/contactbook/backend/internal/db"
	"github.com/contactbook/backend/internal/handler"
	"github.com/contactbook/backend/internal/service"
	"github.com/contactbook/backend/internal/token"
)

// @title Contact Book API
// @version 1.0
// @description Multi-tenant contact book with bearer-token authentication.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	_ = godotenv.Load()
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	cfg := config.Load()

	accessTTL, err := time.ParseDuration(cfg.Auth.JWTAccessTTL)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid JWT_ACCESS_TTL")
	}
	refreshTTL, err := time.ParseDuration(cfg.Auth.JWTRefreshTTL)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid JWT_REFRESH_TTL")
	}
	codec, err := token.NewCodec(cfg.Auth.JWTSecret, accessTTL, refreshTTL)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid auth config")
	}

	ctx := context.Background()
	pool, err := db.NewPostgresPool(ctx, cfg.Postgres)
	if err != nil {
		log.Fatal().Err(err).Msg("postgres connection failed")
	}
	defer pool.Close()

	store := db.NewStore(pool)
	if err := store.EnsureSchema(ctx); err != nil {
		log.Fatal().Err(err).Msg("schema setup failed")
	}

	authSvc := service.NewAuthService(store, codec)
	userSvc := service.NewUserService(store)
	contactSvc := service.NewContactService(store)
	addressSvc := service.NewAddressService(store, store)

	authHandler := handler.NewAuthHandler(authSvc)
	userHandler := handler.NewUserHandler(userSvc)
	contactHandler := handler.NewContactHandler(contactSvc)
	addressHandler := handler.NewAddressHandler(addressSvc)

	r := gin.New()
	r.Use(gin.Recovery(), handler.RequestLogger())

	if cfg.CORS.AllowedOrigins != "" {
		allowCredentials, _ := strconv.ParseBool(cfg.CORS.AllowCredentials)
		r.Use(handler.CORSMiddleware(strings.Split(cfg.CORS.AllowedOrigins, ","), allowCredentials))
	}

	// The gate runs on every route; whitelisted routes below simply don't
	// mount RequireAuth.
	r.Use(handler.Authenticate(authSvc))

	r.GET("/ping", handler.Ping)
	r.GET("/openapi.json", handler.OpenAPIDoc)

	r.POST("/api/auth/login", authHandler.Login)
	r.POST("/api/auth/refresh-token", authHandler.Refresh)
	r.POST("/api/users", userHandler.Register)

	authed := r.Group("", handler.RequireAuth())
	authed.DELETE("/api/auth/logout", authHandler.Logout)
	authed.GET("/api/user/current", userHandler.Current)
	authed.PATCH("/api/user/current", userHandler.Update)

	authed.POST("/api/contacts", contactHandler.Create)
	authed.GET("/api/contacts", contactHandler.Search)
	authed.GET("/api/contacts/:contactId", contactHandler.Get)
	authed.PUT("/api/contacts/:contactId", contactHandler.Update)
	authed.DELETE("/api/contacts/:contactId", contactHandler.Delete)

	authed.POST("/api/contacts/:contactId/addresses", addressHandler.Create)
	authed.GET("/api/contacts/:contactId/addresses", addressHandler.List)
	authed.GET("/api/contacts/:contactId/addresses/:addressId", addressHandler.Get)
	authed.PUT("/api/contacts/:contactId/addresses/:addressId", addressHandler.Update)
	authed.DELETE("/api/contacts/:contactId/addresses/:addressId", addressHandler.Delete)

	log.Info().Str("addr", cfg.Server.Addr).Msg("starting server")
	if err := r.Run(cfg.Server.Addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
