package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/idea-kanban/internal/config"
	"github.com/adanyl0v/idea-kanban/internal/delivery/http/v1"
	"github.com/adanyl0v/idea-kanban/internal/services"
)

func MustListenAndServeHTTP() {
	cfg := config.Global()
	if cfg.Env != config.EnvLocal {
		gin.SetMode(gin.ReleaseMode)
	}

	httpCfg := cfg.HTTP

	// The card store lives for as long as the server does.
	cardService := services.NewCardService(globalLogger)
	router := newRouter(globalLogger, httpCfg.MaxBodyBytes, cardService)

	server := &http.Server{
		Addr:              net.JoinHostPort(httpCfg.Host, httpCfg.Port),
		Handler:           router,
		ReadHeaderTimeout: httpCfg.ReadHeaderTimeout,
	}

	go func() {
		globalLogger.Info().
			Str("host", httpCfg.Host).
			Str("port", httpCfg.Port).
			Msg("setting up http server")
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			globalLogger.Error().
				Err(err).
				Msg("failed to listen and serve http")
			panic(err)
		}
	}()

	// Wait for the interrupt signal to gracefully shut down the server.
	quit := make(chan os.Signal, 1)
	// kill (no params) by default sends syscall.SIGTERM
	// kill -2 is syscall.SIGINT
	// kill -9 is syscall.SIGKILL but can't be caught, so don't need to add it
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	globalLogger.Info().
		Msg("shutting down http server")

	ctx, cancel := context.WithTimeout(context.Background(), httpCfg.ShutdownTimeout)
	defer cancel()

	err := server.Shutdown(ctx)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to shutdown http server")
		panic(err)
	}
	globalLogger.Info().Msg("shut down http server")
}

func newRouter(logger zerolog.Logger, maxBodyBytes int64, cardService services.CardService) *gin.Engine {
	handler := v1.New(logger, maxBodyBytes, cardService)

	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(handler.HandleCorrelationID)
	router.Use(handler.HandleAccessLog)
	router.Use(gin.CustomRecovery(handler.HandleRecovery))
	router.Use(handler.HandleBodyLimit)
	router.NoRoute(handler.HandleNoRoute)
	router.NoMethod(handler.HandleNoMethod)

	registerRoutes(router, handler)
	return router
}

func registerRoutes(router gin.IRouter, handler v1.Handler) {
	router.GET("/health", handler.HandleHealth)

	cardsRouter := router.Group("/cards")
	cardsRouter.GET("", handler.HandleGetCards)
	cardsRouter.POST("", handler.HandleCreateCard)
	cardsRouter.GET("/:id", handler.HandleGetCard)
	cardsRouter.PATCH("/:id", handler.HandleUpdateCard)
	cardsRouter.DELETE("/:id", handler.HandleDeleteCard)
}
