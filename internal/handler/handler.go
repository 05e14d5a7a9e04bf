package handler

import (
	"errors"
	"net/http"
	"player-data-api/internal/model"
	"player-data-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Handler struct {
	playerService service.PlayerService
	accessLog     service.AccessLogService
	logger        zerolog.Logger
}

func NewHandler(playerService service.PlayerService, accessLog service.AccessLogService, logger zerolog.Logger) *Handler {
	if accessLog == nil {
		accessLog = service.NopAccessLog{}
	}
	return &Handler{
		playerService: playerService,
		accessLog:     accessLog,
		logger:        logger,
	}
}

func (h *Handler) SetupRoutes() *gin.Engine {
	router := gin.New()

	// Middlewares
	router.Use(
		RequestIDMiddleware(),
		LoggingMiddleware(h.logger),
		MetricsMiddleware(),
		gin.Recovery(),
	)

	// Swagger, metrics and health checks
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Player routes are audited
	player := router.Group("", AccessLogMiddleware(h.accessLog))
	player.GET(model.EndpointPlayerData.String(), h.GetPlayerData)
	player.GET(model.EndpointEncryptedData.String(), h.GetEncryptedData)

	return router
}

func (h *Handler) handleError(c *gin.Context, err error) {
	var reqErr *model.RequestError
	if errors.As(err, &reqErr) {
		h.logger.Debug().Err(err).Str("path", c.Request.URL.Path).Msg("request rejected")
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: reqErr.Message})
		return
	}

	h.logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("internal server error")
	c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "internal server error"})
}
