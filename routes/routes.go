package routes

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Purkaitrohit/House-Price-Prediction/config"
	"github.com/Purkaitrohit/House-Price-Prediction/constants"
	"github.com/Purkaitrohit/House-Price-Prediction/handlers"
	"github.com/Purkaitrohit/House-Price-Prediction/middleware"
	"github.com/Purkaitrohit/House-Price-Prediction/templates"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

type Options struct {
	Config   *config.Config
	Logger   *zap.Logger
	Gatherer prometheus.Gatherer
}

func SetupRoutes(hm *handlers.HandlerManager, opts Options) (*gin.Engine, error) {
	cfg := opts.Config
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	gatherer := opts.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(logger), cors.New(corsConfig(cfg.CORSAllowedOrigins)))
	if cfg.TracingEnabled {
		r.Use(otelgin.Middleware(config.ServiceName))
	}

	tmpl, err := templates.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}
	r.SetHTMLTemplate(tmpl)

	limiter := middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst)

	r.GET("/", hm.FormHandler.Show)
	r.POST("/", limiter, hm.FormHandler.Submit)

	api := r.Group("/api/v1")
	{
		api.POST("/predict", limiter, hm.PredictHandler.Predict)
		api.GET("/model", hm.PredictHandler.Model)

		auth := api.Group("")
		auth.Use(middleware.AuthMiddleware([]byte(cfg.JWTSecret)))
		{
			auth.GET("/predictions",
				middleware.RoleAuthorization(constants.RoleAdmin, constants.RoleAnalyst),
				hm.HistoryHandler.List)
		}
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "house-price",
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	return r, nil
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
