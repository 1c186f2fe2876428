package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Purkaitrohit/House-Price-Prediction/config"
	"github.com/Purkaitrohit/House-Price-Prediction/db"
	"github.com/Purkaitrohit/House-Price-Prediction/handlers"
	"github.com/Purkaitrohit/House-Price-Prediction/inference"
	"github.com/Purkaitrohit/House-Price-Prediction/observability"
	"github.com/Purkaitrohit/House-Price-Prediction/routes"
	"github.com/Purkaitrohit/House-Price-Prediction/services"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
)

const (
	shutdownTimeout = 10 * time.Second

	listenerHTTP = "http"
	listenerGRPC = "grpc"
)

var (
	// metricsRegisterer and metricsGatherer back /metrics.
	metricsRegisterer prometheus.Registerer = prometheus.DefaultRegisterer
	metricsGatherer   prometheus.Gatherer   = prometheus.DefaultGatherer

	// onListening is called once per bound listener.
	onListening = func(name string, addr net.Addr) {}
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the prediction web server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}

	logger, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.TracingEnabled {
		shutdownTracer, err := config.InitTracer(ctx)
		if err != nil {
			return err
		}
		defer func() {
			if err := shutdownTracer(context.Background()); err != nil {
				logger.Warn("Failed to shut down tracer", zap.Error(err))
			}
		}()
	}

	metrics := observability.NewMetrics(metricsRegisterer)

	predictor, holder, closePredictor, err := newPredictor(cfg, logger, metrics)
	if err != nil {
		return err
	}
	defer func() {
		if err := closePredictor(); err != nil {
			logger.Warn("Error closing predictor", zap.Error(err))
		}
	}()

	// Prediction history is optional
	var store services.PredictionStore
	if cfg.Database.Enabled {
		database, err := db.NewDB(ctx, cfg.Database, logger)
		if err != nil {
			return err
		}
		defer func() {
			if err := db.Close(database); err != nil {
				logger.Warn("Error closing DB connection", zap.Error(err))
			}
		}()
		store = services.NewPredictionStore(database)
	} else {
		logger.Info("Prediction history disabled")
	}

	serviceManager := services.NewServiceManager(predictor, store, metrics, logger, cfg.CurrencySymbol)
	handlerManager := handlers.NewHandlerManager(serviceManager)

	r, err := routes.SetupRoutes(handlerManager, routes.Options{Config: cfg, Logger: logger, Gatherer: metricsGatherer})
	if err != nil {
		return err
	}

	httpLis, err := net.Listen("tcp", ":"+cfg.Port)
	if err != nil {
		return fmt.Errorf("failed to listen on port %s: %w", cfg.Port, err)
	}
	var grpcLis net.Listener
	if cfg.GRPCListenAddr != "" {
		grpcLis, err = net.Listen("tcp", cfg.GRPCListenAddr)
		if err != nil {
			_ = httpLis.Close()
			return fmt.Errorf("failed to listen on %s: %w", cfg.GRPCListenAddr, err)
		}
	}

	srv := &http.Server{
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("🚀 House price service starting", zap.Stringer("addr", httpLis.Addr()))
		onListening(listenerHTTP, httpLis.Addr())
		if err := srv.Serve(httpLis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logger.Info("Shutting down HTTP server")
		return srv.Shutdown(shutdownCtx)
	})

	if cfg.ModelWatch && holder != nil {
		g.Go(func() error { return holder.Watch(gctx) })
	}

	if grpcLis != nil {
		grpcServer := grpc.NewServer()
		inference.RegisterInferenceServer(grpcServer, predictor)

		g.Go(func() error {
			logger.Info("gRPC inference server starting", zap.Stringer("addr", grpcLis.Addr()))
			onListening(listenerGRPC, grpcLis.Addr())
			return grpcServer.Serve(grpcLis)
		})
		g.Go(func() error {
			<-gctx.Done()
			grpcServer.GracefulStop()
			return nil
		})
	}

	return g.Wait()
}
