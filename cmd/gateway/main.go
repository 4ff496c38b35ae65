package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"sync"
	"time"

	cartv1 "github.com/CQSTechSolutions/Veloria-Perfumes-sub001/api/gen/cart/v1"
	catalogv1 "github.com/CQSTechSolutions/Veloria-Perfumes-sub001/api/gen/catalog/v1"
	userv1 "github.com/CQSTechSolutions/Veloria-Perfumes-sub001/api/gen/user/v1"
	"github.com/CQSTechSolutions/Veloria-Perfumes-sub001/pkg/config"
	"github.com/CQSTechSolutions/Veloria-Perfumes-sub001/pkg/logger"
	"github.com/CQSTechSolutions/Veloria-Perfumes-sub001/pkg/shutdown"
	"github.com/CQSTechSolutions/Veloria-Perfumes-sub001/pkg/tracing"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/credentials/insecure"
)

func main() {
	cfg := config.Load()
	log, err := logger.New(logger.Options{
		Service:   "gateway",
		Env:       cfg.AppEnv,
		Level:     cfg.LogLevel,
		AddSource: true,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger init failed: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	root := context.Background()
	ctx, cancel := shutdown.WithSignals(root)
	defer cancel()

	stopTracing, err := tracing.Init(ctx, log, tracing.Config{
		ServiceName: "gateway",
		Environment: cfg.AppEnv,
		Enabled:     cfg.Tracing.Enabled,
		Endpoint:    cfg.Tracing.Endpoint,
		Insecure:    cfg.Tracing.Insecure,
		SampleRatio: cfg.Tracing.SampleRatio,
	})
	if err != nil {
		log.Fatal("tracing init failed", zap.Error(err))
	}

	conn, err := grpc.NewClient(cfg.CartAPIAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatal("cart api client failed", zap.Error(err), zap.String("addr", cfg.CartAPIAddr))
	}
	defer func() { _ = conn.Close() }()

	if cfg.JWTSecret == "" {
		log.Warn("JWT_SECRET is empty; trusting " + devUserHeader + " and " + devRoleHeader + " headers")
	}
	if cfg.AppEnv == "prod" || cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := newRouter(routerConfig{
		Cart:           newCartHandler(cartv1.NewCartServiceClient(conn)),
		Catalog:        newCatalogHandler(catalogv1.NewCatalogServiceClient(conn)),
		Users:          newUserHandler(userv1.NewUserServiceClient(conn)),
		JWTSecret:      cfg.JWTSecret,
		AllowedOrigins: cfg.CORSAllowedOrigins,
		Ready: func() bool {
			s := conn.GetState()
			if s == connectivity.Idle {
				conn.Connect()
			}
			return s != connectivity.TransientFailure && s != connectivity.Shutdown
		},
	})

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Info("http server starting", zap.String("addr", addr), zap.String("cart_api", cfg.CartAPIAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http server error", zap.Error(err))
			cancel()
		}
	}()

	<-ctx.Done()
	log.Info("shutdown requested")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown error", zap.Error(err))
	}

	wg.Wait()
	if err := stopTracing(shutdownCtx); err != nil {
		log.Warn("tracing shutdown error", zap.Error(err))
	}
	log.Info("bye")
}
