package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"sync"
	"time"

	gcfirestore "cloud.google.com/go/firestore"
	cartv1 "github.com/CQSTechSolutions/Veloria-Perfumes-sub001/api/gen/cart/v1"
	catalogv1 "github.com/CQSTechSolutions/Veloria-Perfumes-sub001/api/gen/catalog/v1"
	userv1 "github.com/CQSTechSolutions/Veloria-Perfumes-sub001/api/gen/user/v1"
	cartapp "github.com/CQSTechSolutions/Veloria-Perfumes-sub001/internal/cart/app"
	cartgrpc "github.com/CQSTechSolutions/Veloria-Perfumes-sub001/internal/cart/grpc"
	"github.com/CQSTechSolutions/Veloria-Perfumes-sub001/internal/cart/infra/adapter"
	cartfs "github.com/CQSTechSolutions/Veloria-Perfumes-sub001/internal/cart/infra/firestore"
	cartmem "github.com/CQSTechSolutions/Veloria-Perfumes-sub001/internal/cart/infra/memory"
	cartpg "github.com/CQSTechSolutions/Veloria-Perfumes-sub001/internal/cart/infra/postgres"
	cartredis "github.com/CQSTechSolutions/Veloria-Perfumes-sub001/internal/cart/infra/redis"
	catalogapp "github.com/CQSTechSolutions/Veloria-Perfumes-sub001/internal/catalog/app"
	cgrpc "github.com/CQSTechSolutions/Veloria-Perfumes-sub001/internal/catalog/grpc"
	catalogpg "github.com/CQSTechSolutions/Veloria-Perfumes-sub001/internal/catalog/infra/postgres"
	"github.com/CQSTechSolutions/Veloria-Perfumes-sub001/internal/migrate"
	userapp "github.com/CQSTechSolutions/Veloria-Perfumes-sub001/internal/user/app"
	ugrpc "github.com/CQSTechSolutions/Veloria-Perfumes-sub001/internal/user/grpc"
	userpg "github.com/CQSTechSolutions/Veloria-Perfumes-sub001/internal/user/infra/postgres"
	"github.com/CQSTechSolutions/Veloria-Perfumes-sub001/pkg/config"
	"github.com/CQSTechSolutions/Veloria-Perfumes-sub001/pkg/logger"
	"github.com/CQSTechSolutions/Veloria-Perfumes-sub001/pkg/postgres"
	"github.com/CQSTechSolutions/Veloria-Perfumes-sub001/pkg/redisx"
	"github.com/CQSTechSolutions/Veloria-Perfumes-sub001/pkg/shutdown"
	"github.com/CQSTechSolutions/Veloria-Perfumes-sub001/pkg/tracing"
	"go.uber.org/zap"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"gorm.io/gorm"
)

func main() {
	cfg := config.Load()
	log, err := logger.New(logger.Options{Service: "api", Env: cfg.AppEnv, Level: cfg.LogLevel, AddSource: true})
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger init failed: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	stopTracing, err := tracing.Init(ctx, log, tracing.Config{
		ServiceName: "api",
		Environment: cfg.AppEnv,
		Enabled:     cfg.Tracing.Enabled,
		Endpoint:    cfg.Tracing.Endpoint,
		Insecure:    cfg.Tracing.Insecure,
		SampleRatio: cfg.Tracing.SampleRatio,
	})
	if err != nil {
		log.Fatal("tracing init failed", zap.Error(err))
	}

	db := mustDB(log, cfg)
	defer func() { _ = postgres.Close(db) }()

	// Catalog
	catalogSvc := catalogapp.NewService(catalogpg.NewProductRepo(db), cfg.StoreCurrency)

	// User
	userSvc := userapp.NewService(userpg.NewUserRepo(db))

	// Cart
	cartStore, closeStore := mustCartStore(ctx, log, cfg, db)
	defer closeStore()

	hooks := cartapp.NewLogHooks(log)
	engine := cartapp.NewEngine(
		cartStore,
		adapter.NewCatalogLookup(catalogSvc, cfg.StoreCurrency),
		adapter.NewUserDirectory(userSvc),
		cartapp.EngineOptions{
			LookupConcurrency: cfg.LookupConcurrency,
			LookupTimeout:     cfg.LookupTimeout,
			Hooks:             hooks,
		},
	)
	cartSvc := cartapp.NewService(engine, cartStore, cfg.CommitMaxAttempts, hooks)

	addr := fmt.Sprintf(":%d", cfg.GRPCPort)
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatal("listen failed", zap.Error(err), zap.String("addr", addr))
	}

	grpcServer := grpc.NewServer()
	catalogv1.RegisterCatalogServiceServer(grpcServer, cgrpc.NewServer(catalogSvc, log))
	userv1.RegisterUserServiceServer(grpcServer, ugrpc.NewServer(userSvc, log))
	cartv1.RegisterCartServiceServer(grpcServer, cartgrpc.NewServer(cartSvc, log))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Info("grpc starting", zap.String("addr", addr), zap.String("cart_store", cfg.CartStore), zap.String("currency", cfg.StoreCurrency))
		if err := grpcServer.Serve(lis); err != nil {
			log.Error("grpc serve error", zap.Error(err))
			cancel()
		}
	}()

	<-ctx.Done()
	log.Info("shutdown requested")

	if !shutdown.Within(10*time.Second, grpcServer.GracefulStop, grpcServer.Stop) {
		log.Warn("graceful stop timeout, forced stop")
	}
	wg.Wait()

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer stopCancel()
	if err := stopTracing(stopCtx); err != nil {
		log.Warn("tracing shutdown error", zap.Error(err))
	}
	log.Info("bye")
}

func mustDB(log *zap.Logger, cfg config.Config) *gorm.DB {
	db, err := postgres.Open(postgres.Config{
		Host: cfg.Postgres.Host,
		Port: cfg.Postgres.Port,
		User: cfg.Postgres.User,
		Pass: cfg.Postgres.Pass,
		DB:   cfg.Postgres.DB,
	})
	if err != nil {
		log.Fatal("db open failed", zap.Error(err))
	}
	if err := migrate.Run(db); err != nil {
		log.Fatal("db migrate failed", zap.Error(err))
	}
	return db
}

// mustCartStore picks the cart backend. Catalog and users always live in
// postgres; only cart documents move.
func mustCartStore(ctx context.Context, log *zap.Logger, cfg config.Config, db *gorm.DB) (cartapp.CartStore, func()) {
	switch cfg.CartStore {
	case "memory":
		log.Warn("cart store is in-process memory; carts are lost on restart")
		return cartmem.NewCartStore(), func() {}
	case "redis":
		rdb, err := redisx.Open(ctx, redisx.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal("redis open failed", zap.Error(err))
		}
		return cartredis.NewCartStore(rdb), func() { _ = rdb.Close() }
	case "firestore":
		projectID := cfg.Firestore.ProjectID
		if projectID == "" {
			projectID = gcfirestore.DetectProjectID
		}
		var opts []option.ClientOption
		if cfg.Firestore.CredentialsFile != "" {
			opts = append(opts, option.WithCredentialsFile(cfg.Firestore.CredentialsFile))
		}
		client, err := gcfirestore.NewClient(ctx, projectID, opts...)
		if err != nil {
			log.Fatal("firestore client failed", zap.Error(err))
		}
		return cartfs.NewCartStore(client), func() { _ = client.Close() }
	case "postgres", "":
		return cartpg.NewCartRepo(db), func() {}
	default:
		log.Fatal("unknown CART_STORE", zap.String("cart_store", cfg.CartStore))
		return nil, nil
	}
}
