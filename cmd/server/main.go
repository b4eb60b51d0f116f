package main

import (
	"context"
	"database/sql"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"google.golang.org/grpc"

	"github.com/rl1809/food-order/internal/adapter/handler"
	"github.com/rl1809/food-order/internal/adapter/storage"
	"github.com/rl1809/food-order/internal/config"
	"github.com/rl1809/food-order/internal/core/service"
	"github.com/rl1809/food-order/internal/port"
)

const (
	connectTimeout  = 10 * time.Second
	shutdownTimeout = 5 * time.Second
	readTimeout     = 30 * time.Second
	writeTimeout    = 30 * time.Second
)

type store interface {
	port.CatalogRepository
	port.OrderRepository
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}

	log := logrus.New()
	log.SetLevel(cfg.Log.Level)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repo, closeStore, err := openStore(ctx, cfg.Store, log)
	if err != nil {
		log.Fatalf("failed to open %s store: %v", cfg.Store.Driver, err)
	}

	// Initialize service
	catalogService := service.NewCatalogService(repo)
	orderService := service.NewOrderService(repo, repo)

	// Initialize gRPC server
	grpcServer := grpc.NewServer()
	handler.RegisterFoodOrderServer(grpcServer, handler.NewGRPCHandler(catalogService, orderService, log))

	lis, err := net.Listen("tcp", cfg.GRPC.Addr)
	if err != nil {
		log.Fatalf("failed to listen: %v", err)
	}

	go func() {
		log.Infof("gRPC server listening on %s", cfg.GRPC.Addr)
		if err := grpcServer.Serve(lis); err != nil {
			log.Errorf("gRPC server error: %v", err)
		}
	}()

	// Initialize HTTP server
	httpHandler := handler.NewHTTPHandler(catalogService, orderService, log)
	httpServer := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      handler.NewRouter(httpHandler, log),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	go func() {
		log.Infof("HTTP server listening on %s", cfg.HTTP.Addr)
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			log.Errorf("HTTP server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	httpServer.Shutdown(shutdownCtx)
	log.Info("HTTP server stopped")

	grpcServer.GracefulStop()
	log.Info("gRPC server stopped")

	closeStore(shutdownCtx)
	log.Info("connections closed")
}

// openStore builds the configured adapter. A store that cannot be reached
// yet is logged and returned anyway; requests fail until it comes up.
func openStore(ctx context.Context, cfg config.StoreConfig, log logrus.FieldLogger) (store, func(context.Context), error) {
	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	switch cfg.Driver {
	case config.StoreMySQL:
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			return nil, nil, err
		}
		db.SetMaxOpenConns(50)
		db.SetMaxIdleConns(25)
		db.SetConnMaxLifetime(5 * time.Minute)

		if err := db.PingContext(pingCtx); err != nil {
			log.WithError(err).Error("MySQL connection failed")
		} else if err := storage.MigrateMySQL(db); err != nil {
			log.WithError(err).Error("MySQL migration failed")
		} else {
			log.Info("connected to mysql")
		}
		return storage.NewMySQLAdapter(db), func(context.Context) { db.Close() }, nil

	case config.StoreRedis:
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			log.WithError(err).Error("Redis connection failed")
		} else {
			log.Info("connected to redis")
		}
		return storage.NewRedisAdapter(rdb), func(context.Context) { rdb.Close() }, nil

	default:
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
		if err != nil {
			return nil, nil, err
		}
		if err := client.Ping(pingCtx, nil); err != nil {
			log.WithError(err).Error("MongoDB connection failed")
		} else {
			log.Info("connected to mongodb")
		}
		closeFn := func(ctx context.Context) { client.Disconnect(ctx) }
		return storage.NewMongoAdapter(client.Database(cfg.MongoDatabase)), closeFn, nil
	}
}
