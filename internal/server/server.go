// Package server wires configuration, storage, services and transport into a
// runnable HTTP server.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	mongodriver "go.mongodb.org/mongo-driver/mongo"

	"github.com/stockroom/inventory-api/internal/api"
	"github.com/stockroom/inventory-api/internal/core/domain"
	"github.com/stockroom/inventory-api/internal/core/service"
	"github.com/stockroom/inventory-api/internal/infrastructure/auth"
	"github.com/stockroom/inventory-api/internal/infrastructure/db/mongo"
	"github.com/stockroom/inventory-api/internal/infrastructure/db/redis"
	"github.com/stockroom/inventory-api/internal/infrastructure/notify"
	"github.com/stockroom/inventory-api/internal/infrastructure/queue"
	"github.com/stockroom/inventory-api/internal/pkg/config"
	"github.com/stockroom/inventory-api/pkg/logger"
)

const shutdownTimeout = 15 * time.Second

// Server owns the HTTP listener and every connection opened for it.
type Server struct {
	cfg     *config.Config
	log     zerolog.Logger
	echo    *echo.Echo
	mongo   *mongodriver.Client
	redis   *goredis.Client
	gateway io.Closer
	retrier *queue.Retrier
}

// New connects to MongoDB (required), Redis (optional) and the notification
// transport, ensures indexes, and builds the router.
func New(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*Server, error) {
	mongoClient, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return nil, err
	}
	if err := mongo.EnsureIndexes(ctx, db); err != nil {
		_ = mongoClient.Disconnect(ctx)
		return nil, err
	}

	rdb, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
	if err != nil {
		_ = mongoClient.Disconnect(ctx)
		return nil, err
	}
	if rdb == nil {
		log.Warn().Msg("REDIS_ADDR not set, idempotent order replay disabled")
	}

	gateway, closer, err := notify.New(notify.Options{
		Driver: cfg.Notify.Driver,
		SMTP: notify.SMTPConfig{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			From:     cfg.Notify.From,
			To:       cfg.Notify.To,
		},
		KafkaBrokers:  cfg.Kafka.Brokers,
		KafkaTopic:    cfg.Kafka.Topic,
		RabbitMQURL:   cfg.RabbitMQ.URL,
		RabbitMQQueue: cfg.RabbitMQ.Queue,
	}, logger.Component("notify"))
	if err != nil {
		_ = mongoClient.Disconnect(ctx)
		if rdb != nil {
			_ = rdb.Close()
		}
		return nil, fmt.Errorf("notification gateway: %w", err)
	}

	retrier := queue.NewRetrier(gateway, queue.RetrierConfig{
		Workers:     cfg.Notify.Workers,
		MaxAttempts: cfg.Notify.MaxAttempts,
		Backoff:     cfg.Notify.RetryBackoff,
		SendTimeout: cfg.Notify.Timeout,
	}, logger.Component("retrier"))

	hasher := auth.NewBcryptHasher(cfg.BcryptCost)
	tokens := auth.NewJWTService(cfg.JWTSecret, cfg.TokenTTL)

	orderOpts := []service.OrderOption{
		service.WithRetrier(retrier),
		service.WithNotifyTimeout(cfg.Notify.Timeout),
	}
	if rdb != nil {
		orderOpts = append(orderOpts, service.WithIdempotency(redis.NewIdempotencyStore(rdb)))
	}

	e := api.NewRouter(api.Dependencies{
		Log:    log,
		Tokens: tokens,
		Policy: service.NewPolicy(),
		Users: service.NewAccountService(domain.ScopeUsers,
			mongo.NewAccountRepository(db, domain.ScopeUsers), hasher, tokens, log),
		Registrations: service.NewAccountService(domain.ScopeRegistrations,
			mongo.NewAccountRepository(db, domain.ScopeRegistrations), hasher, tokens, log),
		Catalog: service.NewCatalogService(mongo.NewProductRepository(db), log),
		Orders: service.NewOrderService(
			mongo.NewOrderRepository(db),
			mongo.NewProductRepository(db),
			gateway,
			log,
			orderOpts...,
		),
		Mongo: db,
		Redis: rdb,
	})

	return &Server{
		cfg:     cfg,
		log:     log,
		echo:    e,
		mongo:   mongoClient,
		redis:   rdb,
		gateway: closer,
		retrier: retrier,
	}, nil
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	workerCtx, stopWorkers := context.WithCancel(ctx)
	defer stopWorkers()
	s.retrier.Start(workerCtx)

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("port", s.cfg.Port).Str("env", s.cfg.Env).Msg("starting server")
		if err := s.echo.Start(":" + s.cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		s.close()
		if ok {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := s.echo.Shutdown(shutdownCtx)
	s.close()
	return err
}

func (s *Server) close() {
	if err := s.gateway.Close(); err != nil {
		s.log.Warn().Err(err).Msg("closing notification gateway")
	}
	if s.redis != nil {
		_ = s.redis.Close()
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.mongo.Disconnect(ctx); err != nil {
		s.log.Warn().Err(err).Msg("closing mongo client")
	}
}
