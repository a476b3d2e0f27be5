package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/iota-uz/backoffice/internal/server"
	"github.com/iota-uz/backoffice/modules"
	"github.com/iota-uz/backoffice/pkg/application"
	"github.com/iota-uz/backoffice/pkg/configuration"
	"github.com/iota-uz/backoffice/pkg/listing"
	"github.com/iota-uz/backoffice/pkg/metrics"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			configuration.Use().Unload()
			log.Println(r)
			debug.PrintStack()
			os.Exit(1)
		}
	}()

	conf := configuration.Use()
	logger := conf.Logger()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()
	pool, err := pgxpool.New(ctx, conf.Database.Opts)
	if err != nil {
		panic(err)
	}
	defer pool.Close()

	store, err := filterStore(ctx, conf)
	if err != nil {
		panic(err)
	}
	app := application.New(&application.ApplicationOptions{
		Pool: pool,
		Listings: listing.Options{
			Store:        store,
			LiveSessions: conf.Filters.LiveSessions,
			SessionTTL:   conf.Filters.SessionTTL,
			FetchTimeout: conf.Filters.FetchTimeout,
		},
	})
	if err := modules.Load(app, modules.BuiltInModules...); err != nil {
		log.Fatalf("failed to load modules: %v", err)
	}
	if conf.Prometheus.Enabled {
		app.RegisterControllers(metrics.NewPrometheusController(conf.Prometheus.Path))
	}

	serverInstance, err := server.Default(&server.DefaultOptions{
		Logger:        logger,
		Configuration: conf,
		Application:   app,
		Pool:          pool,
	})
	if err != nil {
		log.Fatalf("failed to create server: %v", err)
	}
	logger.WithField("store", conf.Filters.Store).Info("filter state store ready")
	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	log.Printf("Listening on: %s\n", conf.Origin)
	if err := serverInstance.Start(runCtx, conf.SocketAddress); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

func filterStore(ctx context.Context, conf *configuration.Configuration) (listing.Store, error) {
	if conf.Filters.Store != "redis" {
		return listing.NewMemoryStore(conf.Filters.LiveSessions*4, conf.Filters.SessionTTL), nil
	}
	client := redis.NewClient(&redis.Options{Addr: conf.Filters.RedisURL})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return listing.NewRedisStore(client, conf.Filters.KeyPrefix, conf.Filters.SessionTTL), nil
}
