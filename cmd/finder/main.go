package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"net/http/pprof"
	"os"
	"time"

	"github.com/matst80/craft-finder/pkg/common"
	"github.com/matst80/craft-finder/pkg/index"
	"github.com/matst80/craft-finder/pkg/messaging"
	"github.com/matst80/craft-finder/pkg/server"
	"github.com/matst80/craft-finder/pkg/tracking"
	"github.com/matst80/craft-finder/pkg/types"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	amqp "github.com/rabbitmq/amqp091-go"
)

var enableProfiling = flag.Bool("profiling", false, "enable profiling endpoints")

func newCache(cfg Config) *server.Cache {
	if cfg.RedisUrl == "" {
		return server.NewCache(cfg.CacheTTL)
	}
	cache, err := server.NewRedisCache(cfg.RedisUrl, cfg.RedisPassword, cfg.CacheTTL)
	if err != nil {
		log.Printf("Redis unavailable, using local cache only: %v", err)
		return server.NewCache(cfg.CacheTTL)
	}
	log.Printf("Result cache distributed via %s", cfg.RedisUrl)
	return cache
}

func listenForDatasetChanges(url string, loader *datasetLoader) (*amqp.Connection, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}
	if err = messaging.DefineTopic(ch, messaging.DefaultPrefix, messaging.DatasetChanged); err != nil {
		conn.Close()
		return nil, err
	}
	err = messaging.ListenToTopic(ch, messaging.DefaultPrefix, messaging.DatasetChanged, func(d amqp.Delivery) error {
		change, err := messaging.DecodeDatasetChange(d)
		if err != nil {
			return err
		}
		log.Printf("Dataset %s changed (%d projects), reloading", change.File, change.Projects)
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		return loader.Load(ctx)
	})
	if err != nil {
		conn.Close()
		return nil, err
	}
	return conn, nil
}

func main() {
	flag.Parse()
	cfg := configFromEnv(os.LookupEnv)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	source, err := cfg.Source(ctx)
	if err != nil {
		log.Fatalf("Failed to configure dataset source: %v", err)
	}
	log.Printf("Dataset source: %s", source.Name())

	catalog := index.NewCatalog()
	loader := &datasetLoader{source: source, catalog: catalog}
	go loader.LoadUntilReady(ctx, cfg.RetryInterval)

	cache := newCache(cfg)
	hooks := []common.ShutdownHook{
		func(context.Context) error {
			cancel()
			return nil
		},
	}

	var trk types.Tracking
	if cfg.RabbitUrl != "" {
		rabbitTracking, err := tracking.NewRabbitTracking(cfg.RabbitUrl)
		if err != nil {
			log.Printf("Tracking disabled: %v", err)
		} else {
			trk = rabbitTracking
			hooks = append(hooks, func(context.Context) error { return rabbitTracking.Close() })
		}
		conn, err := listenForDatasetChanges(cfg.RabbitUrl, loader)
		if err != nil {
			log.Printf("Not listening for dataset changes: %v", err)
		} else {
			hooks = append(hooks, func(context.Context) error { return conn.Close() })
		}
	}
	hooks = append(hooks, func(context.Context) error { return cache.Close() })

	srv := server.NewWebServer(catalog, cache, trk)

	mux := http.NewServeMux()
	mux.HandleFunc("/health", srv.Health)
	mux.Handle("/api/", http.StripPrefix("/api", srv.ClientHandler()))

	debugMux := http.NewServeMux()
	debugMux.HandleFunc("/health", srv.Health)
	debugMux.Handle("/metrics", promhttp.Handler())
	if *enableProfiling {
		log.Println("Profiling enabled")
		debugMux.HandleFunc("/debug/pprof/", pprof.Index)
		debugMux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
		debugMux.HandleFunc("/debug/pprof/profile", pprof.Profile)
		debugMux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
		debugMux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	}

	timeouts := common.LoadTimeoutConfig(common.TimeoutConfig{
		ReadHeader: 5 * time.Second,
		Read:       15 * time.Second,
		Write:      30 * time.Second,
		Idle:       60 * time.Second,
		Shutdown:   15 * time.Second,
		Hook:       5 * time.Second,
	})
	apiServer := common.NewServerWithTimeouts(cfg.ListenAddress, mux, timeouts)
	debugServer := common.NewServerWithTimeouts(cfg.DebugAddress, debugMux, timeouts)
	common.RunServerWithShutdown(apiServer, "craft-finder", timeouts.Shutdown, timeouts.Hook, []*http.Server{debugServer}, hooks...)
}
