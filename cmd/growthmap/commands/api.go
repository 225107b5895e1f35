package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/wonny/growthmap/internal/api"
	"github.com/wonny/growthmap/internal/api/handlers"
	"github.com/wonny/growthmap/internal/scheduler"
	"github.com/wonny/growthmap/internal/scheduler/jobs"
	"github.com/wonny/growthmap/internal/session"
	"github.com/wonny/growthmap/pkg/redis"
)

// apiCmd represents the api command
var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "API 서버 시작",
	Long: `Start the dashboard REST API server.

Endpoints:
  GET  /health
  GET  /api/dataset                 - records (?sector=..., ?seed=...)
  POST /api/dataset/invalidate      - drop the session dataset
  GET  /api/sectors
  GET  /api/macro
  GET  /api/stocks/{ticker}         - detail + action
  GET  /api/stocks/{ticker}/trend
  GET  /api/stocks/{ticker}/volume
  GET  /api/stocks/{ticker}/card    - HTML action card
  GET  /ws/stocks/{ticker}/volume   - websocket volume stream

Sessions are selected with the X-Session-ID header or ?session=.

Example:
  go run ./cmd/growthmap api --port 8080`,
	RunE: runAPIServer,
}

var (
	apiPort        string
	streamInterval time.Duration
)

func init() {
	rootCmd.AddCommand(apiCmd)

	apiCmd.Flags().StringVar(&apiPort, "port", "", "API 서버 포트 (default: PORT)")
	apiCmd.Flags().DurationVar(&streamInterval, "stream-interval", 2*time.Second, "websocket volume push interval")
}

func runAPIServer(cmd *cobra.Command, args []string) error {
	fmt.Println("=== Growth & Liquidity Tracker API ===")

	// 1. Config, logger, builder
	cfg, log, builder, err := bootstrap(cmd)
	if err != nil {
		return err
	}
	if apiPort != "" {
		cfg.Port = apiPort
	}

	log.WithFields(map[string]interface{}{
		"port": cfg.Port,
		"env":  cfg.Env,
		"seed": cfg.Dataset.Seed,
	}).Info("Initializing API server")

	// 2. Optional Redis snapshot store
	redisClient, err := redis.New(cfg)
	if err != nil {
		return fmt.Errorf("connect to redis: %w", err)
	}
	defer redisClient.Close()

	var snapshots session.SnapshotStore
	if redisClient.Enabled() {
		snapshots = session.NewRedisSnapshots(redis.NewCache(redisClient, "growthmap"), cfg.Redis.SnapshotTTL)
		log.Info("Redis snapshot store enabled")
	}

	// 3. Session store + sweep schedule
	store := session.NewStore(builder, snapshots, cfg.Session.IdleTTL, log)

	sched := scheduler.New(log)
	if err := sched.AddJob(jobs.NewSessionSweepJob(store, cfg.Session.SweepSchedule, log)); err != nil {
		return fmt.Errorf("schedule session sweep: %w", err)
	}
	sched.Start()
	defer sched.Stop()
	log.Infof("Session sweep scheduled: %s (idle ttl %s)", cfg.Session.SweepSchedule, cfg.Session.IdleTTL)

	// 4. Handlers, router, server
	limiter := rate.NewLimiter(rate.Limit(cfg.RateLimit.RPS), cfg.RateLimit.Burst)
	dashboard := handlers.NewDashboardHandler(store, cfg.Dataset.Seed, log)
	stream := handlers.NewStreamHandler(store, cfg.Dataset.Seed, streamInterval, log)

	router := api.NewRouter(dashboard, stream, limiter, log)
	server := api.New(cfg, log, router)

	// 5. Start with graceful shutdown
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	fmt.Printf("\n✅ Server running on http://localhost:%s\n", cfg.Port)
	fmt.Println("\nPress Ctrl+C to stop")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-quit:
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Info("Server stopped")
	return nil
}
