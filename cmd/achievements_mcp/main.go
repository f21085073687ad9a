// Package main runs the gymrank MCP server over stdio (for local agent use).
// The same MCP server is also mounted on the main backend at /mcp over HTTP.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/2beens/gymrank/internal/achievements"
	"github.com/2beens/gymrank/internal/cache"
	"github.com/2beens/gymrank/internal/config"
	"github.com/2beens/gymrank/internal/db"
	gymrankmcp "github.com/2beens/gymrank/internal/mcp"
	"github.com/2beens/gymrank/internal/profile"
	"github.com/2beens/gymrank/internal/progression"
	"github.com/2beens/gymrank/internal/rank"
	"github.com/2beens/gymrank/internal/telemetry/metrics"
	"github.com/2beens/gymrank/internal/unlocks"
	"github.com/2beens/gymrank/internal/workouts"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	flag.Parse()

	// stdout carries the MCP protocol
	log.SetOutput(os.Stderr)

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx := context.Background()
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		DBUser:         cfg.PostgresUser,
		DBPassword:     cfg.Secrets.PostgresPassword,
		SSLMode:        cfg.PostgresSSLMode,
		TracingEnabled: false,
	})
	if err != nil {
		log.Fatalf("db pool: %v", err)
	}
	defer dbPool.Close()

	workoutsRepo := workouts.NewRepo(dbPool)
	progressionService := progression.NewService(progression.NewServiceParams{
		Evaluator:  achievements.NewEvaluator(achievements.MustDefaultCatalog(), unlocks.Now),
		Ladder:     rank.DefaultLadder(),
		History:    workoutsRepo,
		Bodyweight: profile.NewRepo(dbPool),
		Unlocks:    unlocks.NewStore(dbPool),
		// local only, a short lived process has nothing to share
		Cache:          cache.NewReportCache(cfg.ReportCacheSizeMB, cfg.ReportCacheTTL(), nil),
		MetricsManager: metrics.NewManager("gymrank", "mcp", prometheus.NewRegistry()),
	})

	server := gymrankmcp.NewServer(gymrankmcp.NewContextService(
		gymrankmcp.NewPoolSchemaRepo(dbPool),
		progressionService,
		workoutsRepo,
	))

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatal(err)
	}
}
