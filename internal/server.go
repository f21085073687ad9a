package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/gymrank/internal/achievements"
	"github.com/2beens/gymrank/internal/auth"
	"github.com/2beens/gymrank/internal/cache"
	"github.com/2beens/gymrank/internal/config"
	"github.com/2beens/gymrank/internal/db"
	gymrankmcp "github.com/2beens/gymrank/internal/mcp"
	"github.com/2beens/gymrank/internal/middleware"
	"github.com/2beens/gymrank/internal/profile"
	"github.com/2beens/gymrank/internal/progression"
	"github.com/2beens/gymrank/internal/rank"
	"github.com/2beens/gymrank/internal/telemetry/metrics"
	"github.com/2beens/gymrank/internal/telemetry/tracing"
	"github.com/2beens/gymrank/internal/unlocks"
	"github.com/2beens/gymrank/internal/workouts"
	"github.com/2beens/gymrank/pkg"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config       *config.Config
	dbPool       *pgxpool.Pool
	redisClient  *redis.Client
	tokenChecker auth.Checker

	workoutsRepo *workouts.Repo
	progression  *progression.Service

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config      *config.Config
	Catalog     *achievements.Catalog
	VersionInfo string
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config
	dbParams := db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		DBUser:         cfg.PostgresUser,
		DBPassword:     cfg.Secrets.PostgresPassword,
		SSLMode:        cfg.PostgresSSLMode,
		TracingEnabled: cfg.Secrets.HoneycombEnabled,
	}
	if err := db.Migrate(dbParams); err != nil {
		return nil, fmt.Errorf("migrate db: %w", err)
	}

	dbPool, err := db.NewDBPool(ctx, dbParams)
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": cfg.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("gymrank", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: cfg.Secrets.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(cfg.Secrets.HoneycombEnabled, "gymrank-backend", rdb)
	if err != nil {
		return nil, err
	}

	catalog := params.Catalog
	if catalog == nil {
		if catalog, err = achievements.DefaultCatalog(); err != nil {
			return nil, fmt.Errorf("achievements catalog: %w", err)
		}
	}

	workoutsRepo := workouts.NewRepo(dbPool)
	progressionService := progression.NewService(progression.NewServiceParams{
		Evaluator:      achievements.NewEvaluator(catalog, unlocks.Now),
		Ladder:         rank.DefaultLadder(),
		History:        workoutsRepo,
		Bodyweight:     profile.NewRepo(dbPool),
		Unlocks:        unlocks.NewStore(dbPool),
		Cache:          cache.NewReportCache(cfg.ReportCacheSizeMB, cfg.ReportCacheTTL(), rdb),
		MetricsManager: metricsManager,
	})

	return &Server{
		config:       cfg,
		dbPool:       dbPool,
		redisClient:  rdb,
		tokenChecker: auth.NewTokenChecker(cfg.Secrets.APISecretHash, auth.DefaultTTL, rdb),
		versionInfo:  params.VersionInfo,

		workoutsRepo: workoutsRepo,
		progression:  progressionService,

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	r.HandleFunc("/", s.handleRoot).Methods("GET", "OPTIONS").Name("root")

	workoutsHandler := workouts.NewHandler(s.workoutsRepo, s.progression, s.metricsManager)
	r.HandleFunc("/workouts", workoutsHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-workout")
	r.HandleFunc("/workouts/list/page/{page}/size/{size}", workoutsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-workouts")
	r.HandleFunc("/workouts/{id}", workoutsHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-workout")
	r.HandleFunc("/workouts/{id}", workoutsHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-workout")

	profileHandler := profile.NewHandler(profile.NewRepo(s.dbPool), s.progression)
	r.HandleFunc("/profile/weight", profileHandler.HandleAddBodyweight).Methods("POST", "OPTIONS").Name("report-weight")
	r.HandleFunc("/profile/weight", profileHandler.HandleGetBodyweight).Methods("GET", "OPTIONS").Name("get-weight")

	progressionHandler := progression.NewHandler(s.progression)
	r.HandleFunc("/achievements", progressionHandler.HandleGetAchievements).Methods("GET", "OPTIONS").Name("achievements")
	r.HandleFunc("/achievements/{id}/progress", progressionHandler.HandleGetProgress).Methods("GET", "OPTIONS").Name("achievement-progress")
	r.HandleFunc("/rank", progressionHandler.HandleGetRank).Methods("GET", "OPTIONS").Name("rank")
	r.HandleFunc("/rank/tiers", progressionHandler.HandleGetTiers).Methods("GET", "OPTIONS").Name("rank-tiers")

	// every recompute reads the whole history, keep them rare
	recomputeSubrouter := r.PathPrefix("/achievements").Subrouter()
	recomputeSubrouter.
		HandleFunc("/recompute", progressionHandler.HandleRecompute).
		Methods("POST", "OPTIONS").Name("recompute")
	recomputeSubrouter.Use(middleware.RateLimit(
		redis_rate.NewLimiter(s.redisClient),
		s.metricsManager,
		"recompute",
		s.config.RecomputeRateLimitPerMin,
	))

	mcpService := gymrankmcp.NewContextService(
		gymrankmcp.NewPoolSchemaRepo(s.dbPool),
		s.progression,
		s.workoutsRepo,
	)
	mcpServer := gymrankmcp.NewServer(mcpService)
	mcpHandler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return mcpServer
	}, nil)
	r.PathPrefix("/mcp").Handler(otelhttp.NewHandler(mcpHandler, "mcp")).Name("mcp")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "DELETE", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.tokenChecker)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(middleware.CorsParams{
		AllowedOrigins: s.config.CorsAllowedOrigins,
		TrustedAgents:  s.config.CorsTrustedAgents,
	}))
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.LimitAndDrainRequest(middleware.DefaultMaxBodyBytes))

	return r
}

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	msg := "gymrank is up"
	if s.versionInfo != "" {
		msg += ", version: " + s.versionInfo
	}
	pkg.WriteTextResponseOK(w, msg)
}

func (s *Server) Serve(host string, port int) {
	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      s.routerSetup(),
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	s.otelShutdown()
	log.Trace("otel shut down ...")

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
