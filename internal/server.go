package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/amankaushik/achilles-workout-tracker/internal/config"
	"github.com/amankaushik/achilles-workout-tracker/internal/db"
	"github.com/amankaushik/achilles-workout-tracker/internal/middleware"
	"github.com/amankaushik/achilles-workout-tracker/internal/stats"
	statsmcp "github.com/amankaushik/achilles-workout-tracker/internal/stats/mcp"
	"github.com/amankaushik/achilles-workout-tracker/internal/telemetry/metrics"
	"github.com/amankaushik/achilles-workout-tracker/internal/telemetry/tracing"
	"github.com/amankaushik/achilles-workout-tracker/internal/workouts"
	"github.com/amankaushik/achilles-workout-tracker/pkg"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/extra/redisotel/v8"
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

const (
	dbName          = "achilles"
	mirrorTTL       = 30 * 24 * time.Hour
	megabyte        = 1024 * 1024
	shutdownTimeout = 15 * time.Second
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string
	apiTokenHash      string

	config      *config.Config
	dbPool      *pgxpool.Pool
	redisClient *redis.Client

	workoutsService *workouts.Service
	analyzer        *stats.Analyzer

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	APITokenHash            string
	RedisPassword           string
	PostgresPassword        string
	VersionInfo             string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDB,
		DBUser:         cfg.PostgresUser,
		DBPassword:     params.PostgresPassword,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	} else if err := db.Migrate(ctx, dbPool); err != nil {
		log.Errorf("failed to migrate db schema: %s", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": dbName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("achilles", "backend", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})
	if params.HoneycombTracingEnabled {
		rdb.AddHook(redisotel.NewTracingHook())
	}

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	otelShutdown := func() {}
	if params.HoneycombTracingEnabled {
		otelShutdown, err = tracing.HoneycombSetup("achilles-backend")
		if err != nil {
			return nil, err
		}
	}

	workoutsService := workouts.NewService(
		workouts.NewRepo(dbPool),
		workouts.NewMirror(rdb, mirrorTTL),
		workouts.WithMetrics(metricsManager),
	)
	analyzer := stats.NewAnalyzer(
		workoutsService,
		stats.WithCache(
			cfg.StatsCacheSizeMB*megabyte,
			time.Duration(cfg.StatsCacheTTLSeconds)*time.Second,
		),
		stats.WithMetrics(metricsManager),
	)
	workoutsService.OnChange(func(_ context.Context, sessionID string) {
		analyzer.Invalidate(sessionID)
	})

	return &Server{
		config:       cfg,
		dbPool:       dbPool,
		redisClient:  rdb,
		versionInfo:  params.VersionInfo,
		apiTokenHash: params.APITokenHash,

		workoutsService: workoutsService,
		analyzer:        analyzer,

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("achilles-router"))

	r.HandleFunc("/", s.handleRoot).Methods("GET").Name("root")

	sessionsRouter := r.PathPrefix("/sessions/{sid}").Subrouter()
	sessionsRouter.Use(middleware.RateLimit(
		redis_rate.NewLimiter(s.redisClient),
		"sessions",
		s.config.WriteRateLimit,
		s.metricsManager,
		http.MethodPut, http.MethodDelete,
	))

	workoutsHandler := workouts.NewHandler(s.workoutsService)
	sessionsRouter.HandleFunc("/workouts", workoutsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-workouts")
	sessionsRouter.HandleFunc("/workouts/{key}", workoutsHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-workout")
	sessionsRouter.HandleFunc("/workouts/{key}", workoutsHandler.HandleSave).Methods("PUT", "OPTIONS").Name("save-workout")
	sessionsRouter.HandleFunc("/workouts/{key}", workoutsHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-workout")
	sessionsRouter.HandleFunc("/phases/{phase}/weeks/{week}/has-data", workoutsHandler.HandleHasWeekData).Methods("GET", "OPTIONS").Name("has-week-data")

	statsHandler := stats.NewHandler(s.analyzer)
	sessionsRouter.HandleFunc("/stats/overview", statsHandler.HandleOverview).Methods("GET", "OPTIONS").Name("stats-overview")
	sessionsRouter.HandleFunc("/stats/exercises", statsHandler.HandleExercises).Methods("GET", "OPTIONS").Name("stats-exercises")
	sessionsRouter.HandleFunc("/stats/exercises/{name}/progression", statsHandler.HandleProgression).Methods("GET", "OPTIONS").Name("stats-progression")
	sessionsRouter.HandleFunc("/stats/exercises/{name}/record", statsHandler.HandleRecord).Methods("GET", "OPTIONS").Name("stats-record")
	sessionsRouter.HandleFunc("/stats/weekly", statsHandler.HandleWeekly).Methods("GET", "OPTIONS").Name("stats-weekly")
	sessionsRouter.HandleFunc("/stats/calendar", statsHandler.HandleCalendar).Methods("GET", "OPTIONS").Name("stats-calendar")
	sessionsRouter.HandleFunc("/stats/streak", statsHandler.HandleStreak).Methods("GET", "OPTIONS").Name("stats-streak")
	sessionsRouter.HandleFunc("/stats/most-improved", statsHandler.HandleMostImproved).Methods("GET", "OPTIONS").Name("stats-most-improved")

	if s.config.MCPEnabled {
		mcpServer := statsmcp.NewServer(s.dbPool, s.analyzer)
		mcpHandler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
			return mcpServer
		}, nil)
		r.PathPrefix("/mcp").Handler(otelhttp.NewHandler(mcpHandler, "mcp")).Name("mcp")
	}

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "DELETE", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(
		middleware.NewBcryptTokenChecker(s.apiTokenHash),
	)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	msg := "achilles backend up"
	if s.versionInfo != "" {
		msg += " (" + s.versionInfo + ")"
	}
	pkg.WriteResponse(w, pkg.ContentType.Text, msg, http.StatusOK)
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
	metricsRouter.Handle(s.config.PrometheusMetricsPath, promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
	))
	metricsAddr := net.JoinHostPort(s.config.Host, s.config.PrometheusMetricsPort)
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

	ctx, timeoutCancel := context.WithTimeout(context.Background(), shutdownTimeout)
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
