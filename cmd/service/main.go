package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"syscall"

	"github.com/amankaushik/achilles-workout-tracker/internal"
	"github.com/amankaushik/achilles-workout-tracker/internal/config"
	"github.com/amankaushik/achilles-workout-tracker/internal/logging"

	log "github.com/sirupsen/logrus"
)

func main() {
	fmt.Println("starting ...")

	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	flag.Parse()

	log.Warnf("---->> running in [%s] environment", *env)

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		panic(err)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogFileName:      cfg.LogsPath,
		LogToStdout:      cfg.LogToStdout,
		LogLevel:         cfg.LogLevel,
		LogFormatJSON:    cfg.LogFormatJSON,
		Rotation: logging.Rotation{
			MaxSizeMB:  cfg.LogMaxSizeMB,
			MaxBackups: cfg.LogMaxBackups,
			MaxAgeDays: cfg.LogMaxAgeDays,
			LocalTime:  cfg.LogLocalTime,
		},
		Environment:      *env,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        os.Getenv("SENTRY_DSN"),
		SentryServerName: cfg.SentryServerName,
	})

	log.Debugf("using port: %d", cfg.Port)
	log.Debugf("using server logs path: [%s]", cfg.LogsPath)

	versionInfo, err := tryGetLastCommitHash()
	if err != nil {
		log.Tracef("failed to get last commit hash / version info: %s", err)
	} else {
		log.Tracef("running version: %s", versionInfo)
	}

	apiTokenHash := os.Getenv("ACHILLES_API_TOKEN_HASH")
	if apiTokenHash == "" {
		log.Errorf("api token hash not set, all authenticated requests will be rejected. use ACHILLES_API_TOKEN_HASH")
	}

	redisPassword := os.Getenv("ACHILLES_REDIS_PASS")
	if redisPassword == "" {
		log.Warnln("redis password not set. use ACHILLES_REDIS_PASS")
	}

	postgresPassword := os.Getenv("ACHILLES_POSTGRES_PASS")

	honeycombEnabled := os.Getenv("HONEYCOMB_ENABLED") == "true"
	if honeycombEnabled {
		if honeycombApiKey := os.Getenv("HONEYCOMB_API_KEY"); honeycombApiKey == "" {
			log.Warnln("HONEYCOMB_API_KEY env var not set")
		}
	} else {
		log.Debugln("honeycomb tracing disabled")
	}

	chOsInterrupt := make(chan os.Signal, 1)
	signal.Notify(chOsInterrupt, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())

	server, err := internal.NewServer(
		ctx,
		internal.NewServerParams{
			Config:                  cfg,
			APITokenHash:            apiTokenHash,
			RedisPassword:           redisPassword,
			PostgresPassword:        postgresPassword,
			VersionInfo:             versionInfo,
			HoneycombTracingEnabled: honeycombEnabled,
		},
	)
	if err != nil {
		log.Fatalf("new server: %s", err)
	}

	server.Serve(cfg.Host, cfg.Port)

	receivedSig := <-chOsInterrupt
	log.Warnf("signal [%s] received, killing everything ...", receivedSig)
	cancel()

	server.GracefulShutdown()
}

// tryGetLastCommitHash will try to get the last commit hash
// assumes that the built main executable is in project root
func tryGetLastCommitHash() (string, error) {
	cmd := exec.Command("/usr/bin/git", "rev-parse", "HEAD")
	stdout, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(stdout)), nil
}
