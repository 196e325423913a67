// Package main runs the stats MCP server over stdio, for local use from an editor.
// The backend mounts the same server at /mcp when mcp_enabled is set.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/amankaushik/achilles-workout-tracker/internal/config"
	"github.com/amankaushik/achilles-workout-tracker/internal/db"
	"github.com/amankaushik/achilles-workout-tracker/internal/stats"
	statsmcp "github.com/amankaushik/achilles-workout-tracker/internal/stats/mcp"
	"github.com/amankaushik/achilles-workout-tracker/internal/workouts"

	"github.com/modelcontextprotocol/go-sdk/mcp"
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
		log.Fatalf("load config: %s", err)
	}

	ctx := context.Background()
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDB,
		DBUser:     cfg.PostgresUser,
		DBPassword: os.Getenv("ACHILLES_POSTGRES_PASS"),
	})
	if err != nil {
		log.Fatalf("db pool: %s", err)
	}
	defer dbPool.Close()

	// no redis mirror and no cache: every tool call reads the db
	workoutsService := workouts.NewService(workouts.NewRepo(dbPool), nil)
	analyzer := stats.NewAnalyzer(workoutsService, stats.WithCache(0, 0))
	server := statsmcp.NewServer(dbPool, analyzer)

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatal(err)
	}
}
