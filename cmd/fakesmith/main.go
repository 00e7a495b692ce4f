package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"

	"github.com/fakesmith/fakesmith"
	"github.com/fakesmith/fakesmith/mcpserver"
)

func main() {
	// Optional .env; absence is fine.
	_ = godotenv.Load()

	// Stdout belongs to the MCP protocol; all diagnostics go to stderr.
	logger := newLogger(os.Getenv("FAKESMITH_LOG_LEVEL"))

	opts := []fakesmith.Option{fakesmith.WithLogger(logger)}
	if raw := os.Getenv("FAKESMITH_SEED"); raw != "" {
		seed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid FAKESMITH_SEED %q: %v\n", raw, err)
			os.Exit(1)
		}
		opts = append(opts, fakesmith.WithSeed(seed))
	}

	engine, err := fakesmith.NewEngine(opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "engine init: %v\n", err)
		os.Exit(1)
	}

	s := mcpserver.New(engine, logger)
	logger.Info("fakesmith serving on stdio", "version", fakesmith.Version)
	if err := server.ServeStdio(s); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newLogger(level string) *slog.Logger {
	lvl := slog.LevelInfo
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
