// Command rowcheck validates a CSV file against a YAML schema and prints one
// line per rejected cell. It exits with status 1 when any cell failed.
//
// Configuration comes from the environment (and an optional .env file):
//
//	ROWCHECK_SCHEMA       schema file (required)
//	ROWCHECK_INPUT        CSV file; stdin when empty
//	ROWCHECK_CATALOG      message catalog file or directory
//	ROWCHECK_LANG         catalog language, default "en"
//	ROWCHECK_NULL_TOKENS  extra null tokens, comma separated
//	ROWCHECK_LOG_LEVEL    debug, info, warn or error
//	ROWCHECK_LOG_FORMAT   text or json
//	ROWCHECK_HEADER_ROW   row number of the header line, default 1
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/rowkit/pkg/config"
	"github.com/dmitrymomot/rowkit/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cfg Config
	if err := config.Load(&cfg, config.WithPrefix("ROWCHECK_")); err != nil {
		logger.New(logger.WithTextFormatter()).Error("failed to load configuration", logger.Error(err))
		os.Exit(2)
	}

	log := cfg.Logger(os.Stderr, logger.WithService("rowcheck"))

	err := run(ctx, cfg, os.Stdin, os.Stdout, log)
	switch {
	case errors.Is(err, ErrRowsFailed):
		os.Exit(1)
	case err != nil:
		log.ErrorContext(ctx, "rowcheck failed", logger.Error(err))
		os.Exit(2)
	}
}
