// Package config reads typed configuration from environment variables using
// github.com/caarlos0/env/v11, optionally seeded from .env files through
// github.com/joho/godotenv.
//
// Parse reads a fresh value; Load caches one value per type and prefix so that
// repeated lookups in long-running code are cheap. Any type implementing
// encoding.TextUnmarshaler (slog.Level, logger.Format) can be used as a field.
//
//	type Config struct {
//		LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
//		Input    string     `env:"INPUT,required"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, config.WithPrefix("ROWCHECK_")); err != nil {
//		return err
//	}
package config
