package main

import (
	"context"
	"errors"

	goredis "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/categorizr/pkg/categorizr"
	"github.com/dmitrymomot/categorizr/pkg/config"
	"github.com/dmitrymomot/categorizr/pkg/devicecache"
	"github.com/dmitrymomot/categorizr/pkg/devicectx"
	"github.com/dmitrymomot/categorizr/pkg/httpserver"
	"github.com/dmitrymomot/categorizr/pkg/logger"
	"github.com/dmitrymomot/categorizr/pkg/redis"
	"github.com/dmitrymomot/categorizr/pkg/requestid"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the device detection HTTP service",
		Long: `Serves GET /detect, /health/live and /health/ready.

Logs are JSON at info level unless APP_ENV=development, which switches to
coloured text at debug level with one line per classified request. LOG_LEVEL
overrides the level.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(ctx context.Context) error {
	var (
		logCfg    logger.Config
		engineCfg categorizr.Config
		cacheCfg  devicecache.Config
		httpCfg   httpserver.Config
	)
	if err := errors.Join(
		config.Load(&logCfg),
		config.Load(&engineCfg),
		config.Load(&cacheCfg),
		config.Load(&httpCfg),
	); err != nil {
		return err
	}

	log := logger.NewFromConfig(logCfg, logger.WithContextExtractors(
		requestid.LoggerExtractor(),
		devicectx.LoggerExtractor(),
	))
	logger.SetAsDefault(log)

	engine := categorizr.NewFromConfig(engineCfg)

	var (
		client goredis.UniversalClient
		checks []httpserver.Check
	)
	if cacheCfg.Driver == devicecache.DriverRedis {
		var redisCfg redis.Config
		if err := config.Load(&redisCfg); err != nil {
			return err
		}
		rc, err := redis.Connect(ctx, redisCfg)
		if err != nil {
			log.ErrorContext(ctx, "redis unavailable", logger.Error(err))
			return err
		}
		defer func() { _ = rc.Close() }()
		client = rc
		checks = append(checks, redis.Healthcheck(rc))
	}

	detector, err := devicecache.NewFromConfig(cacheCfg, engine, client, log.With(logger.Component("devicecache")))
	if err != nil {
		return err
	}

	srv := httpserver.NewFromConfig(httpCfg, httpserver.WithLogger(log))
	if err := srv.Run(ctx, newRouter(detector, log, checks...)); err != nil {
		log.ErrorContext(ctx, "server stopped", logger.Error(err))
		return err
	}
	return nil
}
