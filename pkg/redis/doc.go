// Package redis opens the Redis connection used as the shared stylesheet
// cache when several sprout instances serve the same site.
//
//	client, err := redis.Open(ctx, cfg.RedisURL, redis.WithRetry(3, time.Second))
//	if err != nil {
//	    return err
//	}
//
//	app := sprout.New(
//	    sprout.WithHealthChecks(sprout.WithReadinessCheck("redis", redis.Healthcheck(client))),
//	)
//	app.Run(addr, sprout.ShutdownHook(redis.Shutdown(client)))
//
// Both redis:// and rediss:// (TLS) URLs are accepted.
package redis
