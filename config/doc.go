// Package config loads the sprout server configuration.
//
// Values come from defaults, an optional YAML file, environment variables and
// CLI flags, merged with viper and validated with go-playground/validator.
//
// # Configuration Precedence
//
// Later sources override earlier ones:
//
//  1. Default values
//  2. Configuration file (--config, or ./config.yaml when present)
//  3. Environment variables
//  4. CLI flags that were explicitly set
//
// # Environment Variables
//
// Keys map to unprefixed environment variables:
//
//	PORT              listen port, default 8000
//	HOST              listen host, default all interfaces
//	APP_ENV           development, production or test
//	LOG_LEVEL         debug, info, warn or error
//	LOG_FORMAT        json, pretty or text (empty picks by APP_ENV)
//	SENTRY_DSN        forward warn and error logs to Sentry
//	SHUTDOWN_TIMEOUT  graceful shutdown bound, e.g. 10s
//	REQUEST_TIMEOUT   per-request deadline, 0 disables it
//	COMPRESS          gzip responses, default true
//	DOCS_DIR          serve markdown docs from this directory
//	REDIS_URL         share generated stylesheets through Redis
//
// PORT never fails loading: a value that is not an integer in 1..65535 falls
// back to [DefaultPort].
//
// # Usage
//
//	cfg, err := config.Load(configFile, cmd.Flags())
//	if err != nil {
//	    return err
//	}
//	app.Run(cfg.Address())
package config
