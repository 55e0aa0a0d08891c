// Package health provides liveness and readiness probe handlers.
//
// [LivenessHandler] always answers OK while the process serves requests.
// [ReadinessHandler] runs named [Checks] concurrently under a shared timeout
// and answers 503 when any of them fails:
//
//	r.Get("/health/live", health.LivenessHandler())
//	r.Get("/health/ready", health.ReadinessHandler(health.Checks{
//	    "docs": docs.Healthcheck,
//	}, health.WithTimeout(2*time.Second)))
//
// Responses are plain text by default. Send "Accept: application/json" or
// "?format=json" for the detailed report:
//
//	{"checks":{"docs":{"status":"healthy","duration":"41µs"}},"status":"healthy"}
//
// [Run] exposes the same check runner for use outside HTTP, e.g. a CLI
// command that verifies configuration before serving.
package health
