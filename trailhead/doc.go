/*

Package trailhead sets a switchback app off: it reads configuration from the
process environment (loading a .env file when one exists) and hands back a
Router, Logger and http.Handler wired together and ready for route registration.

Environment variables consulted:

	ENVIRONMENT  the switchback.Environment to operate in (default DEVELOPMENT)
	LOG_LEVEL    minimum logger.LogLevel to emit (default INFO)
	SENTRY_DSN   when set, errors ship to Sentry

*/
package trailhead
