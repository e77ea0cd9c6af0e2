// Package redisconn bootstraps the Redis client backing the session cache
// and the post-registration work queue.
//
// Connect validates the connection URL, dials with retry to ride out
// transient network failures, and verifies connectivity with a ping before
// returning the client. Healthcheck wraps a client into a probe function
// suitable for readiness endpoints.
package redisconn
