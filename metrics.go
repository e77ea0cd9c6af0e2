package sessiongate

import internalmetrics "github.com/sessiongate/sessiongate/internal/metrics"

// MetricID identifies a specific counter in the in-process metrics system.
type MetricID = internalmetrics.MetricID

const (
	// MetricAuthSuccess counts successful credential authentications.
	MetricAuthSuccess = internalmetrics.MetricAuthSuccess
	// MetricAuthFailure counts rejected credential authentications,
	// malformed and mismatched alike.
	MetricAuthFailure = internalmetrics.MetricAuthFailure
	// MetricTokenResolved counts tokens successfully resolved to a user id.
	MetricTokenResolved = internalmetrics.MetricTokenResolved
	// MetricTokenRejected counts token resolutions that found no live entry.
	MetricTokenRejected = internalmetrics.MetricTokenRejected
	// MetricTokenRevoked counts explicit token revocations.
	MetricTokenRevoked = internalmetrics.MetricTokenRevoked
	// MetricRevokeRejected counts revocations of absent tokens.
	MetricRevokeRejected = internalmetrics.MetricRevokeRejected
	// MetricRegisterSuccess counts created accounts.
	MetricRegisterSuccess = internalmetrics.MetricRegisterSuccess
	// MetricRegisterFailure counts registrations rejected on validation.
	MetricRegisterFailure = internalmetrics.MetricRegisterFailure
	// MetricRegisterDuplicate counts registrations rejected as duplicates.
	MetricRegisterDuplicate = internalmetrics.MetricRegisterDuplicate
)

// Metrics holds atomic counters. A nil *Metrics is inert.
type Metrics = internalmetrics.Metrics

// MetricsSnapshot is a point-in-time deep copy of all counters.
type MetricsSnapshot = internalmetrics.Snapshot

// NewMetrics creates a [Metrics] instance configured by the given
// [MetricsConfig]. When Enabled is false, all operations are no-ops.
func NewMetrics(cfg MetricsConfig) *Metrics {
	return internalmetrics.New(internalmetrics.Config{
		Enabled: cfg.Enabled,
	})
}
