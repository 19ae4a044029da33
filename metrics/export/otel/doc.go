// Package otel exports the session engine counters through an
// OpenTelemetry meter as observable counters.
package otel
