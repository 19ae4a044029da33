// Package prometheus renders the session engine counters in Prometheus
// text exposition format without depending on the Prometheus client.
package prometheus
