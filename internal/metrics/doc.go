// Package metrics exposes timer activity as Prometheus metrics.
//
// Components receive a Recorder; NoopRecorder is the default when no
// --metrics-addr is configured, so callers never nil-check.
package metrics
