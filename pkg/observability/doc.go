// Package observability provides Prometheus instrumentation for the
// palintape engine, wired in as lifecycle hooks.
package observability
