// Package server provides the runtime context for the calbridge MCP
// server: long-lived dependencies (configuration, credential source,
// lazily constructed calendar provider), graceful shutdown, and the
// Prometheus metrics endpoint served on a dedicated port for non-stdio
// transports.
package server
