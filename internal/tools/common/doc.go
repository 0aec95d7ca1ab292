// Package common provides shared helpers for MCP tool handlers, currently
// the instrumentation wrapper that records metrics and logs per
// invocation.
package common
