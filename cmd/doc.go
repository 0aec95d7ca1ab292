// Package cmd implements the calbridge command line interface.
//
// The root command defaults to serve, which runs the MCP server over
// stdio or streamable HTTP. The auth command runs the interactive OAuth
// consent flow for first-time setup.
package cmd
