// Package config builds the immutable process-wide configuration for
// calbridge: the set of calendar identifiers to aggregate over, the
// reference timezone, and the credential file locations.
//
// Configuration is sourced from environment variables (optionally via a
// .env file) exactly once at startup and then passed by value into the
// components that need it; nothing in the application reads the
// environment after that point.
package config
