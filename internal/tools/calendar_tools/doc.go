// Package calendar_tools provides MCP (Model Context Protocol) tools for Google Calendar operations.
//
// This package exposes the calendar agenda through a standardized MCP interface,
// allowing AI assistants to list, create, and delete events on behalf of the user.
//
// All tools return JSON. Timestamps in tool output are rendered in the
// configured reference timezone so an assistant never has to reason about
// the server's process timezone.
package calendar_tools
