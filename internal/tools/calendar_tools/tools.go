package calendar_tools

import (
	"context"
	"fmt"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/calbridge/internal/agenda"
	"github.com/teemow/calbridge/internal/server"
)

// getAgenda retrieves the agenda service, returning a user-facing error
// message with authorization instructions if no credential exists yet.
func getAgenda(ctx context.Context, sc *server.ServerContext) (*agenda.Service, error) {
	if !sc.HasCredential() {
		return nil, fmt.Errorf(`Google OAuth token not found. To authorize access:

1. Call the google_get_auth_url tool and visit the URL in your browser
2. Sign in with your Google account and grant Calendar access
3. Copy the authorization code
4. Call the google_save_auth_code tool with the code to complete authentication

You only need to authorize once. The token will be refreshed automatically.`)
	}

	svc, err := sc.Agenda(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create Calendar client: %w", err)
	}
	return svc, nil
}

// RegisterCalendarTools registers all Calendar-related tools with the MCP server.
func RegisterCalendarTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	if err := RegisterEventTools(s, sc); err != nil {
		return fmt.Errorf("failed to register event tools: %w", err)
	}
	return nil
}
