package cmd

import (
	"context"
	"log/slog"
	"testing"
	"time"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teemow/calbridge/internal/config"
	"github.com/teemow/calbridge/internal/server"
)

func TestRegisterAllTools(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	cfg := &config.Config{CalendarIDs: []string{"primary"}, ReferenceZone: loc}
	sc := server.NewServerContextWithProvider(context.Background(), cfg, nil, nil)

	mcpSrv := mcpserver.NewMCPServer("calbridge", "test",
		mcpserver.WithToolCapabilities(true),
	)

	require.NoError(t, registerAllTools(mcpSrv, sc))
}

func TestRunServe_UnsupportedTransport(t *testing.T) {
	err := runServe("carrier-pigeon", false, ":0", MetricsConfig{Enabled: false})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported transport type")
}

func TestNewLogger(t *testing.T) {
	logger := newLogger(false)
	assert.False(t, logger.Enabled(context.Background(), slog.LevelDebug))

	logger = newLogger(true)
	assert.True(t, logger.Enabled(context.Background(), slog.LevelDebug))
}
