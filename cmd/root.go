package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the calbridge application
var rootCmd = &cobra.Command{
	Use:   "calbridge",
	Short: "MCP server exposing Google Calendar to AI assistants",
	Long: `calbridge is a stateless bridge between AI assistants and Google Calendar.

It exposes event listing, creation, and deletion as MCP (Model Context
Protocol) tools, aggregating over one or more calendars and normalizing
all timestamps into a single reference timezone.

It can run as:
  - An MCP server over stdio or streamable HTTP (default)
  - A one-shot interactive OAuth setup via the auth command`,
	SilenceUsage: true,
}

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "calbridge version %s\n" .Version}}`)

	// If no subcommand is provided, run the serve command by default
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "serve")
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newAuthCmd())
	rootCmd.AddCommand(newVersionCmd())
}
