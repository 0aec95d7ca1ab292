package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/teemow/calbridge/internal/config"
	"github.com/teemow/calbridge/internal/google"
)

func newAuthCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Authorize Google Calendar access interactively",
		Long: `Run the OAuth consent flow in the terminal: print the authorization URL,
wait for the authorization code on stdin, and save the resulting token.

The saved token is refreshed automatically; this only needs to run once
per token file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			if google.HasToken(cfg.TokenFile) && !force {
				fmt.Printf("Token already exists at %s (use --force to re-authorize)\n", cfg.TokenFile)
				return nil
			}

			conf, err := google.OAuthConfig(cfg.ClientSecretFile)
			if err != nil {
				return err
			}

			fmt.Println("Visit this URL in your browser to authorize Google Calendar access:")
			fmt.Println()
			fmt.Printf("  %s\n", google.AuthURL(conf))
			fmt.Println()
			fmt.Print("Enter the authorization code: ")

			reader := bufio.NewReader(os.Stdin)
			line, err := reader.ReadString('\n')
			if err != nil {
				return fmt.Errorf("failed to read authorization code: %w", err)
			}
			authCode := strings.TrimSpace(line)
			if authCode == "" {
				return fmt.Errorf("no authorization code provided")
			}

			if err := google.ExchangeAndSave(cmd.Context(), conf, authCode, cfg.TokenFile); err != nil {
				return err
			}

			fmt.Printf("Token saved to %s\n", cfg.TokenFile)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Re-authorize even if a token already exists")

	return cmd
}
