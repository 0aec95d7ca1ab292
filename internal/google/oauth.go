package google

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// OOB is the out-of-band redirect URI used for the installed-app consent
// flow: the user pastes the authorization code back into the CLI or agent.
const OOB = "urn:ietf:wg:oauth:2.0:oob"

// OAuthConfig builds the OAuth2 configuration from a client secret JSON
// file as downloaded from the Google Cloud console.
func OAuthConfig(clientSecretFile string) (*oauth2.Config, error) {
	if clientSecretFile == "" {
		return nil, fmt.Errorf("client secret file path is required (set %s)", "GOOGLE_CLIENT_SECRET_FILE")
	}

	b, err := os.ReadFile(clientSecretFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read client secret file: %w", err)
	}

	conf, err := google.ConfigFromJSON(b, DefaultOAuthScopes...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse client secret file: %w", err)
	}
	conf.RedirectURL = OOB
	return conf, nil
}

// AuthURL returns the consent URL the user must visit to authorize access.
func AuthURL(conf *oauth2.Config) string {
	return conf.AuthCodeURL("state", oauth2.AccessTypeOffline)
}

// ExchangeAndSave exchanges an authorization code for a token and persists
// it to tokenFile.
func ExchangeAndSave(ctx context.Context, conf *oauth2.Config, authCode, tokenFile string) error {
	token, err := conf.Exchange(ctx, authCode)
	if err != nil {
		return fmt.Errorf("failed to exchange auth code: %w", err)
	}
	return SaveToken(tokenFile, token)
}

// SaveToken writes a token to path as JSON. The parent directory is created
// with mode 0700 and the file written with mode 0600 so that only the
// owning user can read the credential material.
func SaveToken(path string, token *oauth2.Token) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create token directory: %w", err)
	}

	data, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("failed to encode token: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}
	return nil
}

// LoadToken reads a previously persisted token from path.
func LoadToken(path string) (*oauth2.Token, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("no Google OAuth token found at %s: %w", path, err)
	}

	token := &oauth2.Token{}
	if err := json.Unmarshal(data, token); err != nil {
		return nil, fmt.Errorf("invalid token file %s: %w", path, err)
	}
	return token, nil
}

// HasToken reports whether a token file exists at path.
func HasToken(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
