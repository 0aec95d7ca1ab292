package google

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/oauth2"
)

// TokenProvider supplies usable OAuth credentials for the Calendar API.
// The rest of the system depends only on this capability, not on where or
// how the credential material is stored.
type TokenProvider interface {
	// TokenSource returns a token source that yields valid tokens,
	// refreshing them when expired.
	TokenSource(ctx context.Context) (oauth2.TokenSource, error)

	// HasToken reports whether a stored credential exists.
	HasToken() bool
}

// FileTokenProvider persists tokens to a restricted-access local file and
// refreshes them through the OAuth2 config when expired. Refreshed tokens
// are written back so that the next process start reuses them.
type FileTokenProvider struct {
	conf *oauth2.Config
	path string
}

// NewFileTokenProvider creates a token provider backed by the token file
// at path.
func NewFileTokenProvider(conf *oauth2.Config, path string) *FileTokenProvider {
	return &FileTokenProvider{conf: conf, path: path}
}

// TokenSource returns a refreshing token source seeded from the token file.
func (p *FileTokenProvider) TokenSource(ctx context.Context) (oauth2.TokenSource, error) {
	token, err := LoadToken(p.path)
	if err != nil {
		return nil, err
	}

	return &savingSource{
		src:  p.conf.TokenSource(ctx, token),
		path: p.path,
		last: token,
	}, nil
}

// HasToken reports whether the token file exists.
func (p *FileTokenProvider) HasToken() bool {
	return HasToken(p.path)
}

// savingSource wraps a refreshing token source and writes refreshed tokens
// back to disk. Concurrent processes sharing the same token file race on
// this write; that is acceptable for single-process, single-user operation.
type savingSource struct {
	src  oauth2.TokenSource
	path string

	mu   sync.Mutex
	last *oauth2.Token
}

func (s *savingSource) Token() (*oauth2.Token, error) {
	token, err := s.src.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to obtain valid token: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.last == nil || token.AccessToken != s.last.AccessToken {
		if err := SaveToken(s.path, token); err != nil {
			return nil, err
		}
		s.last = token
	}
	return token, nil
}
