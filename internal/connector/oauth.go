package connector

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

// CalendarScope grants read/write access to Google Calendar.
const CalendarScope = "https://www.googleapis.com/auth/calendar"

var googleEndpoint = oauth2.Endpoint{
	AuthURL:  "https://accounts.google.com/o/oauth2/auth",
	TokenURL: "https://oauth2.googleapis.com/token",
}

// clientSecret is the relevant slice of a client_secret.json downloaded from
// the Google Cloud Console. Both "installed" and "web" clients are accepted.
type clientSecret struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
}

// LoadOAuthConfig reads a client_secret.json file and builds an oauth2 config
// redirecting to a loopback address on the given port.
func LoadOAuthConfig(path string, port int, scopes ...string) (*oauth2.Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read client secrets: %w", err)
	}

	var wrapper map[string]clientSecret
	if err := json.Unmarshal(raw, &wrapper); err != nil {
		return nil, fmt.Errorf("parse client secrets: %w", err)
	}
	secret, ok := wrapper["installed"]
	if !ok {
		secret, ok = wrapper["web"]
	}
	if !ok || secret.ClientID == "" {
		return nil, errors.New("client secrets file has no installed or web client")
	}

	return &oauth2.Config{
		ClientID:     secret.ClientID,
		ClientSecret: secret.ClientSecret,
		Endpoint:     googleEndpoint,
		RedirectURL:  fmt.Sprintf("http://localhost:%d/", port),
		Scopes:       scopes,
	}, nil
}

// RunLocalFlow walks the user through the browser consent flow. It listens on
// the config's redirect port, prints the consent URL, waits for the redirect
// carrying the authorization code and exchanges it for a token.
func RunLocalFlow(ctx context.Context, cfg *oauth2.Config, out *os.File) (*oauth2.Token, error) {
	listener, err := net.Listen("tcp", "localhost:0")
	if err != nil {
		return nil, fmt.Errorf("start redirect listener: %w", err)
	}
	defer listener.Close()
	cfg.RedirectURL = fmt.Sprintf("http://%s/", listener.Addr().String())

	state := uuid.NewString()
	authURL := cfg.AuthCodeURL(state, oauth2.AccessTypeOffline)
	fmt.Fprintf(out, "Open this URL in your browser to authorize access:\n\n  %s\n\n", authURL)

	type callback struct {
		code string
		err  error
	}
	done := make(chan callback, 1)
	server := &http.Server{Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("state") != state {
			http.Error(w, "state mismatch", http.StatusBadRequest)
			done <- callback{err: errors.New("oauth state mismatch")}
			return
		}
		if errMsg := q.Get("error"); errMsg != "" {
			http.Error(w, "authorization denied", http.StatusBadRequest)
			done <- callback{err: fmt.Errorf("authorization denied: %s", errMsg)}
			return
		}
		fmt.Fprintln(w, "Authorization received. You can close this tab.")
		done <- callback{code: q.Get("code")}
	})}
	go server.Serve(listener)
	defer server.Close()

	select {
	case cb := <-done:
		if cb.err != nil {
			return nil, cb.err
		}
		token, err := cfg.Exchange(ctx, cb.code)
		if err != nil {
			return nil, fmt.Errorf("exchange authorization code: %w", err)
		}
		return token, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// SaveToken writes a token to path with owner-only permissions.
func SaveToken(path string, token *oauth2.Token) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create token directory: %w", err)
		}
	}
	raw, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("encode token: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		return fmt.Errorf("write token: %w", err)
	}
	return nil
}

// LoadToken reads a previously saved token. A missing file returns
// ErrNotConfigured.
func LoadToken(path string) (*oauth2.Token, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("no saved token at %s: %w", path, ErrNotConfigured)
	}
	if err != nil {
		return nil, fmt.Errorf("read token: %w", err)
	}
	var token oauth2.Token
	if err := json.Unmarshal(raw, &token); err != nil {
		return nil, fmt.Errorf("decode token: %w", err)
	}
	return &token, nil
}

// TokenSource returns a refreshing token source that persists refreshed
// tokens back to path.
func TokenSource(ctx context.Context, cfg *oauth2.Config, path string, token *oauth2.Token) oauth2.TokenSource {
	return &savingTokenSource{
		path:  path,
		last:  token,
		inner: cfg.TokenSource(ctx, token),
	}
}

type savingTokenSource struct {
	path  string
	last  *oauth2.Token
	inner oauth2.TokenSource
}

func (s *savingTokenSource) Token() (*oauth2.Token, error) {
	token, err := s.inner.Token()
	if err != nil {
		return nil, err
	}
	if s.last == nil || token.AccessToken != s.last.AccessToken {
		if err := SaveToken(s.path, token); err != nil {
			return nil, err
		}
		s.last = token
	}
	return token, nil
}
