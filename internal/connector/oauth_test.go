package connector

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func writeClientSecrets(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "client_secret.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadOAuthConfig_InstalledClient(t *testing.T) {
	path := writeClientSecrets(t, `{"installed": {"client_id": "id-1", "client_secret": "sec-1"}}`)

	cfg, err := LoadOAuthConfig(path, 8080, CalendarScope)
	require.NoError(t, err)
	assert.Equal(t, "id-1", cfg.ClientID)
	assert.Equal(t, "sec-1", cfg.ClientSecret)
	assert.Equal(t, "http://localhost:8080/", cfg.RedirectURL)
	assert.Equal(t, []string{CalendarScope}, cfg.Scopes)
}

func TestLoadOAuthConfig_WebClient(t *testing.T) {
	path := writeClientSecrets(t, `{"web": {"client_id": "id-2", "client_secret": "sec-2"}}`)

	cfg, err := LoadOAuthConfig(path, 8080, CalendarScope)
	require.NoError(t, err)
	assert.Equal(t, "id-2", cfg.ClientID)
}

func TestLoadOAuthConfig_Missing(t *testing.T) {
	_, err := LoadOAuthConfig(filepath.Join(t.TempDir(), "nope.json"), 8080)
	assert.Error(t, err)

	path := writeClientSecrets(t, `{"other": {}}`)
	_, err = LoadOAuthConfig(path, 8080)
	assert.Error(t, err)
}

func TestTokenSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "creds", "token.json")
	token := &oauth2.Token{
		AccessToken:  "access",
		RefreshToken: "refresh",
		Expiry:       time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	require.NoError(t, SaveToken(path, token))

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	}

	loaded, err := LoadToken(path)
	require.NoError(t, err)
	assert.Equal(t, token.AccessToken, loaded.AccessToken)
	assert.Equal(t, token.RefreshToken, loaded.RefreshToken)
	assert.True(t, token.Expiry.Equal(loaded.Expiry))
}

func TestLoadToken_MissingFile(t *testing.T) {
	_, err := LoadToken(filepath.Join(t.TempDir(), "token.json"))
	assert.ErrorIs(t, err, ErrNotConfigured)
}
