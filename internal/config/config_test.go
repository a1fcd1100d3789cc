package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigReadsCredentialsFromEnvironment(t *testing.T) {
	t.Setenv("DEVELOPER_TOKEN", "dev-token")
	t.Setenv("CLIENT_ID", "client-id")
	t.Setenv("CLIENT_SECRET", "client-secret")
	t.Setenv("REFRESH_TOKEN", "refresh-token")
	t.Setenv("MCC_CUSTOMER_ID", "1234567890")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "dev-token", cfg.GoogleAds.DeveloperToken)
	assert.Equal(t, "client-id", cfg.GoogleAds.ClientID)
	assert.Equal(t, "client-secret", cfg.GoogleAds.ClientSecret)
	assert.Equal(t, "refresh-token", cfg.GoogleAds.RefreshToken)
	assert.Equal(t, "1234567890", cfg.GoogleAds.LoginCustomerID)

	assert.Equal(t, "https://googleads.googleapis.com/v19", cfg.GoogleAds.URL)
	assert.NoError(t, cfg.ValidateCredentials())
}

func TestValidateCredentials(t *testing.T) {
	complete := GoogleAds{
		DeveloperToken:  "dev-token",
		ClientID:        "client-id",
		ClientSecret:    "client-secret",
		RefreshToken:    "refresh-token",
		LoginCustomerID: "1234567890",
	}

	tests := []struct {
		name    string
		mutate  func(*GoogleAds)
		missing string
	}{
		{"developer token absent", func(g *GoogleAds) { g.DeveloperToken = "" }, "DEVELOPER_TOKEN"},
		{"client id absent", func(g *GoogleAds) { g.ClientID = "" }, "CLIENT_ID"},
		{"client secret absent", func(g *GoogleAds) { g.ClientSecret = "" }, "CLIENT_SECRET"},
		{"refresh token absent", func(g *GoogleAds) { g.RefreshToken = "" }, "REFRESH_TOKEN"},
		{"mcc customer id absent", func(g *GoogleAds) { g.LoginCustomerID = "" }, "MCC_CUSTOMER_ID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			creds := complete
			tt.mutate(&creds)

			err := (&Config{GoogleAds: creds}).ValidateCredentials()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.missing)
		})
	}

	t.Run("complete credential set passes", func(t *testing.T) {
		assert.NoError(t, (&Config{GoogleAds: complete}).ValidateCredentials())
	})

	t.Run("every missing key is named", func(t *testing.T) {
		err := (&Config{}).ValidateCredentials()
		require.Error(t, err)
		for _, key := range RequiredCredentialKeys {
			assert.Contains(t, err.Error(), key)
		}
	})
}

func TestResidualCredentialFiles(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"google-ads.yaml", "google-ads-old.yml", "settings.yaml", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o600))
	}

	found := residualCredentialFiles(dir)

	assert.ElementsMatch(t, []string{"google-ads.yaml", "google-ads-old.yml"}, found)
}
