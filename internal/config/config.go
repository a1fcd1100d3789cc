package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// RequiredCredentialKeys are the environment variables the Google Ads
// credential set is built from. None of them has a default: a credential
// with a silent fallback is worse than a crash at startup.
var RequiredCredentialKeys = []string{
	"DEVELOPER_TOKEN",
	"CLIENT_ID",
	"CLIENT_SECRET",
	"REFRESH_TOKEN",
	"MCC_CUSTOMER_ID",
}

type Config struct {
	App       App       `mapstructure:",squash"`
	Server    Server    `mapstructure:",squash"`
	GoogleAds GoogleAds `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// GoogleAds holds the service credential set and the API endpoints. URL
// is derived from Endpoint and Version after unmarshalling.
type GoogleAds struct {
	DeveloperToken  string `mapstructure:"developer_token"`
	ClientID        string `mapstructure:"client_id"`
	ClientSecret    string `mapstructure:"client_secret"`
	RefreshToken    string `mapstructure:"refresh_token"`
	LoginCustomerID string `mapstructure:"mcc_customer_id"`
	Endpoint        string `mapstructure:"google_ads_endpoint"`
	Version         string `mapstructure:"google_ads_version"`
	OAuthTokenURL   string `mapstructure:"oauth_token_url"`
	URL             string `mapstructure:"-"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("GOOGLE_ADS_ENDPOINT", "https://googleads.googleapis.com")
	viper.SetDefault("GOOGLE_ADS_VERSION", "v19")
	viper.SetDefault("OAUTH_TOKEN_URL", "https://oauth2.googleapis.com/token")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// The credential keys have no defaults, so viper needs an explicit
	// binding to see them during Unmarshal.
	for _, key := range RequiredCredentialKeys {
		if err := viper.BindEnv(key); err != nil {
			return nil, err
		}
	}

	// godotenv already pushed the file into the environment; reading it
	// again with viper is best-effort.
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Using variables loaded by godotenv (viper could not read .env): ", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.GoogleAds.URL = fmt.Sprintf("%s/%s", config.GoogleAds.Endpoint, config.GoogleAds.Version)

	return config, nil
}

// ValidateCredentials checks the five required credential values and
// returns a single error naming every missing key, or nil when the set is
// complete. Halting is the caller's decision so the validation itself
// stays testable.
func (c *Config) ValidateCredentials() error {
	byKey := map[string]string{
		"DEVELOPER_TOKEN": c.GoogleAds.DeveloperToken,
		"CLIENT_ID":       c.GoogleAds.ClientID,
		"CLIENT_SECRET":   c.GoogleAds.ClientSecret,
		"REFRESH_TOKEN":   c.GoogleAds.RefreshToken,
		"MCC_CUSTOMER_ID": c.GoogleAds.LoginCustomerID,
	}

	var missing []string
	for _, key := range RequiredCredentialKeys {
		if byKey[key] == "" {
			missing = append(missing, key)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variable(s): %s", strings.Join(missing, ", "))
	}

	return nil
}

// ReportSecurityStatus logs the startup security advisories: whether the
// credential set came from a .env file, and whether residual YAML
// credential files from the legacy setup are still lying around. Both
// checks are advisory only.
func ReportSecurityStatus() {
	if _, err := os.Stat(".env"); err == nil {
		logrus.Info("Secure mode: ON (.env loaded)")
	} else {
		logrus.Warn("Secure mode: OFF (.env not found)")
	}

	leftovers := residualCredentialFiles(".")
	if len(leftovers) > 0 {
		logrus.Warnf("YAML credential file(s) detected: %s. Please delete them for maximum security",
			strings.Join(leftovers, ", "))
	}
}

// residualCredentialFiles lists google-ads YAML files in dir.
func residualCredentialFiles(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		logrus.WithError(err).Warn("could not scan directory for residual credential files")
		return nil
	}

	var found []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		ext := filepath.Ext(name)
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		if strings.Contains(name, "google-ads") {
			found = append(found, name)
		}
	}

	return found
}

// loadEnvFile loads the .env file via godotenv, trying the usual
// locations relative to the working directory.
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("could not determine working directory: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("loaded .env from: ", location)
			return
		}
	}

	logrus.Info("no .env file found, relying on process environment")
}
