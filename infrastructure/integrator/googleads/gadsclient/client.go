package gadsclient

import (
	"encoding/json"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/justcarpets/mcc-reporting-api/internal/config"
)

//go:generate mockgen -source=client.go -destination=mocks/client.go -package=mocks

// Client is the low-level Google Ads API surface: a GAQL search and the
// accessible-customers probe. Everything else in this service is built on
// these two calls.
type Client interface {
	Search(customerID, query string) ([]json.RawMessage, error)
	ListAccessibleCustomers() ([]string, error)
}

type GoogleAdsClient struct {
	Cfg          *config.Config
	TokenManager *TokenManager

	httpClient *http.Client
}

// NewClient builds an authenticated client from the configured credential
// set. Construction fails on an incomplete credential set; static
// credentials cannot self-heal, so the caller should treat that as fatal.
func NewClient(cfg *config.Config) (Client, error) {
	if err := cfg.ValidateCredentials(); err != nil {
		return nil, errors.Wrap(err, "building Google Ads client")
	}

	return &GoogleAdsClient{
		Cfg:          cfg,
		TokenManager: NewTokenManager(cfg),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}, nil
}

// newRequest builds an API request carrying the auth headers.
func (c *GoogleAdsClient) newRequest(method, url string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+c.TokenManager.AccessToken())
	req.Header.Set("developer-token", c.Cfg.GoogleAds.DeveloperToken)
	req.Header.Set("login-customer-id", c.Cfg.GoogleAds.LoginCustomerID)
	req.Header.Set("Content-Type", "application/json")

	return req, nil
}

// Provider owns the single shared client handle. Construction happens at
// most once per process; every call returns the same handle (or the same
// construction error). The handle is read-only after construction and
// safe to share across concurrent reads.
type Provider struct {
	cfg *config.Config

	once   sync.Once
	client Client
	err    error
	builds int
}

func NewProvider(cfg *config.Config) *Provider {
	return &Provider{cfg: cfg}
}

func (p *Provider) Client() (Client, error) {
	p.once.Do(func() {
		p.builds++
		p.client, p.err = NewClient(p.cfg)
	})

	return p.client, p.err
}
