package gadsclient

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	gadsdomain "github.com/justcarpets/mcc-reporting-api/infrastructure/integrator/googleads/domain"
	"github.com/justcarpets/mcc-reporting-api/internal/config"
)

// ErrTokenRefreshed signals that an expired access token was detected and
// renewed; the caller should retry the original request once.
var ErrTokenRefreshed = errors.New("access token refreshed, retry the request")

// expiryMargin is how long before the reported expiry we stop trusting
// the current access token.
const expiryMargin = 2 * time.Minute

// TokenResponse is the OAuth token endpoint's answer to a refresh-token
// exchange.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// TokenManager exchanges the long-lived OAuth refresh token for
// short-lived access tokens and renews them lazily as they approach
// expiry. The refresh token itself is static configuration; only the
// derived access token mutates, under the mutex.
type TokenManager struct {
	cfg        *config.Config
	httpClient *http.Client

	mu          sync.Mutex
	accessToken string
	expiresAt   time.Time
}

func NewTokenManager(cfg *config.Config) *TokenManager {
	return &TokenManager{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// AccessToken returns the current access token, possibly empty when no
// exchange has happened yet.
func (tm *TokenManager) AccessToken() string {
	tm.mu.Lock()
	defer tm.mu.Unlock()
	return tm.accessToken
}

// EnsureValidToken refreshes the access token when it is missing or
// about to expire.
func (tm *TokenManager) EnsureValidToken() error {
	tm.mu.Lock()
	valid := tm.accessToken != "" && time.Until(tm.expiresAt) > expiryMargin
	tm.mu.Unlock()

	if valid {
		return nil
	}

	return tm.RefreshToken()
}

// RefreshToken performs the refresh-token grant against the OAuth token
// endpoint and swaps in the new access token.
func (tm *TokenManager) RefreshToken() error {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	form := url.Values{}
	form.Add("grant_type", "refresh_token")
	form.Add("client_id", tm.cfg.GoogleAds.ClientID)
	form.Add("client_secret", tm.cfg.GoogleAds.ClientSecret)
	form.Add("refresh_token", tm.cfg.GoogleAds.RefreshToken)

	resp, err := tm.httpClient.PostForm(tm.cfg.GoogleAds.OAuthTokenURL, form)
	if err != nil {
		return errors.Wrap(err, "requesting access token")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "reading token response")
	}

	if resp.StatusCode != http.StatusOK {
		logrus.WithFields(logrus.Fields{
			"status": resp.StatusCode,
			"body":   string(body),
		}).Error("googleads: token endpoint rejected the refresh token grant")

		if strings.Contains(string(body), "invalid_grant") {
			return errors.Errorf("refresh token is expired or revoked, re-authorize the application (status %d)", resp.StatusCode)
		}

		return errors.Errorf("token endpoint returned status %d: %s", resp.StatusCode, body)
	}

	var tokenResp TokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return errors.Wrap(err, "decoding token response")
	}

	if tokenResp.AccessToken == "" {
		return errors.New("token endpoint returned an empty access token")
	}

	tm.accessToken = tokenResp.AccessToken
	tm.expiresAt = time.Now().Add(time.Duration(tokenResp.ExpiresIn) * time.Second)

	logrus.WithField("expires_at", tm.expiresAt.Format(time.RFC3339)).
		Debug("googleads: access token refreshed")

	return nil
}

// HandleResponse reads the response body and translates API failures. A
// detected auth failure triggers one token refresh and surfaces
// ErrTokenRefreshed so the caller can retry.
func (tm *TokenManager) HandleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "reading response body")
	}

	if resp.StatusCode == http.StatusOK {
		return body, nil
	}

	var apiErr gadsdomain.ErrorResponse
	if parseErr := json.Unmarshal(body, &apiErr); parseErr == nil && apiErr.IsAuthError() {
		logrus.WithFields(logrus.Fields{
			"code":   apiErr.Error.Code,
			"status": apiErr.Error.Status,
		}).Warn("googleads: expired access token detected, refreshing")

		if refreshErr := tm.RefreshToken(); refreshErr != nil {
			return nil, errors.Wrap(refreshErr, "refreshing expired access token")
		}

		return nil, ErrTokenRefreshed
	}

	return nil, errors.Errorf("API error, status %d: %s", resp.StatusCode, body)
}
