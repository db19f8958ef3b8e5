package services

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/desertthunder/spotcat/internal/shared"
	"golang.org/x/oauth2"
)

const (
	// tokenSafetyMargin is subtracted from the declared token lifetime so
	// renewal happens before in-flight requests can race actual expiry.
	tokenSafetyMargin = 30 * time.Second

	// defaultTokenLifetime applies when the token response omits expires_in.
	defaultTokenLifetime = 3600
)

type tokenPayload struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

// AccessToken returns a bearer token with at least the safety margin of
// validity remaining, exchanging the client credentials for a fresh one when
// the cached token is absent or expired. The single cached token slot is
// overwritten on renewal; concurrent callers serialize on the mutex so only
// one exchange runs at a time.
func (s *SpotifyService) AccessToken(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token != nil && s.now().Before(s.token.Expiry) {
		return s.token.AccessToken, nil
	}

	if s.clientID == "" || s.clientSecret == "" {
		return "", fmt.Errorf("%w: client_id and client_secret must be configured", shared.ErrMissingCredentials)
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter: %w", err)
	}

	s.logger.Debug("exchanging client credentials for access token", "token_url", s.tokenURL)

	form := url.Values{"grant_type": {"client_credentials"}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create token request: %w", err)
	}

	basic := base64.StdEncoding.EncodeToString([]byte(s.clientID + ":" + s.clientSecret))
	req.Header.Set("Authorization", "Basic "+basic)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("token exchange failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read token response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", &shared.AuthError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var payload tokenPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("failed to decode token response: %w", err)
	}

	if payload.AccessToken == "" {
		return "", fmt.Errorf("%w: token response missing access_token", shared.ErrAuthFailed)
	}

	expiresIn := payload.ExpiresIn
	if expiresIn == 0 {
		expiresIn = defaultTokenLifetime
	}

	expiry := s.now().Add(time.Duration(expiresIn)*time.Second - tokenSafetyMargin)
	s.token = &oauth2.Token{
		AccessToken: payload.AccessToken,
		TokenType:   "Bearer",
		Expiry:      expiry,
	}

	s.logger.Info("access token renewed", "expires_at", expiry.Format(time.RFC3339))

	return s.token.AccessToken, nil
}

// TokenStatus reports the cached token's expiry for monitoring. A zero expiry
// with cached=false means no token has been acquired yet or the slot holds an
// expired token.
func (s *SpotifyService) TokenStatus() (expiry time.Time, remaining time.Duration, cached bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token == nil || !s.now().Before(s.token.Expiry) {
		return time.Time{}, 0, false
	}

	return s.token.Expiry, s.token.Expiry.Sub(s.now()), true
}
