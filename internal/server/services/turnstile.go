package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Dvesiz/Ship-Management-System/internal/logging"
	"github.com/Dvesiz/Ship-Management-System/internal/server/config"
)

// HumanVerifier gates logins behind an external human-verification check.
type HumanVerifier interface {
	Verify(ctx context.Context, token string) bool
}

// TurnstileVerifier calls the Cloudflare Turnstile siteverify endpoint.
// Transport or parse failures count as verification failures.
type TurnstileVerifier struct {
	enabled bool
	secret  string
	url     string
	client  *http.Client
	logger  logging.Logger
}

func NewTurnstileVerifier(cfg *config.Config, logger logging.Logger) *TurnstileVerifier {
	return &TurnstileVerifier{
		enabled: cfg.TurnstileEnabled,
		secret:  cfg.TurnstileSecret,
		url:     cfg.TurnstileURL,
		client:  &http.Client{Timeout: 10 * time.Second},
		logger:  logger,
	}
}

func (v *TurnstileVerifier) Verify(ctx context.Context, token string) bool {
	if !v.enabled {
		return true
	}
	if token == "" {
		return false
	}
	if v.secret == "" {
		v.logger.Warn(ctx, "turnstile enabled without a secret, skipping verification")
		return true
	}

	form := url.Values{}
	form.Set("secret", v.secret)
	form.Set("response", token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.url, strings.NewReader(form.Encode()))
	if err != nil {
		v.logger.Error(ctx, "turnstile request build failed", "error", err)
		return false
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.client.Do(req)
	if err != nil {
		v.logger.Error(ctx, "turnstile request failed", "error", err)
		return false
	}
	defer resp.Body.Close()

	var result struct {
		Success bool `json:"success"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		v.logger.Error(ctx, "turnstile response decode failed", "error", err)
		return false
	}
	return result.Success
}
