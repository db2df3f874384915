// Package auth resolves bearer tokens against the external auth
// platform. Token issuance, sessions and passwords all live there;
// this client only asks "whose token is this".
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"movie-swiper/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrInvalidToken means the platform rejected the token.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrAuthUnavailable means the platform could not be reached.
	ErrAuthUnavailable = errors.New("auth service unavailable")
)

// User is the authenticated identity returned by the platform.
type User struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

type Client struct {
	baseURL string
	anonKey string
	client  *http.Client
	log     *zap.Logger
}

func NewClient(config utils.AuthConfig, log *zap.Logger) *Client {
	return &Client{
		baseURL: config.URL,
		anonKey: config.AnonKey,
		client:  &http.Client{Timeout: 10 * time.Second},
		log:     log.With(zap.String("client", "auth")),
	}
}

// GetUser resolves the bearer token to a user via GET /auth/v1/user.
func (c *Client) GetUser(ctx context.Context, token string) (*User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/auth/v1/user", nil)
	if err != nil {
		return nil, fmt.Errorf("build auth request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("apikey", c.anonKey)

	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Error("Auth request failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrAuthUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, ErrInvalidToken
	case resp.StatusCode != http.StatusOK:
		c.log.Error("Auth request rejected", zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("%w: status %d", ErrAuthUnavailable, resp.StatusCode)
	}

	var user User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("decode auth response: %w", err)
	}
	if user.ID == uuid.Nil {
		return nil, ErrInvalidToken
	}

	return &user, nil
}
