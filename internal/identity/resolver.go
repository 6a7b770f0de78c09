// Package identity exchanges opaque caller tokens for user identities by
// calling the user-auth-service.
package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/jwilson717/Expenser-AccountsService/internal/apperr"
	"github.com/jwilson717/Expenser-AccountsService/internal/discovery"
	"github.com/jwilson717/Expenser-AccountsService/internal/models"
)

// Registry is the discovery surface the resolver needs.
type Registry interface {
	Lookup(name string) ([]string, error)
}

// Resolver validates caller tokens against the remote user-auth-service.
// Exactly one resolution attempt is made per call; retry policy, if any,
// belongs to the caller.
type Resolver struct {
	registry Registry
	client   *http.Client
}

// NewResolver builds a Resolver. A nil client falls back to
// http.DefaultClient; deadlines are the caller's concern, imposed through
// ctx or a custom client.
func NewResolver(registry Registry, client *http.Client) *Resolver {
	if client == nil {
		client = http.DefaultClient
	}
	return &Resolver{registry: registry, client: client}
}

// Resolve posts the JSON-encoded token to the identity service's /validate
// endpoint and returns the resolved user.
//
// Failure mapping mirrors the response class, not just "any error": a
// transport fault or 5xx is a processing fault (500-class), while 404 and
// 400 mean the token is unknown and surface as UserNotFound (404-class).
func (r *Resolver) Resolve(ctx context.Context, token string) (*models.Identity, error) {
	instances, err := r.registry.Lookup(discovery.UserAuthService)
	if err != nil {
		slog.Error("identity service lookup failed", "error", err)
		return nil, apperr.Processing("Unable to send token validate request")
	}

	body, err := json.Marshal(token)
	if err != nil {
		slog.Error("failed to encode token", "error", err)
		return nil, apperr.Processing("Unable to send token validate request")
	}

	url := instances[0] + "/validate"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, apperr.Processing("Unable to send token validate request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		slog.Error("token validation request failed", "url", url, "error", err)
		return nil, apperr.Processing("Unable to send token validate request")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, apperr.UserNotFound("")
	case resp.StatusCode == http.StatusBadRequest:
		return nil, apperr.UserNotFound("Unable to validate user")
	case resp.StatusCode >= 300:
		slog.Error("unexpected status from identity service", "status", resp.StatusCode)
		return nil, apperr.Processing("Unable to process request")
	}

	var user models.Identity
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		slog.Error("malformed identity response", "error", err)
		return nil, apperr.Processing("Unable to process request")
	}
	return &user, nil
}
