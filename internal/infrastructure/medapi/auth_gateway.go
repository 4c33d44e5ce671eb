package medapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"pharma_express/internal/domain/entities"
	"pharma_express/internal/usecase/interfaces"
)

// AuthGateway implements the remote account endpoints.
type AuthGateway struct {
	client *Client
}

var _ interfaces.IAuthGateway = (*AuthGateway)(nil)

func NewAuthGateway(client *Client) *AuthGateway {
	return &AuthGateway{client: client}
}

func (g *AuthGateway) Register(ctx context.Context, reg entities.Registration) error {
	payload := map[string]any{
		"name":     reg.Name,
		"username": reg.Username,
		"email":    reg.Email,
		"password": reg.Password,
		"policy":   reg.Policy,
	}
	_, _, err := g.client.do(ctx, http.MethodPost, "register/", nil, payload, "register")
	return err
}

// Login exchanges credentials for the opaque upstream token.
func (g *AuthGateway) Login(ctx context.Context, email, password string) (string, error) {
	payload := map[string]any{"email": email, "password": password}
	raw, _, err := g.client.do(ctx, http.MethodPost, "api-token-auth", nil, payload, "token_auth")
	if err != nil {
		return "", err
	}

	var body struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return "", fmt.Errorf("%w: token reply: %v", ErrMalformedResponse, err)
	}
	if body.Token == "" {
		return "", fmt.Errorf("%w: token reply without token", ErrMalformedResponse)
	}
	return body.Token, nil
}

// UserIDByEmail resolves the stable numeric user id. An empty result list
// means the email is unknown; that is id 0 with a nil error.
func (g *AuthGateway) UserIDByEmail(ctx context.Context, email string) (int, error) {
	q := url.Values{"email": {email}}
	raw, _, err := g.client.do(ctx, http.MethodGet, "users/", q, nil, "user_by_email")
	if err != nil {
		return 0, err
	}

	var body []map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		return 0, fmt.Errorf("%w: users: %v", ErrMalformedResponse, err)
	}
	if len(body) == 0 {
		return 0, nil
	}
	return pickID(body[0]), nil
}
