package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/dmarquez/tiendita/internal/models"
)

type authRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

// SignUp creates a new account on the identity endpoint.
func (c *HTTPClient) SignUp(ctx context.Context, email, password string) (*models.Credentials, error) {
	return c.authCall(ctx, "accounts:signUp", email, password)
}

// SignIn exchanges email/password for credentials. Rejected credentials map
// to ErrUnauthorized.
func (c *HTTPClient) SignIn(ctx context.Context, email, password string) (*models.Credentials, error) {
	return c.authCall(ctx, "accounts:signInWithPassword", email, password)
}

func (c *HTTPClient) authCall(ctx context.Context, action, email, password string) (*models.Credentials, error) {
	u := fmt.Sprintf("%s/%s?key=%s", c.authBase, action, c.apiKey)

	var creds models.Credentials
	req := authRequest{Email: email, Password: password, ReturnSecureToken: true}
	if err := c.do(ctx, http.MethodPost, u, req, &creds); err != nil {
		// the identity endpoint answers 400 for bad credentials
		var se *statusError
		if errors.As(err, &se) && (se.code == http.StatusBadRequest || se.code == http.StatusUnauthorized) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}
	if creds.LocalID == "" || creds.Token == "" {
		return nil, fmt.Errorf("identity endpoint returned incomplete credentials")
	}
	return &creds, nil
}
