package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/skylight-io/psapi-client/internal/auth"
	internalhttp "github.com/skylight-io/psapi-client/internal/http"
	"github.com/skylight-io/psapi-client/pkg/psapi"
)

// AuthClient implements psapi.AuthClient. It is the only client that writes
// to the session holder.
type AuthClient struct {
	httpClient *internalhttp.Client
	session    *auth.Session
}

// NewAuthClient creates a new auth client.
func NewAuthClient(httpClient *internalhttp.Client, session *auth.Session) *AuthClient {
	return &AuthClient{
		httpClient: httpClient,
		session:    session,
	}
}

// Login implements psapi.AuthClient.Login. The body is form-encoded with
// empty fields dropped: an omitted orgID sends no org_id key at all. On
// failure the session is left untouched.
func (c *AuthClient) Login(ctx context.Context, email, password, orgID string) (*psapi.Session, error) {
	form := psapi.EncodeForm(map[string]string{
		"email":    email,
		"password": password,
		"mode":     "token",
		"org_id":   orgID,
	})

	resp, err := c.httpClient.Do(ctx, &internalhttp.Request{
		Method:          http.MethodPost,
		Path:            "/authenticate",
		Form:            form,
		Unauthenticated: true,
	})
	if err != nil {
		return nil, fmt.Errorf("logging in: %w", err)
	}

	var session psapi.Session

	err = json.Unmarshal(resp.Body, &session)
	if err != nil {
		return nil, fmt.Errorf("parsing login response: %w", err)
	}

	c.session.Set(session.Token, session.OrgID, session.TwoFactorRequired)

	if session.TwoFactorRequired && session.Token == "" {
		return &session, psapi.ErrTwoFactorRequired
	}

	return &session, nil
}

// VerifyTwoFactor implements psapi.AuthClient.VerifyTwoFactor. It completes
// a login that answered with a pending two-factor challenge.
func (c *AuthClient) VerifyTwoFactor(ctx context.Context, code string) (*psapi.Session, error) {
	form := psapi.EncodeForm(map[string]string{
		"code": code,
		"mode": "token",
	})

	resp, err := c.httpClient.Do(ctx, &internalhttp.Request{
		Method:          http.MethodPost,
		Path:            "/authenticate/two-factor",
		Form:            form,
		Unauthenticated: true,
	})
	if err != nil {
		return nil, fmt.Errorf("verifying two-factor code: %w", err)
	}

	var session psapi.Session

	err = json.Unmarshal(resp.Body, &session)
	if err != nil {
		return nil, fmt.Errorf("parsing two-factor response: %w", err)
	}

	c.session.Set(session.Token, session.OrgID, false)

	return &session, nil
}

// Logout implements psapi.AuthClient.Logout. The session is cleared even
// when the remote call fails; the token is dead weight either way.
func (c *AuthClient) Logout(ctx context.Context) error {
	_, err := c.httpClient.Post(ctx, "/logout", nil)

	c.session.Clear()

	if err != nil {
		return fmt.Errorf("logging out: %w", err)
	}

	return nil
}

// CurrentSession implements psapi.AuthClient.CurrentSession.
func (c *AuthClient) CurrentSession(ctx context.Context) (*psapi.SessionInfo, error) {
	resp, err := c.httpClient.Get(ctx, "/session", nil)
	if err != nil {
		return nil, fmt.Errorf("getting session: %w", err)
	}

	var info psapi.SessionInfo

	err = json.Unmarshal(resp.Body, &info)
	if err != nil {
		return nil, fmt.Errorf("parsing session response: %w", err)
	}

	return &info, nil
}
