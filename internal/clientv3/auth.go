package clientv3

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/skylight-io/psapi-client/internal/auth"
	internalhttp "github.com/skylight-io/psapi-client/internal/http"
	"github.com/skylight-io/psapi-client/pkg/psapi"
)

// AuthClient implements psapi.V3AuthClient. The v3 namespace issues a plain
// token; there is no two-factor continuation and no org binding on the
// session, so only the token is stored.
type AuthClient struct {
	httpClient *internalhttp.Client
	session    *auth.Session
}

// NewAuthClient creates a new v3 auth client.
func NewAuthClient(httpClient *internalhttp.Client, session *auth.Session) *AuthClient {
	return &AuthClient{
		httpClient: httpClient,
		session:    session,
	}
}

// Login implements psapi.V3AuthClient.Login. The body is form-encoded with
// empty fields dropped. The token arrives inside the data envelope; the
// pipeline has already stripped it by the time the body reaches this method.
func (c *AuthClient) Login(ctx context.Context, email, password, orgID string) (*psapi.Session, error) {
	form := psapi.EncodeForm(map[string]string{
		"email":    email,
		"password": password,
		"mode":     "token",
		"org_id":   orgID,
	})

	resp, err := c.httpClient.Do(ctx, &internalhttp.Request{
		Method:          http.MethodPost,
		Path:            "/mem/authenticate",
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

	c.session.Set(session.Token, "", false)

	return &session, nil
}

// Logout implements psapi.V3AuthClient.Logout. The session is cleared even
// when the remote call fails.
func (c *AuthClient) Logout(ctx context.Context) error {
	_, err := c.httpClient.Post(ctx, "/mem/logout", nil)

	c.session.Clear()

	if err != nil {
		return fmt.Errorf("logging out: %w", err)
	}

	return nil
}
