package mojauth

import (
	"context"
	"errors"
	"log"

	"golang.org/x/oauth2"

	"github.com/isahakgaming-beep/thunderclient/internals/auth"
)

// sisuToken is the silent flow: no interaction, runs entirely off the
// cached refresh token from a previous sign-in
func (c *Client) sisuToken(ctx context.Context) (*auth.Session, error) {
	cached := c.Creds.Token()
	if cached == nil {
		return nil, auth.Misconfigured("sisu flow has no cached sign-in to work with", nil)
	}

	// this refreshes the token if needed
	token, err := c.Config.TokenSource(ctx, cached).Token()
	if err != nil {
		return nil, classifyOauthError(err)
	}
	if err := c.Creds.SetToken(token); err != nil {
		log.Printf("could not cache refreshed token: %s", err)
	}

	return c.exchange(ctx, token.AccessToken)
}

// liveToken is the interactive device-code flow. The user code is
// surfaced through the request callback before the blocking wait starts.
func (c *Client) liveToken(ctx context.Context, req *auth.TokenRequest) (*auth.Session, error) {
	deviceAuth, err := c.Config.DeviceAuth(ctx)
	if err != nil {
		return nil, classifyOauthError(err)
	}

	if req.OnInteractive != nil {
		req.OnInteractive(auth.DeviceCode{
			UserCode:        deviceAuth.UserCode,
			VerificationURI: deviceAuth.VerificationURI,
		})
	}

	// blocks until the user finished the sign-in in their browser
	token, err := c.Config.DeviceAccessToken(ctx, deviceAuth)
	if err != nil {
		return nil, classifyOauthError(err)
	}
	if err := c.Creds.SetToken(token); err != nil {
		log.Printf("could not cache token: %s", err)
	}

	return c.exchange(ctx, token.AccessToken)
}

// classifyOauthError maps x/oauth2 failures onto the auth taxonomy
func classifyOauthError(err error) error {
	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) {
		switch retrieveErr.ErrorCode {
		case "invalid_grant":
			// the cached refresh token is revoked or expired – a fresh
			// interactive sign-in is the only way forward
			return auth.Denied("the cached sign-in is no longer valid", err)
		case "expired_token":
			return auth.Denied("the sign-in request expired before it was completed", err)
		case "authorization_declined":
			return auth.Denied("the sign-in was declined", err)
		case "invalid_client", "unauthorized_client", "invalid_scope":
			return auth.Misconfigured("the auth flow is misconfigured", err)
		}
		if retrieveErr.Response != nil && retrieveErr.Response.StatusCode == 403 {
			return auth.Denied("the identity provider refused the request", err)
		}
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return err
	}
	return auth.Transport("talking to the identity provider failed", err)
}
