package mojauth

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"golang.org/x/oauth2"

	"github.com/isahakgaming-beep/thunderclient/internals/auth"
)

func TestXblErrorDenied(t *testing.T) {
	cases := []struct {
		xerr   int64
		denied bool
	}{
		{2148916233, true}, // no xbox profile
		{2148916235, true}, // banned region
		{2148916238, true}, // child account
		{2148916234, false},
		{0, false},
	}
	for _, c := range cases {
		res := &xblErrorResponse{XErr: c.xerr}
		if res.denied() != c.denied {
			t.Errorf("XErr %d: denied() = %v, want %v", c.xerr, res.denied(), c.denied)
		}
	}
}

func TestClassifyOauthInvalidGrant(t *testing.T) {
	err := classifyOauthError(&oauth2.RetrieveError{ErrorCode: "invalid_grant"})
	var authErr *auth.Error
	if !errors.As(err, &authErr) || authErr.Kind != auth.KindAuthorizationDenied {
		t.Errorf("invalid_grant should read as denied, got %v", err)
	}
}

func TestClassifyOauthDeclined(t *testing.T) {
	err := classifyOauthError(&oauth2.RetrieveError{ErrorCode: "authorization_declined"})
	var authErr *auth.Error
	if !errors.As(err, &authErr) || authErr.Kind != auth.KindAuthorizationDenied {
		t.Errorf("a declined sign-in should read as denied, got %v", err)
	}
}

func TestClassifyOauthMisconfigured(t *testing.T) {
	err := classifyOauthError(&oauth2.RetrieveError{ErrorCode: "invalid_client"})
	var authErr *auth.Error
	if !errors.As(err, &authErr) || authErr.Kind != auth.KindConfiguration {
		t.Errorf("invalid_client should read as misconfigured, got %v", err)
	}
}

func TestClassifyOauthUnknownIsTransport(t *testing.T) {
	err := classifyOauthError(errors.New("tls handshake broke"))
	var authErr *auth.Error
	if !errors.As(err, &authErr) || authErr.Kind != auth.KindTransport {
		t.Errorf("unknown oauth errors count as transport, got %v", err)
	}
}

func TestNewSetsDeviceEndpoint(t *testing.T) {
	client := New(http.DefaultClient, "some-client-id", nil)
	if client.Config.Endpoint.DeviceAuthURL == "" {
		t.Error("device auth endpoint missing")
	}
	if client.Config.ClientID != "some-client-id" {
		t.Errorf("wrong client id: %q", client.Config.ClientID)
	}
}

func TestRequestTokenUnknownFlow(t *testing.T) {
	client := New(http.DefaultClient, "some-client-id", nil)
	_, err := client.RequestToken(context.Background(), auth.FlowKind("bogus"), &auth.TokenRequest{})
	var authErr *auth.Error
	if !errors.As(err, &authErr) || authErr.Kind != auth.KindConfiguration {
		t.Errorf("an unknown flow is a configuration problem, got %v", err)
	}
}

func TestEntitlementErrorClassification(t *testing.T) {
	cases := []struct {
		status int
		kind   auth.Kind
	}{
		{http.StatusOK, 0},
		{http.StatusUnauthorized, auth.KindAuthorizationDenied},
		{http.StatusForbidden, auth.KindAuthorizationDenied},
		{http.StatusInternalServerError, auth.KindTransport},
		{http.StatusTooManyRequests, auth.KindTransport},
	}
	for _, c := range cases {
		err := entitlementError(c.status)
		if c.status == http.StatusOK {
			if err != nil {
				t.Errorf("status %d should pass, got %v", c.status, err)
			}
			continue
		}
		var authErr *auth.Error
		if !errors.As(err, &authErr) || authErr.Kind != c.kind {
			t.Errorf("status %d: got %v, want kind %v", c.status, err, c.kind)
		}
	}
}
