// Package mojauth implements the Microsoft → Xbox Live → XSTS →
// Minecraft Java token exchange and exposes it as a flow based token
// provider for the auth orchestrator.
package mojauth

import (
	"context"
	"crypto/tls"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/microsoft"

	"github.com/isahakgaming-beep/thunderclient/internals/auth"
	"github.com/isahakgaming-beep/thunderclient/internals/credentials"
)

const (
	XBL_AUTHENTICATE   = "https://user.auth.xboxlive.com/user/authenticate"
	XBL_XSTS_AUTHORIZE = "https://xsts.auth.xboxlive.com/xsts/authorize"
	MC_API_XBOX_LOGIN  = "https://api.minecraftservices.com/authentication/login_with_xbox"
	MC_API_ENTITLEMENT = "https://api.minecraftservices.com/entitlements/mcstore"
	MC_API_PROFILE     = "https://api.minecraftservices.com/minecraft/profile"

	// not every x/oauth2 endpoint definition carries the device
	// authorization endpoint, set it by hand when absent
	deviceAuthURL = "https://login.microsoftonline.com/consumers/oauth2/v2.0/devicecode"
)

// Client talks to the Microsoft/Xbox/Minecraft identity services
type Client struct {
	*http.Client
	// xblClient is a separate client because the Xbox endpoints require
	// the horrifying TLS renegotiation option (see `New`)
	xblClient *http.Client
	Config    *oauth2.Config
	Creds     *credentials.Store
}

// New creates a mojauth client. creds backs the silent flow and
// receives refreshed tokens from every flow.
func New(httpClient *http.Client, clientID string, creds *credentials.Store) *Client {
	// shallow copy so we don't modify the shared client
	lessSecureClient := *httpClient
	// we need this cause MS API
	// https://stackoverflow.com/questions/57420833/tls-no-renegotiation-error-on-http-request
	lessSecureClient.Transport = &http.Transport{
		TLSClientConfig: &tls.Config{Renegotiation: tls.RenegotiateOnceAsClient},
	}

	config := &oauth2.Config{
		ClientID: clientID,
		Scopes:   []string{"XboxLive.signin", "offline_access"},
		Endpoint: microsoft.AzureADEndpoint("consumers"),
	}
	if config.Endpoint.DeviceAuthURL == "" {
		config.Endpoint.DeviceAuthURL = deviceAuthURL
	}

	return &Client{
		Client:    httpClient,
		xblClient: &lessSecureClient,
		Config:    config,
		Creds:     creds,
	}
}

// RequestToken implements auth.TokenProvider
func (c *Client) RequestToken(ctx context.Context, flow auth.FlowKind, req *auth.TokenRequest) (*auth.Session, error) {
	switch flow {
	case auth.FlowSISU:
		return c.sisuToken(ctx)
	case auth.FlowLive:
		return c.liveToken(ctx, req)
	case auth.FlowMSALLegacy:
		return c.msalToken(ctx, req)
	}
	return nil, auth.Misconfigured("unknown auth flow "+string(flow), nil)
}

// exchange walks a Microsoft access token through XBL, XSTS and the
// Minecraft services down to a playable session
func (c *Client) exchange(ctx context.Context, msAccessToken string) (*auth.Session, error) {
	xbl, err := c.xblAuth(ctx, msAccessToken)
	if err != nil {
		return nil, err
	}

	xsts, err := c.xstsAuth(ctx, xbl.Token)
	if err != nil {
		return nil, err
	}
	if len(xsts.DisplayClaims.Xui) == 0 {
		return nil, auth.Denied("XBL auth failed: no XUI claim", nil)
	}
	userHash := xsts.DisplayClaims.Xui[0].Uhs

	minecraftAuth, err := c.minecraftLoginWithXbox(ctx, userHash, xsts.Token)
	if err != nil {
		return nil, err
	}

	if err := c.checkEntitlements(ctx, minecraftAuth.AccessToken); err != nil {
		return nil, err
	}

	profile, err := c.getProfile(ctx, minecraftAuth.AccessToken)
	if err != nil {
		return nil, err
	}

	return &auth.Session{
		AccountID:   profile.ID,
		DisplayName: profile.Name,
		AccessToken: minecraftAuth.AccessToken,
	}, nil
}
