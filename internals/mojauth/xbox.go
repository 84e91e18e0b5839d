package mojauth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/isahakgaming-beep/thunderclient/internals/auth"
)

type xblAuthResponse struct {
	IssueInstant  time.Time `json:"IssueInstant"`
	NotAfter      time.Time `json:"NotAfter"`
	Token         string    `json:"Token"`
	DisplayClaims struct {
		Xui []struct {
			Uhs string `json:"uhs"`
		} `json:"xui"`
	} `json:"DisplayClaims"`
}

type xblErrorResponse struct {
	Identity string `json:"Identity"`
	XErr     int64  `json:"XErr"`
	Message  string `json:"Message"`
	Redirect string `json:"Redirect"`
}

func (x *xblErrorResponse) Error() string {
	if x.Message != "" {
		return fmt.Sprintf("%s (%d)", x.Message, x.XErr)
	}
	return fmt.Sprintf("error code: %d", x.XErr)
}

// denied reports whether this XErr means the account itself is the
// problem (no gamertag, banned region, child account, ...)
func (x *xblErrorResponse) denied() bool {
	switch x.XErr {
	case 2148916233: // account has no Xbox profile
		return true
	case 2148916235: // Xbox Live is banned in the account's region
		return true
	case 2148916236, 2148916237: // adult verification needed (South Korea)
		return true
	case 2148916238: // child account without family consent
		return true
	}
	return false
}

// hint gives the user something actionable for the common XErr cases
func (x *xblErrorResponse) hint() string {
	switch x.XErr {
	case 2148916233:
		return "this Microsoft account has no Xbox profile – create a gamertag at xbox.com first"
	case 2148916238:
		return "this is a child account – a parent needs to add it to a Microsoft family"
	}
	return "Xbox Live refused the sign-in"
}

func (c *Client) xblAuth(ctx context.Context, token string) (*xblAuthResponse, error) {
	body := fmt.Sprintf(`{
		"Properties": {
				"AuthMethod": "RPS",
				"SiteName": "user.auth.xboxlive.com",
				"RpsTicket": "d=%s"
		},
		"RelyingParty": "http://auth.xboxlive.com",
		"TokenType": "JWT"
	}`, token)
	return c.xblRequest(ctx, XBL_AUTHENTICATE, body, "XBL auth")
}

func (c *Client) xstsAuth(ctx context.Context, xblToken string) (*xblAuthResponse, error) {
	body := fmt.Sprintf(`{
		"Properties": {
				"SandboxId": "RETAIL",
				"UserTokens": ["%s"]
		},
		"RelyingParty": "rp://api.minecraftservices.com/",
		"TokenType": "JWT"
	}`, xblToken)
	return c.xblRequest(ctx, XBL_XSTS_AUTHORIZE, body, "XBL XSTS auth")
}

func (c *Client) xblRequest(ctx context.Context, url string, body string, what string) (*xblAuthResponse, error) {
	req, _ := jsonPostReqFromText(url, body)
	req = req.WithContext(ctx)
	res, err := c.xblClient.Do(req)
	if err != nil {
		return nil, auth.Transport(what+" request failed", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		// try to parse the response
		errorResponse := &xblErrorResponse{}
		if err := json.NewDecoder(res.Body).Decode(errorResponse); err == nil && errorResponse.XErr != 0 {
			if errorResponse.denied() {
				return nil, auth.Denied(errorResponse.hint(), errorResponse)
			}
			return nil, auth.Transport(what+" failed", errorResponse)
		}
		if res.StatusCode == http.StatusUnauthorized || res.StatusCode == http.StatusForbidden {
			return nil, auth.Denied(fmt.Sprintf("%s refused with status %d", what, res.StatusCode), nil)
		}
		return nil, auth.Transport(fmt.Sprintf("%s failed with status %d (%s)", what, res.StatusCode, res.Status), nil)
	}

	authResponse := xblAuthResponse{}
	if err := json.NewDecoder(res.Body).Decode(&authResponse); err != nil {
		return nil, auth.Transport(what+" returned an unreadable response", err)
	}
	return &authResponse, nil
}

func jsonPostReqFromText(url string, text string) (*http.Request, error) {
	body := bytes.NewBufferString(text)
	req, _ := http.NewRequest("POST", url, body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	return req, nil
}
