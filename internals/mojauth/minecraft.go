package mojauth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/isahakgaming-beep/thunderclient/internals/auth"
)

type xboxLoginResponse struct {
	// Username is not the Minecraft username!
	Username string `json:"username"`
	// AccessToken is the Minecraft Java token used for all game requests
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type minecraftAPIError struct {
	Path      string `json:"path"`
	ErrorType string `json:"errorType"`
	// ErrorCode is a string like "NOT_FOUND". The underlying json field name is "error"
	ErrorCode        string `json:"error"`
	ErrorMessage     string `json:"errorMessage"`
	DeveloperMessage string `json:"developerMessage"`
}

func (a *minecraftAPIError) Error() string {
	return fmt.Sprintf("%s: %s", a.ErrorType, a.ErrorMessage)
}

type profileResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (c *Client) minecraftLoginWithXbox(ctx context.Context, userHash string, xstsToken string) (*xboxLoginResponse, error) {
	body := fmt.Sprintf(`{ "identityToken": "XBL3.0 x=%s;%s" }`, userHash, xstsToken)

	req, _ := jsonPostReqFromText(MC_API_XBOX_LOGIN, body)
	req = req.WithContext(ctx)
	res, err := c.Do(req)
	if err != nil {
		return nil, auth.Transport("Minecraft login request failed", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusForbidden || res.StatusCode == http.StatusUnauthorized {
		return nil, auth.Denied("the Minecraft service refused this Xbox account", nil)
	}
	if res.StatusCode != http.StatusOK {
		return nil, auth.Transport(fmt.Sprintf("Minecraft login failed with status %d (%s)", res.StatusCode, res.Status), nil)
	}

	login := xboxLoginResponse{}
	if err := json.NewDecoder(res.Body).Decode(&login); err != nil {
		return nil, auth.Transport("Minecraft login returned an unreadable response", err)
	}
	return &login, nil
}

func (c *Client) checkEntitlements(ctx context.Context, token string) error {
	res, err := c.authedGet(ctx, MC_API_ENTITLEMENT, token)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if err := entitlementError(res.StatusCode); err != nil {
		return err
	}

	// we do not inspect the body. the profile request right after fails
	// with 404 when the account does not own Minecraft Java
	return nil
}

func entitlementError(status int) error {
	switch status {
	case http.StatusOK:
		return nil
	case http.StatusForbidden, http.StatusUnauthorized:
		return auth.Denied("the Minecraft service refused the entitlement check", nil)
	default:
		return auth.Transport(fmt.Sprintf("entitlement check failed with status %d", status), nil)
	}
}

func (c *Client) getProfile(ctx context.Context, token string) (*profileResponse, error) {
	res, err := c.authedGet(ctx, MC_API_PROFILE, token)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	switch res.StatusCode {
	case http.StatusOK:
		// handled below
	case http.StatusNotFound:
		return nil, auth.Denied("this account does not own Minecraft Java Edition", c.apiError(res))
	case http.StatusForbidden, http.StatusUnauthorized:
		return nil, auth.Denied("the Minecraft service refused the profile request", c.apiError(res))
	default:
		return nil, auth.Transport(fmt.Sprintf("profile request failed with status %d", res.StatusCode), c.apiError(res))
	}

	profile := profileResponse{}
	if err := json.NewDecoder(res.Body).Decode(&profile); err != nil {
		return nil, auth.Transport("profile request returned an unreadable response", err)
	}
	return &profile, nil
}

func (c *Client) authedGet(ctx context.Context, url string, token string) (*http.Response, error) {
	if token == "" {
		return nil, auth.Misconfigured("no Minecraft token to authorize the request with", nil)
	}
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, auth.Transport("building request failed", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	res, err := c.Do(req)
	if err != nil {
		return nil, auth.Transport("request to the Minecraft service failed", err)
	}
	return res, nil
}

// apiError tries to decode the typed Minecraft API error body. Returns
// nil when the body is something else entirely.
func (c *Client) apiError(res *http.Response) error {
	apiErr := &minecraftAPIError{}
	if err := json.NewDecoder(res.Body).Decode(apiErr); err != nil {
		return nil
	}
	if apiErr.ErrorType == "" && apiErr.ErrorMessage == "" {
		return nil
	}
	return apiErr
}
