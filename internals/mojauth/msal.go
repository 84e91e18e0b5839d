package mojauth

import (
	"context"
	"os"
	"path/filepath"

	"github.com/AzureAD/microsoft-authentication-library-for-go/apps/cache"
	"github.com/AzureAD/microsoft-authentication-library-for-go/apps/public"

	"github.com/isahakgaming-beep/thunderclient/internals/auth"
)

const msalAuthority = "https://login.microsoftonline.com/consumers"

// msalToken is the historical compatibility path: the same device-code
// idea, but driven through the MSAL library and its own token cache.
// Only reachable as the last resort of the auto preference.
func (c *Client) msalToken(ctx context.Context, req *auth.TokenRequest) (*auth.Session, error) {
	client, err := public.New(
		c.Config.ClientID,
		public.WithAuthority(msalAuthority),
		public.WithCache(&msalFileCache{path: filepath.Join(req.CacheDir, "msal-cache.json")}),
	)
	if err != nil {
		return nil, auth.Misconfigured("could not set up the legacy auth client", err)
	}

	scopes := []string{"XboxLive.signin"}

	// a silent acquisition works when the msal cache still holds a
	// usable account from an earlier run
	if accounts := client.Accounts(); len(accounts) > 0 {
		result, err := client.AcquireTokenSilent(ctx, scopes, public.WithSilentAccount(accounts[0]))
		if err == nil {
			return c.exchange(ctx, result.AccessToken)
		}
	}

	deviceCode, err := client.AcquireTokenByDeviceCode(ctx, scopes)
	if err != nil {
		return nil, classifyOauthError(err)
	}

	if req.OnInteractive != nil {
		req.OnInteractive(auth.DeviceCode{
			UserCode:        deviceCode.Result.UserCode,
			VerificationURI: deviceCode.Result.VerificationURL,
		})
	}

	result, err := deviceCode.AuthenticationResult(ctx)
	if err != nil {
		return nil, classifyOauthError(err)
	}

	return c.exchange(ctx, result.AccessToken)
}

// msalFileCache persists the msal token cache inside the auth cache
// directory, so a cache purge wipes it together with everything else
type msalFileCache struct {
	path string
}

func (f *msalFileCache) Replace(cache cache.Unmarshaler, key string) {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		return
	}
	cache.Unmarshal(raw)
}

func (f *msalFileCache) Export(cache cache.Marshaler, key string) {
	raw, err := cache.Marshal()
	if err != nil {
		return
	}
	os.WriteFile(f.path, raw, 0600)
}
