package auth

import (
	"context"
	"strings"
)

// FlowKind names one of the supported OAuth flows
type FlowKind string

const (
	// FlowSISU is the silent title flow, running off a cached refresh token
	FlowSISU FlowKind = "sisu"
	// FlowLive is the interactive device-code flow
	FlowLive FlowKind = "live"
	// FlowMSALLegacy is the historical MSAL device-code path. It is never
	// caller selectable and only runs as the very last resort in auto mode.
	FlowMSALLegacy FlowKind = "msal"
)

// Preference is the caller selected flow choice
type Preference string

const (
	PreferAuto Preference = "auto"
	PreferSISU Preference = "sisu"
	PreferLive Preference = "live"
)

// DeviceCode is handed to the interactive callback for device-code flows
type DeviceCode struct {
	UserCode        string `json:"userCode"`
	VerificationURI string `json:"verificationUri"`
}

// TokenRequest carries the per-attempt parameters into the provider
type TokenRequest struct {
	// CacheDir is where the provider keeps its refresh tokens and
	// other artifacts. It exists and is writable before any attempt.
	CacheDir string
	// OnInteractive is called (at most once, without blocking the attempt)
	// before a device-code flow starts its wait
	OnInteractive func(DeviceCode)
}

// TokenProvider turns one flow attempt into a Minecraft session.
// Implementations own the whole OAuth/XSTS/profile exchange.
type TokenProvider interface {
	RequestToken(ctx context.Context, flow FlowKind, req *TokenRequest) (*Session, error)
}

// Session is the authenticated identity the rest of the app consumes
type Session struct {
	// AccountID is the canonical (dashes stripped) player uuid
	AccountID string
	// DisplayName is the in-game player name
	DisplayName string
	// AccessToken is the Minecraft Java token. Held in memory only,
	// it is never written to the session record.
	AccessToken string
}

// Valid reports whether the session carries a usable identity
func (s *Session) Valid() bool {
	return s != nil && s.AccountID != "" && s.DisplayName != ""
}

// fallbackDisplayName is used when a provider hands us a profile
// without a name (seen with brand new accounts)
const fallbackDisplayName = "Player"

// normalize canonicalizes whatever shape the provider returned
func normalize(s *Session) *Session {
	s.AccountID = strings.ReplaceAll(s.AccountID, "-", "")
	if s.DisplayName == "" {
		s.DisplayName = fallbackDisplayName
	}
	return s
}
