// Package credentials keeps the Microsoft refresh token around between
// runs so the silent (sisu) flow can sign in without user interaction.
// The token goes to the OS keyring when one is available and falls back
// to a file inside the auth cache directory otherwise.
package credentials

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/zalando/go-keyring"
	"golang.org/x/oauth2"
)

var (
	keyringService = "thunderclient"
	keyringUser    = "microsoft_auth_data"
)

const fallbackFile = "ms-token.json"

// Store holds the cached Microsoft oauth token
type Store struct {
	cacheDir string

	// NoKeyRingMode switches to plain file storage. Set automatically
	// when the keyring is unusable, can be forced for tests.
	NoKeyRingMode bool
}

// New returns a store rooted in the given cache directory
func New(cacheDir string) *Store {
	return &Store{cacheDir: cacheDir}
}

// Token returns the cached oauth token, or nil when nothing is cached
func (s *Store) Token() *oauth2.Token {
	if s.NoKeyRingMode {
		return s.tokenFromFile()
	}

	raw, err := keyring.Get(keyringService, keyringUser)
	switch err {
	case nil:
		token := &oauth2.Token{}
		if err := json.Unmarshal([]byte(raw), token); err != nil {
			return nil
		}
		return token
	case keyring.ErrNotFound:
		return nil
	default:
		// no usable keyring on this system, use the file from now on
		s.NoKeyRingMode = true
		return s.tokenFromFile()
	}
}

// SetToken persists the given oauth token
func (s *Store) SetToken(token *oauth2.Token) error {
	raw, err := json.Marshal(token)
	if err != nil {
		return errors.Wrap(err, "encoding oauth token")
	}

	if !s.NoKeyRingMode {
		if err := keyring.Set(keyringService, keyringUser, string(raw)); err == nil {
			return nil
		}
		s.NoKeyRingMode = true
	}

	if err := os.MkdirAll(s.cacheDir, 0700); err != nil {
		return errors.Wrap(err, "creating cache directory")
	}
	return os.WriteFile(s.file(), raw, 0600)
}

// Purge drops the cached token from the keyring and the file fallback
func (s *Store) Purge() error {
	if !s.NoKeyRingMode {
		if err := keyring.Delete(keyringService, keyringUser); err != nil && err != keyring.ErrNotFound {
			// tolerated: systems without a keyring error here, the file
			// below is the actual cache then
			s.NoKeyRingMode = true
		}
	}
	if err := os.Remove(s.file()); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "removing cached token")
	}
	return nil
}

func (s *Store) file() string {
	return filepath.Join(s.cacheDir, fallbackFile)
}

func (s *Store) tokenFromFile() *oauth2.Token {
	raw, err := os.ReadFile(s.file())
	if err != nil {
		return nil
	}
	token := &oauth2.Token{}
	if err := json.Unmarshal(raw, token); err != nil {
		return nil
	}
	return token
}
