package credentials

import (
	"testing"
	"time"

	"golang.org/x/oauth2"
)

// all tests force NoKeyRingMode – CI has no keyring and the keyring
// path is just a different backend for the same bytes

func fileStore(t *testing.T) *Store {
	t.Helper()
	store := New(t.TempDir())
	store.NoKeyRingMode = true
	return store
}

func TestTokenRoundtrip(t *testing.T) {
	store := fileStore(t)

	token := &oauth2.Token{
		AccessToken:  "access",
		RefreshToken: "refresh",
		Expiry:       time.Now().Add(time.Hour),
	}
	if err := store.SetToken(token); err != nil {
		t.Fatal(err)
	}

	got := store.Token()
	if got == nil {
		t.Fatal("token should be readable")
	}
	if got.RefreshToken != "refresh" {
		t.Errorf("refresh token lost: %+v", got)
	}
}

func TestTokenMissing(t *testing.T) {
	if fileStore(t).Token() != nil {
		t.Error("an empty store has no token")
	}
}

func TestPurge(t *testing.T) {
	store := fileStore(t)

	if err := store.Purge(); err != nil {
		t.Errorf("purging an empty store is fine: %s", err)
	}

	if err := store.SetToken(&oauth2.Token{RefreshToken: "refresh"}); err != nil {
		t.Fatal(err)
	}
	if err := store.Purge(); err != nil {
		t.Fatal(err)
	}
	if store.Token() != nil {
		t.Error("token still readable after purge")
	}
}
