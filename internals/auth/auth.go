package auth

import (
	"context"
	"log"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/isahakgaming-beep/thunderclient/internals/credentials"
	"github.com/isahakgaming-beep/thunderclient/internals/session"
)

// DefaultTimeout bounds a single flow attempt. Interactive flows need
// enough room for the user to fetch their phone and type a code.
const DefaultTimeout = 150 * time.Second

// Orchestrator owns the decision which OAuth flow to attempt, in which
// order, with what timeout, and keeps the token cache and the persisted
// session record consistent with the outcome.
type Orchestrator struct {
	// Provider executes a single flow attempt
	Provider TokenProvider
	// Store holds the persisted session record (identity only, no token)
	Store *session.Store
	// Creds is the secret store backing the silent flow. Purged together
	// with the cache directory.
	Creds *credentials.Store
	// CacheDir is the directory the provider caches tokens in.
	// The orchestrator is the only one allowed to delete it.
	CacheDir string
	// Timeout per attempt. Zero means DefaultTimeout.
	Timeout time.Duration
	// OnInteractive is notified when a device-code flow needs the user
	// to act. Must not block.
	OnInteractive func(DeviceCode)

	busy int32
}

// Authenticate produces a valid session for the given flow preference.
//
// Auto runs sisu first and falls back to the interactive live flow on
// any sisu failure short of a timeout. The cache is purged between the
// two attempts only when sisu failed in a way that means the cached
// state can never work (denied / misconfigured). The legacy msal path
// runs as a last resort after live.
func (o *Orchestrator) Authenticate(ctx context.Context, pref Preference) (*Session, error) {
	if !atomic.CompareAndSwapInt32(&o.busy, 0, 1) {
		return nil, ErrAuthInProgress
	}
	defer atomic.StoreInt32(&o.busy, 0)

	if err := o.ensureCacheDir(); err != nil {
		return nil, err
	}

	switch pref {
	case PreferSISU:
		return o.finish(o.attempt(ctx, FlowSISU))
	case PreferLive:
		return o.finish(o.attempt(ctx, FlowLive))
	default:
		return o.finish(o.authenticateAuto(ctx))
	}
}

func (o *Orchestrator) authenticateAuto(ctx context.Context) (*Session, error) {
	sess, sisuErr := o.attempt(ctx, FlowSISU)
	if sisuErr == nil {
		return sess, nil
	}
	if IsTimeout(sisuErr) {
		return nil, sisuErr
	}
	log.Printf("sisu flow failed (%s), falling back to live", sisuErr)

	if shouldPurge(sisuErr) {
		if err := o.purgeCache(); err != nil {
			return nil, err
		}
	}

	sess, liveErr := o.attempt(ctx, FlowLive)
	if liveErr == nil {
		return sess, nil
	}
	if IsTimeout(liveErr) {
		return nil, liveErr
	}
	log.Printf("live flow failed (%s), trying legacy msal path", liveErr)

	if sess, err := o.attempt(ctx, FlowMSALLegacy); err == nil {
		return sess, nil
	} else {
		log.Printf("legacy msal path failed as well: %s", err)
	}

	// the live error is what we report. it is the flow the user
	// actually saw something of.
	return nil, liveErr
}

// attempt runs one flow under the timeout guard. A provider that
// resolves after the deadline is discarded.
func (o *Orchestrator) attempt(ctx context.Context, flow FlowKind) (*Session, error) {
	timeout := o.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req := &TokenRequest{
		CacheDir:      o.CacheDir,
		OnInteractive: o.interactiveNotifier(),
	}

	type outcome struct {
		session *Session
		err     error
	}
	// buffered so a late provider completion does not leak the goroutine
	done := make(chan outcome, 1)
	go func() {
		s, err := o.Provider.RequestToken(ctx, flow, req)
		done <- outcome{s, err}
	}()

	select {
	case res := <-done:
		if res.err != nil {
			return nil, classify(res.err)
		}
		if res.session == nil {
			return nil, Transport("identity provider returned an incomplete profile", nil)
		}
		sess := normalize(res.session)
		if !sess.Valid() {
			return nil, Transport("identity provider returned an incomplete profile", nil)
		}
		return sess, nil
	case <-ctx.Done():
		if ctx.Err() == context.Canceled {
			return nil, classify(ctx.Err())
		}
		return nil, timedOut()
	}
}

// interactiveNotifier wraps the user callback so the provider can not
// block the attempt or fire it twice
func (o *Orchestrator) interactiveNotifier() func(DeviceCode) {
	var once sync.Once
	return func(code DeviceCode) {
		once.Do(func() {
			if o.OnInteractive == nil {
				return
			}
			go o.OnInteractive(code)
		})
	}
}

// finish persists a successful session. Failures pass through untouched
// so the previous record stays intact.
func (o *Orchestrator) finish(sess *Session, err error) (*Session, error) {
	if err != nil {
		log.Printf("authentication failed: %s (%s)", err, CodeOf(err))
		return nil, err
	}
	record := &session.Record{
		AccountID:   sess.AccountID,
		DisplayName: sess.DisplayName,
		UpdatedAt:   time.Now(),
	}
	if writeErr := o.Store.Write(record); writeErr != nil {
		return nil, Filesystem("could not persist session record", writeErr)
	}
	log.Printf("authenticated as %s (%s)", sess.DisplayName, sess.AccountID)
	return sess, nil
}

// Status returns the last known signed-in identity, or nil. It never
// touches the network and never fails – I/O trouble reads as "no session".
func (o *Orchestrator) Status() *session.Record {
	record := o.Store.Read()
	if record == nil || !record.Valid() {
		return nil
	}
	return record
}

// Reset wipes the token cache and the session record. Safe to call
// when nothing exists yet.
func (o *Orchestrator) Reset() error {
	if err := o.purgeCache(); err != nil {
		return err
	}
	if err := o.Store.Delete(); err != nil {
		return Filesystem("could not remove session record", err)
	}
	return nil
}

// ensureCacheDir makes sure the provider has a writable home before
// any attempt starts. Idempotent.
func (o *Orchestrator) ensureCacheDir() error {
	if err := os.MkdirAll(o.CacheDir, 0700); err != nil {
		return Filesystem("could not create auth cache directory", err)
	}
	return nil
}

// purgeCache drops every cached token artifact and recreates an empty
// cache directory
func (o *Orchestrator) purgeCache() error {
	if o.Creds != nil {
		if err := o.Creds.Purge(); err != nil {
			// the keyring entry is best effort, the directory wipe below
			// removes the file fallback either way
			log.Printf("could not clear keyring entry: %s", err)
		}
	}
	if err := os.RemoveAll(o.CacheDir); err != nil {
		return Filesystem("could not clear auth cache directory", err)
	}
	return o.ensureCacheDir()
}
