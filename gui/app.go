package gui

import (
	"context"
	"os/exec"

	"github.com/wailsapp/wails/v2/pkg/runtime"

	"github.com/isahakgaming-beep/thunderclient/internals/auth"
	"github.com/isahakgaming-beep/thunderclient/internals/launcher"
)

// App struct
type App struct {
	ctx      context.Context
	Orch     *auth.Orchestrator
	Launcher *launcher.Launcher
}

// Profile is the identity shape the frontend renders
type Profile struct {
	AccountID   string `json:"accountId"`
	DisplayName string `json:"displayName"`
}

// Result is the discriminated result every binding returns
type Result struct {
	OK      bool     `json:"ok"`
	Profile *Profile `json:"profile,omitempty"`
	Error   string   `json:"error,omitempty"`
	Code    string   `json:"code,omitempty"`
}

// NewApp creates a new App application struct
func NewApp() *App {
	return &App{}
}

// startup is called when the app starts. The context is saved
// so we can call the runtime methods
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx

	// device codes go to the frontend as an event, never as a dialog –
	// the blocking wait happens server side
	a.Orch.OnInteractive = func(code auth.DeviceCode) {
		runtime.EventsEmit(a.ctx, "auth:device-code", code)
	}
}

// Login runs the requested auth flow ("auto", "sisu" or "live")
func (a *App) Login(flow string) Result {
	var pref auth.Preference
	switch flow {
	case "sisu":
		pref = auth.PreferSISU
	case "live":
		pref = auth.PreferLive
	default:
		pref = auth.PreferAuto
	}

	sess, err := a.Orch.Authenticate(a.ctx, pref)
	if err != nil {
		return Result{OK: false, Error: err.Error(), Code: auth.CodeOf(err)}
	}
	return Result{OK: true, Profile: &Profile{
		AccountID:   sess.AccountID,
		DisplayName: sess.DisplayName,
	}}
}

// Status returns the last signed in identity without any network I/O
func (a *App) Status() Result {
	record := a.Orch.Status()
	if record == nil {
		return Result{OK: false, Code: auth.CodeSignInRequired}
	}
	return Result{OK: true, Profile: &Profile{
		AccountID:   record.AccountID,
		DisplayName: record.DisplayName,
	}}
}

// Logout clears the session and every cached token
func (a *App) Logout() Result {
	if err := a.Orch.Reset(); err != nil {
		return Result{OK: false, Error: err.Error(), Code: auth.CodeOf(err)}
	}
	return Result{OK: true}
}

// Launch signs in (silently when possible) and starts the game
func (a *App) Launch(version string) Result {
	sess, err := a.Orch.Authenticate(a.ctx, auth.PreferAuto)
	if err != nil {
		return Result{OK: false, Error: err.Error(), Code: auth.CodeOf(err)}
	}

	cmd, err := a.Launcher.Launch(a.ctx, sess, version)
	if err != nil {
		return Result{OK: false, Error: err.Error(), Code: auth.CodeOf(err)}
	}
	go a.reap(cmd)
	return Result{OK: true, Profile: &Profile{
		AccountID:   sess.AccountID,
		DisplayName: sess.DisplayName,
	}}
}

// reap waits for the game process so it does not linger as a zombie
// after exit. The frontend does not care about the exit code.
func (a *App) reap(cmd *exec.Cmd) {
	cmd.Wait()
}
