package cmd

import (
	"fmt"
	"net/http"

	"github.com/spf13/viper"
	"golang.org/x/time/rate"

	"github.com/isahakgaming-beep/thunderclient/internals/auth"
	"github.com/isahakgaming-beep/thunderclient/internals/credentials"
	"github.com/isahakgaming-beep/thunderclient/internals/launcher"
	"github.com/isahakgaming-beep/thunderclient/internals/mojauth"
	"github.com/isahakgaming-beep/thunderclient/internals/ownhttp"
	"github.com/isahakgaming-beep/thunderclient/internals/session"
)

// defaultClientID is a registered public Azure application without a
// secret. Users can bring their own via the client_id config key.
const defaultClientID = "810b8eb7-5600-47e4-a6c8-05d1a8fc3d4f"

// newOrchestrator wires the auth stack the way every command needs it.
// onCode is called when an interactive flow wants the user to enter a code.
func newOrchestrator(onCode func(auth.DeviceCode)) *auth.Orchestrator {
	cacheDir := viper.GetString("auth_dir")
	creds := credentials.New(cacheDir)

	// the identity endpoints rate limit aggressively, stay well below that
	httpClient := &http.Client{
		Transport: ownhttp.NewThrottleTransport(
			ownhttp.NewAddHeaderTransport(nil),
			rate.NewLimiter(rate.Limit(10), 20),
		),
	}

	return &auth.Orchestrator{
		Provider:      mojauth.New(httpClient, viper.GetString("client_id"), creds),
		Store:         session.NewStore(viper.GetString("session_file")),
		Creds:         creds,
		CacheDir:      cacheDir,
		Timeout:       viper.GetDuration("login_timeout"),
		OnInteractive: onCode,
	}
}

func newLauncher() *launcher.Launcher {
	return &launcher.Launcher{
		JavaBin: viper.GetString("java_bin"),
		GameDir: viper.GetString("game_dir"),
		RAMMiB:  viper.GetInt("ram_mib"),
	}
}

// printDeviceCode is the CLI side of the interactive callback
func printDeviceCode(code auth.DeviceCode) {
	fmt.Println()
	logger.Headline("Microsoft sign-in")
	logger.Info("Open " + code.VerificationURI + " in your browser")
	logger.Info("and enter the code: " + code.UserCode)
}
