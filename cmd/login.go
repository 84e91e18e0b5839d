package cmd

import (
	"context"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/isahakgaming-beep/thunderclient/internals/auth"
)

var loginFlow string

var loginCmd = &cobra.Command{
	Use:     "login",
	Aliases: []string{"signin"},
	Short:   "Sign in with your Microsoft account",
	Run: func(cmd *cobra.Command, args []string) {
		login()
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginFlow, "flow", "auto", "auth flow to use (auto, sisu or live)")
	rootCmd.AddCommand(loginCmd)
}

func login() {
	var pref auth.Preference
	switch loginFlow {
	case "auto":
		pref = auth.PreferAuto
	case "sisu":
		pref = auth.PreferSISU
	case "live":
		pref = auth.PreferLive
	default:
		logger.Fail("unknown flow \"" + loginFlow + "\" – use auto, sisu or live")
	}

	orch := newOrchestrator(printDeviceCode)

	var spin *spinner.Spinner
	if isatty.IsTerminal(os.Stdout.Fd()) {
		spin = spinner.New(spinner.CharSets[9], 300*time.Millisecond)
		spin.Prefix = " "
		spin.Suffix = " Signing in …"
		spin.Start()
	}

	sess, err := orch.Authenticate(context.Background(), pref)
	if spin != nil {
		spin.Stop()
	}

	if err != nil {
		switch auth.CodeOf(err) {
		case auth.CodeLoginTimeout:
			logger.Warn(err.Error())
			os.Exit(1)
		default:
			logger.Fail(err.Error())
		}
	}

	logger.Info("Signed in as " + sess.DisplayName + " (" + sess.AccountID + ")")
}
