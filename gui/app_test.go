package gui

import (
	"context"
	"os/exec"
	"testing"

	"github.com/isahakgaming-beep/thunderclient/internals/auth"
	"github.com/isahakgaming-beep/thunderclient/internals/launcher"
)

func TestReapCollectsExitedGame(t *testing.T) {
	trueBin, err := exec.LookPath("true")
	if err != nil {
		t.Skip("no `true` binary on this system")
	}

	l := &launcher.Launcher{
		JavaBin: trueBin,
		GameDir: t.TempDir(),
	}
	sess := &auth.Session{
		AccountID:   "d36045c95f6e41849aa03d2cc3d4f6c4",
		DisplayName: "Steve",
		AccessToken: "token",
	}

	cmd, err := l.Launch(context.Background(), sess, "")
	if err != nil {
		t.Fatal(err)
	}

	app := NewApp()
	app.reap(cmd)

	if cmd.ProcessState == nil || !cmd.ProcessState.Exited() {
		t.Error("the game process was never collected")
	}
}
