package launcher

import (
	"context"
	"strings"
	"testing"

	"github.com/isahakgaming-beep/thunderclient/internals/auth"
)

func testLauncher(t *testing.T) *Launcher {
	t.Helper()
	return &Launcher{
		JavaBin: "/usr/bin/true", // no real jvm needed to build the command
		GameDir: t.TempDir(),
	}
}

func steve() *auth.Session {
	return &auth.Session{AccountID: "abcd1234", DisplayName: "Steve", AccessToken: "tok"}
}

func TestBuildCmdWithoutSession(t *testing.T) {
	l := testLauncher(t)

	if _, err := l.BuildCmd(context.Background(), nil, ""); auth.CodeOf(err) != auth.CodeSignInRequired {
		t.Errorf("launching without a session must demand a sign-in, got %v", err)
	}

	// a session without a token is just as useless
	noToken := &auth.Session{AccountID: "abcd1234", DisplayName: "Steve"}
	if _, err := l.BuildCmd(context.Background(), noToken, ""); auth.CodeOf(err) != auth.CodeSignInRequired {
		t.Errorf("launching without a token must demand a sign-in, got %v", err)
	}
}

func TestBuildCmdArgs(t *testing.T) {
	l := testLauncher(t)
	cmd, err := l.BuildCmd(context.Background(), steve(), "1.20.4")
	if err != nil {
		t.Fatal(err)
	}

	args := strings.Join(cmd.Args, " ")
	for _, want := range []string{
		"--username Steve",
		"--uuid abcd1234",
		"--accessToken tok",
		"--userType msa",
		"--version 1.20.4",
	} {
		if !strings.Contains(args, want) {
			t.Errorf("launch args missing %q: %s", want, args)
		}
	}
	if cmd.Dir != l.GameDir {
		t.Errorf("process should run in the game dir, runs in %q", cmd.Dir)
	}
}

func TestBuildCmdDefaultsVersion(t *testing.T) {
	l := testLauncher(t)
	cmd, err := l.BuildCmd(context.Background(), steve(), "")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(strings.Join(cmd.Args, " "), "--version "+DefaultVersion) {
		t.Errorf("empty version should default to %s", DefaultVersion)
	}
}

func TestRAMDefaultStaysInWindow(t *testing.T) {
	l := testLauncher(t)
	ram := l.ramMiB()
	if ram < minRAMMiB || ram > maxRAMMiB {
		t.Errorf("default heap %dM outside the %d..%d window", ram, minRAMMiB, maxRAMMiB)
	}

	l.RAMMiB = 2048
	if l.ramMiB() != 2048 {
		t.Error("explicit heap size should win")
	}
}
