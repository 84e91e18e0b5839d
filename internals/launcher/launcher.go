// Package launcher starts the game process for an authenticated session.
// Asset and library downloads are the launcher backend's business – this
// package only builds and spawns the process.
package launcher

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/pbnjay/memory"
	"github.com/pkg/errors"

	"github.com/isahakgaming-beep/thunderclient/internals/auth"
)

// DefaultVersion is launched when the caller does not pick one
const DefaultVersion = "1.21"

const (
	minRAMMiB = 1024
	maxRAMMiB = 3072
)

// Launcher builds and starts the Minecraft process
type Launcher struct {
	// JavaBin overrides the java binary. Empty means $PATH lookup.
	JavaBin string
	// GameDir is the game root (".minecraft" equivalent). Created when missing.
	GameDir string
	// RAMMiB fixes the JVM heap. 0 picks a default from system memory.
	RAMMiB int

	Stdout io.Writer
	Stderr io.Writer
}

// Launch starts the game for the given session and returns the running
// process handle. It refuses to launch without a valid session.
func (l *Launcher) Launch(ctx context.Context, sess *auth.Session, version string) (*exec.Cmd, error) {
	cmd, err := l.BuildCmd(ctx, sess, version)
	if err != nil {
		return nil, err
	}
	if err := cmd.Start(); err != nil {
		return nil, errors.Wrap(err, "starting minecraft")
	}
	return cmd, nil
}

// BuildCmd constructs the launch command without starting it
func (l *Launcher) BuildCmd(ctx context.Context, sess *auth.Session, version string) (*exec.Cmd, error) {
	if !sess.Valid() || sess.AccessToken == "" {
		return nil, auth.ErrSignInRequired
	}
	if version == "" {
		version = DefaultVersion
	}

	if err := os.MkdirAll(l.GameDir, 0755); err != nil {
		return nil, errors.Wrap(err, "creating game directory")
	}

	javaBin, err := l.java(version)
	if err != nil {
		return nil, err
	}

	ram := l.ramMiB()
	clientJar := filepath.Join(l.GameDir, "versions", version, version+".jar")

	args := []string{
		fmt.Sprintf("-Xms%dM", minRAMMiB),
		fmt.Sprintf("-Xmx%dM", ram),
		"-jar", clientJar,
		"--username", sess.DisplayName,
		"--uuid", sess.AccountID,
		"--accessToken", sess.AccessToken,
		"--userType", "msa",
		"--version", version,
		"--gameDir", l.GameDir,
	}

	cmd := exec.CommandContext(ctx, javaBin, args...)
	cmd.Dir = l.GameDir
	cmd.Stdout = l.Stdout
	cmd.Stderr = l.Stderr
	return cmd, nil
}

// ramMiB picks the JVM heap size: half the system memory, kept inside
// the 1G..3G window the launcher always used
func (l *Launcher) ramMiB() int {
	if l.RAMMiB > 0 {
		return l.RAMMiB
	}
	sysMemMiB := int(memory.TotalMemory() / 1024 / 1024)
	ram := sysMemMiB / 2
	if ram < minRAMMiB {
		ram = minRAMMiB
	}
	if ram > maxRAMMiB {
		ram = maxRAMMiB
	}
	return ram
}
