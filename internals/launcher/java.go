package launcher

import (
	"log"
	"os/exec"

	"github.com/Masterminds/semver/v3"
	"github.com/pkg/errors"
)

// mc 1.17 raised the java floor to 16, 1.18 to 17
var modernJavaFloor = semver.MustParse("1.17.0")

// java resolves the java binary to launch with
func (l *Launcher) java(mcVersion string) (string, error) {
	if l.JavaBin != "" {
		return l.JavaBin, nil
	}
	bin, err := exec.LookPath("java")
	if err != nil {
		return "", errors.Wrap(err, "no java runtime found in PATH")
	}

	// we can't pick a java version for the user, but we can warn them
	if v, err := semver.NewVersion(mcVersion); err == nil {
		if v.Equal(modernJavaFloor) || v.GreaterThan(modernJavaFloor) {
			log.Printf("minecraft %s needs java 16 or newer – using %s", mcVersion, bin)
		}
	}

	return bin, nil
}
