// pkg/installer/version.go
package installer

import (
	"fmt"
	"strings"

	"golang.org/x/mod/semver"

	"github.com/nrfjprog-go/nrfjprog/pkg/jprog"
)

// Required reports whether installed is older than required
func Required(installed jprog.Version, required string) bool {
	return semver.Compare(canonical(installed.String()), canonical(required)) < 0
}

// ValidateVersion checks that v is a semantic version such as "10.12.1"
func ValidateVersion(v string) error {
	if !semver.IsValid(canonical(v)) {
		return fmt.Errorf("invalid version %q", v)
	}
	return nil
}

func canonical(v string) string {
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return v
}
