// pkg/installer/launch.go
package installer

import (
	"context"
	"fmt"
	"os/exec"
)

// OSLauncher opens files with the default handler of the operating system.
// It does not wait for the launched program.
type OSLauncher struct {
	GOOS string
}

// Launch starts path and returns once the process is running
func (l OSLauncher) Launch(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	name, args := openCommand(l.GOOS, path)
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting %s: %w", name, err)
	}
	return cmd.Process.Release()
}

func openCommand(goos, path string) (string, []string) {
	switch goos {
	case "windows":
		return "cmd", []string{"/c", "start", "", path}
	case "darwin":
		return "open", []string{path}
	default:
		return "xdg-open", []string{path}
	}
}
