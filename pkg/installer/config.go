// pkg/installer/config.go
package installer

import (
	"fmt"
	"regexp"

	"github.com/nrfjprog-go/nrfjprog/pkg/core"
)

// ConfigFrom builds an installer configuration from the user configuration
func ConfigFrom(c *core.Config) (*Config, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	include := DefaultInclude
	if c.Include != "" && c.Include != DefaultInclude.String() {
		re, err := regexp.Compile(c.Include)
		if err != nil {
			return nil, fmt.Errorf("include pattern: %w", err)
		}
		include = re
	}

	urls := make(map[string]string, len(c.URLs))
	for k, v := range c.URLs {
		urls[k] = v
	}

	return &Config{
		RequiredVersion: c.RequiredVersion,
		DownloadDir:     c.Home,
		LibDir:          c.LibDir,
		StripComponents: c.StripComponents,
		Include:         include,
		URLs:            urls,
		Timeout:         c.Timeout,
		Debug:           c.Debug,
	}, nil
}
