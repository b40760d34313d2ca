// pkg/platform/utils.go
package platform

import "strings"

var archiveExts = []string{".tar.gz", ".tgz", ".tar.xz", ".txz", ".tar.zst", ".tar", ".exe"}

// archiveExt returns the recognised extension of name, or ""
func archiveExt(name string) string {
	lower := strings.ToLower(name)
	for _, ext := range archiveExts {
		if strings.HasSuffix(lower, ext) {
			return ext
		}
	}
	return ""
}
