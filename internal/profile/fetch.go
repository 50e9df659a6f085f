package profile

import (
	"fmt"
	"path/filepath"
	"strings"

	get "github.com/hashicorp/go-getter"
)

// IsRemote reports whether src is a go-getter URL rather than a local
// file path.
func IsRemote(src string) bool {
	return strings.Contains(src, "::") ||
		strings.HasPrefix(src, "http://") ||
		strings.HasPrefix(src, "https://") ||
		strings.HasPrefix(src, "git::")
}

// Fetch downloads a remote profile file into cacheDir and returns the
// local path to load. Supports the go-getter URL forms (http, git with
// // subpaths, etc).
func Fetch(src, cacheDir string) (string, error) {
	dst := filepath.Join(cacheDir, "profile.yaml")
	if err := get.GetFile(dst, src); err != nil {
		return "", fmt.Errorf("fetch profile %q: %w", src, err)
	}
	return dst, nil
}
