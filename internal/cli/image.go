package cli

import (
	"net/url"
	"path/filepath"
	"strings"
)

// imageURI turns local paths into file URIs. Anything that already has a
// scheme is returned unchanged.
func imageURI(src string) string {
	if strings.Contains(src, "://") {
		return src
	}
	abs, err := filepath.Abs(src)
	if err != nil {
		return src
	}
	abs = filepath.ToSlash(abs)
	if !strings.HasPrefix(abs, "/") {
		// Windows drive paths.
		abs = "/" + abs
	}
	return (&url.URL{Scheme: "file", Path: abs}).String()
}
