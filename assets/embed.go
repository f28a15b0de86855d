package assets

import (
	"embed"
	"io/fs"
	"path/filepath"
	"strings"
)

// Binary assets are dropped next to this file before building, or into an
// assets/ directory beside the executable at runtime.
//
//go:embed *
var assetsFS embed.FS

// FS returns the embedded asset filesystem.
func FS() fs.FS {
	return assetsFS
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if filepath.IsAbs(path) {
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return filepath.Base(path)
	}
	if after, ok := strings.CutPrefix(s, "assets/"); ok {
		return after
	}
	return s
}
