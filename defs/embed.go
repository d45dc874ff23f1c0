package defs

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
	"time"
)

//go:embed *.yaml
var DefsFS embed.FS

// Dir is where on-disk definitions override the embedded ones.
var Dir = "defs"

// Load reads the named definition file. A copy at Dir/name on disk wins over
// the embedded one, so edited definitions take effect without a rebuild. A
// leading "defs/" in name is ignored.
func Load(name string) ([]byte, error) {
	clean := cleanDefPath(name)
	if data, err := os.ReadFile(diskDefPath(clean)); err == nil {
		return data, nil
	}
	return DefsFS.ReadFile(clean)
}

// ModTime reports the modification time of the on-disk override of name. It
// returns false when only the embedded copy exists, which never changes.
func ModTime(name string) (time.Time, bool) {
	clean := cleanDefPath(name)
	info, err := os.Stat(diskDefPath(clean))
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

func cleanDefPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "defs/"); ok {
		return after
	}
	return s
}

func diskDefPath(clean string) string {
	return filepath.Join(Dir, filepath.FromSlash(clean))
}
