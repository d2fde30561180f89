package prefabs

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
	"time"
)

//go:embed scenes/*.yaml bodies/*.yaml scripts/*.tengo
var PrefabsFS embed.FS

// Dir is the on-disk prefabs directory. Files found there win over the
// embedded copies so edits can be hot reloaded.
var Dir = "prefabs"

// Load reads a prefab file by its prefabs-relative name.
func Load(name string) ([]byte, error) {
	clean := CleanPath(name)
	if data, err := os.ReadFile(diskPath(clean)); err == nil {
		return data, nil
	}
	return PrefabsFS.ReadFile(clean)
}

// LoadScript reads a script by name; a bare name resolves under scripts/.
func LoadScript(name string) ([]byte, error) {
	return Load(scriptPath(name))
}

func ModTime(name string) (time.Time, bool) {
	info, err := os.Stat(diskPath(CleanPath(name)))
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

// CleanPath turns any path that contains a prefabs directory, such as a
// watcher event, into the prefabs-relative slash form used as a key.
func CleanPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(filepath.Clean(path))
	if i := strings.LastIndex(s, "prefabs/"); i >= 0 {
		s = s[i+len("prefabs/"):]
	}
	return strings.TrimPrefix(s, "./")
}

func scriptPath(name string) string {
	clean := CleanPath(name)
	if strings.HasPrefix(clean, "scripts/") {
		return clean
	}
	return "scripts/" + clean
}

func diskPath(clean string) string {
	return filepath.Join(Dir, filepath.FromSlash(clean))
}

// WatchDirs lists the on-disk directories a Watcher should follow.
func WatchDirs() []string {
	return []string{
		filepath.Join(Dir, "scenes"),
		filepath.Join(Dir, "bodies"),
		filepath.Join(Dir, "scripts"),
	}
}
