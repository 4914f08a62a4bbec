package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// ResolveAsset maps an image reference to a file under dir. References cannot
// escape dir. A missing or unreadable file yields ErrAssetMissing.
func ResolveAsset(dir, name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("%w: empty reference", ErrAssetMissing)
	}

	path := filepath.Join(dir, filepath.Clean(string(filepath.Separator)+name))
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrAssetMissing, name)
	}
	return path, nil
}
