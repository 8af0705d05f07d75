package application

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
)

const (
	// AppName is the application name used for directories and identification
	AppName = "macromind"

	// AppExeName is the executable name (without extension)
	AppExeName = "macromind"

	// Version is reported by the version command
	Version = "0.3.0"
)

var (
	once   sync.Once
	appDir string
	errDir error
)

// GetApplicationDirectory returns the macromind data directory path.
// Linux: ~/.config/macromind (via os.UserConfigDir)
// Windows: C:\Users\{username}\AppData\Local\macromind (via os.UserCacheDir)
func GetApplicationDirectory() (string, error) {
	once.Do(lazyLoad)

	if errDir != nil {
		return "", errDir
	}

	return appDir, nil
}

// EnsureDirectory creates dir (or the default application directory when
// dir is empty) and returns the resolved path.
func EnsureDirectory(dir string) (string, error) {
	if dir == "" {
		d, err := GetApplicationDirectory()
		if err != nil {
			return "", err
		}

		dir = d
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create data directory %s: %w", dir, err)
	}

	return dir, nil
}

func lazyLoad() {
	var (
		baseDir string
		err     error
	)

	switch runtime.GOOS {
	case "windows":
		// Windows: use AppData\Local (via UserCacheDir)
		baseDir, err = os.UserCacheDir()
	default:
		baseDir, err = os.UserConfigDir()
	}

	if err != nil {
		errDir = fmt.Errorf("failed to get config directory: %w", err)
		return
	}

	appDir = filepath.Join(baseDir, AppName)
}
