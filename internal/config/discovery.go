package config

import (
	"errors"
	"os"
	"path/filepath"
)

const (
	EnvConfig = "BLOCKIES_CONFIG"
	EnvPreset = "BLOCKIES_PRESET"

	dirName  = "blockies"
	fileName = "config.yaml"
)

// DiscoveryMethod records where the config path came from.
type DiscoveryMethod int

const (
	MethodNone DiscoveryMethod = iota
	MethodFlag
	MethodEnvVar
	MethodUserDir
)

// String returns a short name for the method.
func (m DiscoveryMethod) String() string {
	switch m {
	case MethodNone:
		return "defaults"
	case MethodFlag:
		return "flag"
	case MethodEnvVar:
		return "env"
	case MethodUserDir:
		return "user"
	default:
		return "unknown"
	}
}

// Injectable for tests.
var userConfigDirFn = os.UserConfigDir

// Find locates the config file using the following precedence:
// 1. flagPath, if non-empty
// 2. BLOCKIES_CONFIG environment variable
// 3. <user config dir>/blockies/config.yaml, if it exists
// An empty path with MethodNone means built-in defaults apply.
func Find(flagPath string) (string, DiscoveryMethod, error) {
	if flagPath != "" {
		return flagPath, MethodFlag, nil
	}

	if envPath := os.Getenv(EnvConfig); envPath != "" {
		return envPath, MethodEnvVar, nil
	}

	dir, err := userConfigDirFn()
	if err != nil {
		// No home or XDG dir: nothing to discover.
		return "", MethodNone, nil
	}
	path := filepath.Join(dir, dirName, fileName)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", MethodNone, nil
		}
		return "", MethodNone, err
	}
	return path, MethodUserDir, nil
}
