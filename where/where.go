// Package where resolves the filesystem locations used by touchmpv.
package where

import (
	"os"
	"path/filepath"

	"github.com/samber/lo"
	"github.com/touchmpv/touchmpv/constant"
	"github.com/touchmpv/touchmpv/filesystem"
)

// EnvConfigPath overrides the configuration directory.
const EnvConfigPath = "TOUCHMPV_CONFIG_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the configuration directory, honouring TOUCHMPV_CONFIG_PATH.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.App))
}

// Cache resolves the cache directory, falling back to ./cache when the platform has none.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.App))
}

// Logs resolves the directory holding daily log files.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// Sockets resolves the directory where mpv IPC sockets are created.
// Unix socket paths are length-limited, so this lives under the system temp dir.
func Sockets() string {
	return ensureDir(filepath.Join(os.TempDir(), constant.App))
}
