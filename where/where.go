// Package where knows the directories bililink keeps its files in.
// Every function creates the directory it returns.
package where

import (
	"os"
	"path/filepath"

	"github.com/bililink-cli/bililink/constant"
	"github.com/bililink-cli/bililink/filesystem"
	"github.com/samber/lo"
)

// EnvConfigPath overrides Config when set.
const EnvConfigPath = "BILILINK_CONFIG_PATH"

func mkdir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config is where bililink.toml and the logs live.
func Config() string {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return mkdir(path)
	}

	return mkdir(filepath.Join(lo.Must(os.UserConfigDir()), constant.App))
}

// Cache holds the recent rooms and the release check. It falls back to ./cache.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = "cache"
	}

	return mkdir(filepath.Join(base, constant.App))
}

func Logs() string {
	return mkdir(filepath.Join(Config(), "logs"))
}

// History is the file of recently resolved rooms.
func History() string {
	return filepath.Join(Cache(), "rooms.json")
}

// Version is the file caching the latest release tag.
func Version() string {
	return filepath.Join(Cache(), "version.json")
}
