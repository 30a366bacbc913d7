package config

import (
	"os"
	"path/filepath"
)

const (
	appName = "gridconsole"

	// ProjectFileName is looked up in the working directory
	ProjectFileName = ".gridconsole.yaml"

	// GlobalFileName is looked up in the user config directory
	GlobalFileName = "config.yaml"
)

// ConfigDir returns the per-user configuration directory for the current platform
func ConfigDir() string {
	return ConfigDirWithPlatform(DefaultPlatform)
}

// ConfigDirWithPlatform allows injecting a custom platform provider for testing
func ConfigDirWithPlatform(platform PlatformProvider) string {
	switch platform.GetOS() {
	case "windows":
		// %APPDATA%\gridconsole\
		appData := platform.GetEnv("APPDATA")
		if appData == "" {
			return ""
		}
		return filepath.Join(appData, appName)
	case "darwin":
		// ~/Library/Application Support/gridconsole/
		home, err := platform.UserHomeDir()
		if err != nil {
			return ""
		}
		return filepath.Join(home, "Library", "Application Support", appName)
	default: // linux, etc.
		// $XDG_CONFIG_HOME/gridconsole/ or ~/.config/gridconsole/
		if xdg := platform.GetEnv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, appName)
		}
		home, err := platform.UserHomeDir()
		if err != nil {
			return ""
		}
		return filepath.Join(home, ".config", appName)
	}
}

// GlobalConfigPath returns the path of the per-user layout file, or "" when
// no config directory is known
func GlobalConfigPath() string {
	return GlobalConfigPathWithPlatform(DefaultPlatform)
}

// GlobalConfigPathWithPlatform allows injecting a custom platform provider for testing
func GlobalConfigPathWithPlatform(platform PlatformProvider) string {
	dir := ConfigDirWithPlatform(platform)
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, GlobalFileName)
}

// UserCacheDir returns the application cache directory for history and logs
func UserCacheDir() string {
	return UserCacheDirWithPlatform(DefaultPlatform)
}

// UserCacheDirWithPlatform allows injecting a custom platform provider for testing
func UserCacheDirWithPlatform(platform PlatformProvider) string {
	switch platform.GetOS() {
	case "windows":
		// %LOCALAPPDATA%\gridconsole\
		localAppData := platform.GetEnv("LOCALAPPDATA")
		if localAppData == "" {
			home, _ := platform.UserHomeDir()
			return filepath.Join(home, "."+appName)
		}
		return filepath.Join(localAppData, appName)
	case "darwin":
		// ~/Library/Caches/gridconsole/
		home, _ := platform.UserHomeDir()
		return filepath.Join(home, "Library", "Caches", appName)
	default:
		// ~/.cache/gridconsole/
		home, _ := platform.UserHomeDir()
		return filepath.Join(home, ".cache", appName)
	}
}

// HistoryDBPath returns the path to the SQLite activation history database
func HistoryDBPath() string {
	cacheDir := UserCacheDir()
	_ = os.MkdirAll(cacheDir, 0755)
	return filepath.Join(cacheDir, "history.db")
}

// LogFilePath returns the default log file path
func LogFilePath() string {
	return filepath.Join(UserCacheDir(), appName+".log")
}

// UpdateStatePath returns the file remembering the last release check
func UpdateStatePath() string {
	return filepath.Join(UserCacheDir(), "update-state.json")
}
